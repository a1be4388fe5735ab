package urplanner

import (
	"fmt"
)

// DecodedCommand is one command recovered from a compiled batch.
type DecodedCommand struct {
	Index       int
	Type        CommandType
	AllowRevert bool
	Values      []any // Unpacked payload fields in schema order
}

// Name returns the protocol name of the decoded command.
func (d DecodedCommand) Name() string {
	return d.Type.String()
}

// DecodeBatch splits an opcode stream and its payloads into commands.
// Opcodes with reserved bits set are rejected.
// Useful for debugging and testing.
func DecodeBatch(commands []byte, inputs [][]byte) ([]DecodedCommand, error) {
	if len(commands) != len(inputs) {
		return nil, fmt.Errorf("%w: %d commands, %d inputs", ErrLengthMismatch, len(commands), len(inputs))
	}

	out := make([]DecodedCommand, 0, len(commands))
	for i, b := range commands {
		if b&ReservedBits != 0 {
			return nil, &CompileError{Index: i, Err: fmt.Errorf("%w: opcode 0x%02x sets reserved bits", ErrMalformedEncoding, b)}
		}
		op := Opcode(b)
		spec, err := lookupCommand(op.Type())
		if err != nil {
			return nil, &CompileError{Index: i, Err: err}
		}

		vals, err := spec.inputs.Unpack(inputs[i])
		if err != nil {
			return nil, &CompileError{Index: i, Command: spec.name, Err: &EncodingError{Value: inputs[i], Err: err}}
		}

		out = append(out, DecodedCommand{
			Index:       i,
			Type:        op.Type(),
			AllowRevert: op.AllowRevert(),
			Values:      vals,
		})
	}
	return out, nil
}
