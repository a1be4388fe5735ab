package urplanner

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// entry is a command queued in a Planner.
type entry struct {
	cmd         Command
	allowRevert bool
}

// Planner builds an ordered batch of router commands.
// A Planner is not safe for concurrent use.
type Planner struct {
	entries  []entry
	planOpts []PlanOption
}

// New creates a new Planner with the given options.
func New(opts ...PlannerOption) *Planner {
	p := &Planner{
		entries: make([]entry, 0, 8),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Add appends a command to the batch.
func (p *Planner) Add(cmd Command) *Planner {
	p.entries = append(p.entries, entry{cmd: cmd})
	return p
}

// AddAllowRevert appends a command whose failure does not revert the batch.
func (p *Planner) AddAllowRevert(cmd Command) *Planner {
	p.entries = append(p.entries, entry{cmd: cmd, allowRevert: true})
	return p
}

// Len returns the number of commands in the planner.
func (p *Planner) Len() int {
	return len(p.entries)
}

// CommandAt returns the command at the given index.
func (p *Planner) CommandAt(i int) Command {
	if i < 0 || i >= len(p.entries) {
		return nil
	}
	return p.entries[i].cmd
}

// Plan compiles the queued commands. Options given here are applied after
// the planner's defaults.
func (p *Planner) Plan(opts ...PlanOption) (*CompiledBatch, error) {
	all := make([]PlanOption, 0, len(p.planOpts)+len(opts))
	all = append(all, p.planOpts...)
	all = append(all, opts...)
	return compile(p.entries, all)
}

// Compile encodes cmds, in order, into an opcode stream and one ABI payload
// per command. It is a pure function and safe for concurrent use.
func Compile(cmds []Command, opts ...PlanOption) (*CompiledBatch, error) {
	entries := make([]entry, len(cmds))
	for i, cmd := range cmds {
		entries[i] = entry{cmd: cmd}
	}
	return compile(entries, opts)
}

func compile(entries []entry, opts []PlanOption) (*CompiledBatch, error) {
	cfg := defaultPlanConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if len(entries) > cfg.maxCommands {
		return nil, fmt.Errorf("%w: %d commands, limit %d", ErrTooManyCommands, len(entries), cfg.maxCommands)
	}

	commands := make([]byte, 0, len(entries))
	inputs := make([][]byte, 0, len(entries))

	for i, e := range entries {
		if e.cmd == nil {
			return nil, &CompileError{Index: i, Err: ErrNilCommand}
		}

		spec, err := lookupCommand(e.cmd.Type())
		if err != nil {
			return nil, &CompileError{Index: i, Err: err}
		}

		vals, err := e.cmd.values()
		if err != nil {
			return nil, &CompileError{Index: i, Command: spec.name, Err: err}
		}

		data, err := spec.inputs.Pack(vals...)
		if err != nil {
			return nil, &CompileError{Index: i, Command: spec.name, Err: &EncodingError{Value: e.cmd, Err: err}}
		}

		op := NewOpcode(e.cmd.Type(), e.allowRevert)
		commands = append(commands, op.Byte())
		inputs = append(inputs, data)

		cfg.logger.Debug().
			Int("index", i).
			Str("command", spec.name).
			Uint8("opcode", op.Byte()).
			Int("payload_bytes", len(data)).
			Msg("compiled command")
	}

	cfg.logger.Debug().
		Int("commands", len(commands)).
		Str("opcodes", hexutil.Encode(commands)).
		Msg("compiled batch")

	return &CompiledBatch{
		Commands: commands,
		Inputs:   inputs,
	}, nil
}

// CompiledBatch is the output of Compile, ready for the router's execute call.
type CompiledBatch struct {
	Commands []byte   // One opcode per command
	Inputs   [][]byte // ABI payload for each opcode, same order
}

// Len returns the number of commands in the batch.
func (b *CompiledBatch) Len() int {
	return len(b.Commands)
}

// CommandsHex returns the opcode stream as lowercase 0x-prefixed hex.
func (b *CompiledBatch) CommandsHex() string {
	return hexutil.Encode(b.Commands)
}

// InputsHex returns each payload as lowercase 0x-prefixed hex.
func (b *CompiledBatch) InputsHex() []string {
	out := make([]string, len(b.Inputs))
	for i, in := range b.Inputs {
		out[i] = hexutil.Encode(in)
	}
	return out
}

// Decode splits the batch back into its commands. Useful for debugging and
// testing.
func (b *CompiledBatch) Decode() ([]DecodedCommand, error) {
	return DecodeBatch(b.Commands, b.Inputs)
}
