package urplanner

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
var (
	// ErrTooFewTokens indicates a path with fewer than two tokens.
	ErrTooFewTokens = errors.New("urplanner: path needs at least 2 tokens")

	// ErrTokenFeeCount indicates len(fees) != len(tokens)-1.
	ErrTokenFeeCount = errors.New("urplanner: path needs exactly one fee per hop")

	// ErrUnknownFeeTier indicates a fee tier outside the known set.
	ErrUnknownFeeTier = errors.New("urplanner: unknown fee tier")

	// ErrNegativeAmount indicates a negative value offered as an unsigned amount.
	ErrNegativeAmount = errors.New("urplanner: amount must not be negative")

	// ErrTooManyCommands indicates the batch exceeds the configured command limit.
	ErrTooManyCommands = errors.New("urplanner: too many commands in batch")

	// ErrLengthMismatch indicates an opcode stream and payload list of different lengths.
	ErrLengthMismatch = errors.New("urplanner: commands and inputs length mismatch")

	// ErrNilCommand indicates a nil command in the batch.
	ErrNilCommand = errors.New("urplanner: nil command")

	// ErrMalformedEncoding indicates bytes that do not follow the expected layout.
	ErrMalformedEncoding = errors.New("urplanner: malformed encoding")
)

// MalformedPathError indicates a path that cannot be encoded.
type MalformedPathError struct {
	Tokens int
	Fees   int
	Hop    int // -1 unless a single hop is at fault
	Err    error
}

func (e *MalformedPathError) Error() string {
	if e.Hop >= 0 {
		return fmt.Sprintf("urplanner: malformed path (%d tokens, %d fees) at hop %d: %v", e.Tokens, e.Fees, e.Hop, e.Err)
	}
	return fmt.Sprintf("urplanner: malformed path (%d tokens, %d fees): %v", e.Tokens, e.Fees, e.Err)
}

func (e *MalformedPathError) Unwrap() error {
	return e.Err
}

// UnknownCommandError indicates a command type with no opcode or schema entry.
type UnknownCommandError struct {
	Type CommandType
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("urplanner: unknown command type 0x%02x", uint8(e.Type))
}

// EncodingOverflowError indicates a numeric value wider than its schema slot.
type EncodingOverflowError struct {
	Field string
	Bits  int
	Value string
}

func (e *EncodingOverflowError) Error() string {
	return fmt.Sprintf("urplanner: value %s overflows uint%d field %q", e.Value, e.Bits, e.Field)
}

// CompileError wraps errors that occur while compiling a batch.
type CompileError struct {
	Index   int
	Command string
	Err     error
}

func (e *CompileError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("urplanner: command %d (%s): %v", e.Index, e.Command, e.Err)
	}
	return fmt.Sprintf("urplanner: command %d: %v", e.Index, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// EncodingError indicates a failure while ABI-packing or unpacking a value.
type EncodingError struct {
	Value any
	Err   error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("urplanner: encoding error for value %T: %v", e.Value, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}
