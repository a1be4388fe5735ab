package urplanner

import (
	"errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrTooFewTokens", ErrTooFewTokens, "urplanner: path needs at least 2 tokens"},
		{"ErrTokenFeeCount", ErrTokenFeeCount, "urplanner: path needs exactly one fee per hop"},
		{"ErrUnknownFeeTier", ErrUnknownFeeTier, "urplanner: unknown fee tier"},
		{"ErrNegativeAmount", ErrNegativeAmount, "urplanner: amount must not be negative"},
		{"ErrTooManyCommands", ErrTooManyCommands, "urplanner: too many commands in batch"},
		{"ErrLengthMismatch", ErrLengthMismatch, "urplanner: commands and inputs length mismatch"},
		{"ErrNilCommand", ErrNilCommand, "urplanner: nil command"},
		{"ErrMalformedEncoding", ErrMalformedEncoding, "urplanner: malformed encoding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.msg {
				t.Errorf("Expected error message %q, got %q", tt.msg, tt.err.Error())
			}
		})
	}
}

func TestMalformedPathError(t *testing.T) {
	t.Run("count mismatch", func(t *testing.T) {
		err := &MalformedPathError{Tokens: 3, Fees: 1, Hop: -1, Err: ErrTokenFeeCount}

		expected := "urplanner: malformed path (3 tokens, 1 fees): urplanner: path needs exactly one fee per hop"
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}

		if !errors.Is(err, ErrTokenFeeCount) {
			t.Error("errors.Is should find ErrTokenFeeCount in chain")
		}
	})

	t.Run("bad hop", func(t *testing.T) {
		err := &MalformedPathError{Tokens: 2, Fees: 1, Hop: 0, Err: ErrUnknownFeeTier}

		expected := "urplanner: malformed path (2 tokens, 1 fees) at hop 0: urplanner: unknown fee tier"
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}
	})
}

func TestUnknownCommandError(t *testing.T) {
	err := &UnknownCommandError{Type: CommandType(0x3e)}

	expected := "urplanner: unknown command type 0x3e"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}
}

func TestEncodingOverflowError(t *testing.T) {
	err := &EncodingOverflowError{Field: "amount", Bits: 160, Value: "123"}

	expected := `urplanner: value 123 overflows uint160 field "amount"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}
}

func TestCompileError(t *testing.T) {
	t.Run("with command name", func(t *testing.T) {
		innerErr := errors.New("encoding failed")
		err := &CompileError{
			Index:   5,
			Command: "TRANSFER",
			Err:     innerErr,
		}

		expected := "urplanner: command 5 (TRANSFER): encoding failed"
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}

		if err.Unwrap() != innerErr {
			t.Error("Unwrap should return the inner error")
		}
	})

	t.Run("without command name", func(t *testing.T) {
		innerErr := errors.New("unknown error")
		err := &CompileError{
			Index: 3,
			Err:   innerErr,
		}

		expected := "urplanner: command 3: unknown error"
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}
	})

	t.Run("errors.As finds the overflow", func(t *testing.T) {
		err := error(&CompileError{
			Index:   0,
			Command: "PERMIT2_TRANSFER_FROM",
			Err:     &EncodingOverflowError{Field: "amount", Bits: 160, Value: "1"},
		})

		var overflow *EncodingOverflowError
		if !errors.As(err, &overflow) {
			t.Fatal("errors.As should find EncodingOverflowError in chain")
		}
		if overflow.Bits != 160 {
			t.Errorf("Expected 160 bits, got %d", overflow.Bits)
		}
	})
}

func TestEncodingError(t *testing.T) {
	t.Run("with string value", func(t *testing.T) {
		innerErr := errors.New("pack failed")
		err := &EncodingError{
			Value: "test string",
			Err:   innerErr,
		}

		expected := "urplanner: encoding error for value string: pack failed"
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}

		if err.Unwrap() != innerErr {
			t.Error("Unwrap should return the inner error")
		}
	})

	t.Run("error chain", func(t *testing.T) {
		err := &EncodingError{
			Value: []byte{1, 2, 3},
			Err:   ErrMalformedEncoding,
		}

		if !errors.Is(err, ErrMalformedEncoding) {
			t.Error("errors.Is should find ErrMalformedEncoding in chain")
		}
	})
}

func TestErrorsAreDistinct(t *testing.T) {
	sentinelErrors := []error{
		ErrTooFewTokens,
		ErrTokenFeeCount,
		ErrUnknownFeeTier,
		ErrNegativeAmount,
		ErrTooManyCommands,
		ErrLengthMismatch,
		ErrNilCommand,
		ErrMalformedEncoding,
	}

	for i, err1 := range sentinelErrors {
		for j, err2 := range sentinelErrors {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors %d and %d should be distinct", i, j)
			}
		}
	}
}
