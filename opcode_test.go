package urplanner

import (
	"testing"
)

func TestOpcodeValues(t *testing.T) {
	tests := []struct {
		name   string
		typ    CommandType
		opcode byte
	}{
		{"V3_SWAP_EXACT_IN", CmdV3SwapExactIn, 0x00},
		{"V3_SWAP_EXACT_OUT", CmdV3SwapExactOut, 0x01},
		{"PERMIT2_TRANSFER_FROM", CmdPermit2TransferFrom, 0x02},
		{"PERMIT2_PERMIT_BATCH", CmdPermit2PermitBatch, 0x03},
		{"SWEEP", CmdSweep, 0x04},
		{"TRANSFER", CmdTransfer, 0x05},
		{"PAY_PORTION", CmdPayPortion, 0x06},
		{"V2_SWAP_EXACT_IN", CmdV2SwapExactIn, 0x08},
		{"V2_SWAP_EXACT_OUT", CmdV2SwapExactOut, 0x09},
		{"PERMIT2_PERMIT", CmdPermit2Permit, 0x0a},
		{"WRAP_ETH", CmdWrapETH, 0x0b},
		{"UNWRAP_WETH", CmdUnwrapWETH, 0x0c},
		{"PERMIT2_TRANSFER_FROM_BATCH", CmdPermit2TransferFromBatch, 0x0d},
		{"BALANCE_CHECK_ERC20", CmdBalanceCheckERC20, 0x0e},
		{"OWNER_CHECK_721", CmdOwnerCheck721, 0x15},
		{"OWNER_CHECK_1155", CmdOwnerCheck1155, 0x16},
		{"SWEEP_ERC721", CmdSweepERC721, 0x17},
		{"SWEEP_ERC1155", CmdSweepERC1155, 0x1d},
		{"APPROVE_ERC20", CmdApproveERC20, 0x22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if byte(tt.typ) != tt.opcode {
				t.Errorf("Expected opcode 0x%02x, got 0x%02x", tt.opcode, byte(tt.typ))
			}
			if tt.typ.String() != tt.name {
				t.Errorf("Expected name %q, got %q", tt.name, tt.typ.String())
			}
			if !tt.typ.Known() {
				t.Error("Expected command type to be known")
			}
		})
	}

	if len(AllCommandTypes()) != len(tests) {
		t.Errorf("Expected %d command types, got %d", len(tests), len(AllCommandTypes()))
	}
}

func TestAllCommandTypesHaveSchema(t *testing.T) {
	prev := -1
	for _, typ := range AllCommandTypes() {
		if int(typ) <= prev {
			t.Errorf("AllCommandTypes not sorted at 0x%02x", uint8(typ))
		}
		prev = int(typ)

		if uint8(typ)&^CommandTypeMask != 0 {
			t.Errorf("Command type 0x%02x uses flag bits", uint8(typ))
		}

		schema, err := Schema(typ)
		if err != nil {
			t.Errorf("Schema(%s) failed: %v", typ, err)
			continue
		}
		if len(schema) == 0 {
			t.Errorf("Schema(%s) is empty", typ)
		}
	}
}

func TestUnknownCommandType(t *testing.T) {
	typ := CommandType(0x07)

	if typ.Known() {
		t.Error("0x07 should not be a known command type")
	}
	if typ.String() != "CommandType(0x07)" {
		t.Errorf("Unexpected String(): %q", typ.String())
	}

	_, err := Schema(typ)
	if _, ok := err.(*UnknownCommandError); !ok {
		t.Errorf("Expected *UnknownCommandError, got %v", err)
	}
}

func TestOpcodeMethods(t *testing.T) {
	t.Run("Type", func(t *testing.T) {
		tests := []struct {
			opcode   Opcode
			expected CommandType
		}{
			{Opcode(0x00), CmdV3SwapExactIn},
			{Opcode(0x80), CmdV3SwapExactIn},
			{Opcode(0x8b), CmdWrapETH},
			{Opcode(0x22), CmdApproveERC20},
			{Opcode(0xa2), CmdApproveERC20},
		}

		for _, tt := range tests {
			if tt.opcode.Type() != tt.expected {
				t.Errorf("Type of 0x%02x: expected %s, got %s", uint8(tt.opcode), tt.expected, tt.opcode.Type())
			}
		}
	})

	t.Run("AllowRevert", func(t *testing.T) {
		tests := []struct {
			opcode   Opcode
			expected bool
		}{
			{Opcode(0x00), false},
			{Opcode(0x0b), false},
			{Opcode(0x80), true},
			{Opcode(0x8b), true},
		}

		for _, tt := range tests {
			if tt.opcode.AllowRevert() != tt.expected {
				t.Errorf("AllowRevert of 0x%02x: expected %v", uint8(tt.opcode), tt.expected)
			}
		}
	})
}

func TestNewOpcode(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		op := NewOpcode(CmdWrapETH, false)
		if op.Byte() != 0x0b {
			t.Errorf("Expected 0x0b, got 0x%02x", op.Byte())
		}
	})

	t.Run("allow revert", func(t *testing.T) {
		op := NewOpcode(CmdWrapETH, true)
		if op.Byte() != 0x8b {
			t.Errorf("Expected 0x8b, got 0x%02x", op.Byte())
		}
	})

	t.Run("roundtrip", func(t *testing.T) {
		for _, typ := range AllCommandTypes() {
			for _, allow := range []bool{false, true} {
				op := NewOpcode(typ, allow)
				if op.Type() != typ || op.AllowRevert() != allow {
					t.Errorf("Roundtrip failed for %s allowRevert=%v", typ, allow)
				}
			}
		}
	})
}

func TestOpcodeConstants(t *testing.T) {
	if FlagAllowRevert != 0x80 {
		t.Errorf("Expected FlagAllowRevert=0x80, got 0x%02x", FlagAllowRevert)
	}
	if CommandTypeMask != 0x3f {
		t.Errorf("Expected CommandTypeMask=0x3f, got 0x%02x", CommandTypeMask)
	}
}
