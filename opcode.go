package urplanner

import (
	"fmt"
	"sort"
)

// Opcode encoding constants.
const (
	// FlagAllowRevert is OR'd into an opcode to let the batch continue when
	// that command reverts.
	FlagAllowRevert = 0x80

	// CommandTypeMask masks the command type bits of an opcode.
	CommandTypeMask = 0x3f

	// ReservedBits are opcode bits that must be zero.
	ReservedBits = 0x40
)

// CommandType identifies a router command. Values are the protocol's
// opcode constants.
type CommandType uint8

const (
	CmdV3SwapExactIn            CommandType = 0x00
	CmdV3SwapExactOut           CommandType = 0x01
	CmdPermit2TransferFrom      CommandType = 0x02
	CmdPermit2PermitBatch       CommandType = 0x03
	CmdSweep                    CommandType = 0x04
	CmdTransfer                 CommandType = 0x05
	CmdPayPortion               CommandType = 0x06
	CmdV2SwapExactIn            CommandType = 0x08
	CmdV2SwapExactOut           CommandType = 0x09
	CmdPermit2Permit            CommandType = 0x0a
	CmdWrapETH                  CommandType = 0x0b
	CmdUnwrapWETH               CommandType = 0x0c
	CmdPermit2TransferFromBatch CommandType = 0x0d
	CmdBalanceCheckERC20        CommandType = 0x0e
	CmdOwnerCheck721            CommandType = 0x15
	CmdOwnerCheck1155           CommandType = 0x16
	CmdSweepERC721              CommandType = 0x17
	CmdSweepERC1155             CommandType = 0x1d
	CmdApproveERC20             CommandType = 0x22
)

// String returns the protocol name of the command type.
func (t CommandType) String() string {
	if spec, ok := commandTable[t]; ok {
		return spec.name
	}
	return fmt.Sprintf("CommandType(0x%02x)", uint8(t))
}

// Known reports whether t has an entry in the command table.
func (t CommandType) Known() bool {
	_, ok := commandTable[t]
	return ok
}

// AllCommandTypes returns every known command type in opcode order.
func AllCommandTypes() []CommandType {
	types := make([]CommandType, 0, len(commandTable))
	for t := range commandTable {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Opcode is one byte of the command stream: a command type plus flags.
type Opcode uint8

// NewOpcode builds the opcode byte for a command type.
func NewOpcode(t CommandType, allowRevert bool) Opcode {
	op := Opcode(t)
	if allowRevert {
		op |= FlagAllowRevert
	}
	return op
}

// Type returns the command type portion of the opcode.
func (o Opcode) Type() CommandType {
	return CommandType(o & CommandTypeMask)
}

// AllowRevert returns true if the allow-revert flag is set.
func (o Opcode) AllowRevert() bool {
	return o&FlagAllowRevert != 0
}

// Byte returns the opcode as a byte for the command stream.
func (o Opcode) Byte() byte {
	return byte(o)
}
