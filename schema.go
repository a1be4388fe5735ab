package urplanner

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// commandSpec describes how one command type is encoded.
type commandSpec struct {
	name   string
	inputs abi.Arguments
}

var (
	permitDetailsComponents = []abi.ArgumentMarshaling{
		{Name: "token", Type: "address"},
		{Name: "amount", Type: "uint160"},
		{Name: "expiration", Type: "uint48"},
		{Name: "nonce", Type: "uint48"},
	}

	routeComponents = []abi.ArgumentMarshaling{
		{Name: "from", Type: "address"},
		{Name: "to", Type: "address"},
		{Name: "stable", Type: "bool"},
	}

	allowanceTransferComponents = []abi.ArgumentMarshaling{
		{Name: "from", Type: "address"},
		{Name: "to", Type: "address"},
		{Name: "amount", Type: "uint160"},
		{Name: "token", Type: "address"},
	}

	permitSingleComponents = []abi.ArgumentMarshaling{
		{Name: "details", Type: "tuple", Components: permitDetailsComponents},
		{Name: "spender", Type: "address"},
		{Name: "sigDeadline", Type: "uint256"},
	}

	permitBatchComponents = []abi.ArgumentMarshaling{
		{Name: "details", Type: "tuple[]", Components: permitDetailsComponents},
		{Name: "spender", Type: "address"},
		{Name: "sigDeadline", Type: "uint256"},
	}
)

// field is one slot of a command schema.
type field struct {
	name       string
	typ        string
	components []abi.ArgumentMarshaling
}

func mustArguments(fields ...field) abi.Arguments {
	args := make(abi.Arguments, 0, len(fields))
	for _, f := range fields {
		t, err := abi.NewType(f.typ, "", f.components)
		if err != nil {
			panic(err)
		}
		args = append(args, abi.Argument{Name: f.name, Type: t})
	}
	return args
}

// commandTable maps each command type to its name and payload schema.
// It is built once at init and only read afterwards.
var commandTable = map[CommandType]commandSpec{
	CmdV3SwapExactIn: {"V3_SWAP_EXACT_IN", mustArguments(
		field{name: "recipient", typ: "address"},
		field{name: "amountIn", typ: "uint256"},
		field{name: "amountOutMin", typ: "uint256"},
		field{name: "path", typ: "bytes"},
		field{name: "payerIsUser", typ: "bool"},
	)},
	CmdV3SwapExactOut: {"V3_SWAP_EXACT_OUT", mustArguments(
		field{name: "recipient", typ: "address"},
		field{name: "amountOut", typ: "uint256"},
		field{name: "amountInMax", typ: "uint256"},
		field{name: "path", typ: "bytes"},
		field{name: "payerIsUser", typ: "bool"},
	)},
	CmdPermit2TransferFrom: {"PERMIT2_TRANSFER_FROM", mustArguments(
		field{name: "token", typ: "address"},
		field{name: "recipient", typ: "address"},
		field{name: "amount", typ: "uint160"},
	)},
	CmdPermit2PermitBatch: {"PERMIT2_PERMIT_BATCH", mustArguments(
		field{name: "permitBatch", typ: "tuple", components: permitBatchComponents},
		field{name: "signature", typ: "bytes"},
	)},
	CmdSweep: {"SWEEP", mustArguments(
		field{name: "token", typ: "address"},
		field{name: "recipient", typ: "address"},
		field{name: "amountMin", typ: "uint256"},
	)},
	CmdTransfer: {"TRANSFER", mustArguments(
		field{name: "token", typ: "address"},
		field{name: "recipient", typ: "address"},
		field{name: "value", typ: "uint256"},
	)},
	CmdPayPortion: {"PAY_PORTION", mustArguments(
		field{name: "token", typ: "address"},
		field{name: "recipient", typ: "address"},
		field{name: "bips", typ: "uint256"},
	)},
	CmdV2SwapExactIn: {"V2_SWAP_EXACT_IN", mustArguments(
		field{name: "recipient", typ: "address"},
		field{name: "amountIn", typ: "uint256"},
		field{name: "amountOutMin", typ: "uint256"},
		field{name: "routes", typ: "tuple[]", components: routeComponents},
		field{name: "payerIsUser", typ: "bool"},
	)},
	CmdV2SwapExactOut: {"V2_SWAP_EXACT_OUT", mustArguments(
		field{name: "recipient", typ: "address"},
		field{name: "amountOut", typ: "uint256"},
		field{name: "amountInMax", typ: "uint256"},
		field{name: "routes", typ: "tuple[]", components: routeComponents},
		field{name: "payerIsUser", typ: "bool"},
	)},
	CmdPermit2Permit: {"PERMIT2_PERMIT", mustArguments(
		field{name: "permitSingle", typ: "tuple", components: permitSingleComponents},
		field{name: "signature", typ: "bytes"},
	)},
	CmdWrapETH: {"WRAP_ETH", mustArguments(
		field{name: "recipient", typ: "address"},
		field{name: "amountMin", typ: "uint256"},
	)},
	CmdUnwrapWETH: {"UNWRAP_WETH", mustArguments(
		field{name: "recipient", typ: "address"},
		field{name: "amountMin", typ: "uint256"},
	)},
	CmdPermit2TransferFromBatch: {"PERMIT2_TRANSFER_FROM_BATCH", mustArguments(
		field{name: "transferDetails", typ: "tuple[]", components: allowanceTransferComponents},
	)},
	CmdBalanceCheckERC20: {"BALANCE_CHECK_ERC20", mustArguments(
		field{name: "owner", typ: "address"},
		field{name: "token", typ: "address"},
		field{name: "minBalance", typ: "uint256"},
	)},
	CmdOwnerCheck721: {"OWNER_CHECK_721", mustArguments(
		field{name: "owner", typ: "address"},
		field{name: "token", typ: "address"},
		field{name: "id", typ: "uint256"},
	)},
	CmdOwnerCheck1155: {"OWNER_CHECK_1155", mustArguments(
		field{name: "owner", typ: "address"},
		field{name: "token", typ: "address"},
		field{name: "id", typ: "uint256"},
		field{name: "minBalance", typ: "uint256"},
	)},
	CmdSweepERC721: {"SWEEP_ERC721", mustArguments(
		field{name: "token", typ: "address"},
		field{name: "recipient", typ: "address"},
		field{name: "id", typ: "uint256"},
	)},
	CmdSweepERC1155: {"SWEEP_ERC1155", mustArguments(
		field{name: "token", typ: "address"},
		field{name: "recipient", typ: "address"},
		field{name: "id", typ: "uint256"},
		field{name: "amount", typ: "uint256"},
	)},
	CmdApproveERC20: {"APPROVE_ERC20", mustArguments(
		field{name: "token", typ: "address"},
		field{name: "spender", typ: "address"},
	)},
}

// lookupCommand returns the encoding spec for t.
func lookupCommand(t CommandType) (commandSpec, error) {
	spec, ok := commandTable[t]
	if !ok {
		return commandSpec{}, &UnknownCommandError{Type: t}
	}
	return spec, nil
}

// Schema returns the ABI arguments a command type's payload is encoded with.
func Schema(t CommandType) (abi.Arguments, error) {
	spec, err := lookupCommand(t)
	if err != nil {
		return nil, err
	}
	out := make(abi.Arguments, len(spec.inputs))
	copy(out, spec.inputs)
	return out, nil
}
