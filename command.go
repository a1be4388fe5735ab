package urplanner

import (
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Command is one router instruction.
// This is a sealed interface - only types within this package can implement it.
type Command interface {
	// isCommand is unexported to seal the interface.
	isCommand()

	// Type returns the command type, which selects the opcode and schema.
	Type() CommandType

	// values returns the field values in schema order, ready for ABI packing.
	values() ([]any, error)
}

// Route is one hop of a v2-style swap: a pool between two tokens.
type Route struct {
	From   common.Address `abi:"from"`
	To     common.Address `abi:"to"`
	Stable bool           `abi:"stable"`
}

// PermitDetails is the per-token part of a Permit2 allowance permit.
type PermitDetails struct {
	Token      common.Address
	Amount     *uint256.Int // uint160
	Expiration uint64       // uint48
	Nonce      uint64       // uint48
}

// PermitSingle grants a Permit2 allowance for one token.
type PermitSingle struct {
	Details     PermitDetails
	Spender     common.Address
	SigDeadline *uint256.Int
}

// PermitBatch grants Permit2 allowances for several tokens at once.
type PermitBatch struct {
	Details     []PermitDetails
	Spender     common.Address
	SigDeadline *uint256.Int
}

// AllowanceTransferDetails is one transfer in a batched Permit2 transfer.
type AllowanceTransferDetails struct {
	From   common.Address
	To     common.Address
	Amount *uint256.Int // uint160
	Token  common.Address
}

// Tuple shapes handed to the ABI packer.
type (
	permitDetailsTuple struct {
		Token      common.Address `abi:"token"`
		Amount     *big.Int       `abi:"amount"`
		Expiration *big.Int       `abi:"expiration"`
		Nonce      *big.Int       `abi:"nonce"`
	}

	permitSingleTuple struct {
		Details     permitDetailsTuple `abi:"details"`
		Spender     common.Address     `abi:"spender"`
		SigDeadline *big.Int           `abi:"sigDeadline"`
	}

	permitBatchTuple struct {
		Details     []permitDetailsTuple `abi:"details"`
		Spender     common.Address       `abi:"spender"`
		SigDeadline *big.Int             `abi:"sigDeadline"`
	}

	allowanceTransferTuple struct {
		From   common.Address `abi:"from"`
		To     common.Address `abi:"to"`
		Amount *big.Int       `abi:"amount"`
		Token  common.Address `abi:"token"`
	}
)

func (d PermitDetails) tuple(field string) (permitDetailsTuple, error) {
	amount, err := fitUint(field+".amount", d.Amount, 160)
	if err != nil {
		return permitDetailsTuple{}, err
	}
	expiration, err := fitUint(field+".expiration", uint256.NewInt(d.Expiration), 48)
	if err != nil {
		return permitDetailsTuple{}, err
	}
	nonce, err := fitUint(field+".nonce", uint256.NewInt(d.Nonce), 48)
	if err != nil {
		return permitDetailsTuple{}, err
	}
	return permitDetailsTuple{Token: d.Token, Amount: amount, Expiration: expiration, Nonce: nonce}, nil
}

// V3SwapExactIn swaps an exact input amount along a fee-tiered path.
type V3SwapExactIn struct {
	Recipient    common.Address
	AmountIn     *uint256.Int
	AmountOutMin *uint256.Int
	Path         Path
	PayerIsUser  bool
}

func (*V3SwapExactIn) isCommand() {}

// Type returns CmdV3SwapExactIn.
func (*V3SwapExactIn) Type() CommandType { return CmdV3SwapExactIn }

func (c *V3SwapExactIn) values() ([]any, error) {
	return swapValues(c.Recipient, "amountIn", c.AmountIn, "amountOutMin", c.AmountOutMin, c.Path, c.PayerIsUser)
}

// V3SwapExactOut swaps for an exact output amount along a fee-tiered path.
// The path is encoded as given; exact-output routing expects it to start at
// the output token (see Path.Reverse).
type V3SwapExactOut struct {
	Recipient   common.Address
	AmountOut   *uint256.Int
	AmountInMax *uint256.Int
	Path        Path
	PayerIsUser bool
}

func (*V3SwapExactOut) isCommand() {}

// Type returns CmdV3SwapExactOut.
func (*V3SwapExactOut) Type() CommandType { return CmdV3SwapExactOut }

func (c *V3SwapExactOut) values() ([]any, error) {
	return swapValues(c.Recipient, "amountOut", c.AmountOut, "amountInMax", c.AmountInMax, c.Path, c.PayerIsUser)
}

func swapValues(recipient common.Address, firstName string, first *uint256.Int, secondName string, second *uint256.Int, path Path, payerIsUser bool) ([]any, error) {
	a, err := fitUint(firstName, first, 256)
	if err != nil {
		return nil, err
	}
	b, err := fitUint(secondName, second, 256)
	if err != nil {
		return nil, err
	}
	encoded, err := path.Bytes()
	if err != nil {
		return nil, err
	}
	return []any{recipient, a, b, encoded, payerIsUser}, nil
}

// V2SwapExactIn swaps an exact input amount through v2-style pools.
type V2SwapExactIn struct {
	Recipient    common.Address
	AmountIn     *uint256.Int
	AmountOutMin *uint256.Int
	Routes       []Route
	PayerIsUser  bool
}

func (*V2SwapExactIn) isCommand() {}

// Type returns CmdV2SwapExactIn.
func (*V2SwapExactIn) Type() CommandType { return CmdV2SwapExactIn }

func (c *V2SwapExactIn) values() ([]any, error) {
	return routeSwapValues(c.Recipient, "amountIn", c.AmountIn, "amountOutMin", c.AmountOutMin, c.Routes, c.PayerIsUser)
}

// V2SwapExactOut swaps for an exact output amount through v2-style pools.
type V2SwapExactOut struct {
	Recipient   common.Address
	AmountOut   *uint256.Int
	AmountInMax *uint256.Int
	Routes      []Route
	PayerIsUser bool
}

func (*V2SwapExactOut) isCommand() {}

// Type returns CmdV2SwapExactOut.
func (*V2SwapExactOut) Type() CommandType { return CmdV2SwapExactOut }

func (c *V2SwapExactOut) values() ([]any, error) {
	return routeSwapValues(c.Recipient, "amountOut", c.AmountOut, "amountInMax", c.AmountInMax, c.Routes, c.PayerIsUser)
}

func routeSwapValues(recipient common.Address, firstName string, first *uint256.Int, secondName string, second *uint256.Int, routes []Route, payerIsUser bool) ([]any, error) {
	a, err := fitUint(firstName, first, 256)
	if err != nil {
		return nil, err
	}
	b, err := fitUint(secondName, second, 256)
	if err != nil {
		return nil, err
	}
	rs := make([]Route, len(routes))
	copy(rs, routes)
	return []any{recipient, a, b, rs, payerIsUser}, nil
}

// Permit2Permit submits a signed single-token Permit2 allowance.
type Permit2Permit struct {
	Permit    PermitSingle
	Signature []byte
}

func (*Permit2Permit) isCommand() {}

// Type returns CmdPermit2Permit.
func (*Permit2Permit) Type() CommandType { return CmdPermit2Permit }

func (c *Permit2Permit) values() ([]any, error) {
	details, err := c.Permit.Details.tuple("details")
	if err != nil {
		return nil, err
	}
	deadline, err := fitUint("sigDeadline", c.Permit.SigDeadline, 256)
	if err != nil {
		return nil, err
	}
	permit := permitSingleTuple{Details: details, Spender: c.Permit.Spender, SigDeadline: deadline}
	return []any{permit, nonNilBytes(c.Signature)}, nil
}

// Permit2PermitBatch submits a signed multi-token Permit2 allowance.
type Permit2PermitBatch struct {
	Permit    PermitBatch
	Signature []byte
}

func (*Permit2PermitBatch) isCommand() {}

// Type returns CmdPermit2PermitBatch.
func (*Permit2PermitBatch) Type() CommandType { return CmdPermit2PermitBatch }

func (c *Permit2PermitBatch) values() ([]any, error) {
	details := make([]permitDetailsTuple, len(c.Permit.Details))
	for i, d := range c.Permit.Details {
		t, err := d.tuple(fieldIndex("details", i))
		if err != nil {
			return nil, err
		}
		details[i] = t
	}
	deadline, err := fitUint("sigDeadline", c.Permit.SigDeadline, 256)
	if err != nil {
		return nil, err
	}
	permit := permitBatchTuple{Details: details, Spender: c.Permit.Spender, SigDeadline: deadline}
	return []any{permit, nonNilBytes(c.Signature)}, nil
}

// Permit2TransferFrom pulls tokens from the caller through Permit2.
type Permit2TransferFrom struct {
	Token     common.Address
	Recipient common.Address
	Amount    *uint256.Int // uint160
}

func (*Permit2TransferFrom) isCommand() {}

// Type returns CmdPermit2TransferFrom.
func (*Permit2TransferFrom) Type() CommandType { return CmdPermit2TransferFrom }

func (c *Permit2TransferFrom) values() ([]any, error) {
	amount, err := fitUint("amount", c.Amount, 160)
	if err != nil {
		return nil, err
	}
	return []any{c.Token, c.Recipient, amount}, nil
}

// Permit2TransferFromBatch performs several Permit2 allowance transfers.
type Permit2TransferFromBatch struct {
	Transfers []AllowanceTransferDetails
}

func (*Permit2TransferFromBatch) isCommand() {}

// Type returns CmdPermit2TransferFromBatch.
func (*Permit2TransferFromBatch) Type() CommandType { return CmdPermit2TransferFromBatch }

func (c *Permit2TransferFromBatch) values() ([]any, error) {
	transfers := make([]allowanceTransferTuple, len(c.Transfers))
	for i, tr := range c.Transfers {
		amount, err := fitUint(fieldIndex("transferDetails", i)+".amount", tr.Amount, 160)
		if err != nil {
			return nil, err
		}
		transfers[i] = allowanceTransferTuple{From: tr.From, To: tr.To, Amount: amount, Token: tr.Token}
	}
	return []any{transfers}, nil
}

// Sweep sends the router's whole balance of a token to a recipient,
// reverting if it is below AmountMin.
type Sweep struct {
	Token     common.Address
	Recipient common.Address
	AmountMin *uint256.Int
}

func (*Sweep) isCommand() {}

// Type returns CmdSweep.
func (*Sweep) Type() CommandType { return CmdSweep }

func (c *Sweep) values() ([]any, error) {
	return tokenRecipientValues(c.Token, c.Recipient, fieldAmount{"amountMin", c.AmountMin})
}

// Transfer sends an exact amount of a token held by the router.
type Transfer struct {
	Token     common.Address
	Recipient common.Address
	Value     *uint256.Int
}

func (*Transfer) isCommand() {}

// Type returns CmdTransfer.
func (*Transfer) Type() CommandType { return CmdTransfer }

func (c *Transfer) values() ([]any, error) {
	return tokenRecipientValues(c.Token, c.Recipient, fieldAmount{"value", c.Value})
}

// PayPortion sends a share, in basis points, of the router's token balance.
type PayPortion struct {
	Token     common.Address
	Recipient common.Address
	Bips      *uint256.Int
}

func (*PayPortion) isCommand() {}

// Type returns CmdPayPortion.
func (*PayPortion) Type() CommandType { return CmdPayPortion }

func (c *PayPortion) values() ([]any, error) {
	return tokenRecipientValues(c.Token, c.Recipient, fieldAmount{"bips", c.Bips})
}

// WrapETH wraps the router's native balance into the wrapped token.
type WrapETH struct {
	Recipient common.Address
	AmountMin *uint256.Int
}

func (*WrapETH) isCommand() {}

// Type returns CmdWrapETH.
func (*WrapETH) Type() CommandType { return CmdWrapETH }

func (c *WrapETH) values() ([]any, error) {
	amount, err := fitUint("amountMin", c.AmountMin, 256)
	if err != nil {
		return nil, err
	}
	return []any{c.Recipient, amount}, nil
}

// UnwrapWETH unwraps the router's wrapped-token balance to native.
type UnwrapWETH struct {
	Recipient common.Address
	AmountMin *uint256.Int
}

func (*UnwrapWETH) isCommand() {}

// Type returns CmdUnwrapWETH.
func (*UnwrapWETH) Type() CommandType { return CmdUnwrapWETH }

func (c *UnwrapWETH) values() ([]any, error) {
	amount, err := fitUint("amountMin", c.AmountMin, 256)
	if err != nil {
		return nil, err
	}
	return []any{c.Recipient, amount}, nil
}

// BalanceCheckERC20 reverts unless Owner holds at least MinBalance of Token.
type BalanceCheckERC20 struct {
	Owner      common.Address
	Token      common.Address
	MinBalance *uint256.Int
}

func (*BalanceCheckERC20) isCommand() {}

// Type returns CmdBalanceCheckERC20.
func (*BalanceCheckERC20) Type() CommandType { return CmdBalanceCheckERC20 }

func (c *BalanceCheckERC20) values() ([]any, error) {
	return tokenRecipientValues(c.Owner, c.Token, fieldAmount{"minBalance", c.MinBalance})
}

// OwnerCheck721 reverts unless Owner owns ERC-721 token ID.
type OwnerCheck721 struct {
	Owner common.Address
	Token common.Address
	ID    *uint256.Int
}

func (*OwnerCheck721) isCommand() {}

// Type returns CmdOwnerCheck721.
func (*OwnerCheck721) Type() CommandType { return CmdOwnerCheck721 }

func (c *OwnerCheck721) values() ([]any, error) {
	return tokenRecipientValues(c.Owner, c.Token, fieldAmount{"id", c.ID})
}

// OwnerCheck1155 reverts unless Owner holds at least MinBalance of ERC-1155 token ID.
type OwnerCheck1155 struct {
	Owner      common.Address
	Token      common.Address
	ID         *uint256.Int
	MinBalance *uint256.Int
}

func (*OwnerCheck1155) isCommand() {}

// Type returns CmdOwnerCheck1155.
func (*OwnerCheck1155) Type() CommandType { return CmdOwnerCheck1155 }

func (c *OwnerCheck1155) values() ([]any, error) {
	return tokenRecipientValues(c.Owner, c.Token, fieldAmount{"id", c.ID}, fieldAmount{"minBalance", c.MinBalance})
}

// SweepERC721 sends an ERC-721 token held by the router.
type SweepERC721 struct {
	Token     common.Address
	Recipient common.Address
	ID        *uint256.Int
}

func (*SweepERC721) isCommand() {}

// Type returns CmdSweepERC721.
func (*SweepERC721) Type() CommandType { return CmdSweepERC721 }

func (c *SweepERC721) values() ([]any, error) {
	return tokenRecipientValues(c.Token, c.Recipient, fieldAmount{"id", c.ID})
}

// SweepERC1155 sends an amount of an ERC-1155 token held by the router.
type SweepERC1155 struct {
	Token     common.Address
	Recipient common.Address
	ID        *uint256.Int
	Amount    *uint256.Int
}

func (*SweepERC1155) isCommand() {}

// Type returns CmdSweepERC1155.
func (*SweepERC1155) Type() CommandType { return CmdSweepERC1155 }

func (c *SweepERC1155) values() ([]any, error) {
	return tokenRecipientValues(c.Token, c.Recipient, fieldAmount{"id", c.ID}, fieldAmount{"amount", c.Amount})
}

// ApproveERC20 approves Spender for the maximum amount of Token held by the router.
type ApproveERC20 struct {
	Token   common.Address
	Spender common.Address
}

func (*ApproveERC20) isCommand() {}

// Type returns CmdApproveERC20.
func (*ApproveERC20) Type() CommandType { return CmdApproveERC20 }

func (c *ApproveERC20) values() ([]any, error) {
	return []any{c.Token, c.Spender}, nil
}

// fieldAmount pairs a uint256 schema slot with its value.
type fieldAmount struct {
	name  string
	value *uint256.Int
}

// tokenRecipientValues covers the many commands shaped (address, address, uint256...).
func tokenRecipientValues(a, b common.Address, amounts ...fieldAmount) ([]any, error) {
	out := make([]any, 0, 2+len(amounts))
	out = append(out, a, b)
	for _, f := range amounts {
		v, err := fitUint(f.name, f.value, 256)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func fieldIndex(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}

func nonNilBytes(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
