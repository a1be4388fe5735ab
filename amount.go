package urplanner

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// Recipient sentinels understood by the router.
var (
	// MsgSender makes the router resolve the recipient to the caller.
	MsgSender = common.HexToAddress("0x0000000000000000000000000000000000000001")

	// AddressThis makes the router keep the funds for a later command.
	AddressThis = common.HexToAddress("0x0000000000000000000000000000000000000002")
)

// ContractBalance returns the amount sentinel that tells the router to use
// its entire balance of the token (1 << 255).
func ContractBalance() *uint256.Int {
	return new(uint256.Int).Lsh(uint256.NewInt(1), 255)
}

// AmountFromBig converts a *big.Int into a 256-bit amount.
// Negative values and values wider than 256 bits are rejected.
func AmountFromBig(v *big.Int) (*uint256.Int, error) {
	if v == nil {
		return new(uint256.Int), nil
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNegativeAmount, v)
	}
	out, overflow := uint256.FromBig(v)
	if overflow {
		return nil, &EncodingOverflowError{Field: "amount", Bits: 256, Value: v.String()}
	}
	return out, nil
}

// MustAmount is like AmountFromBig but panics on error.
func MustAmount(v *big.Int) *uint256.Int {
	out, err := AmountFromBig(v)
	if err != nil {
		panic(err)
	}
	return out
}

// AmountFromDecimal converts a human-readable decimal amount such as "1.5"
// into base units of a token with the given number of decimals.
func AmountFromDecimal(value string, decimals int32) (*uint256.Int, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("urplanner: parse amount %q: %w", value, err)
	}
	scaled := d.Shift(decimals)
	if !scaled.Equal(scaled.Truncate(0)) {
		return nil, fmt.Errorf("urplanner: amount %q has more than %d decimals", value, decimals)
	}
	return AmountFromBig(scaled.BigInt())
}

// fitUint returns v as a *big.Int after checking that it fits in a uintN
// slot. A nil v encodes as zero.
func fitUint(field string, v *uint256.Int, bits int) (*big.Int, error) {
	if v == nil {
		return new(big.Int), nil
	}
	if v.BitLen() > bits {
		return nil, &EncodingOverflowError{Field: field, Bits: bits, Value: v.Dec()}
	}
	return v.ToBig(), nil
}
