package urplanner

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Path encoding constants.
const (
	// HopSize is the width of one token plus its outgoing fee.
	HopSize = common.AddressLength + FeeSize

	// MinPathSize is the size of a single-hop path (token, fee, token).
	MinPathSize = HopSize + common.AddressLength
)

// Path is a multi-hop route of tokens joined by pool fee tiers.
// Path is immutable once constructed.
type Path struct {
	tokens []common.Address
	fees   []FeeTier
}

// NewPath validates tokens and fees and returns the corresponding Path.
func NewPath(tokens []common.Address, fees []FeeTier) (Path, error) {
	if err := validatePath(tokens, fees); err != nil {
		return Path{}, err
	}
	p := Path{
		tokens: make([]common.Address, len(tokens)),
		fees:   make([]FeeTier, len(fees)),
	}
	copy(p.tokens, tokens)
	copy(p.fees, fees)
	return p, nil
}

// MustPath is like NewPath but panics on error.
func MustPath(tokens []common.Address, fees []FeeTier) Path {
	p, err := NewPath(tokens, fees)
	if err != nil {
		panic(err)
	}
	return p
}

// Tokens returns a copy of the path's tokens.
func (p Path) Tokens() []common.Address {
	out := make([]common.Address, len(p.tokens))
	copy(out, p.tokens)
	return out
}

// Fees returns a copy of the path's fee tiers.
func (p Path) Fees() []FeeTier {
	out := make([]FeeTier, len(p.fees))
	copy(out, p.fees)
	return out
}

// Hops returns the number of pools the path crosses.
func (p Path) Hops() int {
	return len(p.fees)
}

// Reverse returns the path walked from the last token to the first.
// Exact-output swaps expect the path in this order.
func (p Path) Reverse() Path {
	r := Path{
		tokens: make([]common.Address, len(p.tokens)),
		fees:   make([]FeeTier, len(p.fees)),
	}
	for i, tok := range p.tokens {
		r.tokens[len(p.tokens)-1-i] = tok
	}
	for i, fee := range p.fees {
		r.fees[len(p.fees)-1-i] = fee
	}
	return r
}

// Bytes returns the packed encoding of the path.
func (p Path) Bytes() ([]byte, error) {
	return EncodePath(p.tokens, p.fees)
}

// Hex returns the packed encoding as lowercase 0x-prefixed hex.
func (p Path) Hex() (string, error) {
	b, err := p.Bytes()
	if err != nil {
		return "", err
	}
	return hexutil.Encode(b), nil
}

// EncodePath packs tokens and fees into the multi-hop path format:
//
//	[token0:20][fee0:3][token1:20][fee1:3]...[tokenN:20]
func EncodePath(tokens []common.Address, fees []FeeTier) ([]byte, error) {
	if err := validatePath(tokens, fees); err != nil {
		return nil, err
	}

	out := make([]byte, 0, common.AddressLength+HopSize*len(fees))
	for i, fee := range fees {
		fb := fee.Bytes()
		out = append(out, tokens[i].Bytes()...)
		out = append(out, fb[:]...)
	}
	out = append(out, tokens[len(tokens)-1].Bytes()...)

	return out, nil
}

// DecodePath splits a packed path back into tokens and fee magnitudes.
// Fee tiers are returned as magnitudes because several tiers share one.
func DecodePath(encoded []byte) (tokens []common.Address, fees []uint32, err error) {
	if len(encoded) < MinPathSize || (len(encoded)-common.AddressLength)%HopSize != 0 {
		return nil, nil, ErrMalformedEncoding
	}

	hops := (len(encoded) - common.AddressLength) / HopSize
	tokens = make([]common.Address, 0, hops+1)
	fees = make([]uint32, 0, hops)

	for i := 0; i < hops; i++ {
		off := i * HopSize
		tokens = append(tokens, common.BytesToAddress(encoded[off:off+common.AddressLength]))
		f := encoded[off+common.AddressLength : off+HopSize]
		fees = append(fees, uint32(f[0])<<16|uint32(f[1])<<8|uint32(f[2]))
	}
	tokens = append(tokens, common.BytesToAddress(encoded[len(encoded)-common.AddressLength:]))

	return tokens, fees, nil
}

func validatePath(tokens []common.Address, fees []FeeTier) error {
	if len(tokens) < 2 {
		return &MalformedPathError{Tokens: len(tokens), Fees: len(fees), Hop: -1, Err: ErrTooFewTokens}
	}
	if len(fees) != len(tokens)-1 {
		return &MalformedPathError{Tokens: len(tokens), Fees: len(fees), Hop: -1, Err: ErrTokenFeeCount}
	}
	for i, fee := range fees {
		if !fee.Valid() {
			return &MalformedPathError{Tokens: len(tokens), Fees: len(fees), Hop: i, Err: ErrUnknownFeeTier}
		}
	}
	return nil
}
