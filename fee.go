package urplanner

import "fmt"

// FeeSize is the width in bytes of an encoded fee tier.
const FeeSize = 3

// FeeTier is a pool fee class. Its magnitude is expressed in hundredths of a
// basis point, as used by concentrated-liquidity pools.
type FeeTier uint8

const (
	// FeeV3Lowest is the 0.01% tier.
	FeeV3Lowest FeeTier = iota + 1

	// FeeV3Low is the 0.05% tier.
	FeeV3Low

	// FeeV3Medium is the 0.3% tier.
	FeeV3Medium

	// FeeV3High is the 1% tier.
	FeeV3High

	// FeeV2Volatile is the fee charged by volatile v2-style pools (0.3%).
	FeeV2Volatile

	// FeeV2Stable is the fee charged by stable v2-style pools (0.05%).
	FeeV2Stable
)

var feeMagnitudes = map[FeeTier]uint32{
	FeeV3Lowest:   100,
	FeeV3Low:      500,
	FeeV3Medium:   3000,
	FeeV3High:     10000,
	FeeV2Volatile: 3000,
	FeeV2Stable:   500,
}

var feeNames = map[FeeTier]string{
	FeeV3Lowest:   "V3_LOWEST",
	FeeV3Low:      "V3_LOW",
	FeeV3Medium:   "V3_MEDIUM",
	FeeV3High:     "V3_HIGH",
	FeeV2Volatile: "V2_VOLATILE",
	FeeV2Stable:   "V2_STABLE",
}

// Valid reports whether f is one of the known fee tiers.
func (f FeeTier) Valid() bool {
	_, ok := feeMagnitudes[f]
	return ok
}

// Magnitude returns the canonical uint24 value of the tier, or 0 for an
// unknown tier.
func (f FeeTier) Magnitude() uint32 {
	return feeMagnitudes[f]
}

// Bytes returns the 3-byte big-endian encoding of the tier's magnitude.
func (f FeeTier) Bytes() [FeeSize]byte {
	m := f.Magnitude()
	return [FeeSize]byte{byte(m >> 16), byte(m >> 8), byte(m)}
}

func (f FeeTier) String() string {
	if name, ok := feeNames[f]; ok {
		return name
	}
	return fmt.Sprintf("FeeTier(%d)", uint8(f))
}

// ParseFeeTier resolves a tier from its name (e.g. "V3_LOW").
func ParseFeeTier(name string) (FeeTier, error) {
	for tier, n := range feeNames {
		if n == name {
			return tier, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFeeTier, name)
}
