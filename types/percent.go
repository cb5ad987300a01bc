package types

import "math/big"

// Percent is a ratio expressed as an integer fraction, used for slippage
// tolerances. Integer fractions keep the math exact over raw token amounts.
// The zero value means no tolerance.
type Percent struct {
	Numerator   int64
	Denominator int64
}

// NewPercentFromBips builds a Percent from basis points
// (50 bips = 0.5%).
func NewPercentFromBips(bips int64) Percent {
	return Percent{Numerator: bips, Denominator: 10_000}
}

// IsZero reports whether the tolerance is zero.
func (p Percent) IsZero() bool {
	return p.Numerator == 0
}

// fraction returns the ratio as big integers, treating an unset denominator
// as 1 so the zero value stays usable.
func (p Percent) fraction() (num, den *big.Int) {
	d := p.Denominator
	if d == 0 {
		d = 1
	}
	return big.NewInt(p.Numerator), big.NewInt(d)
}
