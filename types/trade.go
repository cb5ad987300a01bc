package types

import "math/big"

// Direction selects which trade leg is fixed.
type Direction string

const (
	// DirectionExactInput fixes the input amount; the output floors at a minimum.
	DirectionExactInput Direction = "EXACT_INPUT"
	// DirectionExactOutput fixes the output amount; the input caps at a maximum.
	DirectionExactOutput Direction = "EXACT_OUTPUT"
)

// String returns a human-readable description of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionExactInput:
		return "exact input"
	case DirectionExactOutput:
		return "exact output"
	default:
		return "unknown"
	}
}

// Trade describes a priced swap along a route. Amounts are raw token units.
type Trade struct {
	Direction Direction
	Route     Route
	AmountIn  *big.Int
	AmountOut *big.Int
}

func (t Trade) InputIsNative() bool {
	return t.Route.Input.IsNative()
}

func (t Trade) OutputIsNative() bool {
	return t.Route.Output.IsNative()
}

// MaximumAmountIn is the most input the trade may consume under the given
// slippage tolerance. Exact-input trades spend exactly AmountIn; exact-output
// trades scale it up by the tolerance, rounding down.
func (t Trade) MaximumAmountIn(tolerance Percent) *big.Int {
	if t.Direction == DirectionExactInput {
		return new(big.Int).Set(t.AmountIn)
	}

	num, den := tolerance.fraction()
	scaled := new(big.Int).Mul(t.AmountIn, new(big.Int).Add(den, num))
	return scaled.Div(scaled, den)
}

// MinimumAmountOut is the least output the trade may yield under the given
// slippage tolerance. Exact-output trades receive exactly AmountOut;
// exact-input trades scale it down by the tolerance, rounding down.
func (t Trade) MinimumAmountOut(tolerance Percent) *big.Int {
	if t.Direction == DirectionExactOutput {
		return new(big.Int).Set(t.AmountOut)
	}

	num, den := tolerance.fraction()
	scaled := new(big.Int).Mul(t.AmountOut, den)
	return scaled.Div(scaled, new(big.Int).Add(den, num))
}
