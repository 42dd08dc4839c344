// Package polyutil implements the coefficient-wise rounding, centering, and
// bit-manipulation helpers shared by FV's rescaling step and Ring-TESLA's
// [·]_{d} rounding operator. Results are plain (possibly negative) integers,
// not reduced into the [0, q) residues ring.Ring stores.
package polyutil

import (
	"math/big"

	"golang.org/x/exp/slices"

	"github.com/dmhacker/rlwe/ring"
)

// Center maps an arbitrary integer v to its centered representative modulo
// q, in (-q/2, q/2]: reduce into [0, q) first, then subtract q when the
// residue exceeds q/2. Reducing unconditionally (not just subtracting)
// lets this double as Ring-TESLA's low-bits extraction, whose input (a
// mod-q residue) is never pre-reduced modulo the much smaller 2^d before
// centering.
func Center(v, q *big.Int) *big.Int {
	half := new(big.Int).Rsh(q, 1)
	r := new(big.Int).Mod(v, q)
	if r.Cmp(half) > 0 {
		return r.Sub(r, q)
	}
	return r
}

// CenterCoeffs returns p with every coefficient mapped to its centered
// representative in (-q/2, q/2].
func CenterCoeffs(p *ring.Poly, q *big.Int) *ring.Poly {
	out := ring.NewPoly(p.Len())
	for i := 0; i < p.Len(); i++ {
		out.SetCoeff(i, Center(p.Coeff(i), q))
	}
	return out
}

// RoundCoeffs scales every coefficient of p by the exact rational num/den
// and rounds half-away-from-zero, returning plain integers (not reduced
// modulo any ring). big.Rat keeps the scale exact; a float64 scale would
// bias the rounding for large coefficients.
func RoundCoeffs(p *ring.Poly, num, den *big.Int) *ring.Poly {
	out := ring.NewPoly(p.Len())
	scale := new(big.Rat).SetFrac(num, den)
	for i := 0; i < p.Len(); i++ {
		out.SetCoeff(i, roundRatHalfAwayFromZero(new(big.Rat).Mul(new(big.Rat).SetInt(p.Coeff(i)), scale)))
	}
	return out
}

// roundRatHalfAwayFromZero rounds r to the nearest integer, breaking exact
// halves away from zero (1.5 -> 2, -1.5 -> -2).
func roundRatHalfAwayFromZero(r *big.Rat) *big.Int {
	num := new(big.Int).Set(r.Num())
	den := new(big.Int).Set(r.Denom())
	neg := num.Sign() < 0
	if neg {
		num.Neg(num)
	}
	result := new(big.Int).Quo(num, den)
	rmdr := new(big.Int).Mod(num, den)
	twice := new(big.Int).Lsh(rmdr, 1)
	if twice.Cmp(den) >= 0 {
		result.Add(result, big.NewInt(1))
	}
	if neg {
		result.Neg(result)
	}
	return result
}

// TeslaRound computes c := (c - [c]_{2^d}) / 2^d per coefficient, where
// [c]_{2^d} is c centered modulo 2^d (Center(c, 2^d)). This drops the d
// least-significant bits, folding them in via symmetric rounding rather
// than truncation.
func TeslaRound(p *ring.Poly, d uint) *ring.Poly {
	divisor := new(big.Int).Lsh(big.NewInt(1), d)
	out := ring.NewPoly(p.Len())
	for i := 0; i < p.Len(); i++ {
		c := p.Coeff(i)
		centered := Center(c, divisor)
		quotient := new(big.Int).Sub(c, centered)
		quotient.Div(quotient, divisor)
		out.SetCoeff(i, quotient)
	}
	return out
}

// RightShiftCoeffs floor-divides every coefficient by 2^d (an arithmetic
// right shift: floor(c / 2^d), not truncation toward zero). big.Int.Rsh
// already implements two's-complement arithmetic shift regardless of
// sign.
func RightShiftCoeffs(p *ring.Poly, d uint) *ring.Poly {
	out := ring.NewPoly(p.Len())
	for i := 0; i < p.Len(); i++ {
		out.SetCoeff(i, new(big.Int).Rsh(p.Coeff(i), d))
	}
	return out
}

// AndCoeffs returns p with every coefficient bitwise-ANDed against mask.
func AndCoeffs(p *ring.Poly, mask *big.Int) *ring.Poly {
	out := ring.NewPoly(p.Len())
	for i := 0; i < p.Len(); i++ {
		out.SetCoeff(i, new(big.Int).And(p.Coeff(i), mask))
	}
	return out
}

// IsInRange reports whether every coefficient of p has absolute value
// strictly less than bound.
func IsInRange(p *ring.Poly, bound *big.Int) bool {
	return !slices.ContainsFunc(p.Coeffs, func(c *big.Int) bool {
		return new(big.Int).Abs(new(big.Int).Set(c)).Cmp(bound) >= 0
	})
}
