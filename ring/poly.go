// Package ring implements arbitrary-precision polynomial arithmetic over
// the cyclotomic ring Z_q[x]/(x^n+1), the algebraic substrate shared by the
// FV, NewHope-Simple, and Ring-TESLA schemes in this module.
package ring

import "math/big"

// Poly is an element of Z[x], represented as an ordered sequence of
// coefficients indexed by degree. A nil coefficient is treated as zero.
// Poly is not safe for concurrent modification.
type Poly struct {
	Coeffs []*big.Int
}

// NewPoly allocates a zero polynomial with room for n coefficients.
func NewPoly(n int) *Poly {
	p := &Poly{Coeffs: make([]*big.Int, n)}
	for i := range p.Coeffs {
		p.Coeffs[i] = new(big.Int)
	}
	return p
}

// NewPolyFromCoeffs builds a polynomial directly from a coefficient slice,
// copying each value so the caller's slice may be reused.
func NewPolyFromCoeffs(coeffs []*big.Int) *Poly {
	p := &Poly{Coeffs: make([]*big.Int, len(coeffs))}
	for i, c := range coeffs {
		if c == nil {
			p.Coeffs[i] = new(big.Int)
		} else {
			p.Coeffs[i] = new(big.Int).Set(c)
		}
	}
	return p
}

// Len returns the number of coefficient slots the polynomial was allocated
// with (not the same as the degree, since trailing coefficients may be 0).
func (p *Poly) Len() int {
	return len(p.Coeffs)
}

// Coeff returns the coefficient at degree i, or zero if i is out of range.
func (p *Poly) Coeff(i int) *big.Int {
	if i < 0 || i >= len(p.Coeffs) {
		return new(big.Int)
	}
	if p.Coeffs[i] == nil {
		return new(big.Int)
	}
	return p.Coeffs[i]
}

// SetCoeff sets the coefficient at degree i. Panics if i is out of range.
func (p *Poly) SetCoeff(i int, v *big.Int) {
	p.Coeffs[i] = new(big.Int).Set(v)
}

// Degree returns the index of the highest non-zero coefficient, or -1 if
// the polynomial is identically zero.
func (p *Poly) Degree() int {
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		if p.Coeffs[i] != nil && p.Coeffs[i].Sign() != 0 {
			return i
		}
	}
	return -1
}

// Clear zeroes every coefficient in place.
func (p *Poly) Clear() {
	for i := range p.Coeffs {
		p.Coeffs[i] = new(big.Int)
	}
}

// Copy returns a deep copy of p.
func (p *Poly) Copy() *Poly {
	return NewPolyFromCoeffs(p.Coeffs)
}

// Equal reports whether p and other have identical coefficient sequences,
// treating missing trailing coefficients as zero.
func (p *Poly) Equal(other *Poly) bool {
	n := len(p.Coeffs)
	if len(other.Coeffs) > n {
		n = len(other.Coeffs)
	}
	for i := 0; i < n; i++ {
		if p.Coeff(i).Cmp(other.Coeff(i)) != 0 {
			return false
		}
	}
	return true
}
