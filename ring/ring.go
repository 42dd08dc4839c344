package ring

import (
	"fmt"
	"math/big"
)

// Ring represents R_q = Z_q[x]/(x^n+1) for a power-of-two degree n and
// coefficient modulus q. A Ring is immutable after construction and may be
// shared by reference across every key and ciphertext derived from it.
type Ring struct {
	n int
	q *big.Int
}

// NewRing validates and constructs the ring Z_q[x]/(x^n+1). It panics if n
// is not a positive, even degree: a malformed degree is a programming
// error, not a recoverable condition.
func NewRing(n int, q *big.Int) *Ring {
	if n <= 0 || n%2 != 0 {
		panic(fmt.Sprintf("ring: invalid degree %d (must be even and positive)", n))
	}
	if q == nil || q.Sign() <= 0 {
		panic("ring: modulus must be a positive integer")
	}
	return &Ring{n: n, q: new(big.Int).Set(q)}
}

// N returns the polynomial degree bound n.
func (r *Ring) N() int { return r.n }

// Modulus returns the coefficient modulus q.
func (r *Ring) Modulus() *big.Int { return new(big.Int).Set(r.q) }

// Phi returns the cyclotomic polynomial modulus x^n + 1.
func (r *Ring) Phi() *Poly {
	p := NewPoly(r.n + 1)
	p.SetCoeff(0, big.NewInt(1))
	p.SetCoeff(r.n, big.NewInt(1))
	return p
}

// NewPoly allocates a zero polynomial of degree < n.
func (r *Ring) NewPoly() *Poly {
	return NewPoly(r.n)
}

// Equal reports structural equality of two rings' defining parameters
// (n, q).
func (r *Ring) Equal(other *Ring) bool {
	return r.n == other.n && r.q.Cmp(other.q) == 0
}

// mod reduces v into [0, q).
func (r *Ring) mod(v *big.Int) *big.Int {
	out := new(big.Int).Mod(v, r.q)
	return out
}

// ReduceCyclotomic folds any coefficients at degree >= n back down using
// x^n = -1, producing a polynomial of length n. It does not reduce
// coefficients mod q.
func (r *Ring) ReduceCyclotomic(p *Poly) *Poly {
	out := r.NewPoly()
	for i, c := range p.Coeffs {
		if c == nil || c.Sign() == 0 {
			continue
		}
		fold := i / r.n
		j := i % r.n
		v := new(big.Int).Set(c)
		if fold%2 == 1 {
			v.Neg(v)
		}
		out.Coeffs[j].Add(out.Coeffs[j], v)
	}
	return out
}

// Reduce reduces p modulo both q and phi, returning a fresh polynomial of
// length n with every coefficient in [0, q).
func (r *Ring) Reduce(p *Poly) *Poly {
	out := r.ReduceCyclotomic(p)
	for i, c := range out.Coeffs {
		out.Coeffs[i] = r.mod(c)
	}
	return out
}

func (r *Ring) align(a, b *Poly) (int, int) {
	min, max := a.Len(), b.Len()
	if min > max {
		min, max = max, min
	}
	return min, max
}

// Add returns a+b mod q, copying the raw tail of the longer operand
// unchanged when the operands have unequal length.
func (r *Ring) Add(a, b *Poly) *Poly {
	minLen, maxLen := r.align(a, b)
	longer := a
	if b.Len() > a.Len() {
		longer = b
	}
	out := NewPoly(maxLen)
	for i := 0; i < minLen; i++ {
		out.Coeffs[i] = r.mod(new(big.Int).Add(a.Coeff(i), b.Coeff(i)))
	}
	for i := minLen; i < maxLen; i++ {
		out.Coeffs[i] = new(big.Int).Set(longer.Coeff(i))
	}
	return out
}

// Sub returns a-b mod q, with the same unequal-arity tail behavior as Add
// (the tail of the longer operand is copied, negated if it came from b).
func (r *Ring) Sub(a, b *Poly) *Poly {
	minLen, maxLen := r.align(a, b)
	out := NewPoly(maxLen)
	for i := 0; i < minLen; i++ {
		out.Coeffs[i] = r.mod(new(big.Int).Sub(a.Coeff(i), b.Coeff(i)))
	}
	for i := minLen; i < maxLen; i++ {
		if a.Len() > b.Len() {
			out.Coeffs[i] = new(big.Int).Set(a.Coeff(i))
			continue
		}
		v := r.mod(b.Coeff(i))
		if v.Sign() == 0 {
			out.Coeffs[i] = new(big.Int)
		} else {
			out.Coeffs[i] = new(big.Int).Sub(r.q, v)
		}
	}
	return out
}

// Neg returns -p mod q, coefficient-wise: q-c for non-zero coefficients, 0
// for zero coefficients.
func (r *Ring) Neg(p *Poly) *Poly {
	out := NewPoly(p.Len())
	for i, c := range p.Coeffs {
		v := r.mod(c)
		if v.Sign() == 0 {
			out.Coeffs[i] = new(big.Int)
		} else {
			out.Coeffs[i] = new(big.Int).Sub(r.q, v)
		}
	}
	return out
}

// ScalarMul returns k*p mod q, pointwise.
func (r *Ring) ScalarMul(p *Poly, k *big.Int) *Poly {
	out := NewPoly(p.Len())
	for i, c := range p.Coeffs {
		out.Coeffs[i] = r.mod(new(big.Int).Mul(c, k))
	}
	return out
}

// MulNoMod multiplies a and b as elements of Z[x], reducing only by the
// cyclotomic modulus x^n+1 and NOT by q. FV's ciphertext multiplication
// needs this: the scale-and-round step must see the full-size integer sum
// before it is brought back mod q.
func (r *Ring) MulNoMod(a, b *Poly) *Poly {
	raw := NewPoly(a.Degree() + b.Degree() + 2)
	if a.Degree() < 0 || b.Degree() < 0 {
		return r.NewPoly()
	}
	for i := 0; i <= a.Degree(); i++ {
		ai := a.Coeff(i)
		if ai.Sign() == 0 {
			continue
		}
		for j := 0; j <= b.Degree(); j++ {
			bj := b.Coeff(j)
			if bj.Sign() == 0 {
				continue
			}
			raw.Coeffs[i+j].Add(raw.Coeffs[i+j], new(big.Int).Mul(ai, bj))
		}
	}
	return r.ReduceCyclotomic(raw)
}

// AddNoMod adds a and b coefficient-wise in Z[x], without reducing modulo
// q. FV's ciphertext multiplication accumulates its per-output-index sum
// over c_r*c'_s this way before a single round-and-reduce step brings it
// back into R_q.
func (r *Ring) AddNoMod(a, b *Poly) *Poly {
	minLen, maxLen := r.align(a, b)
	longer := a
	if b.Len() > a.Len() {
		longer = b
	}
	out := NewPoly(maxLen)
	for i := 0; i < minLen; i++ {
		out.Coeffs[i] = new(big.Int).Add(a.Coeff(i), b.Coeff(i))
	}
	for i := minLen; i < maxLen; i++ {
		out.Coeffs[i] = new(big.Int).Set(longer.Coeff(i))
	}
	return out
}

// MulMod multiplies a and b reduced modulo both phi and q, using
// schoolbook O(n^2) multiplication.
func (r *Ring) MulMod(a, b *Poly) *Poly {
	p := r.MulNoMod(a, b)
	for i, c := range p.Coeffs {
		p.Coeffs[i] = r.mod(c)
	}
	return p
}

// PowMod computes a^k mod (q, phi) via repeated squaring. k must be
// non-negative.
func (r *Ring) PowMod(a *Poly, k int) *Poly {
	if k < 0 {
		panic("ring: PowMod exponent must be non-negative")
	}
	result := r.NewPoly()
	result.SetCoeff(0, big.NewInt(1))
	base := r.Reduce(a)
	for k > 0 {
		if k&1 == 1 {
			result = r.MulMod(result, base)
		}
		base = r.MulMod(base, base)
		k >>= 1
	}
	return result
}
