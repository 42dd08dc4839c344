package fv

import (
	"fmt"
	"math/big"

	"github.com/dmhacker/rlwe/polyutil"
	"github.com/dmhacker/rlwe/ring"
	"github.com/dmhacker/rlwe/sampler"
)

// Ciphertext is an ordered sequence of polynomials c = (c0, c1, ..., c_k-1).
// Fresh encryptions have length 2; multiplication lifts to length 3;
// relinearization reduces back to 2. Represented as a dynamic slice, never
// a fixed pair, since repeated multiplications grow the arity.
type Ciphertext struct {
	Params *Params
	Polys  []*ring.Poly
}

// Encrypt scales the plaintext by Delta, samples the ternary mask u and
// Gaussian errors e1/e2, and returns c0 = p0*u + e1 + m', c1 = p1*u + e2.
func Encrypt(pub *PublicKey, ptx *ring.Poly, src sampler.RandomSource) *Ciphertext {
	params := pub.Params
	r := params.R

	mPrime := r.ScalarMul(ptx, params.Delta)
	u := params.ternaryPoly(src)
	e1 := params.gaussianPoly(src)
	e2 := params.gaussianPoly(src)

	c0 := r.Add(r.MulMod(pub.P0, u), e1)
	c0 = r.Add(c0, mPrime)
	c1 := r.Add(r.MulMod(pub.P1, u), e2)

	return &Ciphertext{Params: params, Polys: []*ring.Poly{c0, c1}}
}

// Decrypt computes the secret-powers dot product sum(c_i * s^i), centers
// it into (-q/2, q/2], and rounds by the exact rational t/q back into Z_t.
func Decrypt(priv *PrivateKey, ctx *Ciphertext) *ring.Poly {
	params := priv.Params
	r := params.R

	mTilde := r.NewPoly()
	sPow := r.NewPoly()
	sPow.SetCoeff(0, big.NewInt(1))
	for i, c := range ctx.Polys {
		if i > 0 {
			sPow = r.MulMod(sPow, priv.S)
		}
		mTilde = r.Add(mTilde, r.MulMod(c, sPow))
	}

	centered := polyutil.CenterCoeffs(mTilde, r.Modulus())
	rounded := polyutil.RoundCoeffs(centered, params.T, r.Modulus())

	out := r.NewPoly()
	for i := 0; i < out.Len(); i++ {
		out.SetCoeff(i, new(big.Int).Mod(rounded.Coeff(i), params.T))
	}
	return out
}

// Add returns the ciphertext-wise polynomial sum, copying the raw tail of
// the longer operand when the operands have unequal arity.
func (c *Ciphertext) Add(other *Ciphertext) *Ciphertext {
	return c.zipWith(other, c.Params.R.Add)
}

// Sub returns c - other, the natural third leg of the ciphertext algebra
// alongside Add and Neg: Sub(a, b) == Add(a, Neg(b)).
func (c *Ciphertext) Sub(other *Ciphertext) *Ciphertext {
	return c.Add(other.Neg())
}

func (c *Ciphertext) zipWith(other *Ciphertext, op func(a, b *ring.Poly) *ring.Poly) *Ciphertext {
	n := len(c.Polys)
	if len(other.Polys) > n {
		n = len(other.Polys)
	}
	out := make([]*ring.Poly, n)
	for i := 0; i < n; i++ {
		a, b := c.Params.R.NewPoly(), c.Params.R.NewPoly()
		if i < len(c.Polys) {
			a = c.Polys[i]
		}
		if i < len(other.Polys) {
			b = other.Polys[i]
		}
		out[i] = op(a, b)
	}
	return &Ciphertext{Params: c.Params, Polys: out}
}

// Neg returns the coefficient-wise negation mod q of every polynomial in
// the ciphertext vector.
func (c *Ciphertext) Neg() *Ciphertext {
	r := c.Params.R
	out := make([]*ring.Poly, len(c.Polys))
	for i, p := range c.Polys {
		out[i] = r.Neg(p)
	}
	return &Ciphertext{Params: c.Params, Polys: out}
}

// Mul implements FV's scale-and-round ciphertext multiplication. A
// ciphertext of arity j+1 multiplied by one of arity k+1 produces a
// ciphertext of arity j+k+1: each output index is the convolution sum
// over Z[x]/(x^n+1) (MulNoMod/AddNoMod, lifted out of mod q), rescaled by
// the exact rational t/q and rounded back into R_q.
func (c *Ciphertext) Mul(other *Ciphertext) *Ciphertext {
	r := c.Params.R
	j := len(c.Polys) - 1
	k := len(other.Polys) - 1
	outLen := j + k + 1

	sums := make([]*ring.Poly, outLen)
	for m := range sums {
		sums[m] = r.NewPoly()
	}
	for rIdx := 0; rIdx <= j; rIdx++ {
		for sIdx := 0; sIdx <= k; sIdx++ {
			prod := r.MulNoMod(c.Polys[rIdx], other.Polys[sIdx])
			m := rIdx + sIdx
			sums[m] = r.AddNoMod(sums[m], prod)
		}
	}

	out := make([]*ring.Poly, outLen)
	for m := range sums {
		rounded := polyutil.RoundCoeffs(sums[m], c.Params.T, r.Modulus())
		reduced := r.NewPoly()
		for i := 0; i < reduced.Len(); i++ {
			reduced.SetCoeff(i, new(big.Int).Mod(rounded.Coeff(i), r.Modulus()))
		}
		out[m] = reduced
	}

	return &Ciphertext{Params: c.Params, Polys: out}
}

// Relinearize reduces a length-3 ciphertext (c0, c1, c2) back to length 2
// using an evaluation key at level 2: base-w decompose c2, then fold each
// digit against the evaluation key's (b_i, a_i) pairs. Arities other than
// 3 are undefined and this panics rather than silently generalizing.
func (c *Ciphertext) Relinearize(evk *EvaluationKey) *Ciphertext {
	if len(c.Polys) != 3 {
		panic(fmt.Sprintf("fv: Relinearize requires a length-3 ciphertext, got length %d", len(c.Polys)))
	}
	if evk.Level != 2 {
		panic(fmt.Sprintf("fv: Relinearize requires an evaluation key at level 2, got level %d", evk.Level))
	}

	params := c.Params
	r := params.R
	digits := decomposeBaseW(c.Polys[2], params)

	c0 := c.Polys[0]
	c1 := c.Polys[1]
	for i, digit := range digits {
		c0 = r.Add(c0, r.MulMod(evk.Pairs[i].B, digit))
		c1 = r.Add(c1, r.MulMod(evk.Pairs[i].A, digit))
	}

	out := []*ring.Poly{c0, c1}
	out = append(out, c.Polys[3:]...)
	return &Ciphertext{Params: params, Polys: out}
}

// decomposeBaseW writes c2 = sum_i c2^(i) * w^i with each coefficient of
// c2^(i) in [0, w).
func decomposeBaseW(c2 *ring.Poly, params *Params) []*ring.Poly {
	digits := make([]*ring.Poly, params.L+1)
	for i := range digits {
		digits[i] = ring.NewPoly(c2.Len())
	}
	for coeffIdx := 0; coeffIdx < c2.Len(); coeffIdx++ {
		v := new(big.Int).Set(c2.Coeff(coeffIdx))
		for i := 0; i <= params.L; i++ {
			digit := new(big.Int).And(v, params.WMask)
			digits[i].SetCoeff(coeffIdx, digit)
			v.Rsh(v, params.LogW)
		}
	}
	return digits
}

// Equal reports whether c and other hold coefficient-equal polynomial
// sequences under the same Params.
func (c *Ciphertext) Equal(other *Ciphertext) bool {
	if !c.Params.Equal(other.Params) || len(c.Polys) != len(other.Polys) {
		return false
	}
	for i := range c.Polys {
		if !c.Polys[i].Equal(other.Polys[i]) {
			return false
		}
	}
	return true
}
