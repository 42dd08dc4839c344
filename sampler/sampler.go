// Package sampler implements the randomized polynomial generators shared by
// FV, NewHope-Simple, and Ring-TESLA: uniform sampling for public keys and
// ciphertext masks, ternary sampling for secret keys, and Knuth-Yao discrete
// Gaussian sampling for error terms and TESLA's secret/error polynomials.
package sampler

import (
	"math/big"

	"github.com/dmhacker/rlwe/ring"
	"github.com/dmhacker/rlwe/xof"
)

// RandomSource is re-exported from xof so callers only need to import one
// package when wiring entropy into a sampler call.
type RandomSource = xof.RandomSource

// UniformPoly draws a polynomial of degree < n with coefficients uniform in
// [0, q), via rejection sampling against the smallest all-ones mask
// covering q-1: draw ceil(bitlen/8) bytes, mask off the high bits, reject
// values >= q.
func UniformPoly(src RandomSource, n int, q *big.Int) *ring.Poly {
	mask, nbytes := uniformMask(q)
	p := ring.NewPoly(n)
	buf := make([]byte, nbytes)
	for i := 0; i < n; i++ {
		p.SetCoeff(i, uniformScalar(src, q, mask, buf))
	}
	return p
}

// uniformMask returns the smallest all-ones bitmask, and its byte length,
// covering the bit length of q-1.
func uniformMask(q *big.Int) (*big.Int, int) {
	bitLen := new(big.Int).Sub(q, big.NewInt(1)).BitLen()
	if bitLen == 0 {
		bitLen = 1
	}
	nbytes := (bitLen + 7) / 8
	mask := new(big.Int).Lsh(big.NewInt(1), uint(bitLen))
	mask.Sub(mask, big.NewInt(1))
	return mask, nbytes
}

// uniformScalar draws a single value uniform in [0, q) by rejection
// sampling, reusing the caller-provided scratch buffer.
func uniformScalar(src RandomSource, q, mask *big.Int, buf []byte) *big.Int {
	v := new(big.Int)
	for {
		if err := src.Read(buf); err != nil {
			panic("sampler: entropy source failed: " + err.Error())
		}
		v.SetBytes(buf)
		v.And(v, mask)
		if v.Cmp(q) < 0 {
			return v
		}
	}
}

// UniformRangePoly draws a polynomial of degree < n with coefficients
// independently uniform in [lo, hi), represented as raw (possibly
// negative) big.Int values rather than residues mod any ring modulus.
// Ring-TESLA uses this to sample y with coefficients in [-B, B] before y
// is ever reduced mod q.
func UniformRangePoly(src RandomSource, n int, lo, hi *big.Int) *ring.Poly {
	span := new(big.Int).Sub(hi, lo)
	if span.Sign() <= 0 {
		panic("sampler: UniformRangePoly requires hi > lo")
	}
	mask, nbytes := uniformMask(span)
	p := ring.NewPoly(n)
	buf := make([]byte, nbytes)
	for i := 0; i < n; i++ {
		v := uniformScalar(src, span, mask, buf)
		p.SetCoeff(i, v.Add(v, lo))
	}
	return p
}

// TernaryPoly draws a polynomial of degree < n with coefficients uniform in
// {-1, 0, 1} represented in [0, q): q-1 for -1, 0 for 0, 1 for 1.
func TernaryPoly(src RandomSource, n int, q *big.Int) *ring.Poly {
	p := ring.NewPoly(n)
	buf := make([]byte, 1)
	for i := 0; i < n; i++ {
		var v byte
		for {
			if err := src.Read(buf); err != nil {
				panic("sampler: entropy source failed: " + err.Error())
			}
			v = buf[0] & 0x3
			if v != 3 {
				break
			}
		}
		switch v {
		case 0:
			p.SetCoeff(i, big.NewInt(0))
		case 1:
			p.SetCoeff(i, big.NewInt(1))
		case 2:
			p.SetCoeff(i, new(big.Int).Sub(q, big.NewInt(1)))
		}
	}
	return p
}

// GaussianPoly draws a polynomial of degree < n with coefficients drawn
// independently from the discrete Gaussian described by m, each folded into
// [0, q).
func GaussianPoly(src RandomSource, m *GaussianMatrix, n int, q *big.Int) *ring.Poly {
	p := ring.NewPoly(n)
	for i := 0; i < n; i++ {
		v := m.Sample(src)
		if v < 0 {
			p.SetCoeff(i, new(big.Int).Sub(q, big.NewInt(int64(-v))))
		} else {
			p.SetCoeff(i, big.NewInt(int64(v)))
		}
	}
	return p
}
