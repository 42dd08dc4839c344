// Package fv implements the FV somewhat-homomorphic public-key encryption
// scheme: key generation, encryption/decryption, ciphertext addition and
// multiplication, and relinearization via base-w key switching, all built
// on the shared ring/sampler/polyutil core.
package fv

import (
	"fmt"
	"math/big"

	"github.com/dmhacker/rlwe/ring"
	"github.com/dmhacker/rlwe/sampler"
)

// Params captures FV's key parameters: immutable after construction,
// shared by reference across every key and ciphertext derived from it.
type Params struct {
	R     *ring.Ring
	T     *big.Int
	LogW  uint
	Sigma float64

	// Delta = floor(q/t), the plaintext-to-ciphertext scaling factor.
	Delta *big.Int
	// W = 2^LogW, the relinearization decomposition base.
	W *big.Int
	// WMask = W-1.
	WMask *big.Int
	// L = floor(log_w(q)), the number of base-w digits needed for q.
	L int

	matrix *sampler.GaussianMatrix
}

// DefaultN, DefaultQ, DefaultT, DefaultLogW, DefaultSigma are FV's
// default parameters: n=1024, q=12289, t=2, log_w=32, sigma=3.192.
const (
	DefaultN    = 1024
	DefaultLogW = 32
)

var (
	DefaultQ     = big.NewInt(12289)
	DefaultT     = big.NewInt(2)
	DefaultSigma = 3.192
)

// NewDefaultParams builds Params with FV's documented defaults.
func NewDefaultParams() *Params {
	return NewParams(DefaultN, DefaultQ, DefaultT, DefaultLogW, DefaultSigma)
}

// NewParams validates and constructs FV's KeyParameters. It panics on a
// malformed parameter set (t <= 1, logW == 0, or an n or q that
// ring.NewRing rejects), mirroring ring.NewRing's own
// precondition-violation convention.
func NewParams(n int, q, t *big.Int, logW uint, sigma float64) *Params {
	if t == nil || t.Cmp(big.NewInt(1)) <= 0 {
		panic(fmt.Sprintf("fv: invalid plaintext modulus t=%v (must be > 1)", t))
	}
	if logW == 0 {
		panic("fv: logW must be positive")
	}
	r := ring.NewRing(n, q)

	delta := new(big.Int).Div(q, t)
	w := new(big.Int).Lsh(big.NewInt(1), logW)
	wMask := new(big.Int).Sub(w, big.NewInt(1))
	l := (q.BitLen() - 1) / int(logW)

	return &Params{
		R:      r,
		T:      new(big.Int).Set(t),
		LogW:   logW,
		Sigma:  sigma,
		Delta:  delta,
		W:      w,
		WMask:  wMask,
		L:      l,
		matrix: sampler.NewGaussianMatrix(sigma),
	}
}

// Equal reports structural equality of the defining inputs (n, q, t,
// log_w, sigma).
func (p *Params) Equal(other *Params) bool {
	return p.R.Equal(other.R) && p.T.Cmp(other.T) == 0 &&
		p.LogW == other.LogW && p.Sigma == other.Sigma
}

func (p *Params) gaussianPoly(src sampler.RandomSource) *ring.Poly {
	return sampler.GaussianPoly(src, p.matrix, p.R.N(), p.R.Modulus())
}

func (p *Params) ternaryPoly(src sampler.RandomSource) *ring.Poly {
	return sampler.TernaryPoly(src, p.R.N(), p.R.Modulus())
}

func (p *Params) uniformPoly(src sampler.RandomSource) *ring.Poly {
	return sampler.UniformPoly(src, p.R.N(), p.R.Modulus())
}
