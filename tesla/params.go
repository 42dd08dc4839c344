// Package tesla implements the Ring-TESLA lattice-based signature scheme:
// signing/verification key generation, the ChaCha20-backed sparse hash
// encoding, and the rejection-sampling sign/verify loop, built on the
// shared ring/sampler/polyutil core.
package tesla

import (
	"math/big"

	"github.com/dmhacker/rlwe/ring"
	"github.com/dmhacker/rlwe/sampler"
)

// DefaultN, DefaultSigma, DefaultL, DefaultW, DefaultD are Ring-TESLA's
// 128-bit-security defaults.
const (
	DefaultN = 512
	DefaultL = 2766
	DefaultW = 19
	DefaultD = 23
)

var (
	DefaultSigma = 52.0
	DefaultB     = big.NewInt(4194303)
	DefaultU     = big.NewInt(3173)
	DefaultQ     = big.NewInt(39960577)
)

// Params captures Ring-TESLA's key parameters: n, sigma, L, w, B, U, d,
// q, and the shared constants (a1, a2), plus the derived 2^d and
// Knuth-Yao probability matrix.
type Params struct {
	R     *ring.Ring
	Sigma float64
	L     int64
	W     int
	B     *big.Int
	U     *big.Int
	D     uint
	Pow2D *big.Int

	A1, A2 *ring.Poly

	matrix *sampler.GaussianMatrix
}

// NewDefaultParams builds Params with Ring-TESLA's documented defaults,
// sampling the shared constants (a1, a2) uniformly from src.
func NewDefaultParams(src sampler.RandomSource) *Params {
	return NewParams(DefaultN, DefaultSigma, DefaultL, DefaultW, DefaultB, DefaultU, DefaultD, DefaultQ, src)
}

// NewParams validates and constructs Ring-TESLA's KeyParameters, sampling
// the shared constants (a1, a2) uniformly in R_q from src.
func NewParams(n int, sigma float64, l int64, w int, b, u *big.Int, d uint, q *big.Int, src sampler.RandomSource) *Params {
	a1 := sampler.UniformPoly(src, n, q)
	a2 := sampler.UniformPoly(src, n, q)
	return NewParamsWithConstants(n, sigma, l, w, b, u, d, q, a1, a2)
}

// NewParamsWithConstants is the deterministic variant of NewParams,
// taking caller-supplied (a1, a2) instead of sampling them.
func NewParamsWithConstants(n int, sigma float64, l int64, w int, b, u *big.Int, d uint, q *big.Int, a1, a2 *ring.Poly) *Params {
	if w <= 0 {
		panic("tesla: encoding weight w must be positive")
	}
	return &Params{
		R:      ring.NewRing(n, q),
		Sigma:  sigma,
		L:      l,
		W:      w,
		B:      new(big.Int).Set(b),
		U:      new(big.Int).Set(u),
		D:      d,
		Pow2D:  new(big.Int).Lsh(big.NewInt(1), d),
		A1:     a1,
		A2:     a2,
		matrix: sampler.NewGaussianMatrix(sigma),
	}
}

// Equal reports structural equality of the defining inputs.
func (p *Params) Equal(other *Params) bool {
	return p.R.Equal(other.R) && p.Sigma == other.Sigma && p.L == other.L &&
		p.W == other.W && p.B.Cmp(other.B) == 0 && p.U.Cmp(other.U) == 0 && p.D == other.D
}

func (p *Params) gaussianPoly(src sampler.RandomSource) *ring.Poly {
	return sampler.GaussianPoly(src, p.matrix, p.R.N(), p.R.Modulus())
}
