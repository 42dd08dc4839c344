// Package newhope implements the NewHope-Simple post-quantum ephemeral
// key-exchange: a Server and Client state machine producing a shared
// 32-byte secret via a clientbound/serverbound packet exchange.
package newhope

import (
	"math/big"

	"github.com/dmhacker/rlwe/ring"
	"github.com/dmhacker/rlwe/sampler"
)

// SeedLen and SharedKeyLen are the wire-format byte lengths fixed by the
// scheme.
const (
	SeedLen      = 32
	SharedKeyLen = 32
)

// DefaultN, DefaultQ, DefaultSigma are NewHope-Simple's default
// parameters.
const DefaultN = 1024

var (
	DefaultQ     = big.NewInt(12289)
	DefaultSigma = 2.828
)

// Params captures NewHope's key parameters: n, q, sigma, with the derived
// cyclotomic modulus and Knuth-Yao probability matrix.
type Params struct {
	R     *ring.Ring
	Sigma float64

	matrix *sampler.GaussianMatrix
}

// NewDefaultParams builds Params with NewHope's documented defaults.
func NewDefaultParams() *Params {
	return NewParams(DefaultN, DefaultQ, DefaultSigma)
}

// NewParams validates and constructs NewHope's KeyParameters.
func NewParams(n int, q *big.Int, sigma float64) *Params {
	return &Params{
		R:      ring.NewRing(n, q),
		Sigma:  sigma,
		matrix: sampler.NewGaussianMatrix(sigma),
	}
}

// CoeffBits returns ceil(log2(q)), the per-coefficient bit width used by
// the clientbound/serverbound packet's uncompressed polynomial fields.
func (p *Params) CoeffBits() uint {
	q := p.R.Modulus()
	bits := q.BitLen()
	// BitLen equals ceil(log2(q)) except when q is an exact power of two.
	if new(big.Int).Lsh(big.NewInt(1), uint(bits-1)).Cmp(q) == 0 {
		return uint(bits - 1)
	}
	return uint(bits)
}

func (p *Params) gaussianPoly(src sampler.RandomSource) *ring.Poly {
	return sampler.GaussianPoly(src, p.matrix, p.R.N(), p.R.Modulus())
}
