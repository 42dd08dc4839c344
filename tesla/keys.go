package tesla

import (
	"math/big"

	"github.com/dmhacker/rlwe/polyutil"
	"github.com/dmhacker/rlwe/ring"
	"github.com/dmhacker/rlwe/sampler"
)

// SigningKey is Ring-TESLA's secret state: the secret polynomial s and its
// paired Gaussian errors (e1, e2), each sampled from the same probability
// matrix.
type SigningKey struct {
	Params *Params
	S      *ring.Poly
	E1, E2 *ring.Poly
}

// VerificationKey is Ring-TESLA's public state: t_i = a_i*s + e_i mod q,
// mod phi, for i in {1,2}.
type VerificationKey struct {
	Params *Params
	T1, T2 *ring.Poly
}

// GenerateSigningKey samples s, e1, e2 independently from the Gaussian
// matrix in params, retrying e1 and e2 until each one's error weight
// satisfies the L bound signing correctness requires.
func GenerateSigningKey(params *Params, src sampler.RandomSource) *SigningKey {
	s := params.gaussianPoly(src)
	e1 := sampleBoundedError(params, src)
	e2 := sampleBoundedError(params, src)
	return &SigningKey{Params: params, S: s, E1: e1, E2: e2}
}

// sampleBoundedError draws Gaussian polynomials from params until the sum
// of the top w absolute-value coefficients (centered mod q) is at most
// params.L.
func sampleBoundedError(params *Params, src sampler.RandomSource) *ring.Poly {
	for {
		e := params.gaussianPoly(src)
		if topWAbsSum(e, params) <= params.L {
			return e
		}
	}
}

// topWAbsSum returns the sum of the w largest centered-absolute-value
// coefficients of p.
func topWAbsSum(p *ring.Poly, params *Params) int64 {
	centered := polyutil.CenterCoeffs(p, params.R.Modulus())
	abs := make([]int64, centered.Len())
	for i := 0; i < centered.Len(); i++ {
		abs[i] = new(big.Int).Abs(centered.Coeff(i)).Int64()
	}
	for i := 0; i < len(abs); i++ {
		for j := i + 1; j < len(abs); j++ {
			if abs[j] > abs[i] {
				abs[i], abs[j] = abs[j], abs[i]
			}
		}
	}
	w := params.W
	if w > len(abs) {
		w = len(abs)
	}
	var sum int64
	for i := 0; i < w; i++ {
		sum += abs[i]
	}
	return sum
}

// GenerateVerificationKey derives the public (t1, t2) pair from a signing
// key: t_i = a_i*s + e_i mod q, mod phi.
func GenerateVerificationKey(signer *SigningKey) *VerificationKey {
	params := signer.Params
	t1 := params.R.Add(params.R.MulMod(params.A1, signer.S), signer.E1)
	t2 := params.R.Add(params.R.MulMod(params.A2, signer.S), signer.E2)
	return &VerificationKey{Params: params, T1: t1, T2: t2}
}
