package fv

import (
	"math/big"

	"github.com/dmhacker/rlwe/ring"
	"github.com/dmhacker/rlwe/sampler"
)

// PrivateKey holds FV's secret polynomial s, with coefficients drawn
// uniformly from {-1, 0, 1}. It carries a non-owning reference to the
// Params it was generated under.
type PrivateKey struct {
	Params *Params
	S      *ring.Poly
}

// PublicKey is the pair (p0, p1): p1 = a uniform in R_q,
// p0 = -(a*s + e) mod q, mod phi.
type PublicKey struct {
	Params *Params
	P0, P1 *ring.Poly
}

// EvaluationKeyPair is one (b_i, a_i) entry of an evaluation key.
type EvaluationKeyPair struct {
	B, A *ring.Poly
}

// EvaluationKey is the ordered sequence of l+1 pairs enabling
// relinearization at the given level.
type EvaluationKey struct {
	Params *Params
	Level  int
	Pairs  []EvaluationKeyPair
}

// GeneratePrivateKey draws s uniformly over {-1,0,1}^n.
func GeneratePrivateKey(params *Params, src sampler.RandomSource) *PrivateKey {
	return &PrivateKey{Params: params, S: params.ternaryPoly(src)}
}

// GeneratePublicKey samples a uniform in R_q and e from the Gaussian
// error distribution, then returns (p0, p1) = (-(a*s+e), a).
func GeneratePublicKey(priv *PrivateKey, src sampler.RandomSource) *PublicKey {
	params := priv.Params
	a := params.uniformPoly(src)
	e := params.gaussianPoly(src)
	return GeneratePublicKeyWithAE(priv, a, e)
}

// GeneratePublicKeyWithAE is the deterministic variant of GeneratePublicKey
// taking caller-supplied a and e.
func GeneratePublicKeyWithAE(priv *PrivateKey, a, e *ring.Poly) *PublicKey {
	params := priv.Params
	r := params.R
	as := r.MulMod(a, priv.S)
	ase := r.Add(as, e)
	p0 := r.Neg(ase)
	return &PublicKey{Params: params, P0: p0, P1: a}
}

// GenerateEvaluationKey produces the l+1 pairs (b_i, a_i) with
// b_i = -(a_i*s + e_i) + w^i * s^level mod q, mod phi.
func GenerateEvaluationKey(priv *PrivateKey, level int, src sampler.RandomSource) *EvaluationKey {
	params := priv.Params
	r := params.R
	sLevel := r.PowMod(priv.S, level)

	pairs := make([]EvaluationKeyPair, params.L+1)
	wPow := big.NewInt(1)
	for i := 0; i <= params.L; i++ {
		a := params.uniformPoly(src)
		e := params.gaussianPoly(src)
		as := r.MulMod(a, priv.S)
		ase := r.Add(as, e)
		term := r.ScalarMul(sLevel, wPow)
		b := r.Sub(term, ase)
		pairs[i] = EvaluationKeyPair{B: b, A: a}
		wPow = new(big.Int).Mul(wPow, params.W)
	}

	return &EvaluationKey{Params: params, Level: level, Pairs: pairs}
}
