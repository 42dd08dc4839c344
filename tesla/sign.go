package tesla

import (
	"math/big"

	"github.com/dmhacker/rlwe/polyutil"
	"github.com/dmhacker/rlwe/ring"
	"github.com/dmhacker/rlwe/sampler"
)

// Signature is Ring-TESLA's (z, c') pair: a ring element and a 32-byte
// hash.
type Signature struct {
	Params *Params
	Z      *ring.Poly
	CPrime [32]byte
}

// inRangeInclusive reports whether every coefficient of p has absolute
// value at most bound, i.e. lies in the closed interval [-bound, bound].
// polyutil.IsInRange is a strict-less-than check, so the bound shifts up
// by one.
func inRangeInclusive(p *ring.Poly, bound *big.Int) bool {
	return polyutil.IsInRange(p, new(big.Int).Add(bound, big.NewInt(1)))
}

// Sign implements Ring-TESLA's rejection-sampling signing loop: sample y,
// derive v1/v2, round them before hashing, compute z = y + s*c, and
// restart whenever z or either w_i falls outside its required bound.
// Verify rounds w1'/w2' the same way, so both sides feed Hash identically
// rounded inputs. The unrounded v1/v2 still feed the w_i computations.
func Sign(msg string, signer *SigningKey, src sampler.RandomSource) *Signature {
	params := signer.Params
	r := params.R

	negB := new(big.Int).Neg(params.B)
	hiY := new(big.Int).Add(params.B, big.NewInt(1))
	zBound := new(big.Int).Sub(params.B, params.U)
	wBound := new(big.Int).Sub(params.Pow2D, big.NewInt(params.L))

	for {
		y := sampler.UniformRangePoly(src, r.N(), negB, hiY)

		v1 := r.MulMod(params.A1, y)
		v2 := r.MulMod(params.A2, y)

		v1Round := polyutil.TeslaRound(v1, params.D)
		v2Round := polyutil.TeslaRound(v2, params.D)

		cPrime := Hash(v1Round, v2Round, msg, params)
		c := Encode(cPrime, params)

		z := r.AddNoMod(y, r.MulNoMod(signer.S, c))
		z = polyutil.CenterCoeffs(z, r.Modulus())
		if !inRangeInclusive(z, zBound) {
			continue
		}

		w1 := r.Sub(v1, r.MulMod(signer.E1, c))
		w2 := r.Sub(v2, r.MulMod(signer.E2, c))
		w1 = polyutil.CenterCoeffs(w1, params.Pow2D)
		w2 = polyutil.CenterCoeffs(w2, params.Pow2D)
		if !inRangeInclusive(w1, wBound) || !inRangeInclusive(w2, wBound) {
			continue
		}

		return &Signature{Params: params, Z: z, CPrime: cPrime}
	}
}

// Verify recomputes c from the signature's hash, rederives w1'/w2' from
// the verification key, rounds them the same way Sign rounded v1/v2, and
// accepts iff the recomputed hash matches and z is in range. Never
// restarts and never panics on a malformed signature; it only returns
// false.
func Verify(msg string, sig *Signature, verif *VerificationKey) bool {
	params := verif.Params
	r := params.R

	c := Encode(sig.CPrime, params)
	w1Prime := r.Sub(r.MulMod(params.A1, sig.Z), r.MulMod(verif.T1, c))
	w2Prime := r.Sub(r.MulMod(params.A2, sig.Z), r.MulMod(verif.T2, c))
	w1Prime = polyutil.TeslaRound(w1Prime, params.D)
	w2Prime = polyutil.TeslaRound(w2Prime, params.D)

	cDoublePrime := Hash(w1Prime, w2Prime, msg, params)
	if cDoublePrime != sig.CPrime {
		return false
	}

	zBound := new(big.Int).Sub(params.B, params.U)
	return inRangeInclusive(sig.Z, zBound)
}
