package fv

import (
	"fmt"
	"math/big"

	"github.com/dmhacker/rlwe/ring"
)

// EncodeInteger encodes the integer x in base b (b >= 2) into a plaintext
// polynomial over Z_t[x]. For b == 2 each set bit of |x|
// becomes a 1 coefficient (t-1 if x is negative); for b > 2 each base-b
// digit of |x| becomes that digit's coefficient, sign-folded to t-digit
// for negative x.
func EncodeInteger(params *Params, x *big.Int, base int) *ring.Poly {
	if base < 2 {
		panic(fmt.Sprintf("fv: EncodeInteger base must be >= 2, got %d", base))
	}
	r := params.R
	out := r.NewPoly()
	neg := x.Sign() < 0
	mag := new(big.Int).Abs(x)

	if base == 2 {
		for i := 0; i < out.Len() && i <= mag.BitLen(); i++ {
			if mag.Bit(i) == 1 {
				if neg {
					out.SetCoeff(i, new(big.Int).Sub(params.T, big.NewInt(1)))
				} else {
					out.SetCoeff(i, big.NewInt(1))
				}
			}
		}
		return out
	}

	bigBase := big.NewInt(int64(base))
	rem := new(big.Int).Set(mag)
	digit := new(big.Int)
	for i := 0; i < out.Len() && rem.Sign() != 0; i++ {
		rem.DivMod(rem, bigBase, digit)
		if digit.Sign() == 0 {
			continue
		}
		if neg {
			out.SetCoeff(i, new(big.Int).Sub(params.T, digit))
		} else {
			out.SetCoeff(i, new(big.Int).Set(digit))
		}
	}
	return out
}

// DecodeInteger inverts EncodeInteger: each coefficient c_i is centered
// around t/2 into a signed digit s_i, and the result is sum(s_i * b^i).
func DecodeInteger(params *Params, p *ring.Poly, base int) *big.Int {
	if base < 2 {
		panic(fmt.Sprintf("fv: DecodeInteger base must be >= 2, got %d", base))
	}
	center := new(big.Int).Rsh(params.T, 1)
	bigBase := big.NewInt(int64(base))

	result := new(big.Int)
	power := big.NewInt(1)
	for i := 0; i < p.Len(); i++ {
		c := p.Coeff(i)
		s := new(big.Int).Set(c)
		if s.Cmp(center) > 0 {
			s.Sub(s, params.T)
		}
		if s.Sign() != 0 {
			result.Add(result, new(big.Int).Mul(s, power))
		}
		power.Mul(power, bigBase)
	}
	return result
}
