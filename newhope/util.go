package newhope

import (
	"math/big"

	"github.com/dmhacker/rlwe/ring"
	"github.com/dmhacker/rlwe/xof"
)

// Parse expands a 32-byte seed via SHAKE-128 into a polynomial of n
// coefficients uniform in [0, 5q), using rejection sampling over
// big-endian 16-bit words.
func Parse(seed []byte, n int, q *big.Int) *ring.Poly {
	words := xof.NewShake128Words(seed)
	fiveQ := new(big.Int).Mul(big.NewInt(5), q)

	p := ring.NewPoly(n)
	for i := 0; i < n; i++ {
		for {
			coeff := new(big.Int).SetUint64(uint64(words.Next16()))
			if coeff.Cmp(fiveQ) < 0 {
				p.SetCoeff(i, coeff)
				break
			}
		}
	}
	return p
}

// NHSEncode maps a 256-bit message v onto a degree-1024 polynomial using
// NewHope-Simple's redundancy-4 repetition code: each of the 256 message
// bits sets 4 coefficients, spaced 256 apart, to floor(q/2) when the bit
// is 1 and 0 otherwise.
func NHSEncode(v [SharedKeyLen]byte, q *big.Int) *ring.Poly {
	q2 := new(big.Int).Rsh(q, 1)
	k := ring.NewPoly(1024)
	for i := 0; i < 256; i++ {
		byteVal := v[i/8]
		bit := (byteVal >> uint(7-i%8)) & 1
		val := big.NewInt(0)
		if bit == 1 {
			val = new(big.Int).Set(q2)
		}
		k.SetCoeff(i, val)
		k.SetCoeff(i+256, val)
		k.SetCoeff(i+512, val)
		k.SetCoeff(i+768, val)
	}
	return k
}

// NHSDecode inverts NHSEncode's repetition code: for each of the 256
// message bits, accumulate each redundant coefficient's distance to
// floor(q/2) and declare the bit 1 when the total stays below q. Summing
// distances rather than raw residues keeps a 0-bit coefficient that the
// mod-q reduction wrapped up near q from being mistaken for a q/2 one;
// when every coefficient sits at or above floor(q/2) the total collapses
// to the plain sum of the four residues minus 4*floor(q/2).
func NHSDecode(k *ring.Poly, q *big.Int) [SharedKeyLen]byte {
	var v [SharedKeyLen]byte
	q2 := new(big.Int).Rsh(q, 1)
	for i := 0; i < 256; i++ {
		t := new(big.Int)
		for j := 0; j < 4; j++ {
			d := new(big.Int).Sub(k.Coeff(i+256*j), q2)
			t.Add(t, d.Abs(d))
		}
		if t.Cmp(q) < 0 {
			v[i/8] |= 1 << uint(7-i%8)
		}
	}
	return v
}

// NHSCompress rescales each coefficient of c from [0, q) down to 3 bits
// via rounded division: cc_i = floor((c_i*8 + q/2) / q) mod 8. Rounded
// division, not truncation, keeps the decompressed value centered on the
// original.
func NHSCompress(c *ring.Poly, q *big.Int) *ring.Poly {
	q2 := new(big.Int).Rsh(q, 1)
	eight := big.NewInt(8)
	out := ring.NewPoly(c.Len())
	for i := 0; i < c.Len(); i++ {
		z := new(big.Int).Mul(c.Coeff(i), eight)
		z.Add(z, q2)
		z.Div(z, q)
		z.Mod(z, eight)
		out.SetCoeff(i, z)
	}
	return out
}

// NHSDecompress inverts NHSCompress's lossy 3-bit encoding: c_i =
// floor((cc_i*q + 4) / 8).
func NHSDecompress(cc *ring.Poly, q *big.Int) *ring.Poly {
	out := ring.NewPoly(cc.Len())
	for i := 0; i < cc.Len(); i++ {
		z := new(big.Int).Mul(cc.Coeff(i), q)
		z.Add(z, big.NewInt(4))
		z.Div(z, big.NewInt(8))
		out.SetCoeff(i, z)
	}
	return out
}
