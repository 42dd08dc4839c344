package polyutil

import (
	"math/big"

	"github.com/dmhacker/rlwe/ring"
)

// PackCoeffs packs every coefficient of p, already constrained to
// [0, 2^nbits), into a byte slice: each coefficient's bits are written
// LSB-first, but bits within the output stream are written MSB-first
// within each byte (the first coefficient's bit 0 lands in output byte 0,
// bit position 7). This function performs no value rescaling; callers
// that need a lossy q-ary-to-k-bit mapping first (NewHope's NHSCompress)
// do that separately before calling PackCoeffs.
func PackCoeffs(p *ring.Poly, nbits uint) []byte {
	n := p.Len()
	totalBits := n * int(nbits)
	out := make([]byte, (totalBits+7)/8)
	bitPos := 0
	for i := 0; i < n; i++ {
		c := p.Coeff(i)
		for b := uint(0); b < nbits; b++ {
			if c.Bit(int(b)) == 1 {
				out[bitPos/8] |= 1 << uint(7-bitPos%8)
			}
			bitPos++
		}
	}
	return out
}

// UnpackCoeffs inverts PackCoeffs, reading n coefficients of nbits bits
// each back out of data.
func UnpackCoeffs(data []byte, n int, nbits uint) *ring.Poly {
	out := ring.NewPoly(n)
	bitPos := 0
	for i := 0; i < n; i++ {
		v := new(big.Int)
		for b := uint(0); b < nbits; b++ {
			byteIdx := bitPos / 8
			if byteIdx < len(data) && (data[byteIdx]>>uint(7-bitPos%8))&1 == 1 {
				v.SetBit(v, int(b), 1)
			}
			bitPos++
		}
		out.SetCoeff(i, v)
	}
	return out
}
