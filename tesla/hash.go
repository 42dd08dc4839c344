package tesla

import (
	"math/big"
	"strings"

	"github.com/dmhacker/rlwe/polyutil"
	"github.com/dmhacker/rlwe/ring"
	"github.com/dmhacker/rlwe/xof"
)

// teslaNonce is Ring-TESLA's fixed ChaCha20 nonce {1,...,8}.
var teslaNonce = [8]byte{1, 2, 3, 4, 5, 6, 7, 8}

// encodingBytesPerIndex is the byte width of each rejection-sampling
// candidate index.
const encodingBytesPerIndex = 8

// randomnessScale sizes the ChaCha20 keystream large enough that
// rejection sampling rarely needs to loop back around the buffer.
const randomnessScale = 5

// encodePolyText renders a polynomial's coefficients in a
// bracket-and-space text format ("[c0 c1 ... cn]"), truncated at the
// polynomial's actual degree; the zero polynomial renders as an empty
// bracket pair.
func encodePolyText(p *ring.Poly) string {
	var sb strings.Builder
	sb.WriteByte('[')
	deg := p.Degree()
	for i := 0; i <= deg; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.Coeff(i).String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Hash implements Ring-TESLA's H(p1, p2, msg, params): right-shift both
// polynomials' coefficients by d, concatenate their text encodings with
// msg, and SHA-256 the result.
func Hash(p1, p2 *ring.Poly, msg string, params *Params) [32]byte {
	q1 := polyutil.RightShiftCoeffs(p1, params.D)
	q2 := polyutil.RightShiftCoeffs(p2, params.D)
	text := encodePolyText(q1) + encodePolyText(q2) + msg
	return xof.SHA256([]byte(text))
}

// Encode implements Ring-TESLA's E(h, params): a sparse polynomial with
// exactly w coefficients set to +1 or -1, derived deterministically from a
// 32-byte hash via a ChaCha20 keystream and rejection sampling mod n.
func Encode(h [32]byte, params *Params) *ring.Poly {
	n := params.R.N()
	w := params.W

	wBytes := w/8 + 1
	rlen := wBytes + w*encodingBytesPerIndex*randomnessScale
	r := xof.ChaCha20Stream(h, teslaNonce, rlen)

	dest := ring.NewPoly(n)
	widx := 0
	ridx := wBytes

	for idx := 0; idx < w; idx++ {
		var cidx uint64
		for tmp := 0; tmp < encodingBytesPerIndex; tmp++ {
			cidx <<= 8
			cidx |= uint64(r[ridx])
			ridx++
			if ridx == rlen {
				ridx = wBytes
			}
		}
		cidx %= uint64(n)

		if dest.Coeff(int(cidx)).Sign() == 0 {
			bit := (r[widx/8] >> (widx % 8)) & 1
			if bit == 1 {
				dest.SetCoeff(int(cidx), big.NewInt(1))
			} else {
				dest.SetCoeff(int(cidx), big.NewInt(-1))
			}
			widx++
		} else {
			idx--
		}
	}
	return dest
}
