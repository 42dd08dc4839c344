package sampler

import (
	"math/big"

	"github.com/ALTree/bigfloat"
)

// precisionBits is the big.Float mantissa precision used while building the
// Knuth-Yao probability matrix. Extended well past float64 (53 bits) so
// probabilities for large sigma (Ring-TESLA uses 52) don't lose bits to
// ULP error.
const precisionBits = 128

// matrixCols is the number of probability bit-columns expanded per row; a
// row fits exactly in one machine word.
const matrixCols = 64

// tailcut bounds the support of the discrete Gaussian to [-tailcut*sigma,
// tailcut*sigma].
const tailcut = 13

// GaussianMatrix is a deterministic, bit-packed Knuth-Yao probability table
// built from a single parameter sigma: two matrices built from the same
// sigma are identical.
type GaussianMatrix struct {
	sigma float64
	bound int
	// rows[i] packs probability column 0 (most significant) into bit 63
	// down to column 63 in bit 0, for the magnitude i in [0, bound].
	rows []uint64
}

// NewGaussianMatrix builds the Knuth-Yao matrix for the discrete Gaussian
// with standard deviation sigma: one magnitude-indexed row per support
// value, each holding the 64-bit binary expansion of that magnitude's
// probability. p_0 is halved before normalization, since every non-zero
// magnitude is randomly negated during sampling and zero has no separate
// negative twin; the rows are then normalized to sum to 1.
func NewGaussianMatrix(sigma float64) *GaussianMatrix {
	if sigma <= 0 {
		panic("sampler: sigma must be positive")
	}
	bound := int(tailcut * sigma)
	if bound < 1 {
		bound = 1
	}

	prec := uint(precisionBits)
	two := new(big.Float).SetPrec(prec).SetInt64(2)
	sigmaF := new(big.Float).SetPrec(prec).SetFloat64(sigma)
	denom := new(big.Float).SetPrec(prec).Mul(two, new(big.Float).SetPrec(prec).Mul(sigmaF, sigmaF))

	probs := make([]*big.Float, bound+1)
	sum := new(big.Float).SetPrec(prec)
	for i := 0; i <= bound; i++ {
		iF := new(big.Float).SetPrec(prec).SetInt64(int64(i * i))
		exponent := new(big.Float).SetPrec(prec).Quo(iF, denom)
		exponent.Neg(exponent)
		p := bigfloat.Exp(exponent)
		if i == 0 {
			p.Quo(p, two)
		}
		probs[i] = p
		sum.Add(sum, p)
	}
	for i := range probs {
		probs[i].Quo(probs[i], sum)
	}

	rows := make([]uint64, bound+1)
	one := new(big.Float).SetPrec(prec).SetInt64(1)
	for i, p := range probs {
		frac := new(big.Float).SetPrec(prec).Copy(p)
		var row uint64
		for col := 0; col < matrixCols; col++ {
			frac.Mul(frac, two)
			bit, _ := frac.Int64()
			row <<= 1
			if bit == 1 {
				row |= 1
				frac.Sub(frac, one)
			}
		}
		rows[i] = row
	}

	return &GaussianMatrix{sigma: sigma, bound: bound, rows: rows}
}

// Sigma returns the standard deviation the matrix was built from.
func (m *GaussianMatrix) Sigma() float64 { return m.sigma }

// Sample draws one signed magnitude from the distribution described by m,
// using the Knuth-Yao row-scan algorithm: d accumulates one random bit per
// probability column, and each column subtracts every row's bit from d
// until d hits -1, at which point the current row is the sampled
// magnitude.
func (m *GaussianMatrix) Sample(src RandomSource) int {
	var buf [1]byte
	bitsLeft := 0
	var cur byte
	nextBit := func() int {
		if bitsLeft == 0 {
			if err := src.Read(buf[:]); err != nil {
				panic("sampler: entropy source failed: " + err.Error())
			}
			cur = buf[0]
			bitsLeft = 8
		}
		b := int((cur >> 7) & 1)
		cur <<= 1
		bitsLeft--
		return b
	}

	for {
		d := 0
		magnitude := -1
		for col := 0; col < matrixCols; col++ {
			d = 2*d + (1 - nextBit())
			for row := m.bound; row >= 0; row-- {
				bit := int((m.rows[row] >> uint(matrixCols-1-col)) & 1)
				d -= bit
				if d == -1 {
					magnitude = row
					break
				}
			}
			if magnitude >= 0 {
				break
			}
		}
		if magnitude < 0 {
			// Exhausted the table without resolving a row; this should
			// essentially never happen for a correctly normalized
			// distribution. Retry the whole draw rather than bias it.
			continue
		}
		if magnitude == 0 {
			return 0
		}
		signBit := nextBit()
		if signBit == 1 {
			return -magnitude
		}
		return magnitude
	}
}
