package sampler

import (
	"math/big"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"
)

func TestUniformPolyStaysInRange(t *testing.T) {
	src := NewDeterministicSource([]byte("uniform-poly-seed"))
	q := big.NewInt(7681)
	p := UniformPoly(src, 256, q)
	for i := 0; i < p.Len(); i++ {
		c := p.Coeff(i)
		require.True(t, c.Sign() >= 0 && c.Cmp(q) < 0)
	}
}

func TestUniformPolyIsDeterministicFromSeed(t *testing.T) {
	q := big.NewInt(7681)
	a := UniformPoly(NewDeterministicSource([]byte("fixed")), 64, q)
	b := UniformPoly(NewDeterministicSource([]byte("fixed")), 64, q)
	require.True(t, a.Equal(b))
}

func TestUniformRangePolyStaysInRange(t *testing.T) {
	src := NewDeterministicSource([]byte("uniform-range-seed"))
	lo, hi := big.NewInt(-4194303), big.NewInt(4194304)
	p := UniformRangePoly(src, 128, lo, hi)
	for i := 0; i < p.Len(); i++ {
		c := p.Coeff(i)
		require.True(t, c.Cmp(lo) >= 0 && c.Cmp(hi) < 0)
	}
}

func TestTernaryPolyOnlyProducesThreeValues(t *testing.T) {
	src := NewDeterministicSource([]byte("ternary-seed"))
	q := big.NewInt(12289)
	p := TernaryPoly(src, 512, q)
	qMinus1 := new(big.Int).Sub(q, big.NewInt(1))
	for i := 0; i < p.Len(); i++ {
		c := p.Coeff(i)
		require.True(t, c.Sign() == 0 || c.Cmp(big.NewInt(1)) == 0 || c.Cmp(qMinus1) == 0)
	}
}

func TestGaussianMatrixIsDeterministicFromSigma(t *testing.T) {
	a := NewGaussianMatrix(3.2)
	b := NewGaussianMatrix(3.2)
	require.Equal(t, a.rows, b.rows)
	require.Equal(t, a.bound, b.bound)
}

func TestGaussianMatrixPanicsOnNonPositiveSigma(t *testing.T) {
	require.Panics(t, func() { NewGaussianMatrix(0) })
	require.Panics(t, func() { NewGaussianMatrix(-1) })
}

func TestGaussianSampleEmpiricalStddev(t *testing.T) {
	m := NewGaussianMatrix(3.2)
	src := NewDeterministicSource([]byte("gaussian-empirical-seed"))
	const trials = 4000
	samples := make([]float64, trials)
	for i := range samples {
		samples[i] = float64(m.Sample(src))
	}
	mean, err := stats.Mean(samples)
	require.NoError(t, err)
	stddev, err := stats.StandardDeviation(samples)
	require.NoError(t, err)

	require.InDelta(t, 0, mean, 0.5)
	require.InDelta(t, 3.2, stddev, 0.5)
}

func TestGaussianPolyCoefficientsAreFolded(t *testing.T) {
	m := NewGaussianMatrix(3.2)
	src := NewDeterministicSource([]byte("gaussian-poly-seed"))
	q := big.NewInt(12289)
	p := GaussianPoly(src, m, 256, q)
	for i := 0; i < p.Len(); i++ {
		c := p.Coeff(i)
		require.True(t, c.Sign() >= 0 && c.Cmp(q) < 0)
	}
}
