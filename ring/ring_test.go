package ring

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolyModulusIsCyclotomic(t *testing.T) {
	r := NewRing(8, big.NewInt(17))
	phi := r.Phi()
	require.Equal(t, 8, phi.Degree())
	require.Equal(t, big.NewInt(1), phi.Coeff(0))
	require.Equal(t, big.NewInt(1), phi.Coeff(8))
}

func TestNewRingPanicsOnOddDegree(t *testing.T) {
	require.Panics(t, func() { NewRing(7, big.NewInt(17)) })
}

func TestNegation(t *testing.T) {
	r := NewRing(4, big.NewInt(17))
	p := r.NewPoly()
	p.SetCoeff(0, big.NewInt(0))
	p.SetCoeff(1, big.NewInt(5))
	neg := r.Neg(p)
	require.Equal(t, big.NewInt(0), neg.Coeff(0))
	require.Equal(t, big.NewInt(12), neg.Coeff(1))
}

func TestAddUnequalArityCopiesTail(t *testing.T) {
	r := NewRing(4, big.NewInt(17))
	a := NewPolyFromCoeffs([]*big.Int{big.NewInt(1), big.NewInt(2)})
	b := NewPolyFromCoeffs([]*big.Int{big.NewInt(3), big.NewInt(4), big.NewInt(5)})
	sum := r.Add(a, b)
	require.Equal(t, 3, sum.Len())
	require.Equal(t, big.NewInt(4), sum.Coeff(0))
	require.Equal(t, big.NewInt(6), sum.Coeff(1))
	require.Equal(t, big.NewInt(5), sum.Coeff(2))
}

func TestMulModReducesCyclotomically(t *testing.T) {
	// x^3 * x^3 = x^6 = -x^2 mod (x^4+1)
	r := NewRing(4, big.NewInt(97))
	x3 := NewPoly(4)
	x3.SetCoeff(3, big.NewInt(1))
	prod := r.MulMod(x3, x3)
	require.Equal(t, big.NewInt(96), prod.Coeff(2)) // -1 mod 97
	require.Equal(t, big.NewInt(0), prod.Coeff(0))
}

func TestMulNoModStaysInZ(t *testing.T) {
	r := NewRing(4, big.NewInt(1000000007))
	a := NewPolyFromCoeffs([]*big.Int{big.NewInt(3)})
	b := NewPolyFromCoeffs([]*big.Int{big.NewInt(5)})
	prod := r.MulNoMod(a, b)
	require.Equal(t, big.NewInt(15), prod.Coeff(0))
}

func TestPowMod(t *testing.T) {
	r := NewRing(4, big.NewInt(17))
	a := NewPolyFromCoeffs([]*big.Int{big.NewInt(2)})
	p := r.PowMod(a, 4)
	require.Equal(t, big.NewInt(16), p.Coeff(0))
}

func TestAddNoModDoesNotReduce(t *testing.T) {
	r := NewRing(4, big.NewInt(5))
	a := NewPolyFromCoeffs([]*big.Int{big.NewInt(3)})
	b := NewPolyFromCoeffs([]*big.Int{big.NewInt(4)})
	sum := r.AddNoMod(a, b)
	require.Equal(t, big.NewInt(7), sum.Coeff(0))
}

func TestRingEqual(t *testing.T) {
	a := NewRing(8, big.NewInt(17))
	b := NewRing(8, big.NewInt(17))
	c := NewRing(8, big.NewInt(19))
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}
