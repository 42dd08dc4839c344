package polyutil

import (
	"math/big"
	"testing"

	"github.com/dmhacker/rlwe/ring"
	"github.com/stretchr/testify/require"
)

func TestCenterMapsUpperHalfNegative(t *testing.T) {
	q := big.NewInt(17)
	require.Equal(t, big.NewInt(0), Center(big.NewInt(0), q))
	require.Equal(t, big.NewInt(8), Center(big.NewInt(8), q))
	require.Equal(t, big.NewInt(-8), Center(big.NewInt(9), q))
	require.Equal(t, big.NewInt(-1), Center(big.NewInt(16), q))
}

func TestRoundCoeffsHalfAwayFromZero(t *testing.T) {
	p := ring.NewPolyFromCoeffs([]*big.Int{big.NewInt(3), big.NewInt(-3), big.NewInt(1), big.NewInt(-1)})
	out := RoundCoeffs(p, big.NewInt(1), big.NewInt(2))
	require.Equal(t, big.NewInt(2), out.Coeff(0))  // 1.5 -> 2
	require.Equal(t, big.NewInt(-2), out.Coeff(1)) // -1.5 -> -2
	require.Equal(t, big.NewInt(1), out.Coeff(2))  // 0.5 -> 1
	require.Equal(t, big.NewInt(-1), out.Coeff(3)) // -0.5 -> -1
}

func TestTeslaRoundDropsLowBits(t *testing.T) {
	p := ring.NewPolyFromCoeffs([]*big.Int{big.NewInt(100), big.NewInt(-100)})
	out := TeslaRound(p, 4) // divide by 16
	require.Equal(t, big.NewInt(6), out.Coeff(0))  // round(100/16)=round(6.25)=6
	require.Equal(t, big.NewInt(-6), out.Coeff(1))
}

func TestRightShiftCoeffsFloorsNegatives(t *testing.T) {
	p := ring.NewPolyFromCoeffs([]*big.Int{big.NewInt(5), big.NewInt(-5)})
	out := RightShiftCoeffs(p, 1)
	require.Equal(t, big.NewInt(2), out.Coeff(0))
	require.Equal(t, big.NewInt(-3), out.Coeff(1))
}

func TestAndCoeffsMasksLowBits(t *testing.T) {
	p := ring.NewPolyFromCoeffs([]*big.Int{big.NewInt(0b10110)})
	out := AndCoeffs(p, big.NewInt(0b1111))
	require.Equal(t, big.NewInt(0b0110), out.Coeff(0))
}

func TestIsInRange(t *testing.T) {
	p := ring.NewPolyFromCoeffs([]*big.Int{big.NewInt(3), big.NewInt(-4)})
	require.True(t, IsInRange(p, big.NewInt(5)))
	require.False(t, IsInRange(p, big.NewInt(4)))
}

func TestPackUnpackCoeffsRoundTrip(t *testing.T) {
	p := ring.NewPolyFromCoeffs([]*big.Int{big.NewInt(0), big.NewInt(5), big.NewInt(12), big.NewInt(15)})
	packed := PackCoeffs(p, 4)
	out := UnpackCoeffs(packed, p.Len(), 4)
	require.True(t, p.Equal(out))
}
