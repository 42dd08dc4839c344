package newhope

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/dmhacker/rlwe/polyutil"
	"github.com/dmhacker/rlwe/sampler"
)

func seeded(label string) sampler.RandomSource {
	return sampler.NewDeterministicSource([]byte(label))
}

func TestNHSEncodeDecodeRoundTrip(t *testing.T) {
	params := NewDefaultParams()
	var v [SharedKeyLen]byte
	require.NoError(t, seeded("nhs-v").Read(v[:]))

	k := NHSEncode(v, params.R.Modulus())
	decoded := NHSDecode(k, params.R.Modulus())
	require.Equal(t, v, decoded)
}

func TestNHSCompressDecompressNearIdentity(t *testing.T) {
	params := NewDefaultParams()
	q := params.R.Modulus()
	c := sampler.UniformPoly(seeded("nhs-compress"), params.R.N(), q)

	cc := NHSCompress(c, q)
	back := NHSDecompress(cc, q)

	q8 := new(big.Int).Rsh(q, 3)
	for i := 0; i < c.Len(); i++ {
		diff := polyutil.Center(new(big.Int).Mod(new(big.Int).Sub(c.Coeff(i), back.Coeff(i)), q), q)
		require.True(t, new(big.Int).Abs(diff).Cmp(q8) <= 0, "coeff %d diff too large: %v", i, diff)
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	p := sampler.UniformPoly(seeded("nhs-pack"), 16, big.NewInt(16))
	packed := polyutil.PackCoeffs(p, 4)
	unpacked := polyutil.UnpackCoeffs(packed, 16, 4)
	require.True(t, p.Equal(unpacked))
}

func TestHandshakeAgreement(t *testing.T) {
	params := NewDefaultParams()
	server := InitializeServer(params, seeded("nh-server-init"))
	client := InitializeClient(params, seeded("nh-client-init"))

	clientbound := server.WritePacket()
	require.Len(t, clientbound, SeedLen+1792)

	require.NoError(t, client.ReadPacket(clientbound, seeded("nh-client-v")))

	serverbound := client.WritePacket()
	require.Len(t, serverbound, 1792+384)

	require.NoError(t, server.ReadPacket(serverbound))

	require.Empty(t, cmp.Diff(client.Shared, server.Shared))
}

func TestReadPacketRejectsWrongLength(t *testing.T) {
	params := NewDefaultParams()
	server := InitializeServer(params, seeded("nh-bad-len-server"))
	client := InitializeClient(params, seeded("nh-bad-len-client"))
	require.Error(t, client.ReadPacket([]byte{1, 2, 3}, seeded("nh-bad-len-v")))
	require.Error(t, server.ReadPacket([]byte{1, 2, 3}))
}
