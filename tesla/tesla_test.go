package tesla

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmhacker/rlwe/sampler"
)

func seeded(label string) sampler.RandomSource {
	return sampler.NewDeterministicSource([]byte(label))
}

func testParams(label string) *Params {
	return NewDefaultParams(seeded(label))
}

func TestSignVerifyRoundTripDefaultParams(t *testing.T) {
	params := NewDefaultParams(seeded("tesla-default-params"))
	signer := GenerateSigningKey(params, seeded("tesla-default-signer"))
	verif := GenerateVerificationKey(signer)

	sig := Sign("test", signer, seeded("tesla-default-sign"))
	require.True(t, Verify("test", sig, verif))
}

func TestVerifyRejectsSubstitutedMessage(t *testing.T) {
	params := testParams("tesla-test-params")
	signer := GenerateSigningKey(params, seeded("tesla-sub-msg-signer"))
	verif := GenerateVerificationKey(signer)

	sig := Sign("test", signer, seeded("tesla-sub-msg-sign"))
	require.False(t, Verify("different", sig, verif))
}

func TestVerifyRejectsSubstitutedSignature(t *testing.T) {
	params := testParams("tesla-test-params")
	signer := GenerateSigningKey(params, seeded("tesla-sub-sig-signer"))
	verif := GenerateVerificationKey(signer)

	sigDifferent := Sign("different", signer, seeded("tesla-sub-sig-sign-different"))
	require.False(t, Verify("test", sigDifferent, verif))
}

func TestEncodeProducesExactlyWNonzeroCoefficients(t *testing.T) {
	params := testParams("tesla-test-params")
	var h [32]byte
	require.NoError(t, seeded("tesla-encode-hash").Read(h[:]))

	c := Encode(h, params)
	count := 0
	for i := 0; i < c.Len(); i++ {
		v := c.Coeff(i)
		require.True(t, v.Sign() == 0 || v.Cmp(big.NewInt(1)) == 0 || v.Cmp(big.NewInt(-1)) == 0)
		if v.Sign() != 0 {
			count++
		}
	}
	require.Equal(t, params.W, count)
	require.True(t, c.Degree() < params.R.N())
}

func TestEncodeIsDeterministic(t *testing.T) {
	params := testParams("tesla-test-params")
	var h [32]byte
	require.NoError(t, seeded("tesla-encode-deterministic").Read(h[:]))

	a := Encode(h, params)
	b := Encode(h, params)
	require.True(t, a.Equal(b))
}

func TestGenerateVerificationKeyIsDeterministicFromSigningKey(t *testing.T) {
	params := testParams("tesla-test-params")
	signer := GenerateSigningKey(params, seeded("tesla-keygen-signer"))
	a := GenerateVerificationKey(signer)
	b := GenerateVerificationKey(signer)
	require.True(t, a.T1.Equal(b.T1))
	require.True(t, a.T2.Equal(b.T2))
}
