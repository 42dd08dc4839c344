package xof

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSHA256IsDeterministic(t *testing.T) {
	a := SHA256([]byte("hello"), []byte("world"))
	b := SHA256([]byte("hello"), []byte("world"))
	require.Equal(t, a, b)
	c := SHA256([]byte("helloworld"))
	require.Equal(t, a, c, "SHA256 should hash the concatenation of its parts")
}

func TestSHA3_256IsDeterministic(t *testing.T) {
	a := SHA3_256([]byte("abc"))
	b := SHA3_256([]byte("abc"))
	require.Equal(t, a, b)
}

func TestSHA256AndSHA3DifferOnSameInput(t *testing.T) {
	require.NotEqual(t, SHA256([]byte("abc")), SHA3_256([]byte("abc")))
}

func TestShake128WordsIsDeterministicFromSeed(t *testing.T) {
	a := NewShake128Words([]byte("seed"))
	b := NewShake128Words([]byte("seed"))
	for i := 0; i < 20; i++ {
		require.Equal(t, a.Next16(), b.Next16())
	}
}

func TestShake128WordsDiffersAcrossSeeds(t *testing.T) {
	a := NewShake128Words([]byte("seed-a"))
	b := NewShake128Words([]byte("seed-b"))
	same := true
	for i := 0; i < 8; i++ {
		if a.Next16() != b.Next16() {
			same = false
		}
	}
	require.False(t, same)
}

func TestChaCha20StreamIsDeterministicFromKeyAndNonce(t *testing.T) {
	var key [32]byte
	var nonce [8]byte
	for i := range key {
		key[i] = byte(i)
	}
	for i := range nonce {
		nonce[i] = byte(i + 1)
	}
	a := ChaCha20Stream(key, nonce, 64)
	b := ChaCha20Stream(key, nonce, 64)
	require.Equal(t, a, b)
}

func TestChaCha20StreamChangesWithNonce(t *testing.T) {
	var key [32]byte
	a := ChaCha20Stream(key, [8]byte{1}, 32)
	b := ChaCha20Stream(key, [8]byte{2}, 32)
	require.NotEqual(t, a, b)
}

func TestCryptoRandSourceFillsBuffer(t *testing.T) {
	var src CryptoRandSource
	buf := make([]byte, 32)
	require.NoError(t, src.Read(buf))
	allZero := true
	for _, b := range buf {
		if b != 0 {
			allZero = false
			break
		}
	}
	require.False(t, allZero, "crypto/rand output should not be all zero")
}
