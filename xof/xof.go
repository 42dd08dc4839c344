// Package xof provides the extendable-output and hash primitives consumed
// by the ring-arithmetic core and the NewHope/TESLA schemes: a SHAKE-128
// word stream (NewHope's Parse), SHA3-256 and SHA-256 (scheme-level
// hashing), and a ChaCha20 keystream (TESLA's sparse polynomial encoding).
// This package only adapts the underlying primitives to the shapes the
// rest of the module needs.
package xof

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/sha3"
)

// SHA256 returns the SHA-256 digest of the concatenation of data.
func SHA256(data ...[]byte) [32]byte {
	h := sha256.New()
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// SHA3_256 returns the SHA3-256 digest of the concatenation of data.
func SHA3_256(data ...[]byte) [32]byte {
	h := sha3.New256()
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Shake128Words is an incremental reader over a SHAKE-128 stream seeded
// from a fixed input, producing successive big-endian 16-bit words. The
// sponge squeezes fresh output on demand, so the stream never runs out.
type Shake128Words struct {
	xof sha3.ShakeHash
}

// NewShake128Words seeds a SHAKE-128 XOF from the given seed.
func NewShake128Words(seed []byte) *Shake128Words {
	x := sha3.NewShake128()
	x.Write(seed)
	return &Shake128Words{xof: x}
}

// Next16 returns the next big-endian uint16 from the stream.
func (s *Shake128Words) Next16() uint16 {
	var buf [2]byte
	if _, err := s.xof.Read(buf[:]); err != nil {
		panic("xof: shake128 read failed: " + err.Error())
	}
	return binary.BigEndian.Uint16(buf[:])
}

// ChaCha20Stream returns n bytes of ChaCha20 keystream under the given key
// and 96-bit nonce (the low 8 nonce bytes matching TESLA's fixed
// {1,2,...,8} nonce convention, zero-extended to the 12-byte nonce the
// modern ChaCha20 API requires in place of the original's 8-byte one).
func ChaCha20Stream(key [32]byte, nonce8 [8]byte, n int) []byte {
	var nonce12 [chacha20.NonceSize]byte
	copy(nonce12[:8], nonce8[:])
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce12[:])
	if err != nil {
		panic("xof: chacha20 init failed: " + err.Error())
	}
	out := make([]byte, n)
	c.XORKeyStream(out, out)
	return out
}

// RandomSource is the capability the sampler and scheme packages consume
// for entropy: fill buf with cryptographically strong random bytes.
// Production code supplies the platform CSPRNG; tests supply a
// deterministic XOF so every sampled polynomial is reproducible.
type RandomSource interface {
	Read(buf []byte) error
}

// CryptoRandSource is the production RandomSource, backed by the platform
// CSPRNG (crypto/rand). Entropy-source failure propagates as an error
// rather than a panic.
type CryptoRandSource struct{}

// Read fills buf with output from crypto/rand.Reader.
func (CryptoRandSource) Read(buf []byte) error {
	_, err := rand.Read(buf)
	return err
}
