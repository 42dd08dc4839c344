package sampler

import "github.com/zeebo/blake3"

// DeterministicSource is a reproducible RandomSource for tests: it streams
// the extendable output of BLAKE3 over a fixed seed, so the same seed
// always produces the same sequence of sampled polynomials. BLAKE3's
// native XOF mode streams arbitrarily many bytes without re-keying a
// fixed-digest hash.
type DeterministicSource struct {
	out *blake3.Digest
}

// NewDeterministicSource seeds a DeterministicSource from seed.
func NewDeterministicSource(seed []byte) *DeterministicSource {
	h := blake3.New()
	h.Write(seed)
	out := h.Digest()
	return &DeterministicSource{out: out}
}

// Read fills buf by squeezing further bytes from the BLAKE3 XOF. The
// underlying blake3.Digest tracks its own position, so successive calls
// continue the same stream; they never repeat or reset.
func (s *DeterministicSource) Read(buf []byte) error {
	_, err := s.out.Read(buf)
	return err
}
