package newhope

import (
	"fmt"

	"github.com/dmhacker/rlwe/polyutil"
	"github.com/dmhacker/rlwe/ring"
	"github.com/dmhacker/rlwe/sampler"
	"github.com/dmhacker/rlwe/xof"
)

// Server holds the server-side handshake state: its secret s, its public
// b = a*s+e, the 32-byte seed used to derive a, and the shared key set
// once the handshake completes.
type Server struct {
	Params *Params
	S, B   *ring.Poly
	Seed   [SeedLen]byte
	Shared [SharedKeyLen]byte
}

// InitializeServer samples a 32-byte seed, derives a = Parse(seed),
// samples s and e from the Gaussian distribution, and sets b = a*s+e.
func InitializeServer(params *Params, src sampler.RandomSource) *Server {
	var seed [SeedLen]byte
	if err := src.Read(seed[:]); err != nil {
		panic("newhope: entropy source failed: " + err.Error())
	}

	a := Parse(seed[:], params.R.N(), params.R.Modulus())
	s := params.gaussianPoly(src)
	e := params.gaussianPoly(src)
	b := params.R.Add(params.R.MulMod(a, s), e)

	return &Server{Params: params, S: s, B: b, Seed: seed}
}

// WritePacket emits the clientbound packet: seed(32) ||
// pack(b, ceil(log2 q)).
func (s *Server) WritePacket() []byte {
	packed := polyutil.PackCoeffs(s.B, s.Params.CoeffBits())
	out := make([]byte, 0, SeedLen+len(packed))
	out = append(out, s.Seed[:]...)
	out = append(out, packed...)
	return out
}

// ReadPacket processes the serverbound packet from a Client: decode u
// and the compressed ciphertext cc, decompress c, recover k' = c - u*s,
// decode it back into v', and derive the shared key mu = SHA3-256(v').
func (s *Server) ReadPacket(packet []byte) error {
	n := s.Params.R.N()
	bits := s.Params.CoeffBits()
	uLen := (n*int(bits) + 7) / 8
	ccLen := (n*3 + 7) / 8
	if len(packet) != uLen+ccLen {
		return fmt.Errorf("newhope: serverbound packet has length %d, want %d", len(packet), uLen+ccLen)
	}

	u := polyutil.UnpackCoeffs(packet[:uLen], n, bits)
	cc := polyutil.UnpackCoeffs(packet[uLen:], n, 3)
	q := s.Params.R.Modulus()
	c := NHSDecompress(cc, q)

	us := s.Params.R.MulMod(u, s.S)
	kPrime := s.Params.R.Sub(c, us)

	vPrime := NHSDecode(kPrime, q)
	s.Shared = xof.SHA3_256(vPrime[:])
	return nil
}
