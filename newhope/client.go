package newhope

import (
	"fmt"

	"github.com/dmhacker/rlwe/polyutil"
	"github.com/dmhacker/rlwe/ring"
	"github.com/dmhacker/rlwe/sampler"
	"github.com/dmhacker/rlwe/xof"
)

// Client holds the client-side handshake state: its secret s, public u,
// ciphertext c (stored in its compressed 3-bit form), the (e1,e2) error
// pair, and the shared key set once the handshake completes.
type Client struct {
	Params *Params
	S      *ring.Poly
	E1, E2 *ring.Poly
	U, CC  *ring.Poly
	Shared [SharedKeyLen]byte
}

// InitializeClient samples the client's secret s and errors e1, e2
// independently from the Gaussian distribution.
func InitializeClient(params *Params, src sampler.RandomSource) *Client {
	return &Client{
		Params: params,
		S:      params.gaussianPoly(src),
		E1:     params.gaussianPoly(src),
		E2:     params.gaussianPoly(src),
	}
}

// ReadPacket processes the clientbound packet from a Server: decompress
// b, recompute a = Parse(seed), derive u = a*s+e1, sample a fresh 256-bit
// message v and hash it to v' = SHA3-256(v), encode k = NHSEncode(v'),
// compute c = b*s+e2+k and its 3-bit compression cc, and set the shared
// key mu = SHA3-256(v').
func (c *Client) ReadPacket(packet []byte, src sampler.RandomSource) error {
	n := c.Params.R.N()
	bits := c.Params.CoeffBits()
	bLen := (n*int(bits) + 7) / 8
	if len(packet) != SeedLen+bLen {
		return fmt.Errorf("newhope: clientbound packet has length %d, want %d", len(packet), SeedLen+bLen)
	}

	seed := packet[:SeedLen]
	b := polyutil.UnpackCoeffs(packet[SeedLen:], n, bits)
	a := Parse(seed, n, c.Params.R.Modulus())

	r := c.Params.R
	u := r.Add(r.MulMod(a, c.S), c.E1)

	var v [SharedKeyLen]byte
	if err := src.Read(v[:]); err != nil {
		return fmt.Errorf("newhope: entropy source failed: %w", err)
	}
	vPrime := xof.SHA3_256(v[:])

	k := NHSEncode(vPrime, c.Params.R.Modulus())
	ciphertext := r.Add(r.Add(r.MulMod(b, c.S), c.E2), k)
	cc := NHSCompress(ciphertext, c.Params.R.Modulus())

	c.U = u
	c.CC = cc
	c.Shared = xof.SHA3_256(vPrime[:])
	return nil
}

// WritePacket emits the serverbound packet: pack(u, ceil(log2 q)) ||
// pack(cc, 3).
func (c *Client) WritePacket() []byte {
	bits := c.Params.CoeffBits()
	out := make([]byte, 0)
	out = append(out, polyutil.PackCoeffs(c.U, bits)...)
	out = append(out, polyutil.PackCoeffs(c.CC, 3)...)
	return out
}
