package curve

import (
	"errors"

	"golang.org/x/crypto/bn256"
)

// G1 is a point on the base curve E(Fp). It wraps bn256.G1, which gives us
// scalar multiplication, full addition, and an on-curve check for free via
// Unmarshal's validation.
type G1 struct {
	p *bn256.G1
}

// P1 is the fixed generator of G1, a process-wide read-only constant.
var P1 = &G1{p: new(bn256.G1).ScalarBaseMult(oneBig)}

// NewG1FromUncompressed decodes the 65-byte uncompressed encoding
// 0x04 || X || Y into a G1 point. It fails if the tag byte is wrong, the
// length is wrong, or the coordinates do not describe a point on the curve.
func NewG1FromUncompressed(b []byte) (*G1, error) {
	if len(b) != 65 {
		return nil, errors.New("sm9/curve: G1 uncompressed encoding must be 65 bytes")
	}
	if b[0] != 0x04 {
		return nil, errors.New("sm9/curve: G1 encoding must start with 0x04")
	}
	p := new(bn256.G1)
	if _, err := p.Unmarshal(b[1:]); err != nil {
		return nil, errors.New("sm9/curve: point is not on the curve")
	}
	return &G1{p: p}, nil
}

// Uncompressed encodes the point as 0x04 || X || Y, 65 bytes total.
func (g *G1) Uncompressed() []byte {
	raw := g.p.Marshal() // 64 bytes: X || Y
	out := make([]byte, 65)
	out[0] = 0x04
	copy(out[1:], raw)
	return out
}

// XY returns the 64-byte X || Y encoding without the leading tag byte, the
// form H2/KEM/exchange feed into the KDF.
func (g *G1) XY() []byte {
	raw := g.p.Marshal()
	out := make([]byte, len(raw))
	copy(out, raw)
	return out
}

// Mul returns scalar * g.
func (g *G1) Mul(s *Scalar) *G1 {
	return &G1{p: new(bn256.G1).ScalarMult(g.p, s.BigInt())}
}

// Add returns g + o (full addition, no special-position assumption).
func (g *G1) Add(o *G1) *G1 {
	return &G1{p: new(bn256.G1).Add(g.p, o.p)}
}

// Equal reports whether two points encode to the same value.
func (g *G1) Equal(o *G1) bool {
	if g == nil || o == nil {
		return g == o
	}
	ga, oa := g.p.Marshal(), o.p.Marshal()
	if len(ga) != len(oa) {
		return false
	}
	for i := range ga {
		if ga[i] != oa[i] {
			return false
		}
	}
	return true
}

// Free drops the reference to the underlying point. G1 carries no secret
// material of its own (points are public); Free exists for symmetry with
// Scalar/GT and to let defer chains in scheme code look uniform.
func (g *G1) Free() {
	if g == nil {
		return
	}
	g.p = nil
}
