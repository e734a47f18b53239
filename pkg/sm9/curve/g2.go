package curve

import (
	"errors"
	"math/big"

	"golang.org/x/crypto/bn256"
)

var oneBig = big.NewInt(1)

// G2 is a point on the twist curve E'(Fp2). It wraps bn256.G2.
type G2 struct {
	p *bn256.G2
}

// P2 is the fixed generator of G2, a process-wide read-only constant.
var P2 = &G2{p: new(bn256.G2).ScalarBaseMult(oneBig)}

// NewG2FromBytes decodes a G2 point from bn256's native 128-byte encoding
// (two Fp2 coordinates, 64 bytes each). It fails if the point is not on the
// twist curve.
func NewG2FromBytes(b []byte) (*G2, error) {
	p := new(bn256.G2)
	if _, err := p.Unmarshal(b); err != nil {
		return nil, errors.New("sm9/curve: point is not on the twist curve")
	}
	return &G2{p: p}, nil
}

// Bytes returns the point's native encoding.
func (g *G2) Bytes() []byte {
	raw := g.p.Marshal()
	out := make([]byte, len(raw))
	copy(out, raw)
	return out
}

// Mul returns scalar * g.
func (g *G2) Mul(s *Scalar) *G2 {
	return &G2{p: new(bn256.G2).ScalarMult(g.p, s.BigInt())}
}

// Add returns g + o (full addition; callers must not assume either summand is
// the generator or another special-position point).
func (g *G2) Add(o *G2) *G2 {
	return &G2{p: new(bn256.G2).Add(g.p, o.p)}
}

// Free drops the reference to the underlying point.
func (g *G2) Free() {
	if g == nil {
		return
	}
	g.p = nil
}
