package curve

import (
	"runtime"

	"golang.org/x/crypto/bn256"
)

// GT is an Fp12 element, i.e. a value of the pairing target group. It wraps
// bn256.GT, whose Marshal already produces the 384-byte (32*12) fixed-length
// encoding the spec requires.
type GT struct {
	p *bn256.GT
}

// Exp returns g^s, the exponentiation the spec calls w = g^r and w = g^h.
func (g *GT) Exp(s *Scalar) *GT {
	return &GT{p: new(bn256.GT).ScalarMult(g.p, s.BigInt())}
}

// Mul returns g * o, Fp12 multiplication.
func (g *GT) Mul(o *GT) *GT {
	return &GT{p: new(bn256.GT).Add(g.p, o.p)}
}

// Bytes returns the 384-byte fixed-length encoding of the element. The
// returned slice must be zeroized by the caller once consumed, since GT
// values are fed directly into the hash-to-scalar and KDF collaborators and
// this is the buffer §5 calls out as something every exit path must erase.
func (g *GT) Bytes() []byte {
	raw := g.p.Marshal()
	out := make([]byte, len(raw))
	copy(out, raw)
	return out
}

// Free drops the wrapper's reference to the Fp12 element by setting it to
// nil. bn256.GT has no exported mutable buffer, so the memory that held the
// value is not overwritten; it is left for the garbage collector. Byte
// encodings obtained from Bytes are not affected and must be zeroized by
// their holder.
func (g *GT) Free() {
	if g == nil {
		return
	}
	g.p = nil
	runtime.KeepAlive(g)
}
