package hashscalar

import (
	"hash"

	"github.com/sm9kit/sm9-go/pkg/sm9/curve"
	"github.com/sm9kit/sm9-go/pkg/sm9/internal/sm3kit"
)

// Context is the streaming H2 construction used by both signing and
// verification: an SM3 state pre-seeded with the one-byte domain tag 0x02,
// fed the message incrementally, and finalized against the Fp12-encoded
// value w. Sign and verify differ only in when they call Finalize.
type Context struct {
	h hash.Hash
}

// NewContext returns a fresh H2 streaming context seeded with the H2 prefix.
func NewContext() *Context {
	h := sm3kit.NewDigest()
	h.Write([]byte{PrefixH2})
	return &Context{h: h}
}

// Write feeds message bytes into the running context. It never returns an
// error; hash.Hash.Write is documented to never fail.
func (c *Context) Write(p []byte) {
	c.h.Write(p)
}

// Clone returns an independent copy of the context's running state, so a
// retry loop that resamples w can re-finalize against the same message
// prefix without re-streaming the message through a brand new context.
func (c *Context) Clone() (*Context, error) {
	h, err := sm3kit.CloneDigest(c.h)
	if err != nil {
		return nil, err
	}
	return &Context{h: h}, nil
}

// Finalize appends w (the Fp12-encoded value) to the running context and
// produces H2's scalar output. It copies the context before appending the
// first counter so the copy can be fed the second counter — both
// finalizations share every byte of input up to the last 4.
func (c *Context) Finalize(w []byte) (*curve.Scalar, error) {
	c.h.Write(w)

	branch1, err := sm3kit.CloneDigest(c.h)
	if err != nil {
		return nil, err
	}
	branch2, err := sm3kit.CloneDigest(c.h)
	if err != nil {
		return nil, err
	}

	branch1.Write(be32(1))
	Ha1 := branch1.Sum(nil)

	branch2.Write(be32(2))
	Ha2 := branch2.Sum(nil)

	buf64 := make([]byte, 0, 64)
	buf64 = append(buf64, Ha1...)
	buf64 = append(buf64, Ha2...)

	return fromHash64(buf64)
}

// H2 is the non-streaming convenience form: H2(M || w).
func H2(m, w []byte) (*curve.Scalar, error) {
	ctx := NewContext()
	ctx.Write(m)
	return ctx.Finalize(w)
}
