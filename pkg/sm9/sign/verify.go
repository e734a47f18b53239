package sign

import (
	"fmt"

	"github.com/sm9kit/sm9-go/pkg/sm9/curve"
	"github.com/sm9kit/sm9-go/pkg/sm9/hashscalar"
	"github.com/sm9kit/sm9-go/pkg/sm9/sm9id"
)

// Status is verify's tri-valued result (spec §7): a signature is valid,
// invalid (hash mismatch after all crypto executed), or the input was
// malformed and no meaningful comparison happened at all.
type Status int

const (
	StatusValid Status = iota
	StatusInvalid
	StatusError
)

// Verify implements algorithms B1-B9. ppubs is the signing master public
// key, id the claimed signer's identity, message the signed data, and sig
// the candidate signature.
//
// Per spec §4.D step 1, a signature must have h != 0, h < N, and S decode to
// a point on E(Fp) before any pairing work happens. h < N is a type
// invariant of curve.Scalar itself (every constructor either reduces mod N
// or, for wire input via DecodeSignature, rejects values >= N outright
// instead of wrapping them); h != 0 is checked here because a zero scalar is
// otherwise a valid Scalar value. Subgroup membership for S is satisfied
// automatically because bn256's G1 has prime order N.
func Verify(ppubs *curve.G2, id []byte, message []byte, sig *Signature) (Status, error) {
	if ppubs == nil || sig == nil || sig.H == nil || sig.S == nil {
		return StatusError, fmt.Errorf("sign: incomplete verification input: %w", sm9id.ErrInvalidArgument)
	}
	if sig.H.IsZero() {
		return StatusError, fmt.Errorf("sign: h must be non-zero: %w", sm9id.ErrInvalidArgument)
	}

	g := curve.Pairing(ppubs, curve.P1)
	defer g.Free()
	t := g.Exp(sig.H)
	defer t.Free()

	h1, err := hashscalar.H1(id, byte(sm9id.HidSign))
	if err != nil {
		return StatusError, err
	}
	defer h1.Free()

	p := curve.P2.Mul(h1)
	p = p.Add(ppubs) // full addition: summands are not in a special position

	u := curve.Pairing(p, sig.S)
	defer u.Free()
	w := u.Mul(t)
	defer w.Free()
	wBytes := w.Bytes()
	defer zeroize(wBytes)

	h2, err := hashscalar.H2(message, wBytes)
	if err != nil {
		return StatusError, err
	}
	defer h2.Free()

	if h2.Equal(sig.H) {
		return StatusValid, nil
	}
	return StatusInvalid, nil
}
