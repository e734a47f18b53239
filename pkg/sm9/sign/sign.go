package sign

import (
	"context"
	"errors"
	"fmt"

	"github.com/sm9kit/sm9-go/pkg/sm9/curve"
	"github.com/sm9kit/sm9-go/pkg/sm9/hashscalar"
	"github.com/sm9kit/sm9-go/pkg/sm9/internal/sm9log"
	"github.com/sm9kit/sm9-go/pkg/sm9/sm9id"
)

// maxSignAttempts bounds the resample-on-l-equals-zero loop. Hitting it would
// mean a broken randomness source, not a valid protocol outcome.
const maxSignAttempts = 16

// Sampler supplies scalars for testing reproducibility (Design Note DN-2).
// Sign always uses the crypto/rand-backed default; only the unexported
// signWithSampler accepts another Sampler, so in-package tests can control
// how r is drawn.
type Sampler func() (*curve.Scalar, error)

func defaultSampler() (*curve.Scalar, error) {
	return curve.RandomScalar(nil)
}

// resampleOn is the resample loop's retry predicate, factored out of the
// l.IsZero() check itself so internal tests can force a resample without
// needing an r that actually collides with H2's output (negligible
// probability over the real scalar field). Production always leaves this at
// its default.
var resampleOn = func(l *curve.Scalar) bool {
	return l.IsZero()
}

// Sign implements algorithms A1-A6. M is supplied as a single buffer; this
// package has no entry point for feeding a message incrementally.
//
// Design Note DN-1: g = e(Ppubs, P1) is computed once and preserved across
// every iteration of the resample loop; only w = g^r is recomputed per
// attempt. An earlier draft of this routine (flagged in the spec as
// bug-shaped behavior, not to be replicated) overwrote g itself on every
// iteration.
func Sign(key *Key, message []byte) (*Signature, error) {
	return signWithSampler(key, message, defaultSampler)
}

func signWithSampler(key *Key, message []byte, sample Sampler) (*Signature, error) {
	if key == nil || key.Ds == nil || key.Ppubs == nil {
		return nil, fmt.Errorf("sign: incomplete signing key: %w", sm9id.ErrInvalidArgument)
	}

	g := curve.Pairing(key.Ppubs, curve.P1) // g = e(Ppubs, P1), computed once
	defer g.Free()

	base := hashscalar.NewContext()
	base.Write(message)

	for attempt := 0; attempt < maxSignAttempts; attempt++ {
		r, err := sample()
		if err != nil {
			return nil, err
		}

		w := g.Exp(r)
		wBytes := w.Bytes()
		w.Free()

		iterCtx, err := base.Clone()
		if err != nil {
			r.Free()
			sm9log.Default().Warn(context.Background(), "sign: failed to clone H2 context")
			return nil, err
		}
		h, err := iterCtx.Finalize(wBytes)
		zeroize(wBytes)
		if err != nil {
			r.Free()
			return nil, err
		}

		l := r.Sub(h)
		r.Free()
		if resampleOn(l) {
			l.Free()
			continue // resample r; g is preserved, only w/h/l are recomputed
		}

		s := key.Ds.Mul(l)
		l.Free()
		return &Signature{H: h, S: s}, nil
	}
	return nil, errors.New("sign: exhausted resample attempts")
}

func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
