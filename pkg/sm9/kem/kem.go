package kem

import (
	"errors"
	"fmt"

	"github.com/sm9kit/sm9-go/pkg/sm9/curve"
	"github.com/sm9kit/sm9-go/pkg/sm9/hashscalar"
	"github.com/sm9kit/sm9-go/pkg/sm9/internal/sm3kit"
	"github.com/sm9kit/sm9-go/pkg/sm9/sm9id"
)

const maxEncapsulateAttempts = 16

// Sampler supplies scalars for testing reproducibility (Design Note DN-2).
type Sampler func() (*curve.Scalar, error)

func defaultSampler() (*curve.Scalar, error) {
	return curve.RandomScalar(nil)
}

// resampleOn is Encapsulate's retry predicate, factored out of allZero(key)
// so internal tests can force a resample without needing a KDF output that
// actually lands on all-zero (negligible probability in practice).
// Production always leaves this at its default.
var resampleOn = func(key []byte) bool {
	return allZero(key)
}

// Encapsulate derives a klen-byte symmetric key bound to id under the
// encryption master public key ppube, returning the key and the
// encapsulation point C to send alongside it.
func Encapsulate(ppube *curve.G1, id []byte, klen int) (key []byte, c *curve.G1, err error) {
	return encapsulateWithSampler(ppube, id, klen, defaultSampler)
}

func encapsulateWithSampler(ppube *curve.G1, id []byte, klen int, sample Sampler) ([]byte, *curve.G1, error) {
	if ppube == nil {
		return nil, nil, fmt.Errorf("kem: nil encryption master public key: %w", sm9id.ErrInvalidArgument)
	}
	if klen <= 0 {
		return nil, nil, fmt.Errorf("kem: klen must be positive: %w", sm9id.ErrInvalidArgument)
	}

	h1, err := hashscalar.H1(id, byte(sm9id.HidEncrypt))
	if err != nil {
		return nil, nil, err
	}
	defer h1.Free()
	q := curve.P1.Mul(h1).Add(ppube)

	// e(Ppube, P2) does not depend on r, so it is computed once here, before
	// the loop, and each iteration only raises it to the fresh r.
	base := curve.Pairing(curve.P2, ppube)
	defer base.Free()

	for attempt := 0; attempt < maxEncapsulateAttempts; attempt++ {
		r, err := sample()
		if err != nil {
			return nil, nil, err
		}

		cPoint := q.Mul(r)
		xy := cPoint.XY()

		w := base.Exp(r)
		r.Free()
		wBytes := w.Bytes()
		w.Free()

		kdfInput := make([]byte, 0, len(xy)+len(wBytes)+len(id))
		kdfInput = append(kdfInput, xy...)
		kdfInput = append(kdfInput, wBytes...)
		kdfInput = append(kdfInput, id...)
		zeroize(wBytes)

		key := sm3kit.Kdf(kdfInput, klen)
		zeroize(kdfInput)

		if resampleOn(key) {
			zeroize(key)
			continue
		}
		return key, cPoint, nil
	}
	return nil, nil, errors.New("kem: exhausted encapsulation attempts")
}

// Decapsulate recovers the klen-byte key bound to id from encapsulation
// point c, using the recipient's private decryption key de.
func Decapsulate(de *curve.G2, c *curve.G1, id []byte, klen int) ([]byte, error) {
	if de == nil || c == nil {
		return nil, fmt.Errorf("kem: nil key or ciphertext point: %w", sm9id.ErrInvalidArgument)
	}
	if klen <= 0 {
		return nil, fmt.Errorf("kem: klen must be positive: %w", sm9id.ErrInvalidArgument)
	}

	w := curve.Pairing(de, c)
	wBytes := w.Bytes()
	w.Free()
	defer zeroize(wBytes)

	xy := c.XY()
	kdfInput := make([]byte, 0, len(xy)+len(wBytes)+len(id))
	kdfInput = append(kdfInput, xy...)
	kdfInput = append(kdfInput, wBytes...)
	kdfInput = append(kdfInput, id...)

	key := sm3kit.Kdf(kdfInput, klen)
	zeroize(kdfInput)

	if allZero(key) {
		zeroize(key)
		return nil, errors.New("kem: derived key is all-zero")
	}
	return key, nil
}

func allZero(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc == 0
}

func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
