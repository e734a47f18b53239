package pke

import (
	"crypto/subtle"
	"fmt"

	"github.com/lukechampine/fastxor"

	"github.com/sm9kit/sm9-go/pkg/sm9/curve"
	"github.com/sm9kit/sm9-go/pkg/sm9/internal/sm3kit"
	"github.com/sm9kit/sm9-go/pkg/sm9/kem"
	"github.com/sm9kit/sm9-go/pkg/sm9/sm9id"
)

// Encrypt implements spec component F's encrypt direction: one KEM call for
// klen = len(plaintext)+32, an XOR keystream over the plaintext, and an
// SM3-HMAC tag over the ciphertext keyed by the KDF's tail 32 bytes.
func Encrypt(ppube *curve.G1, id []byte, plaintext []byte) (*Envelope, error) {
	if len(plaintext) == 0 || len(plaintext) > sm9id.MaxPlaintextSize {
		return nil, fmt.Errorf("pke: plaintext length out of range: %w", sm9id.ErrInvalidArgument)
	}

	klen := len(plaintext) + 32
	stream, c1, err := kem.Encapsulate(ppube, id, klen)
	if err != nil {
		return nil, err
	}
	defer zeroize(stream)

	keystream, macKey := stream[:len(plaintext)], stream[len(plaintext):]

	c2 := make([]byte, len(plaintext))
	fastxor.Bytes(c2, keystream, plaintext)

	tag := sm3kit.HMAC(macKey, c2)

	return &Envelope{EnType: EnTypeXOR, C1: c1, C3: tag, C2: c2}, nil
}

// Decrypt implements spec component F's decrypt direction. The MAC
// comparison is constant-time and its failure is opaque: callers learn only
// that decryption failed, never whether the fault was the tag or the point.
func Decrypt(de *curve.G2, id []byte, env *Envelope) ([]byte, error) {
	if env == nil || env.C1 == nil {
		return nil, fmt.Errorf("pke: incomplete ciphertext: %w", sm9id.ErrInvalidArgument)
	}
	if len(env.C2) == 0 || len(env.C2) > sm9id.MaxPlaintextSize {
		return nil, fmt.Errorf("pke: ciphertext length out of range: %w", sm9id.ErrInvalidArgument)
	}
	if env.EnType != EnTypeXOR {
		return nil, fmt.Errorf("pke: unsupported en_type: %w", sm9id.ErrInvalidArgument)
	}

	klen := len(env.C2) + 32
	stream, err := kem.Decapsulate(de, env.C1, id, klen)
	if err != nil {
		return nil, errDecryptFailed
	}
	defer zeroize(stream)

	keystream, macKey := stream[:len(env.C2)], stream[len(env.C2):]

	wantTag := sm3kit.HMAC(macKey, env.C2)
	if subtle.ConstantTimeCompare(wantTag[:], env.C3[:]) != 1 {
		zeroize(wantTag[:])
		return nil, errDecryptFailed
	}
	zeroize(wantTag[:])

	plaintext := make([]byte, len(env.C2))
	fastxor.Bytes(plaintext, keystream, env.C2)
	return plaintext, nil
}

// errDecryptFailed is returned for both a MAC mismatch and a KEM failure so
// callers cannot distinguish which check failed (spec §7 kind 4); it wraps
// sm9id.ErrDecryptionFailed so callers can still match on errors.Is.
var errDecryptFailed = fmt.Errorf("pke: decryption failed: %w", sm9id.ErrDecryptionFailed)

func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
