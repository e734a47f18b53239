// Package sm3kit adapts github.com/yunmoon/gmsm/sm3 into the streaming hash,
// KDF, and HMAC collaborators the scheme layer needs: a copyable digest (for
// H2's two-branch counter finalization), the SM3-based KDF, and SM3-HMAC.
package sm3kit

import (
	"crypto/hmac"
	"encoding"
	"errors"
	"hash"

	"github.com/yunmoon/gmsm/sm3"
)

// Size is the SM3 digest size in bytes.
const Size = 32

// NewDigest returns a fresh, empty SM3 streaming context.
func NewDigest() hash.Hash {
	return sm3.New()
}

// CloneDigest returns an independent copy of h's running state, so the
// caller can branch into two finalizations that share a common prefix (the
// H2 two-counter construction in spec §4.A). sm3's digest implements
// encoding.BinaryMarshaler/BinaryUnmarshaler the same way crypto/sha256's
// does, so cloning is a marshal-into-a-fresh-instance round trip.
func CloneDigest(h hash.Hash) (hash.Hash, error) {
	marshaler, ok := h.(encoding.BinaryMarshaler)
	if !ok {
		return nil, errors.New("sm3kit: digest does not support cloning")
	}
	state, err := marshaler.MarshalBinary()
	if err != nil {
		return nil, err
	}
	clone := sm3.New()
	unmarshaler, ok := clone.(encoding.BinaryUnmarshaler)
	if !ok {
		return nil, errors.New("sm3kit: digest does not support cloning")
	}
	if err := unmarshaler.UnmarshalBinary(state); err != nil {
		return nil, err
	}
	return clone, nil
}

// Sum256 computes the SM3 digest of data in one call.
func Sum256(data []byte) [Size]byte {
	return sm3.Sum(data)
}

// Kdf derives keyLen bytes from z using the SM3-based KDF specified by
// GM/T 0003.4 — the same construction SM9's KEM and key exchange both call.
func Kdf(z []byte, keyLen int) []byte {
	return sm3.Kdf(z, keyLen)
}

// HMAC computes the SM3-HMAC tag of data under key, used for the PKE
// ciphertext's C3 field.
func HMAC(key, data []byte) [Size]byte {
	mac := hmac.New(sm3.New, key)
	mac.Write(data)
	var out [Size]byte
	copy(out[:], mac.Sum(nil))
	return out
}
