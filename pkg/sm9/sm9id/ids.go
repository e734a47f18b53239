// Package sm9id holds the domain constants and sentinel errors shared
// across every SM9 scheme package: the three private-key-family tags, the
// plaintext size ceiling, and the errors.Is-matchable failure sentinels. It
// exists as its own leaf package so sign/kem/pke/exchange can share these
// without importing the facade package that, in turn, imports them.
package sm9id

import "errors"

// ErrInvalidArgument is wrapped by every scheme function's argument-
// validation error (nil key or point, malformed envelope, point that fails
// to decode). Identities are not checked for emptiness, so an empty
// identity does not produce it. It is never returned for a randomness-exhaustion
// failure or a clean verification/decryption rejection; those have their
// own meaning and are not "the caller passed something malformed".
var ErrInvalidArgument = errors.New("sm9: invalid argument")

// ErrDecryptionFailed is wrapped by pke.Decrypt's MAC-mismatch and bad-
// encapsulation-point failures (spec §7 kind 4). It is never returned
// alongside any detail distinguishing a MAC failure from a bad point.
var ErrDecryptionFailed = errors.New("sm9: decryption failed")

// Hid is a one-byte domain tag distinguishing which private-key family
// (signing, encryption, exchange) an identity's derived key belongs to.
type Hid byte

// The three domain tags mandated by the SM9 standard.
const (
	HidSign     Hid = 0x01
	HidExchange Hid = 0x02
	HidEncrypt  Hid = 0x03
)

// MaxPlaintextSize is the ceiling PKE enforces on plaintext length. This is
// an implementation-defined bound (spec §6); 64 KiB comfortably covers
// symmetric key material and small messages while keeping the XOR
// keystream derivation (klen = L+32 bytes out of a single KDF call) cheap.
const MaxPlaintextSize = 64 * 1024
