package sm9

import "github.com/sm9kit/sm9-go/pkg/sm9/sm9id"

// Sentinel errors a caller can match against with errors.Is, aliased from
// sm9id (the leaf package every scheme package already depends on) so the
// same error value flows from sign/kem/pke/exchange up through this
// facade without re-wrapping.
//
// There is deliberately no ErrVerificationFailed: Verify's result is the
// tri-state Status (StatusValid/StatusInvalid/StatusError), not an error —
// a hash mismatch on otherwise well-formed input returns (StatusInvalid,
// nil) per spec §7, and turning that into an error here would contradict
// the one place this module already has a typed "yes/no/malformed" result.
var (
	// ErrInvalidArgument wraps every scheme function's argument-validation
	// failure (nil key or point, malformed envelope, point that fails to
	// decode). Identities are not checked for emptiness.
	ErrInvalidArgument = sm9id.ErrInvalidArgument

	// ErrDecryptionFailed wraps pke.Decrypt's MAC-mismatch and bad-
	// encapsulation-point failures (spec §7 kind 4).
	ErrDecryptionFailed = sm9id.ErrDecryptionFailed
)
