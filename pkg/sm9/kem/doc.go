// Package kem implements the SM9 key encapsulation mechanism (spec
// component E): encapsulating a symmetric key bound to a recipient identity,
// and decapsulating it with that identity's private decryption key.
//
// This interface is intentionally randomized (every Encapsulate call samples
// a fresh r), unlike deterministic PVE-style KEMs seen elsewhere in the
// retrieved corpus; SM9's KEM has no determinism requirement to preserve.
package kem
