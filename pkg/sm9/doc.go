// Package sm9 is the top-level facade over the SM9 identity-based
// cryptography suite: signatures (sign), key encapsulation (kem), public-key
// encryption (pke), and the authenticated key exchange (exchange).
//
// Each scheme lives in its own subpackage with its own operations and wire
// codec; this package re-exports the pieces callers need for the common case
// of "one master key pair, several identities" so they do not have to import
// four subpackages to use one scheme. Callers who only need one scheme can
// import that subpackage directly instead.
//
// Master key generation (ks, ke, kx and the corresponding Ppubs/Ppube/Ppubx)
// is out of scope here, same as in every subpackage: a KGC's master secrets
// and its per-identity key derivation are a deployment concern, not part of
// the wire-level primitives this module implements.
package sm9
