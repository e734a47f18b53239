// Package hashscalar implements the SM9 hash-to-scalar constructions H1 and
// H2 (spec component A): deriving an element of [1, N-1] from a byte string
// with a fixed one-byte domain-separation prefix, by expanding SM3 output to
// 64 bytes with a two-block counter construction and reducing modulo N-1
// before shifting into [1, N-1].
package hashscalar

// Prefix tags select which of H1/H2 a hash invocation belongs to.
const (
	PrefixH1 byte = 0x01
	PrefixH2 byte = 0x02
)
