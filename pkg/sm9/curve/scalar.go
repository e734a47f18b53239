package curve

import (
	"crypto/rand"
	"errors"
	"math/big"
	"runtime"

	"golang.org/x/crypto/bn256"
)

// Order is the group order N shared by G1, G2, and GT. It is a process-wide
// immutable constant, loaded once from bn256 and never mutated.
var Order = bn256.Order

// Scalar is an element of [0, N). It is stored as a normalized big.Int so the
// package can reuse bn256's own reduction logic instead of re-implementing
// modular arithmetic.
//
// Scalar values that hold secret material (r, rA, rB, ds, de, l, ...) must be
// erased with Free once the caller is done with them. Free is idempotent and
// safe to call on a nil receiver.
type Scalar struct {
	v *big.Int
}

// zeroizeInt overwrites the words backing v with zero (reached through
// Bits) and then sets v itself to zero; see Free's doc comment.
func zeroizeInt(v *big.Int) {
	if v == nil {
		return
	}
	words := v.Bits()
	for i := range words {
		words[i] = 0
	}
	v.SetInt64(0)
	runtime.KeepAlive(v)
}

// NewScalarFromBytes builds a Scalar from a big-endian byte string, reducing
// it modulo N. This is the on-ramp used by H1/H2's fn_from_hash step.
func NewScalarFromBytes(b []byte) *Scalar {
	v := new(big.Int).SetBytes(b)
	v.Mod(v, Order)
	return &Scalar{v: v}
}

// NewScalarFromBigInt reduces an existing big.Int modulo N and wraps it. The
// input is copied; the caller's big.Int is left untouched.
func NewScalarFromBigInt(v *big.Int) *Scalar {
	r := new(big.Int).Mod(v, Order)
	return &Scalar{v: r}
}

// NewScalarFromCanonicalBytes builds a Scalar from a big-endian byte string
// without reducing it, rejecting any value that is not already in [0, N).
// Wire-level scalars (a signature's h, in particular) must be checked this
// way instead of through NewScalarFromBytes: silently wrapping an
// out-of-range value modulo N would accept an h the spec requires rejected.
func NewScalarFromCanonicalBytes(b []byte) (*Scalar, error) {
	v := new(big.Int).SetBytes(b)
	if v.Cmp(Order) >= 0 {
		return nil, errors.New("sm9/curve: value is not in [0, N)")
	}
	return &Scalar{v: v}, nil
}

// RandomScalar samples a uniform scalar in [1, N-1] using the provided
// randomness source. Passing nil uses crypto/rand.Reader.
func RandomScalar(rnd func([]byte) (int, error)) (*Scalar, error) {
	if rnd == nil {
		rnd = rand.Reader.Read
	}
	// N is 256 bits; take 256 bits + 64 bits of oversampling (matches the
	// FIPS 186-4 Appendix B.5.1 bias-reduction the teacher's ECDSA sampling
	// also performs) before reducing modulo N-1 and shifting into [1, N-1].
	buf := make([]byte, (Order.BitLen()+7)/8+8)
	if _, err := rnd(buf); err != nil {
		return nil, errors.New("sm9/curve: randomness source failed")
	}
	nMinus1 := new(big.Int).Sub(Order, big.NewInt(1))
	v := new(big.Int).SetBytes(buf)
	v.Mod(v, nMinus1)
	v.Add(v, big.NewInt(1))
	zeroizeBytes(buf)
	return &Scalar{v: v}, nil
}

// IsZero reports whether the scalar is the additive identity.
func (s *Scalar) IsZero() bool {
	if s == nil || s.v == nil {
		return true
	}
	return s.v.Sign() == 0
}

// Equal reports whether two scalars are numerically equal.
func (s *Scalar) Equal(o *Scalar) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.v.Cmp(o.v) == 0
}

// Add returns (s + o) mod N.
func (s *Scalar) Add(o *Scalar) *Scalar {
	r := new(big.Int).Add(s.v, o.v)
	r.Mod(r, Order)
	return &Scalar{v: r}
}

// Sub returns (s - o) mod N.
func (s *Scalar) Sub(o *Scalar) *Scalar {
	r := new(big.Int).Sub(s.v, o.v)
	r.Mod(r, Order)
	return &Scalar{v: r}
}

// Mul returns (s * o) mod N.
func (s *Scalar) Mul(o *Scalar) *Scalar {
	r := new(big.Int).Mul(s.v, o.v)
	r.Mod(r, Order)
	return &Scalar{v: r}
}

// Inverse returns s^-1 mod N. It returns an error if s is zero.
func (s *Scalar) Inverse() (*Scalar, error) {
	if s.IsZero() {
		return nil, errors.New("sm9/curve: inverse of zero scalar")
	}
	r := new(big.Int).ModInverse(s.v, Order)
	if r == nil {
		return nil, errors.New("sm9/curve: scalar has no inverse mod N")
	}
	return &Scalar{v: r}, nil
}

// Bytes returns the scalar's big-endian encoding, left-padded to 32 bytes.
func (s *Scalar) Bytes() []byte {
	out := make([]byte, 32)
	b := s.v.Bytes()
	copy(out[32-len(b):], b)
	return out
}

// BigInt returns a defensive copy of the scalar as a big.Int.
//
// WARNING: big.Int arithmetic is not constant-time. This accessor exists for
// display, test fixtures, and interop with bn256's big.Int-based API; it must
// not be used anywhere a timing side-channel on the scalar's value matters.
func (s *Scalar) BigInt() *big.Int {
	return new(big.Int).Set(s.v)
}

// Free zeroizes the scalar's backing big.Int. After Free the scalar reads as
// zero; callers must not reuse it. Safe to call on nil.
func (s *Scalar) Free() {
	if s == nil {
		return
	}
	zeroizeInt(s.v)
}

func zeroizeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
