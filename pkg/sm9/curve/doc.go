// Package curve provides the scalar, G1, G2, and GT (Fp12) collaborators that
// the SM9 scheme layer is built on top of: scalar arithmetic modulo the group
// order N, point operations on the base curve and its twist, Fp12
// multiplication/exponentiation, and the optimal-ate pairing e(Q, P).
//
// These are the "external collaborators" of the scheme specification — the
// scheme packages (sign, kem, pke, exchange) never touch field or group
// internals directly, they call through this package. The concrete group
// arithmetic is supplied by golang.org/x/crypto/bn256, a BN-curve pairing
// implementation whose G1/G2/GT types line up with the spec's G1/G2/Fp12
// collaborators field for field, including GT's 384-byte marshaled size.
//
// bn256's G1 and G2 are groups of prime order (the curve has no cofactor), so
// any point that decodes via Unmarshal is automatically both on-curve and in
// the correct subgroup; the on-curve check this package exposes therefore
// also satisfies the spec's subgroup membership recommendation.
package curve
