package curve

import "golang.org/x/crypto/bn256"

// Pairing computes the optimal-ate pairing e(Q, P) with Q in G2 and P in G1,
// per the spec's (G2, G1) argument order. bn256.Pair takes (G1, G2), so this
// wrapper swaps the arguments once here rather than asking every call site to
// remember the convention.
func Pairing(Q *G2, P *G1) *GT {
	return &GT{p: bn256.Pair(P.p, Q.p)}
}
