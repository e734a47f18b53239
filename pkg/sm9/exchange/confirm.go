package exchange

import (
	"crypto/subtle"

	"github.com/sm9kit/sm9-go/pkg/sm9/internal/sm3kit"
)

// Prefixes for the optional key-confirmation tags (spec §4.H).
const (
	confirmPrefixBtoA byte = 0x82
	confirmPrefixAtoB byte = 0x83
)

// Material holds the derivation inputs behind one side's computed shared
// secret: the Fp12 pairing values (G1, G2, G3, in the order both parties
// use) and the identity/ephemeral-point inputs, kept around only so that
// side can compute or verify a confirmation tag afterwards. It must be
// erased with Free once the exchange concludes.
type Material struct {
	idA, idB   []byte
	raXY, rbXY []byte
	g1, g2, g3 []byte
}

// Free zeroizes the retained Fp12 values. Identity and point bytes are
// public and left alone.
func (m *Material) Free() {
	if m == nil {
		return
	}
	zeroize(m.g1)
	zeroize(m.g2)
	zeroize(m.g3)
	m.g1, m.g2, m.g3 = nil, nil, nil
}

func (m *Material) tag(prefix byte) [32]byte {
	inner := make([]byte, 0, len(m.g2)+len(m.g3)+len(m.idA)+len(m.idB)+len(m.raXY)+len(m.rbXY))
	inner = append(inner, m.g2...)
	inner = append(inner, m.g3...)
	inner = append(inner, m.idA...)
	inner = append(inner, m.idB...)
	inner = append(inner, m.raXY...)
	inner = append(inner, m.rbXY...)
	innerHash := sm3kit.Sum256(inner)
	zeroize(inner)

	outer := make([]byte, 0, 1+len(m.g1)+len(innerHash))
	outer = append(outer, prefix)
	outer = append(outer, m.g1...)
	outer = append(outer, innerHash[:]...)
	result := sm3kit.Sum256(outer)
	zeroize(outer)
	return result
}

// ConfirmB computes SB = H(0x82 || g1 || H(g2||g3||IDA||IDB||RA||RB)), the
// tag B MAY send to A to confirm the exchange.
func (m *Material) ConfirmB() [32]byte { return m.tag(confirmPrefixBtoA) }

// ConfirmA computes SA = H(0x83 || g1 || H(g2||g3||IDA||IDB||RA||RB)), the
// tag A MAY send to B to confirm the exchange.
func (m *Material) ConfirmA() [32]byte { return m.tag(confirmPrefixAtoB) }

// VerifyConfirmB reports whether received matches the tag B would have sent,
// recomputed from this side's own Material, using a constant-time compare.
func (m *Material) VerifyConfirmB(received [32]byte) bool {
	want := m.ConfirmB()
	return subtle.ConstantTimeCompare(want[:], received[:]) == 1
}

// VerifyConfirmA reports whether received matches the tag A would have
// sent, recomputed from this side's own Material, using a constant-time
// compare.
func (m *Material) VerifyConfirmA(received [32]byte) bool {
	want := m.ConfirmA()
	return subtle.ConstantTimeCompare(want[:], received[:]) == 1
}
