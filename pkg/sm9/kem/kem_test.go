package kem_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sm9kit/sm9-go/pkg/sm9/curve"
	"github.com/sm9kit/sm9-go/pkg/sm9/hashscalar"
	"github.com/sm9kit/sm9-go/pkg/sm9/kem"
	"github.com/sm9kit/sm9-go/pkg/sm9/sm9id"
)

// generateEncryptionKeyPair is test-only scaffolding, mirroring the formula
// used by sign's test helper: de = ke * (H1(ID||hid_e)+ke)^-1 * P2,
// Ppube = ke*P1.
func generateEncryptionKeyPair(t *testing.T, id []byte, ke *curve.Scalar) (ppube *curve.G1, de *curve.G2) {
	t.Helper()
	h1, err := hashscalar.H1(id, byte(sm9id.HidEncrypt))
	require.NoError(t, err)

	t1 := h1.Add(ke)
	t1Inv, err := t1.Inverse()
	require.NoError(t, err)
	t2 := ke.Mul(t1Inv)

	return curve.P1.Mul(ke), curve.P2.Mul(t2)
}

func TestKEMConsistency(t *testing.T) {
	ke := curve.NewScalarFromBytes([]byte("fixed master encryption secret for tests"))
	id := []byte("Bob")
	ppube, de := generateEncryptionKeyPair(t, id, ke)

	key, c, err := kem.Encapsulate(ppube, id, 32)
	require.NoError(t, err)
	require.Len(t, key, 32)

	recovered, err := kem.Decapsulate(de, c, id, 32)
	require.NoError(t, err)
	require.Equal(t, key, recovered)
}

func TestKEMDecapsulateYieldsDifferentKeyForWrongIdentity(t *testing.T) {
	ke := curve.NewScalarFromBytes([]byte("fixed master encryption secret for tests"))
	ppube, de := generateEncryptionKeyPair(t, []byte("Bob"), ke)

	key, c, err := kem.Encapsulate(ppube, []byte("Bob"), 32)
	require.NoError(t, err)

	recovered, err := kem.Decapsulate(de, c, []byte("Carol"), 32)
	require.NoError(t, err) // decapsulation itself still succeeds...
	require.NotEqual(t, key, recovered) // ...but the derived key no longer matches
}
