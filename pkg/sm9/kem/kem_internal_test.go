package kem

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sm9kit/sm9-go/pkg/sm9/curve"
	"github.com/sm9kit/sm9-go/pkg/sm9/hashscalar"
	"github.com/sm9kit/sm9-go/pkg/sm9/sm9id"
)

func generateTestEncryptionKey(t *testing.T, id []byte, ke *curve.Scalar) (*curve.G1, *curve.G2) {
	t.Helper()
	h1, err := hashscalar.H1(id, byte(sm9id.HidEncrypt))
	require.NoError(t, err)

	t1 := h1.Add(ke)
	t1Inv, err := t1.Inverse()
	require.NoError(t, err)
	t2 := ke.Mul(t1Inv)

	return curve.P1.Mul(ke), curve.P2.Mul(t2)
}

// TestEncapsulateResamplesOnAllZeroKey forces resampleOn to report the first
// derived key degenerate, exercising Encapsulate's retry branch. The key and
// point eventually returned must still decapsulate correctly, proving the
// retry did not leave q or base in a stale state.
func TestEncapsulateResamplesOnAllZeroKey(t *testing.T) {
	ke := curve.NewScalarFromBytes([]byte("internal kem test master secret"))
	id := []byte("Bob")
	ppube, de := generateTestEncryptionKey(t, id, ke)

	orig := resampleOn
	defer func() { resampleOn = orig }()

	var calls int32
	resampleOn = func(key []byte) bool {
		return atomic.AddInt32(&calls, 1) == 1
	}

	key, c, err := encapsulateWithSampler(ppube, id, 32, defaultSampler)
	require.NoError(t, err)
	require.EqualValues(t, 2, calls, "the forced all-zero key must trigger exactly one resample")

	recovered, err := Decapsulate(de, c, id, 32)
	require.NoError(t, err)
	require.Equal(t, key, recovered)
}

func TestEncapsulateExhaustsAttemptsWhenAlwaysDegenerate(t *testing.T) {
	ke := curve.NewScalarFromBytes([]byte("internal kem test master secret"))
	id := []byte("Carol")
	ppube, _ := generateTestEncryptionKey(t, id, ke)

	orig := resampleOn
	defer func() { resampleOn = orig }()
	resampleOn = func(key []byte) bool { return true }

	_, _, err := encapsulateWithSampler(ppube, id, 32, defaultSampler)
	require.Error(t, err)
}
