package sm9_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sm9kit/sm9-go/pkg/sm9"
	"github.com/sm9kit/sm9-go/pkg/sm9/hashscalar"
)

func TestFacadeSignVerifyRoundTrip(t *testing.T) {
	ks := sm9.NewScalarFromBytes([]byte("facade test signing master secret"))
	id := []byte("Alice")

	h1, err := hashscalar.H1(id, byte(sm9.HidSign))
	require.NoError(t, err)
	t1 := h1.Add(ks)
	t1Inv, err := t1.Inverse()
	require.NoError(t, err)
	t2 := ks.Mul(t1Inv)

	key := &sm9.SigningKey{}
	key.Ppubs = sm9.G2Base().Mul(ks)
	key.Ds = sm9.G1Base().Mul(t2)

	message := []byte("facade round-trip message")
	sig, err := sm9.Sign(key, message)
	require.NoError(t, err)

	status, err := sm9.Verify(key.Ppubs, id, message, sig)
	require.NoError(t, err)
	require.Equal(t, sm9.StatusValid, status)

	der, err := sig.Encode()
	require.NoError(t, err)
	decoded, err := sm9.DecodeSignature(der)
	require.NoError(t, err)
	status, err = sm9.Verify(key.Ppubs, id, message, decoded)
	require.NoError(t, err)
	require.Equal(t, sm9.StatusValid, status)
}

func TestFacadeEncryptDecryptRoundTrip(t *testing.T) {
	ke := sm9.NewScalarFromBytes([]byte("facade test encryption master secret"))
	id := []byte("Bob")

	h1, err := hashscalar.H1(id, byte(sm9.HidEncrypt))
	require.NoError(t, err)
	t1 := h1.Add(ke)
	t1Inv, err := t1.Inverse()
	require.NoError(t, err)
	t2 := ke.Mul(t1Inv)

	ppube := sm9.G1Base().Mul(ke)
	de := sm9.G2Base().Mul(t2)

	plaintext := []byte("facade plaintext payload")
	env, err := sm9.Encrypt(ppube, id, plaintext)
	require.NoError(t, err)

	got, err := sm9.Decrypt(de, id, env)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)

	der, err := env.Encode()
	require.NoError(t, err)
	decoded, err := sm9.DecodeEnvelope(der)
	require.NoError(t, err)
	got, err = sm9.Decrypt(de, id, decoded)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

func TestFacadeExchangeAgreement(t *testing.T) {
	kx := sm9.NewScalarFromBytes([]byte("facade test exchange master secret"))
	idA, idB := []byte("Alice"), []byte("Bob")

	deFor := func(id []byte) *sm9.G2 {
		h1, err := hashscalar.H1(id, byte(sm9.HidExchange))
		require.NoError(t, err)
		t1 := h1.Add(kx)
		t1Inv, err := t1.Inverse()
		require.NoError(t, err)
		return sm9.G2Base().Mul(kx.Mul(t1Inv))
	}

	ppube := sm9.G1Base().Mul(kx)
	deA, deB := deFor(idA), deFor(idB)

	stateA, err := sm9.StepA1(ppube, idB)
	require.NoError(t, err)
	defer stateA.Free()

	RB, skB, matB, err := sm9.StepB1(ppube, idA, idB, deB, stateA.RA, 32)
	require.NoError(t, err)
	defer matB.Free()

	skA, matA, err := sm9.StepA2(ppube, idA, idB, deA, stateA, RB, 32)
	require.NoError(t, err)
	defer matA.Free()

	require.Equal(t, skA, skB)
	require.Equal(t, matA.ConfirmB(), matB.ConfirmB())
}
