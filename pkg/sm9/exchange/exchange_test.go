package exchange_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sm9kit/sm9-go/pkg/sm9/curve"
	"github.com/sm9kit/sm9-go/pkg/sm9/exchange"
	"github.com/sm9kit/sm9-go/pkg/sm9/hashscalar"
	"github.com/sm9kit/sm9-go/pkg/sm9/sm9id"
)

// generateExchangeKeyPair is test-only scaffolding, mirroring the formula
// used by sign and kem's test helpers: de = kx * (H1(ID||hid_x)+kx)^-1 * P2,
// Ppube = kx*P1.
func generateExchangeKeyPair(t *testing.T, id []byte, kx *curve.Scalar) (ppube *curve.G1, de *curve.G2) {
	t.Helper()
	h1, err := hashscalar.H1(id, byte(sm9id.HidExchange))
	require.NoError(t, err)

	t1 := h1.Add(kx)
	t1Inv, err := t1.Inverse()
	require.NoError(t, err)
	t2 := kx.Mul(t1Inv)

	return curve.P1.Mul(kx), curve.P2.Mul(t2)
}

func TestExchangeAgreement(t *testing.T) {
	kx := curve.NewScalarFromBytes([]byte("fixed master exchange secret for tests"))
	idA, idB := []byte("Alice"), []byte("Bob")
	ppube, deA := generateExchangeKeyPair(t, idA, kx)
	_, deB := generateExchangeKeyPair(t, idB, kx)

	stateA, err := exchange.StepA1(ppube, idB)
	require.NoError(t, err)
	defer stateA.Free()

	RB, skB, matB, err := exchange.StepB1(ppube, idA, idB, deB, stateA.RA, 48)
	require.NoError(t, err)
	defer matB.Free()

	skA, matA, err := exchange.StepA2(ppube, idA, idB, deA, stateA, RB, 48)
	require.NoError(t, err)
	defer matA.Free()

	require.Equal(t, skA, skB)
	require.Len(t, skA, 48)
}

func TestExchangeConfirmationTags(t *testing.T) {
	kx := curve.NewScalarFromBytes([]byte("fixed master exchange secret for tests"))
	idA, idB := []byte("Alice"), []byte("Bob")
	ppube, deA := generateExchangeKeyPair(t, idA, kx)
	_, deB := generateExchangeKeyPair(t, idB, kx)

	stateA, err := exchange.StepA1(ppube, idB)
	require.NoError(t, err)
	defer stateA.Free()

	RB, _, matB, err := exchange.StepB1(ppube, idA, idB, deB, stateA.RA, 32)
	require.NoError(t, err)
	defer matB.Free()

	_, matA, err := exchange.StepA2(ppube, idA, idB, deA, stateA, RB, 32)
	require.NoError(t, err)
	defer matA.Free()

	sb := matB.ConfirmB()
	require.Equal(t, sb, matA.ConfirmB())

	sa := matA.ConfirmA()
	require.Equal(t, sa, matB.ConfirmA())

	require.NotEqual(t, sa, sb)
}

func TestStepB1RejectsInvalidRA(t *testing.T) {
	kx := curve.NewScalarFromBytes([]byte("fixed master exchange secret for tests"))
	idA, idB := []byte("Alice"), []byte("Bob")
	ppube, deB := generateExchangeKeyPair(t, idB, kx)

	_, _, _, err := exchange.StepB1(ppube, idA, idB, deB, nil, 32)
	require.Error(t, err)
}

func TestStepA2RejectsInvalidRB(t *testing.T) {
	kx := curve.NewScalarFromBytes([]byte("fixed master exchange secret for tests"))
	idA, idB := []byte("Alice"), []byte("Bob")
	ppube, deA := generateExchangeKeyPair(t, idA, kx)

	stateA, err := exchange.StepA1(ppube, idB)
	require.NoError(t, err)
	defer stateA.Free()

	_, _, err = exchange.StepA2(ppube, idA, idB, deA, stateA, nil, 32)
	require.Error(t, err)
}

func TestStepA2RejectsMissingState(t *testing.T) {
	kx := curve.NewScalarFromBytes([]byte("fixed master exchange secret for tests"))
	idA, idB := []byte("Alice"), []byte("Bob")
	ppube, deA := generateExchangeKeyPair(t, idA, kx)

	dummy := curve.P1.Mul(curve.NewScalarFromBytes([]byte("dummy")))
	_, _, err := exchange.StepA2(ppube, idA, idB, deA, nil, dummy, 32)
	require.Error(t, err)
}

func TestExchangeDisagreesForMismatchedIdentities(t *testing.T) {
	kx := curve.NewScalarFromBytes([]byte("fixed master exchange secret for tests"))
	idA, idB, idC := []byte("Alice"), []byte("Bob"), []byte("Carol")
	ppube, deA := generateExchangeKeyPair(t, idA, kx)
	_, deB := generateExchangeKeyPair(t, idB, kx)

	// A believes it is talking to Carol, but the responder is actually Bob.
	stateA, err := exchange.StepA1(ppube, idC)
	require.NoError(t, err)
	defer stateA.Free()

	RB, skB, matB, err := exchange.StepB1(ppube, idA, idB, deB, stateA.RA, 32)
	require.NoError(t, err)
	defer matB.Free()

	skA, matA, err := exchange.StepA2(ppube, idA, idC, deA, stateA, RB, 32)
	require.NoError(t, err)
	defer matA.Free()

	require.NotEqual(t, skA, skB)
}
