package exchange_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sm9kit/sm9-go/pkg/sm9/curve"
	"github.com/sm9kit/sm9-go/pkg/sm9/exchange"
	"github.com/sm9kit/sm9-go/pkg/sm9/hashscalar"
	"github.com/sm9kit/sm9-go/pkg/sm9/sm9id"
)

// link is a minimal in-memory, context-aware point-to-point channel, adapted
// from the teacher's mocknet package down to the shape the exchange protocol
// actually needs: exactly one message in each direction, no role
// multiplexing or sequence numbers, since A and B exchange exactly one point
// each.
type link struct {
	toB chan []byte
	toA chan []byte
}

func newLink() *link {
	return &link{toB: make(chan []byte, 1), toA: make(chan []byte, 1)}
}

func (l *link) sendToB(ctx context.Context, msg []byte) error {
	select {
	case l.toB <- append([]byte(nil), msg...):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *link) sendToA(ctx context.Context, msg []byte) error {
	select {
	case l.toA <- append([]byte(nil), msg...):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *link) recvFromA(ctx context.Context) ([]byte, error) {
	select {
	case msg := <-l.toB:
		return msg, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (l *link) recvFromB(ctx context.Context) ([]byte, error) {
	select {
	case msg := <-l.toA:
		return msg, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// TestExchangeOverSimulatedTransport runs the exchange as two concurrent
// goroutines passing RA/RB bytes over a link, rather than handing Go values
// directly from one step function to the next. This exercises the protocol
// the way two independent processes actually would.
func TestExchangeOverSimulatedTransport(t *testing.T) {
	kx := curve.NewScalarFromBytes([]byte("netsim fixed master exchange secret for tests"))
	idA, idB := []byte("Alice"), []byte("Bob")
	ppube := curve.P1.Mul(kx)
	deA := deriveDe(t, kx, idA)
	deB := deriveDe(t, kx, idB)

	l := newLink()
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(2)

	var skA, skB []byte
	var errA, errB error

	go func() {
		defer wg.Done()
		skA, errA = runInitiator(ctx, l, ppube, idA, idB, deA)
	}()
	go func() {
		defer wg.Done()
		skB, errB = runResponder(ctx, l, ppube, idA, idB, deB)
	}()
	wg.Wait()

	require.NoError(t, errA)
	require.NoError(t, errB)
	require.Equal(t, skA, skB)
}

func deriveDe(t *testing.T, kx *curve.Scalar, id []byte) *curve.G2 {
	t.Helper()
	h1, err := hashscalar.H1(id, byte(sm9id.HidExchange))
	require.NoError(t, err)
	t1 := h1.Add(kx)
	t1Inv, err := t1.Inverse()
	require.NoError(t, err)
	return curve.P2.Mul(kx.Mul(t1Inv))
}

func runInitiator(ctx context.Context, l *link, ppube *curve.G1, idA, idB []byte, deA *curve.G2) ([]byte, error) {
	state, err := exchange.StepA1(ppube, idB)
	if err != nil {
		return nil, err
	}
	defer state.Free()

	if err := l.sendToB(ctx, state.RA.Uncompressed()); err != nil {
		return nil, err
	}
	rbBytes, err := l.recvFromB(ctx)
	if err != nil {
		return nil, err
	}
	RB, err := curve.NewG1FromUncompressed(rbBytes)
	if err != nil {
		return nil, err
	}

	sk, mat, err := exchange.StepA2(ppube, idA, idB, deA, state, RB, 32)
	if err != nil {
		return nil, err
	}
	defer mat.Free()
	return sk, nil
}

func runResponder(ctx context.Context, l *link, ppube *curve.G1, idA, idB []byte, deB *curve.G2) ([]byte, error) {
	raBytes, err := l.recvFromA(ctx)
	if err != nil {
		return nil, err
	}
	RA, err := curve.NewG1FromUncompressed(raBytes)
	if err != nil {
		return nil, err
	}

	RB, sk, mat, err := exchange.StepB1(ppube, idA, idB, deB, RA, 32)
	if err != nil {
		return nil, err
	}
	defer mat.Free()

	if err := l.sendToA(ctx, RB.Uncompressed()); err != nil {
		return nil, err
	}
	return sk, nil
}
