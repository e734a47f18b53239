package exchange

import (
	"errors"
	"fmt"

	"github.com/sm9kit/sm9-go/pkg/sm9/curve"
	"github.com/sm9kit/sm9-go/pkg/sm9/hashscalar"
	"github.com/sm9kit/sm9-go/pkg/sm9/internal/sm3kit"
	"github.com/sm9kit/sm9-go/pkg/sm9/sm9id"
)

const maxResponderAttempts = 16

// Sampler supplies scalars for testing reproducibility (Design Note DN-2).
type Sampler func() (*curve.Scalar, error)

func defaultSampler() (*curve.Scalar, error) {
	return curve.RandomScalar(nil)
}

// resampleOn is StepB1's retry predicate, factored out of allZero(sk) so
// internal tests can force the responder's resample branch without needing
// a derived key that actually lands on all-zero. Production always leaves
// this at its default.
var resampleOn = func(sk []byte) bool {
	return allZero(sk)
}

// InitiatorState is what A retains between step 1A and step 2A: the
// ephemeral scalar rA. It must be erased with Free once the exchange
// concludes (success or failure).
type InitiatorState struct {
	rA *curve.Scalar
	RA *curve.G1
}

// Free erases the retained ephemeral scalar.
func (s *InitiatorState) Free() {
	if s == nil {
		return
	}
	s.rA.Free()
	s.rA = nil
}

// qFor derives Q_peer = H1(peerID||hid_x)*P1 + ppube, the shared construction
// both StepA1 and StepB1 use against each other's identity.
func qFor(ppube *curve.G1, peerID []byte) (*curve.G1, error) {
	h1, err := hashscalar.H1(peerID, byte(sm9id.HidExchange))
	if err != nil {
		return nil, err
	}
	defer h1.Free()
	return curve.P1.Mul(h1).Add(ppube), nil
}

// StepA1 is the initiator's first move: sample rA, compute RA = rA*QB, and
// retain rA for step 2A. RA is what A sends to B.
func StepA1(ppube *curve.G1, idB []byte) (*InitiatorState, error) {
	return stepA1WithSampler(ppube, idB, defaultSampler)
}

func stepA1WithSampler(ppube *curve.G1, idB []byte, sample Sampler) (*InitiatorState, error) {
	qB, err := qFor(ppube, idB)
	if err != nil {
		return nil, err
	}
	rA, err := sample()
	if err != nil {
		return nil, err
	}
	return &InitiatorState{rA: rA, RA: qB.Mul(rA)}, nil
}

// StepB1 is the responder's move: verify RA is on the curve, sample rB,
// compute RB = rB*QA, derive sk from (G1,G2,G3), and return RB to send to A,
// the shared secret, and the Material needed to compute or verify the
// optional confirmation tags.
func StepB1(ppube *curve.G1, idA, idB []byte, deB *curve.G2, RA *curve.G1, klen int) (RB *curve.G1, sk []byte, material *Material, err error) {
	return stepB1WithSampler(ppube, idA, idB, deB, RA, klen, defaultSampler)
}

func stepB1WithSampler(ppube *curve.G1, idA, idB []byte, deB *curve.G2, RA *curve.G1, klen int, sample Sampler) (*curve.G1, []byte, *Material, error) {
	if RA == nil {
		return nil, nil, nil, fmt.Errorf("exchange: RA is not a valid curve point: %w", sm9id.ErrInvalidArgument)
	}
	qA, err := qFor(ppube, idA)
	if err != nil {
		return nil, nil, nil, err
	}

	for attempt := 0; attempt < maxResponderAttempts; attempt++ {
		rB, err := sample()
		if err != nil {
			return nil, nil, nil, err
		}
		RB := qA.Mul(rB)

		g1 := curve.Pairing(deB, RA)
		g2 := curve.Pairing(curve.P2, ppube).Exp(rB)
		g3 := g1.Exp(rB)
		rB.Free()

		sk, mat := deriveSharedKey(idA, idB, RA, RB, g1, g2, g3, klen)
		g1.Free()
		g2.Free()
		g3.Free()

		if resampleOn(sk) {
			zeroize(sk)
			mat.Free()
			continue
		}
		return RB, sk, mat, nil
	}
	return nil, nil, nil, errors.New("exchange: exhausted responder resample attempts")
}

// StepA2 is the initiator's second move: verify RB is on the curve, derive
// sk, and conclude. Unlike the responder, A cannot resample rA (RB is
// already fixed to A's original RA), so a zero result here is a hard error
// rather than a retry loop (Design Note DN-2).
func StepA2(ppube *curve.G1, idA, idB []byte, deA *curve.G2, state *InitiatorState, RB *curve.G1, klen int) ([]byte, *Material, error) {
	if state == nil || state.rA == nil {
		return nil, nil, fmt.Errorf("exchange: missing initiator state: %w", sm9id.ErrInvalidArgument)
	}
	if RB == nil {
		return nil, nil, fmt.Errorf("exchange: RB is not a valid curve point: %w", sm9id.ErrInvalidArgument)
	}

	g1 := curve.Pairing(curve.P2, ppube).Exp(state.rA)
	g2 := curve.Pairing(deA, RB)
	g3 := g2.Exp(state.rA)
	defer g1.Free()
	defer g2.Free()
	defer g3.Free()

	sk, mat := deriveSharedKey(idA, idB, state.RA, RB, g1, g2, g3, klen)
	if allZero(sk) {
		zeroize(sk)
		mat.Free()
		return nil, nil, errors.New("exchange: derived shared secret is all-zero")
	}
	return sk, mat, nil
}

// deriveSharedKey concatenates IDA, IDB, XY(RA), XY(RB), and the three GT
// values in that exact order before calling the SM3 KDF. It also retains the
// GT encodings in a Material for the caller to later compute a confirmation
// tag from, instead of recomputing the pairings.
func deriveSharedKey(idA, idB []byte, RA, RB *curve.G1, g1, g2, g3 *curve.GT, klen int) ([]byte, *Material) {
	g1b, g2b, g3b := g1.Bytes(), g2.Bytes(), g3.Bytes()

	input := make([]byte, 0, len(idA)+len(idB)+64+64+len(g1b)+len(g2b)+len(g3b))
	input = append(input, idA...)
	input = append(input, idB...)
	input = append(input, RA.XY()...)
	input = append(input, RB.XY()...)
	input = append(input, g1b...)
	input = append(input, g2b...)
	input = append(input, g3b...)
	defer zeroize(input)

	sk := sm3kit.Kdf(input, klen)
	mat := &Material{
		idA: append([]byte(nil), idA...), idB: append([]byte(nil), idB...),
		raXY: append([]byte(nil), RA.XY()...), rbXY: append([]byte(nil), RB.XY()...),
		g1: g1b, g2: g2b, g3: g3b,
	}
	return sk, mat
}

func allZero(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc == 0
}

func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
