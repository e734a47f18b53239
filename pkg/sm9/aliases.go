package sm9

import (
	"github.com/sm9kit/sm9-go/pkg/sm9/curve"
	"github.com/sm9kit/sm9-go/pkg/sm9/exchange"
	"github.com/sm9kit/sm9-go/pkg/sm9/kem"
	"github.com/sm9kit/sm9-go/pkg/sm9/pke"
	"github.com/sm9kit/sm9-go/pkg/sm9/sign"
	"github.com/sm9kit/sm9-go/pkg/sm9/sm9id"
)

// Type aliases so callers working only through this package never need to
// import the scheme subpackages directly for their result/argument types.

// Hid is the domain tag distinguishing signing, exchange, and encryption
// private-key families.
type Hid = sm9id.Hid

const (
	HidSign     = sm9id.HidSign
	HidExchange = sm9id.HidExchange
	HidEncrypt  = sm9id.HidEncrypt
)

// Scalar, G1, G2, and GT are the curve collaborators every scheme operates
// on, re-exported so callers assembling key material don't need
// pkg/sm9/curve as a separate import.
type (
	Scalar = curve.Scalar
	G1     = curve.G1
	G2     = curve.G2
	GT     = curve.GT
)

// SigningKey is an identity's private signing key paired with the signing
// master public key it was derived under.
type SigningKey = sign.Key

// Signature is the SM9 signature pair (h, S).
type Signature = sign.Signature

// Status is Verify's tri-valued outcome: valid, invalid, or malformed input.
type Status = sign.Status

const (
	StatusValid   = sign.StatusValid
	StatusInvalid = sign.StatusInvalid
	StatusError   = sign.StatusError
)

// Envelope is the PKE ciphertext (en_type, C1, C3, C2).
type Envelope = pke.Envelope

const EnTypeXOR = pke.EnTypeXOR

// InitiatorState is the key-exchange initiator's retained ephemeral state
// between step 1A and step 2A.
type InitiatorState = exchange.InitiatorState

// ExchangeMaterial holds what a key-exchange party needs to compute or
// verify an optional confirmation tag after the exchange concludes.
type ExchangeMaterial = exchange.Material
