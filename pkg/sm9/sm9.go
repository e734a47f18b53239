package sm9

import (
	"github.com/sm9kit/sm9-go/pkg/sm9/curve"
	"github.com/sm9kit/sm9-go/pkg/sm9/exchange"
	"github.com/sm9kit/sm9-go/pkg/sm9/kem"
	"github.com/sm9kit/sm9-go/pkg/sm9/pke"
	"github.com/sm9kit/sm9-go/pkg/sm9/sign"
)

// Sign produces an SM9 signature over message under key. See sign.Sign.
func Sign(key *SigningKey, message []byte) (*Signature, error) {
	return sign.Sign(key, message)
}

// Verify checks sig against message under the signing master public key
// ppubs and the claimed signer identity id. See sign.Verify.
func Verify(ppubs *G2, id []byte, message []byte, sig *Signature) (Status, error) {
	return sign.Verify(ppubs, id, message, sig)
}

// Encapsulate derives a klen-byte symmetric key bound to id under the
// encryption master public key ppube. See kem.Encapsulate.
func Encapsulate(ppube *G1, id []byte, klen int) (key []byte, c *G1, err error) {
	return kem.Encapsulate(ppube, id, klen)
}

// Decapsulate recovers the klen-byte key bound to id from encapsulation
// point c, using the recipient's private decryption key de. See
// kem.Decapsulate.
func Decapsulate(de *G2, c *G1, id []byte, klen int) ([]byte, error) {
	return kem.Decapsulate(de, c, id, klen)
}

// Encrypt produces an SM9 public-key-encryption envelope for plaintext
// addressed to id under the encryption master public key ppube. See
// pke.Encrypt.
func Encrypt(ppube *G1, id []byte, plaintext []byte) (*Envelope, error) {
	return pke.Encrypt(ppube, id, plaintext)
}

// Decrypt recovers the plaintext from env using the recipient's private
// decryption key de. See pke.Decrypt.
func Decrypt(de *G2, id []byte, env *Envelope) ([]byte, error) {
	return pke.Decrypt(de, id, env)
}

// StepA1 is the key-exchange initiator's first move. See exchange.StepA1.
func StepA1(ppube *G1, idB []byte) (*InitiatorState, error) {
	return exchange.StepA1(ppube, idB)
}

// StepB1 is the key-exchange responder's move. See exchange.StepB1.
func StepB1(ppube *G1, idA, idB []byte, deB *G2, RA *G1, klen int) (RB *G1, sk []byte, material *ExchangeMaterial, err error) {
	return exchange.StepB1(ppube, idA, idB, deB, RA, klen)
}

// StepA2 is the key-exchange initiator's second and final move. See
// exchange.StepA2.
func StepA2(ppube *G1, idA, idB []byte, deA *G2, state *InitiatorState, RB *G1, klen int) (sk []byte, material *ExchangeMaterial, err error) {
	return exchange.StepA2(ppube, idA, idB, deA, state, RB, klen)
}

// DecodeSignature parses a DER-encoded signature envelope. See
// sign.DecodeSignature.
func DecodeSignature(der []byte) (*Signature, error) {
	return sign.DecodeSignature(der)
}

// DecodeEnvelope parses a DER-encoded PKE ciphertext envelope. See
// pke.DecodeEnvelope.
func DecodeEnvelope(der []byte) (*Envelope, error) {
	return pke.DecodeEnvelope(der)
}

// NewScalarFromBytes derives a scalar mod N from arbitrary-length key
// material, for wiring master secrets into the curve collaborators. See
// curve.NewScalarFromBytes.
func NewScalarFromBytes(b []byte) *Scalar {
	return curve.NewScalarFromBytes(b)
}

// G1Base returns the fixed generator of G1. Deployments deriving master and
// per-identity key pairs outside this module (key generation is out of
// scope) need it to compute Ppube = ke*P1, the exchange master public key
// kx*P1, and signing's ds = t2*P1.
func G1Base() *G1 { return curve.P1 }

// G2Base returns the fixed generator of G2, the counterpart to G1Base for
// Ppubs = ks*P2 and the encryption and exchange private keys de = t2*P2.
func G2Base() *G2 { return curve.P2 }
