package pke

import (
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	casn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/sm9kit/sm9-go/pkg/sm9/curve"
	"github.com/sm9kit/sm9-go/pkg/sm9/sm9id"
)

// EnType selects the ciphertext's stream construction. Only EnTypeXOR is
// implemented by this spec; the remaining values are reserved so the
// envelope schema does not need to change if a future stream-cipher mode is
// added (Design Note DN-5).
type EnType int

const (
	EnTypeXOR EnType = 0
	enTypeECB EnType = 1 // reserved, unimplemented
	enTypeCBC EnType = 2 // reserved, unimplemented
	enTypeOFB EnType = 4 // reserved, unimplemented
	enTypeCFB EnType = 8 // reserved, unimplemented
)

// Envelope is the (en_type, C1, C3, C2) ciphertext.
type Envelope struct {
	EnType EnType
	C1     *curve.G1
	C3     [32]byte
	C2     []byte
}

// Encode DER-encodes the envelope as
// SEQUENCE { en_type INTEGER, C1 BIT STRING(65 octets), C3 OCTET STRING(32), C2 OCTET STRING }.
func (e *Envelope) Encode() ([]byte, error) {
	if e == nil || e.C1 == nil {
		return nil, fmt.Errorf("pke: cannot encode an incomplete envelope: %w", sm9id.ErrInvalidArgument)
	}
	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(seq *cryptobyte.Builder) {
		seq.AddASN1BigInt(big.NewInt(int64(e.EnType)))
		seq.AddASN1BitString(e.C1.Uncompressed())
		seq.AddASN1OctetString(e.C3[:])
		seq.AddASN1OctetString(e.C2)
	})
	return b.Bytes()
}

// DecodeEnvelope strictly parses the DER envelope: only en_type = 0 is
// accepted, and any length mismatch or trailing byte is an error.
func DecodeEnvelope(der []byte) (*Envelope, error) {
	input := cryptobyte.String(der)
	var seq cryptobyte.String
	if !input.ReadASN1(&seq, casn1.SEQUENCE) || !input.Empty() {
		return nil, fmt.Errorf("pke: malformed DER envelope: %w", sm9id.ErrInvalidArgument)
	}

	var enType int64
	if !seq.ReadASN1Integer(&enType) {
		return nil, fmt.Errorf("pke: malformed en_type field: %w", sm9id.ErrInvalidArgument)
	}
	if enType != int64(EnTypeXOR) {
		return nil, fmt.Errorf("pke: unsupported en_type: %w", sm9id.ErrInvalidArgument)
	}

	var c1Bits cryptobyte.BitString
	if !seq.ReadASN1BitString(&c1Bits) {
		return nil, fmt.Errorf("pke: malformed C1 field: %w", sm9id.ErrInvalidArgument)
	}
	if c1Bits.BitLength != 65*8 {
		return nil, fmt.Errorf("pke: C1 must be exactly 65 octets: %w", sm9id.ErrInvalidArgument)
	}

	var c3 cryptobyte.String
	if !seq.ReadASN1(&c3, casn1.OCTET_STRING) {
		return nil, fmt.Errorf("pke: malformed C3 field: %w", sm9id.ErrInvalidArgument)
	}
	if len(c3) != 32 {
		return nil, fmt.Errorf("pke: C3 must be exactly 32 bytes: %w", sm9id.ErrInvalidArgument)
	}

	var c2 cryptobyte.String
	if !seq.ReadASN1(&c2, casn1.OCTET_STRING) {
		return nil, fmt.Errorf("pke: malformed C2 field: %w", sm9id.ErrInvalidArgument)
	}
	if !seq.Empty() {
		return nil, fmt.Errorf("pke: trailing bytes after ciphertext SEQUENCE: %w", sm9id.ErrInvalidArgument)
	}

	c1, err := curve.NewG1FromUncompressed(c1Bits.Bytes)
	if err != nil {
		return nil, fmt.Errorf("pke: C1 is not a valid curve point: %w", sm9id.ErrInvalidArgument)
	}

	env := &Envelope{EnType: EnTypeXOR, C1: c1, C2: append([]byte(nil), c2...)}
	copy(env.C3[:], c3)
	return env, nil
}
