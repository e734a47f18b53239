package sign

import (
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	casn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/sm9kit/sm9-go/pkg/sm9/curve"
	"github.com/sm9kit/sm9-go/pkg/sm9/sm9id"
)

// Signature is the pair (h, S): h a non-zero scalar mod N, S a point on G1.
type Signature struct {
	H *curve.Scalar
	S *curve.G1
}

// Encode DER-encodes the signature as
// SEQUENCE { h OCTET STRING (32), S BIT STRING (65 octets, 0 unused bits) }.
func (sig *Signature) Encode() ([]byte, error) {
	if sig == nil || sig.H == nil || sig.S == nil {
		return nil, fmt.Errorf("sign: cannot encode an incomplete signature: %w", sm9id.ErrInvalidArgument)
	}
	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(seq *cryptobyte.Builder) {
		seq.AddASN1OctetString(sig.H.Bytes())
		seq.AddASN1BitString(sig.S.Uncompressed())
	})
	return b.Bytes()
}

// DecodeSignature strictly parses the DER envelope produced by Encode: any
// length mismatch, trailing bytes, or point that fails to decode is an error.
func DecodeSignature(der []byte) (*Signature, error) {
	input := cryptobyte.String(der)
	var seq cryptobyte.String
	if !input.ReadASN1(&seq, casn1.SEQUENCE) || !input.Empty() {
		return nil, fmt.Errorf("sign: malformed DER envelope: %w", sm9id.ErrInvalidArgument)
	}

	var hBytes cryptobyte.String
	if !seq.ReadASN1(&hBytes, casn1.OCTET_STRING) {
		return nil, fmt.Errorf("sign: malformed h field: %w", sm9id.ErrInvalidArgument)
	}
	if len(hBytes) != 32 {
		return nil, fmt.Errorf("sign: h must be exactly 32 bytes: %w", sm9id.ErrInvalidArgument)
	}

	var sBits cryptobyte.BitString
	if !seq.ReadASN1BitString(&sBits) {
		return nil, fmt.Errorf("sign: malformed S field: %w", sm9id.ErrInvalidArgument)
	}
	if !seq.Empty() {
		return nil, fmt.Errorf("sign: trailing bytes after signature SEQUENCE: %w", sm9id.ErrInvalidArgument)
	}
	if sBits.BitLength != 65*8 {
		return nil, fmt.Errorf("sign: S must be exactly 65 octets: %w", sm9id.ErrInvalidArgument)
	}

	s, err := curve.NewG1FromUncompressed(sBits.Bytes)
	if err != nil {
		return nil, fmt.Errorf("sign: S is not a valid curve point: %w", sm9id.ErrInvalidArgument)
	}

	// Spec §4.D step 1 requires h != 0 and h < N be enforced before any
	// pairing work; NewScalarFromCanonicalBytes rejects h >= N instead of
	// silently wrapping it modulo N, and the zero check below rejects h == 0.
	h, err := curve.NewScalarFromCanonicalBytes(hBytes)
	if err != nil {
		return nil, fmt.Errorf("sign: h must be in [0, N): %w", sm9id.ErrInvalidArgument)
	}
	if h.IsZero() {
		return nil, fmt.Errorf("sign: h must be non-zero: %w", sm9id.ErrInvalidArgument)
	}
	return &Signature{H: h, S: s}, nil
}
