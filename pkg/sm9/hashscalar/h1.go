package hashscalar

import (
	"github.com/sm9kit/sm9-go/pkg/sm9/curve"
	"github.com/sm9kit/sm9-go/pkg/sm9/internal/sm3kit"
)

// H1 derives an identity-to-scalar element: Q = H1(ID||hid, N) * P1. data is
// typically the identity bytes; hid is one of the three domain tags
// (hid_s/hid_e/hid_x).
func H1(data []byte, hid byte) (*curve.Scalar, error) {
	prefixed := make([]byte, 0, 1+len(data)+1)
	prefixed = append(prefixed, PrefixH1)
	prefixed = append(prefixed, data...)
	prefixed = append(prefixed, hid)

	h1 := sm3kit.NewDigest()
	h1.Write(prefixed)
	h1.Write(be32(1))
	Ha1 := h1.Sum(nil)

	h2 := sm3kit.NewDigest()
	h2.Write(prefixed)
	h2.Write(be32(2))
	Ha2 := h2.Sum(nil)

	buf64 := make([]byte, 0, 64)
	buf64 = append(buf64, Ha1...)
	buf64 = append(buf64, Ha2...)

	return fromHash64(buf64)
}
