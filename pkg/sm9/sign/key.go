package sign

import "github.com/sm9kit/sm9-go/pkg/sm9/curve"

// Key is an identity's private signing key together with the signing
// master public key it was derived under. Both halves are required for
// signing: ds alone cannot reproduce Ppubs.
//
// Key carries secret material (ds); callers must call Free once done.
type Key struct {
	Ds     *curve.G1
	Ppubs  *curve.G2
}

// Free releases the key's point references. ds is a public-group element
// (not a scalar), so there is no byte buffer to zeroize directly; Free exists
// so callers can defer-chain key cleanup uniformly with scalars and Fp12
// intermediates elsewhere in this package.
func (k *Key) Free() {
	if k == nil {
		return
	}
	k.Ds.Free()
	k.Ds = nil
	k.Ppubs = nil
}
