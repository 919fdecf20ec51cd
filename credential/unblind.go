package credential

import (
	"fmt"

	"github.com/KereMath/tiac"
	"github.com/KereMath/tiac/dkg"
	"github.com/Nik-U/pbc"
	"github.com/pkg/errors"
)

// UnblindSig is a recovered per-EA partial signature on the credential,
// stripped of the blinding mask: (h, s_m).
type UnblindSig struct {
	H  *pbc.Element // G1
	Sm *pbc.Element // G1
}

// DebugString renders the unblinded signature as hex, matching the debug
// introspection the original implementation attached to its unblind
// output for troubleshooting; not used by any correctness check.
func (u *UnblindSig) DebugString() string {
	return fmt.Sprintf("h=%x sm=%x", tiac.ElementBytes(u.H), tiac.ElementBytes(u.Sm))
}

// Unblind is the client-side step of §4.6: it checks the h binding, strips
// the y_m·o mask the EA's signature carries, and pairing-checks the
// result against the EA's verification key before accepting it.
func Unblind(params *tiac.Params, prep *PrepareOutput, bsig *BlindSig, eaKey *dkg.EAKey, didStr string) (*UnblindSig, error) {
	wantH := tiac.HashG1(params, tiac.ElementBytes(prep.ComI))
	if !wantH.Equals(bsig.H) {
		return nil, errors.Wrap(tiac.ErrHashMismatch, "tiac/credential: unblind")
	}

	did, err := tiac.HexToScalar(params, didStr)
	if err != nil {
		return nil, err
	}

	// s_m = cm · vk3^(-o)
	sm := params.Pairing().NewG1().Set(bsig.Cm)
	sm.Mul(sm, powG1(params, eaKey.Vk3, negMod(params, prep.O)))

	pairing := params.Pairing()
	lhs := pairing.NewGT()
	rhs := pairing.NewGT()

	vk2did := powG2(params, eaKey.Vk2, did)
	inner := params.Pairing().NewG2().Set(eaKey.Vk1)
	inner.Mul(inner, vk2did)

	lhs.Pair(bsig.H, inner)
	rhs.Pair(sm, params.G2)

	if !lhs.Equals(rhs) {
		return nil, errors.Wrap(tiac.ErrUnblindCheckFailed, "tiac/credential: unblind")
	}

	return &UnblindSig{H: bsig.H, Sm: sm}, nil
}
