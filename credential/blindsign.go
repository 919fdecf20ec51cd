package credential

import (
	"math/big"

	"github.com/KereMath/tiac"
	"github.com/Nik-U/pbc"
	"github.com/pkg/errors"
)

// BlindSig is one Election Authority's partial blind signature over a
// client's commitment: h carried unchanged from Prepare, and cm the
// EA's signed value. AdminId and VoterId are routing tags only; they
// carry no cryptographic weight.
type BlindSig struct {
	H       *pbc.Element // G1
	Cm      *pbc.Element // G1
	AdminId string
	VoterId string
}

// CheckKoR recomputes the issuance KoR's challenge from the proof's
// responses and the public commitments, and accepts iff it matches the
// proof's own challenge. This is the verification half of the Σ-protocol
// run by Prepare.
func CheckKoR(params *tiac.Params, com, comI, h *pbc.Element, pi *KoRProof) error {
	// com_i'' = g1^s1 · h1^s2 · com_i^c
	comIDoublePrime := params.Pairing().NewG1().PowBig(params.G1, pi.S1)
	comIDoublePrime.Mul(comIDoublePrime, powG1(params, params.H1, pi.S2))
	comIDoublePrime.Mul(comIDoublePrime, powG1(params, comI, pi.C))

	// com'' = g1^s3 · h^s2 · com^c
	comDoublePrime := params.Pairing().NewG1().PowBig(params.G1, pi.S3)
	comDoublePrime.Mul(comDoublePrime, powG1(params, h, pi.S2))
	comDoublePrime.Mul(comDoublePrime, powG1(params, com, pi.C))

	cPrime := tiac.HashZr(params,
		tiac.ElementBytes(params.G1),
		tiac.ElementBytes(h),
		tiac.ElementBytes(params.H1),
		tiac.ElementBytes(com),
		tiac.ElementBytes(comDoublePrime),
		tiac.ElementBytes(comI),
		tiac.ElementBytes(comIDoublePrime),
	)

	if cPrime.Cmp(pi.C) != 0 {
		return tiac.ErrKoRRejected
	}
	return nil
}

// BlindSign is the per-EA issuance step of §4.5: it verifies the client's
// issuance KoR proof and the h = H_G1(com_i) binding, then signs the
// blinded commitment under the EA's share of the master signing key.
func BlindSign(params *tiac.Params, prep *PrepareOutput, sgk1, sgk2 *big.Int, adminId, voterId string) (*BlindSig, error) {
	if err := CheckKoR(params, prep.Com, prep.ComI, prep.H, prep.Pi); err != nil {
		return nil, errors.Wrap(err, "tiac/credential: blind sign")
	}

	wantH := tiac.HashG1(params, tiac.ElementBytes(prep.ComI))
	if !wantH.Equals(prep.H) {
		return nil, errors.Wrap(tiac.ErrHashMismatch, "tiac/credential: blind sign")
	}

	// cm = h^x_m · com^y_m
	cm := powG1(params, prep.H, sgk1)
	cm.Mul(cm, powG1(params, prep.Com, sgk2))

	return &BlindSig{H: prep.H, Cm: cm, AdminId: adminId, VoterId: voterId}, nil
}
