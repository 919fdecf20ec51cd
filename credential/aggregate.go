package credential

import (
	"math/big"

	"github.com/KereMath/tiac"
	"github.com/KereMath/tiac/dkg"
	"github.com/Nik-U/pbc"
	"github.com/pkg/errors"
)

// AggregateSig is the threshold-reconstructed credential: (h, s).
type AggregateSig struct {
	H *pbc.Element // G1
	S *pbc.Element // G1
}

// PartialSig pairs an unblinded per-EA signature with the admin (EA)
// identity that produced it, the index Aggregate needs for Lagrange
// interpolation.
type PartialSig struct {
	AdminId int
	Sig     *UnblindSig
}

// Aggregate combines t+1 partial signatures into one credential per §4.7.
// Every partial signature must carry the same h; Lagrange coefficients are
// computed at x=0 over the shifted index set {adminId+1}, which keeps the
// evaluation points away from zero (the secret point) even when an
// AdminId of 0 is used. t is the DKG threshold: the underlying secret was
// shared via a degree-t polynomial (dkg.Sample(params, t)), so
// reconstructing its value at x=0 needs at least t+1 points, matching the
// same bound dkg.AggregateMVK enforces for the master verification key.
func Aggregate(params *tiac.Params, partials []PartialSig, t int) (*AggregateSig, error) {
	if len(partials) < t+1 {
		return nil, errors.Wrapf(tiac.ErrInsufficientShares, "got %d partial signatures, need >= %d", len(partials), t+1)
	}

	h := partials[0].Sig.H
	ids := make([]*big.Int, len(partials))
	for i, p := range partials {
		ids[i] = big.NewInt(int64(p.AdminId) + 1)
	}
	lambdas := dkg.CoefficientsAtZero(params.P, ids)

	s := params.Pairing().NewG1().Set1()
	for i, p := range partials {
		s.Mul(s, powG1(params, p.Sig.Sm, lambdas[i]))
	}

	return &AggregateSig{H: h, S: s}, nil
}
