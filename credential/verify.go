package credential

import (
	"math/big"

	"github.com/KereMath/tiac"
	"github.com/KereMath/tiac/dkg"
	"github.com/pkg/errors"
)

// Verify runs the two checks of §4.9 and accepts the credential iff both
// hold: the bilinear pairing equation e(h'', k) = e(s'', g2), and the
// presentation KoR proof. Returns nil on acceptance, or the specific
// typed error identifying which check failed.
func Verify(params *tiac.Params, proof *ProveOutput, mvk *dkg.MasterVerKey) error {
	pairing := params.Pairing()

	lhs := pairing.NewGT().Pair(proof.H, proof.K)
	rhs := pairing.NewGT().Pair(proof.S, params.G2)
	if !lhs.Equals(rhs) {
		return errors.Wrap(tiac.ErrPairingCheckFailed, "tiac/credential: verify")
	}

	pi := proof.Pi

	// k'' = g2^s1 · α2^(1-c) · k^c · β2^s2
	oneMinusC := new(big.Int).Sub(big.NewInt(1), pi.C)
	oneMinusC.Mod(oneMinusC, params.P)

	kDouble := powG2(params, params.G2, pi.S1)
	kDouble.Mul(kDouble, powG2(params, mvk.Alpha2, oneMinusC))
	kDouble.Mul(kDouble, powG2(params, proof.K, pi.C))
	kDouble.Mul(kDouble, powG2(params, mvk.Beta2, pi.S2))

	// com'' = g1^s3 · h''^s2 · com^c
	comDouble := powG1(params, params.G1, pi.S3)
	comDouble.Mul(comDouble, powG1(params, proof.H, pi.S2))
	comDouble.Mul(comDouble, powG1(params, proof.Com, pi.C))

	cPrime := tiac.HashZr(params,
		tiac.ElementBytes(params.G1),
		tiac.ElementBytes(params.G2),
		tiac.ElementBytes(proof.H),
		tiac.ElementBytes(proof.Com),
		tiac.ElementBytes(comDouble),
		tiac.ElementBytes(proof.K),
		tiac.ElementBytes(kDouble),
	)

	if cPrime.Cmp(pi.C) != 0 {
		return errors.Wrap(tiac.ErrKoRRejected, "tiac/credential: verify")
	}

	return nil
}
