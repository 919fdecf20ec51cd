package dkg

import (
	"math/big"

	"github.com/KereMath/tiac"
	"github.com/Nik-U/pbc"
)

// Commitments are the Feldman-style public commitments an EA publishes for
// its two secret polynomials F_l (the signing-key-1 contribution) and G_l
// (the signing-key-2 contribution): V_x[j] = g2^F_l[j], V_y[j] = g2^G_l[j],
// V_y'[j] = g1^G_l[j], for j in [0, t].
type Commitments struct {
	Vx      []*pbc.Element // G2
	Vy      []*pbc.Element // G2
	VyPrime []*pbc.Element // G1
}

// Commit computes the public commitments to F and G. Both polynomials
// must have the same degree.
func Commit(params *tiac.Params, F, G *Polynomial) (*Commitments, error) {
	if len(F.Coeffs) != len(G.Coeffs) {
		return nil, tiac.ErrInvalidShare
	}
	n := len(F.Coeffs)
	c := &Commitments{
		Vx:      make([]*pbc.Element, n),
		Vy:      make([]*pbc.Element, n),
		VyPrime: make([]*pbc.Element, n),
	}
	pairing := params.Pairing()
	for j := 0; j < n; j++ {
		c.Vx[j] = pairing.NewG2().PowBig(params.G2, F.Coeffs[j])
		c.Vy[j] = pairing.NewG2().PowBig(params.G2, G.Coeffs[j])
		c.VyPrime[j] = pairing.NewG1().PowBig(params.G1, G.Coeffs[j])
	}
	return c, nil
}

// VerifyShare checks the share (Fi, Gi) sent by the EA that published
// commitments against index i, per §4.3:
//
//	g2^Fi  =? ∏_j Vx[j]^(i^j)
//	g2^Gi  =? ∏_j Vy[j]^(i^j)
//	g1^Gi  =? ∏_j VyPrime[j]^(i^j)
//
// All three must hold for the share to be accepted.
func VerifyShare(params *tiac.Params, c *Commitments, i int64, Fi, Gi *big.Int) bool {
	pairing := params.Pairing()

	lhsX := pairing.NewG2().PowBig(params.G2, Fi)
	rhsX := evalCommitmentProduct(params, c.Vx, i, pairing.NewG2)
	if !lhsX.Equals(rhsX) {
		return false
	}

	lhsY := pairing.NewG2().PowBig(params.G2, Gi)
	rhsY := evalCommitmentProduct(params, c.Vy, i, pairing.NewG2)
	if !lhsY.Equals(rhsY) {
		return false
	}

	lhsYPrime := pairing.NewG1().PowBig(params.G1, Gi)
	rhsYPrime := evalCommitmentProduct(params, c.VyPrime, i, pairing.NewG1)
	return lhsYPrime.Equals(rhsYPrime)
}

// evalCommitmentProduct computes ∏_j commitments[j]^(i^j), the Feldman
// evaluation of a commitment vector at point i. newElem must construct a
// fresh identity element in the same group as commitments.
func evalCommitmentProduct(params *tiac.Params, commitments []*pbc.Element, i int64, newElem func() *pbc.Element) *pbc.Element {
	result := newElem().Set1()
	power := big.NewInt(1)
	ib := big.NewInt(i)
	term := newElem()
	for j, cj := range commitments {
		if j == 0 {
			power.SetInt64(1)
		} else {
			power.Mul(power, ib)
			power.Mod(power, params.P)
		}
		term.PowBig(cj, power)
		result.Mul(result, term)
	}
	return result
}
