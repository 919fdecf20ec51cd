// Package credential implements the blind-issuance and presentation
// pipeline: client-side Prepare, per-EA BlindSign, client-side Unblind,
// threshold Aggregate, and the re-randomized Prove/Verify presentation
// pair. Every function is pure and operates only on the Params and keys
// passed to it.
package credential

import (
	"math/big"

	"github.com/KereMath/tiac"
	"github.com/Nik-U/pbc"
)

// KoRProof is a non-interactive Schnorr-style Knowledge-of-Representation
// proof: a Fiat-Shamir challenge and three response scalars. The same
// shape serves both the issuance proof π_s (§4.4) and the presentation
// proof π_v (§4.8); only the statement being proved differs.
type KoRProof struct {
	C  *big.Int
	S1 *big.Int
	S2 *big.Int
	S3 *big.Int
}

func sampleZr(params *tiac.Params) *big.Int {
	return params.Pairing().NewZr().Rand().BigInt()
}

// negMod returns (p - x) mod p, the representation of -x as a non-negative
// residue, since pbc.Element.PowBig wants a non-negative big.Int exponent.
func negMod(params *tiac.Params, x *big.Int) *big.Int {
	n := new(big.Int).Neg(x)
	n.Mod(n, params.P)
	return n
}

// respond computes r - c*x mod p, the Schnorr response for secret x given
// randomness r and challenge c.
func respond(params *tiac.Params, r, c, x *big.Int) *big.Int {
	cx := new(big.Int).Mul(c, x)
	s := new(big.Int).Sub(r, cx)
	s.Mod(s, params.P)
	return s
}

// powG1 returns base^exp in G1.
func powG1(params *tiac.Params, base *pbc.Element, exp *big.Int) *pbc.Element {
	return params.Pairing().NewG1().PowBig(base, exp)
}

// powG2 returns base^exp in G2.
func powG2(params *tiac.Params, base *pbc.Element, exp *big.Int) *pbc.Element {
	return params.Pairing().NewG2().PowBig(base, exp)
}
