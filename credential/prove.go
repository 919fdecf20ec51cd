package credential

import (
	"fmt"
	"math/big"

	"github.com/KereMath/tiac"
	"github.com/KereMath/tiac/dkg"
	"github.com/Nik-U/pbc"
)

// ProveOutput is a single, unlinkable presentation of an aggregated
// credential: the re-randomized signature σ' = (h'', s''), the
// DID-binding element k, the presentation KoR proof π_v, and Com, a
// commitment to (o, did) rebuilt against h'' so it changes on every call
// to Prove even though o and did stay fixed across presentations of the
// same credential. R is the client's private scalar r from
// k = α2 · β2^did · g2^r; Verify and DebugString do not read it.
type ProveOutput struct {
	H   *pbc.Element // G1, h''
	S   *pbc.Element // G1, s''
	K   *pbc.Element // G2
	Pi  *KoRProof
	Com *pbc.Element // G1, g1^o · h''^did, rebuilt by Prove
	R   *big.Int     // private; caller should zeroize when done
}

// DebugString renders the presentation's public elements as hex, matching
// the debug_info the original implementation attached to ProveCredential
// output.
func (p *ProveOutput) DebugString() string {
	return fmt.Sprintf("h''=%x s''=%x k=%x", tiac.ElementBytes(p.H), tiac.ElementBytes(p.S), tiac.ElementBytes(p.K))
}

// Prove re-randomizes an aggregated credential and produces the
// presentation KoR proof of §4.8, binding the DID into k without
// revealing it or the blinding scalar o. Per §4.8's statement "com =
// g1^o · h''^did", com is rebuilt here against the freshly re-randomized
// h'' rather than reused from Prepare's h-based commitment — reusing the
// Prepare-time com would anchor every presentation's challenge to the
// same fixed base, letting a verifier link presentations of the same
// credential by that repeated value.
func Prove(params *tiac.Params, agg *AggregateSig, mvk *dkg.MasterVerKey, didStr string, o *big.Int) (*ProveOutput, error) {
	did, err := tiac.HexToScalar(params, didStr)
	if err != nil {
		return nil, err
	}

	r := sampleZr(params)
	rPrime := sampleZr(params)

	// h'' = h^r'
	hDouble := powG1(params, agg.H, rPrime)
	// s'' = s^r' · h''^r
	sDouble := powG1(params, agg.S, rPrime)
	sDouble.Mul(sDouble, powG1(params, hDouble, r))

	// k = α2 · β2^did · g2^r
	k := params.Pairing().NewG2().Set(mvk.Alpha2)
	k.Mul(k, powG2(params, mvk.Beta2, did))
	k.Mul(k, powG2(params, params.G2, r))

	// com = g1^o · h''^did
	com := params.Pairing().NewG1().PowBig(params.G1, o)
	com.Mul(com, powG1(params, hDouble, did))

	rho1 := sampleZr(params)
	rho2 := sampleZr(params)
	rho3 := sampleZr(params)

	// k' = g2^ρ1 · α2 · β2^ρ2
	kPrime := powG2(params, params.G2, rho1)
	kPrime.Mul(kPrime, mvk.Alpha2)
	kPrime.Mul(kPrime, powG2(params, mvk.Beta2, rho2))

	// com' = g1^ρ3 · h''^ρ2
	comPrime := powG1(params, params.G1, rho3)
	comPrime.Mul(comPrime, powG1(params, hDouble, rho2))

	c := tiac.HashZr(params,
		tiac.ElementBytes(params.G1),
		tiac.ElementBytes(params.G2),
		tiac.ElementBytes(hDouble),
		tiac.ElementBytes(com),
		tiac.ElementBytes(comPrime),
		tiac.ElementBytes(k),
		tiac.ElementBytes(kPrime),
	)

	pi := &KoRProof{
		C:  c,
		S1: respond(params, rho1, c, r),
		S2: respond(params, rho2, c, did),
		S3: respond(params, rho3, c, o),
	}

	return &ProveOutput{H: hDouble, S: sDouble, K: k, Pi: pi, Com: com, R: r}, nil
}
