package credential

import (
	"math/big"

	"github.com/KereMath/tiac"
	"github.com/Nik-U/pbc"
)

// PrepareOutput is the client's blinded commitment bundle produced before
// issuance: the auxiliary commitment com_i, its derived hash-to-curve
// point h, the blinded commitment com that the EAs actually sign over, the
// issuance KoR proof π_s, and the client's private blinding scalar o
// (needed again at Unblind and Prove time). ComStr is the canonical
// encoding of Com, the representation every hash and wire transfer uses.
type PrepareOutput struct {
	ComI   *pbc.Element // G1
	H      *pbc.Element // G1
	Com    *pbc.Element // G1
	Pi     *KoRProof
	O      *big.Int // private blinding scalar; caller should zeroize when done
	ComStr []byte
}

// Prepare runs the client-side blind-sign preparation of §4.4: it samples
// fresh blinding scalars, derives h deterministically from com_i, builds
// com, and proves knowledge of the opening of both commitments without
// revealing o_i, did, or o.
func Prepare(params *tiac.Params, didStr string) (*PrepareOutput, error) {
	did, err := tiac.HexToScalar(params, didStr)
	if err != nil {
		return nil, err
	}

	oi := sampleZr(params)
	o := sampleZr(params)

	// com_i = g1^oi · h1^did
	comI := params.Pairing().NewG1().PowBig(params.G1, oi)
	comI.Mul(comI, powG1(params, params.H1, did))

	h := tiac.HashG1(params, tiac.ElementBytes(comI))

	// com = g1^o · h^did
	com := params.Pairing().NewG1().PowBig(params.G1, o)
	com.Mul(com, powG1(params, h, did))

	r1 := sampleZr(params)
	r2 := sampleZr(params)
	r3 := sampleZr(params)

	// com_i' = g1^r1 · h1^r2
	comIPrime := params.Pairing().NewG1().PowBig(params.G1, r1)
	comIPrime.Mul(comIPrime, powG1(params, params.H1, r2))

	// com' = g1^r3 · h^r2
	comPrime := params.Pairing().NewG1().PowBig(params.G1, r3)
	comPrime.Mul(comPrime, powG1(params, h, r2))

	c := tiac.HashZr(params,
		tiac.ElementBytes(params.G1),
		tiac.ElementBytes(h),
		tiac.ElementBytes(params.H1),
		tiac.ElementBytes(com),
		tiac.ElementBytes(comPrime),
		tiac.ElementBytes(comI),
		tiac.ElementBytes(comIPrime),
	)

	pi := &KoRProof{
		C:  c,
		S1: respond(params, r1, c, oi),
		S2: respond(params, r2, c, did),
		S3: respond(params, r3, c, o),
	}

	return &PrepareOutput{
		ComI:   comI,
		H:      h,
		Com:    com,
		Pi:     pi,
		O:      o,
		ComStr: tiac.ElementBytes(com),
	}, nil
}
