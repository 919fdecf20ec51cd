package tiac

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/Nik-U/pbc"
	"github.com/pkg/errors"
)

// subgroupBits and baseFieldBits fix the Type-A pairing size: a 256-bit
// prime-order subgroup embedded in a 512-bit base field.
const (
	subgroupBits  = 256
	baseFieldBits = 512
)

// Params is the pairing context shared read-only by every component: the
// pairing itself, the prime subgroup order p, and the three domain
// generators g1, h1 ∈ G1 and g2 ∈ G2. It is created once per process (or
// loaded from a params file shared by all Election Authorities) and never
// mutated afterward.
type Params struct {
	pairing *pbc.Pairing
	pbcParp *pbc.Params

	P *big.Int // prime subgroup order

	G1 *pbc.Element
	H1 *pbc.Element
	G2 *pbc.Element
}

// Pairing exposes the underlying pbc.Pairing for packages that need to
// construct fresh elements (dkg, credential).
func (params *Params) Pairing() *pbc.Pairing { return params.pairing }

// New generates fresh Type-A pairing parameters and samples the three
// domain generators. This is the trusted-setup step, normally run once by
// whichever party stands up the committee.
func New() (*Params, error) {
	pbcParams := pbc.GenerateA(subgroupBits, baseFieldBits)
	pairing := pbcParams.NewPairing()

	g1 := pairing.NewG1().Rand()
	h1 := pairing.NewG1().Rand()
	g2 := pairing.NewG2().Rand()

	// pbc does not expose the subgroup order directly on Pairing; it is
	// recovered from the generated parameter string, which embeds it as
	// the "r" field of a Type-A parameter set.
	p, err := subgroupOrderFromParams(pbcParams)
	if err != nil {
		return nil, errors.Wrap(err, "tiac: recovering subgroup order")
	}

	return &Params{
		pairing: pairing,
		pbcParp: pbcParams,
		P:       p,
		G1:      g1,
		H1:      h1,
		G2:      g2,
	}, nil
}

// paramsFile mirrors the crypto_params.json envelope: pairing_params holds
// the multi-line Type-A parameter text, the rest are lowercase hex, no
// prefix, fixed length per group.
type paramsFile struct {
	PairingParams string `json:"pairing_params"`
	PrimeOrder    string `json:"prime_order"`
	G1            string `json:"g1"`
	G2            string `json:"g2"`
	H1            string `json:"h1"`
}

// Load reads a crypto_params.json envelope from r and reconstructs the
// pairing context from it, rather than generating new parameters.
func Load(r io.Reader) (*Params, error) {
	var pf paramsFile
	if err := json.NewDecoder(r).Decode(&pf); err != nil {
		return nil, errors.Wrap(err, "tiac: decoding params file")
	}

	pbcParams, err := pbc.NewParamsFromString(pf.PairingParams)
	if err != nil {
		return nil, errors.Wrap(err, "tiac: parsing pairing parameters")
	}
	pairing := pbcParams.NewPairing()

	p, ok := new(big.Int).SetString(pf.PrimeOrder, 16)
	if !ok {
		return nil, errors.Wrap(ErrBadHex, "tiac: prime_order")
	}

	g1 := pairing.NewG1()
	if err := decodeHexElement(g1, pf.G1); err != nil {
		return nil, errors.Wrap(err, "tiac: g1")
	}
	g2 := pairing.NewG2()
	if err := decodeHexElement(g2, pf.G2); err != nil {
		return nil, errors.Wrap(err, "tiac: g2")
	}
	h1 := pairing.NewG1()
	if err := decodeHexElement(h1, pf.H1); err != nil {
		return nil, errors.Wrap(err, "tiac: h1")
	}

	return &Params{
		pairing: pairing,
		pbcParp: pbcParams,
		P:       p,
		G1:      g1,
		H1:      h1,
		G2:      g2,
	}, nil
}

// LoadFromFile opens path and delegates to Load.
func LoadFromFile(path string) (*Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(bufio.NewReader(f))
}

// LoadOrGenerate reads path if it exists and parses, falling back to a
// freshly generated Params when the file is absent or malformed — the same
// fallback the original DKG CLI performs around its params file.
func LoadOrGenerate(path string) (*Params, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New()
		}
		return nil, err
	}
	defer f.Close()

	params, err := Load(bufio.NewReader(f))
	if err != nil {
		return New()
	}
	return params, nil
}

// WriteTo serializes the Params as a crypto_params.json envelope.
func (params *Params) WriteTo(w io.Writer) (int64, error) {
	pf := paramsFile{
		PairingParams: params.pbcParp.String(),
		PrimeOrder:    fmt.Sprintf("%x", params.P),
		G1:            encodeHexElement(params.G1),
		G2:            encodeHexElement(params.G2),
		H1:            encodeHexElement(params.H1),
	}
	buf, err := json.MarshalIndent(&pf, "", "  ")
	if err != nil {
		return 0, err
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// scalarByteLen is the fixed width, in bytes, of a big-endian-encoded Zr
// scalar: ceil(log2(p) / 8).
func (params *Params) scalarByteLen() int {
	return (params.P.BitLen() + 7) / 8
}

// EncodeScalar serializes a Zr element as fixed-width big-endian bytes.
func (params *Params) EncodeScalar(x *big.Int) []byte {
	buf := make([]byte, params.scalarByteLen())
	b := x.Bytes()
	copy(buf[len(buf)-len(b):], b)
	return buf
}

// DecodeScalar parses fixed-width big-endian bytes into a big.Int reduced
// mod p. Returns ErrBadEncoding if buf has the wrong length.
func (params *Params) DecodeScalar(buf []byte) (*big.Int, error) {
	if len(buf) != params.scalarByteLen() {
		return nil, ErrBadEncoding
	}
	x := new(big.Int).SetBytes(buf)
	x.Mod(x, params.P)
	return x, nil
}

func encodeHexElement(e *pbc.Element) string {
	return fmt.Sprintf("%x", e.CompressedBytes())
}

func decodeHexElement(e *pbc.Element, s string) error {
	buf, err := hexDecode(s)
	if err != nil {
		return errors.Wrap(ErrBadHex, err.Error())
	}
	if len(buf) != e.CompressedBytesLen() {
		return errors.Wrapf(ErrBadEncoding, "got %d bytes, want %d", len(buf), e.CompressedBytesLen())
	}
	e.SetCompressedBytes(buf)
	return nil
}

// subgroupOrderFromParams recovers the prime subgroup order from a
// Type-A parameter set's canonical string form, which always contains a
// line "r <decimal>" giving the subgroup order chosen at generation time.
func subgroupOrderFromParams(p *pbc.Params) (*big.Int, error) {
	return parseTypeAOrder(p.String())
}
