package tiac

import (
	"encoding/hex"
	"math/big"

	"github.com/Nik-U/pbc"
)

// The CLI and WASM boundaries in §6 exchange every value as lowercase hex
// with no prefix. These helpers are the only place that boundary encoding
// is allowed to leak into application code; everywhere else group
// elements and scalars stay as pbc.Element / big.Int.

// EncodeG1Hex / EncodeG2Hex return an element's compressed-bytes encoding
// as lowercase hex.
func EncodeG1Hex(e *pbc.Element) string { return encodeHexElement(e) }
func EncodeG2Hex(e *pbc.Element) string { return encodeHexElement(e) }

// DecodeG1Hex / DecodeG2Hex parse a hex string into a freshly constructed
// element of the corresponding group.
func (params *Params) DecodeG1Hex(s string) (*pbc.Element, error) {
	e := params.pairing.NewG1()
	if err := decodeHexElement(e, s); err != nil {
		return nil, err
	}
	return e, nil
}

func (params *Params) DecodeG2Hex(s string) (*pbc.Element, error) {
	e := params.pairing.NewG2()
	if err := decodeHexElement(e, s); err != nil {
		return nil, err
	}
	return e, nil
}

// EncodeScalarHex / DecodeScalarHex round-trip a Zr scalar as fixed-width
// hex, for CLI args and JSON output.
func (params *Params) EncodeScalarHex(x *big.Int) string {
	return hex.EncodeToString(params.EncodeScalar(x))
}

func (params *Params) DecodeScalarHex(s string) (*big.Int, error) {
	buf, err := hexDecode(s)
	if err != nil {
		return nil, ErrBadHex
	}
	return params.DecodeScalar(buf)
}
