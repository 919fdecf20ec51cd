package main

import (
	"math/big"

	"github.com/KereMath/tiac"
	"github.com/Nik-U/pbc"
)

func scalarsToHex(xs []*big.Int) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = params.EncodeScalarHex(x)
	}
	return out
}

func hexToScalars(ss []string) ([]*big.Int, error) {
	out := make([]*big.Int, len(ss))
	for i, s := range ss {
		x, err := params.DecodeScalarHex(s)
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}

// elementsToHex encodes a vector of group elements as hex. The encoding is
// the element's own compressed-bytes form, so it is correct regardless of
// which group (G1 or G2) the vector belongs to.
func elementsToHex(es []*pbc.Element) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = tiac.EncodeG1Hex(e)
	}
	return out
}

func hexToG2Elements(ss []string) ([]*pbc.Element, error) {
	out := make([]*pbc.Element, len(ss))
	for i, s := range ss {
		e, err := params.DecodeG2Hex(s)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func hexToG1Elements(ss []string) ([]*pbc.Element, error) {
	out := make([]*pbc.Element, len(ss))
	for i, s := range ss {
		e, err := params.DecodeG1Hex(s)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func tiacEncodeG2(e *pbc.Element) string { return tiac.EncodeG2Hex(e) }
func tiacEncodeG1(e *pbc.Element) string { return tiac.EncodeG1Hex(e) }
