package tiac

import (
	"crypto/sha512"
	"math/big"

	"github.com/Nik-U/pbc"
)

// HashG1 deterministically maps arbitrary bytes into G1 via pbc's
// hash-and-map element construction. The input bytes are passed to
// SetFromHash as they are; no SHA-512 is applied first.
func HashG1(params *Params, data []byte) *pbc.Element {
	return params.pairing.NewG1().SetFromHash(data)
}

// HashZr concatenates the raw canonical encodings of its inputs, SHA-512s
// the result, and reduces it mod p as a big-endian integer. Fixed-width
// raw-byte concatenation (rather than hex-string concatenation) is the
// encoding this implementation commits to for H_Zr, per the design note in
// §9 that either convention is acceptable as long as issuer and verifier
// agree; this project agrees on raw bytes everywhere.
func HashZr(params *Params, parts ...[]byte) *big.Int {
	h := sha512.New()
	for _, p := range parts {
		h.Write(p)
	}
	sum := h.Sum(nil)

	n := new(big.Int).SetBytes(sum)
	return n.Mod(n, params.P)
}

// ElementBytes returns the canonical fixed-length encoding of a group
// element, the representation HashZr's callers must use so that every
// party hashes the same bytes for the same element.
func ElementBytes(e *pbc.Element) []byte {
	return e.CompressedBytes()
}
