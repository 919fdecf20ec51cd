package tiac

import (
	"crypto/sha512"
	"encoding/hex"
	"math/big"
)

// DID is a Decentralized Identifier: a secret scalar x and the public hex
// string derived from it. The scalar stays private to the client; the
// rest of the pipeline takes only the did string, which is safe to publish.
type DID struct {
	X   *big.Int // secret scalar in Zr
	Did string   // lower_hex(SHA-512(userID || decimal_ascii(x)))
}

// CreateDID samples a uniform scalar and derives the DID string from it,
// per §4.2: did = lower_hex(SHA-512(userID || decimal_ascii(x))).
func CreateDID(params *Params, userID string) (*DID, error) {
	x, err := randomZr(params)
	if err != nil {
		return nil, err
	}

	h := sha512.New()
	h.Write([]byte(userID))
	h.Write([]byte(parseDecimalASCII(x)))

	return &DID{
		X:   x,
		Did: hex.EncodeToString(h.Sum(nil)),
	}, nil
}

// Int reinterprets the DID's hex string as a big-endian integer reduced
// mod p, the representation every KoR and pairing check in package
// credential consumes.
func (d *DID) Int(params *Params) (*big.Int, error) {
	return HexToScalar(params, d.Did)
}

// HexToScalar parses a hex string (no "0x" prefix; one is rejected with
// ErrBadHex) as a big-endian integer and reduces it mod p. Used both for DID strings and
// for CLI/WASM boundary inputs that arrive as hex.
func HexToScalar(params *Params, s string) (*big.Int, error) {
	buf, err := hexDecode(s)
	if err != nil {
		return nil, ErrBadHex
	}
	n := new(big.Int).SetBytes(buf)
	n.Mod(n, params.P)
	return n, nil
}

// randomZr samples a uniform scalar in [0, p).
func randomZr(params *Params) (*big.Int, error) {
	e := params.pairing.NewZr().Rand()
	return e.BigInt(), nil
}
