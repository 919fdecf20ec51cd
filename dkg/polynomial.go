// Package dkg implements the Pedersen distributed key generation variant
// described for this credential scheme: each Election Authority samples a
// pair of degree-t polynomials, publishes Feldman-style commitments to
// their coefficients, and distributes private shares; a qualified set of
// at least t+1 EAs whose shares all verify can jointly reconstruct the
// master signing key without any single EA learning it.
package dkg

import (
	"math/big"

	"github.com/KereMath/tiac"
)

// Polynomial is a degree-t polynomial over Zr, stored as t+1 coefficients
// with Coeffs[0] the constant term (the secret contribution F_l(0)).
type Polynomial struct {
	Coeffs []*big.Int
}

// Sample draws a degree-t polynomial with uniform coefficients in Zr.
func Sample(params *tiac.Params, t int) (*Polynomial, error) {
	coeffs := make([]*big.Int, t+1)
	for j := range coeffs {
		c, err := randomScalar(params)
		if err != nil {
			return nil, err
		}
		coeffs[j] = c
	}
	return &Polynomial{Coeffs: coeffs}, nil
}

// Eval evaluates the polynomial at x using Horner's method, mod p.
func (poly *Polynomial) Eval(params *tiac.Params, x int64) *big.Int {
	xb := big.NewInt(x)
	acc := new(big.Int)
	for j := len(poly.Coeffs) - 1; j >= 0; j-- {
		acc.Mul(acc, xb)
		acc.Add(acc, poly.Coeffs[j])
		acc.Mod(acc, params.P)
	}
	return acc
}

// Degree returns t, the polynomial's degree (one less than its coefficient
// count).
func (poly *Polynomial) Degree() int { return len(poly.Coeffs) - 1 }

func randomScalar(params *tiac.Params) (*big.Int, error) {
	e := params.Pairing().NewZr().Rand()
	return e.BigInt(), nil
}
