package dkg

import "math/big"

// CoefficientsAtZero computes the Lagrange basis coefficients for
// interpolating a polynomial at x=0 given the evaluation points xs, using
// the general closed form:
//
//	λ_k = ∏_{j≠k} (−x_j) · (x_k − x_j)^(−1)  mod p
//
// This is deliberately the general formula and not a precomputed table:
// the original implementation this scheme is ported from hard-codes
// coefficients for |Q| of 2 and 3 keyed on specific ID combinations, which
// silently gives the wrong answer for primes p where p mod k is not one of
// the cases the table enumerates. The closed form is correct for any
// prime p and any set of distinct points, so it is the only Lagrange
// implementation in this codebase.
func CoefficientsAtZero(p *big.Int, xs []*big.Int) []*big.Int {
	lambdas := make([]*big.Int, len(xs))
	for k, xk := range xs {
		num := big.NewInt(1)
		den := big.NewInt(1)
		for j, xj := range xs {
			if j == k {
				continue
			}
			negXj := new(big.Int).Neg(xj)
			negXj.Mod(negXj, p)
			num.Mul(num, negXj)
			num.Mod(num, p)

			diff := new(big.Int).Sub(xk, xj)
			diff.Mod(diff, p)
			den.Mul(den, diff)
			den.Mod(den, p)
		}
		denInv := new(big.Int).ModInverse(den, p)
		lambda := new(big.Int).Mul(num, denInv)
		lambda.Mod(lambda, p)
		lambdas[k] = lambda
	}
	return lambdas
}
