package dkg_test

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/KereMath/tiac"
	"github.com/KereMath/tiac/dkg"
	"github.com/Nik-U/pbc"
	"github.com/stretchr/testify/require"
)

func TestVerifyShareSoundness(t *testing.T) {
	params, err := tiac.New()
	require.NoError(t, err)

	F, err := dkg.Sample(params, 2)
	require.NoError(t, err)
	G, err := dkg.Sample(params, 2)
	require.NoError(t, err)
	c, err := dkg.Commit(params, F, G)
	require.NoError(t, err)

	for i := int64(1); i <= 5; i++ {
		Fi := F.Eval(params, i)
		Gi := G.Eval(params, i)
		require.True(t, dkg.VerifyShare(params, c, i, Fi, Gi), "honest share at index %d must verify", i)
	}
}

func TestVerifyShareCompleteness(t *testing.T) {
	params, err := tiac.New()
	require.NoError(t, err)

	F, err := dkg.Sample(params, 2)
	require.NoError(t, err)
	G, err := dkg.Sample(params, 2)
	require.NoError(t, err)
	c, err := dkg.Commit(params, F, G)
	require.NoError(t, err)

	Fi := F.Eval(params, 3)
	Gi := G.Eval(params, 3)
	require.True(t, dkg.VerifyShare(params, c, 3, Fi, Gi))

	tampered := new(big.Int).Add(Fi, big.NewInt(1))
	tampered.Mod(tampered, params.P)
	require.False(t, dkg.VerifyShare(params, c, 3, tampered, Gi), "tampered F share must fail verification")

	tamperedG := new(big.Int).Add(Gi, big.NewInt(1))
	tamperedG.Mod(tamperedG, params.P)
	require.False(t, dkg.VerifyShare(params, c, 3, Fi, tamperedG), "tampered G share must fail verification")

	require.False(t, dkg.VerifyShare(params, c, 4, Fi, Gi), "share for the wrong index must fail verification")
}

// TestVerifyShareRejectsTamperedCommitment covers the remaining half of
// §8 property 2: flipping the bits of a published commitment's first byte
// (not just the evaluated share) must also cause verifyShare to reject.
func TestVerifyShareRejectsTamperedCommitment(t *testing.T) {
	params, err := tiac.New()
	require.NoError(t, err)

	F, err := dkg.Sample(params, 2)
	require.NoError(t, err)
	G, err := dkg.Sample(params, 2)
	require.NoError(t, err)
	c, err := dkg.Commit(params, F, G)
	require.NoError(t, err)

	Fi := F.Eval(params, 3)
	Gi := G.Eval(params, 3)
	require.True(t, dkg.VerifyShare(params, c, 3, Fi, Gi))

	tamperedVx := &dkg.Commitments{
		Vx:      append([]*pbc.Element{tamperG2(t, params, c.Vx[0])}, c.Vx[1:]...),
		Vy:      c.Vy,
		VyPrime: c.VyPrime,
	}
	require.False(t, dkg.VerifyShare(params, tamperedVx, 3, Fi, Gi), "tampered Vx[0] commitment must fail verification")

	tamperedVy := &dkg.Commitments{
		Vx:      c.Vx,
		Vy:      append([]*pbc.Element{tamperG2(t, params, c.Vy[0])}, c.Vy[1:]...),
		VyPrime: c.VyPrime,
	}
	require.False(t, dkg.VerifyShare(params, tamperedVy, 3, Fi, Gi), "tampered Vy[0] commitment must fail verification")

	tamperedVyPrime := &dkg.Commitments{
		Vx:      c.Vx,
		Vy:      c.Vy,
		VyPrime: append([]*pbc.Element{tamperG1(t, params, c.VyPrime[0])}, c.VyPrime[1:]...),
	}
	require.False(t, dkg.VerifyShare(params, tamperedVyPrime, 3, Fi, Gi), "tampered VyPrime[0] commitment must fail verification")
}

func tamperG1(t *testing.T, params *tiac.Params, e *pbc.Element) *pbc.Element {
	t.Helper()
	b := append([]byte(nil), tiac.ElementBytes(e)...)
	b[0] ^= 0xFF
	out, err := params.DecodeG1Hex(hex.EncodeToString(b))
	require.NoError(t, err)
	return out
}

func tamperG2(t *testing.T, params *tiac.Params, e *pbc.Element) *pbc.Element {
	t.Helper()
	b := append([]byte(nil), tiac.ElementBytes(e)...)
	b[0] ^= 0xFF
	out, err := params.DecodeG2Hex(hex.EncodeToString(b))
	require.NoError(t, err)
	return out
}

func TestRunProducesConsistentMVK(t *testing.T) {
	params, err := tiac.New()
	require.NoError(t, err)

	committee, err := dkg.Run(params, 5, 3)
	require.NoError(t, err)
	require.Len(t, committee.Keys, 5)

	// Lagrange-interpolating any t+1 of the signing keys' F(i) at x=0
	// must recover F(0), i.e. g2^F(0) == alpha2, for every choice of
	// qualified subset of the right size.
	subsets := [][]int{{1, 2, 3, 4}, {2, 3, 4, 5}, {1, 3, 4, 5}}
	for _, subset := range subsets {
		ids := make([]*big.Int, len(subset))
		for i, idx := range subset {
			ids[i] = big.NewInt(int64(idx))
		}
		lambdas := dkg.CoefficientsAtZero(params.P, ids)

		f0 := new(big.Int)
		for i, idx := range subset {
			term := new(big.Int).Mul(lambdas[i], committee.Keys[idx].Sgk1)
			f0.Add(f0, term)
		}
		f0.Mod(f0, params.P)

		alpha2 := params.Pairing().NewG2().PowBig(params.G2, f0)
		require.True(t, alpha2.Equals(committee.MVK.Alpha2), "reconstructed F(0) must match alpha2 for subset %v", subset)
	}
}

func TestLagrangeMatchesBruteForce(t *testing.T) {
	// Small prime so brute-force modular interpolation is cheap, and one
	// where the original implementation's hard-coded |Q|=2,3 tables are
	// known to diverge from the closed form for non-trivial p mod k.
	smallPrimes := []int64{7, 11, 13, 17, 23, 101}

	for _, pInt := range smallPrimes {
		p := big.NewInt(pInt)
		for _, xs := range [][]int64{{1, 2}, {2, 3}, {1, 2, 3}, {1, 3, 5}} {
			if int64(len(xs)) >= pInt {
				continue
			}
			bigXs := make([]*big.Int, len(xs))
			for i, x := range xs {
				bigXs[i] = big.NewInt(x)
			}
			lambdas := dkg.CoefficientsAtZero(p, bigXs)

			want := bruteForceLagrangeAtZero(p, xs)
			for i := range lambdas {
				require.Equal(t, want[i].String(), lambdas[i].String(),
					"p=%d xs=%v index %d", pInt, xs, i)
			}
		}
	}
}

// bruteForceLagrangeAtZero computes each basis coefficient by exhaustively
// searching Zp for the modular inverse instead of using ModInverse,
// serving as an independent cross-check of the closed-form implementation.
func bruteForceLagrangeAtZero(p *big.Int, xs []int64) []*big.Int {
	lambdas := make([]*big.Int, len(xs))
	for k, xk := range xs {
		num := big.NewInt(1)
		den := big.NewInt(1)
		for j, xj := range xs {
			if j == k {
				continue
			}
			negXj := new(big.Int).Neg(big.NewInt(xj))
			negXj.Mod(negXj, p)
			num.Mul(num, negXj)
			num.Mod(num, p)

			diff := new(big.Int).Sub(big.NewInt(xk), big.NewInt(xj))
			diff.Mod(diff, p)
			den.Mul(den, diff)
			den.Mod(den, p)
		}
		// Exhaustive search for the modular inverse of den, rather than
		// ModInverse, to keep this check independent of the
		// implementation under test.
		inv := bruteForceInverse(den, p)
		lambda := new(big.Int).Mul(num, inv)
		lambda.Mod(lambda, p)
		lambdas[k] = lambda
	}
	return lambdas
}

func bruteForceInverse(x, p *big.Int) *big.Int {
	for i := int64(1); i < p.Int64(); i++ {
		cand := big.NewInt(i)
		prod := new(big.Int).Mul(x, cand)
		prod.Mod(prod, p)
		if prod.Cmp(big.NewInt(1)) == 0 {
			return cand
		}
	}
	panic("no modular inverse found; p must not be prime")
}
