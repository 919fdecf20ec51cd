package dkg

import (
	"math/big"

	"github.com/KereMath/tiac"
	"github.com/Nik-U/pbc"
	"github.com/pkg/errors"
)

// MasterVerKey is the committee's public verification key, the product of
// every qualified EA's constant-term commitments: α2 = g2^F(0),
// β2 = g2^G(0), β1 = g1^G(0).
type MasterVerKey struct {
	Alpha2 *pbc.Element // G2
	Beta2  *pbc.Element // G2
	Beta1  *pbc.Element // G1
}

// EAKey is one Election Authority's post-DKG signing and verification
// material over the qualified set Q: sgk = (F(i), G(i)), vk = (g2^F(i),
// g2^G(i), g1^G(i)).
type EAKey struct {
	Index int
	Sgk1  *big.Int // F(i) = Σ_{l∈Q} F_l(i)
	Sgk2  *big.Int // G(i) = Σ_{l∈Q} G_l(i)
	Vk1   *pbc.Element
	Vk2   *pbc.Element
	Vk3   *pbc.Element
}

// AggregateMVK combines the qualified set's commitments into the master
// verification key: α2 = ∏ Vx^(l)[0], β2 = ∏ Vy^(l)[0], β1 = ∏ VyPrime^(l)[0].
// qualified must contain at least t+1 entries, or ErrInsufficientShares is
// returned.
func AggregateMVK(params *tiac.Params, t int, qualified map[int]*Commitments) (*MasterVerKey, error) {
	if len(qualified) < t+1 {
		return nil, errors.Wrapf(tiac.ErrInsufficientShares, "qualified set has %d members, need >= %d", len(qualified), t+1)
	}
	pairing := params.Pairing()

	alpha2 := pairing.NewG2().Set1()
	beta2 := pairing.NewG2().Set1()
	beta1 := pairing.NewG1().Set1()

	for _, c := range qualified {
		alpha2.Mul(alpha2, c.Vx[0])
		beta2.Mul(beta2, c.Vy[0])
		beta1.Mul(beta1, c.VyPrime[0])
	}

	return &MasterVerKey{Alpha2: alpha2, Beta2: beta2, Beta1: beta1}, nil
}

// ComputeSigningKey sums the shares received by EA index from every member
// of the qualified set: sgk1 = Σ F_l(index), sgk2 = Σ G_l(index) mod p.
// shares maps qualified EA identity l to the (F_l(index), G_l(index)) pair
// that l sent to index.
func ComputeSigningKey(params *tiac.Params, index int, shares map[int][2]*big.Int) (sgk1, sgk2 *big.Int) {
	sgk1 = new(big.Int)
	sgk2 = new(big.Int)
	for _, pair := range shares {
		sgk1.Add(sgk1, pair[0])
		sgk2.Add(sgk2, pair[1])
	}
	sgk1.Mod(sgk1, params.P)
	sgk2.Mod(sgk2, params.P)
	return sgk1, sgk2
}

// ComputeVerificationKeys evaluates every qualified EA's commitment
// vectors at index and multiplies the results: vk1 = ∏ g2^F_l(index),
// vk2 = ∏ g2^G_l(index), vk3 = ∏ g1^G_l(index), which by Feldman binding
// equal g2^F(index), g2^G(index), g1^G(index) without requiring F/G
// directly.
func ComputeVerificationKeys(params *tiac.Params, index int, qualified map[int]*Commitments) *EAKey {
	pairing := params.Pairing()
	vk1 := pairing.NewG2().Set1()
	vk2 := pairing.NewG2().Set1()
	vk3 := pairing.NewG1().Set1()

	for _, c := range qualified {
		vk1.Mul(vk1, evalCommitmentProduct(params, c.Vx, int64(index), pairing.NewG2))
		vk2.Mul(vk2, evalCommitmentProduct(params, c.Vy, int64(index), pairing.NewG2))
		vk3.Mul(vk3, evalCommitmentProduct(params, c.VyPrime, int64(index), pairing.NewG1))
	}

	return &EAKey{Index: index, Vk1: vk1, Vk2: vk2, Vk3: vk3}
}

// Committee bundles the full output of a simulated DKG run: the master
// verification key and every qualified EA's signing/verification key. It
// exists to make Run's output convenient to pass to the credential
// package's tests and examples; production deployments would instead have
// each EA compute its own EAKey locally via ComputeSigningKey and
// ComputeVerificationKeys and never see the others' Sgk1/Sgk2.
type Committee struct {
	N, T int
	MVK  *MasterVerKey
	Keys map[int]*EAKey
}

// Run simulates a full n-of-t Pedersen DKG in a single process: every EA
// samples polynomials, publishes commitments, every pair of EAs exchanges
// and verifies shares, and the qualified set (all n EAs, since this
// simulation has no faulty participants) is aggregated into the
// committee's keys. It is the reference orchestration used by tests and
// documentation; a real deployment runs each EA as a separate process
// communicating shares over the transport layer named out of scope in §1.
func Run(params *tiac.Params, n, t int) (*Committee, error) {
	if t < 1 || t >= n {
		return nil, errors.Errorf("tiac/dkg: need 1 <= t < n, got t=%d n=%d", t, n)
	}

	polysF := make(map[int]*Polynomial, n)
	polysG := make(map[int]*Polynomial, n)
	commitments := make(map[int]*Commitments, n)

	for l := 1; l <= n; l++ {
		F, err := Sample(params, t)
		if err != nil {
			return nil, err
		}
		G, err := Sample(params, t)
		if err != nil {
			return nil, err
		}
		c, err := Commit(params, F, G)
		if err != nil {
			return nil, err
		}
		polysF[l] = F
		polysG[l] = G
		commitments[l] = c
	}

	// Every EA verifies every other EA's share to it; a real EA that fails
	// a check would be excluded from the qualified set. This simulation
	// has only honest participants, so Q is the full [1..n].
	sharesTo := make(map[int]map[int][2]*big.Int, n) // sharesTo[i][l] = (F_l(i), G_l(i))
	for i := 1; i <= n; i++ {
		sharesTo[i] = make(map[int][2]*big.Int, n)
	}
	for l := 1; l <= n; l++ {
		for i := 1; i <= n; i++ {
			Fi := polysF[l].Eval(params, int64(i))
			Gi := polysG[l].Eval(params, int64(i))
			if !VerifyShare(params, commitments[l], int64(i), Fi, Gi) {
				return nil, errors.Wrapf(tiac.ErrInvalidShare, "share from EA %d to EA %d", l, i)
			}
			sharesTo[i][l] = [2]*big.Int{Fi, Gi}
		}
	}

	mvk, err := AggregateMVK(params, t, commitments)
	if err != nil {
		return nil, err
	}

	keys := make(map[int]*EAKey, n)
	for i := 1; i <= n; i++ {
		key := ComputeVerificationKeys(params, i, commitments)
		key.Sgk1, key.Sgk2 = ComputeSigningKey(params, i, sharesTo[i])
		keys[i] = key
	}

	return &Committee{N: n, T: t, MVK: mvk, Keys: keys}, nil
}
