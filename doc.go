/*
Package tiac implements the cryptographic core of a threshold-issued
anonymous credential scheme over a Type-A bilinear pairing. A committee of
Election Authorities (EAs) jointly issues a blind, unlinkable credential to
a user identified by a Decentralized Identifier (DID); any t-of-n honest
subset of EAs can complete issuance, and the holder later proves possession
of a valid credential without revealing the signature or the DID.

Overview

The pipeline has nine stages, each living in its own component:

	params  ← New()                      pairing context + domain generators
	did     ← CreateDID(params, userID)  DID string + secret scalar
	mvk, eaKeys ← dkg.Run(params, n, t)  distributed key generation
	prep    ← credential.Prepare(...)    client-side blinded commitment + KoR
	bsig    ← credential.BlindSign(...)  per-EA partial signature
	usig    ← credential.Unblind(...)    client-side per-EA unblinding
	asig    ← credential.Aggregate(...)  Lagrange aggregation of t+1 signatures
	proof   ← credential.Prove(...)      re-randomized presentation + KoR
	ok      ← credential.Verify(...)     pairing check + presentation KoR

Every function above is pure: no shared mutable state beyond the read-only
Params value threaded through every call. An executor (see package batch)
may run any number of these pipelines concurrently.

Security Properties

The scheme combines three building blocks, each contributing a distinct
guarantee:

• Pedersen distributed key generation: no single EA, nor any t-1 colluding
EAs, learns the master signing key; a qualified set of at least t+1 EAs is
required to reconstruct any signing operation.

• Schnorr-style Knowledge-of-Representation proofs (Fiat-Shamir, issuance
and presentation): the client proves knowledge of its blinding scalars and
DID without revealing them, and the verifier recomputes the same challenge
that a genuine prover would have produced.

• Re-randomization: every presentation replaces (h, s) with a fresh,
uniformly distributed pair that still satisfies the same pairing equation,
so two presentations of the same credential are computationally
unlinkable.

Non-goals: anonymity against t or more colluding EAs, post-quantum security,
credential revocation, and committee reconfiguration after DKG completes.

Groups

All arithmetic is typed by the group it lives in: G1, G2, GT, or the
scalar field Zr. Mixing elements from different groups is a correctness
bug the type system cannot catch on its own, since github.com/Nik-U/pbc
represents every group with the same *pbc.Element type — component
boundaries in this package are deliberately narrow about which group each
argument and return value belongs to, and that discipline is documented at
each function rather than enforced by the compiler.
*/
package tiac
