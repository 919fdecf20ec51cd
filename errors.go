package tiac

import "errors"

// Sentinel errors for every terminal, non-retryable failure kind the core
// can produce. The dkg and credential packages wrap these with
// github.com/pkg/errors for call-site context, so callers should compare
// with errors.Is rather than direct equality.
var (
	// ErrBadEncoding is returned when a group element fails to decode: wrong
	// byte length or a failed subgroup check.
	ErrBadEncoding = errors.New("tiac: bad group element encoding")

	// ErrBadHex is returned when a hex string at a CLI boundary cannot be
	// parsed.
	ErrBadHex = errors.New("tiac: invalid hex input")

	// ErrInvalidShare is returned when verifyShare rejects a DKG share.
	ErrInvalidShare = errors.New("tiac: invalid DKG share")

	// ErrKoRRejected is returned when a Knowledge-of-Representation proof
	// fails to verify, at issuance or at presentation.
	ErrKoRRejected = errors.New("tiac: knowledge-of-representation proof rejected")

	// ErrHashMismatch is returned when h != H_G1(com_i) at a handoff.
	ErrHashMismatch = errors.New("tiac: h does not match H_G1(com_i)")

	// ErrUnblindCheckFailed is returned when the per-EA pairing sanity check
	// fails during Unblind.
	ErrUnblindCheckFailed = errors.New("tiac: unblind pairing check failed")

	// ErrPairingCheckFailed is returned when the verifier's final pairing
	// equation does not hold.
	ErrPairingCheckFailed = errors.New("tiac: verifier pairing check failed")

	// ErrInsufficientShares is returned when fewer than t+1 EAs are
	// qualified after DKG, or fewer than t+1 partial signatures are
	// presented to Aggregate.
	ErrInsufficientShares = errors.New("tiac: insufficient shares")
)
