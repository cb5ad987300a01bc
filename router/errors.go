package router

import "errors"

// Invariant violations fail synchronously before any encoding work, each
// carrying the identifying reason consumers match on.
var (
	// ErrEtherInOut rejects trades where both legs are the native asset.
	ErrEtherInOut = errors.New("router: ETHER_IN_OUT: both trade legs are native")

	// ErrTTL rejects non-positive time-to-live values.
	ErrTTL = errors.New("router: TTL: time-to-live must be strictly positive")

	// ErrExpiry rejects options that set neither or both expiry forms.
	ErrExpiry = errors.New("router: EXPIRY: exactly one of ttl and deadline must be set")

	// ErrExactOutFeeOnTransfer rejects fee-on-transfer handling on
	// exact-output trades; the router has no method for that combination.
	ErrExactOutFeeOnTransfer = errors.New("router: EXACT_OUT_FOT: fee-on-transfer requires an exact-input trade")

	// ErrRecipient rejects recipients that fail address validation.
	ErrRecipient = errors.New("router: RECIPIENT: invalid recipient address")
)
