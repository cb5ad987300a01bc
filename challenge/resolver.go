// Package challenge derives the per-call gating key appended to every
// generated router call. The key is a proof-of-knowledge nonce tied to the
// caller address, not a cryptographic primitive; it never influences trade
// economics.
package challenge

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/hopswap/go-router/constants"
	"github.com/hopswap/go-router/internal/hexenc"
)

// ErrExhausted is returned when no admissible key is found within the
// configured attempt budget.
var ErrExhausted = errors.New("challenge: attempt budget exhausted")

// addressSpace is 2^160, the size of the key space.
var addressSpace = new(big.Int).Lsh(big.NewInt(1), 160)

// Config for constructing a Resolver.
type Config struct {
	// Rand is the entropy source for candidate keys.
	// If nil, crypto/rand is used.
	Rand io.Reader
	// MaxAttempts bounds the candidate search.
	// If zero, constants.DEFAULT_MAX_ATTEMPTS applies.
	MaxAttempts int
}

// Resolver searches the 160-bit key space for challenge keys.
type Resolver struct {
	rand        io.Reader
	maxAttempts int
}

// New creates a Resolver with the provided configuration.
func New(cfg Config) *Resolver {
	r := &Resolver{
		rand:        cfg.Rand,
		maxAttempts: cfg.MaxAttempts,
	}

	if r.rand == nil {
		r.rand = rand.Reader
	}
	if r.maxAttempts == 0 {
		r.maxAttempts = constants.DEFAULT_MAX_ATTEMPTS
	}

	return r
}

// Resolve derives a fresh challenge key for signer. Keys are never stored or
// reused; every call runs a new search.
//
// The admissible range depends on the signer's parity: even signers resolve
// to a strictly greater key, odd signers to a strictly smaller one, so the
// key can never collide with the signer. Within the range, the first uniform
// draw whose padded byte form XORed with the signer ends in
// constants.CHALLENGE_XOR_TARGET wins. A draw succeeds with probability
// ~1/512, and the search keeps going until the attempt budget runs out.
func (r *Resolver) Resolve(signer common.Address) (*big.Int, error) {
	signerValue := new(big.Int).SetBytes(signer.Bytes())

	var lower, upper *big.Int
	if signerValue.Bit(0) == 0 {
		lower = new(big.Int).Add(signerValue, big.NewInt(1))
		upper = new(big.Int).Sub(addressSpace, big.NewInt(1))
	} else {
		lower = new(big.Int)
		upper = new(big.Int).Sub(signerValue, big.NewInt(1))
	}

	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		candidate, err := rand.Int(r.rand, addressSpace)
		if err != nil {
			return nil, fmt.Errorf("challenge: drawing candidate: %w", err)
		}

		if candidate.Cmp(lower) < 0 || candidate.Cmp(upper) > 0 {
			continue
		}

		xored, err := hexenc.XORBytes(signer.Bytes(), hexenc.AddressBytes(candidate))
		if err != nil {
			return nil, fmt.Errorf("challenge: comparing candidate: %w", err)
		}

		if xored[len(xored)-1] == constants.CHALLENGE_XOR_TARGET {
			return candidate, nil
		}
	}

	return nil, ErrExhausted
}
