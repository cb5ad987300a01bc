package router

import (
	"io"
	"time"

	"github.com/samber/mo"

	"github.com/hopswap/go-router/challenge"
	"github.com/hopswap/go-router/types"
)

// TradeOptions control how a trade is rendered into a router call.
type TradeOptions struct {
	// AllowedSlippage caps the input amount on exact-output trades.
	AllowedSlippage types.Percent
	// TTL is a relative expiry in seconds, added to the clock at build time.
	// Mutually exclusive with Deadline; exactly one must be set.
	TTL mo.Option[int64]
	// Deadline is an absolute expiry in epoch seconds.
	Deadline mo.Option[uint64]
	// Recipient receives the swap output.
	Recipient string
	// FeeOnTransfer selects the router methods that re-measure received
	// amounts instead of trusting the nominal transfer. Exact-input only.
	FeeOnTransfer bool
}

/*//////////////////////////////////////////////////////////////
                            ROUTER
//////////////////////////////////////////////////////////////*/

// Option is a functional option for Router.
type Option func(*Router)

// WithResolver overrides the challenge resolver.
func WithResolver(resolver *challenge.Resolver) Option {
	return func(r *Router) {
		r.resolver = resolver
	}
}

// WithRand overrides the entropy source of the default challenge resolver.
func WithRand(rand io.Reader) Option {
	return func(r *Router) {
		r.resolver = challenge.New(challenge.Config{Rand: rand})
	}
}

// WithClock overrides the wall clock used for relative expiries.
func WithClock(now func() time.Time) Option {
	return func(r *Router) {
		r.now = now
	}
}
