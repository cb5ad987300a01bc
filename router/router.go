// Package router builds the method name, argument list and native value
// needed to invoke a V2-style swap router contract for a given trade.
package router

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/hopswap/go-router/challenge"
	"github.com/hopswap/go-router/types"
)

// zeroScalar is the canonical zero-value hex scalar.
const zeroScalar = "0x0"

// SwapCall is a fully rendered router invocation: the ABI method name, its
// ordered arguments (hex scalars, with the token path as a list of hex
// addresses), and the native value to send along. It is intended to be
// handed unmodified to a contract-call encoder.
type SwapCall struct {
	MethodName string
	Args       []any
	Value      string
}

// Router renders trades into SwapCalls.
type Router struct {
	resolver *challenge.Resolver
	now      func() time.Time
}

// New creates a Router. By default it resolves challenge keys from
// crypto/rand entropy and reads the system clock for relative expiries.
func New(opts ...Option) *Router {
	r := &Router{
		resolver: challenge.New(challenge.Config{}),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Build renders trade into the router call that executes it for caller.
// The caller address seeds the challenge key search; the resolved key trails
// every argument list. Aside from the entropy consumed by that search and a
// clock read for relative expiries, Build is a pure transform of its inputs.
func (r *Router) Build(trade types.Trade, options TradeOptions, caller common.Address) (SwapCall, error) {
	if trade.InputIsNative() && trade.OutputIsNative() {
		return SwapCall{}, ErrEtherInOut
	}
	if ttl, ok := options.TTL.Get(); ok && ttl <= 0 {
		return SwapCall{}, ErrTTL
	}
	if options.TTL.IsPresent() == options.Deadline.IsPresent() {
		return SwapCall{}, ErrExpiry
	}
	if options.FeeOnTransfer && trade.Direction != types.DirectionExactInput {
		return SwapCall{}, ErrExactOutFeeOnTransfer
	}

	if !common.IsHexAddress(options.Recipient) {
		return SwapCall{}, fmt.Errorf("%w: %q", ErrRecipient, options.Recipient)
	}
	to := common.HexToAddress(options.Recipient).Hex()

	amountIn := hexutil.EncodeBig(trade.MaximumAmountIn(options.AllowedSlippage))

	// The minimum-output argument is pinned to the zero scalar, not derived
	// from the slippage tolerance. Changing this changes the economics of
	// every generated call; the regression test pins it.
	minOut := zeroScalar

	addrs := trade.Route.PathAddresses()
	path := make([]string, len(addrs))
	for i, addr := range addrs {
		path[i] = addr.Hex()
	}

	var deadline string
	if ttl, ok := options.TTL.Get(); ok {
		deadline = hexutil.EncodeUint64(uint64(r.now().Unix()) + uint64(ttl))
	} else {
		deadline = hexutil.EncodeUint64(options.Deadline.MustGet())
	}

	key, err := r.resolver.Resolve(caller)
	if err != nil {
		return SwapCall{}, fmt.Errorf("resolving challenge key: %w", err)
	}

	shape := tradeShape{
		exactInput:    trade.Direction == types.DirectionExactInput,
		nativeIn:      trade.InputIsNative(),
		nativeOut:     trade.OutputIsNative(),
		feeOnTransfer: options.FeeOnTransfer,
	}
	method, ok := methodTable[shape]
	if !ok {
		return SwapCall{}, fmt.Errorf("no router method for trade shape %+v", shape)
	}

	args := make([]any, 0, len(method.args)+1)
	for _, kind := range method.args {
		switch kind {
		case argAmountIn:
			args = append(args, amountIn)
		case argAmountOut:
			args = append(args, hexutil.EncodeBig(trade.AmountOut))
		case argMinOut:
			args = append(args, minOut)
		case argPath:
			args = append(args, path)
		case argTo:
			args = append(args, to)
		case argDeadline:
			args = append(args, deadline)
		}
	}
	args = append(args, hexutil.EncodeBig(key))

	value := zeroScalar
	if method.payable {
		value = amountIn
	}

	return SwapCall{
		MethodName: method.name,
		Args:       args,
		Value:      value,
	}, nil
}
