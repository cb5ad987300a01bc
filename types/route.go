package types

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrEmptyPath = errors.New("route: path must contain at least one token")
	ErrNativeHop = errors.New("route: path entries must be tokens, not the native asset")
)

// Route is the ordered token path a swap hops through. Path entries are
// always concrete tokens; a native input or output leg is expressed on the
// route's ends, with the wrapped token standing in on the path itself.
type Route struct {
	Path   []Currency
	Input  Currency
	Output Currency
}

// NewRoute validates the path shape and builds a Route.
func NewRoute(path []Currency, input, output Currency) (Route, error) {
	if len(path) == 0 {
		return Route{}, ErrEmptyPath
	}
	for _, hop := range path {
		if hop.IsNative() {
			return Route{}, ErrNativeHop
		}
	}

	return Route{Path: path, Input: input, Output: output}, nil
}

// PathAddresses returns the contract addresses along the path, in order.
func (r Route) PathAddresses() []common.Address {
	addrs := make([]common.Address, len(r.Path))
	for i, hop := range r.Path {
		addrs[i] = hop.Address()
	}
	return addrs
}
