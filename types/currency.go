package types

import "github.com/ethereum/go-ethereum/common"

// Currency identifies an asset on the target chain. The chain's base asset
// is tagged by a sentinel rather than a contract address.
type Currency struct {
	address common.Address
	symbol  string
	native  bool
}

// Native is the chain's base asset.
var Native = Currency{symbol: "ETH", native: true}

// NewToken creates an ERC-20 currency from its contract address.
func NewToken(address common.Address, symbol string) Currency {
	return Currency{address: address, symbol: symbol}
}

// IsNative reports whether the currency is the chain's base asset.
func (c Currency) IsNative() bool {
	return c.native
}

func (c Currency) Symbol() string {
	return c.symbol
}

// Address returns the contract address; zero for the native sentinel.
func (c Currency) Address() common.Address {
	return c.address
}

// Equal reports whether two currencies identify the same asset.
func (c Currency) Equal(other Currency) bool {
	if c.native || other.native {
		return c.native == other.native
	}
	return c.address == other.address
}
