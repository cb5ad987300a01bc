// Package hexenc holds the byte-level helpers shared by the challenge
// predicate and the call builders.
package hexenc

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// XORBytes returns the bytewise XOR of two equal-length byte strings.
func XORBytes(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("hexenc: length mismatch: %d vs %d", len(a), len(b))
	}

	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out, nil
}

// AddressBytes left-pads v to the fixed 20-byte address width.
func AddressBytes(v *big.Int) []byte {
	return common.LeftPadBytes(v.Bytes(), common.AddressLength)
}
