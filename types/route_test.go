package types

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

var (
	testTokenA = NewToken(common.HexToAddress("0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"), "AAA")
	testTokenB = NewToken(common.HexToAddress("0xbBbBBBBbbBBBbbbBbbBbbbbBBbBbbbbBbBbbBBbB"), "BBB")
)

func TestNewRoute(t *testing.T) {
	route, err := NewRoute([]Currency{testTokenA, testTokenB}, testTokenA, testTokenB)
	if err != nil {
		t.Fatalf("NewRoute unexpected error: %v", err)
	}

	addrs := route.PathAddresses()
	if len(addrs) != 2 {
		t.Fatalf("PathAddresses length = %d, want 2", len(addrs))
	}
	if addrs[0] != testTokenA.Address() || addrs[1] != testTokenB.Address() {
		t.Fatalf("PathAddresses = %v, out of order", addrs)
	}
}

func TestNewRoute_EmptyPath(t *testing.T) {
	_, err := NewRoute(nil, testTokenA, testTokenB)
	if !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("NewRoute(nil) error = %v, want ErrEmptyPath", err)
	}
}

func TestNewRoute_NativeHop(t *testing.T) {
	_, err := NewRoute([]Currency{testTokenA, Native}, testTokenA, Native)
	if !errors.Is(err, ErrNativeHop) {
		t.Fatalf("NewRoute with native hop error = %v, want ErrNativeHop", err)
	}
}

func TestCurrencyEqual(t *testing.T) {
	tests := []struct {
		name string
		a    Currency
		b    Currency
		want bool
	}{
		{
			name: "same token",
			a:    testTokenA,
			b:    NewToken(testTokenA.Address(), "OTHER-SYMBOL"),
			want: true,
		},
		{
			name: "different tokens",
			a:    testTokenA,
			b:    testTokenB,
			want: false,
		},
		{
			name: "native vs native",
			a:    Native,
			b:    Native,
			want: true,
		},
		{
			name: "native vs token",
			a:    Native,
			b:    testTokenA,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Fatalf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}
