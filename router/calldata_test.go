package router

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/maxatome/go-testdeep/td"
)

func TestPackCalldata_RoundTrip(t *testing.T) {
	call := SwapCall{
		MethodName: "swapExactTokensForTokens",
		Args: []any{
			"0x64",
			"0x0",
			[]string{tokenA.Address().Hex(), tokenB.Address().Hex()},
			common.HexToAddress(testRecipient).Hex(),
			"0x6553f100",
			"0x1f47",
		},
		Value: "0x0",
	}

	data, err := PackCalldata(call)
	if err != nil {
		t.Fatalf("PackCalldata unexpected error: %v", err)
	}

	sig := "swapExactTokensForTokens(uint256,uint256,address[],address,uint256,uint256)"
	wantSelector := crypto.Keccak256([]byte(sig))[:4]
	td.Cmp(t, data[:4], wantSelector)

	parsed, err := abi.JSON(strings.NewReader(routerABI))
	if err != nil {
		t.Fatalf("parsing router abi: %v", err)
	}
	values, err := parsed.Methods[call.MethodName].Inputs.Unpack(data[4:])
	if err != nil {
		t.Fatalf("unpacking calldata: %v", err)
	}

	td.Cmp(t, values, []any{
		big.NewInt(0x64),
		big.NewInt(0),
		[]common.Address{tokenA.Address(), tokenB.Address()},
		common.HexToAddress(testRecipient),
		big.NewInt(0x6553f100),
		big.NewInt(0x1f47),
	})
}

func TestPackCalldata_CoversEveryMethod(t *testing.T) {
	parsed, err := abi.JSON(strings.NewReader(routerABI))
	if err != nil {
		t.Fatalf("parsing router abi: %v", err)
	}

	for _, method := range methodTable {
		abiMethod, ok := parsed.Methods[method.name]
		if !ok {
			t.Fatalf("method %q missing from router abi", method.name)
		}
		// Arguments before the trailing challenge key.
		if got := len(abiMethod.Inputs); got != len(method.args)+1 {
			t.Fatalf(
				"method %q: abi takes %d inputs, decision table yields %d",
				method.name, got, len(method.args)+1,
			)
		}
	}
}

func TestPackCalldata_UnknownMethod(t *testing.T) {
	_, err := PackCalldata(SwapCall{MethodName: "withdrawEverything"})
	if err == nil {
		t.Fatal("PackCalldata with unknown method expected error, got nil")
	}
}

func TestPackCalldata_ArgumentCountMismatch(t *testing.T) {
	_, err := PackCalldata(SwapCall{
		MethodName: "swapExactTokensForTokens",
		Args:       []any{"0x64"},
	})
	if err == nil {
		t.Fatal("PackCalldata with missing arguments expected error, got nil")
	}
}

func TestPackCalldata_MalformedScalar(t *testing.T) {
	_, err := PackCalldata(SwapCall{
		MethodName: "swapExactTokensForTokens",
		Args: []any{
			"not-hex",
			"0x0",
			[]string{tokenA.Address().Hex()},
			testRecipient,
			"0x1",
			"0x2",
		},
	})
	if err == nil {
		t.Fatal("PackCalldata with malformed scalar expected error, got nil")
	}
}
