package router

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// routerABI is the minimal router fragment covering the nine swap methods.
// Every method takes the trailing uint256 challenge key.
const routerABI = `[
	{"inputs":[
		{"name":"amountOutMin","type":"uint256"},
		{"name":"path","type":"address[]"},
		{"name":"to","type":"address"},
		{"name":"deadline","type":"uint256"},
		{"name":"challenge","type":"uint256"}],
	 "name":"swapExactETHForTokens","outputs":[],"stateMutability":"payable","type":"function"},

	{"inputs":[
		{"name":"amountOutMin","type":"uint256"},
		{"name":"path","type":"address[]"},
		{"name":"to","type":"address"},
		{"name":"deadline","type":"uint256"},
		{"name":"challenge","type":"uint256"}],
	 "name":"swapExactETHForTokensSupportingFeeOnTransferTokens","outputs":[],"stateMutability":"payable","type":"function"},

	{"inputs":[
		{"name":"amountIn","type":"uint256"},
		{"name":"amountOutMin","type":"uint256"},
		{"name":"path","type":"address[]"},
		{"name":"to","type":"address"},
		{"name":"deadline","type":"uint256"},
		{"name":"challenge","type":"uint256"}],
	 "name":"swapExactTokensForETH","outputs":[],"stateMutability":"nonpayable","type":"function"},

	{"inputs":[
		{"name":"amountIn","type":"uint256"},
		{"name":"amountOutMin","type":"uint256"},
		{"name":"path","type":"address[]"},
		{"name":"to","type":"address"},
		{"name":"deadline","type":"uint256"},
		{"name":"challenge","type":"uint256"}],
	 "name":"swapExactTokensForETHSupportingFeeOnTransferTokens","outputs":[],"stateMutability":"nonpayable","type":"function"},

	{"inputs":[
		{"name":"amountIn","type":"uint256"},
		{"name":"amountOutMin","type":"uint256"},
		{"name":"path","type":"address[]"},
		{"name":"to","type":"address"},
		{"name":"deadline","type":"uint256"},
		{"name":"challenge","type":"uint256"}],
	 "name":"swapExactTokensForTokens","outputs":[],"stateMutability":"nonpayable","type":"function"},

	{"inputs":[
		{"name":"amountIn","type":"uint256"},
		{"name":"amountOutMin","type":"uint256"},
		{"name":"path","type":"address[]"},
		{"name":"to","type":"address"},
		{"name":"deadline","type":"uint256"},
		{"name":"challenge","type":"uint256"}],
	 "name":"swapExactTokensForTokensSupportingFeeOnTransferTokens","outputs":[],"stateMutability":"nonpayable","type":"function"},

	{"inputs":[
		{"name":"amountOut","type":"uint256"},
		{"name":"path","type":"address[]"},
		{"name":"to","type":"address"},
		{"name":"deadline","type":"uint256"},
		{"name":"challenge","type":"uint256"}],
	 "name":"swapETHForExactTokens","outputs":[],"stateMutability":"payable","type":"function"},

	{"inputs":[
		{"name":"amountOut","type":"uint256"},
		{"name":"amountInMax","type":"uint256"},
		{"name":"path","type":"address[]"},
		{"name":"to","type":"address"},
		{"name":"deadline","type":"uint256"},
		{"name":"challenge","type":"uint256"}],
	 "name":"swapTokensForExactETH","outputs":[],"stateMutability":"nonpayable","type":"function"},

	{"inputs":[
		{"name":"amountOut","type":"uint256"},
		{"name":"amountInMax","type":"uint256"},
		{"name":"path","type":"address[]"},
		{"name":"to","type":"address"},
		{"name":"deadline","type":"uint256"},
		{"name":"challenge","type":"uint256"}],
	 "name":"swapTokensForExactTokens","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`

var loadRouterABI = sync.OnceValues(func() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(routerABI))
})

// PackCalldata ABI-encodes call into the calldata bytes a transaction to the
// router contract carries. The call's hex scalars become uint256 words and
// its path becomes an address array; the trailing challenge key packs like
// any other scalar.
func PackCalldata(call SwapCall) ([]byte, error) {
	parsed, err := loadRouterABI()
	if err != nil {
		return nil, fmt.Errorf("parsing router abi: %w", err)
	}

	method, ok := parsed.Methods[call.MethodName]
	if !ok {
		return nil, fmt.Errorf("unknown router method %q", call.MethodName)
	}
	if len(method.Inputs) != len(call.Args) {
		return nil, fmt.Errorf(
			"method %q takes %d arguments, call has %d",
			call.MethodName,
			len(method.Inputs),
			len(call.Args),
		)
	}

	values := make([]any, 0, len(call.Args))
	for i, arg := range call.Args {
		switch v := arg.(type) {
		case string:
			if method.Inputs[i].Type.T == abi.AddressTy {
				values = append(values, common.HexToAddress(v))
				continue
			}
			n, err := hexutil.DecodeBig(v)
			if err != nil {
				return nil, fmt.Errorf("argument %d of %q: %w", i, call.MethodName, err)
			}
			values = append(values, n)
		case []string:
			addrs := make([]common.Address, len(v))
			for j, s := range v {
				addrs[j] = common.HexToAddress(s)
			}
			values = append(values, addrs)
		default:
			return nil, fmt.Errorf("argument %d of %q: unsupported type %T", i, call.MethodName, arg)
		}
	}

	return parsed.Pack(call.MethodName, values...)
}
