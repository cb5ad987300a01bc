package router

// tradeShape keys the method decision table.
type tradeShape struct {
	exactInput    bool
	nativeIn      bool
	nativeOut     bool
	feeOnTransfer bool
}

// argKind names one slot in a method's argument order. The challenge key is
// not listed; it trails every call.
type argKind int

const (
	// argAmountIn is the exact input amount, or the maximum input on
	// exact-output trades.
	argAmountIn argKind = iota
	// argAmountOut is the exact output amount.
	argAmountOut
	// argMinOut is the minimum-output scalar.
	argMinOut
	// argPath is the ordered token address list.
	argPath
	// argTo is the recipient.
	argTo
	// argDeadline is the expiry in epoch seconds.
	argDeadline
)

type methodSpec struct {
	name string
	args []argKind
	// payable methods carry the input amount as the call value instead of
	// an argument.
	payable bool
}

// methodTable is the single source of truth mapping trade shape to router
// method and argument order. Shapes with both legs native, or fee-on-transfer
// on exact-output, are rejected before lookup and have no entry.
var methodTable = map[tradeShape]methodSpec{
	{exactInput: true, nativeIn: true}: {
		name:    "swapExactETHForTokens",
		args:    []argKind{argMinOut, argPath, argTo, argDeadline},
		payable: true,
	},
	{exactInput: true, nativeIn: true, feeOnTransfer: true}: {
		name:    "swapExactETHForTokensSupportingFeeOnTransferTokens",
		args:    []argKind{argMinOut, argPath, argTo, argDeadline},
		payable: true,
	},
	{exactInput: true, nativeOut: true}: {
		name: "swapExactTokensForETH",
		args: []argKind{argAmountIn, argMinOut, argPath, argTo, argDeadline},
	},
	{exactInput: true, nativeOut: true, feeOnTransfer: true}: {
		name: "swapExactTokensForETHSupportingFeeOnTransferTokens",
		args: []argKind{argAmountIn, argMinOut, argPath, argTo, argDeadline},
	},
	{exactInput: true}: {
		name: "swapExactTokensForTokens",
		args: []argKind{argAmountIn, argMinOut, argPath, argTo, argDeadline},
	},
	{exactInput: true, feeOnTransfer: true}: {
		name: "swapExactTokensForTokensSupportingFeeOnTransferTokens",
		args: []argKind{argAmountIn, argMinOut, argPath, argTo, argDeadline},
	},
	{nativeIn: true}: {
		name:    "swapETHForExactTokens",
		args:    []argKind{argAmountOut, argPath, argTo, argDeadline},
		payable: true,
	},
	{nativeOut: true}: {
		name: "swapTokensForExactETH",
		args: []argKind{argAmountOut, argAmountIn, argPath, argTo, argDeadline},
	},
	{}: {
		name: "swapTokensForExactTokens",
		args: []argKind{argAmountOut, argAmountIn, argPath, argTo, argDeadline},
	},
}
