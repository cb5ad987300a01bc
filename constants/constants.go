package constants

import "github.com/ethereum/go-ethereum/common"

// CHALLENGE_XOR_TARGET is the byte every resolved challenge key must produce
// when its padded form is XORed with the signer address (decimal 69).
const CHALLENGE_XOR_TARGET = 0x45

// DEFAULT_MAX_ATTEMPTS bounds the challenge key search. A search needs ~512
// draws on average, so the default only trips on a broken entropy source.
const DEFAULT_MAX_ATTEMPTS = 1 << 22

const MAINNET_V2_ROUTER = "0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D"
const MAINNET_WETH = "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"

var ZERO_ADDRESS = common.Address{}
