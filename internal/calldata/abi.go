package calldata

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Method names of the marketplace contract.
const (
	MethodPurchaseWithEth    = "purchaseWithEth"
	MethodPurchaseWithToken  = "purchaseWithToken"
	MethodReplyToOrder       = "replyToOrder"
	MethodApprovedSellers    = "approvedSellers"
	MethodBlacklistedSellers = "blacklistedSellers"
	MethodUploadProduct      = "uploadProduct"
	MethodGetProducts        = "getProducts"
)

const marketJSON = `[
	{"type":"function","name":"approvedSellers","stateMutability":"view",
	 "inputs":[{"name":"","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"blacklistedSellers","stateMutability":"view",
	 "inputs":[{"name":"","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"getProducts","stateMutability":"view","inputs":[],
	 "outputs":[{"name":"","type":"tuple[]","components":[
		{"name":"sellerAddr","type":"address"},
		{"name":"sellerPubKey","type":"bytes"},
		{"name":"link","type":"string"},
		{"name":"timestamp","type":"uint256"}]}]},
	{"type":"function","name":"uploadProduct","stateMutability":"nonpayable","outputs":[],
	 "inputs":[{"name":"secp256k1","type":"bytes"},{"name":"link","type":"string"}]},
	{"type":"function","name":"purchaseWithEth","stateMutability":"payable","outputs":[],
	 "inputs":[
		{"name":"productId","type":"uint256"},
		{"name":"seller","type":"address"},
		{"name":"buyerGateway","type":"address"},
		{"name":"minUsdtOut","type":"uint256"},
		{"name":"encryptedCalldata","type":"bytes"}]},
	{"type":"function","name":"purchaseWithToken","stateMutability":"nonpayable","outputs":[],
	 "inputs":[
		{"name":"productId","type":"uint256"},
		{"name":"token","type":"address"},
		{"name":"amount","type":"uint256"},
		{"name":"seller","type":"address"},
		{"name":"buyerGateway","type":"address"},
		{"name":"minUsdtOut","type":"uint256"},
		{"name":"encryptedCalldata","type":"bytes"}]},
	{"type":"function","name":"replyToOrder","stateMutability":"nonpayable","outputs":[],
	 "inputs":[
		{"name":"buyerAddress","type":"address"},
		{"name":"buyerGateway","type":"address"},
		{"name":"orderTxnHash","type":"bytes32"},
		{"name":"encryptedData","type":"bytes"}]}
]`

// MarketABI is the parsed interface of the marketplace contract.
var MarketABI abi.ABI

func init() {
	parsed, err := abi.JSON(strings.NewReader(marketJSON))
	if err != nil {
		panic("calldata: invalid market abi: " + err.Error())
	}
	MarketABI = parsed
}

// DefaultMarketAddress is the mainnet address of the marketplace contract.
var DefaultMarketAddress = common.HexToAddress("0x5b8902de436A13Cb5097a7cF9bAd16c30fbf5902")
