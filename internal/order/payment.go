package order

import (
	"math/big"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Symbol identifies a payment asset.
type Symbol string

const (
	ETH  Symbol = "ETH"
	USDC Symbol = "USDC"
	USDT Symbol = "USDT"
	WBTC Symbol = "WBTC"
)

// Asset is a token accepted as payment.
type Asset struct {
	Symbol   Symbol
	Contract common.Address
	Decimals int32
}

const nativeDecimals = 18

// Assets is the table of tokens that count toward a payment. Transfers of any
// other token are ignored.
var Assets = []Asset{
	{Symbol: USDC, Contract: common.HexToAddress("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"), Decimals: 6},
	{Symbol: USDT, Contract: common.HexToAddress("0xdac17f958d2ee523a2206206994597c13d831ec7"), Decimals: 6},
	{Symbol: WBTC, Contract: common.HexToAddress("0x2260fac5e5542a773aa44fbcfedf7c193bc2c599"), Decimals: 8},
}

// stablecoins are the assets whose amounts compare directly with catalog prices.
var stablecoins = []Symbol{USDC, USDT}

// AssetByContract looks up a token contract in Assets.
func AssetByContract(contract common.Address) (Asset, bool) {
	i := slices.IndexFunc(Assets, func(a Asset) bool { return a.Contract == contract })
	if i < 0 {
		return Asset{}, false
	}
	return Assets[i], true
}

func decimalsOf(sym Symbol) int32 {
	if sym == ETH {
		return nativeDecimals
	}
	for _, a := range Assets {
		if a.Symbol == sym {
			return a.Decimals
		}
	}
	return 0
}

// Payment is what a buyer paid with an order, in raw minor units per asset.
type Payment struct {
	Native *big.Int            // wei
	Tokens map[Symbol]*big.Int // raw token units
}

// NewPayment sums the native value with every transfer of a known asset.
func NewPayment(native *big.Int, transfers []TokenTransfer) Payment {
	p := Payment{
		Native: new(big.Int),
		Tokens: make(map[Symbol]*big.Int),
	}
	if native != nil {
		p.Native.Set(native)
	}

	for _, t := range transfers {
		asset, ok := AssetByContract(t.Contract)
		if !ok || t.Value == nil {
			continue
		}

		total, ok := p.Tokens[asset.Symbol]
		if !ok {
			total = new(big.Int)
			p.Tokens[asset.Symbol] = total
		}
		total.Add(total, t.Value)
	}

	return p
}

// Raw returns the amount paid in sym, in minor units. It never returns nil.
func (p Payment) Raw(sym Symbol) *big.Int {
	if sym == ETH {
		if p.Native == nil {
			return new(big.Int)
		}
		return new(big.Int).Set(p.Native)
	}

	if v, ok := p.Tokens[sym]; ok {
		return new(big.Int).Set(v)
	}
	return new(big.Int)
}

// Amount returns the amount paid in sym scaled by the asset's decimals.
func (p Payment) Amount(sym Symbol) decimal.Decimal {
	return decimal.NewFromBigInt(p.Raw(sym), -decimalsOf(sym))
}

// Stablecoins is the total paid in USD stablecoins, the figure compared with
// catalog prices.
func (p Payment) Stablecoins() decimal.Decimal {
	total := decimal.Zero
	for _, sym := range stablecoins {
		total = total.Add(p.Amount(sym))
	}
	return total
}

// Symbols lists the assets with a non-zero amount, native first.
func (p Payment) Symbols() []Symbol {
	var out []Symbol
	if p.Native != nil && p.Native.Sign() != 0 {
		out = append(out, ETH)
	}
	for _, a := range Assets {
		if v, ok := p.Tokens[a.Symbol]; ok && v.Sign() != 0 {
			out = append(out, a.Symbol)
		}
	}
	return out
}
