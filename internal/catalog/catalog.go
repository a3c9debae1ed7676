// Package catalog holds the static tables shared by handlers and clients.
package catalog

import "github.com/shopspring/decimal"

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type Chain struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ChainID        int64  `json:"chainId"`
	NativeCurrency string `json:"nativeCurrency"`
	ExplorerURL    string `json:"explorerUrl"`
}

type Currency struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals int    `json:"decimals"`
}

type Fees struct {
	PlatformFeePercent     decimal.Decimal `json:"platformFeePercent"`
	MaxRoyaltyPercent      decimal.Decimal `json:"maxRoyaltyPercent"`
	MinBidIncrementPercent decimal.Decimal `json:"minBidIncrementPercent"`
}

type Catalog struct {
	Categories []Category `json:"categories"`
	Chains     []Chain    `json:"chains"`
	Currencies []Currency `json:"currencies"`
	Fees       Fees       `json:"fees"`
}

var categories = []Category{
	{ID: "art", Name: "Art", Icon: "palette"},
	{ID: "collectibles", Name: "Collectibles", Icon: "gem"},
	{ID: "photography", Name: "Photography", Icon: "camera"},
	{ID: "music", Name: "Music", Icon: "music"},
	{ID: "gaming", Name: "Gaming", Icon: "gamepad"},
	{ID: "virtual-worlds", Name: "Virtual Worlds", Icon: "globe"},
	{ID: "sports", Name: "Sports", Icon: "trophy"},
	{ID: "utility", Name: "Utility", Icon: "wrench"},
}

var chains = []Chain{
	{ID: "ethereum", Name: "Ethereum", ChainID: 1, NativeCurrency: "ETH", ExplorerURL: "https://etherscan.io"},
	{ID: "polygon", Name: "Polygon", ChainID: 137, NativeCurrency: "MATIC", ExplorerURL: "https://polygonscan.com"},
	{ID: "base", Name: "Base", ChainID: 8453, NativeCurrency: "ETH", ExplorerURL: "https://basescan.org"},
	{ID: "sepolia", Name: "Sepolia", ChainID: 11155111, NativeCurrency: "ETH", ExplorerURL: "https://sepolia.etherscan.io"},
}

var currencies = []Currency{
	{Symbol: "ETH", Name: "Ether", Decimals: 18},
	{Symbol: "WETH", Name: "Wrapped Ether", Decimals: 18},
	{Symbol: "MATIC", Name: "Polygon", Decimals: 18},
	{Symbol: "USDC", Name: "USD Coin", Decimals: 6},
}

var (
	PlatformFeePercent     = decimal.RequireFromString("2.5")
	MaxRoyaltyPercent      = decimal.NewFromInt(10)
	MinBidIncrementPercent = decimal.NewFromInt(5)
)

// Get returns a copy of every table.
func Get() Catalog {
	return Catalog{
		Categories: Categories(),
		Chains:     append([]Chain(nil), chains...),
		Currencies: append([]Currency(nil), currencies...),
		Fees: Fees{
			PlatformFeePercent:     PlatformFeePercent,
			MaxRoyaltyPercent:      MaxRoyaltyPercent,
			MinBidIncrementPercent: MinBidIncrementPercent,
		},
	}
}

func Categories() []Category {
	return append([]Category(nil), categories...)
}

func IsCategory(id string) bool {
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

func IsCurrency(symbol string) bool {
	for _, c := range currencies {
		if c.Symbol == symbol {
			return true
		}
	}
	return false
}

// PrimaryChain is the chain platform wallets receive deposits on.
func PrimaryChain() Chain {
	return chains[0]
}
