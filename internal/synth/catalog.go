package synth

import (
	"strings"

	"github.com/deriverse/deriscope/internal/domain"
)

// BasePrice is one entry of the reference price table. Symbols are matched
// by substring, so "SOL" covers both SOL-PERP and SOL/USDC.
type BasePrice struct {
	Match string  `yaml:"match"`
	Price float64 `yaml:"price"`
}

// TokenSpec describes one token of the portfolio catalog, with its fixed
// reference price.
type TokenSpec struct {
	Symbol   string  `yaml:"symbol"`
	Name     string  `yaml:"name"`
	Mint     string  `yaml:"mint"`
	Decimals int     `yaml:"decimals"`
	LogoURI  string  `yaml:"logo_uri"`
	PriceUSD float64 `yaml:"price_usd"`
}

// Catalog is the immutable reference data the synthesizers draw from:
// symbol pools, price tables, fee rates, and the token universe. It is
// plain data handed to New, never mutated afterwards.
type Catalog struct {
	PerpSymbols []string    `yaml:"perp_symbols"`
	SpotSymbols []string    `yaml:"spot_symbols"`
	BasePrices  []BasePrice `yaml:"base_prices"`
	// FallbackPrice is used when no base price entry matches a symbol.
	FallbackPrice float64 `yaml:"fallback_price"`

	TakerFeeRate   float64 `yaml:"taker_fee_rate"`
	MakerFeeRate   float64 `yaml:"maker_fee_rate"`
	FundingFeeRate float64 `yaml:"funding_fee_rate"`

	Tokens   []TokenSpec `yaml:"tokens"`
	SOLPrice float64     `yaml:"sol_price"`
}

// BasePriceFor resolves the reference price for a symbol via substring
// match, in table order.
func (c Catalog) BasePriceFor(symbol string) float64 {
	for _, bp := range c.BasePrices {
		if strings.Contains(symbol, bp.Match) {
			return bp.Price
		}
	}
	return c.FallbackPrice
}

// DefaultCatalog returns the venue's reference data: the perp and spot
// symbol pools, base prices, standard fee tiers (5bp taker, 2bp maker,
// 1bp funding), and the eight-token portfolio universe.
func DefaultCatalog() Catalog {
	return Catalog{
		PerpSymbols: []string{
			"SOL-PERP", "BTC-PERP", "ETH-PERP", "JTO-PERP",
			"BONK-PERP", "WIF-PERP", "JUP-PERP", "PYTH-PERP",
		},
		SpotSymbols: []string{
			"SOL/USDC", "BTC/USDC", "ETH/USDC", "JTO/USDC", "BONK/USDC",
		},
		BasePrices: []BasePrice{
			{Match: "BTC", Price: 97000},
			{Match: "ETH", Price: 3300},
			{Match: "SOL", Price: 195},
			{Match: "JTO", Price: 2.8},
			{Match: "BONK", Price: 0.000023},
			{Match: "WIF", Price: 1.95},
			{Match: "JUP", Price: 0.85},
			{Match: "PYTH", Price: 0.38},
		},
		FallbackPrice: 100,

		TakerFeeRate:   0.0005,
		MakerFeeRate:   0.0002,
		FundingFeeRate: 0.0001,

		SOLPrice: 195,
		Tokens: []TokenSpec{
			{Symbol: "SOL", Name: "Solana", Mint: "So11111111111111111111111111111111111111112", Decimals: 9, LogoURI: "/tokens/sol.png", PriceUSD: 195},
			{Symbol: "USDC", Name: "USD Coin", Mint: "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", Decimals: 6, LogoURI: "/tokens/usdc.png", PriceUSD: 1},
			{Symbol: "USDT", Name: "Tether USD", Mint: "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB", Decimals: 6, LogoURI: "/tokens/usdt.png", PriceUSD: 1},
			{Symbol: "JTO", Name: "Jito", Mint: "jtojtomepa8beP8AuQc6eXt5FriJwfFMwQx2v2f9mCL", Decimals: 9, LogoURI: "/tokens/jto.png", PriceUSD: 2.8},
			{Symbol: "JUP", Name: "Jupiter", Mint: "JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN", Decimals: 6, LogoURI: "/tokens/jup.png", PriceUSD: 0.85},
			{Symbol: "BONK", Name: "Bonk", Mint: "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263", Decimals: 5, LogoURI: "/tokens/bonk.png", PriceUSD: 0.000023},
			{Symbol: "WIF", Name: "dogwifhat", Mint: "EKpQGSJtjMFqKZ9KQanSqYXRcF8fBopzLHYxdM65zcjm", Decimals: 6, LogoURI: "/tokens/wif.png", PriceUSD: 1.95},
			{Symbol: "PYTH", Name: "Pyth Network", Mint: "HZ1JovNiVvGrGNiiYvEozEVgZ58xaU3RKwX8eACQBCt3", Decimals: 6, LogoURI: "/tokens/pyth.png", PriceUSD: 0.38},
		},
	}
}

// MarketSpecs returns the static market listing derived from the symbol
// pools, priced at the reference tables.
func (c Catalog) MarketSpecs() []domain.TradableAsset {
	out := make([]domain.TradableAsset, 0, len(c.PerpSymbols)+len(c.SpotSymbols))
	for _, sym := range c.PerpSymbols {
		out = append(out, domain.TradableAsset{
			Symbol:     sym,
			Name:       marketName(sym, domain.MarketPerp),
			MarketType: domain.MarketPerp,
			Price:      c.BasePriceFor(sym),
		})
	}
	for _, sym := range c.SpotSymbols {
		out = append(out, domain.TradableAsset{
			Symbol:     sym,
			Name:       marketName(sym, domain.MarketSpot),
			MarketType: domain.MarketSpot,
			Price:      c.BasePriceFor(sym),
		})
	}
	return out
}

var assetNames = map[string]string{
	"SOL":  "Solana",
	"BTC":  "Bitcoin",
	"ETH":  "Ethereum",
	"JTO":  "Jito",
	"BONK": "Bonk",
	"WIF":  "dogwifhat",
	"JUP":  "Jupiter",
	"PYTH": "Pyth",
}

func marketName(symbol string, mt domain.MarketType) string {
	root := SymbolRoot(symbol)
	name, ok := assetNames[root]
	if !ok {
		name = root
	}
	if mt == domain.MarketPerp {
		return name + " Perpetual"
	}
	return name + " Spot"
}
