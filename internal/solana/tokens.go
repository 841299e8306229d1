package solana

// SOLPriceUSD is the reference SOL price used to value balances until a
// real price feed is wired in.
const SOLPriceUSD = 180.0

// TokenMeta is the display metadata for a known mint.
type TokenMeta struct {
	Symbol   string
	Name     string
	Decimals int
	LogoURI  string
}

// knownTokens maps popular mints to display metadata. Unknown mints fall
// back to a truncated mint string.
var knownTokens = map[string]TokenMeta{
	"So11111111111111111111111111111111111111112": {
		Symbol: "WSOL", Name: "Wrapped SOL", Decimals: 9,
		LogoURI: "https://raw.githubusercontent.com/solana-labs/token-list/main/assets/mainnet/So11111111111111111111111111111111111111112/logo.png",
	},
	"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v": {
		Symbol: "USDC", Name: "USD Coin", Decimals: 6,
		LogoURI: "https://raw.githubusercontent.com/solana-labs/token-list/main/assets/mainnet/EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v/logo.png",
	},
	"Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB": {
		Symbol: "USDT", Name: "Tether USD", Decimals: 6,
		LogoURI: "https://raw.githubusercontent.com/solana-labs/token-list/main/assets/mainnet/Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB/logo.svg",
	},
	"DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263": {
		Symbol: "BONK", Name: "Bonk", Decimals: 5,
		LogoURI: "https://arweave.net/hQiPZOsRZXGXBJd_82PhVdlM_hACsT_q6wqwf5cSY7I",
	},
	"JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN": {
		Symbol: "JUP", Name: "Jupiter", Decimals: 6,
		LogoURI: "https://static.jup.ag/jup/icon.png",
	},
	"HZ1JovNiVvGrGNiiYvEozEVgZ58xaU3RKwX8eACQBCt3": {
		Symbol: "PYTH", Name: "Pyth Network", Decimals: 6,
	},
	"WENWENvqqNya429ubCdR81ZmD69brwQaaBYY6p3LCpk": {
		Symbol: "WEN", Name: "Wen", Decimals: 5,
	},
	"rndrizKT3MK1iimdxRdWabcF7Zg7AR5T4nud4EkHBof": {
		Symbol: "RENDER", Name: "Render Token", Decimals: 8,
	},
}

// tokenPrices maps known mints to reference USD prices. Unknown mints are
// valued at zero rather than guessed.
var tokenPrices = map[string]float64{
	"So11111111111111111111111111111111111111112":  SOLPriceUSD,
	"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v": 1.0,
	"Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB": 1.0,
	"DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263": 0.000025,
	"JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN":  1.2,
	"HZ1JovNiVvGrGNiiYvEozEVgZ58xaU3RKwX8eACQBCt3": 0.45,
	"WENWENvqqNya429ubCdR81ZmD69brwQaaBYY6p3LCpk":  0.0001,
	"rndrizKT3MK1iimdxRdWabcF7Zg7AR5T4nud4EkHBof":  8.5,
}
