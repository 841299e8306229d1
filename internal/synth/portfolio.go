package synth

import (
	"github.com/deriverse/deriscope/internal/domain"
)

// Portfolio generates a wallet's holdings snapshot from the stream seeded
// by the address alone (a different stream than the trade history). The
// snapshot holds 1-501 SOL and a 2-6 token subset of the catalog, shuffled
// and sized by the same stream, so the mix is stable per wallet.
func (s *Synthesizer) Portfolio(address string) domain.WalletPortfolio {
	rand := NewRand(address)

	solBalance := rand.Float64()*500 + 1
	solUSD := solBalance * s.catalog.SOLPrice

	tokenCount := rand.Intn(5) + 2
	shuffled := shuffleTokens(rand, s.catalog.Tokens)
	if tokenCount > len(shuffled) {
		tokenCount = len(shuffled)
	}

	tokens := make([]domain.TokenBalance, 0, tokenCount)
	tokensUSD := 0.0
	for _, spec := range shuffled[:tokenCount] {
		balance := rand.Float64()*10000 + 10
		usd := balance * spec.PriceUSD
		tokensUSD += usd
		tokens = append(tokens, domain.TokenBalance{
			Symbol:   spec.Symbol,
			Name:     spec.Name,
			Mint:     spec.Mint,
			Balance:  balance,
			USDValue: usd,
			Decimals: spec.Decimals,
			LogoURI:  spec.LogoURI,
		})
	}

	return domain.WalletPortfolio{
		Address:       address,
		SOLBalance:    solBalance,
		SOLUSDValue:   solUSD,
		Tokens:        tokens,
		TotalUSDValue: solUSD + tokensUSD,
		LastUpdated:   s.now().UTC(),
	}
}

// shuffleTokens is a Fisher-Yates shuffle driven by the seeded stream, so
// the token subset a wallet holds is part of its deterministic identity.
func shuffleTokens(rand *Rand, catalog []TokenSpec) []TokenSpec {
	out := make([]TokenSpec, len(catalog))
	copy(out, catalog)
	for i := len(out) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
