package synth

import (
	"math/rand"

	"github.com/deriverse/deriscope/internal/domain"
)

// Markets returns the tradable market catalog with simulated live pricing:
// reference price jittered by a random 24h change and a random daily
// volume. Unlike trade histories this is intentionally not seeded; the
// ticker is expected to move between fetches.
func (s *Synthesizer) Markets() []domain.TradableAsset {
	markets := s.catalog.MarketSpecs()
	for i := range markets {
		change := (rand.Float64() - 0.5) * 10
		markets[i].Price = markets[i].Price * (1 + change/100)
		markets[i].Change24h = change
		markets[i].Volume24h = rand.Float64()*100_000_000 + 1_000_000
	}
	return markets
}
