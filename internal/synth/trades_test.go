package synth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deriverse/deriscope/internal/domain"
)

const testWallet = "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU"

func fixedClock() func() time.Time {
	anchor := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return anchor }
}

func newTestSynthesizer() *Synthesizer {
	return New(DefaultCatalog(), WithClock(fixedClock()))
}

func TestTrades_Deterministic(t *testing.T) {
	s := newTestSynthesizer()

	first := s.Trades(testWallet, "", 250)
	second := s.Trades(testWallet, "", 250)

	require.Equal(t, first, second, "same wallet and clock must reproduce the identical history")
}

func TestTrades_DistinctWalletsDistinctHistories(t *testing.T) {
	s := newTestSynthesizer()

	a := s.Trades(testWallet, "", 50)
	b := s.Trades("9yMNth3DX98e08UYKTEqcE6kClifUrB94UaSvKptgBtV", "", 50)

	require.NotEmpty(t, a)
	require.NotEmpty(t, b)
	assert.NotEqual(t, a[0].TxHash, b[0].TxHash)
}

func TestTrades_SortedMostRecentFirst(t *testing.T) {
	s := newTestSynthesizer()
	trades := s.Trades(testWallet, "", 250)

	for i := 1; i < len(trades); i++ {
		require.False(t, trades[i].ExitTime.After(trades[i-1].ExitTime),
			"trade %d exits after trade %d", i, i-1)
	}
}

func TestTrades_FieldInvariants(t *testing.T) {
	s := newTestSynthesizer()
	trades := s.Trades(testWallet, "", 250)
	require.Len(t, trades, 250)

	for _, tr := range trades {
		assert.Equal(t, testWallet, tr.WalletAddress)
		assert.True(t, strings.HasPrefix(tr.ID, testWallet[:8]+"-trade-"), "id %q", tr.ID)
		assert.Positive(t, tr.EntryPrice)
		assert.Positive(t, tr.Size)
		assert.GreaterOrEqual(t, tr.Size, 100.0)
		assert.GreaterOrEqual(t, tr.Duration, 5)
		assert.Less(t, tr.Duration, 485)
		assert.Equal(t, tr.EntryTime.Add(time.Duration(tr.Duration)*time.Minute), tr.ExitTime)
		assert.Equal(t, domain.SessionForHour(tr.EntryTime.Hour()), tr.Session)
		assert.Len(t, tr.TxHash, 88)
		assert.Positive(t, tr.Fees)
		assert.NotEmpty(t, tr.FeeBreakdown)

		switch tr.MarketType {
		case domain.MarketPerp:
			assert.GreaterOrEqual(t, tr.Leverage, 2)
			assert.LessOrEqual(t, tr.Leverage, 20)
			assert.Contains(t, tr.Symbol, "-PERP")
		case domain.MarketSpot, domain.MarketOptions:
			assert.Equal(t, 1, tr.Leverage)
			assert.Contains(t, tr.Symbol, "/USDC")
		default:
			t.Fatalf("unexpected market type %q", tr.MarketType)
		}
	}
}

func TestTrades_FeeBreakdownMatchesOrderType(t *testing.T) {
	s := newTestSynthesizer()
	trades := s.Trades(testWallet, "", 250)

	for _, tr := range trades {
		switch tr.OrderType {
		case domain.OrderMarket:
			assert.Equal(t, domain.FeeTaker, tr.FeeBreakdown[0].Type)
		case domain.OrderLimit:
			assert.Equal(t, domain.FeeMaker, tr.FeeBreakdown[0].Type)
		}
		for _, item := range tr.FeeBreakdown[1:] {
			assert.Equal(t, domain.FeeFunding, item.Type)
			assert.Equal(t, domain.MarketPerp, tr.MarketType, "only perps carry funding")
		}
	}
}

func TestTrades_SymbolFilterContainment(t *testing.T) {
	s := newTestSynthesizer()

	filtered := s.Trades(testWallet, "SOL", 250)
	require.NotEmpty(t, filtered)
	for _, tr := range filtered {
		assert.Contains(t, tr.Symbol, "SOL")
	}

	// Filtering discards non-matching draws without replacement.
	assert.Less(t, len(filtered), 250)
}

func TestTrades_FilterAcceptsVenueSuffixedSymbol(t *testing.T) {
	s := newTestSynthesizer()

	byRoot := s.Trades(testWallet, "SOL", 250)
	byPerp := s.Trades(testWallet, "SOL-PERP", 250)
	bySpot := s.Trades(testWallet, "SOL/USDC", 250)

	// The filter reduces to the asset root, so all three spellings select
	// the same trades.
	assert.Equal(t, byRoot, byPerp)
	assert.Equal(t, byRoot, bySpot)
}

func TestTrades_FilteredIDsPreserveDrawIndex(t *testing.T) {
	s := newTestSynthesizer()

	filtered := s.Trades(testWallet, "BONK", 250)
	require.NotEmpty(t, filtered)

	all := s.Trades(testWallet, "", 250)
	ids := make(map[string]bool, len(all))
	for _, tr := range all {
		ids[tr.ID] = true
	}
	// IDs carry the original draw index, so every filtered ID also appears
	// in the unfiltered history.
	for _, tr := range filtered {
		assert.True(t, ids[tr.ID], "id %q missing from unfiltered history", tr.ID)
	}
}

func TestTrades_ShortWalletAddress(t *testing.T) {
	s := newTestSynthesizer()
	trades := s.Trades("Abc123", "", 5)
	require.Len(t, trades, 5)
	for _, tr := range trades {
		assert.True(t, strings.HasPrefix(tr.ID, "Abc123-trade-"), "id %q", tr.ID)
		assert.GreaterOrEqual(t, tr.Duration, 5)
		assert.Less(t, tr.Duration, 485)
		assert.GreaterOrEqual(t, tr.Leverage, 1)
		assert.Equal(t, tr.EntryTime.Add(time.Duration(tr.Duration)*time.Minute), tr.ExitTime)
	}
}

func TestTrades_MetricsTotalsAgree(t *testing.T) {
	s := newTestSynthesizer()
	trades := s.Trades(testWallet, "", 250)

	var pnlSum float64
	for _, tr := range trades {
		pnlSum += tr.PnL
	}

	m := domain.AggregateMetrics(trades)
	assert.InDelta(t, pnlSum, m.TotalPnL, 1e-6)
	assert.Equal(t, len(trades), m.TotalTrades)
}

func TestTrades_EquityCurveNeverExceedsPeak(t *testing.T) {
	s := newTestSynthesizer()
	days := domain.BuildDailyPerformance(s.Trades(testWallet, "", 250))
	require.NotEmpty(t, days)

	peak := domain.StartingEquity
	for _, d := range days {
		if d.Equity > peak {
			peak = d.Equity
		}
		assert.LessOrEqual(t, d.Equity, peak)
		assert.GreaterOrEqual(t, d.Drawdown, 0.0)
		if d.Equity == peak {
			assert.Zero(t, d.Drawdown)
		}
	}
}

func TestTrades_ZeroCountUsesDefault(t *testing.T) {
	s := newTestSynthesizer()
	trades := s.Trades(testWallet, "", 0)
	assert.Len(t, trades, DefaultTradeCount)
}

func TestTrades_PnLConsistentWithPrices(t *testing.T) {
	s := newTestSynthesizer()
	trades := s.Trades(testWallet, "", 250)

	for _, tr := range trades {
		move := tr.ExitPrice - tr.EntryPrice
		if tr.Direction == domain.DirectionShort {
			move = -move
		}
		expected := move * tr.Size * float64(tr.Leverage)
		assert.InDelta(t, expected, tr.PnL, 1e-6)

		notional := tr.Size * tr.EntryPrice
		assert.InDelta(t, tr.PnL/notional*100, tr.PnLPercent, 1e-9)
	}
}

func TestTrades_TxHashAlphabet(t *testing.T) {
	s := newTestSynthesizer()
	trades := s.Trades(testWallet, "", 20)

	for _, tr := range trades {
		for _, c := range tr.TxHash {
			assert.Contains(t, txHashAlphabet, string(c))
		}
	}
}

func TestSymbolRoot(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"SOL-PERP", "SOL"},
		{"SOL/USDC", "SOL"},
		{"BONK", "BONK"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SymbolRoot(tt.in))
	}
}

func TestBasePriceFor_FallbackWhenUnknown(t *testing.T) {
	c := DefaultCatalog()
	assert.Equal(t, 97000.0, c.BasePriceFor("BTC-PERP"))
	assert.Equal(t, 195.0, c.BasePriceFor("SOL/USDC"))
	assert.Equal(t, c.FallbackPrice, c.BasePriceFor("DOGE-PERP"))
}
