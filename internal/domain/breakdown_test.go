package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func atHour(h int) func(*Trade) {
	return onDay(time.Date(2026, time.March, 10, h, 0, 0, 0, time.UTC))
}

func onSymbol(sym string) func(*Trade) {
	return func(t *Trade) { t.Symbol = sym }
}

func tagged(s Strategy) func(*Trade) {
	return func(t *Trade) { t.Strategy = s }
}

func TestBuildSessionPerformance_AllSessionsAlwaysPresent(t *testing.T) {
	rows := BuildSessionPerformance(nil)
	require.Len(t, rows, 3)
	assert.Equal(t, SessionAsia, rows[0].Session)
	assert.Equal(t, SessionLondon, rows[1].Session)
	assert.Equal(t, SessionNewYork, rows[2].Session)
	for _, row := range rows {
		assert.Zero(t, row.Trades)
		assert.Zero(t, row.WinRate)
	}
}

func TestBuildSessionPerformance_BucketsByEntryHour(t *testing.T) {
	trades := []Trade{
		tr(100, atHour(3)),   // asia
		tr(-40, atHour(7)),   // asia
		tr(200, atHour(12)),  // london
		tr(-10, atHour(20)),  // new-york
	}

	rows := BuildSessionPerformance(trades)
	require.Len(t, rows, 3)

	asia := rows[0]
	assert.Equal(t, 2, asia.Trades)
	assert.InDelta(t, 60.0, asia.PnL, 1e-9)
	assert.InDelta(t, 50.0, asia.WinRate, 1e-9)
	assert.InDelta(t, 100.0, asia.AvgWin, 1e-9)
	assert.InDelta(t, 40.0, asia.AvgLoss, 1e-9)

	assert.Equal(t, 1, rows[1].Trades)
	assert.InDelta(t, 100.0, rows[1].WinRate, 1e-9)
	assert.Equal(t, 1, rows[2].Trades)
	assert.Zero(t, rows[2].WinRate)
}

func TestBuildSymbolPerformance_SortedByPnLDescending(t *testing.T) {
	trades := []Trade{
		tr(50, onSymbol("ETH-PERP")),
		tr(300, onSymbol("SOL-PERP")),
		tr(-100, onSymbol("BTC-PERP")),
		tr(-50, onSymbol("SOL-PERP")),
	}

	rows := BuildSymbolPerformance(trades)
	require.Len(t, rows, 3)
	assert.Equal(t, "SOL-PERP", rows[0].Symbol)
	assert.Equal(t, "ETH-PERP", rows[1].Symbol)
	assert.Equal(t, "BTC-PERP", rows[2].Symbol)

	sol := rows[0]
	assert.Equal(t, 2, sol.Trades)
	assert.InDelta(t, 250.0, sol.PnL, 1e-9)
	assert.InDelta(t, 50.0, sol.WinRate, 1e-9)
	assert.InDelta(t, 2000.0, sol.Volume, 1e-9)
	assert.InDelta(t, 60.0, sol.AvgHoldTime, 1e-9)
}

func TestBuildSymbolPerformance_Empty(t *testing.T) {
	assert.Empty(t, BuildSymbolPerformance(nil))
}

func TestBuildStrategyPerformance_OmitsEmptyTags(t *testing.T) {
	trades := []Trade{
		tr(100, tagged(StrategyScalp)),
		tr(-20, tagged(StrategyScalp)),
		tr(50, tagged(StrategyBreakout)),
		tr(999), // untagged, counted nowhere
	}

	rows := BuildStrategyPerformance(trades)
	require.Len(t, rows, 2)

	// Canonical strategy order, not PnL order.
	assert.Equal(t, StrategyScalp, rows[0].Strategy)
	assert.Equal(t, StrategyBreakout, rows[1].Strategy)

	assert.Equal(t, 2, rows[0].Trades)
	assert.InDelta(t, 80.0, rows[0].PnL, 1e-9)
	assert.InDelta(t, 50.0, rows[0].WinRate, 1e-9)
	assert.InDelta(t, 60.0, rows[0].AvgDuration, 1e-9)
}

func TestBuildOrderTypePerformance_SplitsMarketAndLimit(t *testing.T) {
	trades := []Trade{
		tr(100),
		tr(-50),
		tr(200, limit),
	}

	perf := BuildOrderTypePerformance(trades)

	assert.Equal(t, 2, perf.Market.Trades)
	assert.InDelta(t, 50.0, perf.Market.PnL, 1e-9)
	assert.InDelta(t, 50.0, perf.Market.WinRate, 1e-9)
	assert.InDelta(t, 0.5, perf.Market.AvgFee, 1e-9)

	assert.Equal(t, 1, perf.Limit.Trades)
	assert.InDelta(t, 100.0, perf.Limit.WinRate, 1e-9)
}

func TestBuildDirectionPerformance_SplitsLongAndShort(t *testing.T) {
	trades := []Trade{
		tr(100),
		tr(-50, short),
		tr(25, short),
	}

	perf := BuildDirectionPerformance(trades)

	assert.Equal(t, 1, perf.Long.Trades)
	assert.InDelta(t, 100.0, perf.Long.WinRate, 1e-9)
	assert.Equal(t, 2, perf.Short.Trades)
	assert.InDelta(t, -25.0, perf.Short.PnL, 1e-9)
	assert.InDelta(t, 50.0, perf.Short.WinRate, 1e-9)
}

func TestBuildHourlyHeatmap_DenseGrid(t *testing.T) {
	cells := BuildHourlyHeatmap(nil)
	require.Len(t, cells, 168, "all 7x24 cells present even with no trades")

	// Row-major: day advances every 24 cells, hour cycles within.
	assert.Equal(t, 0, cells[0].Day)
	assert.Equal(t, 0, cells[0].Hour)
	assert.Equal(t, 0, cells[23].Day)
	assert.Equal(t, 23, cells[23].Hour)
	assert.Equal(t, 1, cells[24].Day)
	assert.Equal(t, 6, cells[167].Day)
	assert.Equal(t, 23, cells[167].Hour)
}

func TestBuildHourlyHeatmap_BucketsByEntryWeekdayAndHour(t *testing.T) {
	// 2026-03-10 is a Tuesday (weekday 2).
	trades := []Trade{
		tr(100, atHour(14)),
		tr(-30, atHour(14)),
	}

	cells := BuildHourlyHeatmap(trades)
	cell := cells[2*24+14]
	assert.Equal(t, 2, cell.Day)
	assert.Equal(t, 14, cell.Hour)
	assert.Equal(t, 2, cell.Trades)
	assert.InDelta(t, 70.0, cell.PnL, 1e-9)

	total := 0
	for _, c := range cells {
		total += c.Trades
	}
	assert.Equal(t, 2, total)
}

func TestBuildFeeBreakdown_AbsoluteFundingAscendingDates(t *testing.T) {
	withFees := func(items ...FeeItem) func(*Trade) {
		return func(t *Trade) { t.FeeBreakdown = items }
	}

	trades := []Trade{
		tr(10, onDay(day(2026, time.March, 5)), withFees(
			FeeItem{Type: FeeMaker, Amount: 0.2},
			FeeItem{Type: FeeFunding, Amount: -0.1},
		)),
		tr(10, onDay(day(2026, time.March, 2)), withFees(
			FeeItem{Type: FeeTaker, Amount: 0.5},
		)),
	}

	rows := BuildFeeBreakdown(trades)
	require.Len(t, rows, 2)

	assert.Equal(t, "2026-03-02", rows[0].Date)
	assert.InDelta(t, 0.5, rows[0].Taker, 1e-9)
	assert.InDelta(t, 0.5, rows[0].Total, 1e-9)

	assert.Equal(t, "2026-03-05", rows[1].Date)
	assert.InDelta(t, 0.2, rows[1].Maker, 1e-9)
	assert.InDelta(t, 0.1, rows[1].Funding, 1e-9, "negative funding folds in as magnitude")
	assert.InDelta(t, 0.3, rows[1].Total, 1e-9)
}

func TestSessionForHour(t *testing.T) {
	assert.Equal(t, SessionAsia, SessionForHour(0))
	assert.Equal(t, SessionAsia, SessionForHour(7))
	assert.Equal(t, SessionLondon, SessionForHour(8))
	assert.Equal(t, SessionLondon, SessionForHour(15))
	assert.Equal(t, SessionNewYork, SessionForHour(16))
	assert.Equal(t, SessionNewYork, SessionForHour(23))
}
