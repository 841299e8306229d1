package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestBuildDailyPerformance_Empty(t *testing.T) {
	assert.Empty(t, BuildDailyPerformance(nil))
}

func TestBuildDailyPerformance_ChronologicalWithCumulativePnL(t *testing.T) {
	trades := []Trade{
		tr(-200, onDay(day(2026, time.March, 3))),
		tr(500, onDay(day(2026, time.March, 1))),
		tr(100, onDay(day(2026, time.March, 2))),
		tr(-300, onDay(day(2026, time.March, 2))),
	}

	days := BuildDailyPerformance(trades)
	require.Len(t, days, 3)

	assert.Equal(t, "2026-03-01", days[0].Date)
	assert.Equal(t, "2026-03-02", days[1].Date)
	assert.Equal(t, "2026-03-03", days[2].Date)

	assert.InDelta(t, 500.0, days[0].PnL, 1e-9)
	assert.InDelta(t, -200.0, days[1].PnL, 1e-9)
	assert.InDelta(t, -200.0, days[2].PnL, 1e-9)

	assert.InDelta(t, 500.0, days[0].CumulativePnL, 1e-9)
	assert.InDelta(t, 300.0, days[1].CumulativePnL, 1e-9)
	assert.InDelta(t, 100.0, days[2].CumulativePnL, 1e-9)

	assert.Equal(t, 1, days[0].Trades)
	assert.Equal(t, 2, days[1].Trades)
	assert.InDelta(t, 50.0, days[1].WinRate, 1e-9)
}

func TestBuildDailyPerformance_EquityAndDrawdown(t *testing.T) {
	trades := []Trade{
		tr(500, onDay(day(2026, time.March, 1))),
		tr(-525, onDay(day(2026, time.March, 2))),
		tr(1050, onDay(day(2026, time.March, 3))),
	}

	days := BuildDailyPerformance(trades)
	require.Len(t, days, 3)

	// Day 1: equity 10500, new peak, no drawdown.
	assert.InDelta(t, 10500.0, days[0].Equity, 1e-9)
	assert.Zero(t, days[0].Drawdown)

	// Day 2: equity 9975, 5% off the 10500 peak.
	assert.InDelta(t, 9975.0, days[1].Equity, 1e-9)
	assert.InDelta(t, 5.0, days[1].Drawdown, 1e-9)

	// Day 3: equity 11025, new peak, drawdown resets to zero.
	assert.InDelta(t, 11025.0, days[2].Equity, 1e-9)
	assert.Zero(t, days[2].Drawdown)
}

func TestBuildDailyPerformance_GroupsByUTCExitDate(t *testing.T) {
	// 23:30 UTC entry with a 60-minute hold exits the next day.
	lateEntry := time.Date(2026, time.March, 1, 23, 30, 0, 0, time.UTC)
	trades := []Trade{tr(100, onDay(lateEntry))}

	days := BuildDailyPerformance(trades)
	require.Len(t, days, 1)
	assert.Equal(t, "2026-03-02", days[0].Date)
}
