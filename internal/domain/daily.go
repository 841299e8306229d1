package domain

import (
	"sort"
	"time"
)

// StartingEquity is the fixed baseline the equity curve starts from.
const StartingEquity = 10000.0

// DailyPerformance is one calendar day of trading results plus the running
// equity curve state at the end of that day.
type DailyPerformance struct {
	Date          string  `json:"date"` // ISO date (YYYY-MM-DD)
	PnL           float64 `json:"pnl"`
	CumulativePnL float64 `json:"cumulativePnl"`
	Trades        int     `json:"trades"`
	Volume        float64 `json:"volume"`
	Fees          float64 `json:"fees"`
	WinRate       float64 `json:"winRate"`
	Drawdown      float64 `json:"drawdown"` // percent off the equity peak
	Equity        float64 `json:"equity"`
}

// BuildDailyPerformance groups trades by exit date and walks the dates in
// chronological order, maintaining cumulative PnL, a running equity level
// seeded at StartingEquity, and the peak equity reached so far. Drawdown on
// a day is (peak - equity) / peak * 100, zero whenever the day sets a new
// peak.
func BuildDailyPerformance(trades []Trade) []DailyPerformance {
	byDate := make(map[string][]Trade)
	for _, t := range trades {
		d := t.ExitTime.UTC().Format(time.DateOnly)
		byDate[d] = append(byDate[d], t)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates) // ISO dates: lexicographic == chronological

	var (
		cumulative float64
		equity     = StartingEquity
		peak       = StartingEquity
	)

	out := make([]DailyPerformance, 0, len(dates))
	for _, d := range dates {
		day := byDate[d]

		var pnl, volume, fees float64
		wins := 0
		for _, t := range day {
			pnl += t.PnL
			volume += t.Notional()
			fees += t.Fees
			if t.PnL > 0 {
				wins++
			}
		}

		cumulative += pnl
		equity += pnl
		if equity > peak {
			peak = equity
		}

		out = append(out, DailyPerformance{
			Date:          d,
			PnL:           pnl,
			CumulativePnL: cumulative,
			Trades:        len(day),
			Volume:        volume,
			Fees:          fees,
			WinRate:       float64(wins) / float64(len(day)) * 100,
			Drawdown:      (peak - equity) / peak * 100,
			Equity:        equity,
		})
	}

	return out
}
