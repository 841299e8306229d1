package domain

// Metrics summarizes a trade list into headline performance statistics.
// Every field derives from the trade list alone; an empty list yields the
// zero record with a neutral long/short ratio of 1.
type Metrics struct {
	TotalPnL        float64 `json:"totalPnl"`
	TotalPnLPercent float64 `json:"totalPnlPercent"` // relative to total volume
	WinRate         float64 `json:"winRate"`         // percent
	TotalTrades     int     `json:"totalTrades"`
	TotalVolume     float64 `json:"totalVolume"` // sum of notionals
	TotalFees       float64 `json:"totalFees"`
	LongShortRatio  float64 `json:"longShortRatio"`
	AvgDuration     float64 `json:"avgDuration"` // minutes
	AvgWin          float64 `json:"avgWin"`
	AvgLoss         float64 `json:"avgLoss"` // stored as positive magnitude
	LargestWin      float64 `json:"largestWin"`
	LargestLoss     float64 `json:"largestLoss"` // negative
	ProfitFactor    float64 `json:"profitFactor"`
	RiskRewardRatio float64 `json:"riskRewardRatio"`
}

// AggregateMetrics reduces a trade list to its Metrics record.
//
/// Conventions for degenerate inputs: an empty list returns the zero record
// with LongShortRatio = 1; with no losing trades ProfitFactor and
// RiskRewardRatio are 0 rather than infinity; with no short trades the
// long/short ratio degrades to the long count alone.
//
// ProfitFactor and RiskRewardRatio intentionally share one computation
// (avgWin / avgLoss). Upstream consumers display them as separate concepts,
// so they stay separate fields until their semantics diverge.
func AggregateMetrics(trades []Trade) Metrics {
	if len(trades) == 0 {
		return Metrics{LongShortRatio: 1}
	}

	var (
		totalPnL, totalVolume, totalFees   float64
		totalDuration                      float64
		winSum, lossSum                    float64
		winCount, lossCount                int
		longCount, shortCount              int
		largestWin, largestLoss            float64
	)

	for _, t := range trades {
		totalPnL += t.PnL
		totalVolume += t.Notional()
		totalFees += t.Fees
		totalDuration += float64(t.Duration)

		switch {
		case t.PnL > 0:
			winCount++
			winSum += t.PnL
			if t.PnL > largestWin {
				largestWin = t.PnL
			}
		case t.PnL < 0:
			lossCount++
			lossSum += t.PnL
			if t.PnL < largestLoss {
				largestLoss = t.PnL
			}
		}

		if t.Direction == DirectionLong {
			longCount++
		} else {
			shortCount++
		}
	}

	m := Metrics{
		TotalPnL:    totalPnL,
		TotalTrades: len(trades),
		TotalVolume: totalVolume,
		TotalFees:   totalFees,
		WinRate:     float64(winCount) / float64(len(trades)) * 100,
		AvgDuration: totalDuration / float64(len(trades)),
		LargestWin:  largestWin,
		LargestLoss: largestLoss,
	}

	if totalVolume > 0 {
		m.TotalPnLPercent = totalPnL / totalVolume * 100
	}

	if winCount > 0 {
		m.AvgWin = winSum / float64(winCount)
	}
	if lossCount > 0 {
		m.AvgLoss = -lossSum / float64(lossCount)
	}

	if shortCount > 0 {
		m.LongShortRatio = float64(longCount) / float64(shortCount)
	} else {
		m.LongShortRatio = float64(longCount)
	}

	if m.AvgLoss > 0 {
		ratio := m.AvgWin / m.AvgLoss
		m.ProfitFactor = ratio
		m.RiskRewardRatio = ratio
	}

	return m
}
