package domain

import (
	"fmt"
	"strings"
)

// BuildInsights derives short human-readable observations from the
// breakdowns of a trade list. Each insight is gated: the best-session and
// best-symbol lines require positive PnL, the directional line requires one
// side's win rate to beat the other by more than 5 percentage points, and
// the order-type line requires limit entries to beat market entries by more
// than 3 points. Emission order is fixed: session, symbol, direction,
// order type. An empty result is valid.
func BuildInsights(trades []Trade) []string {
	insights := make([]string, 0, 4)

	sessions := BuildSessionPerformance(trades)
	best := sessions[0]
	for _, s := range sessions[1:] {
		if s.PnL > best.PnL {
			best = s
		}
	}
	if best.PnL > 0 {
		insights = append(insights, fmt.Sprintf(
			"You perform best during the %s session with %.1f%% win rate",
			strings.ReplaceAll(string(best.Session), "-", " "), best.WinRate))
	}

	symbols := BuildSymbolPerformance(trades)
	if len(symbols) > 0 && symbols[0].PnL > 0 {
		insights = append(insights, fmt.Sprintf(
			"%s is your most profitable asset with $%.2f total PnL",
			symbols[0].Symbol, symbols[0].PnL))
	}

	directions := BuildDirectionPerformance(trades)
	if directions.Long.WinRate > directions.Short.WinRate+5 {
		insights = append(insights, "Your long trades outperform shorts - consider focusing on bullish setups")
	} else if directions.Short.WinRate > directions.Long.WinRate+5 {
		insights = append(insights, "Your short trades outperform longs - you have good timing on reversals")
	}

	orderTypes := BuildOrderTypePerformance(trades)
	if orderTypes.Limit.WinRate > orderTypes.Market.WinRate+3 {
		insights = append(insights, "Limit orders are more profitable - patience in entries is paying off")
	}

	return insights
}
