package domain

// AnalyticsBundle is the full derived view of a trade list: every aggregate
// the dashboard consumes, computed in one pass over the same input. All
// members are recomputed wholesale; none has independent lifecycle.
type AnalyticsBundle struct {
	Trades               []Trade               `json:"trades"`
	Metrics              Metrics               `json:"metrics"`
	DailyPerformance     []DailyPerformance    `json:"dailyPerformance"`
	SessionPerformance   []SessionPerformance  `json:"sessionPerformance"`
	SymbolPerformance    []SymbolPerformance   `json:"symbolPerformance"`
	HourlyHeatmap        []HeatmapCell         `json:"hourlyHeatmap"`
	FeeBreakdown         []FeeBreakdownRow     `json:"feeBreakdown"`
	OrderTypePerformance OrderTypePerformance  `json:"orderTypePerformance"`
	DirectionPerformance DirectionPerformance  `json:"directionPerformance"`
	StrategyPerformance  []StrategyPerformance `json:"strategyPerformance"`
	Insights             []string              `json:"insights"`
}

// BuildAnalyticsBundle runs every aggregator over the trade list and merges
// the results. The input may be empty; every aggregate then carries its
// documented zero/neutral defaults.
func BuildAnalyticsBundle(trades []Trade) AnalyticsBundle {
	if trades == nil {
		trades = []Trade{}
	}
	return AnalyticsBundle{
		Trades:               trades,
		Metrics:              AggregateMetrics(trades),
		DailyPerformance:     BuildDailyPerformance(trades),
		SessionPerformance:   BuildSessionPerformance(trades),
		SymbolPerformance:    BuildSymbolPerformance(trades),
		HourlyHeatmap:        BuildHourlyHeatmap(trades),
		FeeBreakdown:         BuildFeeBreakdown(trades),
		OrderTypePerformance: BuildOrderTypePerformance(trades),
		DirectionPerformance: BuildDirectionPerformance(trades),
		StrategyPerformance:  BuildStrategyPerformance(trades),
		Insights:             BuildInsights(trades),
	}
}
