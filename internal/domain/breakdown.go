package domain

import (
	"math"
	"sort"
	"time"
)

// SessionPerformance aggregates trades entered during one trading session.
type SessionPerformance struct {
	Session Session `json:"session"`
	PnL     float64 `json:"pnl"`
	Trades  int     `json:"trades"`
	WinRate float64 `json:"winRate"`
	AvgWin  float64 `json:"avgWin"`
	AvgLoss float64 `json:"avgLoss"` // positive magnitude
}

// SymbolPerformance aggregates trades on one symbol.
type SymbolPerformance struct {
	Symbol      string  `json:"symbol"`
	PnL         float64 `json:"pnl"`
	Trades      int     `json:"trades"`
	WinRate     float64 `json:"winRate"`
	Volume      float64 `json:"volume"`
	AvgHoldTime float64 `json:"avgHoldTime"` // minutes
}

// StrategyPerformance aggregates trades carrying one strategy tag.
type StrategyPerformance struct {
	Strategy    Strategy `json:"strategy"`
	Trades      int      `json:"trades"`
	PnL         float64  `json:"pnl"`
	WinRate     float64  `json:"winRate"`
	AvgDuration float64  `json:"avgDuration"` // minutes
}

// OrderTypeStats aggregates trades entered with one order type.
type OrderTypeStats struct {
	Trades  int     `json:"trades"`
	PnL     float64 `json:"pnl"`
	WinRate float64 `json:"winRate"`
	AvgFee  float64 `json:"avgFee"`
}

// OrderTypePerformance splits results between market and limit entries.
type OrderTypePerformance struct {
	Market OrderTypeStats `json:"market"`
	Limit  OrderTypeStats `json:"limit"`
}

// DirectionStats aggregates trades taken in one direction.
type DirectionStats struct {
	Trades  int     `json:"trades"`
	PnL     float64 `json:"pnl"`
	WinRate float64 `json:"winRate"`
}

// DirectionPerformance splits results between long and short positions.
type DirectionPerformance struct {
	Long  DirectionStats `json:"long"`
	Short DirectionStats `json:"short"`
}

// HeatmapCell is one day-of-week x hour-of-day bucket of entry activity.
// Day follows time.Weekday numbering (Sunday = 0).
type HeatmapCell struct {
	Hour   int     `json:"hour"`
	Day    int     `json:"day"`
	PnL    float64 `json:"pnl"`
	Trades int     `json:"trades"`
}

// FeeBreakdownRow is one exit date's fees split by fee type. Funding fees
// are folded in as absolute values.
type FeeBreakdownRow struct {
	Date    string  `json:"date"`
	Taker   float64 `json:"taker"`
	Maker   float64 `json:"maker"`
	Funding float64 `json:"funding"`
	Total   float64 `json:"total"`
}

// BuildSessionPerformance returns one row per trading session, in the fixed
// asia/london/new-york order. Sessions with no trades are emitted with zero
// stats rather than omitted.
func BuildSessionPerformance(trades []Trade) []SessionPerformance {
	sessions := []Session{SessionAsia, SessionLondon, SessionNewYork}

	out := make([]SessionPerformance, 0, len(sessions))
	for _, s := range sessions {
		var row SessionPerformance
		row.Session = s

		var winSum, lossSum float64
		var wins, losses int
		for _, t := range trades {
			if t.Session != s {
				continue
			}
			row.Trades++
			row.PnL += t.PnL
			if t.PnL > 0 {
				wins++
				winSum += t.PnL
			} else if t.PnL < 0 {
				losses++
				lossSum += t.PnL
			}
		}

		if row.Trades > 0 {
			row.WinRate = float64(wins) / float64(row.Trades) * 100
		}
		if wins > 0 {
			row.AvgWin = winSum / float64(wins)
		}
		if losses > 0 {
			row.AvgLoss = math.Abs(lossSum / float64(losses))
		}
		out = append(out, row)
	}

	return out
}

// BuildSymbolPerformance groups trades by symbol and sorts the result by
// PnL descending.
func BuildSymbolPerformance(trades []Trade) []SymbolPerformance {
	type acc struct {
		row      SymbolPerformance
		wins     int
		duration float64
	}

	groups := make(map[string]*acc)
	order := make([]string, 0)
	for _, t := range trades {
		a, ok := groups[t.Symbol]
		if !ok {
			a = &acc{row: SymbolPerformance{Symbol: t.Symbol}}
			groups[t.Symbol] = a
			order = append(order, t.Symbol)
		}
		a.row.Trades++
		a.row.PnL += t.PnL
		a.row.Volume += t.Notional()
		a.duration += float64(t.Duration)
		if t.PnL > 0 {
			a.wins++
		}
	}

	out := make([]SymbolPerformance, 0, len(order))
	for _, sym := range order {
		a := groups[sym]
		a.row.WinRate = float64(a.wins) / float64(a.row.Trades) * 100
		a.row.AvgHoldTime = a.duration / float64(a.row.Trades)
		out = append(out, a.row)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].PnL > out[j].PnL })
	return out
}

// BuildStrategyPerformance returns one row per known strategy tag, omitting
// tags with no trades. Untagged trades are not counted anywhere.
func BuildStrategyPerformance(trades []Trade) []StrategyPerformance {
	out := make([]StrategyPerformance, 0, len(Strategies))
	for _, s := range Strategies {
		var row StrategyPerformance
		row.Strategy = s

		var wins int
		var duration float64
		for _, t := range trades {
			if t.Strategy != s {
				continue
			}
			row.Trades++
			row.PnL += t.PnL
			duration += float64(t.Duration)
			if t.PnL > 0 {
				wins++
			}
		}

		if row.Trades == 0 {
			continue
		}
		row.WinRate = float64(wins) / float64(row.Trades) * 100
		row.AvgDuration = duration / float64(row.Trades)
		out = append(out, row)
	}

	return out
}

// BuildOrderTypePerformance splits trades between market and limit entries.
func BuildOrderTypePerformance(trades []Trade) OrderTypePerformance {
	stats := func(want OrderType) OrderTypeStats {
		var s OrderTypeStats
		var wins int
		var feeSum float64
		for _, t := range trades {
			if t.OrderType != want {
				continue
			}
			s.Trades++
			s.PnL += t.PnL
			feeSum += t.Fees
			if t.PnL > 0 {
				wins++
			}
		}
		if s.Trades > 0 {
			s.WinRate = float64(wins) / float64(s.Trades) * 100
			s.AvgFee = feeSum / float64(s.Trades)
		}
		return s
	}

	return OrderTypePerformance{
		Market: stats(OrderMarket),
		Limit:  stats(OrderLimit),
	}
}

// BuildDirectionPerformance splits trades between long and short positions.
func BuildDirectionPerformance(trades []Trade) DirectionPerformance {
	stats := func(want Direction) DirectionStats {
		var s DirectionStats
		var wins int
		for _, t := range trades {
			if t.Direction != want {
				continue
			}
			s.Trades++
			s.PnL += t.PnL
			if t.PnL > 0 {
				wins++
			}
		}
		if s.Trades > 0 {
			s.WinRate = float64(wins) / float64(s.Trades) * 100
		}
		return s
	}

	return DirectionPerformance{
		Long:  stats(DirectionLong),
		Short: stats(DirectionShort),
	}
}

// BuildHourlyHeatmap buckets trades by entry day-of-week and hour into a
// dense 7x24 grid. All 168 cells are always present, zero-valued when no
// trade entered in that slot.
func BuildHourlyHeatmap(trades []Trade) []HeatmapCell {
	var pnl [7][24]float64
	var count [7][24]int
	for _, t := range trades {
		entry := t.EntryTime.UTC()
		d := int(entry.Weekday())
		h := entry.Hour()
		pnl[d][h] += t.PnL
		count[d][h]++
	}

	out := make([]HeatmapCell, 0, 7*24)
	for day := 0; day < 7; day++ {
		for hour := 0; hour < 24; hour++ {
			out = append(out, HeatmapCell{
				Hour:   hour,
				Day:    day,
				PnL:    pnl[day][hour],
				Trades: count[day][hour],
			})
		}
	}
	return out
}

// BuildFeeBreakdown groups fee line items by exit date, summing taker,
// maker, and funding amounts as absolute values, and returns rows sorted by
// ascending date.
func BuildFeeBreakdown(trades []Trade) []FeeBreakdownRow {
	type fees struct{ taker, maker, funding float64 }

	byDate := make(map[string]*fees)
	for _, t := range trades {
		d := t.ExitTime.UTC().Format(time.DateOnly)
		f, ok := byDate[d]
		if !ok {
			f = &fees{}
			byDate[d] = f
		}
		for _, item := range t.FeeBreakdown {
			amount := math.Abs(item.Amount)
			switch item.Type {
			case FeeTaker:
				f.taker += amount
			case FeeMaker:
				f.maker += amount
			case FeeFunding:
				f.funding += amount
			}
		}
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]FeeBreakdownRow, 0, len(dates))
	for _, d := range dates {
		f := byDate[d]
		out = append(out, FeeBreakdownRow{
			Date:    d,
			Taker:   f.taker,
			Maker:   f.maker,
			Funding: f.funding,
			Total:   f.taker + f.maker + f.funding,
		})
	}
	return out
}
