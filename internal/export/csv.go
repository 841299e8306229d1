// Package export serializes trade lists for download.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/deriverse/deriscope/internal/domain"
)

// Header is the fixed 19-column CSV header, in journal column order.
var Header = []string{
	"ID", "Symbol", "Market Type", "Order Type", "Direction",
	"Entry Price", "Exit Price", "Size", "Leverage", "PnL", "PnL %",
	"Fees", "Entry Time", "Exit Time", "Duration (min)", "Session",
	"Strategy", "Notes", "Tx Hash",
}

// TradesCSV renders a trade list as a header row plus one comma-joined row
// per trade, newline separated. Prices carry 6 decimals, PnL figures 2,
// fees 4; timestamps are RFC 3339; strategy and notes render empty when
// unset.
//
// Fields are not quoted or escaped, matching the journal's download format:
// a note containing a comma will shift columns. Keep notes comma-free or
// move to a quoting encoder if the format ever needs to be strict.
func TradesCSV(trades []domain.Trade) string {
	var b strings.Builder
	b.WriteString(strings.Join(Header, ","))

	for _, t := range trades {
		row := []string{
			t.ID,
			t.Symbol,
			string(t.MarketType),
			string(t.OrderType),
			string(t.Direction),
			fmt.Sprintf("%.6f", t.EntryPrice),
			fmt.Sprintf("%.6f", t.ExitPrice),
			strconv.Itoa(int(t.Size)),
			strconv.Itoa(t.Leverage),
			fmt.Sprintf("%.2f", t.PnL),
			fmt.Sprintf("%.2f", t.PnLPercent),
			fmt.Sprintf("%.4f", t.Fees),
			t.EntryTime.UTC().Format(time.RFC3339),
			t.ExitTime.UTC().Format(time.RFC3339),
			strconv.Itoa(t.Duration),
			string(t.Session),
			string(t.Strategy),
			t.Notes,
			t.TxHash,
		}
		b.WriteByte('\n')
		b.WriteString(strings.Join(row, ","))
	}

	return b.String()
}

// Filename derives the suggested download name for a wallet's export, e.g.
// deriverse-trades-AbC12345-2026-08-28.csv.
func Filename(address string, now time.Time) string {
	prefix := address
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return fmt.Sprintf("deriverse-trades-%s-%s.csv", prefix, now.UTC().Format(time.DateOnly))
}
