package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deriverse/deriscope/internal/domain"
)

func sampleTrade() domain.Trade {
	entry := time.Date(2026, time.March, 10, 14, 30, 0, 0, time.UTC)
	return domain.Trade{
		ID:         "7xKXtg2C-trade-1",
		Symbol:     "SOL-PERP",
		MarketType: domain.MarketPerp,
		OrderType:  domain.OrderLimit,
		Direction:  domain.DirectionLong,
		EntryPrice: 195.123456789,
		ExitPrice:  201.5,
		Size:       1500,
		Leverage:   5,
		PnL:        9564.81,
		PnLPercent: 3.27,
		Fees:       58.5371,
		EntryTime:  entry,
		ExitTime:   entry.Add(90 * time.Minute),
		Duration:   90,
		Session:    domain.SessionLondon,
		Strategy:   domain.StrategySwing,
		Notes:      "Strategy execution note",
		TxHash:     "5VERYFAKEHASH",
	}
}

func TestTradesCSV_HeaderOnlyForEmptyList(t *testing.T) {
	out := TradesCSV(nil)
	assert.Equal(t, strings.Join(Header, ","), out)
	assert.NotContains(t, out, "\n")
}

func TestTradesCSV_OneLinePerTrade(t *testing.T) {
	trades := []domain.Trade{sampleTrade(), sampleTrade(), sampleTrade()}
	lines := strings.Split(TradesCSV(trades), "\n")
	require.Len(t, lines, len(trades)+1)
	assert.Equal(t, strings.Join(Header, ","), lines[0])
}

func TestTradesCSV_ColumnFormats(t *testing.T) {
	lines := strings.Split(TradesCSV([]domain.Trade{sampleTrade()}), "\n")
	require.Len(t, lines, 2)

	cols := strings.Split(lines[1], ",")
	require.Len(t, cols, len(Header))

	assert.Equal(t, "7xKXtg2C-trade-1", cols[0])
	assert.Equal(t, "SOL-PERP", cols[1])
	assert.Equal(t, "perp", cols[2])
	assert.Equal(t, "limit", cols[3])
	assert.Equal(t, "long", cols[4])
	assert.Equal(t, "195.123457", cols[5], "prices carry 6 decimals")
	assert.Equal(t, "201.500000", cols[6])
	assert.Equal(t, "1500", cols[7])
	assert.Equal(t, "5", cols[8])
	assert.Equal(t, "9564.81", cols[9])
	assert.Equal(t, "3.27", cols[10])
	assert.Equal(t, "58.5371", cols[11], "fees carry 4 decimals")
	assert.Equal(t, "2026-03-10T14:30:00Z", cols[12])
	assert.Equal(t, "2026-03-10T16:00:00Z", cols[13])
	assert.Equal(t, "90", cols[14])
	assert.Equal(t, "london", cols[15])
	assert.Equal(t, "swing", cols[16])
	assert.Equal(t, "Strategy execution note", cols[17])
	assert.Equal(t, "5VERYFAKEHASH", cols[18])
}

func TestTradesCSV_OptionalFieldsRenderEmpty(t *testing.T) {
	trade := sampleTrade()
	trade.Strategy = ""
	trade.Notes = ""

	lines := strings.Split(TradesCSV([]domain.Trade{trade}), "\n")
	cols := strings.Split(lines[1], ",")
	require.Len(t, cols, len(Header))
	assert.Empty(t, cols[16])
	assert.Empty(t, cols[17])
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, time.August, 28, 3, 0, 0, 0, time.UTC)

	assert.Equal(t, "deriverse-trades-7xKXtg2C-2026-08-28.csv",
		Filename("7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU", now))
	assert.Equal(t, "deriverse-trades-short-2026-08-28.csv",
		Filename("short", now))
}
