package synth

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/deriverse/deriscope/internal/domain"
)

// DefaultTradeCount is how many trades a wallet history contains when the
// caller does not ask for a specific count.
const DefaultTradeCount = 250

const txHashAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
const txHashLen = 88

// Synthesizer produces deterministic per-wallet trade histories and
// portfolio snapshots. It is a stand-in for a protocol trade indexer:
// the same address always yields the same history, which is what makes the
// generated analytics stable across refreshes.
//
// All reference data lives in the Catalog handed to New; the synthesizer
// itself holds no mutable state and is safe for concurrent use.
type Synthesizer struct {
	catalog Catalog
	now     func() time.Time
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithClock overrides the time source. Histories are anchored to "now", so
// tests inject a fixed clock to make full outputs reproducible.
func WithClock(now func() time.Time) Option {
	return func(s *Synthesizer) { s.now = now }
}

// New builds a Synthesizer over the given catalog.
func New(catalog Catalog, opts ...Option) *Synthesizer {
	s := &Synthesizer{catalog: catalog, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SymbolRoot strips the venue suffix ("-PERP" or "/USDC") from a symbol,
// leaving the underlying asset root.
func SymbolRoot(symbol string) string {
	symbol = strings.ReplaceAll(symbol, "-PERP", "")
	return strings.ReplaceAll(symbol, "/USDC", "")
}

// Trades generates a wallet's trade history: count draws from the stream
// seeded with address+"trades", sorted most recent exit first.
//
// When symbolFilter is non-empty, draws whose symbol does not contain the
// filter root are discarded without replacement, so a filtered history may
// hold fewer than count trades. Callers relying on exact counts must filter
// after generation instead.
func (s *Synthesizer) Trades(address, symbolFilter string, count int) []domain.Trade {
	if count <= 0 {
		count = DefaultTradeCount
	}

	rand := NewRand(address + "trades")
	now := s.now().UTC()
	filterRoot := SymbolRoot(symbolFilter)

	trades := make([]domain.Trade, 0, count)
	for i := 0; i < count; i++ {
		isPerp := rand.Float64() > 0.3
		isOptions := !isPerp && rand.Float64() > 0.7

		marketType := domain.MarketSpot
		var symbol string
		if isPerp {
			marketType = domain.MarketPerp
			symbol = Pick(rand, s.catalog.PerpSymbols)
		} else {
			if isOptions {
				marketType = domain.MarketOptions
			}
			symbol = Pick(rand, s.catalog.SpotSymbols)
		}

		if symbolFilter != "" && !strings.Contains(symbol, filterRoot) {
			continue
		}

		direction := domain.DirectionShort
		if rand.Float64() > 0.45 {
			direction = domain.DirectionLong
		}
		orderType := domain.OrderMarket
		if rand.Float64() > 0.4 {
			orderType = domain.OrderLimit
		}

		leverage := 1
		if marketType == domain.MarketPerp {
			leverage = rand.Intn(19) + 2
		}

		basePrice := s.catalog.BasePriceFor(symbol)
		entryPrice := basePrice * (1 + (rand.Float64()-0.5)*0.1)
		priceMove := (rand.Float64() - 0.45) * 0.08 * basePrice
		exitPrice := entryPrice + priceMove
		if direction == domain.DirectionShort {
			exitPrice = entryPrice - priceMove
		}

		size := float64(rand.Intn(10000) + 100)
		notional := size * entryPrice

		pnlBase := (exitPrice - entryPrice) * size
		if direction == domain.DirectionShort {
			pnlBase = (entryPrice - exitPrice) * size
		}
		pnl := pnlBase * float64(leverage)

		takerFee := notional * s.catalog.TakerFeeRate
		makerFee := notional * s.catalog.MakerFeeRate
		fundingFee := 0.0
		if marketType == domain.MarketPerp {
			fundingFee = notional * s.catalog.FundingFeeRate
			if rand.Float64() <= 0.5 {
				fundingFee = -fundingFee
			}
		}

		var fees float64
		var breakdown []domain.FeeItem
		if orderType == domain.OrderMarket {
			fees = takerFee
			breakdown = []domain.FeeItem{{Type: domain.FeeTaker, Amount: takerFee}}
		} else {
			fees = makerFee + abs(fundingFee)
			breakdown = []domain.FeeItem{{Type: domain.FeeMaker, Amount: makerFee}}
		}
		if fundingFee != 0 {
			breakdown = append(breakdown, domain.FeeItem{Type: domain.FeeFunding, Amount: fundingFee})
		}

		daysAgo := rand.Intn(90)
		intraday := time.Duration(rand.Float64() * 24 * float64(time.Hour))
		entryTime := now.Add(-time.Duration(daysAgo) * 24 * time.Hour).Add(-intraday)
		duration := rand.Intn(480) + 5
		exitTime := entryTime.Add(time.Duration(duration) * time.Minute)

		trade := domain.Trade{
			ID:            fmt.Sprintf("%s-trade-%d", addressPrefix(address), i+1),
			WalletAddress: address,
			Symbol:        symbol,
			MarketType:    marketType,
			OrderType:     orderType,
			Direction:     direction,
			EntryPrice:    entryPrice,
			ExitPrice:     exitPrice,
			Size:          size,
			Leverage:      leverage,
			PnL:           pnl,
			PnLPercent:    pnl / notional * 100,
			Fees:          fees,
			FeeBreakdown:  breakdown,
			EntryTime:     entryTime,
			ExitTime:      exitTime,
			Duration:      duration,
			Session:       domain.SessionForHour(entryTime.Hour()),
		}

		if rand.Float64() > 0.3 {
			trade.Strategy = Pick(rand, domain.Strategies)
		}
		if rand.Float64() > 0.7 {
			trade.Notes = "Strategy execution note"
		}
		trade.TxHash = txHash(rand)

		trades = append(trades, trade)
	}

	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].ExitTime.After(trades[j].ExitTime)
	})
	return trades
}

func txHash(rand *Rand) string {
	var b strings.Builder
	b.Grow(txHashLen)
	for i := 0; i < txHashLen; i++ {
		b.WriteByte(txHashAlphabet[rand.Intn(len(txHashAlphabet))])
	}
	return b.String()
}

func addressPrefix(address string) string {
	if len(address) > 8 {
		return address[:8]
	}
	return address
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
