package domain

import "time"

// MarketType identifies the instrument class a trade was executed on.
type MarketType string

const (
	MarketSpot    MarketType = "spot"
	MarketPerp    MarketType = "perp"
	MarketOptions MarketType = "options"
)

// OrderType identifies how the position was entered.
type OrderType string

const (
	OrderMarket OrderType = "market"
	OrderLimit  OrderType = "limit"
)

// Direction identifies the side of a position.
type Direction string

const (
	DirectionLong  Direction = "long"
	DirectionShort Direction = "short"
)

// Session is one of three 8-hour UTC trading windows, bucketed by entry hour.
type Session string

const (
	SessionAsia    Session = "asia"
	SessionLondon  Session = "london"
	SessionNewYork Session = "new-york"
)

// SessionForHour maps a UTC hour of day to its trading session:
// [0,8) asia, [8,16) london, [16,24) new-york.
func SessionForHour(hour int) Session {
	switch {
	case hour < 8:
		return SessionAsia
	case hour < 16:
		return SessionLondon
	default:
		return SessionNewYork
	}
}

// FeeType classifies a fee line item on a trade.
type FeeType string

const (
	FeeTaker   FeeType = "taker"
	FeeMaker   FeeType = "maker"
	FeeFunding FeeType = "funding"
)

// Strategy is an optional tag a trader assigns to a position.
type Strategy string

const (
	StrategyScalp    Strategy = "scalp"
	StrategySwing    Strategy = "swing"
	StrategyHedge    Strategy = "hedge"
	StrategyDCA      Strategy = "dca"
	StrategyBreakout Strategy = "breakout"
)

// Strategies lists all known strategy tags in canonical order.
var Strategies = []Strategy{StrategyScalp, StrategySwing, StrategyHedge, StrategyDCA, StrategyBreakout}

// FeeItem is one component of a trade's total fees. Funding fees may be
// signed before being folded into the absolute total.
type FeeItem struct {
	Type   FeeType `json:"type"`
	Amount float64 `json:"amount"`
}

// Trade is one closed position. Exit time always equals entry time plus
// Duration minutes, and PnL sign is consistent with direction and price
// movement.
type Trade struct {
	ID            string     `json:"id"`
	WalletAddress string     `json:"walletAddress"`
	Symbol        string     `json:"symbol"`
	MarketType    MarketType `json:"marketType"`
	OrderType     OrderType  `json:"orderType"`
	Direction     Direction  `json:"direction"`
	EntryPrice    float64    `json:"entryPrice"`
	ExitPrice     float64    `json:"exitPrice"`
	Size          float64    `json:"size"`
	Leverage      int        `json:"leverage"`
	PnL           float64    `json:"pnl"`
	PnLPercent    float64    `json:"pnlPercent"`
	Fees          float64    `json:"fees"`
	FeeBreakdown  []FeeItem  `json:"feeBreakdown"`
	EntryTime     time.Time  `json:"entryTime"`
	ExitTime      time.Time  `json:"exitTime"`
	Duration      int        `json:"duration"` // minutes
	Session       Session    `json:"session"`
	Strategy      Strategy   `json:"strategy,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	TxHash        string     `json:"txHash"`
}

// Notional returns the dollar exposure of the trade (size x entry price).
func (t Trade) Notional() float64 {
	return t.Size * t.EntryPrice
}

// TokenBalance is one SPL token holding inside a wallet portfolio.
type TokenBalance struct {
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Mint     string  `json:"mint"`
	Balance  float64 `json:"balance"`
	USDValue float64 `json:"usdValue"`
	Decimals int     `json:"decimals"`
	LogoURI  string  `json:"logoUri,omitempty"`
}

// WalletPortfolio is a point-in-time snapshot of a wallet's holdings.
// TotalUSDValue always equals SOLUSDValue plus the sum of token USD values.
type WalletPortfolio struct {
	Address       string         `json:"address"`
	SOLBalance    float64        `json:"solBalance"`
	SOLUSDValue   float64        `json:"solUsdValue"`
	Tokens        []TokenBalance `json:"tokens"`
	TotalUSDValue float64        `json:"totalUsdValue"`
	LastUpdated   time.Time      `json:"lastUpdated"`
}

// TradableAsset is one market listed on the venue.
type TradableAsset struct {
	Symbol     string     `json:"symbol"`
	Name       string     `json:"name"`
	MarketType MarketType `json:"marketType"`
	Price      float64    `json:"price"`
	Change24h  float64    `json:"change24h"`
	Volume24h  float64    `json:"volume24h"`
	LogoURI    string     `json:"logoUri,omitempty"`
}
