// Package service wires the synthesizer, the aggregation pipeline, and the
// portfolio sources into the operations the API exposes.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/deriverse/deriscope/internal/cache"
	"github.com/deriverse/deriscope/internal/domain"
	"github.com/deriverse/deriscope/internal/solana"
	"github.com/deriverse/deriscope/internal/synth"
)

// PortfolioSource produces wallet snapshots. The RPC client implements it
// for live data; the synthesizer stands in when no indexer is available.
type PortfolioSource interface {
	Portfolio(ctx context.Context, address string) (*domain.WalletPortfolio, error)
}

// synthPortfolio adapts the synthesizer's pure Portfolio to PortfolioSource.
type synthPortfolio struct {
	s *synth.Synthesizer
}

func (sp synthPortfolio) Portfolio(_ context.Context, address string) (*domain.WalletPortfolio, error) {
	p := sp.s.Portfolio(address)
	return &p, nil
}

// Analytics is the application service behind every API operation. All
// trade analytics are recomputed per request from the deterministic
// synthesizer; the cache only short-circuits identical refreshes.
type Analytics struct {
	synth      *synth.Synthesizer
	portfolios PortfolioSource
	cache      cache.Cache
	cacheTTL   time.Duration
	tradeCount int
}

// Options configures an Analytics service.
type Options struct {
	Synthesizer *synth.Synthesizer
	// Portfolios overrides the portfolio source; nil selects the
	// synthesizer-backed source.
	Portfolios PortfolioSource
	Cache      cache.Cache
	CacheTTL   time.Duration
	TradeCount int
}

// New builds the analytics service.
func New(opts Options) *Analytics {
	s := opts.Synthesizer
	if s == nil {
		s = synth.New(synth.DefaultCatalog())
	}
	portfolios := opts.Portfolios
	if portfolios == nil {
		portfolios = synthPortfolio{s: s}
	}
	tradeCount := opts.TradeCount
	if tradeCount <= 0 {
		tradeCount = synth.DefaultTradeCount
	}

	return &Analytics{
		synth:      s,
		portfolios: portfolios,
		cache:      opts.Cache,
		cacheTTL:   opts.CacheTTL,
		tradeCount: tradeCount,
	}
}

// NewSyntheticPortfolioSource exposes the synthesizer-backed source for
// callers that select sources by configuration.
func NewSyntheticPortfolioSource(s *synth.Synthesizer) PortfolioSource {
	return synthPortfolio{s: s}
}

// TradeBundle returns the full analytics bundle for a wallet: its trade
// history plus every derived aggregate. symbolFilter narrows the history
// to one asset root; empty means all.
func (a *Analytics) TradeBundle(ctx context.Context, address, symbolFilter string) (*domain.AnalyticsBundle, error) {
	if err := solana.ValidateAddress(address); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("trades:%s:%s", address, symbolFilter)
	if bundle := getCached[domain.AnalyticsBundle](ctx, a.cache, key); bundle != nil {
		return bundle, nil
	}

	start := time.Now()
	trades := a.synth.Trades(address, symbolFilter, a.tradeCount)
	bundle := domain.BuildAnalyticsBundle(trades)

	log.Debug().
		Str("address", address).
		Str("symbol_filter", symbolFilter).
		Int("trades", len(trades)).
		Dur("duration", time.Since(start)).
		Msg("analytics bundle built")

	a.putCached(ctx, key, bundle)
	return &bundle, nil
}

// Portfolio returns the wallet's holdings snapshot from the configured
// source.
func (a *Analytics) Portfolio(ctx context.Context, address string) (*domain.WalletPortfolio, error) {
	if err := solana.ValidateAddress(address); err != nil {
		return nil, err
	}

	key := "portfolio:" + address
	if p := getCached[domain.WalletPortfolio](ctx, a.cache, key); p != nil {
		return p, nil
	}

	p, err := a.portfolios.Portfolio(ctx, address)
	if err != nil {
		return nil, err
	}

	a.putCached(ctx, key, *p)
	return p, nil
}

// Markets returns the venue's market catalog with simulated live pricing.
func (a *Analytics) Markets() []domain.TradableAsset {
	return a.synth.Markets()
}

// ExportTrades renders the wallet's (optionally filtered) trade history as
// CSV rows. The caller owns content-type and filename concerns.
func (a *Analytics) ExportTrades(ctx context.Context, address, symbolFilter string) ([]domain.Trade, error) {
	bundle, err := a.TradeBundle(ctx, address, symbolFilter)
	if err != nil {
		return nil, err
	}
	return bundle.Trades, nil
}

func getCached[T any](ctx context.Context, c cache.Cache, key string) *T {
	if c == nil {
		return nil
	}
	raw, ok := c.Get(ctx, key)
	if !ok {
		return nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

func (a *Analytics) putCached(ctx context.Context, key string, v any) {
	if a.cache == nil || a.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	a.cache.Set(ctx, key, raw, a.cacheTTL)
}
