package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/deriverse/deriscope/internal/cache"
	"github.com/deriverse/deriscope/internal/config"
	httpapi "github.com/deriverse/deriscope/internal/interfaces/http"
	"github.com/deriverse/deriscope/internal/service"
	"github.com/deriverse/deriscope/internal/solana"
	"github.com/deriverse/deriscope/internal/synth"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the analytics API server",
	Long: `Start the HTTP API the dashboard consumes: /api/trades, /api/portfolio,
/api/markets, /api/trades/export, plus /metrics for Prometheus scraping.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	analytics, err := buildAnalytics(cfg)
	if err != nil {
		return err
	}

	server, err := httpapi.NewServer(httpapi.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSec) * time.Second,
	}, analytics)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutdown requested")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(ctx)
	}
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

// buildAnalytics assembles the service from config: cache backend,
// synthesizer, and portfolio source.
func buildAnalytics(cfg *config.Config) (*service.Analytics, error) {
	var store cache.Cache
	switch cfg.Cache.Backend {
	case "redis":
		store = cache.NewRedis(cfg.Cache.RedisAddr)
		log.Info().Str("addr", cfg.Cache.RedisAddr).Msg("using Redis response cache")
	default:
		store = cache.NewMemory()
	}

	synthesizer := synth.New(synth.DefaultCatalog())

	var portfolios service.PortfolioSource
	if cfg.Portfolio.Source == "rpc" {
		portfolios = solana.NewClient(solana.ClientConfig{
			RPCURL:         cfg.Solana.RPCURL,
			RequestTimeout: time.Duration(cfg.Solana.RequestTimeoutSec) * time.Second,
			RPS:            cfg.Solana.RPS,
			Burst:          cfg.Solana.Burst,
		})
		log.Info().Str("rpc_url", cfg.Solana.RPCURL).Msg("portfolio source: Solana RPC")
	} else {
		portfolios = service.NewSyntheticPortfolioSource(synthesizer)
		log.Info().Msg("portfolio source: synthetic")
	}

	return service.New(service.Options{
		Synthesizer: synthesizer,
		Portfolios:  portfolios,
		Cache:       store,
		CacheTTL:    cfg.Cache.TTL(),
		TradeCount:  cfg.Analytics.TradeCount,
	}), nil
}
