// Package config loads the deriscope service configuration from YAML.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level service configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Cache     CacheConfig     `yaml:"cache"`
	Solana    SolanaConfig    `yaml:"solana"`
	Portfolio PortfolioConfig `yaml:"portfolio"`
	Analytics AnalyticsConfig `yaml:"analytics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	ReadTimeoutSec  int    `yaml:"read_timeout_sec"`
	WriteTimeoutSec int    `yaml:"write_timeout_sec"`
	IdleTimeoutSec  int    `yaml:"idle_timeout_sec"`
}

// CacheConfig selects the response cache backend.
type CacheConfig struct {
	Backend   string `yaml:"backend"` // memory or redis
	RedisAddr string `yaml:"redis_addr"`
	TTLSec    int    `yaml:"ttl_sec"`
}

// TTL returns the configured cache TTL.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSec) * time.Second
}

// SolanaConfig holds RPC client settings.
type SolanaConfig struct {
	RPCURL            string  `yaml:"rpc_url"`
	RequestTimeoutSec int     `yaml:"request_timeout_sec"`
	RPS               float64 `yaml:"rps"`
	Burst             int     `yaml:"burst"`
}

// PortfolioConfig selects where portfolio snapshots come from: "rpc" for
// the live ledger, "synthetic" for address-seeded generation.
type PortfolioConfig struct {
	Source string `yaml:"source"`
}

// AnalyticsConfig holds synthesizer settings.
type AnalyticsConfig struct {
	TradeCount int `yaml:"trade_count"`
}

// Default returns the configuration used when no file is supplied: local
// server, in-memory cache, synthetic portfolios, mainnet RPC defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            8080,
			ReadTimeoutSec:  10,
			WriteTimeoutSec: 10,
			IdleTimeoutSec:  60,
		},
		Cache: CacheConfig{
			Backend: "memory",
			TTLSec:  60,
		},
		Solana: SolanaConfig{
			RPCURL:            "https://api.mainnet-beta.solana.com",
			RequestTimeoutSec: 10,
			RPS:               5,
			Burst:             10,
		},
		Portfolio: PortfolioConfig{Source: "synthetic"},
		Analytics: AnalyticsConfig{TradeCount: 250},
	}
}

// Load reads configuration from path, layered over defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that would misbehave at
// runtime.
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server.port %d outside [1, 65535]", c.Server.Port))
	}
	switch c.Cache.Backend {
	case "memory":
	case "redis":
		if c.Cache.RedisAddr == "" {
			problems = append(problems, "cache.redis_addr required when cache.backend is redis")
		}
	default:
		problems = append(problems, fmt.Sprintf("cache.backend %q must be memory or redis", c.Cache.Backend))
	}
	if c.Cache.TTLSec < 0 {
		problems = append(problems, "cache.ttl_sec must not be negative")
	}
	if c.Solana.RPCURL == "" {
		problems = append(problems, "solana.rpc_url must not be empty")
	}
	if c.Solana.RPS <= 0 {
		problems = append(problems, "solana.rps must be positive")
	}
	if c.Solana.Burst < 1 {
		problems = append(problems, "solana.burst must be at least 1")
	}
	switch c.Portfolio.Source {
	case "synthetic", "rpc":
	default:
		problems = append(problems, fmt.Sprintf("portfolio.source %q must be synthetic or rpc", c.Portfolio.Source))
	}
	if c.Analytics.TradeCount < 1 {
		problems = append(problems, "analytics.trade_count must be at least 1")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}
