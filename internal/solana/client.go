package solana

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/deriverse/deriscope/internal/domain"
)

const (
	tokenProgramID     = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	token2022ProgramID = "TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb"
)

// ClientConfig holds Solana RPC client settings.
type ClientConfig struct {
	RPCURL         string
	RequestTimeout time.Duration
	RPS            float64
	Burst          int
}

// DefaultClientConfig returns mainnet defaults with a conservative request
// budget (public RPC nodes throttle aggressively).
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		RPCURL:         "https://api.mainnet-beta.solana.com",
		RequestTimeout: 10 * time.Second,
		RPS:            5,
		Burst:          10,
	}
}

// Client is a rate-limited, circuit-broken Solana JSON-RPC client for
// wallet balances and SPL token accounts.
type Client struct {
	cfg     ClientConfig
	http    *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
}

// NewClient builds a Client from config.
func NewClient(cfg ClientConfig) *Client {
	settings := gobreaker.Settings{
		Name:     "solana_rpc",
		Interval: 60 * time.Second,
		Timeout:  30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}

	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

// call performs one JSON-RPC request and decodes result into out. Rate
// limiting and the circuit breaker wrap every call; HTTP 429 maps to
// ErrRateLimited so callers can distinguish throttling from real failure.
func (c *Client) call(ctx context.Context, method string, params []any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: 1, Method: method, Params: params})
	if err != nil {
		return fmt.Errorf("%w: encode request: %v", ErrFetchFailed, err)
	}

	start := time.Now()
	result, err := c.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.RPCURL, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, ErrRateLimited
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
		}

		var rpcResp rpcResponse
		if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		if rpcResp.Error != nil {
			return nil, fmt.Errorf("RPC error %d: %s", rpcResp.Error.Code, rpcResp.Error.Message)
		}
		return rpcResp.Result, nil
	})

	if err != nil {
		log.Error().Err(err).Str("method", method).Dur("duration", time.Since(start)).
			Msg("Solana RPC request failed")
		if errors.Is(err, ErrRateLimited) {
			return ErrRateLimited
		}
		return fmt.Errorf("%w: %s: %v", ErrFetchFailed, method, err)
	}

	log.Debug().Str("method", method).Dur("duration", time.Since(start)).
		Msg("Solana RPC request completed")

	if out != nil {
		if err := json.Unmarshal(result.(json.RawMessage), out); err != nil {
			return fmt.Errorf("%w: decode %s result: %v", ErrFetchFailed, method, err)
		}
	}
	return nil
}

type balanceResult struct {
	Value uint64 `json:"value"`
}

// GetBalance returns the wallet's SOL balance.
func (c *Client) GetBalance(ctx context.Context, address string) (float64, error) {
	var result balanceResult
	if err := c.call(ctx, "getBalance", []any{address}, &result); err != nil {
		return 0, err
	}
	return float64(result.Value) / 1e9, nil // lamports to SOL
}

type tokenAccountsResult struct {
	Value []struct {
		Account struct {
			Data struct {
				Parsed struct {
					Info struct {
						Mint        string `json:"mint"`
						TokenAmount struct {
							UIAmount *float64 `json:"uiAmount"`
							Decimals int      `json:"decimals"`
						} `json:"tokenAmount"`
					} `json:"info"`
				} `json:"parsed"`
			} `json:"data"`
		} `json:"account"`
	} `json:"value"`
}

// GetTokenAccounts returns the wallet's SPL token balances from both the
// legacy token program and token-2022, valued at the reference price table
// and sorted by USD value descending. Zero balances are dropped.
func (c *Client) GetTokenAccounts(ctx context.Context, address string) ([]domain.TokenBalance, error) {
	var legacy tokenAccountsResult
	err := c.call(ctx, "getTokenAccountsByOwner", []any{
		address,
		map[string]string{"programId": tokenProgramID},
		map[string]string{"encoding": "jsonParsed"},
	}, &legacy)
	if err != nil {
		return nil, err
	}

	var token2022 tokenAccountsResult
	err = c.call(ctx, "getTokenAccountsByOwner", []any{
		address,
		map[string]string{"programId": token2022ProgramID},
		map[string]string{"encoding": "jsonParsed"},
	}, &token2022)
	if err != nil {
		// Some RPC nodes do not index token-2022 yet; the legacy set is
		// still a valid answer, but throttling has to surface.
		if errors.Is(err, ErrRateLimited) {
			return nil, err
		}
		log.Warn().Err(err).Msg("token-2022 account fetch failed, continuing with legacy accounts")
	}

	accounts := append(legacy.Value, token2022.Value...)
	tokens := make([]domain.TokenBalance, 0, len(accounts))
	for _, acct := range accounts {
		info := acct.Account.Data.Parsed.Info
		if info.TokenAmount.UIAmount == nil || *info.TokenAmount.UIAmount == 0 {
			continue
		}
		balance := *info.TokenAmount.UIAmount

		meta, known := knownTokens[info.Mint]
		if !known {
			meta = TokenMeta{
				Symbol: info.Mint[:4] + "...",
				Name:   "Unknown Token",
			}
		}

		tokens = append(tokens, domain.TokenBalance{
			Symbol:   meta.Symbol,
			Name:     meta.Name,
			Mint:     info.Mint,
			Balance:  balance,
			USDValue: balance * tokenPrices[info.Mint],
			Decimals: info.TokenAmount.Decimals,
			LogoURI:  meta.LogoURI,
		})
	}

	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].USDValue > tokens[j].USDValue
	})
	return tokens, nil
}

// Portfolio assembles the full wallet snapshot from live RPC data. The
// address must already be validated.
func (c *Client) Portfolio(ctx context.Context, address string) (*domain.WalletPortfolio, error) {
	solBalance, err := c.GetBalance(ctx, address)
	if err != nil {
		return nil, err
	}

	tokens, err := c.GetTokenAccounts(ctx, address)
	if err != nil {
		return nil, err
	}

	solUSD := solBalance * SOLPriceUSD
	tokensUSD := 0.0
	for _, t := range tokens {
		tokensUSD += t.USDValue
	}

	return &domain.WalletPortfolio{
		Address:       address,
		SOLBalance:    solBalance,
		SOLUSDValue:   solUSD,
		Tokens:        tokens,
		TotalUSDValue: solUSD + tokensUSD,
		LastUpdated:   time.Now().UTC(),
	}, nil
}
