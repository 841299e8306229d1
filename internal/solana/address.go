// Package solana talks to the Solana JSON-RPC API for real wallet data and
// validates account addresses before they reach the analytics core.
package solana

import (
	"errors"

	"github.com/mr-tron/base58"
)

// Boundary errors surfaced to callers. The analytics core itself never
// fails; these cover the upstream ledger path only. Rate limiting is kept
// distinct from generic failure so callers can choose a retry strategy.
var (
	ErrInvalidAddress = errors.New("invalid Solana wallet address")
	ErrRateLimited    = errors.New("rate limited by Solana RPC")
	ErrFetchFailed    = errors.New("failed to fetch from Solana RPC")
)

// IsValidAddress reports whether s decodes as a Solana account identifier:
// base58 text of a 32-byte ed25519 public key.
func IsValidAddress(s string) bool {
	if len(s) < 32 || len(s) > 44 {
		return false
	}
	raw, err := base58.Decode(s)
	return err == nil && len(raw) == 32
}

// ValidateAddress returns ErrInvalidAddress when s is not a well-formed
// account identifier.
func ValidateAddress(s string) error {
	if !IsValidAddress(s) {
		return ErrInvalidAddress
	}
	return nil
}
