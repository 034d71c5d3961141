package configs

import (
	"fmt"
	"strings"

	"crowdledger/internal/core/domain"
)

// Store backends.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Ledger configures the campaign ledger. Store selects the backend that owns
// the ledger state. The issuance ratio is IssuanceNumerator /
// IssuanceDenominator reward credit units per contributed unit.
type Ledger struct {
	Store               string `env:"STORE" envDefault:"memory"`
	IssuanceNumerator   int64  `env:"ISSUANCE_NUMERATOR" envDefault:"100"`
	IssuanceDenominator int64  `env:"ISSUANCE_DENOMINATOR" envDefault:"1"`
	TokenName           string `env:"TOKEN_NAME" envDefault:"Crowdfunding Reward Token"`
	TokenSymbol         string `env:"TOKEN_SYMBOL" envDefault:"CRT"`
	// Seed creates demo campaigns on an empty store at startup.
	Seed bool `env:"SEED" envDefault:"false"`
}

// StoreBackend normalises Store and rejects unknown backends.
func (c Ledger) StoreBackend() (string, error) {
	switch s := strings.ToLower(c.Store); s {
	case StoreMemory, StorePostgres:
		return s, nil
	default:
		return "", fmt.Errorf("unknown ledger store %q", c.Store)
	}
}

// RewardToken builds the token description, validating the ratio.
func (c Ledger) RewardToken() (domain.RewardToken, error) {
	ratio, err := domain.NewFixedRatio(c.IssuanceNumerator, c.IssuanceDenominator)
	if err != nil {
		return domain.RewardToken{}, err
	}
	return domain.RewardToken{Name: c.TokenName, Symbol: c.TokenSymbol, Ratio: ratio}, nil
}
