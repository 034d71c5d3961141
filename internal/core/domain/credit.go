package domain

import (
	"fmt"
	"math/big"
)

// IssuancePolicy converts contributions into reward credit. Mint returns the
// credit owed for amount given the holder's contributed total across all
// campaigns before it, so that rounding never accumulates per contribution.
type IssuancePolicy interface {
	Mint(contributed, amount int64) (int64, error)
}

// FixedRatio issues Numerator/Denominator credit units per contributed unit.
// A holder's balance is always floor(ratio × total contributed).
type FixedRatio struct {
	Numerator   int64
	Denominator int64
}

// NewFixedRatio validates the ratio. A zero numerator is allowed and mints
// nothing.
func NewFixedRatio(numerator, denominator int64) (FixedRatio, error) {
	r := FixedRatio{Numerator: numerator, Denominator: denominator}
	if err := r.Validate(); err != nil {
		return FixedRatio{}, err
	}
	return r, nil
}

// Validate rejects ratios that cannot issue credit. The zero value is
// invalid.
func (r FixedRatio) Validate() error {
	if r.Numerator < 0 {
		return fmt.Errorf("issuance numerator must not be negative, got %d", r.Numerator)
	}
	if r.Denominator <= 0 {
		return fmt.Errorf("issuance denominator must be positive, got %d", r.Denominator)
	}
	return nil
}

// Issue returns floor(total × ratio).
func (r FixedRatio) Issue(total int64) (int64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	v := new(big.Int).Mul(big.NewInt(total), big.NewInt(r.Numerator))
	v.Quo(v, big.NewInt(r.Denominator))
	if !v.IsInt64() {
		return 0, NewError(CodeInvalidArgument, "credit for %d contributed overflows", total)
	}
	return v.Int64(), nil
}

// Mint implements IssuancePolicy as the difference of the issued credit
// before and after amount.
func (r FixedRatio) Mint(contributed, amount int64) (int64, error) {
	total, ok := addInt64(contributed, amount)
	if !ok {
		return 0, NewError(CodeInvalidArgument, "amount %d overflows contributed total %d", amount, contributed)
	}
	after, err := r.Issue(total)
	if err != nil {
		return 0, err
	}
	before, err := r.Issue(contributed)
	if err != nil {
		return 0, err
	}
	return after - before, nil
}

func (r FixedRatio) String() string {
	if r.Denominator == 1 {
		return fmt.Sprintf("%d", r.Numerator)
	}
	return fmt.Sprintf("%d/%d", r.Numerator, r.Denominator)
}

// RewardToken describes the reward credit asset to readers.
type RewardToken struct {
	Name   string
	Symbol string
	Ratio  FixedRatio
}
