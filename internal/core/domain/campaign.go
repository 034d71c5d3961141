package domain

import (
	"math"
	"math/big"
	"strings"
	"time"
)

// Campaign represents a time-boxed funding drive.
// Amounts are stored in integer units of the funding asset's smallest unit.
type Campaign struct {
	ID           int64
	Creator      string
	Title        string
	FundingGoal  int64
	Deadline     time.Time // second precision
	AmountRaised int64
	Finalized    bool
	GoalReached  bool // meaningful only when Finalized
	FinalizedBy  string
	FinalizedAt  *time.Time
	CreatedAt    time.Time
}

// Status is the lifecycle label shown to readers. It is derived on every
// read and never persisted.
type Status string

const (
	StatusActive     Status = "active"
	StatusEnded      Status = "ended" // deadline passed, not yet finalized
	StatusSuccessful Status = "successful"
	StatusFailed     Status = "failed"
)

// IsActive reports whether the campaign still accepts contributions at now.
func (c *Campaign) IsActive(now time.Time) bool {
	return !c.Finalized && now.Before(c.Deadline)
}

// Status returns the lifecycle label at now.
func (c *Campaign) Status(now time.Time) Status {
	switch {
	case c.Finalized && c.GoalReached:
		return StatusSuccessful
	case c.Finalized:
		return StatusFailed
	case now.Before(c.Deadline):
		return StatusActive
	default:
		return StatusEnded
	}
}

// ProgressBps returns AmountRaised relative to FundingGoal in basis points.
// The value is not capped at 10000.
func (c *Campaign) ProgressBps() int64 {
	if c.FundingGoal <= 0 {
		return 0
	}
	p := new(big.Int).Mul(big.NewInt(c.AmountRaised), big.NewInt(10000))
	p.Quo(p, big.NewInt(c.FundingGoal))
	if !p.IsInt64() {
		return math.MaxInt64
	}
	return p.Int64()
}

// CheckContributable returns CampaignClosed when the contribution window is
// over, either because the deadline passed or the campaign was finalized.
func (c *Campaign) CheckContributable(now time.Time) error {
	if c.Finalized {
		return NewError(CodeCampaignClosed, "campaign %d is finalized", c.ID)
	}
	if !now.Before(c.Deadline) {
		return NewError(CodeCampaignClosed, "campaign %d ended at %d", c.ID, c.Deadline.Unix())
	}
	return nil
}

// CheckContribution runs the contribution checks in order: the request's own
// fields first, then the contribution window.
func (c *Campaign) CheckContribution(req ContributionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return c.CheckContributable(req.At)
}

// CheckFinalizable returns AlreadyFinalized or NotYetEnded when the campaign
// cannot be settled at now.
func (c *Campaign) CheckFinalizable(now time.Time) error {
	if c.Finalized {
		return NewError(CodeAlreadyFinalized, "campaign %d is already finalized", c.ID)
	}
	if now.Before(c.Deadline) {
		return NewError(CodeNotYetEnded, "campaign %d ends at %d", c.ID, c.Deadline.Unix())
	}
	return nil
}

// Finalize records the settlement outcome. Callers must hold the campaign's
// exclusive lock and have passed CheckFinalizable.
func (c *Campaign) Finalize(caller string, now time.Time) {
	c.Finalized = true
	c.GoalReached = c.AmountRaised >= c.FundingGoal
	c.FinalizedBy = caller
	at := now.UTC()
	c.FinalizedAt = &at
}

// NewCampaign is the validated input for creating a campaign. The id is
// assigned by the store.
type NewCampaign struct {
	Creator     string
	Title       string
	FundingGoal int64
	Deadline    time.Time
	CreatedAt   time.Time
}

// BuildNewCampaign validates creation input and computes the deadline from
// now and the requested duration.
func BuildNewCampaign(creator, title string, fundingGoal, durationSeconds int64, now time.Time) (NewCampaign, error) {
	if strings.TrimSpace(creator) == "" {
		return NewCampaign{}, NewError(CodeInvalidArgument, "creator is required")
	}
	if strings.TrimSpace(title) == "" {
		return NewCampaign{}, NewError(CodeInvalidArgument, "title is required")
	}
	if fundingGoal <= 0 {
		return NewCampaign{}, NewError(CodeInvalidArgument, "funding goal must be positive, got %d", fundingGoal)
	}
	if durationSeconds <= 0 {
		return NewCampaign{}, NewError(CodeInvalidArgument, "duration must be positive, got %d", durationSeconds)
	}
	start := now.Unix()
	if durationSeconds > math.MaxInt64-start {
		return NewCampaign{}, NewError(CodeInvalidArgument, "duration %d overflows the deadline", durationSeconds)
	}
	return NewCampaign{
		Creator:     creator,
		Title:       title,
		FundingGoal: fundingGoal,
		Deadline:    time.Unix(start+durationSeconds, 0).UTC(),
		CreatedAt:   now.UTC(),
	}, nil
}

// Campaign materialises the stored record for the given id.
func (n NewCampaign) Campaign(id int64) Campaign {
	return Campaign{
		ID:          id,
		Creator:     n.Creator,
		Title:       n.Title,
		FundingGoal: n.FundingGoal,
		Deadline:    n.Deadline,
		CreatedAt:   n.CreatedAt,
	}
}
