package domain

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Contribution is the cumulative stake of one contributor in one campaign.
// There is at most one record per (CampaignID, Contributor).
type Contribution struct {
	CampaignID  int64
	Contributor string
	Amount      int64
	UpdatedAt   time.Time
}

// ContributionRequest is a contribution stamped with its receipt id and time,
// ready to be checked and committed under the campaign lock. Policy mints the
// reward credit from the contributor's running total.
type ContributionRequest struct {
	ReceiptID   uuid.UUID
	CampaignID  int64
	Contributor string
	Amount      int64
	Policy      IssuancePolicy
	At          time.Time
}

// NewContributionRequest stamps a contribution. It does not validate: the
// store checks the campaign exists first and then calls Validate, so an
// unknown campaign is reported before a bad amount.
func NewContributionRequest(campaignID int64, contributor string, amount int64, policy IssuancePolicy, now time.Time) ContributionRequest {
	return ContributionRequest{
		ReceiptID:   uuid.New(),
		CampaignID:  campaignID,
		Contributor: contributor,
		Amount:      amount,
		Policy:      policy,
		At:          now.UTC(),
	}
}

// Validate checks the caller supplied fields.
func (r ContributionRequest) Validate() error {
	if strings.TrimSpace(r.Contributor) == "" {
		return NewError(CodeInvalidArgument, "contributor is required")
	}
	if r.Amount <= 0 {
		return NewError(CodeInvalidArgument, "amount must be positive, got %d", r.Amount)
	}
	return nil
}

// Totals are the running values a contribution moves together.
type Totals struct {
	AmountRaised int64 // campaign total
	Contribution int64 // contributor's cumulative stake in the campaign
	Contributed  int64 // contributor's total across all campaigns
	Balance      int64 // contributor's reward credit
}

// Accumulate returns the totals after req is applied and the credit minted
// for it. It fails without side effects when any total would overflow, so
// stores can compute the result first and then write all of it.
func (t Totals) Accumulate(req ContributionRequest) (Totals, int64, error) {
	if req.Policy == nil {
		return t, 0, errors.New("no issuance policy")
	}
	credit, err := req.Policy.Mint(t.Contributed, req.Amount)
	if err != nil {
		return t, 0, err
	}
	next := t
	var ok bool
	if next.AmountRaised, ok = addInt64(t.AmountRaised, req.Amount); !ok {
		return t, 0, NewError(CodeInvalidArgument, "amount %d overflows campaign %d total", req.Amount, req.CampaignID)
	}
	if next.Contribution, ok = addInt64(t.Contribution, req.Amount); !ok {
		return t, 0, NewError(CodeInvalidArgument, "amount %d overflows contribution of %s", req.Amount, req.Contributor)
	}
	if next.Contributed, ok = addInt64(t.Contributed, req.Amount); !ok {
		return t, 0, NewError(CodeInvalidArgument, "amount %d overflows contributed total of %s", req.Amount, req.Contributor)
	}
	if next.Balance, ok = addInt64(t.Balance, credit); !ok {
		return t, 0, NewError(CodeInvalidArgument, "credit %d overflows balance of %s", credit, req.Contributor)
	}
	return next, credit, nil
}

// Receipt is returned for an accepted contribution and doubles as the
// contribution journal entry.
type Receipt struct {
	ID           uuid.UUID
	CampaignID   int64
	Contributor  string
	Amount       int64
	Contribution int64 // contributor's new cumulative amount
	AmountRaised int64 // campaign total after this contribution
	CreditIssued int64
	CreatedAt    time.Time
}

// NewReceipt pairs a committed request with the totals and credit it
// produced.
func NewReceipt(req ContributionRequest, t Totals, credit int64) Receipt {
	return Receipt{
		ID:           req.ReceiptID,
		CampaignID:   req.CampaignID,
		Contributor:  req.Contributor,
		Amount:       req.Amount,
		Contribution: t.Contribution,
		AmountRaised: t.AmountRaised,
		CreditIssued: credit,
		CreatedAt:    req.At,
	}
}

func addInt64(a, b int64) (int64, bool) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, false
	}
	return a + b, true
}
