package port

import (
	"context"
	"time"

	"crowdledger/internal/core/domain"
)

// LedgerRepository is the authoritative state owner for campaigns,
// contributions and reward credit. It is an outbound port in hexagonal
// architecture. Implementations must serialise Contribute and
// FinalizeCampaign per campaign and commit the three parts of a contribution
// (contribution record, campaign total, credit balance) atomically. Every
// lookup of an unallocated campaign id fails with domain.ErrNotFound.
type LedgerRepository interface {
	// CreateCampaign stores a campaign under the next sequential id and
	// returns that id. Ids start at 0 and are never reused.
	CreateCampaign(ctx context.Context, c domain.NewCampaign) (int64, error)
	// GetCampaign returns a snapshot of the campaign.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// CountCampaigns returns the number of ids ever allocated.
	CountCampaigns(ctx context.Context) (int64, error)
	// ListCampaigns returns campaigns ordered by id.
	ListCampaigns(ctx context.Context, offset, limit int) ([]domain.Campaign, error)

	// Contribute checks the contribution window at req.At under the campaign's
	// exclusive lock and commits the contribution, the new campaign total,
	// the credit and a journal entry together.
	Contribute(ctx context.Context, req domain.ContributionRequest) (domain.Receipt, error)
	// GetContribution returns the contributor's cumulative amount, 0 when the
	// contributor never contributed.
	GetContribution(ctx context.Context, campaignID int64, contributor string) (int64, error)
	// ListReceipts returns the contribution journal of a campaign in commit
	// order.
	ListReceipts(ctx context.Context, campaignID int64) ([]domain.Receipt, error)

	// FinalizeCampaign checks finalizability at now under the campaign's
	// exclusive lock and records the outcome.
	FinalizeCampaign(ctx context.Context, id int64, caller string, now time.Time) (*domain.Campaign, error)
	// ListEndedUnfinalized returns ids of campaigns whose deadline is not after
	// now and that are not finalized, lowest id first. A non-positive limit
	// returns every match.
	ListEndedUnfinalized(ctx context.Context, now time.Time, limit int) ([]int64, error)

	// BalanceOf returns the reward credit of holder, 0 when never credited.
	BalanceOf(ctx context.Context, holder string) (int64, error)
}
