package port

import (
	"context"

	"crowdledger/internal/core/domain"
)

// LedgerUseCase defines the business operations exposed by the campaign
// ledger. This interface represents the primary port into the application
// domain. Mock implementations can be generated from this interface for
// testing.
type LedgerUseCase interface {
	// CreateCampaign validates the input and registers a campaign whose
	// deadline is now plus durationSeconds. It returns the new campaign id.
	CreateCampaign(ctx context.Context, creator, title string, fundingGoal, durationSeconds int64) (int64, error)

	// GetCampaign returns a snapshot with the derived fields evaluated now.
	GetCampaign(ctx context.Context, id int64) (*CampaignView, error)

	// GetTotalCampaigns returns the number of campaign ids ever allocated.
	GetTotalCampaigns(ctx context.Context) (int64, error)

	// ListCampaigns returns a page of campaigns ordered by id.
	ListCampaigns(ctx context.Context, req ListReq) ([]CampaignView, error)

	// Contribute records amount from contributor against the campaign and
	// mints reward credit. Retrying a contribution contributes twice.
	Contribute(ctx context.Context, campaignID int64, contributor string, amount int64) (*domain.Receipt, error)

	// GetContribution returns the contributor's cumulative amount, 0 when
	// nothing was contributed.
	GetContribution(ctx context.Context, campaignID int64, contributor string) (int64, error)

	// ListContributions returns the contribution journal of a campaign.
	ListContributions(ctx context.Context, campaignID int64) ([]domain.Receipt, error)

	// FinalizeCampaign settles an ended campaign. Any caller may finalize; a
	// second finalize fails with domain.ErrAlreadyFinalized.
	FinalizeCampaign(ctx context.Context, campaignID int64, caller string) (*CampaignView, error)

	// FinalizeEnded finalizes up to limit campaigns whose deadline passed,
	// on behalf of caller.
	FinalizeEnded(ctx context.Context, caller string, limit int) (SweepResult, error)

	// BalanceOf returns the reward credit of identity.
	BalanceOf(ctx context.Context, identity string) (int64, error)

	// RewardToken describes the reward credit asset.
	RewardToken() domain.RewardToken
}

// CampaignView is a campaign snapshot plus the fields derived from the
// current time. It is a DTO used by the HTTP layer.
type CampaignView struct {
	domain.Campaign
	IsActive    bool
	Status      domain.Status
	ProgressBps int64
}

// ListReq selects a page of campaigns. A zero Limit selects the default page
// size.
type ListReq struct {
	Offset int
	Limit  int
}

// SweepResult summarises one FinalizeEnded run.
type SweepResult struct {
	Finalized  int
	Successful int
	Skipped    int // lost a race with another finalizer
}
