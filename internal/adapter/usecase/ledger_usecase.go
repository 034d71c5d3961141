package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"crowdledger/internal/core/domain"
	"crowdledger/internal/core/port"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// LedgerUseCase provides the campaign lifecycle and contribution rules. It
// validates caller input, stamps requests with the clock and delegates the
// state transitions to the repository, which owns the locking.
type LedgerUseCase struct {
	repo   port.LedgerRepository
	clock  port.Clock
	policy domain.IssuancePolicy
	token  domain.RewardToken
	logger *slog.Logger
}

// Option customises a LedgerUseCase.
type Option func(*LedgerUseCase)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(c port.Clock) Option {
	return func(u *LedgerUseCase) { u.clock = c }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(u *LedgerUseCase) { u.logger = l }
}

// WithIssuancePolicy overrides the token's fixed ratio.
func WithIssuancePolicy(p domain.IssuancePolicy) Option {
	return func(u *LedgerUseCase) { u.policy = p }
}

// NewLedgerUseCase creates a use case over repo. Reward credit is issued at
// the token's ratio unless WithIssuancePolicy says otherwise.
func NewLedgerUseCase(repo port.LedgerRepository, token domain.RewardToken, opts ...Option) *LedgerUseCase {
	u := &LedgerUseCase{
		repo:   repo,
		clock:  port.SystemClock{},
		policy: token.Ratio,
		token:  token,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CreateCampaign validates the input and registers the campaign.
func (u *LedgerUseCase) CreateCampaign(ctx context.Context, creator, title string, fundingGoal, durationSeconds int64) (int64, error) {
	nc, err := domain.BuildNewCampaign(creator, title, fundingGoal, durationSeconds, u.clock.Now())
	if err != nil {
		u.logger.Debug("create campaign rejected", slog.String("creator", creator), slog.Any("error", err))
		return 0, err
	}
	id, err := u.repo.CreateCampaign(ctx, nc)
	if err != nil {
		return 0, fmt.Errorf("create campaign: %w", err)
	}
	u.logger.Info("campaign created",
		slog.Int64("campaign_id", id),
		slog.String("creator", creator),
		slog.Int64("funding_goal", fundingGoal),
		slog.Int64("deadline", nc.Deadline.Unix()),
	)
	return id, nil
}

// GetCampaign returns the campaign with derived fields evaluated now.
func (u *LedgerUseCase) GetCampaign(ctx context.Context, id int64) (*port.CampaignView, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	v := u.view(c)
	return &v, nil
}

// GetTotalCampaigns returns the number of allocated campaign ids.
func (u *LedgerUseCase) GetTotalCampaigns(ctx context.Context) (int64, error) {
	return u.repo.CountCampaigns(ctx)
}

// ListCampaigns returns a page of campaigns ordered by id.
func (u *LedgerUseCase) ListCampaigns(ctx context.Context, req port.ListReq) ([]port.CampaignView, error) {
	if req.Offset < 0 {
		return nil, domain.NewError(domain.CodeInvalidArgument, "offset must not be negative, got %d", req.Offset)
	}
	limit := req.Limit
	switch {
	case limit < 0:
		return nil, domain.NewError(domain.CodeInvalidArgument, "limit must not be negative, got %d", limit)
	case limit == 0:
		limit = defaultPageSize
	case limit > maxPageSize:
		limit = maxPageSize
	}
	campaigns, err := u.repo.ListCampaigns(ctx, req.Offset, limit)
	if err != nil {
		return nil, err
	}
	views := make([]port.CampaignView, 0, len(campaigns))
	for i := range campaigns {
		views = append(views, u.view(&campaigns[i]))
	}
	return views, nil
}

// Contribute records a contribution and mints reward credit in one commit.
// The repository checks the request under the campaign lock, in the order
// NotFound, InvalidArgument, CampaignClosed, so a contribution racing a
// finalize is either counted or rejected with CampaignClosed.
func (u *LedgerUseCase) Contribute(ctx context.Context, campaignID int64, contributor string, amount int64) (*domain.Receipt, error) {
	req := domain.NewContributionRequest(campaignID, contributor, amount, u.policy, u.clock.Now())
	receipt, err := u.repo.Contribute(ctx, req)
	if err != nil {
		if domain.CodeOf(err) != domain.CodeUnknown {
			u.logger.Debug("contribution rejected",
				slog.Int64("campaign_id", campaignID),
				slog.String("contributor", contributor),
				slog.Any("error", err),
			)
			return nil, err
		}
		return nil, fmt.Errorf("contribute to campaign %d: %w", campaignID, err)
	}
	u.logger.Info("contribution accepted",
		slog.String("receipt_id", receipt.ID.String()),
		slog.Int64("campaign_id", campaignID),
		slog.String("contributor", contributor),
		slog.Int64("amount", amount),
		slog.Int64("amount_raised", receipt.AmountRaised),
		slog.Int64("credit_issued", receipt.CreditIssued),
	)
	return &receipt, nil
}

// GetContribution returns the contributor's cumulative amount.
func (u *LedgerUseCase) GetContribution(ctx context.Context, campaignID int64, contributor string) (int64, error) {
	return u.repo.GetContribution(ctx, campaignID, contributor)
}

// ListContributions returns the contribution journal of a campaign.
func (u *LedgerUseCase) ListContributions(ctx context.Context, campaignID int64) ([]domain.Receipt, error) {
	return u.repo.ListReceipts(ctx, campaignID)
}

// FinalizeCampaign settles the campaign. The caller is recorded but not
// checked against the creator: anyone may finalize an ended campaign.
func (u *LedgerUseCase) FinalizeCampaign(ctx context.Context, campaignID int64, caller string) (*port.CampaignView, error) {
	c, err := u.repo.FinalizeCampaign(ctx, campaignID, caller, u.clock.Now())
	if err != nil {
		if domain.CodeOf(err) != domain.CodeUnknown {
			u.logger.Debug("finalize rejected",
				slog.Int64("campaign_id", campaignID),
				slog.String("caller", caller),
				slog.Any("error", err),
			)
			return nil, err
		}
		return nil, fmt.Errorf("finalize campaign %d: %w", campaignID, err)
	}
	u.logger.Info("campaign finalized",
		slog.Int64("campaign_id", campaignID),
		slog.String("caller", caller),
		slog.Int64("amount_raised", c.AmountRaised),
		slog.Int64("funding_goal", c.FundingGoal),
		slog.Bool("goal_reached", c.GoalReached),
	)
	v := u.view(c)
	return &v, nil
}

// FinalizeEnded finalizes campaigns whose deadline passed. Campaigns that
// another caller finalized in the meantime are counted as skipped.
func (u *LedgerUseCase) FinalizeEnded(ctx context.Context, caller string, limit int) (port.SweepResult, error) {
	var res port.SweepResult
	ids, err := u.repo.ListEndedUnfinalized(ctx, u.clock.Now(), limit)
	if err != nil {
		return res, fmt.Errorf("list ended campaigns: %w", err)
	}
	var errs []error
	for _, id := range ids {
		v, err := u.FinalizeCampaign(ctx, id, caller)
		switch {
		case errors.Is(err, domain.ErrAlreadyFinalized):
			res.Skipped++
		case err != nil:
			errs = append(errs, err)
		default:
			res.Finalized++
			if v.GoalReached {
				res.Successful++
			}
		}
	}
	return res, errors.Join(errs...)
}

// BalanceOf returns the reward credit of identity.
func (u *LedgerUseCase) BalanceOf(ctx context.Context, identity string) (int64, error) {
	return u.repo.BalanceOf(ctx, identity)
}

// RewardToken describes the reward credit asset.
func (u *LedgerUseCase) RewardToken() domain.RewardToken {
	return u.token
}

func (u *LedgerUseCase) view(c *domain.Campaign) port.CampaignView {
	now := u.clock.Now()
	return port.CampaignView{
		Campaign:    *c,
		IsActive:    c.IsActive(now),
		Status:      c.Status(now),
		ProgressBps: c.ProgressBps(),
	}
}
