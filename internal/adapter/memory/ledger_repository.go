package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"crowdledger/internal/core/domain"
)

// LedgerRepository implements port.LedgerRepository in process memory.
//
// Each campaign carries its own mutex, which is the unit of mutual exclusion
// for contributions and finalization. Each credit holder has a second mutex
// that is always acquired after a campaign lock, never before, and is held
// while all parts of a contribution are written. Contributions to different
// campaigns from different holders share no lock.
type LedgerRepository struct {
	mu        sync.RWMutex // guards the campaigns slice, not its elements
	campaigns []*campaignState

	creditMu sync.RWMutex // guards the credits map, not its elements
	credits  map[string]*creditAccount
}

type creditAccount struct {
	mu          sync.Mutex
	balance     int64
	contributed int64 // total across all campaigns
}

type campaignState struct {
	mu            sync.Mutex
	campaign      domain.Campaign
	contributions map[string]*domain.Contribution
	journal       []domain.Receipt
}

// NewLedgerRepository returns an empty store.
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{credits: make(map[string]*creditAccount)}
}

func (r *LedgerRepository) lookup(id int64) (*campaignState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id < 0 || id >= int64(len(r.campaigns)) {
		return nil, domain.CampaignNotFound(id)
	}
	return r.campaigns[id], nil
}

// account returns the holder's credit account, creating it on first use.
func (r *LedgerRepository) account(holder string) *creditAccount {
	r.creditMu.RLock()
	acct := r.credits[holder]
	r.creditMu.RUnlock()
	if acct != nil {
		return acct
	}

	r.creditMu.Lock()
	defer r.creditMu.Unlock()
	if acct = r.credits[holder]; acct == nil {
		acct = &creditAccount{}
		r.credits[holder] = acct
	}
	return acct
}

// CreateCampaign appends the campaign under the next dense id.
func (r *LedgerRepository) CreateCampaign(_ context.Context, nc domain.NewCampaign) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := int64(len(r.campaigns))
	r.campaigns = append(r.campaigns, &campaignState{
		campaign:      nc.Campaign(id),
		contributions: make(map[string]*domain.Contribution),
	})
	return id, nil
}

// GetCampaign returns a copy of the campaign.
func (r *LedgerRepository) GetCampaign(_ context.Context, id int64) (*domain.Campaign, error) {
	st, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	st.mu.Lock()
	c := st.campaign
	st.mu.Unlock()
	return &c, nil
}

// CountCampaigns returns the number of allocated ids.
func (r *LedgerRepository) CountCampaigns(context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.campaigns)), nil
}

// ListCampaigns returns copies of campaigns [offset, offset+limit).
func (r *LedgerRepository) ListCampaigns(_ context.Context, offset, limit int) ([]domain.Campaign, error) {
	r.mu.RLock()
	var page []*campaignState
	if offset < len(r.campaigns) {
		end := min(offset+limit, len(r.campaigns))
		page = slices.Clone(r.campaigns[offset:end])
	}
	r.mu.RUnlock()

	out := make([]domain.Campaign, 0, len(page))
	for _, st := range page {
		st.mu.Lock()
		out = append(out, st.campaign)
		st.mu.Unlock()
	}
	return out, nil
}

// Contribute applies the contribution under the campaign lock and the
// holder's credit lock. Totals are computed before anything is written so a
// rejected contribution leaves the state untouched.
func (r *LedgerRepository) Contribute(_ context.Context, req domain.ContributionRequest) (domain.Receipt, error) {
	st, err := r.lookup(req.CampaignID)
	if err != nil {
		return domain.Receipt{}, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	if err = st.campaign.CheckContribution(req); err != nil {
		return domain.Receipt{}, err
	}

	acct := r.account(req.Contributor)
	acct.mu.Lock()
	defer acct.mu.Unlock()

	prev := domain.Totals{
		AmountRaised: st.campaign.AmountRaised,
		Contributed:  acct.contributed,
		Balance:      acct.balance,
	}
	rec := st.contributions[req.Contributor]
	if rec != nil {
		prev.Contribution = rec.Amount
	}
	next, credit, err := prev.Accumulate(req)
	if err != nil {
		return domain.Receipt{}, err
	}

	if rec == nil {
		rec = &domain.Contribution{CampaignID: req.CampaignID, Contributor: req.Contributor}
		st.contributions[req.Contributor] = rec
	}
	rec.Amount = next.Contribution
	rec.UpdatedAt = req.At
	st.campaign.AmountRaised = next.AmountRaised
	acct.contributed = next.Contributed
	acct.balance = next.Balance

	receipt := domain.NewReceipt(req, next, credit)
	st.journal = append(st.journal, receipt)
	return receipt, nil
}

// GetContribution returns the cumulative amount or 0.
func (r *LedgerRepository) GetContribution(_ context.Context, campaignID int64, contributor string) (int64, error) {
	st, err := r.lookup(campaignID)
	if err != nil {
		return 0, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if rec := st.contributions[contributor]; rec != nil {
		return rec.Amount, nil
	}
	return 0, nil
}

// ListReceipts returns a copy of the campaign's journal.
func (r *LedgerRepository) ListReceipts(_ context.Context, campaignID int64) ([]domain.Receipt, error) {
	st, err := r.lookup(campaignID)
	if err != nil {
		return nil, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	return slices.Clone(st.journal), nil
}

// FinalizeCampaign settles the campaign under its lock.
func (r *LedgerRepository) FinalizeCampaign(_ context.Context, id int64, caller string, now time.Time) (*domain.Campaign, error) {
	st, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if err = st.campaign.CheckFinalizable(now); err != nil {
		return nil, err
	}
	st.campaign.Finalize(caller, now)
	c := st.campaign
	return &c, nil
}

// ListEndedUnfinalized scans campaigns in id order. A non-positive limit
// returns every match.
func (r *LedgerRepository) ListEndedUnfinalized(_ context.Context, now time.Time, limit int) ([]int64, error) {
	r.mu.RLock()
	all := slices.Clone(r.campaigns)
	r.mu.RUnlock()

	var ids []int64
	for _, st := range all {
		if limit > 0 && len(ids) >= limit {
			break
		}
		st.mu.Lock()
		ended := !st.campaign.Finalized && !now.Before(st.campaign.Deadline)
		id := st.campaign.ID
		st.mu.Unlock()
		if ended {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// BalanceOf returns the holder's credit or 0.
func (r *LedgerRepository) BalanceOf(_ context.Context, holder string) (int64, error) {
	r.creditMu.RLock()
	acct := r.credits[holder]
	r.creditMu.RUnlock()
	if acct == nil {
		return 0, nil
	}
	acct.mu.Lock()
	defer acct.mu.Unlock()
	return acct.balance, nil
}
