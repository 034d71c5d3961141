package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdledger/internal/core/domain"
)

const campaignColumns = `id, creator, title, funding_goal, deadline, amount_raised, finalized, goal_reached, finalized_by, finalized_at, created_at`

// LedgerRepository implements port.LedgerRepository using pgxpool for
// PostgreSQL. The campaigns row is the per-campaign lock: Contribute and
// FinalizeCampaign take it with SELECT ... FOR UPDATE and do all their writes
// in the same transaction. Transactions run at READ COMMITTED; the row lock
// already orders writers and SERIALIZABLE would abort the second of two
// concurrent contributions instead of queueing it.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository returns a new repository instance.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

var txOptions = pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

// CreateCampaign allocates the id from ledger_sequences inside the insert
// transaction, so a rolled back insert gives the id back and ids stay dense.
func (r *LedgerRepository) CreateCampaign(ctx context.Context, nc domain.NewCampaign) (int64, error) {
	var id int64
	err := pgx.BeginTxFunc(ctx, r.pool, txOptions, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `UPDATE ledger_sequences SET next_value = next_value + 1 WHERE name = 'campaign' RETURNING next_value - 1`).Scan(&id)
		if err != nil {
			return fmt.Errorf("allocate campaign id: %w", err)
		}
		_, err = tx.Exec(ctx, `INSERT INTO campaigns (id, creator, title, funding_goal, deadline, created_at) VALUES ($1,$2,$3,$4,$5,$6)`,
			id, nc.Creator, nc.Title, nc.FundingGoal, nc.Deadline, nc.CreatedAt)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetCampaign returns a campaign by id.
func (r *LedgerRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.CampaignNotFound(id)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CountCampaigns returns the number of allocated ids.
func (r *LedgerRepository) CountCampaigns(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT next_value FROM ledger_sequences WHERE name = 'campaign'`).Scan(&n)
	return n, err
}

// ListCampaigns returns campaigns ordered by id.
func (r *LedgerRepository) ListCampaigns(ctx context.Context, offset, limit int) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY id OFFSET $1 LIMIT $2`, offset, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// Contribute commits the contribution record, the campaign total, the credit
// balance with the holder's running total and the journal entry in one transaction under the campaign row
// lock. The credit row is locked after the campaign row, which keeps the lock
// order acyclic across campaigns.
func (r *LedgerRepository) Contribute(ctx context.Context, req domain.ContributionRequest) (domain.Receipt, error) {
	var receipt domain.Receipt
	err := pgx.BeginTxFunc(ctx, r.pool, txOptions, func(tx pgx.Tx) error {
		c, err := lockCampaign(ctx, tx, req.CampaignID)
		if err != nil {
			return err
		}
		if err = c.CheckContribution(req); err != nil {
			return err
		}

		prev := domain.Totals{AmountRaised: c.AmountRaised}
		err = tx.QueryRow(ctx, `SELECT amount FROM contributions WHERE campaign_id = $1 AND contributor = $2`,
			req.CampaignID, req.Contributor).Scan(&prev.Contribution)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		_, err = tx.Exec(ctx, `INSERT INTO credit_accounts (holder, balance, contributed, updated_at) VALUES ($1, 0, 0, $2) ON CONFLICT (holder) DO NOTHING`,
			req.Contributor, req.At)
		if err != nil {
			return err
		}
		err = tx.QueryRow(ctx, `SELECT balance, contributed FROM credit_accounts WHERE holder = $1 FOR UPDATE`,
			req.Contributor).Scan(&prev.Balance, &prev.Contributed)
		if err != nil {
			return err
		}

		next, credit, err := prev.Accumulate(req)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `INSERT INTO contributions (campaign_id, contributor, amount, updated_at) VALUES ($1,$2,$3,$4)
ON CONFLICT (campaign_id, contributor) DO UPDATE SET amount = EXCLUDED.amount, updated_at = EXCLUDED.updated_at`,
			req.CampaignID, req.Contributor, next.Contribution, req.At)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `UPDATE campaigns SET amount_raised = $1 WHERE id = $2`, next.AmountRaised, req.CampaignID)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `UPDATE credit_accounts SET balance = $1, contributed = $2, updated_at = $3 WHERE holder = $4`,
			next.Balance, next.Contributed, req.At, req.Contributor)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `INSERT INTO contribution_journal
(receipt_id, campaign_id, contributor, amount, contribution_after, raised_after, credit_issued, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			req.ReceiptID.String(), req.CampaignID, req.Contributor, req.Amount, next.Contribution, next.AmountRaised, credit, req.At)
		if err != nil {
			return err
		}
		receipt = domain.NewReceipt(req, next, credit)
		return nil
	})
	if err != nil {
		return domain.Receipt{}, err
	}
	return receipt, nil
}

// GetContribution returns the cumulative amount, 0 when absent.
func (r *LedgerRepository) GetContribution(ctx context.Context, campaignID int64, contributor string) (int64, error) {
	var amount int64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(ct.amount, 0)
FROM campaigns c
LEFT JOIN contributions ct ON ct.campaign_id = c.id AND ct.contributor = $2
WHERE c.id = $1`, campaignID, contributor).Scan(&amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.CampaignNotFound(campaignID)
	}
	return amount, err
}

// ListReceipts returns the journal of a campaign in commit order.
func (r *LedgerRepository) ListReceipts(ctx context.Context, campaignID int64) ([]domain.Receipt, error) {
	if err := r.ensureCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, `SELECT receipt_id::text, campaign_id, contributor, amount, contribution_after, raised_after, credit_issued, created_at
FROM contribution_journal WHERE campaign_id = $1 ORDER BY seq`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Receipt, error) {
		var (
			rc domain.Receipt
			id string
		)
		err := row.Scan(&id, &rc.CampaignID, &rc.Contributor, &rc.Amount, &rc.Contribution, &rc.AmountRaised, &rc.CreditIssued, &rc.CreatedAt)
		if err != nil {
			return rc, err
		}
		rc.ID, err = uuid.Parse(id)
		return rc, err
	})
}

// FinalizeCampaign records the outcome under the campaign row lock.
func (r *LedgerRepository) FinalizeCampaign(ctx context.Context, id int64, caller string, now time.Time) (*domain.Campaign, error) {
	var out *domain.Campaign
	err := pgx.BeginTxFunc(ctx, r.pool, txOptions, func(tx pgx.Tx) error {
		c, err := lockCampaign(ctx, tx, id)
		if err != nil {
			return err
		}
		if err = c.CheckFinalizable(now); err != nil {
			return err
		}
		c.Finalize(caller, now)
		_, err = tx.Exec(ctx, `UPDATE campaigns SET finalized = TRUE, goal_reached = $1, finalized_by = $2, finalized_at = $3 WHERE id = $4`,
			c.GoalReached, c.FinalizedBy, c.FinalizedAt, id)
		if err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListEndedUnfinalized returns ids of campaigns past their deadline. A
// non-positive limit is sent as LIMIT NULL, which returns every match.
func (r *LedgerRepository) ListEndedUnfinalized(ctx context.Context, now time.Time, limit int) ([]int64, error) {
	var lim *int64
	if limit > 0 {
		n := int64(limit)
		lim = &n
	}
	rows, err := r.pool.Query(ctx, `SELECT id FROM campaigns WHERE NOT finalized AND deadline <= $1 ORDER BY id LIMIT $2`, now, lim)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int64])
}

// BalanceOf returns the holder's credit, 0 when absent.
func (r *LedgerRepository) BalanceOf(ctx context.Context, holder string) (int64, error) {
	var balance int64
	err := r.pool.QueryRow(ctx, `SELECT balance FROM credit_accounts WHERE holder = $1`, holder).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return balance, err
}

func (r *LedgerRepository) ensureCampaign(ctx context.Context, id int64) error {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domain.CampaignNotFound(id)
	}
	return nil
}

func lockCampaign(ctx context.Context, tx pgx.Tx, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(tx.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.CampaignNotFound(id)
	}
	return c, err
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c           domain.Campaign
		finalizedBy *string
	)
	err := row.Scan(&c.ID, &c.Creator, &c.Title, &c.FundingGoal, &c.Deadline, &c.AmountRaised,
		&c.Finalized, &c.GoalReached, &finalizedBy, &c.FinalizedAt, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	if finalizedBy != nil {
		c.FinalizedBy = *finalizedBy
	}
	c.Deadline = c.Deadline.UTC()
	return &c, nil
}
