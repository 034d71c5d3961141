package postgres

import (
	"context"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdledger/internal/config/configs"
	"crowdledger/internal/core/domain"
	"crowdledger/internal/db"
)

// newTestRepository connects to the database named by CROWDLEDGER_TEST_PSQL,
// migrates it and empties the ledger tables. Tests are skipped without it.
func newTestRepository(t *testing.T) *LedgerRepository {
	t.Helper()
	addr := os.Getenv("CROWDLEDGER_TEST_PSQL")
	if addr == "" {
		t.Skip("CROWDLEDGER_TEST_PSQL not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(addr))

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	truncate(t, pool)
	return NewLedgerRepository(pool)
}

func truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()
	_, err := pool.Exec(ctx, `TRUNCATE contribution_journal, credit_accounts, contributions, campaigns`)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `UPDATE ledger_sequences SET next_value = 0 WHERE name = 'campaign'`)
	require.NoError(t, err)
}

func at(sec int64) time.Time { return time.Unix(sec, 0).UTC() }

var hundredfold = domain.FixedRatio{Numerator: 100, Denominator: 1}

func TestPostgresLedger(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	id, err := r.CreateCampaign(ctx, domain.NewCampaign{Creator: "c", Title: "t", FundingGoal: 10, Deadline: at(100), CreatedAt: at(0)})
	require.NoError(t, err)
	assert.Equal(t, int64(0), id)

	_, err = r.GetCampaign(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	req := domain.ContributionRequest{ReceiptID: uuid.New(), CampaignID: id, Contributor: "x", Amount: 12, Policy: hundredfold, At: at(50)}
	rc, err := r.Contribute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(12), rc.AmountRaised)

	_, err = r.FinalizeCampaign(ctx, id, "x", at(99))
	assert.ErrorIs(t, err, domain.ErrNotYetEnded)

	c, err := r.FinalizeCampaign(ctx, id, "x", at(101))
	require.NoError(t, err)
	assert.True(t, c.GoalReached)

	_, err = r.FinalizeCampaign(ctx, id, "x", at(102))
	assert.ErrorIs(t, err, domain.ErrAlreadyFinalized)

	req.ReceiptID = uuid.New()
	_, err = r.Contribute(ctx, req)
	assert.ErrorIs(t, err, domain.ErrCampaignClosed)

	amount, err := r.GetContribution(ctx, id, "x")
	require.NoError(t, err)
	assert.Equal(t, int64(12), amount)
	balance, err := r.BalanceOf(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, int64(1200), balance)

	journal, err := r.ListReceipts(ctx, id)
	require.NoError(t, err)
	require.Len(t, journal, 1)
	assert.Equal(t, rc.ID, journal[0].ID)

	n, err := r.CountCampaigns(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestPostgresConcurrentContributions(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	id, err := r.CreateCampaign(ctx, domain.NewCampaign{Creator: "c", Title: "t", FundingGoal: 10, Deadline: at(100), CreatedAt: at(0)})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Contribute(ctx, domain.ContributionRequest{
				ReceiptID: uuid.New(), CampaignID: id, Contributor: "same", Amount: 5, Policy: domain.FixedRatio{Numerator: 1, Denominator: 1}, At: at(10),
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	c, err := r.GetCampaign(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(50), c.AmountRaised)
	balance, err := r.BalanceOf(ctx, "same")
	require.NoError(t, err)
	assert.Equal(t, int64(50), balance)
}

func TestPostgresFractionalRatioAndSweepLimit(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	var ids []int64
	for i := 0; i < 3; i++ {
		id, err := r.CreateCampaign(ctx, domain.NewCampaign{Creator: "c", Title: "t", FundingGoal: 10, Deadline: at(100), CreatedAt: at(0)})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	for i := 0; i < 4; i++ {
		_, err := r.Contribute(ctx, domain.ContributionRequest{
			ReceiptID: uuid.New(), CampaignID: ids[i%2], Contributor: "x", Amount: 1,
			Policy: domain.FixedRatio{Numerator: 1, Denominator: 2}, At: at(10),
		})
		require.NoError(t, err)
	}
	balance, err := r.BalanceOf(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, int64(2), balance)

	_, err = r.Contribute(ctx, domain.ContributionRequest{
		ReceiptID: uuid.New(), CampaignID: 99, Contributor: "x", Amount: 0, Policy: hundredfold, At: at(10),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	ended, err := r.ListEndedUnfinalized(ctx, at(100), 0)
	require.NoError(t, err)
	assert.Equal(t, ids, ended)
	ended, err = r.ListEndedUnfinalized(ctx, at(100), 2)
	require.NoError(t, err)
	assert.Equal(t, ids[:2], ended)
}
