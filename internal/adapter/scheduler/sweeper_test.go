package scheduler

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdledger/internal/adapter/memory"
	"crowdledger/internal/adapter/usecase"
	"crowdledger/internal/config/configs"
	"crowdledger/internal/core/domain"
	"crowdledger/internal/testutil"
)

func TestSweepFinalizesEndedCampaigns(t *testing.T) {
	ctx := context.Background()
	clock := testutil.NewFakeClock(0)
	token := domain.RewardToken{Ratio: domain.FixedRatio{Numerator: 1, Denominator: 1}}
	svc := usecase.NewLedgerUseCase(memory.NewLedgerRepository(), token, usecase.WithClock(clock))

	funded, err := svc.CreateCampaign(ctx, "c", "funded", 5, 100)
	require.NoError(t, err)
	short, err := svc.CreateCampaign(ctx, "c", "short", 5, 100)
	require.NoError(t, err)
	open, err := svc.CreateCampaign(ctx, "c", "open", 5, 1000)
	require.NoError(t, err)
	_, err = svc.Contribute(ctx, funded, "x", 5)
	require.NoError(t, err)

	cfg := configs.Sweep{Enabled: true, Interval: time.Hour, BatchSize: 10, Caller: "system:sweeper"}
	sw, err := NewSweeper(svc, cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	sw.Start()
	defer func() { assert.NoError(t, sw.Stop()) }()

	clock.Set(200)
	sw.Run(ctx)

	c, err := svc.GetCampaign(ctx, funded)
	require.NoError(t, err)
	assert.True(t, c.Finalized)
	assert.True(t, c.GoalReached)
	assert.Equal(t, "system:sweeper", c.FinalizedBy)

	c, err = svc.GetCampaign(ctx, short)
	require.NoError(t, err)
	assert.True(t, c.Finalized)
	assert.False(t, c.GoalReached)

	c, err = svc.GetCampaign(ctx, open)
	require.NoError(t, err)
	assert.False(t, c.Finalized)

	// a second run finds nothing left to do
	sw.Run(ctx)
	_, err = svc.FinalizeCampaign(ctx, funded, "someone")
	assert.ErrorIs(t, err, domain.ErrAlreadyFinalized)
}
