package domain

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(sec int64) time.Time { return time.Unix(sec, 0).UTC() }

func TestBuildNewCampaign(t *testing.T) {
	nc, err := BuildNewCampaign("alice", "Solar roof", 10, 3600, at(100))
	require.NoError(t, err)
	assert.Equal(t, at(3700), nc.Deadline)
	assert.Equal(t, at(100), nc.CreatedAt)

	c := nc.Campaign(7)
	assert.Equal(t, int64(7), c.ID)
	assert.Zero(t, c.AmountRaised)
	assert.False(t, c.Finalized)
}

func TestBuildNewCampaignRejectsBadInput(t *testing.T) {
	cases := map[string]struct {
		creator, title string
		goal, duration int64
	}{
		"empty title":       {"alice", "", 10, 60},
		"blank title":       {"alice", "   ", 10, 60},
		"empty creator":     {"", "t", 10, 60},
		"zero goal":         {"alice", "t", 0, 60},
		"negative goal":     {"alice", "t", -1, 60},
		"zero duration":     {"alice", "t", 10, 0},
		"negative duration": {"alice", "t", 10, -5},
		"overflow":          {"alice", "t", 10, math.MaxInt64},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := BuildNewCampaign(tc.creator, tc.title, tc.goal, tc.duration, at(100))
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestCampaignLifecycle(t *testing.T) {
	c := Campaign{ID: 1, FundingGoal: 10, Deadline: at(3600), AmountRaised: 8}

	assert.True(t, c.IsActive(at(30)))
	assert.Equal(t, StatusActive, c.Status(at(30)))
	assert.NoError(t, c.CheckContributable(at(3599)))
	assert.ErrorIs(t, c.CheckFinalizable(at(3599)), ErrNotYetEnded)

	// the deadline second itself is already closed
	assert.False(t, c.IsActive(at(3600)))
	assert.Equal(t, StatusEnded, c.Status(at(3600)))
	assert.ErrorIs(t, c.CheckContributable(at(3600)), ErrCampaignClosed)
	assert.NoError(t, c.CheckFinalizable(at(3600)))

	c.Finalize("bob", at(3601))
	assert.True(t, c.Finalized)
	assert.False(t, c.GoalReached)
	assert.Equal(t, "bob", c.FinalizedBy)
	require.NotNil(t, c.FinalizedAt)
	assert.Equal(t, at(3601), *c.FinalizedAt)
	assert.Equal(t, StatusFailed, c.Status(at(3601)))
	assert.ErrorIs(t, c.CheckFinalizable(at(4000)), ErrAlreadyFinalized)
	assert.ErrorIs(t, c.CheckContributable(at(10)), ErrCampaignClosed)
}

func TestFinalizeGoalReachedAtExactGoal(t *testing.T) {
	c := Campaign{FundingGoal: 10, AmountRaised: 10, Deadline: at(100)}
	c.Finalize("x", at(100))
	assert.True(t, c.GoalReached)
	assert.Equal(t, StatusSuccessful, c.Status(at(100)))
}

func TestProgressBps(t *testing.T) {
	assert.Equal(t, int64(8000), (&Campaign{FundingGoal: 10, AmountRaised: 8}).ProgressBps())
	assert.Equal(t, int64(12000), (&Campaign{FundingGoal: 10, AmountRaised: 12}).ProgressBps())
	assert.Equal(t, int64(math.MaxInt64), (&Campaign{FundingGoal: 1, AmountRaised: math.MaxInt64}).ProgressBps())
}

func TestErrorCodes(t *testing.T) {
	err := NewError(CodeCampaignClosed, "campaign %d ended", 3)
	wrapped := errors.Join(errors.New("ctx"), err)

	assert.ErrorIs(t, wrapped, ErrCampaignClosed)
	assert.NotErrorIs(t, wrapped, ErrNotFound)
	assert.Equal(t, CodeCampaignClosed, CodeOf(wrapped))
	assert.Equal(t, CodeUnknown, CodeOf(errors.New("boom")))
	assert.Equal(t, "CAMPAIGN_CLOSED: campaign 3 ended", err.Error())
	assert.True(t, CodeNotYetEnded.Retryable())
	assert.False(t, CodeAlreadyFinalized.Retryable())
}
