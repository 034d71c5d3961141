package httpadapter

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdledger/internal/adapter/memory"
	"crowdledger/internal/adapter/usecase"
	"crowdledger/internal/core/domain"
	"crowdledger/internal/testutil"
)

type testServer struct {
	t      *testing.T
	router http.Handler
	clock  *testutil.FakeClock
}

func newTestServer(t *testing.T) *testServer {
	clock := testutil.NewFakeClock(0)
	token := domain.RewardToken{Name: "Reward", Symbol: "CRT", Ratio: domain.FixedRatio{Numerator: 100, Denominator: 1}}
	svc := usecase.NewLedgerUseCase(memory.NewLedgerRepository(), token, usecase.WithClock(clock))
	h := NewHandler(svc, slog.New(slog.DiscardHandler))
	return &testServer{t: t, router: h.Router(), clock: clock}
}

func (s *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestCampaignLifecycleOverHTTP(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/v1/campaigns", map[string]any{
		"creator": "0xabc", "title": "Well", "fundingGoal": 10, "durationSeconds": 3600,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(0), decode[map[string]int64](t, rec)["id"])

	s.clock.Set(10)
	rec = s.do(http.MethodPost, "/api/v1/campaigns/0/contributions", map[string]any{"contributor": "0xdef", "amount": 4})
	require.Equal(t, http.StatusCreated, rec.Code)
	receipt := decode[receiptResponse](t, rec)
	assert.Equal(t, int64(4), receipt.AmountRaised)
	assert.Equal(t, int64(400), receipt.CreditIssued)
	assert.NotEmpty(t, receipt.ReceiptID)

	rec = s.do(http.MethodGet, "/api/v1/campaigns/0", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	c := decode[campaignResponse](t, rec)
	assert.Equal(t, int64(4), c.AmountRaised)
	assert.Equal(t, int64(3600), c.Deadline)
	assert.True(t, c.IsActive)
	assert.Equal(t, domain.StatusActive, c.Status)
	assert.Equal(t, int64(4000), c.ProgressBps)

	rec = s.do(http.MethodPost, "/api/v1/campaigns/0/finalize", map[string]any{"caller": "0xabc"})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, domain.CodeNotYetEnded, decode[errorResponse](t, rec).Code)

	s.clock.Set(3601)
	rec = s.do(http.MethodPost, "/api/v1/campaigns/0/finalize", map[string]any{"caller": "0xabc"})
	require.Equal(t, http.StatusOK, rec.Code)
	c = decode[campaignResponse](t, rec)
	assert.True(t, c.Finalized)
	assert.False(t, c.GoalReached)
	require.NotNil(t, c.FinalizedAt)
	assert.Equal(t, int64(3601), *c.FinalizedAt)

	rec = s.do(http.MethodPost, "/api/v1/campaigns/0/finalize", map[string]any{"caller": "0xabc"})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, domain.CodeAlreadyFinalized, decode[errorResponse](t, rec).Code)

	rec = s.do(http.MethodPost, "/api/v1/campaigns/0/contributions", map[string]any{"contributor": "0xdef", "amount": 1})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, domain.CodeCampaignClosed, decode[errorResponse](t, rec).Code)

	rec = s.do(http.MethodGet, "/api/v1/campaigns/0/contributions/0xdef", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(4), decode[map[string]int64](t, rec)["amount"])

	rec = s.do(http.MethodGet, "/api/v1/campaigns/0/contributions/0x999", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(0), decode[map[string]int64](t, rec)["amount"])

	rec = s.do(http.MethodGet, "/api/v1/campaigns/0/contributions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]receiptResponse](t, rec), 1)

	rec = s.do(http.MethodGet, "/api/v1/credits/0xdef", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(400), decode[map[string]int64](t, rec)["balance"])
}

func TestListAndCount(t *testing.T) {
	s := newTestServer(t)
	for _, title := range []string{"a", "b", "c"} {
		rec := s.do(http.MethodPost, "/api/v1/campaigns", map[string]any{
			"creator": "x", "title": title, "fundingGoal": 1, "durationSeconds": 60,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := s.do(http.MethodGet, "/api/v1/campaigns/count", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), decode[map[string]int64](t, rec)["total"])

	rec = s.do(http.MethodGet, "/api/v1/campaigns?offset=1&limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]campaignResponse](t, rec)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].Title)

	rec = s.do(http.MethodGet, "/api/v1/campaigns?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestErrorMapping(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/v1/campaigns/42", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domain.CodeNotFound, decode[errorResponse](t, rec).Code)

	rec = s.do(http.MethodGet, "/api/v1/campaigns/nope", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/campaigns", map[string]any{
		"creator": "x", "title": "", "fundingGoal": 1, "durationSeconds": 60,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domain.CodeInvalidArgument, decode[errorResponse](t, rec).Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns", bytes.NewBufferString("{"))
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRewardToken(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(http.MethodGet, "/api/v1/credits", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tok := decode[rewardTokenResponse](t, rec)
	assert.Equal(t, "CRT", tok.Symbol)
	assert.Equal(t, int64(100), tok.IssuanceNumerator)
	assert.Equal(t, int64(1), tok.IssuanceDenominator)
}
