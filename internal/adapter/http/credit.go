package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type rewardTokenResponse struct {
	Name                string `json:"name"`
	Symbol              string `json:"symbol"`
	IssuanceNumerator   int64  `json:"issuanceNumerator"`
	IssuanceDenominator int64  `json:"issuanceDenominator"`
}

func (h *Handler) handleBalanceOf(w http.ResponseWriter, r *http.Request) {
	balance, err := h.svc.BalanceOf(r.Context(), chi.URLParam(r, "identity"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{"balance": balance})
}

func (h *Handler) handleRewardToken(w http.ResponseWriter, _ *http.Request) {
	t := h.svc.RewardToken()
	h.writeJSON(w, http.StatusOK, rewardTokenResponse{
		Name:                t.Name,
		Symbol:              t.Symbol,
		IssuanceNumerator:   t.Ratio.Numerator,
		IssuanceDenominator: t.Ratio.Denominator,
	})
}
