package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type contributeRequest struct {
	Contributor string `json:"contributor"`
	Amount      int64  `json:"amount"`
}

// handleContribute records a contribution and returns the receipt with HTTP
// 201. Contributions to a closed campaign produce HTTP 409.
func (h *Handler) handleContribute(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		h.badRequest(w, "invalid campaign id")
		return
	}
	var req contributeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.badRequest(w, "invalid JSON")
		return
	}
	receipt, err := h.svc.Contribute(r.Context(), id, req.Contributor, req.Amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newReceiptResponse(receipt))
}

func (h *Handler) handleGetContribution(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		h.badRequest(w, "invalid campaign id")
		return
	}
	amount, err := h.svc.GetContribution(r.Context(), id, chi.URLParam(r, "contributor"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{"amount": amount})
}

func (h *Handler) handleListContributions(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		h.badRequest(w, "invalid campaign id")
		return
	}
	receipts, err := h.svc.ListContributions(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]receiptResponse, 0, len(receipts))
	for i := range receipts {
		out = append(out, newReceiptResponse(&receipts[i]))
	}
	h.writeJSON(w, http.StatusOK, out)
}
