package httpadapter

import (
	"net/http"
	"strconv"

	"crowdledger/internal/core/port"
)

type createCampaignRequest struct {
	Creator         string `json:"creator"`
	Title           string `json:"title"`
	FundingGoal     int64  `json:"fundingGoal"`
	DurationSeconds int64  `json:"durationSeconds"`
}

// handleCreateCampaign registers a campaign and returns its id with HTTP 201.
// Validation failures produce HTTP 400.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		h.badRequest(w, "invalid JSON")
		return
	}
	id, err := h.svc.CreateCampaign(r.Context(), req.Creator, req.Title, req.FundingGoal, req.DurationSeconds)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// handleListCampaigns returns a page of campaigns. It accepts optional
// `offset` and `limit` query parameters.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	var (
		q   = r.URL.Query()
		req port.ListReq
		err error
	)
	if s := q.Get("offset"); s != "" {
		if req.Offset, err = strconv.Atoi(s); err != nil {
			h.badRequest(w, "invalid offset")
			return
		}
	}
	if s := q.Get("limit"); s != "" {
		if req.Limit, err = strconv.Atoi(s); err != nil {
			h.badRequest(w, "invalid limit")
			return
		}
	}
	views, err := h.svc.ListCampaigns(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]campaignResponse, 0, len(views))
	for i := range views {
		out = append(out, newCampaignResponse(&views[i]))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCountCampaigns(w http.ResponseWriter, r *http.Request) {
	total, err := h.svc.GetTotalCampaigns(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{"total": total})
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		h.badRequest(w, "invalid campaign id")
		return
	}
	v, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignResponse(v))
}

type finalizeRequest struct {
	Caller string `json:"caller"`
}

// handleFinalizeCampaign settles an ended campaign and returns the updated
// snapshot. Early or repeated finalization produces HTTP 409.
func (h *Handler) handleFinalizeCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		h.badRequest(w, "invalid campaign id")
		return
	}
	var req finalizeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.badRequest(w, "invalid JSON")
		return
	}
	v, err := h.svc.FinalizeCampaign(r.Context(), id, req.Caller)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignResponse(v))
}
