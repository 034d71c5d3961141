package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"crowdledger/internal/core/domain"
	"crowdledger/internal/core/port"
)

type errorResponse struct {
	Code  domain.Code `json:"code"`
	Error string      `json:"error"`
}

type campaignResponse struct {
	ID           int64         `json:"id"`
	Creator      string        `json:"creator"`
	Title        string        `json:"title"`
	FundingGoal  int64         `json:"fundingGoal"`
	Deadline     int64         `json:"deadline"`
	AmountRaised int64         `json:"amountRaised"`
	Finalized    bool          `json:"finalized"`
	GoalReached  bool          `json:"goalReached"`
	IsActive     bool          `json:"isActive"`
	Status       domain.Status `json:"status"`
	ProgressBps  int64         `json:"progressBps"`
	FinalizedBy  string        `json:"finalizedBy,omitempty"`
	FinalizedAt  *int64        `json:"finalizedAt,omitempty"`
	CreatedAt    int64         `json:"createdAt"`
}

func newCampaignResponse(v *port.CampaignView) campaignResponse {
	resp := campaignResponse{
		ID:           v.ID,
		Creator:      v.Creator,
		Title:        v.Title,
		FundingGoal:  v.FundingGoal,
		Deadline:     v.Deadline.Unix(),
		AmountRaised: v.AmountRaised,
		Finalized:    v.Finalized,
		GoalReached:  v.GoalReached,
		IsActive:     v.IsActive,
		Status:       v.Status,
		ProgressBps:  v.ProgressBps,
		FinalizedBy:  v.FinalizedBy,
		CreatedAt:    v.CreatedAt.Unix(),
	}
	if v.FinalizedAt != nil {
		at := v.FinalizedAt.Unix()
		resp.FinalizedAt = &at
	}
	return resp
}

type receiptResponse struct {
	ReceiptID    string `json:"receiptId"`
	CampaignID   int64  `json:"campaignId"`
	Contributor  string `json:"contributor"`
	Amount       int64  `json:"amount"`
	Contribution int64  `json:"contribution"`
	AmountRaised int64  `json:"amountRaised"`
	CreditIssued int64  `json:"creditIssued"`
	CreatedAt    int64  `json:"createdAt"`
}

func newReceiptResponse(r *domain.Receipt) receiptResponse {
	return receiptResponse{
		ReceiptID:    r.ID.String(),
		CampaignID:   r.CampaignID,
		Contributor:  r.Contributor,
		Amount:       r.Amount,
		Contribution: r.Contribution,
		AmountRaised: r.AmountRaised,
		CreditIssued: r.CreditIssued,
		CreatedAt:    r.CreatedAt.Unix(),
	}
}

// writeJSON encodes v with the given status. Encoding errors are logged only,
// the status line is already on the wire.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps ledger error codes onto HTTP statuses. Errors without a
// ledger code are logged and reported as a generic internal error.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var lerr *domain.Error
	if !errors.As(err, &lerr) {
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Code: domain.CodeUnknown, Error: "internal error"})
		return
	}
	h.writeJSON(w, statusFor(lerr.Code), errorResponse{Code: lerr.Code, Error: lerr.Error()})
}

func statusFor(code domain.Code) int {
	switch code {
	case domain.CodeInvalidArgument:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeCampaignClosed, domain.CodeNotYetEnded, domain.CodeAlreadyFinalized:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) badRequest(w http.ResponseWriter, msg string) {
	h.writeJSON(w, http.StatusBadRequest, errorResponse{Code: domain.CodeInvalidArgument, Error: msg})
}

// campaignID parses the {id} path parameter.
func campaignID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
