package domain

import (
	"errors"
	"fmt"
)

// Code is a machine-readable ledger error code. Every rejection the ledger
// produces carries exactly one code so that adapters can map it onto their own
// status space without parsing messages.
type Code string

const (
	// CodeUnknown is returned by CodeOf for errors that did not originate in
	// the ledger rules (storage failures, encoding errors).
	CodeUnknown Code = "UNKNOWN"

	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeNotFound         Code = "NOT_FOUND"
	CodeCampaignClosed   Code = "CAMPAIGN_CLOSED"
	CodeNotYetEnded      Code = "NOT_YET_ENDED"
	CodeAlreadyFinalized Code = "ALREADY_FINALIZED"
)

// Retryable reports whether the same request may succeed later without
// changes. Only NotYetEnded qualifies: the deadline eventually passes.
func (c Code) Retryable() bool {
	return c == CodeNotYetEnded
}

// Error is a rejection produced by the ledger rules.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches any *Error carrying the same code, so the sentinels below work
// with errors.Is regardless of the message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for errors.Is checks.
var (
	ErrInvalidArgument  = &Error{Code: CodeInvalidArgument}
	ErrNotFound         = &Error{Code: CodeNotFound}
	ErrCampaignClosed   = &Error{Code: CodeCampaignClosed}
	ErrNotYetEnded      = &Error{Code: CodeNotYetEnded}
	ErrAlreadyFinalized = &Error{Code: CodeAlreadyFinalized}
)

// NewError builds a ledger error with a formatted message.
func NewError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the ledger code from err, or CodeUnknown.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// CampaignNotFound is the NotFound error for an unallocated campaign id.
func CampaignNotFound(id int64) *Error {
	return NewError(CodeNotFound, "campaign %d not found", id)
}
