// Package http provides HTTP routing and JSON handlers for the data-vault
// ledger API.
package http

import (
	"errors"
	"net/http"

	"github.com/avilov/datavault/internal/common"
)

// statusForError maps the caller-facing error taxonomy to its fixed HTTP
// status codes. The numeric codes are part of the API contract, including
// the unusual 403 for a missing record.
func statusForError(err error) int {
	switch {
	case errors.Is(err, common.ErrAccessDenied):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrInvalidPrice):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrInvalidInput):
		return http.StatusUnprocessableEntity
	case errors.Is(err, common.ErrRecordNotFound):
		return http.StatusForbidden
	case errors.Is(err, common.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	case errors.Is(err, common.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err as a plain-text response with its mapped status.
func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusForError(err))
}
