package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/avilov/datavault/internal/middleware"
	"github.com/avilov/datavault/internal/models"
	"github.com/go-chi/chi/v5"
)

// RecordService defines the record operations required by the RecordHandler.
type RecordService interface {
	// StoreEncryptedData appends a record to the caller's vault and returns
	// its new 1-based index.
	StoreEncryptedData(ctx context.Context, caller, hash, blob, tag, proof string) (int64, error)
	// ToggleDataVisibility flips the accessibility of the caller's record.
	ToggleDataVisibility(ctx context.Context, caller string, index int64) error
	// GetEncryptedRecord returns the record at (owner, index), or nil.
	GetEncryptedRecord(ctx context.Context, owner string, index int64) (*models.Record, error)
}

// RecordHandler handles HTTP requests for encrypted-record storage and
// visibility.
type RecordHandler struct {
	// RecordService performs the underlying record operations.
	RecordService RecordService
}

// storeRequest is the JSON payload for storing an encrypted record.
type storeRequest struct {
	ContentHash    string `json:"content_hash"`
	EncryptedBlob  string `json:"encrypted_blob"`
	CategoryTag    string `json:"category_tag"`
	ProofSignature string `json:"proof_signature"`
}

// Store handles POST /api/records for the authenticated caller.
func (h *RecordHandler) Store(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetAccountFromContext(r.Context())

	var req storeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	index, err := h.RecordService.StoreEncryptedData(r.Context(), caller,
		req.ContentHash, req.EncryptedBlob, req.CategoryTag, req.ProofSignature)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]int64{"index": index})
}

// Toggle handles POST /api/records/{index}/toggle for the caller's own record.
func (h *RecordHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetAccountFromContext(r.Context())

	index, err := strconv.ParseInt(chi.URLParam(r, "index"), 10, 64)
	if err != nil {
		http.Error(w, "invalid index", http.StatusUnprocessableEntity)
		return
	}

	if err := h.RecordService.ToggleDataVisibility(r.Context(), caller, index); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Get handles GET /api/records/{owner}/{index}. An absent record yields 404.
func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")

	index, err := strconv.ParseInt(chi.URLParam(r, "index"), 10, 64)
	if err != nil {
		http.Error(w, "invalid index", http.StatusUnprocessableEntity)
		return
	}

	record, err := h.RecordService.GetEncryptedRecord(r.Context(), owner, index)
	if err != nil {
		writeError(w, err)
		return
	}
	if record == nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(record)
}
