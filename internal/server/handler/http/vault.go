package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avilov/datavault/internal/middleware"
	"github.com/avilov/datavault/internal/models"
	"github.com/go-chi/chi/v5"
)

// VaultService defines the vault operations required by the VaultHandler.
type VaultService interface {
	// CreateStorage registers a vault for the caller with the given fee.
	CreateStorage(ctx context.Context, caller string, fee int64) error
	// UpdateAccessFee replaces the caller's access price.
	UpdateAccessFee(ctx context.Context, caller string, fee int64) error
	// GetStorageInfo returns the account's vault, or nil when absent.
	GetStorageInfo(ctx context.Context, account string) (*models.Vault, error)
}

// VaultHandler handles HTTP requests for vault registration and pricing.
type VaultHandler struct {
	// VaultService performs the underlying vault operations.
	VaultService VaultService
}

// feeRequest is the JSON payload for vault creation and fee updates.
type feeRequest struct {
	Fee int64 `json:"fee"`
}

// Create handles POST /api/vault. The authenticated caller becomes the
// vault's owner.
func (h *VaultHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetAccountFromContext(r.Context())

	var req feeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	if err := h.VaultService.CreateStorage(r.Context(), caller, req.Fee); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// UpdateFee handles PUT /api/vault/fee for the authenticated caller's vault.
func (h *VaultHandler) UpdateFee(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetAccountFromContext(r.Context())

	var req feeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	if err := h.VaultService.UpdateAccessFee(r.Context(), caller, req.Fee); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// GetInfo handles GET /api/vault/{account}. An absent vault yields 404.
func (h *VaultHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	account := chi.URLParam(r, "account")

	vault, err := h.VaultService.GetStorageInfo(r.Context(), account)
	if err != nil {
		writeError(w, err)
		return
	}
	if vault == nil {
		http.Error(w, "vault not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(vault)
}
