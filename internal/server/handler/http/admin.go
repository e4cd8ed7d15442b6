package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avilov/datavault/internal/middleware"
)

// HeightService defines the chain-height operations required by the
// AdminHandler.
type HeightService interface {
	// UpdateChainHeight overwrites the global height counter; system owner only.
	UpdateChainHeight(ctx context.Context, caller string, height int64) error
	// CurrentHeight returns the current chain height.
	CurrentHeight(ctx context.Context) (int64, error)
}

// AdminHandler handles HTTP requests for the global height counter.
type AdminHandler struct {
	// HeightService performs the underlying chain-state operations.
	HeightService HeightService
}

// heightRequest is the JSON payload for a height update.
type heightRequest struct {
	Height int64 `json:"height"`
}

// UpdateHeight handles PUT /api/admin/height. Only the configured system
// owner passes the service's authorization check.
func (h *AdminHandler) UpdateHeight(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetAccountFromContext(r.Context())

	var req heightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	if err := h.HeightService.UpdateChainHeight(r.Context(), caller, req.Height); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// GetHeight handles GET /api/height.
func (h *AdminHandler) GetHeight(w http.ResponseWriter, r *http.Request) {
	height, err := h.HeightService.CurrentHeight(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]int64{"height": height})
}
