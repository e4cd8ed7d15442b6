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

// AccessService defines the access-ledger operations required by the
// AccessHandler.
type AccessService interface {
	// RequestDataAccess logs a paid access request by the caller for the
	// owner's record at index.
	RequestDataAccess(ctx context.Context, caller, owner string, index int64, reason string) error
	// GetInteractionLog returns the stored interaction for the triple, or nil.
	GetInteractionLog(ctx context.Context, owner, requester string, index int64) (*models.Interaction, error)
}

// AccessHandler handles HTTP requests for paid data access.
type AccessHandler struct {
	// AccessService performs the underlying access-ledger operations.
	AccessService AccessService
}

// accessRequest is the JSON payload for an access request.
type accessRequest struct {
	Owner  string `json:"owner"`
	Index  int64  `json:"index"`
	Reason string `json:"reason"`
}

// Request handles POST /api/access. The authenticated caller pays the
// owner's current access price.
func (h *AccessHandler) Request(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetAccountFromContext(r.Context())

	var req accessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	if err := h.AccessService.RequestDataAccess(r.Context(), caller, req.Owner, req.Index, req.Reason); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// GetLog handles GET /api/access/{owner}/{requester}/{index}. An absent
// entry yields 404.
func (h *AccessHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")
	requester := chi.URLParam(r, "requester")

	index, err := strconv.ParseInt(chi.URLParam(r, "index"), 10, 64)
	if err != nil {
		http.Error(w, "invalid index", http.StatusUnprocessableEntity)
		return
	}

	interaction, err := h.AccessService.GetInteractionLog(r.Context(), owner, requester, index)
	if err != nil {
		writeError(w, err)
		return
	}
	if interaction == nil {
		http.Error(w, "interaction not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(interaction)
}
