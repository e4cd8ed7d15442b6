package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avilov/datavault/internal/models"
)

// AuthService defines the account operations required by the AuthHandler.
type AuthService interface {
	// Register creates a new account for the given login and password.
	Register(ctx context.Context, login, password string) (*models.Account, error)
	// Login verifies credentials and returns a signed bearer token.
	Login(ctx context.Context, login, password string) (string, error)
}

// AuthHandler handles account registration and login requests.
type AuthHandler struct {
	// AuthService performs the underlying account operations.
	AuthService AuthService
}

// credentialsRequest is the JSON payload for registration and login.
type credentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Register handles POST /api/register. It creates an account and returns its
// opaque identifier, which other callers use to address the account's vault.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	acc, err := h.AuthService.Register(r.Context(), req.Login, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"account": acc.ID})
}

// Login handles POST /api/login and returns a bearer token for the account.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"token": token})
}
