package http

import (
	"net/http"

	"github.com/avilov/datavault/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs the HTTP handler serving the data-vault ledger API.
//
// Routes:
//
//	POST /api/register                                → AuthHandler.Register (public)
//	POST /api/login                                   → AuthHandler.Login (public)
//	POST /api/vault                                   → VaultHandler.Create
//	PUT  /api/vault/fee                               → VaultHandler.UpdateFee
//	GET  /api/vault/{account}                         → VaultHandler.GetInfo
//	POST /api/records                                 → RecordHandler.Store
//	POST /api/records/{index}/toggle                  → RecordHandler.Toggle
//	GET  /api/records/{owner}/{index}                 → RecordHandler.Get
//	POST /api/access                                  → AccessHandler.Request
//	GET  /api/access/{owner}/{requester}/{index}      → AccessHandler.GetLog
//	PUT  /api/admin/height                            → AdminHandler.UpdateHeight
//	GET  /api/height                                  → AdminHandler.GetHeight
//
// Middleware chain (applied in order):
//  1. AllowContentType("application/json") — rejects non-JSON request bodies
//  2. WithRequestLogging(logger)           — logs each request
//  3. BearerAuth(jwtSecret)                — authenticates the caller
func NewRouter(
	authHandler *AuthHandler,
	vaultHandler *VaultHandler,
	recordHandler *RecordHandler,
	accessHandler *AccessHandler,
	adminHandler *AdminHandler,
	logger *zap.Logger,
	jwtSecret []byte,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))
	// Enforce bearer-token authentication
	r.Use(middleware.BearerAuth(jwtSecret))

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// Everything below requires a valid token
		r.Post("/vault", vaultHandler.Create)
		r.Put("/vault/fee", vaultHandler.UpdateFee)
		r.Get("/vault/{account}", vaultHandler.GetInfo)

		r.Post("/records", recordHandler.Store)
		r.Post("/records/{index}/toggle", recordHandler.Toggle)
		r.Get("/records/{owner}/{index}", recordHandler.Get)

		r.Post("/access", accessHandler.Request)
		r.Get("/access/{owner}/{requester}/{index}", accessHandler.GetLog)

		r.Put("/admin/height", adminHandler.UpdateHeight)
		r.Get("/height", adminHandler.GetHeight)
	})

	return r
}
