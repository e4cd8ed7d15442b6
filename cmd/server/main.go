// Package main initializes and starts the data-vault ledger server,
// setting up configuration, logging, the database, repositories, services
// and HTTP handlers.
package main

import (
	"cmp"
	"context"
	"fmt"
	"time"

	nethttp "net/http"

	"github.com/avilov/datavault/internal/config"
	"github.com/avilov/datavault/internal/db"
	"github.com/avilov/datavault/internal/logger"
	"github.com/avilov/datavault/internal/repository"
	"github.com/avilov/datavault/internal/server/handler/http"
	"github.com/avilov/datavault/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()
	addr := options.Port

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	if options.JWTSecret == "" {
		zapLogger.Fatal("JWT secret is required (-s or JWT_SECRET)")
	}
	jwtSecret := []byte(options.JWTSecret)

	// Initialize PostgreSQL connection and apply migrations.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}
	if err := db.RunMigrations(context.Background(), postgresDB); err != nil {
		zapLogger.Fatal("cannot run migrations", zap.Error(err))
	}

	// Repository manager vending PostgreSQL-backed repositories.
	repos := repository.NewPostgresManager()

	// Initialize business-logic services.
	tokenTTL := time.Duration(options.TokenTTLMinutes) * time.Minute
	authService := service.NewAuthService(postgresDB, repos, jwtSecret, tokenTTL, options.StartingBalance)
	vaultService := service.NewVaultService(postgresDB, repos)
	recordService := service.NewRecordService(postgresDB, repos)
	accessService := service.NewAccessService(postgresDB, repos)
	heightService := service.NewHeightService(postgresDB, repos, options.SystemOwner, options.MaxChainHeight, zapLogger)

	// Create HTTP handlers.
	authHandler := &http.AuthHandler{AuthService: authService}
	vaultHandler := &http.VaultHandler{VaultService: vaultService}
	recordHandler := &http.RecordHandler{RecordService: recordService}
	accessHandler := &http.AccessHandler{AccessService: accessService}
	adminHandler := &http.AdminHandler{HeightService: heightService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, vaultHandler, recordHandler, accessHandler, adminHandler, zapLogger, jwtSecret)

	server := &nethttp.Server{
		Addr:    addr,
		Handler: router,
	}

	if options.TLSCert != "" && options.TLSKey != "" {
		zapLogger.Info("starting HTTPS server", zap.String("addr", addr))
		if err := server.ListenAndServeTLS(options.TLSCert, options.TLSKey); err != nil {
			zapLogger.Fatal("failed to start HTTPS server", zap.Error(err))
		}
		return
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
