package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gmarinho/stocklens/config"
	"github.com/gmarinho/stocklens/internal/api"
	"github.com/gmarinho/stocklens/internal/marketdata"
	"github.com/gmarinho/stocklens/internal/service"
	"github.com/gmarinho/stocklens/internal/storage"
)

// InitializeApp sets up all application dependencies and returns a
// fully configured Gin router, a cleanup function for graceful
// shutdown, and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Ensures the stock table exists.
//   - Initializes the repository, provider, service, and handler layers.
//   - Configures the Gin router with all routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	// Repository layer (DB access) and schema bootstrap
	repo := storage.NewSummaryRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	// Market-data provider
	provider := marketdata.NewYahooProvider(
		cfg.Provider.BaseURL,
		time.Duration(cfg.Provider.TimeoutSeconds)*time.Second,
	)

	// Service layer (lookup-or-compute flow)
	svc := service.NewSummaryService(repo, provider)

	// HTTP handler layer and router
	handler := api.NewHandler(svc)
	router := api.NewRouter(handler)

	// Health and readiness probes
	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
