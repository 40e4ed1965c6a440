package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/priceintel/pricepulse/config"
	"github.com/priceintel/pricepulse/internal/api"
	"github.com/priceintel/pricepulse/internal/crawler"
	"github.com/priceintel/pricepulse/internal/service"
	"github.com/priceintel/pricepulse/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Initializes the repository layer (snapshots and catalog).
//   - Wires the service layer (queries, comparison, catalog, recording, ingestion).
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Connect to PostgreSQL
	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	// Initialize repository layer (responsible for DB access)
	snapshots := storage.NewSnapshotRepository(db)
	catalogRepo := storage.NewCatalogRepository(db)

	// Initialize service layer (business logic)
	query := service.NewQuery(snapshots)
	comparer := service.NewComparer(snapshots, catalogRepo)
	cat := service.NewCatalog(catalogRepo)
	recorder := service.NewRecorder(snapshots, catalogRepo)
	ingestor := service.NewIngestor(cat, recorder)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(query, comparer, ingestor)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	// Optional in-process crawl scheduler
	var sched *crawler.Scheduler
	if cfg.Crawler.Enabled {
		sched, err = crawler.NewScheduler(ingestor, cfg.Crawler.Schedule, crawler.DefaultJobs())
		if err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to initialize crawl scheduler: %w", err)
		}
		sched.Start()
	}

	// Cleanup resources on shutdown
	cleanup := func() {
		if sched != nil {
			sched.Stop()
		}
		_ = db.Close()
	}

	return router, cleanup, nil
}
