package main

//
//  @title           pricepulse API
//  @version         1.0
//  @description     Grocery price tracking, history & comparison service.
//  @termsOfService  https://github.com/priceintel/pricepulse
//  @contact.name    API Support
//  @contact.url     https://github.com/priceintel/pricepulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        prices
//  @tag.description Endpoints for querying listing price data
//
//  @tag.name        comparison
//  @tag.description Endpoints for comparing prices across listings and platforms
//
//  @tag.name        internal
//  @tag.description Internal ingestion endpoint used by crawlers
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/priceintel/pricepulse/config"
	_ "github.com/priceintel/pricepulse/docs" // swagger docs
	"github.com/priceintel/pricepulse/internal/app"
	"github.com/priceintel/pricepulse/internal/crawler"
	"github.com/priceintel/pricepulse/internal/logger"
	"github.com/priceintel/pricepulse/internal/service"
	"github.com/priceintel/pricepulse/internal/storage"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., DB connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runCrawler starts the simulated crawl scheduler as a standalone process
// and blocks until an OS interrupt signal is received.
func runCrawler(schedule string) {
	db, err := app.InitPostgres(config.AppConfig)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("db connect error")
	}
	defer func() { _ = db.Close() }()

	snapshots := storage.NewSnapshotRepository(db)
	catalogRepo := storage.NewCatalogRepository(db)
	cat := service.NewCatalog(catalogRepo)
	recorder := service.NewRecorder(snapshots, catalogRepo)
	ingestor := service.NewIngestor(cat, recorder)

	sched, err := crawler.NewScheduler(ingestor, schedule, crawler.DefaultJobs())
	if err != nil {
		logger.L().Fatal().Err(err).Msg("scheduler init error")
	}
	sched.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	sched.Stop()
	logger.L().Info().Msg("crawler exited gracefully")
}

// main is the entry point of the pricepulse application.
//
// Modes (selected via --mode flag):
//   - api:   Starts the REST API exposing price queries, comparisons and ingestion.
//     The in-process crawl scheduler is started alongside when CRAWLER_ENABLED=true.
//   - crawl: Runs only the simulated crawl scheduler against the database.
//
// Flags:
//   - --mode:     Execution mode ("api" or "crawl"). Default: "api".
//   - --port:     Port for the API server. Defaults to value from config (SERVER_PORT).
//   - --schedule: Cron expression for crawl mode. Defaults to value from config (CRAWLER_SCHEDULE).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or crawl")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	schedule := flag.String("schedule", config.AppConfig.Crawler.Schedule, "Cron schedule for crawl mode")
	flag.Parse()

	switch *mode {
	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "crawl":
		// Crawl mode: run the simulated crawlers on a schedule
		logger.L().Info().Str("schedule", *schedule).Msg("starting crawl scheduler")
		runCrawler(*schedule)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
