//go:build integration
// +build integration

package api_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	goose "github.com/pressly/goose/v3"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/priceintel/pricepulse/config"
	"github.com/priceintel/pricepulse/internal/app"
)

func startPG(t *testing.T) (dsn string, host string, port nat.Port, terminate func()) {
	t.Helper()
	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "pricepulse",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(h string, p nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=pricepulse sslmode=disable", h, p.Port())
		}).WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container: %v", err)
	}
	h, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	mp, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", "postgres", "postgres", h, mp.Port(), "pricepulse")
	terminate = func() { _ = c.Terminate(context.Background()) }
	return dsn, h, mp, terminate
}

func openAndMigrate(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("dialect: %v", err)
	}
	path := filepath.Join("..", "..", "db", "migrations")
	if err := goose.Up(db, path); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func ingestObservation(t *testing.T, router http.Handler, platform, price string, capturedAt time.Time) int64 {
	t.Helper()
	body := fmt.Sprintf(`{
		"brand_name": "Amul",
		"product_name": "Butter",
		"pack_size": "500g",
		"platform_name": %q,
		"city": "Bangalore",
		"product_url": "https://example.com/%s/amul-butter",
		"selling_price": %q,
		"availability": "IN_STOCK",
		"crawl_status": "SUCCESS",
		"captured_at": %q
	}`, platform, strings.ToLower(platform), price, capturedAt.Format(time.RFC3339))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/internal/ingest", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("ingest status: %d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		ListingID int64 `json:"listing_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	return resp.ListingID
}

func TestAPI_E2E_IngestAndCompare(t *testing.T) {
	dsn, host, port, term := startPG(t)
	defer term()
	db := openAndMigrate(t, dsn)
	defer db.Close()

	// Point application config to containerized DB
	config.AppConfig.Postgres.Host = host
	p, _ := nat.ParsePort(port.Port())
	config.AppConfig.Postgres.Port = int(p)
	config.AppConfig.Postgres.User = "postgres"
	config.AppConfig.Postgres.Password = "postgres"
	config.AppConfig.Postgres.DBName = "pricepulse"
	config.AppConfig.Postgres.SSLMode = "disable"
	config.AppConfig.Crawler.Enabled = false

	router, cleanup, err := app.InitializeApp()
	if err != nil {
		t.Fatalf("init app: %v", err)
	}
	defer cleanup()

	// Seed two platforms through the ingestion endpoint. Observations are
	// more than 30 minutes apart so none are suppressed as duplicates.
	now := time.Now().UTC().Truncate(time.Second)
	blinkitID := ingestObservation(t, router, "Blinkit", "250.00", now.Add(-2*time.Hour))
	ingestObservation(t, router, "Blinkit", "245.00", now)
	zeptoID := ingestObservation(t, router, "Zepto", "240.00", now)

	if blinkitID == zeptoID {
		t.Fatalf("expected distinct listings, both got %d", blinkitID)
	}

	// Latest must reflect the newest snapshot per listing
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/api/v1/listings/%d/latest", blinkitID), nil))
	if w.Code != http.StatusOK {
		t.Fatalf("latest status: %d body=%s", w.Code, w.Body.String())
	}
	var latest struct {
		Price string `json:"price"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &latest); err != nil {
		t.Fatalf("json: %v", err)
	}
	if latest.Price != "245.00" {
		t.Fatalf("unexpected latest price: %s", latest.Price)
	}

	// History returns both Blinkit snapshots chronologically
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/api/v1/listings/%d/history", blinkitID), nil))
	if w.Code != http.StatusOK {
		t.Fatalf("history status: %d body=%s", w.Code, w.Body.String())
	}
	var history struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &history); err != nil {
		t.Fatalf("json: %v", err)
	}
	if history.Count != 2 {
		t.Fatalf("unexpected history count: %d", history.Count)
	}

	// Comparison ranks Zepto cheapest
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/api/v1/listings/compare?listingIds=%d,%d", blinkitID, zeptoID), nil))
	if w.Code != http.StatusOK {
		t.Fatalf("compare status: %d body=%s", w.Code, w.Body.String())
	}
	var cmp struct {
		CheapestListingID      int64  `json:"cheapest_listing_id"`
		MostExpensiveListingID int64  `json:"most_expensive_listing_id"`
		PriceSpread            string `json:"price_spread"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &cmp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if cmp.CheapestListingID != zeptoID || cmp.MostExpensiveListingID != blinkitID {
		t.Fatalf("unexpected ranking: %+v", cmp)
	}
	if cmp.PriceSpread != "5.00" {
		t.Fatalf("unexpected spread: %s", cmp.PriceSpread)
	}

	// Duplicate suppression: re-ingesting an identical observation within
	// 30 minutes must not create a new snapshot
	ingestObservation(t, router, "Zepto", "240.00", now.Add(10*time.Minute))
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM price_snapshots WHERE listing_id = $1", zeptoID).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected duplicate to be suppressed, found %d snapshots", count)
	}
}
