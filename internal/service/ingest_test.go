package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/priceintel/pricepulse/internal/domain/apperr"
	"github.com/priceintel/pricepulse/internal/domain/dto"
	"github.com/priceintel/pricepulse/internal/domain/models"
)

type stubCatalogService struct {
	product  *models.Product
	platform *models.Platform
	listing  *models.Listing
	err      error
}

func (s *stubCatalogService) EnsureProduct(_ context.Context, _, _, _ string) (*models.Product, error) {
	return s.product, s.err
}

func (s *stubCatalogService) EnsurePlatform(_ context.Context, _ string) (*models.Platform, error) {
	return s.platform, s.err
}

func (s *stubCatalogService) EnsureListing(_ context.Context, _, _ int64, _, _ string) (*models.Listing, error) {
	return s.listing, s.err
}

var _ Catalog = (*stubCatalogService)(nil)

type stubRecorder struct {
	snapshot *models.PriceSnapshot
	err      error
	got      *RecordInput
}

func (s *stubRecorder) Record(_ context.Context, in RecordInput) (*models.PriceSnapshot, error) {
	s.got = &in
	return s.snapshot, s.err
}

var _ Recorder = (*stubRecorder)(nil)

func validIngestionRequest() dto.IngestionRequest {
	return dto.IngestionRequest{
		BrandName:    "Amul",
		ProductName:  "Butter",
		PackSize:     "500g",
		PlatformName: "Blinkit",
		City:         "Bangalore",
		ProductURL:   "https://blinkit.com/amul-butter",
		SellingPrice: decPtr("249.50"),
		Availability: "IN_STOCK",
		CrawlStatus:  "SUCCESS",
		CapturedAt:   time.Date(2026, 2, 25, 10, 0, 0, 0, time.UTC),
	}
}

func TestIngest_HappyPath(t *testing.T) {
	cat := &stubCatalogService{
		product:  &models.Product{ID: 1},
		platform: &models.Platform{ID: 2},
		listing:  &models.Listing{ID: 3},
	}
	rec := &stubRecorder{snapshot: &models.PriceSnapshot{ID: 17, ListingID: 3}}
	ing := NewIngestor(cat, rec)

	snapshot, listing, err := ing.Ingest(context.Background(), validIngestionRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snapshot.ID != 17 || listing.ID != 3 {
		t.Fatalf("unexpected result: snapshot=%+v listing=%+v", snapshot, listing)
	}
	if rec.got == nil || rec.got.ListingID != 3 || rec.got.Availability != models.AvailabilityInStock {
		t.Fatalf("unexpected record input: %+v", rec.got)
	}
}

func TestIngest_MissingFields(t *testing.T) {
	req := dto.IngestionRequest{BrandName: "Amul", Availability: "IN_STOCK"}
	ing := NewIngestor(&stubCatalogService{}, &stubRecorder{})

	_, _, err := ing.Ingest(context.Background(), req)
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"product_name", "pack_size", "platform_name", "city", "product_url", "selling_price", "crawl_status", "captured_at"} {
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("expected %q in error, got %q", field, err.Error())
		}
	}
	if strings.Contains(err.Error(), "brand_name") || strings.Contains(err.Error(), " availability") {
		t.Fatalf("present fields must not be reported: %q", err.Error())
	}
}

func TestIngest_UnknownEnums(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(req *dto.IngestionRequest)
	}{
		{name: "bad availability", mutate: func(req *dto.IngestionRequest) { req.Availability = "MAYBE" }},
		{name: "bad crawl status", mutate: func(req *dto.IngestionRequest) { req.CrawlStatus = "UNKNOWN" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validIngestionRequest()
			tc.mutate(&req)
			ing := NewIngestor(&stubCatalogService{}, &stubRecorder{})
			if _, _, err := ing.Ingest(context.Background(), req); !errors.Is(err, apperr.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestIngest_CatalogFailurePropagates(t *testing.T) {
	cat := &stubCatalogService{err: errors.New("db down")}
	ing := NewIngestor(cat, &stubRecorder{})

	if _, _, err := ing.Ingest(context.Background(), validIngestionRequest()); err == nil {
		t.Fatalf("expected error")
	}
}
