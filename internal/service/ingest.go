package service

import (
	"context"
	"strings"

	"github.com/priceintel/pricepulse/internal/domain/apperr"
	"github.com/priceintel/pricepulse/internal/domain/dto"
	"github.com/priceintel/pricepulse/internal/domain/models"
	"github.com/priceintel/pricepulse/internal/logger"
)

// Ingestor is the facade over the full write path: resolve (or create)
// product, platform and listing, then record the price snapshot.
// Used by the internal ingest endpoint and by the crawler.
type Ingestor interface {
	Ingest(ctx context.Context, req dto.IngestionRequest) (*models.PriceSnapshot, *models.Listing, error)
}

type ingestor struct {
	catalog  Catalog
	recorder Recorder
}

func NewIngestor(catalog Catalog, recorder Recorder) Ingestor {
	return &ingestor{catalog: catalog, recorder: recorder}
}

func (i *ingestor) Ingest(ctx context.Context, req dto.IngestionRequest) (*models.PriceSnapshot, *models.Listing, error) {
	if err := checkMissingFields(req); err != nil {
		return nil, nil, err
	}

	availability, ok := models.ParseAvailability(req.Availability)
	if !ok {
		return nil, nil, apperr.Validation("unknown availability %q", req.Availability)
	}
	crawlStatus, ok := models.ParseCrawlStatus(req.CrawlStatus)
	if !ok {
		return nil, nil, apperr.Validation("unknown crawl status %q", req.CrawlStatus)
	}

	product, err := i.catalog.EnsureProduct(ctx, req.BrandName, req.ProductName, req.PackSize)
	if err != nil {
		return nil, nil, err
	}

	platform, err := i.catalog.EnsurePlatform(ctx, req.PlatformName)
	if err != nil {
		return nil, nil, err
	}

	listing, err := i.catalog.EnsureListing(ctx, product.ID, platform.ID, req.City, req.ProductURL)
	if err != nil {
		return nil, nil, err
	}

	snapshot, err := i.recorder.Record(ctx, RecordInput{
		ListingID:    listing.ID,
		SellingPrice: req.SellingPrice,
		Discount:     req.Discount,
		Availability: availability,
		CrawlStatus:  crawlStatus,
		CapturedAt:   req.CapturedAt,
	})
	if err != nil {
		return nil, nil, err
	}

	logger.L().Info().
		Int64("product_id", product.ID).
		Int64("platform_id", platform.ID).
		Int64("listing_id", listing.ID).
		Int64("snapshot_id", snapshot.ID).
		Msg("ingestion completed")
	return snapshot, listing, nil
}

func checkMissingFields(req dto.IngestionRequest) error {
	var missing []string

	if strings.TrimSpace(req.BrandName) == "" {
		missing = append(missing, "brand_name")
	}
	if strings.TrimSpace(req.ProductName) == "" {
		missing = append(missing, "product_name")
	}
	if strings.TrimSpace(req.PackSize) == "" {
		missing = append(missing, "pack_size")
	}
	if strings.TrimSpace(req.PlatformName) == "" {
		missing = append(missing, "platform_name")
	}
	if strings.TrimSpace(req.City) == "" {
		missing = append(missing, "city")
	}
	if strings.TrimSpace(req.ProductURL) == "" {
		missing = append(missing, "product_url")
	}
	if req.SellingPrice == nil {
		missing = append(missing, "selling_price")
	}
	if req.Availability == "" {
		missing = append(missing, "availability")
	}
	if req.CrawlStatus == "" {
		missing = append(missing, "crawl_status")
	}
	if req.CapturedAt.IsZero() {
		missing = append(missing, "captured_at")
	}

	if len(missing) > 0 {
		return apperr.Validation("missing fields: %s", strings.Join(missing, ", "))
	}
	return nil
}
