package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/priceintel/pricepulse/internal/domain/models"
	"github.com/priceintel/pricepulse/internal/storage"
)

// Shared in-memory stubs for the service tests.

type stubSnapshots struct {
	latest      *models.PriceSnapshot
	latestBatch []models.PriceSnapshot
	history     []models.PriceSnapshot
	between     []models.PriceSnapshot
	err         error

	inserted *models.PriceSnapshot
	nextID   int64
}

func (s *stubSnapshots) Insert(in *models.PriceSnapshot) (*models.PriceSnapshot, error) {
	if s.err != nil {
		return nil, s.err
	}
	saved := *in
	s.nextID++
	saved.ID = s.nextID
	s.inserted = &saved
	return &saved, nil
}

func (s *stubSnapshots) Latest(_ int64) (*models.PriceSnapshot, error) {
	return s.latest, s.err
}

func (s *stubSnapshots) History(_ int64) ([]models.PriceSnapshot, error) {
	return s.history, s.err
}

func (s *stubSnapshots) HistoryBetween(_ int64, _, _ time.Time) ([]models.PriceSnapshot, error) {
	return s.between, s.err
}

func (s *stubSnapshots) LatestBatch(_ []int64) ([]models.PriceSnapshot, error) {
	return s.latestBatch, s.err
}

var _ storage.SnapshotRepository = (*stubSnapshots)(nil)

type stubCatalog struct {
	product  *models.Product
	platform *models.Platform
	listing  *models.Listing
	active   []models.Listing
	err      error

	insertedProduct  *models.Product
	insertedPlatform *models.Platform
	insertedListing  *models.Listing
	updatedListing   *models.Listing
	nextID           int64
}

func (s *stubCatalog) GetProduct(_ int64) (*models.Product, error) { return s.product, s.err }
func (s *stubCatalog) FindProduct(_, _, _ string) (*models.Product, error) {
	return s.product, s.err
}

func (s *stubCatalog) InsertProduct(p models.Product) (*models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	saved := p
	s.nextID++
	saved.ID = s.nextID
	s.insertedProduct = &saved
	return &saved, nil
}

func (s *stubCatalog) GetPlatform(_ int64) (*models.Platform, error)   { return s.platform, s.err }
func (s *stubCatalog) FindPlatform(_ string) (*models.Platform, error) { return s.platform, s.err }

func (s *stubCatalog) InsertPlatform(p models.Platform) (*models.Platform, error) {
	if s.err != nil {
		return nil, s.err
	}
	saved := p
	s.nextID++
	saved.ID = s.nextID
	s.insertedPlatform = &saved
	return &saved, nil
}

func (s *stubCatalog) GetListing(_ int64) (*models.Listing, error) { return s.listing, s.err }
func (s *stubCatalog) FindListing(_, _ int64, _ string) (*models.Listing, error) {
	return s.listing, s.err
}

func (s *stubCatalog) InsertListing(l models.Listing) (*models.Listing, error) {
	if s.err != nil {
		return nil, s.err
	}
	saved := l
	s.nextID++
	saved.ID = s.nextID
	s.insertedListing = &saved
	return &saved, nil
}

func (s *stubCatalog) UpdateListing(l models.Listing) error {
	s.updatedListing = &l
	return s.err
}

func (s *stubCatalog) ActiveListingsForProduct(_ int64, _ string) ([]models.Listing, error) {
	return s.active, s.err
}

var _ storage.CatalogRepository = (*stubCatalog)(nil)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func snapshot(id, listingID int64, price string, capturedAt time.Time) models.PriceSnapshot {
	return models.PriceSnapshot{
		ID:           id,
		ListingID:    listingID,
		SellingPrice: decPtr(price),
		Availability: models.AvailabilityInStock,
		CrawlStatus:  models.CrawlStatusSuccess,
		CapturedAt:   capturedAt,
	}
}
