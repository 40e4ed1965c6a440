package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/priceintel/pricepulse/internal/domain/apperr"
	"github.com/priceintel/pricepulse/internal/domain/models"
	"github.com/priceintel/pricepulse/internal/logger"
	"github.com/priceintel/pricepulse/internal/storage"
)

// duplicateWindow bounds how long an identical re-observation is treated
// as a duplicate of the listing's latest snapshot. Crawlers re-poll far
// more often than prices change; without this window every poll would
// add a redundant row.
const duplicateWindow = 30 * time.Minute

// RecordInput carries one observed price fact for a known listing.
type RecordInput struct {
	ListingID    int64
	SellingPrice *decimal.Decimal
	Discount     *decimal.Decimal
	Availability models.Availability
	CrawlStatus  models.CrawlStatus
	CapturedAt   time.Time
}

// Recorder is the write path: it accepts one observation and decides
// whether it is a new fact or a duplicate re-observation.
type Recorder interface {
	Record(ctx context.Context, in RecordInput) (*models.PriceSnapshot, error)
}

type recorder struct {
	snapshots storage.SnapshotRepository
	catalog   storage.CatalogRepository
}

func NewRecorder(snapshots storage.SnapshotRepository, catalog storage.CatalogRepository) Recorder {
	return &recorder{snapshots: snapshots, catalog: catalog}
}

// Record validates the observation, checks it against the listing's latest
// snapshot and either returns that snapshot unchanged (duplicate within the
// suppression window) or persists a new one.
//
// The check-then-act sequence is not serialized across concurrent writers
// for the same listing; two near-simultaneous calls can both insert.
// Readers tolerate the occasional duplicate row, so this race is accepted.
func (r *recorder) Record(_ context.Context, in RecordInput) (*models.PriceSnapshot, error) {
	if err := validateRecordInput(in); err != nil {
		return nil, err
	}

	listing, err := r.catalog.GetListing(in.ListingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		logger.L().Warn().Int64("listing_id", in.ListingID).Msg("record: listing not found")
		return nil, apperr.NotFound("listing %d", in.ListingID)
	}

	latest, err := r.snapshots.Latest(in.ListingID)
	if err != nil {
		return nil, err
	}
	if latest != nil && isDuplicate(latest, in) {
		logger.L().Info().
			Int64("listing_id", in.ListingID).
			Int64("snapshot_id", latest.ID).
			Msg("duplicate snapshot suppressed")
		return latest, nil
	}

	saved, err := r.snapshots.Insert(&models.PriceSnapshot{
		ListingID:    in.ListingID,
		SellingPrice: in.SellingPrice,
		Discount:     in.Discount,
		Availability: in.Availability,
		CrawlStatus:  in.CrawlStatus,
		CapturedAt:   in.CapturedAt,
	})
	if err != nil {
		return nil, err
	}

	logger.L().Info().
		Int64("listing_id", in.ListingID).
		Int64("snapshot_id", saved.ID).
		Str("price", in.SellingPrice.String()).
		Str("availability", string(in.Availability)).
		Msg("snapshot recorded")
	return saved, nil
}

func validateRecordInput(in RecordInput) error {
	if err := validateListingID(in.ListingID); err != nil {
		return err
	}
	if in.SellingPrice == nil {
		return apperr.Validation("selling price is required")
	}
	if in.SellingPrice.IsNegative() {
		return apperr.Validation("selling price cannot be negative, got %s", in.SellingPrice)
	}
	if in.Discount != nil && in.Discount.IsNegative() {
		return apperr.Validation("discount cannot be negative, got %s", in.Discount)
	}
	if _, ok := models.ParseAvailability(string(in.Availability)); !ok {
		return apperr.Validation("availability is required")
	}
	if _, ok := models.ParseCrawlStatus(string(in.CrawlStatus)); !ok {
		return apperr.Validation("crawl status is required")
	}
	if in.CapturedAt.IsZero() {
		return apperr.Validation("captured at timestamp is required")
	}
	return nil
}

// isDuplicate matches the new observation against the latest stored one
// across five dimensions: price, discount (null-safe), availability,
// crawl status, and capture proximity.
func isDuplicate(latest *models.PriceSnapshot, in RecordInput) bool {
	if latest.SellingPrice == nil || !latest.SellingPrice.Equal(*in.SellingPrice) {
		return false
	}
	if !discountsEqual(latest.Discount, in.Discount) {
		return false
	}
	if latest.Availability != in.Availability || latest.CrawlStatus != in.CrawlStatus {
		return false
	}
	delta := in.CapturedAt.Sub(latest.CapturedAt)
	if delta < 0 {
		delta = -delta
	}
	return delta <= duplicateWindow
}

// discountsEqual compares by numeric value; both absent counts as equal,
// one absent counts as unequal.
func discountsEqual(a, b *decimal.Decimal) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Equal(*b)
}
