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

// Query is the read path for a single listing: latest snapshot, ordered
// history and single-pass statistics.
type Query interface {
	GetLatest(ctx context.Context, listingID int64) (*models.PriceSnapshot, error)
	GetHistory(ctx context.Context, listingID int64, start, end *time.Time, limit *int) ([]models.PriceSnapshot, error)
	GetStats(ctx context.Context, listingID int64, start, end *time.Time) (*models.PriceStats, error)
}

type query struct {
	snapshots storage.SnapshotRepository
}

func NewQuery(snapshots storage.SnapshotRepository) Query {
	return &query{snapshots: snapshots}
}

func (q *query) GetLatest(_ context.Context, listingID int64) (*models.PriceSnapshot, error) {
	if err := validateListingID(listingID); err != nil {
		return nil, err
	}
	latest, err := q.snapshots.Latest(listingID)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, apperr.NotFound("no price snapshot for listing %d", listingID)
	}
	return latest, nil
}

// GetHistory returns the listing's series in chronological ascending order,
// optionally windowed to [start, end] and limited to the most recent N.
func (q *query) GetHistory(_ context.Context, listingID int64, start, end *time.Time, limit *int) ([]models.PriceSnapshot, error) {
	if err := validateListingID(listingID); err != nil {
		return nil, err
	}
	if err := validateDateRange(start, end); err != nil {
		return nil, err
	}
	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	series, err := q.fetchSeries(listingID, start, end)
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, apperr.NotFound("no price history for listing %d", listingID)
	}

	limited := applyLimit(series, limit)
	logger.L().Debug().
		Int64("listing_id", listingID).
		Int("total", len(series)).
		Int("returned", len(limited)).
		Msg("history fetched")
	return limited, nil
}

// fetchSeries returns snapshots in chronological ascending order. The
// windowed query comes back ascending from the store; the full series
// comes back newest-first and is reversed here.
func (q *query) fetchSeries(listingID int64, start, end *time.Time) ([]models.PriceSnapshot, error) {
	if start != nil && end != nil {
		return q.snapshots.HistoryBetween(listingID, *start, *end)
	}
	series, err := q.snapshots.History(listingID)
	if err != nil {
		return nil, err
	}
	reversed := make([]models.PriceSnapshot, len(series))
	for i, s := range series {
		reversed[len(series)-1-i] = s
	}
	return reversed, nil
}

// applyLimit keeps the last n entries of a chronological series, i.e. the
// most recent ones, preserving order. A nil or oversized limit is a no-op.
func applyLimit(series []models.PriceSnapshot, limit *int) []models.PriceSnapshot {
	if limit == nil || *limit >= len(series) {
		return series
	}
	out := make([]models.PriceSnapshot, *limit)
	copy(out, series[len(series)-*limit:])
	return out
}

// GetStats aggregates the (optionally windowed) series in a single pass.
// Snapshots without a price are skipped entirely: they contribute neither
// to the extremes nor to the average's denominator. Strict comparisons
// keep the instant each extreme was first observed.
func (q *query) GetStats(_ context.Context, listingID int64, start, end *time.Time) (*models.PriceStats, error) {
	if err := validateListingID(listingID); err != nil {
		return nil, err
	}
	if err := validateDateRange(start, end); err != nil {
		return nil, err
	}

	// Chronological order matters for ties: strict comparisons keep the
	// instant an extreme was first observed.
	series, err := q.fetchSeries(listingID, start, end)
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, apperr.NotFound("no price snapshots for listing %d", listingID)
	}

	var (
		minPrice, maxPrice          *decimal.Decimal
		lowestSeenAt, highestSeenAt time.Time
		total                       = decimal.Zero
		valid                       int
	)
	for _, s := range series {
		price := s.SellingPrice
		if price == nil {
			continue
		}
		valid++
		total = total.Add(*price)

		if minPrice == nil || price.LessThan(*minPrice) {
			minPrice = price
			lowestSeenAt = s.CapturedAt
		}
		if maxPrice == nil || price.GreaterThan(*maxPrice) {
			maxPrice = price
			highestSeenAt = s.CapturedAt
		}
	}

	if valid == 0 {
		return nil, apperr.NotFound("no valid price snapshots for listing %d", listingID)
	}

	average := total.DivRound(decimal.NewFromInt(int64(valid)), 2)

	logger.L().Debug().
		Int64("listing_id", listingID).
		Str("min", minPrice.String()).
		Str("max", maxPrice.String()).
		Str("avg", average.String()).
		Int("valid_records", valid).
		Msg("stats calculated")

	return &models.PriceStats{
		ListingID:     listingID,
		MinPrice:      *minPrice,
		MaxPrice:      *maxPrice,
		AveragePrice:  average,
		LowestSeenAt:  lowestSeenAt,
		HighestSeenAt: highestSeenAt,
		TotalRecords:  valid,
	}, nil
}
