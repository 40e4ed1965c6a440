package service

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/priceintel/pricepulse/internal/domain/apperr"
	"github.com/priceintel/pricepulse/internal/domain/models"
	"github.com/priceintel/pricepulse/internal/logger"
	"github.com/priceintel/pricepulse/internal/storage"
)

// Comparer ranks the latest prices of multiple listings and derives
// comparison metrics. Both entry points share one pipeline:
// resolve candidates, batch-fetch latest snapshots, build items, filter,
// rank, compute metrics, sort, paginate. Every stage returns a fresh
// slice and never mutates its input.
type Comparer interface {
	CompareByIDs(ctx context.Context, listingIDs []int64, inStockOnly bool, sortType models.ComparisonSortType) (*models.ComparisonResult, error)
	CompareByProduct(ctx context.Context, productID int64, city string, inStockOnly bool, sortType models.ComparisonSortType, page, size *int) (*models.ComparisonResult, error)
}

type comparer struct {
	snapshots storage.SnapshotRepository
	catalog   storage.CatalogRepository
}

func NewComparer(snapshots storage.SnapshotRepository, catalog storage.CatalogRepository) Comparer {
	return &comparer{snapshots: snapshots, catalog: catalog}
}

// CompareByIDs compares an explicit candidate set. Invalid ids are skipped,
// not fatal; duplicates are collapsed. Pagination does not apply here.
func (c *comparer) CompareByIDs(_ context.Context, listingIDs []int64, inStockOnly bool, sortType models.ComparisonSortType) (*models.ComparisonResult, error) {
	if err := validateListingBatch(listingIDs); err != nil {
		return nil, err
	}

	valid := make([]int64, 0, len(listingIDs))
	seen := make(map[int64]struct{}, len(listingIDs))
	for _, id := range listingIDs {
		if err := validateListingID(id); err != nil {
			logger.L().Debug().Int64("listing_id", id).Msg("skipping invalid listing id")
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		valid = append(valid, id)
	}
	if len(valid) == 0 {
		return nil, apperr.Validation("no valid listing IDs provided")
	}

	items, err := c.collectItems(valid)
	if err != nil {
		return nil, err
	}
	return buildComparison(items, inStockOnly, sortType, nil, nil)
}

// CompareByProduct compares all active listings of a product, optionally
// restricted to one city (case-insensitive) and optionally paginated.
func (c *comparer) CompareByProduct(_ context.Context, productID int64, city string, inStockOnly bool, sortType models.ComparisonSortType, page, size *int) (*models.ComparisonResult, error) {
	if err := validateProductID(productID); err != nil {
		return nil, err
	}
	if err := validatePagination(page, size); err != nil {
		return nil, err
	}

	listings, err := c.catalog.ActiveListingsForProduct(productID, city)
	if err != nil {
		return nil, err
	}
	if len(listings) == 0 {
		if city != "" {
			return nil, apperr.Validation("no active listings for product %d in city %q", productID, city)
		}
		return nil, apperr.Validation("no active listings for product %d", productID)
	}

	ids := make([]int64, 0, len(listings))
	seen := make(map[int64]struct{}, len(listings))
	for _, l := range listings {
		if _, dup := seen[l.ID]; dup {
			continue
		}
		seen[l.ID] = struct{}{}
		ids = append(ids, l.ID)
	}
	if err := validateListingBatch(ids); err != nil {
		return nil, err
	}

	items, err := c.collectItems(ids)
	if err != nil {
		return nil, err
	}
	return buildComparison(items, inStockOnly, sortType, page, size)
}

// collectItems batch-fetches the latest snapshot per candidate in one store
// round trip and turns priced snapshots into comparison items. Listings
// without a snapshot or without a price are dropped.
func (c *comparer) collectItems(listingIDs []int64) ([]models.ComparisonItem, error) {
	snapshots, err := c.snapshots.LatestBatch(listingIDs)
	if err != nil {
		return nil, err
	}

	items := make([]models.ComparisonItem, 0, len(snapshots))
	for _, s := range snapshots {
		if s.SellingPrice == nil {
			logger.L().Debug().Int64("listing_id", s.ListingID).Msg("null selling price, skipping")
			continue
		}
		items = append(items, models.ComparisonItem{
			ListingID:    s.ListingID,
			Price:        *s.SellingPrice,
			Availability: s.Availability,
			CapturedAt:   s.CapturedAt,
		})
	}

	if len(items) < 2 {
		return nil, apperr.Validation("at least 2 valid listings required for comparison, found %d", len(items))
	}
	return items, nil
}

// buildComparison runs the shared tail of the pipeline: in-stock filter,
// ranking, metrics, best value, output sort, pagination.
func buildComparison(items []models.ComparisonItem, inStockOnly bool, sortType models.ComparisonSortType, page, size *int) (*models.ComparisonResult, error) {
	if inStockOnly {
		var err error
		items, err = filterInStock(items)
		if err != nil {
			return nil, err
		}
	}

	totalItems := len(items)

	ranked := assignRanks(items)

	metrics, err := computeMetrics(ranked)
	if err != nil {
		return nil, err
	}

	bestValue := findBestValue(ranked)

	sorted := sortItems(ranked, sortType)

	result := &models.ComparisonResult{
		CheapestListingID:      metrics.CheapestListingID,
		MostExpensiveListingID: metrics.MostExpensiveListingID,
		BestValueListingID:     bestValue,
		PriceSpread:            metrics.PriceSpread,
		PercentageDifference:   metrics.PercentageDifference,
		Results:                sorted,
	}

	if page != nil {
		effectiveSize := defaultPageSize
		if size != nil {
			effectiveSize = *size
		}
		totalPages := (totalItems + effectiveSize - 1) / effectiveSize
		result.Results = paginate(sorted, *page, effectiveSize)
		result.Page = page
		result.Size = &effectiveSize
		result.TotalPages = &totalPages
		result.TotalItems = &totalItems
	}
	result.TotalCompared = len(result.Results)

	logger.L().Debug().
		Int("total_items", totalItems).
		Int("returned", result.TotalCompared).
		Int64("cheapest", metrics.CheapestListingID).
		Int64("most_expensive", metrics.MostExpensiveListingID).
		Str("spread", metrics.PriceSpread.String()).
		Msg("comparison built")
	return result, nil
}

// filterInStock keeps IN_STOCK items. Metrics and ranking are computed
// after this filter so they reflect only the compared set.
func filterInStock(items []models.ComparisonItem) ([]models.ComparisonItem, error) {
	kept := make([]models.ComparisonItem, 0, len(items))
	for _, item := range items {
		if item.Availability == models.AvailabilityInStock {
			kept = append(kept, item)
		}
	}
	if len(kept) < 2 {
		return nil, apperr.Validation("at least 2 in-stock listings required for comparison, found %d", len(kept))
	}
	return kept, nil
}

// assignRanks returns a copy sorted by price ascending with rank = position
// + 1. Equal prices rank the more recently captured item first. The caller
// may re-sort the returned slice; ranks stay fixed.
func assignRanks(items []models.ComparisonItem) []models.ComparisonItem {
	ranked := make([]models.ComparisonItem, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		cmp := ranked[i].Price.Cmp(ranked[j].Price)
		if cmp != 0 {
			return cmp < 0
		}
		return ranked[i].CapturedAt.After(ranked[j].CapturedAt)
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// computeMetrics derives min/max/spread/percentage in a single pass.
// A zero minimum defines the percentage difference as zero rather than
// dividing by it.
func computeMetrics(items []models.ComparisonItem) (*models.ComparisonMetrics, error) {
	if len(items) == 0 {
		// Earlier gates guarantee a non-empty set; reaching this is a bug.
		return nil, apperr.Invariant("metrics requested for empty item set")
	}

	m := models.ComparisonMetrics{
		MinPrice:               items[0].Price,
		MaxPrice:               items[0].Price,
		CheapestListingID:      items[0].ListingID,
		MostExpensiveListingID: items[0].ListingID,
	}
	for _, item := range items[1:] {
		if item.Price.LessThan(m.MinPrice) {
			m.MinPrice = item.Price
			m.CheapestListingID = item.ListingID
		}
		if item.Price.GreaterThan(m.MaxPrice) {
			m.MaxPrice = item.Price
			m.MostExpensiveListingID = item.ListingID
		}
	}

	m.PriceSpread = m.MaxPrice.Sub(m.MinPrice)
	if m.MinPrice.IsZero() {
		m.PercentageDifference = decimal.Zero
	} else {
		m.PercentageDifference = m.PriceSpread.
			DivRound(m.MinPrice, 4).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	return &m, nil
}

// findBestValue picks the cheapest IN_STOCK item regardless of any
// stock-only filter on the overall result. Nil when nothing is in stock.
func findBestValue(items []models.ComparisonItem) *int64 {
	var best *models.ComparisonItem
	for i := range items {
		item := &items[i]
		if item.Availability != models.AvailabilityInStock {
			continue
		}
		if best == nil || item.Price.LessThan(best.Price) {
			best = item
		}
	}
	if best == nil {
		return nil
	}
	id := best.ListingID
	return &id
}

// sortItems orders a copy for output. Ranks assigned earlier are untouched.
func sortItems(items []models.ComparisonItem, sortType models.ComparisonSortType) []models.ComparisonItem {
	sorted := make([]models.ComparisonItem, len(items))
	copy(sorted, items)
	switch sortType {
	case models.SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price.GreaterThan(sorted[j].Price)
		})
	case models.SortLatest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CapturedAt.After(sorted[j].CapturedAt)
		})
	default: // PRICE_ASC
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price.LessThan(sorted[j].Price)
		})
	}
	return sorted
}

// paginate slices one page out of the sorted items. A page beyond range
// yields an empty list, not an error.
func paginate(items []models.ComparisonItem, page, size int) []models.ComparisonItem {
	start := page * size
	if start >= len(items) {
		return []models.ComparisonItem{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	out := make([]models.ComparisonItem, end-start)
	copy(out, items[start:end])
	return out
}
