package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComparisonItem is one listing's latest priced snapshot inside a
// comparison. Rank is 1-based from the ascending price pass over the
// filtered set (tie-break: newer capture first) and does not change when
// a different output order is requested.
type ComparisonItem struct {
	ListingID    int64
	Price        decimal.Decimal
	Availability Availability
	CapturedAt   time.Time
	Rank         int
}

// ComparisonMetrics holds the derived figures for one filtered item set.
type ComparisonMetrics struct {
	MinPrice               decimal.Decimal
	MaxPrice               decimal.Decimal
	CheapestListingID      int64
	MostExpensiveListingID int64
	PriceSpread            decimal.Decimal
	PercentageDifference   decimal.Decimal
}

// ComparisonResult is the full outcome of a comparison query.
// BestValueListingID is nil when no compared item is in stock.
// Page/Size/TotalPages/TotalItems are set only when pagination was
// requested.
type ComparisonResult struct {
	TotalCompared          int
	CheapestListingID      int64
	MostExpensiveListingID int64
	BestValueListingID     *int64
	PriceSpread            decimal.Decimal
	PercentageDifference   decimal.Decimal
	Results                []ComparisonItem
	Page                   *int
	Size                   *int
	TotalPages             *int
	TotalItems             *int
}
