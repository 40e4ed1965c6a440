package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceSnapshot is one timestamped price/availability/status fact for a
// listing. Snapshots are immutable once written; the history of a listing
// is an append-only, time-ordered sequence of them.
//
// SellingPrice and Discount are pointers because legacy rows may carry
// NULLs; readers skip snapshots without a price rather than failing.
type PriceSnapshot struct {
	ID           int64
	ListingID    int64
	SellingPrice *decimal.Decimal
	Discount     *decimal.Decimal
	Availability Availability
	CrawlStatus  CrawlStatus
	CapturedAt   time.Time
}

// PriceStats is a single-pass aggregation over a listing's snapshot series.
// LowestSeenAt/HighestSeenAt record when each extreme was first observed;
// later equal prices do not move them.
type PriceStats struct {
	ListingID     int64
	MinPrice      decimal.Decimal
	MaxPrice      decimal.Decimal
	AveragePrice  decimal.Decimal
	LowestSeenAt  time.Time
	HighestSeenAt time.Time
	TotalRecords  int
}
