package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/priceintel/pricepulse/internal/domain/models"
)

// LatestPriceResponse is the body of GET /api/v1/listings/{id}/latest.
type LatestPriceResponse struct {
	ListingID    int64               `json:"listing_id" example:"1"`
	Price        decimal.Decimal     `json:"price" example:"249.50"`
	Discount     *decimal.Decimal    `json:"discount,omitempty" example:"10.00"`
	Availability models.Availability `json:"availability" example:"IN_STOCK"`
	CrawlStatus  models.CrawlStatus  `json:"crawl_status" example:"SUCCESS"`
	CapturedAt   time.Time           `json:"captured_at"`
}

// PricePoint is one entry of a price history series.
type PricePoint struct {
	Price        *decimal.Decimal    `json:"price"`
	Discount     *decimal.Decimal    `json:"discount,omitempty"`
	Availability models.Availability `json:"availability"`
	CapturedAt   time.Time           `json:"captured_at"`
}

// PriceHistoryResponse is the body of GET /api/v1/listings/{id}/history.
// History is chronological ascending.
type PriceHistoryResponse struct {
	ListingID int64        `json:"listing_id" example:"1"`
	Count     int          `json:"count" example:"3"`
	History   []PricePoint `json:"history"`
}

// PriceStatsResponse is the body of GET /api/v1/listings/{id}/stats.
type PriceStatsResponse struct {
	ListingID     int64           `json:"listing_id" example:"1"`
	MinPrice      decimal.Decimal `json:"min_price" example:"100.00"`
	MaxPrice      decimal.Decimal `json:"max_price" example:"150.00"`
	AveragePrice  decimal.Decimal `json:"average_price" example:"123.33"`
	LowestSeenAt  time.Time       `json:"lowest_seen_at"`
	HighestSeenAt time.Time       `json:"highest_seen_at"`
	TotalRecords  int             `json:"total_records" example:"3"`
}

// ComparisonEntry is one ranked item of a comparison response.
type ComparisonEntry struct {
	ListingID    int64               `json:"listing_id" example:"2"`
	Price        decimal.Decimal     `json:"price" example:"100.00"`
	Availability models.Availability `json:"availability" example:"IN_STOCK"`
	CapturedAt   time.Time           `json:"captured_at"`
	Rank         int                 `json:"rank" example:"1"`
}

// ComparisonResponse is the body of both comparison endpoints.
// Pagination fields are present only when a page was requested.
type ComparisonResponse struct {
	TotalCompared          int               `json:"total_compared" example:"3"`
	CheapestListingID      int64             `json:"cheapest_listing_id" example:"2"`
	MostExpensiveListingID int64             `json:"most_expensive_listing_id" example:"1"`
	BestValueListingID     *int64            `json:"best_value_listing_id,omitempty" example:"2"`
	PriceSpread            decimal.Decimal   `json:"price_spread" example:"50.00"`
	PercentageDifference   decimal.Decimal   `json:"percentage_difference" example:"50.00"`
	Results                []ComparisonEntry `json:"results"`
	Page                   *int              `json:"page,omitempty" example:"0"`
	Size                   *int              `json:"size,omitempty" example:"20"`
	TotalPages             *int              `json:"total_pages,omitempty" example:"2"`
	TotalItems             *int              `json:"total_items,omitempty" example:"25"`
}

// NewLatestPriceResponse maps a snapshot onto the latest-price contract.
func NewLatestPriceResponse(listingID int64, s *models.PriceSnapshot) LatestPriceResponse {
	resp := LatestPriceResponse{
		ListingID:    listingID,
		Discount:     s.Discount,
		Availability: s.Availability,
		CrawlStatus:  s.CrawlStatus,
		CapturedAt:   s.CapturedAt,
	}
	if s.SellingPrice != nil {
		resp.Price = *s.SellingPrice
	}
	return resp
}

// NewPriceHistoryResponse maps a chronological snapshot series onto the
// history contract.
func NewPriceHistoryResponse(listingID int64, series []models.PriceSnapshot) PriceHistoryResponse {
	points := make([]PricePoint, 0, len(series))
	for _, s := range series {
		points = append(points, PricePoint{
			Price:        s.SellingPrice,
			Discount:     s.Discount,
			Availability: s.Availability,
			CapturedAt:   s.CapturedAt,
		})
	}
	return PriceHistoryResponse{ListingID: listingID, Count: len(points), History: points}
}

// NewPriceStatsResponse maps computed stats onto the stats contract.
func NewPriceStatsResponse(stats *models.PriceStats) PriceStatsResponse {
	return PriceStatsResponse{
		ListingID:     stats.ListingID,
		MinPrice:      stats.MinPrice,
		MaxPrice:      stats.MaxPrice,
		AveragePrice:  stats.AveragePrice,
		LowestSeenAt:  stats.LowestSeenAt,
		HighestSeenAt: stats.HighestSeenAt,
		TotalRecords:  stats.TotalRecords,
	}
}

// NewComparisonResponse maps a comparison result onto the wire contract.
func NewComparisonResponse(res *models.ComparisonResult) ComparisonResponse {
	entries := make([]ComparisonEntry, 0, len(res.Results))
	for _, item := range res.Results {
		entries = append(entries, ComparisonEntry{
			ListingID:    item.ListingID,
			Price:        item.Price,
			Availability: item.Availability,
			CapturedAt:   item.CapturedAt,
			Rank:         item.Rank,
		})
	}
	return ComparisonResponse{
		TotalCompared:          res.TotalCompared,
		CheapestListingID:      res.CheapestListingID,
		MostExpensiveListingID: res.MostExpensiveListingID,
		BestValueListingID:     res.BestValueListingID,
		PriceSpread:            res.PriceSpread,
		PercentageDifference:   res.PercentageDifference,
		Results:                entries,
		Page:                   res.Page,
		Size:                   res.Size,
		TotalPages:             res.TotalPages,
		TotalItems:             res.TotalItems,
	}
}
