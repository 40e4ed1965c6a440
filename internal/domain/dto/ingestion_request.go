package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// IngestionRequest is the body of POST /internal/ingest. One request
// carries everything needed to resolve (or create) the catalog entities
// and record a price snapshot against them.
type IngestionRequest struct {
	BrandName    string           `json:"brand_name" example:"Amul"`
	ProductName  string           `json:"product_name" example:"Butter"`
	PackSize     string           `json:"pack_size" example:"500g"`
	PlatformName string           `json:"platform_name" example:"Blinkit"`
	City         string           `json:"city" example:"Bangalore"`
	ProductURL   string           `json:"product_url" example:"https://blinkit.com/amul-butter"`
	SellingPrice *decimal.Decimal `json:"selling_price" example:"249.50"`
	Discount     *decimal.Decimal `json:"discount,omitempty" example:"10.00"`
	Availability string           `json:"availability" example:"IN_STOCK"`
	CrawlStatus  string           `json:"crawl_status" example:"SUCCESS"`
	CapturedAt   time.Time        `json:"captured_at"`
}

// IngestionResponse acknowledges a successful ingestion.
type IngestionResponse struct {
	Message    string `json:"message" example:"ingestion successful"`
	SnapshotID int64  `json:"snapshot_id" example:"17"`
	ListingID  int64  `json:"listing_id" example:"3"`
}
