package models

import "strings"

// Availability indicates whether a listing could be purchased at capture time.
type Availability string

const (
	AvailabilityInStock    Availability = "IN_STOCK"
	AvailabilityOutOfStock Availability = "OUT_OF_STOCK"
)

// ParseAvailability accepts the canonical enum spelling, case-insensitive.
func ParseAvailability(s string) (Availability, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(AvailabilityInStock):
		return AvailabilityInStock, true
	case string(AvailabilityOutOfStock):
		return AvailabilityOutOfStock, true
	}
	return "", false
}

// CrawlStatus is the outcome of the crawl that produced a snapshot.
type CrawlStatus string

const (
	CrawlStatusSuccess CrawlStatus = "SUCCESS"
	CrawlStatusFailure CrawlStatus = "FAILURE"
	CrawlStatusPartial CrawlStatus = "PARTIAL"
)

// ParseCrawlStatus accepts the canonical enum spelling, case-insensitive.
func ParseCrawlStatus(s string) (CrawlStatus, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(CrawlStatusSuccess):
		return CrawlStatusSuccess, true
	case string(CrawlStatusFailure):
		return CrawlStatusFailure, true
	case string(CrawlStatusPartial):
		return CrawlStatusPartial, true
	}
	return "", false
}

// ComparisonSortType controls the output order of comparison results.
// Ranks are assigned from the ascending price pass and are independent
// of this ordering.
type ComparisonSortType string

const (
	SortPriceAsc  ComparisonSortType = "PRICE_ASC"
	SortPriceDesc ComparisonSortType = "PRICE_DESC"
	SortLatest    ComparisonSortType = "LATEST"
)

// ParseSortType maps user input to a sort type. Unknown or empty values
// fall back to PRICE_ASC instead of failing the request. The short
// spellings ("price", "price_desc", "latest") are kept for the
// id-based compare endpoint.
func ParseSortType(s string) ComparisonSortType {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(SortPriceDesc):
		return SortPriceDesc
	case string(SortLatest):
		return SortLatest
	default:
		return SortPriceAsc
	}
}
