package models

import "time"

// Product identifies a sellable good independent of where it is sold.
// Uniqueness is (brand, name, pack size).
type Product struct {
	ID          int64
	BrandName   string
	ProductName string
	PackSize    string
	CreatedAt   time.Time
}

// Platform is a marketplace a product can be listed on.
type Platform struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// Listing is one sellable location for a product: a unique
// (product, platform, city) tuple. City is stored normalized
// (trimmed, lower-case).
type Listing struct {
	ID         int64
	ProductID  int64
	PlatformID int64
	City       string
	ProductURL string
	IsActive   bool
	CreatedAt  time.Time
}
