package crawler

import (
	"context"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/priceintel/pricepulse/internal/domain/dto"
	"github.com/priceintel/pricepulse/internal/logger"
	"github.com/priceintel/pricepulse/internal/service"
)

// SimulatedJob stands in for a real platform crawler. Each tick it emits
// one randomized observation for a fixed catalog entry through the
// ingestion facade, exercising the same path a real crawler would.
type SimulatedJob struct {
	PlatformName string
	BrandName    string
	ProductName  string
	PackSize     string
	City         string
	ProductURL   string
	MinPrice     float64
	MaxPrice     float64
	MaxDiscount  float64

	rng *rand.Rand
}

// NewSimulatedJob seeds the job's own price generator so concurrent jobs
// do not contend on a shared source.
func NewSimulatedJob(platformName, brandName, productName, packSize, city, productURL string, minPrice, maxPrice, maxDiscount float64) *SimulatedJob {
	return &SimulatedJob{
		PlatformName: platformName,
		BrandName:    brandName,
		ProductName:  productName,
		PackSize:     packSize,
		City:         city,
		ProductURL:   productURL,
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
		MaxDiscount:  maxDiscount,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Execute generates one observation and feeds it through the ingestor.
func (j *SimulatedJob) Execute(ctx context.Context, ing service.Ingestor) error {
	price := j.randomAmount(j.MinPrice, j.MaxPrice)
	discount := j.randomAmount(0, j.MaxDiscount)
	availability := "IN_STOCK"
	if j.rng.Intn(2) == 0 {
		availability = "OUT_OF_STOCK"
	}

	req := dto.IngestionRequest{
		BrandName:    j.BrandName,
		ProductName:  j.ProductName,
		PackSize:     j.PackSize,
		PlatformName: j.PlatformName,
		City:         j.City,
		ProductURL:   j.ProductURL,
		SellingPrice: &price,
		Discount:     &discount,
		Availability: availability,
		CrawlStatus:  "SUCCESS",
		CapturedAt:   time.Now().UTC(),
	}

	snapshot, _, err := ing.Ingest(ctx, req)
	if err != nil {
		return err
	}

	logger.L().Info().
		Str("platform", j.PlatformName).
		Str("price", price.String()).
		Str("availability", availability).
		Int64("snapshot_id", snapshot.ID).
		Msg("simulated crawl completed")
	return nil
}

func (j *SimulatedJob) randomAmount(min, max float64) decimal.Decimal {
	v := min + (max-min)*j.rng.Float64()
	return decimal.NewFromFloat(v).Round(2)
}
