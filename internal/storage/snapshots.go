package storage

import (
	"database/sql"
	"fmt"
	"time"

	pq "github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/priceintel/pricepulse/internal/domain/models"
)

// snapshotColumns is the canonical select list for price_snapshots rows.
const snapshotColumns = "id, listing_id, selling_price, discount, availability, crawl_status, captured_at"

// SnapshotRepository defines the contract for price snapshot persistence.
//
// Ordering contracts matter to callers:
//   - History returns newest-first.
//   - HistoryBetween returns oldest-first with inclusive bounds.
//   - LatestBatch returns at most one row per listing id, each being that
//     listing's most recent snapshot, in a single query.
type SnapshotRepository interface {
	Insert(s *models.PriceSnapshot) (*models.PriceSnapshot, error)
	Latest(listingID int64) (*models.PriceSnapshot, error)
	History(listingID int64) ([]models.PriceSnapshot, error)
	HistoryBetween(listingID int64, start, end time.Time) ([]models.PriceSnapshot, error)
	LatestBatch(listingIDs []int64) ([]models.PriceSnapshot, error)
}

type snapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

// Insert persists a snapshot and returns it with the assigned id.
func (r *snapshotRepository) Insert(s *models.PriceSnapshot) (*models.PriceSnapshot, error) {
	saved := *s
	err := r.db.QueryRow(`
		INSERT INTO price_snapshots (listing_id, selling_price, discount, availability, crawl_status, captured_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		s.ListingID,
		toNullDecimal(s.SellingPrice),
		toNullDecimal(s.Discount),
		string(s.Availability),
		string(s.CrawlStatus),
		s.CapturedAt,
	).Scan(&saved.ID)
	if err != nil {
		return nil, fmt.Errorf("insert snapshot: %w", err)
	}
	return &saved, nil
}

// Latest returns the most recent snapshot for a listing, or nil when the
// listing has no snapshots at all.
func (r *snapshotRepository) Latest(listingID int64) (*models.PriceSnapshot, error) {
	row := r.db.QueryRow(`
		SELECT `+snapshotColumns+`
		FROM price_snapshots
		WHERE listing_id = $1
		ORDER BY captured_at DESC
		LIMIT 1
	`, listingID)

	s, err := scanSnapshot(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest snapshot: %w", err)
	}
	return s, nil
}

// History returns the full series for a listing, newest first.
func (r *snapshotRepository) History(listingID int64) ([]models.PriceSnapshot, error) {
	rows, err := r.db.Query(`
		SELECT `+snapshotColumns+`
		FROM price_snapshots
		WHERE listing_id = $1
		ORDER BY captured_at DESC
	`, listingID)
	if err != nil {
		return nil, fmt.Errorf("snapshot history: %w", err)
	}
	return collectSnapshots(rows)
}

// HistoryBetween returns snapshots captured within [start, end], oldest first.
func (r *snapshotRepository) HistoryBetween(listingID int64, start, end time.Time) ([]models.PriceSnapshot, error) {
	rows, err := r.db.Query(`
		SELECT `+snapshotColumns+`
		FROM price_snapshots
		WHERE listing_id = $1 AND captured_at BETWEEN $2 AND $3
		ORDER BY captured_at ASC
	`, listingID, start, end)
	if err != nil {
		return nil, fmt.Errorf("snapshot history between: %w", err)
	}
	return collectSnapshots(rows)
}

// LatestBatch fetches the most recent snapshot for every listing in one
// round trip. Listings without snapshots simply do not appear in the result.
func (r *snapshotRepository) LatestBatch(listingIDs []int64) ([]models.PriceSnapshot, error) {
	rows, err := r.db.Query(`
		SELECT DISTINCT ON (listing_id) `+snapshotColumns+`
		FROM price_snapshots
		WHERE listing_id = ANY($1)
		ORDER BY listing_id, captured_at DESC
	`, pq.Array(listingIDs))
	if err != nil {
		return nil, fmt.Errorf("latest snapshot batch: %w", err)
	}
	return collectSnapshots(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*models.PriceSnapshot, error) {
	var (
		s            models.PriceSnapshot
		price        decimal.NullDecimal
		discount     decimal.NullDecimal
		availability string
		crawlStatus  string
	)
	if err := row.Scan(&s.ID, &s.ListingID, &price, &discount, &availability, &crawlStatus, &s.CapturedAt); err != nil {
		return nil, err
	}
	s.SellingPrice = fromNullDecimal(price)
	s.Discount = fromNullDecimal(discount)
	s.Availability = models.Availability(availability)
	s.CrawlStatus = models.CrawlStatus(crawlStatus)
	return &s, nil
}

func collectSnapshots(rows *sql.Rows) ([]models.PriceSnapshot, error) {
	defer func() { _ = rows.Close() }()

	var out []models.PriceSnapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshots: %w", err)
	}
	return out, nil
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func fromNullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
