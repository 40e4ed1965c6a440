package storage

import (
	"database/sql"
	"fmt"

	"github.com/priceintel/pricepulse/internal/domain/models"
)

const listingColumns = "id, product_id, platform_id, city, product_url, is_active, created_at"

// CatalogRepository defines the contract for the product/platform/listing
// catalog. Find* and Get* return (nil, nil) when the row does not exist.
type CatalogRepository interface {
	GetProduct(id int64) (*models.Product, error)
	FindProduct(brandName, productName, packSize string) (*models.Product, error)
	InsertProduct(p models.Product) (*models.Product, error)

	GetPlatform(id int64) (*models.Platform, error)
	FindPlatform(name string) (*models.Platform, error)
	InsertPlatform(p models.Platform) (*models.Platform, error)

	GetListing(id int64) (*models.Listing, error)
	FindListing(productID, platformID int64, city string) (*models.Listing, error)
	InsertListing(l models.Listing) (*models.Listing, error)
	UpdateListing(l models.Listing) error
	ActiveListingsForProduct(productID int64, city string) ([]models.Listing, error)
}

type catalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) GetProduct(id int64) (*models.Product, error) {
	var p models.Product
	err := r.db.QueryRow(`
		SELECT id, brand_name, product_name, pack_size, created_at
		FROM products
		WHERE id = $1
	`, id).Scan(&p.ID, &p.BrandName, &p.ProductName, &p.PackSize, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func (r *catalogRepository) FindProduct(brandName, productName, packSize string) (*models.Product, error) {
	var p models.Product
	err := r.db.QueryRow(`
		SELECT id, brand_name, product_name, pack_size, created_at
		FROM products
		WHERE brand_name = $1 AND product_name = $2 AND pack_size = $3
	`, brandName, productName, packSize).Scan(&p.ID, &p.BrandName, &p.ProductName, &p.PackSize, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &p, nil
}

func (r *catalogRepository) InsertProduct(p models.Product) (*models.Product, error) {
	saved := p
	err := r.db.QueryRow(`
		INSERT INTO products (brand_name, product_name, pack_size, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`, p.BrandName, p.ProductName, p.PackSize).Scan(&saved.ID, &saved.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return &saved, nil
}

func (r *catalogRepository) GetPlatform(id int64) (*models.Platform, error) {
	var p models.Platform
	err := r.db.QueryRow(`
		SELECT id, name, created_at FROM platforms WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get platform: %w", err)
	}
	return &p, nil
}

func (r *catalogRepository) FindPlatform(name string) (*models.Platform, error) {
	var p models.Platform
	err := r.db.QueryRow(`
		SELECT id, name, created_at FROM platforms WHERE name = $1
	`, name).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find platform: %w", err)
	}
	return &p, nil
}

func (r *catalogRepository) InsertPlatform(p models.Platform) (*models.Platform, error) {
	saved := p
	err := r.db.QueryRow(`
		INSERT INTO platforms (name, created_at) VALUES ($1, NOW())
		RETURNING id, created_at
	`, p.Name).Scan(&saved.ID, &saved.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert platform: %w", err)
	}
	return &saved, nil
}

func (r *catalogRepository) GetListing(id int64) (*models.Listing, error) {
	row := r.db.QueryRow(`
		SELECT `+listingColumns+` FROM listings WHERE id = $1
	`, id)
	l, err := scanListing(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return l, nil
}

func (r *catalogRepository) FindListing(productID, platformID int64, city string) (*models.Listing, error) {
	row := r.db.QueryRow(`
		SELECT `+listingColumns+`
		FROM listings
		WHERE product_id = $1 AND platform_id = $2 AND city = $3
	`, productID, platformID, city)
	l, err := scanListing(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find listing: %w", err)
	}
	return l, nil
}

func (r *catalogRepository) InsertListing(l models.Listing) (*models.Listing, error) {
	saved := l
	err := r.db.QueryRow(`
		INSERT INTO listings (product_id, platform_id, city, product_url, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`, l.ProductID, l.PlatformID, l.City, l.ProductURL, l.IsActive).Scan(&saved.ID, &saved.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert listing: %w", err)
	}
	return &saved, nil
}

// UpdateListing rewrites the mutable listing fields (URL and activity flag).
func (r *catalogRepository) UpdateListing(l models.Listing) error {
	_, err := r.db.Exec(`
		UPDATE listings SET product_url = $1, is_active = $2 WHERE id = $3
	`, l.ProductURL, l.IsActive, l.ID)
	if err != nil {
		return fmt.Errorf("update listing: %w", err)
	}
	return nil
}

// ActiveListingsForProduct returns active listings for a product, optionally
// restricted to a city (case-insensitive). An empty city means all cities.
func (r *catalogRepository) ActiveListingsForProduct(productID int64, city string) ([]models.Listing, error) {
	// Build dynamic conditions; $1 is always the product id.
	conditions := "product_id = $1 AND is_active = TRUE"
	args := []interface{}{productID}
	if city != "" {
		conditions += fmt.Sprintf(" AND LOWER(city) = LOWER($%d)", len(args)+1)
		args = append(args, city)
	}

	rows, err := r.db.Query(
		"SELECT "+listingColumns+" FROM listings WHERE "+conditions+" ORDER BY id",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("active listings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		out = append(out, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate listings: %w", err)
	}
	return out, nil
}

func scanListing(row rowScanner) (*models.Listing, error) {
	var l models.Listing
	if err := row.Scan(&l.ID, &l.ProductID, &l.PlatformID, &l.City, &l.ProductURL, &l.IsActive, &l.CreatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}
