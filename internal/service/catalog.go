package service

import (
	"context"
	"strings"

	"github.com/priceintel/pricepulse/internal/domain/apperr"
	"github.com/priceintel/pricepulse/internal/domain/models"
	"github.com/priceintel/pricepulse/internal/logger"
	"github.com/priceintel/pricepulse/internal/storage"
)

// Catalog resolves products, platforms and listings with lookup-or-create
// semantics. Re-ingesting an existing listing reactivates it if it had been
// deactivated and refreshes its product URL when it changed.
type Catalog interface {
	EnsureProduct(ctx context.Context, brandName, productName, packSize string) (*models.Product, error)
	EnsurePlatform(ctx context.Context, name string) (*models.Platform, error)
	EnsureListing(ctx context.Context, productID, platformID int64, city, productURL string) (*models.Listing, error)
}

type catalog struct {
	repo storage.CatalogRepository
}

func NewCatalog(repo storage.CatalogRepository) Catalog {
	return &catalog{repo: repo}
}

func (c *catalog) EnsureProduct(_ context.Context, brandName, productName, packSize string) (*models.Product, error) {
	existing, err := c.repo.FindProduct(brandName, productName, packSize)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	saved, err := c.repo.InsertProduct(models.Product{
		BrandName:   brandName,
		ProductName: productName,
		PackSize:    packSize,
	})
	if err != nil {
		return nil, err
	}
	logger.L().Info().
		Int64("product_id", saved.ID).
		Str("brand", brandName).
		Str("product", productName).
		Msg("product created")
	return saved, nil
}

func (c *catalog) EnsurePlatform(_ context.Context, name string) (*models.Platform, error) {
	existing, err := c.repo.FindPlatform(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	saved, err := c.repo.InsertPlatform(models.Platform{Name: name})
	if err != nil {
		return nil, err
	}
	logger.L().Info().Int64("platform_id", saved.ID).Str("name", name).Msg("platform created")
	return saved, nil
}

func (c *catalog) EnsureListing(_ context.Context, productID, platformID int64, city, productURL string) (*models.Listing, error) {
	normalizedCity, err := normalizeCity(city)
	if err != nil {
		return nil, err
	}
	normalizedURL, err := normalizeProductURL(productURL)
	if err != nil {
		return nil, err
	}

	if p, err := c.repo.GetProduct(productID); err != nil {
		return nil, err
	} else if p == nil {
		return nil, apperr.NotFound("product %d", productID)
	}
	if p, err := c.repo.GetPlatform(platformID); err != nil {
		return nil, err
	} else if p == nil {
		return nil, apperr.NotFound("platform %d", platformID)
	}

	existing, err := c.repo.FindListing(productID, platformID, normalizedCity)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		needsUpdate := false
		if !existing.IsActive {
			logger.L().Info().Int64("listing_id", existing.ID).Msg("reactivating inactive listing")
			existing.IsActive = true
			needsUpdate = true
		}
		if existing.ProductURL != normalizedURL {
			logger.L().Info().Int64("listing_id", existing.ID).Msg("updating listing product url")
			existing.ProductURL = normalizedURL
			needsUpdate = true
		}
		if needsUpdate {
			if err := c.repo.UpdateListing(*existing); err != nil {
				return nil, err
			}
		}
		return existing, nil
	}

	saved, err := c.repo.InsertListing(models.Listing{
		ProductID:  productID,
		PlatformID: platformID,
		City:       normalizedCity,
		ProductURL: normalizedURL,
		IsActive:   true,
	})
	if err != nil {
		return nil, err
	}
	logger.L().Info().
		Int64("listing_id", saved.ID).
		Int64("product_id", productID).
		Int64("platform_id", platformID).
		Str("city", normalizedCity).
		Msg("listing created")
	return saved, nil
}

func normalizeCity(city string) (string, error) {
	trimmed := strings.TrimSpace(city)
	if trimmed == "" {
		return "", apperr.Validation("city cannot be empty")
	}
	return strings.ToLower(trimmed), nil
}

func normalizeProductURL(productURL string) (string, error) {
	trimmed := strings.TrimSpace(productURL)
	if trimmed == "" {
		return "", apperr.Validation("product URL cannot be empty")
	}
	return trimmed, nil
}
