package service

import (
	"context"
	"errors"
	"testing"

	"github.com/priceintel/pricepulse/internal/domain/apperr"
	"github.com/priceintel/pricepulse/internal/domain/models"
)

func TestEnsureProduct(t *testing.T) {
	t.Run("existing product is returned", func(t *testing.T) {
		repo := &stubCatalog{product: &models.Product{ID: 4, BrandName: "Amul"}}
		cat := NewCatalog(repo)

		out, err := cat.EnsureProduct(context.Background(), "Amul", "Butter", "500g")
		if err != nil || out.ID != 4 {
			t.Fatalf("unexpected: out=%+v err=%v", out, err)
		}
		if repo.insertedProduct != nil {
			t.Fatalf("existing product must not be re-inserted")
		}
	})

	t.Run("missing product is created", func(t *testing.T) {
		repo := &stubCatalog{}
		cat := NewCatalog(repo)

		out, err := cat.EnsureProduct(context.Background(), "Amul", "Butter", "500g")
		if err != nil || out == nil {
			t.Fatalf("unexpected: out=%+v err=%v", out, err)
		}
		if repo.insertedProduct == nil || repo.insertedProduct.BrandName != "Amul" {
			t.Fatalf("expected insert, got %+v", repo.insertedProduct)
		}
	})
}

func TestEnsurePlatform(t *testing.T) {
	repo := &stubCatalog{}
	cat := NewCatalog(repo)

	out, err := cat.EnsurePlatform(context.Background(), "Blinkit")
	if err != nil || out == nil {
		t.Fatalf("unexpected: out=%+v err=%v", out, err)
	}
	if repo.insertedPlatform == nil || repo.insertedPlatform.Name != "Blinkit" {
		t.Fatalf("expected insert, got %+v", repo.insertedPlatform)
	}
}

func TestEnsureListing(t *testing.T) {
	product := &models.Product{ID: 1}
	platform := &models.Platform{ID: 2}

	t.Run("city is normalized on create", func(t *testing.T) {
		repo := &stubCatalog{product: product, platform: platform}
		cat := NewCatalog(repo)

		out, err := cat.EnsureListing(context.Background(), 1, 2, "  Bangalore ", "https://example.com/x")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.City != "bangalore" {
			t.Fatalf("expected normalized city, got %q", out.City)
		}
		if repo.insertedListing == nil || !repo.insertedListing.IsActive {
			t.Fatalf("expected active listing insert, got %+v", repo.insertedListing)
		}
	})

	t.Run("empty city is rejected", func(t *testing.T) {
		cat := NewCatalog(&stubCatalog{product: product, platform: platform})
		if _, err := cat.EnsureListing(context.Background(), 1, 2, "   ", "https://example.com/x"); !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("empty url is rejected", func(t *testing.T) {
		cat := NewCatalog(&stubCatalog{product: product, platform: platform})
		if _, err := cat.EnsureListing(context.Background(), 1, 2, "bangalore", ""); !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		cat := NewCatalog(&stubCatalog{platform: platform})
		if _, err := cat.EnsureListing(context.Background(), 1, 2, "bangalore", "https://example.com/x"); !errors.Is(err, apperr.ErrNotFound) {
			t.Fatalf("expected not-found error, got %v", err)
		}
	})

	t.Run("unknown platform", func(t *testing.T) {
		cat := NewCatalog(&stubCatalog{product: product})
		if _, err := cat.EnsureListing(context.Background(), 1, 2, "bangalore", "https://example.com/x"); !errors.Is(err, apperr.ErrNotFound) {
			t.Fatalf("expected not-found error, got %v", err)
		}
	})

	t.Run("inactive listing is reactivated", func(t *testing.T) {
		repo := &stubCatalog{
			product:  product,
			platform: platform,
			listing:  &models.Listing{ID: 9, ProductID: 1, PlatformID: 2, City: "bangalore", ProductURL: "https://example.com/x", IsActive: false},
		}
		cat := NewCatalog(repo)

		out, err := cat.EnsureListing(context.Background(), 1, 2, "bangalore", "https://example.com/x")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.IsActive {
			t.Fatalf("expected reactivation, got %+v", out)
		}
		if repo.updatedListing == nil || !repo.updatedListing.IsActive {
			t.Fatalf("expected update call, got %+v", repo.updatedListing)
		}
	})

	t.Run("changed url is refreshed", func(t *testing.T) {
		repo := &stubCatalog{
			product:  product,
			platform: platform,
			listing:  &models.Listing{ID: 9, ProductID: 1, PlatformID: 2, City: "bangalore", ProductURL: "https://example.com/old", IsActive: true},
		}
		cat := NewCatalog(repo)

		out, err := cat.EnsureListing(context.Background(), 1, 2, "bangalore", "https://example.com/new")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ProductURL != "https://example.com/new" {
			t.Fatalf("expected refreshed url, got %q", out.ProductURL)
		}
		if repo.updatedListing == nil {
			t.Fatalf("expected update call")
		}
	})

	t.Run("unchanged listing skips update", func(t *testing.T) {
		repo := &stubCatalog{
			product:  product,
			platform: platform,
			listing:  &models.Listing{ID: 9, ProductID: 1, PlatformID: 2, City: "bangalore", ProductURL: "https://example.com/x", IsActive: true},
		}
		cat := NewCatalog(repo)

		if _, err := cat.EnsureListing(context.Background(), 1, 2, "bangalore", "https://example.com/x"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.updatedListing != nil {
			t.Fatalf("unexpected update call: %+v", repo.updatedListing)
		}
	})
}
