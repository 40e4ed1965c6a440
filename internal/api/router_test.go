package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/priceintel/pricepulse/internal/domain/dto"
	"github.com/priceintel/pricepulse/internal/domain/models"
)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Provide a comparer that returns a valid result so the handler returns 200
	cmp := &stubComparer{result: &models.ComparisonResult{
		TotalCompared:          2,
		CheapestListingID:      2,
		MostExpensiveListingID: 1,
		PriceSpread:            dec("50.00"),
		PercentageDifference:   dec("50.00"),
		Results: []models.ComparisonItem{
			{ListingID: 2, Price: dec("100.00"), Rank: 1},
			{ListingID: 1, Price: dec("150.00"), Rank: 2},
		},
	}}
	h := NewHandler(&stubQuery{}, cmp, &stubIngestor{})
	r := NewRouter(h)

	// Hit the compare route through the router created by NewRouter
	req := httptest.NewRequest(http.MethodGet, "/api/v1/listings/compare?listingIds=1,2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// Ensure RequestID middleware injected header
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}

	// Ensure JSON body has the comparison fields
	var out dto.ComparisonResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if out.CheapestListingID != 2 || out.MostExpensiveListingID != 1 || out.TotalCompared != 2 {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestNewRouter_ErrorTaxonomy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewHandler(&stubQuery{}, &stubComparer{}, &stubIngestor{})
	r := NewRouter(h)

	// Static /compare must not be captured by the :listingId param route
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/listings/compare?listingIds=1", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var out dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if out.Message == "" || out.Timestamp.IsZero() {
		t.Fatalf("unexpected error body: %+v", out)
	}
}
