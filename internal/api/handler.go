package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/priceintel/pricepulse/internal/domain/apperr"
	"github.com/priceintel/pricepulse/internal/domain/dto"
	"github.com/priceintel/pricepulse/internal/domain/models"
	"github.com/priceintel/pricepulse/internal/service"
)

// Handler provides the HTTP handlers for price queries, comparisons and
// internal ingestion.
//
// Responsibilities:
//   - Parse and type-check incoming path and query parameters
//   - Delegate to the service layer
//   - Translate service results into response DTOs
//
// Errors are attached to the context and mapped onto status codes by the
// ErrorHandler middleware; handlers never pick status codes themselves.
type Handler struct {
	query    service.Query
	comparer service.Comparer
	ingestor service.Ingestor
}

// NewHandler constructs a new Handler instance.
func NewHandler(query service.Query, comparer service.Comparer, ingestor service.Ingestor) *Handler {
	return &Handler{query: query, comparer: comparer, ingestor: ingestor}
}

// GetLatestPrice handles GET /api/v1/listings/:listingId/latest requests.
//
// GetLatestPrice godoc
// @Summary      Get latest price for a listing
// @Description  Returns the most recent price snapshot recorded for the listing
// @Tags         prices
// @Produce      json
// @Param        listingId  path      int  true  "Listing ID" example(1)
// @Success      200        {object}  dto.LatestPriceResponse  "Success"
// @Failure      400        {object}  dto.ErrorResponse        "Bad Request"
// @Failure      404        {object}  dto.ErrorResponse        "Not Found"
// @Failure      500        {object}  dto.ErrorResponse        "Internal Error"
// @Router       /api/v1/listings/{listingId}/latest [get]
func (h *Handler) GetLatestPrice(c *gin.Context) {
	listingID, err := parseID(c.Param("listingId"), "listingId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	snapshot, err := h.query.GetLatest(c.Request.Context(), listingID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLatestPriceResponse(listingID, snapshot))
}

// GetPriceHistory handles GET /api/v1/listings/:listingId/history requests.
//
// GetPriceHistory godoc
// @Summary      Get price history for a listing
// @Description  Returns the chronological price history, optionally windowed by start/end and limited to the most recent N records
// @Tags         prices
// @Produce      json
// @Param        listingId  path      int     true   "Listing ID" example(1)
// @Param        start      query     string  false  "Window start, RFC 3339" example(2026-02-01T00:00:00Z)
// @Param        end        query     string  false  "Window end, RFC 3339" example(2026-02-25T23:59:59Z)
// @Param        limit      query     int     false  "Keep only the most recent N records" example(100)
// @Success      200        {object}  dto.PriceHistoryResponse  "Success"
// @Failure      400        {object}  dto.ErrorResponse         "Bad Request"
// @Failure      404        {object}  dto.ErrorResponse         "Not Found"
// @Failure      500        {object}  dto.ErrorResponse         "Internal Error"
// @Router       /api/v1/listings/{listingId}/history [get]
func (h *Handler) GetPriceHistory(c *gin.Context) {
	listingID, err := parseID(c.Param("listingId"), "listingId")
	if err != nil {
		_ = c.Error(err)
		return
	}
	start, end, err := parseWindow(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	limit, err := parseOptionalInt(c.Query("limit"), "limit")
	if err != nil {
		_ = c.Error(err)
		return
	}

	series, err := h.query.GetHistory(c.Request.Context(), listingID, start, end, limit)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPriceHistoryResponse(listingID, series))
}

// GetPriceStats handles GET /api/v1/listings/:listingId/stats requests.
//
// GetPriceStats godoc
// @Summary      Get price statistics for a listing
// @Description  Returns min, max and average price over the optionally windowed history
// @Tags         prices
// @Produce      json
// @Param        listingId  path      int     true   "Listing ID" example(1)
// @Param        start      query     string  false  "Window start, RFC 3339"
// @Param        end        query     string  false  "Window end, RFC 3339"
// @Success      200        {object}  dto.PriceStatsResponse  "Success"
// @Failure      400        {object}  dto.ErrorResponse       "Bad Request"
// @Failure      404        {object}  dto.ErrorResponse       "Not Found"
// @Failure      500        {object}  dto.ErrorResponse       "Internal Error"
// @Router       /api/v1/listings/{listingId}/stats [get]
func (h *Handler) GetPriceStats(c *gin.Context) {
	listingID, err := parseID(c.Param("listingId"), "listingId")
	if err != nil {
		_ = c.Error(err)
		return
	}
	start, end, err := parseWindow(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	stats, err := h.query.GetStats(c.Request.Context(), listingID, start, end)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPriceStatsResponse(stats))
}

// CompareListings handles GET /api/v1/listings/compare requests.
//
// CompareListings godoc
// @Summary      Compare listings by ID
// @Description  Ranks the latest prices of the given listings and derives spread and percentage-difference metrics
// @Tags         comparison
// @Produce      json
// @Param        listingIds   query     string  true   "Comma-separated listing IDs, minimum 2" example(1,2,3)
// @Param        inStockOnly  query     bool    false  "Keep only in-stock listings"
// @Param        sortBy       query     string  false  "Output order: price, price_desc or latest" example(price)
// @Success      200          {object}  dto.ComparisonResponse  "Success"
// @Failure      400          {object}  dto.ErrorResponse       "Bad Request"
// @Failure      500          {object}  dto.ErrorResponse       "Internal Error"
// @Router       /api/v1/listings/compare [get]
func (h *Handler) CompareListings(c *gin.Context) {
	ids, err := parseIDList(c.Query("listingIds"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if len(ids) < 2 {
		_ = c.Error(apperr.Validation("at least 2 listing IDs are required"))
		return
	}
	inStockOnly := strings.EqualFold(c.Query("inStockOnly"), "true")
	sortType := models.ParseSortType(c.Query("sortBy"))

	result, err := h.comparer.CompareByIDs(c.Request.Context(), ids, inStockOnly, sortType)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewComparisonResponse(result))
}

// CompareProduct handles GET /api/v1/products/:productId/compare requests.
//
// CompareProduct godoc
// @Summary      Compare a product across platforms
// @Description  Compares the latest prices of all active listings for a product, optionally restricted to one city, with optional pagination
// @Tags         comparison
// @Produce      json
// @Param        productId    path      int     true   "Product ID" example(1)
// @Param        city         query     string  false  "City filter, case-insensitive" example(Bangalore)
// @Param        inStockOnly  query     bool    false  "Keep only in-stock listings"
// @Param        sortType     query     string  false  "Output order: PRICE_ASC, PRICE_DESC or LATEST" example(PRICE_ASC)
// @Param        page         query     int     false  "Page number, zero-based" example(0)
// @Param        size         query     int     false  "Page size, max 100" example(20)
// @Success      200          {object}  dto.ComparisonResponse  "Success"
// @Failure      400          {object}  dto.ErrorResponse       "Bad Request"
// @Failure      500          {object}  dto.ErrorResponse       "Internal Error"
// @Router       /api/v1/products/{productId}/compare [get]
func (h *Handler) CompareProduct(c *gin.Context) {
	productID, err := parseID(c.Param("productId"), "productId")
	if err != nil {
		_ = c.Error(err)
		return
	}
	city := strings.TrimSpace(c.Query("city"))
	inStockOnly := strings.EqualFold(c.Query("inStockOnly"), "true")
	sortType := models.ParseSortType(c.Query("sortType"))
	page, err := parseOptionalInt(c.Query("page"), "page")
	if err != nil {
		_ = c.Error(err)
		return
	}
	size, err := parseOptionalInt(c.Query("size"), "size")
	if err != nil {
		_ = c.Error(err)
		return
	}

	result, err := h.comparer.CompareByProduct(c.Request.Context(), productID, city, inStockOnly, sortType, page, size)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewComparisonResponse(result))
}

// Ingest handles POST /internal/ingest requests.
//
// Ingest godoc
// @Summary      Ingest one price observation
// @Description  Resolves product, platform and listing, creating them as needed, and records a price snapshot
// @Tags         internal
// @Accept       json
// @Produce      json
// @Param        request  body      dto.IngestionRequest  true  "Price observation"
// @Success      200      {object}  dto.IngestionResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse      "Bad Request"
// @Failure      500      {object}  dto.ErrorResponse      "Internal Error"
// @Router       /internal/ingest [post]
func (h *Handler) Ingest(c *gin.Context) {
	var req dto.IngestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.Validation("invalid request body: %v", err))
		return
	}

	snapshot, listing, err := h.ingestor.Ingest(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.IngestionResponse{
		Message:    "ingestion successful",
		SnapshotID: snapshot.ID,
		ListingID:  listing.ID,
	})
}

func parseID(raw, name string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, apperr.Validation("invalid %s %q", name, raw)
	}
	return id, nil
}

// parseIDList splits a comma-separated ID list. Blank segments are
// skipped; a malformed segment fails the whole request.
func parseIDList(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, apperr.Validation("invalid listing ID %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseOptionalInt(raw, name string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperr.Validation("invalid %s %q", name, raw)
	}
	return &v, nil
}

// parseWindow reads the optional start/end query parameters as RFC 3339
// instants. The both-or-neither rule is enforced by the service layer.
func parseWindow(c *gin.Context) (*time.Time, *time.Time, error) {
	var start, end *time.Time
	if s := c.Query("start"); s != "" {
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, nil, apperr.Validation("invalid start %q, expected RFC 3339", s)
		}
		start = &parsed
	}
	if s := c.Query("end"); s != "" {
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, nil, apperr.Validation("invalid end %q, expected RFC 3339", s)
		}
		end = &parsed
	}
	return start, end, nil
}
