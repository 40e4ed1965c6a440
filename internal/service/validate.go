package service

import (
	"time"

	"github.com/priceintel/pricepulse/internal/domain/apperr"
)

// Shared guard conditions for the query and comparison services. All are
// pure functions of their arguments; none hold state.

const (
	maxListingBatchSize = 2000
	maxPageSize         = 100
	defaultPageSize     = 20
)

func validateListingID(id int64) error {
	if id <= 0 {
		return apperr.Validation("listing ID must be positive, got %d", id)
	}
	return nil
}

func validateProductID(id int64) error {
	if id <= 0 {
		return apperr.Validation("product ID must be positive, got %d", id)
	}
	return nil
}

// validateDateRange enforces both-or-neither bounds with start <= end.
func validateDateRange(start, end *time.Time) error {
	if (start != nil) != (end != nil) {
		return apperr.Validation("start and end must be provided together")
	}
	if start != nil && start.After(*end) {
		return apperr.Validation("start must be before or equal to end")
	}
	return nil
}

func validateLimit(limit *int) error {
	if limit != nil && *limit <= 0 {
		return apperr.Validation("limit must be positive, got %d", *limit)
	}
	return nil
}

// validateListingBatch bounds the candidate set of a comparison call.
func validateListingBatch(ids []int64) error {
	if len(ids) == 0 {
		return apperr.Validation("listing IDs cannot be empty")
	}
	if len(ids) > maxListingBatchSize {
		return apperr.Validation("listing batch size cannot exceed %d, received %d", maxListingBatchSize, len(ids))
	}
	return nil
}

func validatePagination(page, size *int) error {
	if page != nil && *page < 0 {
		return apperr.Validation("page number cannot be negative, got %d", *page)
	}
	if size != nil {
		if *size <= 0 {
			return apperr.Validation("page size must be positive, got %d", *size)
		}
		if *size > maxPageSize {
			return apperr.Validation("page size cannot exceed %d, received %d", maxPageSize, *size)
		}
	}
	return nil
}
