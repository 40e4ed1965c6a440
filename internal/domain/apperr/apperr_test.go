package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelMatching(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"validation", Validation("limit must be positive, got %d", -1), ErrValidation},
		{"not found", NotFound("listing %d", 42), ErrNotFound},
		{"invariant", Invariant("empty item set after checks"), ErrInvariant},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.sentinel) {
				t.Fatalf("errors.Is(%v, %v) = false", tc.err, tc.sentinel)
			}
			// wrapping through another layer must not break matching
			wrapped := fmt.Errorf("outer: %w", tc.err)
			if !errors.Is(wrapped, tc.sentinel) {
				t.Fatalf("wrapped error lost sentinel %v", tc.sentinel)
			}
		})
	}
}

func TestMessageFormatting(t *testing.T) {
	err := Validation("page size cannot exceed %d, received %d", 100, 250)
	want := "validation error: page size cannot exceed 100, received 250"
	if err.Error() != want {
		t.Fatalf("got %q want %q", err.Error(), want)
	}
}
