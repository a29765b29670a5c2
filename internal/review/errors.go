package review

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound marks lookups for queues or items that do not exist.
	// A claim that finds no eligible item is a nil result, never ErrNotFound.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput marks malformed references, empty batches, and
	// store-constraint violations such as duplicate queue names.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConflict marks a claim that lost a race on the conditional lease
	// update. ClaimNext recovers from it internally; callers normally never
	// see it.
	ErrConflict = errors.New("conflict")
	// ErrUnavailable marks underlying persistence failures. Retryable by
	// the caller; the store performs no automatic retry beyond the bounded
	// claim re-select.
	ErrUnavailable = errors.New("store unavailable")
)

// Wrap builds an error message that includes operation context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrUnavailable
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "store failure"
	}
	return strings.Join(parts, ": ")
}
