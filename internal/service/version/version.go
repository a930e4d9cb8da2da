// Package version implements the optimistic-concurrency counter carried by
// every mutable entity.
package version

import (
	"fmt"

	"github.com/heartmarshall/insurance-crm/internal/domain"
)

// Initial is the version of a freshly created entity.
const Initial = 1

// Next returns the version that follows current.
func Next(current int) int {
	return current + 1
}

// Check fails with *domain.VersionConflictError unless the caller's expected
// version matches the stored one.
func Check(expected, stored int) error {
	if expected < Initial {
		return domain.NewValidationError("expectedVersion", fmt.Sprintf("must be >= %d", Initial))
	}
	if expected != stored {
		return &domain.VersionConflictError{Expected: expected, Actual: stored}
	}
	return nil
}
