// SPDX-License-Identifier: MIT

package greedy

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCardinality is returned when k is negative or exceeds the
	// ground set size.
	ErrInvalidCardinality = errors.New("greedy: cardinality k out of range")

	// ErrNilView is returned when a nil matrix.View is passed to a driver.
	ErrNilView = errors.New("greedy: nil view")

	// ErrSingularInverse is returned by DoubleFromL when L is singular, so
	// no L⁻¹ can be derived from it — the fatal-error path from spec §4.6/§7, surfaced
	// to the caller rather than panicked, since it originates from
	// caller-supplied data rather than a violated internal contract.
	ErrSingularInverse = errors.New("greedy: L is singular, cannot run Double Greedy")
)

func greedyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
