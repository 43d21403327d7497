// SPDX-License-Identifier: MIT

package oracle

import (
	"errors"
	"fmt"
)

var (
	// ErrNilView is returned when a nil matrix.View is passed to a constructor.
	ErrNilView = errors.New("oracle: nil view")

	// ErrInvalidCardinality is returned when k is negative or exceeds the
	// ground set size N().
	ErrInvalidCardinality = errors.New("oracle: cardinality k out of range")
)

func oracleErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
