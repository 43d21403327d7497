// SPDX-License-Identifier: MIT

package dataio

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedHeader is returned when a matrix file's header line does
	// not parse into the expected integer dimensions.
	ErrMalformedHeader = errors.New("dataio: malformed header")

	// ErrMalformedRow is returned when a data row does not parse into the
	// expected number of float64 values.
	ErrMalformedRow = errors.New("dataio: malformed row")

	// ErrUnsupportedDataset is returned by a Dataset stub whose backing
	// file is absent — the preprocessing step it depends on is out of
	// scope and must be run externally.
	ErrUnsupportedDataset = errors.New("dataio: unsupported dataset, preprocess externally")
)

func dataioErrorf(tag string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("dataio: %s: %w", tag, err)
}
