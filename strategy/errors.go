// SPDX-License-Identifier: MIT

package strategy

import (
	"errors"
	"fmt"
)

// ErrNilOracle is returned when a nil oracle.Oracle is passed to a constructor.
var ErrNilOracle = errors.New("strategy: nil oracle")

func strategyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
