// Package subsetsum — input validation shared by the public entry points.
//
// Deterministic, side-effect free checks; only sentinel errors from
// types.go, wrapped with the offending value for context.
package subsetsum

import (
	"fmt"
	"math"
)

// validateOptions rejects tolerance parameters outside their domain.
func validateOptions(opts Options) error {
	if opts.Precision < 0 {
		return fmt.Errorf("%w: got %d", ErrBadPrecision, opts.Precision)
	}
	if math.IsNaN(opts.Tol) || math.IsInf(opts.Tol, 0) || opts.Tol < 0 {
		return fmt.Errorf("%w: got %v", ErrBadTolerance, opts.Tol)
	}
	return nil
}

// validateValues rejects NaN/±Inf anywhere in the numeric input; rounding
// and tolerance comparisons are meaningless on non-finite values.
func validateValues(constituents []float64, total float64) error {
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return fmt.Errorf("%w: total is %v", ErrNonFinite, total)
	}
	for i, c := range constituents {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: constituent %d is %v", ErrNonFinite, i, c)
		}
	}
	return nil
}
