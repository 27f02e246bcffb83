// Package subsetsum defines the result types, options and error sentinels
// shared by the search and combination passes.
package subsetsum

import (
	"errors"
	"strconv"
	"strings"
)

// Default tolerance parameters; see Options.
const (
	// DefaultPrecision is the number of decimal places sums are rounded to
	// before any comparison.
	DefaultPrecision = 3

	// DefaultTol is the inclusive acceptance band around zero for a
	// remaining target.
	DefaultTol = 1e-4
)

// Sentinel errors for input validation.
var (
	// ErrBadPrecision is returned when Options.Precision is negative.
	ErrBadPrecision = errors.New("subsetsum: precision must be non-negative")

	// ErrBadTolerance is returned when Options.Tol is negative, NaN or infinite.
	ErrBadTolerance = errors.New("subsetsum: tolerance must be non-negative and finite")

	// ErrNonFinite is returned when a constituent or total is NaN or ±Inf.
	ErrNonFinite = errors.New("subsetsum: constituents and totals must be finite")
)

// Solution is one index-subset: positions into the constituent list, in
// strictly increasing order, whose values sum to a target total. The
// ascending order is the canonical form — two subsets with the same members
// always compare equal regardless of discovery order.
type Solution []int

// SolutionSet holds every distinct Solution for a single total, sorted
// lexicographically by index so results are reproducible across runs.
type SolutionSet []Solution

// Combination pairs one Solution per total, in the caller's total order,
// such that no constituent index appears in more than one element.
type Combination []Solution

// Options configures the tolerance model of a search.
//
// Fields:
//   - Precision — decimal places every sum is rounded to before comparison.
//     Must be ≥ 0.
//   - Tol       — inclusive absolute band around zero within which a
//     remaining target counts as matched. Must be ≥ 0 and finite.
//
// Both knobs are applied to constituents, totals, and intermediate
// remainders alike; mixing rounded and unrounded values is what produces
// spurious mismatches, so the package never does.
type Options struct {
	Precision int
	Tol       float64
}

// DefaultOptions returns Options with Precision=3 and Tol=1e-4, matching
// the typical "currency-like" use case.
func DefaultOptions() Options {
	return Options{Precision: DefaultPrecision, Tol: DefaultTol}
}

// Sum returns the (unrounded) sum of the constituent values selected by s.
// Every index in s must be a valid position in constituents.
func (s Solution) Sum(constituents []float64) float64 {
	var total float64
	for _, idx := range s {
		total += constituents[idx]
	}
	return total
}

// Values returns the constituent values selected by s, in index order.
// Every index in s must be a valid position in constituents.
func (s Solution) Values(constituents []float64) []float64 {
	out := make([]float64, len(s))
	for i, idx := range s {
		out[i] = constituents[idx]
	}
	return out
}

// less orders Solutions lexicographically by index, shorter prefix first.
func (s Solution) less(t Solution) bool {
	for i := 0; i < len(s) && i < len(t); i++ {
		if s[i] != t[i] {
			return s[i] < t[i]
		}
	}
	return len(s) < len(t)
}

// key encodes the canonical form as a comparable string, used to
// deduplicate subsets found through different search paths.
func (s Solution) key() string {
	var b strings.Builder
	for i, idx := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(idx))
	}
	return b.String()
}

// Contains reports whether set holds a Solution equal to target.
// Both sides are compared in canonical form.
func (set SolutionSet) Contains(target Solution) bool {
	for _, sol := range set {
		if len(sol) != len(target) {
			continue
		}
		match := true
		for i := range sol {
			if sol[i] != target[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
