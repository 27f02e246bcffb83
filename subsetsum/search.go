// Package subsetsum — exhaustive subset-sum enumeration for one total.
//
// Algorithm outline:
//  1. Round every constituent and the target total to Options.Precision.
//  2. Depth-first search over candidate indices in strictly increasing
//     order; a frame carries (remaining target, minimum next index, chosen
//     indices). The ordering constraint is what prevents discovering the
//     same subset through different permutations.
//  3. At each frame, skip any candidate greater than
//     remaining + Tol + |most negative unused constituent|: nothing left in
//     the list could pull such an overshoot back inside the band.
//  4. A candidate whose subtraction leaves the remainder inside ±Tol closes
//     a solution; otherwise the extended state is pushed for further search.
//
// The search is exhaustive: it never stops at the first solution.
//
// Complexity: exponential in len(constituents) in the worst case; per frame
// the bound and candidate scan cost O(n).
package subsetsum

import (
	"math"
	"sort"
)

// searchFrame is one unit of pending work: the rounded remaining target,
// the lowest index still eligible, and the indices chosen so far
// (ascending, hence already canonical).
type searchFrame struct {
	remaining float64
	next      int
	chosen    Solution
}

// FindConstituents enumerates every subset of constituent indices whose
// values sum to total within the tolerance model of opts. The result is
// duplicate-free and sorted lexicographically; each Solution's indices are
// strictly increasing.
//
// An empty constituent list yields an empty set with no error — the empty
// subset is never reported as a solution, even for a total within Tol of
// zero.
//
// Errors: ErrBadPrecision, ErrBadTolerance, ErrNonFinite.
func FindConstituents(constituents []float64, total float64, opts Options) (SolutionSet, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if err := validateValues(constituents, total); err != nil {
		return nil, err
	}
	n := len(constituents)
	if n == 0 {
		return nil, nil
	}

	// Round once up front; every comparison below sees values at the same
	// precision as the remainders they are compared against.
	scale := math.Pow(10, float64(opts.Precision))
	vals := make([]float64, n)
	for i, c := range constituents {
		vals[i] = roundAt(c, scale)
	}

	found := make(map[string]Solution)

	// Explicit work stack instead of call recursion: depth grows with the
	// constituent count, which the goroutine stack should not have to bound.
	stack := []searchFrame{{remaining: roundAt(total, scale), next: 0}}
	var (
		f     searchFrame
		limit float64
		rem   float64
		idx   int
	)
	for len(stack) > 0 {
		f, stack = stack[len(stack)-1], stack[:len(stack)-1]

		// Only negative constituents can pull an overshot partial sum back
		// toward zero, so the skip threshold widens by the most negative
		// value still unused anywhere in the list.
		limit = f.remaining + opts.Tol + math.Abs(minUnused(vals, f.chosen))
		for idx = f.next; idx < n; idx++ {
			if vals[idx] > limit {
				continue
			}
			rem = roundAt(f.remaining-vals[idx], scale)
			if -opts.Tol <= rem && rem <= opts.Tol {
				sol := extend(f.chosen, idx)
				found[sol.key()] = sol
				continue
			}
			if idx+1 < n {
				stack = append(stack, searchFrame{
					remaining: rem,
					next:      idx + 1,
					chosen:    extend(f.chosen, idx),
				})
			}
		}
	}

	return sortedSet(found), nil
}

// minUnused returns the smallest constituent value at an index not in
// chosen, clamped to ≤ 0. chosen must be ascending.
func minUnused(vals []float64, chosen Solution) float64 {
	lowest := math.Inf(1)
	k := 0
	for i, v := range vals {
		if k < len(chosen) && chosen[k] == i {
			k++
			continue
		}
		if v < lowest {
			lowest = v
		}
	}
	if lowest > 0 {
		return 0
	}
	return lowest
}

// extend copies chosen and appends idx, keeping frames free of aliasing.
func extend(chosen Solution, idx int) Solution {
	out := make(Solution, len(chosen)+1)
	copy(out, chosen)
	out[len(chosen)] = idx
	return out
}

// roundAt rounds x to the precision encoded by scale (scale = 10^precision).
func roundAt(x, scale float64) float64 {
	return math.Round(x*scale) / scale
}

// sortedSet flattens the dedup map into a lexicographically ordered set.
func sortedSet(found map[string]Solution) SolutionSet {
	if len(found) == 0 {
		return nil
	}
	set := make(SolutionSet, 0, len(found))
	for _, sol := range found {
		set = append(set, sol)
	}
	sort.Slice(set, func(i, j int) bool { return set[i].less(set[j]) })
	return set
}
