// Package subsetsum — cross-total combination of per-total solution sets.
//
// DisjointCombinations walks the per-total sets in order, choosing one
// Solution per total and carrying a bitmap of indices already claimed by
// earlier choices. A choice is admissible only when it shares no index with
// that bitmap, so every emitted Combination uses each constituent at most
// once across all totals.
//
// Complexity: worst case the product of the per-total set sizes, inherent
// to enumerating every combination; per candidate the overlap check costs
// O(len(solution)).
package subsetsum

// DisjointCombinations enumerates every way to pick one Solution per total
// such that no constituent index is used twice across the whole pick.
// Element i of each Combination always solves the i-th total of sets.
//
// If sets is empty, or any per-total set is empty, there is no valid
// combination and the result is nil. Output order follows the
// lexicographic order of the input sets, outermost total first.
func DisjointCombinations(sets []SolutionSet) []Combination {
	if len(sets) == 0 {
		return nil
	}
	// An unsatisfiable total empties the whole product; find the index
	// bound for the usage bitmap on the same pass. Solutions are ascending,
	// so the last entry is the highest index.
	high := -1
	for _, set := range sets {
		if len(set) == 0 {
			return nil
		}
		for _, sol := range set {
			if n := len(sol); n > 0 && sol[n-1] > high {
				high = sol[n-1]
			}
		}
	}

	var (
		out    []Combination
		used   = make([]bool, high+1)
		prefix = make([]Solution, 0, len(sets))
	)

	// Recursion depth equals the number of totals, which is small; the
	// exponential dimension lives in the loop, not the call stack.
	var walk func(depth int)
	walk = func(depth int) {
		for _, sol := range sets[depth] {
			if overlaps(sol, used) {
				continue
			}
			mark(sol, used, true)
			prefix = append(prefix, sol)
			if depth == len(sets)-1 {
				out = append(out, append(Combination(nil), prefix...))
			} else {
				walk(depth + 1)
			}
			prefix = prefix[:len(prefix)-1]
			mark(sol, used, false)
		}
	}
	walk(0)

	return out
}

// overlaps reports whether any index of sol is already claimed.
func overlaps(sol Solution, used []bool) bool {
	for _, idx := range sol {
		if used[idx] {
			return true
		}
	}
	return false
}

// mark sets or clears the claim bits for every index of sol.
func mark(sol Solution, used []bool, on bool) {
	for _, idx := range sol {
		used[idx] = on
	}
}
