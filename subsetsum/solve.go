// Package subsetsum — unified entry point composing search and combination.
package subsetsum

// Result holds the outcome of a full Solve run.
type Result struct {
	// PerTotal holds one SolutionSet per input total, in input order.
	PerTotal []SolutionSet

	// Combinations holds every index-disjoint pick of one Solution per
	// total. Empty when any total is unsatisfiable.
	Combinations []Combination
}

// Solve runs FindConstituents once per total, then combines the per-total
// sets into globally index-disjoint Combinations.
//
// The per-total searches are independent of one another; Solve runs them
// sequentially because correctness does not depend on execution order.
//
// Errors: those of FindConstituents; the first failing total aborts the run.
func Solve(constituents, totals []float64, opts Options) (Result, error) {
	sets := make([]SolutionSet, len(totals))
	for i, total := range totals {
		set, err := FindConstituents(constituents, total, opts)
		if err != nil {
			return Result{}, err
		}
		sets[i] = set
	}

	return Result{
		PerTotal:     sets,
		Combinations: DisjointCombinations(sets),
	}, nil
}
