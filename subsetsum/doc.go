// Package subsetsum enumerates every way a set of numeric constituents can
// be partitioned across several target totals, with floating-point tolerance.
//
// 🚀 What does it solve?
//
//	Given a list of candidate values ("constituents") and one or more target
//	sums ("totals"), subsetsum answers two questions:
//	  • Which subsets of constituents sum to each total?      (FindConstituents)
//	  • Which per-total choices never reuse a constituent?    (DisjointCombinations)
//	Typical uses: reconciling bank statements against invoice totals,
//	splitting a bill of materials across orders, matching ledger entries.
//
// ✨ Key features:
//   - exhaustive enumeration — every solution is found, not just the first
//   - duplicate-free results via canonical ascending index form
//   - negative constituents supported (the pruning bound accounts for them)
//   - explicit-stack search: no recursion-depth limit on large inputs
//   - deterministic output ordering (lexicographic by index)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/sumsplit/subsetsum"
//
//	opts := subsetsum.DefaultOptions() // Precision=3, Tol=1e-4
//	res, err := subsetsum.Solve(
//	  []float64{1, 2, 3, 4, 5, 6}, // constituents
//	  []float64{12, 9},            // totals
//	  opts,
//	)
//	// res.Combinations — every pairing of a 12-subset with a disjoint 9-subset
//
// Floating-point policy:
//
//	Sums are never compared exactly. Every value is rounded to Options.Precision
//	decimal places and remainders are accepted inside the inclusive ±Options.Tol
//	band. The same rounding is applied to constituents, totals, and every
//	intermediate remainder, so accumulated drift cannot desynchronize the two.
//
// Performance:
//
//   - FindConstituents: exponential in the worst case (inherent to subset-sum);
//     the bound skips candidates that cannot be completed even with the most
//     negative unused constituent.
//   - DisjointCombinations: worst case is the product of the per-total
//     solution-set sizes.
//
// See examples in example_test.go.
package subsetsum
