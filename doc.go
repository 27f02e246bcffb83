// Package sumsplit enumerates every way a multiset of numeric values can be
// partitioned across several target totals — exhaustive subset-sum search
// plus disjoint cross-total combination, with floating-point tolerance.
//
// 🚀 What is sumsplit?
//
//	Given candidate values ("constituents") and one or more target sums
//	("totals"), sumsplit finds:
//	  • every subset of constituents matching each total, and
//	  • every way to pick one subset per total without reusing a value.
//	Typical uses: ledger/statement reconciliation, invoice matching,
//	splitting stock across orders.
//
// ✨ Why choose sumsplit?
//
//   - Complete — every solution is enumerated, never just the first
//   - Deterministic — canonical subset form, reproducible ordering
//   - Robust — decimal rounding plus tolerance band, negative values welcome
//   - Pure Go core — the solver is a pair of pure functions
//
// Everything is organized under two packages:
//
//	subsetsum/     — the solver: FindConstituents, DisjointCombinations, Solve
//	cmd/sumsplit/  — CLI: inline or file input, colored report, --test fixture
//
// Quick start:
//
//	res, err := subsetsum.Solve(
//	  []float64{1, 2, 3, 4, 5, 6},
//	  []float64{12, 9},
//	  subsetsum.DefaultOptions(),
//	)
//	// len(res.Combinations) == 5
//
// Dive into subsetsum/doc.go for the tolerance model and complexity notes.
package sumsplit
