package subsetsum_test

import (
	"testing"

	"github.com/katalvlaran/sumsplit/subsetsum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDisjointCombinations_HandBuilt enumerates a small hand-built product
// and checks the exact result, including overlap exclusion.
func TestDisjointCombinations_HandBuilt(t *testing.T) {
	sets := []subsetsum.SolutionSet{
		{{0}, {1}},
		{{0}, {2}},
	}

	got := subsetsum.DisjointCombinations(sets)

	want := []subsetsum.Combination{
		{{0}, {2}}, // {0} from the first set excludes {0} from the second
		{{1}, {0}},
		{{1}, {2}},
	}
	assert.Equal(t, want, got)
}

// TestDisjointCombinations_Disjointness verifies the core invariant on a
// real search product: no constituent index appears twice inside one
// combination.
func TestDisjointCombinations_Disjointness(t *testing.T) {
	constituents := []float64{1, 2, 3, 4, 5, 6}
	res, err := subsetsum.Solve(constituents, []float64{12, 9}, subsetsum.DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, res.Combinations)

	for _, combo := range res.Combinations {
		seen := make(map[int]bool)
		for _, sol := range combo {
			for _, idx := range sol {
				assert.False(t, seen[idx], "index %d reused inside %v", idx, combo)
				seen[idx] = true
			}
		}
	}
}

// TestDisjointCombinations_OrderPreserved verifies element i of every
// combination solves total i.
func TestDisjointCombinations_OrderPreserved(t *testing.T) {
	constituents := []float64{1, 2, 3, 4, 5, 6}
	totals := []float64{12, 9}
	opts := subsetsum.DefaultOptions()

	res, err := subsetsum.Solve(constituents, totals, opts)
	require.NoError(t, err)

	for _, combo := range res.Combinations {
		require.Len(t, combo, len(totals))
		for i, sol := range combo {
			assert.InDelta(t, totals[i], sol.Sum(constituents), opts.Tol,
				"element %d of %v must solve total %v", i, combo, totals[i])
		}
	}
}

// TestDisjointCombinations_EmptySet verifies a single unsatisfiable total
// collapses the whole enumeration, wherever it sits in the list.
func TestDisjointCombinations_EmptySet(t *testing.T) {
	full := subsetsum.SolutionSet{{0}, {1}}

	assert.Nil(t, subsetsum.DisjointCombinations([]subsetsum.SolutionSet{{}, full}))
	assert.Nil(t, subsetsum.DisjointCombinations([]subsetsum.SolutionSet{full, {}}))
	assert.Nil(t, subsetsum.DisjointCombinations([]subsetsum.SolutionSet{full, nil, full}))
	assert.Nil(t, subsetsum.DisjointCombinations(nil))
}

// TestDisjointCombinations_SingleTotal verifies every solution of a lone
// total forms its own combination.
func TestDisjointCombinations_SingleTotal(t *testing.T) {
	set := subsetsum.SolutionSet{{0, 2}, {1}, {3, 4}}

	got := subsetsum.DisjointCombinations([]subsetsum.SolutionSet{set})

	require.Len(t, got, len(set))
	for i, combo := range got {
		assert.Equal(t, subsetsum.Combination{set[i]}, combo)
	}
}

// TestDisjointCombinations_FullProduct verifies that fully disjoint sets
// yield the complete cartesian product.
func TestDisjointCombinations_FullProduct(t *testing.T) {
	sets := []subsetsum.SolutionSet{
		{{0}, {1}},
		{{2}, {3}},
		{{4}},
	}

	got := subsetsum.DisjointCombinations(sets)

	assert.Len(t, got, 4, "2*2*1 disjoint choices")
}
