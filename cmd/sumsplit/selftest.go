package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/sumsplit/subsetsum"
)

// fixtureConstituents is a ledger-like workload: twenty mixed-sign values
// with three known disjoint answer subsets.
var fixtureConstituents = []float64{
	435.0, 1034.0, 10.4, 54.3, 130.0,
	284.2, 41.2, 5.90, 91.7, -20.5,
	1562.6, 725.0, 54.0, 899.0, -420.0,
	341.2, 666.0, -246.8, 398.4, 61.5,
}

// fixtureAnswers are the planted solutions; totals are derived from them so
// the pipeline must recover each one.
var fixtureAnswers = []subsetsum.Solution{
	{0, 6, 9},
	{4, 8},
	{3, 10, 11, 17},
}

// runSelfTest smoke-tests the whole pipeline end to end on the built-in
// fixture and fails if any planted answer goes missing.
func runSelfTest(w io.Writer, opts subsetsum.Options) error {
	totals := make([]float64, len(fixtureAnswers))
	for i, answer := range fixtureAnswers {
		totals[i] = answer.Sum(fixtureConstituents)
	}

	fmt.Fprintln(w, "Constituents:", fixtureConstituents)
	fmt.Fprintln(w, "Totals:", totals)
	fmt.Fprintln(w, "Planted answer:", fixtureAnswers)
	fmt.Fprintln(w)

	res, err := subsetsum.Solve(fixtureConstituents, totals, opts)
	if err != nil {
		return err
	}

	printReport(w, res, fixtureConstituents, totals, opts.Precision)

	for i, answer := range fixtureAnswers {
		if !res.PerTotal[i].Contains(answer) {
			return fmt.Errorf("self-test: planted answer %v missing for total %v", answer, totals[i])
		}
	}

	return nil
}
