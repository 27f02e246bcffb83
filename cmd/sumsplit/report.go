package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/sumsplit/subsetsum"
)

var (
	headingColor = color.New(color.FgGreen, color.Bold)
	totalColor   = color.New(color.FgCyan)
)

// printReport renders combinations the way operators read them: for each
// unique solution, every input total with the constituent values composing
// it and the recomputed sum.
func printReport(w io.Writer, res subsetsum.Result, constituents, totals []float64, precision int) {
	headingColor.Fprintf(w, "Found %d unique solution(s)\n", len(res.Combinations))

	for i, combo := range res.Combinations {
		fmt.Fprintln(w)
		totalColor.Fprintf(w, "[Unique solution %d]:\n", i+1)
		for j, sol := range combo {
			fmt.Fprintf(w, "    %s = (%s)  [sum %.*f]\n",
				formatFloat(totals[j]),
				joinTerms(sol.Values(constituents)),
				precision, sol.Sum(constituents),
			)
		}
	}
}

// joinTerms renders selected values as "a + b + c".
func joinTerms(values []float64) string {
	terms := make([]string, len(values))
	for i, v := range values {
		terms[i] = formatFloat(v)
	}
	return strings.Join(terms, " + ")
}

// formatFloat prints a value without trailing zero noise.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
