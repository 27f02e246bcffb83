package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sumsplit/subsetsum"
)

// runConfig collects every flag the command accepts.
type runConfig struct {
	values     []float64
	valuesPath string
	totals     []float64
	totalsPath string
	precision  int
	tolerance  float64
	selfTest   bool
}

func newRootCmd() *cobra.Command {
	cfg := &runConfig{}

	cmd := &cobra.Command{
		Use:   "sumsplit",
		Short: "enumerate disjoint subset-sum solutions for a list of totals",
		Long: `sumsplit answers two questions about a list of numeric values:
which subsets sum to each given total, and which per-total choices never
reuse a value. Every solution is enumerated, duplicates are collapsed, and
sums are compared with decimal rounding plus an absolute tolerance band.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.Float64SliceVarP(&cfg.values, "values", "v", nil, "inline constituent values")
	flags.StringVar(&cfg.valuesPath, "values-path", "", "file with one constituent value per line")
	flags.Float64SliceVarP(&cfg.totals, "totals", "t", nil, "inline target totals")
	flags.StringVar(&cfg.totalsPath, "totals-path", "", "file with one target total per line")
	flags.IntVarP(&cfg.precision, "precision", "p", subsetsum.DefaultPrecision, "decimal places sums are rounded to before comparison")
	flags.Float64Var(&cfg.tolerance, "tolerance", subsetsum.DefaultTol, "acceptance band around each total")
	flags.BoolVarP(&cfg.selfTest, "test", "T", false, "run the built-in fixture instead of reading input")

	cmd.MarkFlagsMutuallyExclusive("values", "values-path")
	cmd.MarkFlagsMutuallyExclusive("totals", "totals-path")

	return cmd
}

// run resolves inputs, executes the solver, and renders the report.
func run(cmd *cobra.Command, cfg *runConfig) error {
	opts := subsetsum.Options{Precision: cfg.precision, Tol: cfg.tolerance}

	if cfg.selfTest {
		return runSelfTest(cmd.OutOrStdout(), opts)
	}

	constituents, err := resolveInput(cfg.values, cfg.valuesPath, "values")
	if err != nil {
		return err
	}
	totals, err := resolveInput(cfg.totals, cfg.totalsPath, "totals")
	if err != nil {
		return err
	}

	res, err := subsetsum.Solve(constituents, totals, opts)
	if err != nil {
		return err
	}

	printReport(cmd.OutOrStdout(), res, constituents, totals, cfg.precision)

	return nil
}

// resolveInput picks between an inline list and a file source; exactly one
// must be present. The mutually-exclusive pair is also enforced by cobra
// flag groups, the one-required side lives here because --test bypasses it.
func resolveInput(inline []float64, path, name string) ([]float64, error) {
	switch {
	case len(inline) > 0 && path != "":
		return nil, fmt.Errorf("both --%s and --%s-path were given, only one should be given", name, name)
	case len(inline) > 0:
		return inline, nil
	case path != "":
		return readFloats(path)
	default:
		return nil, fmt.Errorf("neither --%s nor --%s-path was given, one is required", name, name)
	}
}

// readFloats loads one float per line from path. Blank lines are skipped;
// anything non-numeric is reported with its line number.
func readFloats(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var (
		out  []float64
		line int
	)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		v, perr := strconv.ParseFloat(text, 64)
		if perr != nil {
			return nil, fmt.Errorf("%s:%d: not a number: %q", path, line, text)
		}
		out = append(out, v)
	}
	if serr := scanner.Err(); serr != nil {
		return nil, fmt.Errorf("read %s: %w", path, serr)
	}

	return out, nil
}
