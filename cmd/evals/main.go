// Command evals runs the tool-selection evaluation suite against the
// keyword baseline selector and prints a per-category report.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/chinahist/places-mcp-server/evals"
)

func main() {
	suitePath := flag.String("suite", "evals/testdata/tool_selection.json", "path to the tool selection suite")
	threshold := flag.Float64("threshold", 0.9, "minimum accuracy to pass")
	verbose := flag.Bool("v", false, "print every failed case")
	flag.Parse()

	suite, err := evals.LoadToolSelectionSuite(*suitePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load suite: %v\n", err)
		os.Exit(1)
	}

	metrics, results := evals.Evaluate(suite, evals.KeywordSelector{})

	fmt.Printf("Suite: %s (v%s)\n", suite.Name, suite.Version)
	fmt.Printf("Tests: %d  Passed: %d  Failed: %d  Accuracy: %.1f%%\n",
		metrics.TotalTests, metrics.PassedTests, metrics.FailedTests, metrics.Accuracy*100)

	categories := make([]string, 0, len(metrics.ByCategory))
	for name := range metrics.ByCategory {
		categories = append(categories, name)
	}
	sort.Strings(categories)
	for _, name := range categories {
		cm := metrics.ByCategory[name]
		fmt.Printf("  %-24s %d/%d\n", name, cm.Passed, cm.Total)
	}

	if *verbose {
		for _, r := range results {
			if !r.Passed {
				fmt.Printf("FAIL %s: %q\n", r.TestID, r.Input)
				for _, e := range r.Errors {
					fmt.Printf("     %s\n", e)
				}
			}
		}
	}

	if metrics.Accuracy < *threshold {
		fmt.Fprintf(os.Stderr, "accuracy %.1f%% below threshold %.1f%%\n",
			metrics.Accuracy*100, *threshold*100)
		os.Exit(1)
	}
}
