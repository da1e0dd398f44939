// Package evals provides an evaluation harness for MCP tool selection.
// It checks that a selector (an LLM, or the keyword baseline here) picks the
// right tool and extracts the right arguments from natural-language inputs.
package evals

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"
)

// ToolSelectionTest is a single tool-selection case.
type ToolSelectionTest struct {
	ID           string         `json:"id"`
	Category     string         `json:"category"`
	Input        string         `json:"input"`
	ExpectedTool string         `json:"expected_tool"`
	ExpectedArgs map[string]any `json:"expected_args,omitempty"`
	NotTools     []string       `json:"not_tools,omitempty"`
}

// ToolSelectionSuite is a named collection of tool-selection cases.
type ToolSelectionSuite struct {
	Name        string              `json:"name"`
	Version     string              `json:"version"`
	Description string              `json:"description"`
	Tests       []ToolSelectionTest `json:"tests"`
}

// LoadToolSelectionSuite loads a suite from a JSON file.
func LoadToolSelectionSuite(path string) (*ToolSelectionSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	var suite ToolSelectionSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	return &suite, nil
}

// ToolSelector picks a tool and arguments for a natural-language input.
type ToolSelector interface {
	SelectTool(input string) (toolName string, args map[string]any, err error)
}

// Result is the outcome of one evaluation case.
type Result struct {
	TestID       string
	Input        string
	ExpectedTool string
	ActualTool   string
	Passed       bool
	Errors       []string
}

// Metrics aggregates an evaluation run.
type Metrics struct {
	TotalTests  int
	PassedTests int
	FailedTests int
	Accuracy    float64
	ByCategory  map[string]*CategoryMetrics
}

// CategoryMetrics counts outcomes within one category.
type CategoryMetrics struct {
	Total  int
	Passed int
	Failed int
}

// Evaluate runs every case in the suite against the selector.
func Evaluate(suite *ToolSelectionSuite, selector ToolSelector) (*Metrics, []Result) {
	metrics := &Metrics{ByCategory: make(map[string]*CategoryMetrics)}
	var results []Result

	for _, test := range suite.Tests {
		metrics.TotalTests++
		if metrics.ByCategory[test.Category] == nil {
			metrics.ByCategory[test.Category] = &CategoryMetrics{}
		}
		metrics.ByCategory[test.Category].Total++

		actualTool, actualArgs, err := selector.SelectTool(test.Input)

		result := Result{
			TestID:       test.ID,
			Input:        test.Input,
			ExpectedTool: test.ExpectedTool,
			ActualTool:   actualTool,
			Passed:       true,
		}

		if err != nil {
			result.Passed = false
			result.Errors = append(result.Errors, fmt.Sprintf("selector error: %v", err))
		}
		if actualTool != test.ExpectedTool {
			result.Passed = false
			result.Errors = append(result.Errors,
				fmt.Sprintf("wrong tool: expected %s, got %s", test.ExpectedTool, actualTool))
		}
		for _, forbidden := range test.NotTools {
			if actualTool == forbidden {
				result.Passed = false
				result.Errors = append(result.Errors, fmt.Sprintf("selected forbidden tool %s", forbidden))
			}
		}
		for key, want := range test.ExpectedArgs {
			got, ok := actualArgs[key]
			if !ok {
				result.Passed = false
				result.Errors = append(result.Errors, fmt.Sprintf("missing argument %q", key))
				continue
			}
			if !reflect.DeepEqual(got, want) {
				result.Passed = false
				result.Errors = append(result.Errors,
					fmt.Sprintf("argument %q: expected %v, got %v", key, want, got))
			}
		}

		if result.Passed {
			metrics.PassedTests++
			metrics.ByCategory[test.Category].Passed++
		} else {
			metrics.FailedTests++
			metrics.ByCategory[test.Category].Failed++
		}
		results = append(results, result)
	}

	if metrics.TotalTests > 0 {
		metrics.Accuracy = float64(metrics.PassedTests) / float64(metrics.TotalTests)
	}
	return metrics, results
}

// KeywordSelector is a deterministic baseline selector over the four tools.
// It exists to validate suites and to set a floor that a real LLM selector
// must beat.
type KeywordSelector struct{}

// SelectTool routes by keyword. Detail lookups win over searches when an
// explicit place ID is present.
func (KeywordSelector) SelectTool(input string) (string, map[string]any, error) {
	lower := strings.ToLower(input)

	switch {
	case strings.Contains(lower, "hvd_") || strings.Contains(lower, "place id") || strings.Contains(lower, "detail"):
		return "tgaz_get_place", map[string]any{}, nil
	case strings.Contains(lower, "people") || strings.Contains(lower, "person") ||
		strings.Contains(lower, "official") || strings.Contains(lower, "who"):
		return "cbdb_query_people_by_place", map[string]any{}, nil
	case strings.Contains(lower, "gazetteer") || strings.Contains(lower, "tgaz") ||
		strings.Contains(lower, "year") || strings.Contains(lower, "feature type"):
		return "tgaz_search_placenames", map[string]any{}, nil
	default:
		return "cbdb_search_places", map[string]any{}, nil
	}
}
