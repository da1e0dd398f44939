package evals

import (
	"testing"
)

func TestLoadToolSelectionSuite(t *testing.T) {
	suite, err := LoadToolSelectionSuite("testdata/tool_selection.json")
	if err != nil {
		t.Fatalf("failed to load suite: %v", err)
	}
	if suite.Name == "" {
		t.Error("suite has no name")
	}
	if len(suite.Tests) == 0 {
		t.Fatal("suite has no tests")
	}
	for _, test := range suite.Tests {
		if test.ID == "" {
			t.Error("test with empty id")
		}
		if test.Input == "" {
			t.Errorf("test %q has empty input", test.ID)
		}
		if test.ExpectedTool == "" {
			t.Errorf("test %q has no expected tool", test.ID)
		}
	}
}

func TestLoadToolSelectionSuiteMissingFile(t *testing.T) {
	if _, err := LoadToolSelectionSuite("testdata/does_not_exist.json"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestKeywordSelectorPassesBaselineSuite(t *testing.T) {
	suite, err := LoadToolSelectionSuite("testdata/tool_selection.json")
	if err != nil {
		t.Fatal(err)
	}

	metrics, results := Evaluate(suite, KeywordSelector{})

	if metrics.Accuracy != 1.0 {
		for _, r := range results {
			if !r.Passed {
				t.Errorf("case %s failed: %v (input: %q)", r.TestID, r.Errors, r.Input)
			}
		}
		t.Errorf("accuracy = %.2f, want 1.00", metrics.Accuracy)
	}
	if metrics.TotalTests != len(suite.Tests) {
		t.Errorf("total = %d, want %d", metrics.TotalTests, len(suite.Tests))
	}
}

type fixedSelector struct {
	tool string
	args map[string]any
}

func (s fixedSelector) SelectTool(string) (string, map[string]any, error) {
	return s.tool, s.args, nil
}

func TestEvaluateDetectsWrongTool(t *testing.T) {
	suite := &ToolSelectionSuite{
		Tests: []ToolSelectionTest{
			{ID: "t1", Category: "c", Input: "x", ExpectedTool: "tgaz_get_place"},
		},
	}

	metrics, results := Evaluate(suite, fixedSelector{tool: "cbdb_search_places"})

	if metrics.PassedTests != 0 || metrics.FailedTests != 1 {
		t.Errorf("passed/failed = %d/%d, want 0/1", metrics.PassedTests, metrics.FailedTests)
	}
	if results[0].Passed {
		t.Error("result marked passed for wrong tool")
	}
}

func TestEvaluateDetectsForbiddenTool(t *testing.T) {
	suite := &ToolSelectionSuite{
		Tests: []ToolSelectionTest{
			{ID: "t1", Category: "c", Input: "x", ExpectedTool: "cbdb_search_places",
				NotTools: []string{"cbdb_search_places"}},
		},
	}

	metrics, _ := Evaluate(suite, fixedSelector{tool: "cbdb_search_places"})
	if metrics.FailedTests != 1 {
		t.Error("forbidden tool selection was not flagged")
	}
}

func TestEvaluateChecksExpectedArgs(t *testing.T) {
	suite := &ToolSelectionSuite{
		Tests: []ToolSelectionTest{
			{ID: "t1", Category: "c", Input: "x", ExpectedTool: "tgaz_get_place",
				ExpectedArgs: map[string]any{"place_id": "hvd_80547"}},
		},
	}

	metrics, _ := Evaluate(suite, fixedSelector{
		tool: "tgaz_get_place",
		args: map[string]any{"place_id": "hvd_80547"},
	})
	if metrics.PassedTests != 1 {
		t.Error("matching args should pass")
	}

	metrics, results := Evaluate(suite, fixedSelector{
		tool: "tgaz_get_place",
		args: map[string]any{"place_id": "hvd_99999"},
	})
	if metrics.FailedTests != 1 {
		t.Error("mismatched args should fail")
	}
	if len(results[0].Errors) == 0 {
		t.Error("expected an argument mismatch error")
	}

	metrics, _ = Evaluate(suite, fixedSelector{tool: "tgaz_get_place"})
	if metrics.FailedTests != 1 {
		t.Error("missing args should fail")
	}
}

func TestEvaluateCategoryMetrics(t *testing.T) {
	suite := &ToolSelectionSuite{
		Tests: []ToolSelectionTest{
			{ID: "a", Category: "search", Input: "x", ExpectedTool: "cbdb_search_places"},
			{ID: "b", Category: "search", Input: "y", ExpectedTool: "tgaz_get_place"},
			{ID: "c", Category: "detail", Input: "z", ExpectedTool: "cbdb_search_places"},
		},
	}

	metrics, _ := Evaluate(suite, fixedSelector{tool: "cbdb_search_places"})

	search := metrics.ByCategory["search"]
	if search == nil || search.Total != 2 || search.Passed != 1 || search.Failed != 1 {
		t.Errorf("search category = %+v", search)
	}
	detail := metrics.ByCategory["detail"]
	if detail == nil || detail.Total != 1 || detail.Passed != 1 {
		t.Errorf("detail category = %+v", detail)
	}
}
