// Package evals provides an evaluation framework for MCP tool selection.
// Suites pair natural language requests with the tool and arguments an LLM
// should pick; a ToolSelector (an LLM harness or a mock) is scored against them.
package evals

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/olgasafonova/headless-cms-mcp-server/tools"
)

// ToolSelectionTest is a single tool selection case
type ToolSelectionTest struct {
	ID           string         `json:"id"`
	Category     string         `json:"category"`
	Input        string         `json:"input"`
	ExpectedTool string         `json:"expected_tool"`
	ExpectedArgs map[string]any `json:"expected_args"`
	NotTools     []string       `json:"not_tools"`
}

// ToolSelectionSuite contains all tool selection tests
type ToolSelectionSuite struct {
	Name        string              `json:"name"`
	Version     string              `json:"version"`
	Description string              `json:"description"`
	Tests       []ToolSelectionTest `json:"tests"`
}

// ConfusionPairTest is a single disambiguation case
type ConfusionPairTest struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
	Reason   string `json:"reason"`
}

// ConfusionPair is a pair of tools that are commonly confused, such as the
// slug-based WordPress lookups and the id-based CMS lookups
type ConfusionPair struct {
	ID             string              `json:"id"`
	Tools          []string            `json:"tools"`
	Disambiguation string              `json:"disambiguation"`
	Tests          []ConfusionPairTest `json:"tests"`
}

// ConfusionPairSuite contains all confusion pair tests
type ConfusionPairSuite struct {
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Pairs       []ConfusionPair `json:"pairs"`
}

// ToolSelector is implemented by an LLM harness or a mock
type ToolSelector interface {
	// SelectTool returns the tool name and arguments for a natural language input
	SelectTool(input string) (toolName string, args map[string]any, err error)
}

// ToolSelectionResult is the outcome of one tool selection case
type ToolSelectionResult struct {
	TestID       string
	Input        string
	ExpectedTool string
	ActualTool   string
	Passed       bool
	Errors       []string
}

// EvalMetrics contains aggregate metrics for an evaluation run
type EvalMetrics struct {
	TotalTests    int
	PassedTests   int
	FailedTests   int
	Accuracy      float64 // PassedTests / TotalTests
	ByCategory    map[string]*CategoryMetrics
	FailedDetails []string
}

// CategoryMetrics contains metrics per category
type CategoryMetrics struct {
	Total  int
	Passed int
	Failed int
}

func newMetrics() *EvalMetrics {
	return &EvalMetrics{ByCategory: make(map[string]*CategoryMetrics)}
}

func (m *EvalMetrics) record(category string, passed bool, detail string) {
	m.TotalTests++
	if m.ByCategory[category] == nil {
		m.ByCategory[category] = &CategoryMetrics{}
	}
	c := m.ByCategory[category]
	c.Total++
	if passed {
		m.PassedTests++
		c.Passed++
	} else {
		m.FailedTests++
		c.Failed++
		m.FailedDetails = append(m.FailedDetails, detail)
	}
	m.Accuracy = float64(m.PassedTests) / float64(m.TotalTests)
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing JSON: %w", err)
	}
	return nil
}

// LoadToolSelectionSuite loads tool selection tests from a JSON file
func LoadToolSelectionSuite(path string) (*ToolSelectionSuite, error) {
	var suite ToolSelectionSuite
	if err := loadJSON(path, &suite); err != nil {
		return nil, err
	}
	return &suite, nil
}

// LoadConfusionPairSuite loads confusion pair tests from a JSON file
func LoadConfusionPairSuite(path string) (*ConfusionPairSuite, error) {
	var suite ConfusionPairSuite
	if err := loadJSON(path, &suite); err != nil {
		return nil, err
	}
	return &suite, nil
}

// LoadAll loads tool_selection.json and confusion_pairs.json from dir
func LoadAll(dir string) (*ToolSelectionSuite, *ConfusionPairSuite, error) {
	selection, err := LoadToolSelectionSuite(filepath.Join(dir, "tool_selection.json"))
	if err != nil {
		return nil, nil, fmt.Errorf("loading tool selection: %w", err)
	}
	pairs, err := LoadConfusionPairSuite(filepath.Join(dir, "confusion_pairs.json"))
	if err != nil {
		return nil, nil, fmt.Errorf("loading confusion pairs: %w", err)
	}
	return selection, pairs, nil
}

// EvaluateToolSelection runs tool selection tests against a selector
func EvaluateToolSelection(suite *ToolSelectionSuite, selector ToolSelector) (*EvalMetrics, []ToolSelectionResult) {
	metrics := newMetrics()
	results := make([]ToolSelectionResult, 0, len(suite.Tests))

	for _, test := range suite.Tests {
		actualTool, actualArgs, err := selector.SelectTool(test.Input)

		result := ToolSelectionResult{
			TestID:       test.ID,
			Input:        test.Input,
			ExpectedTool: test.ExpectedTool,
			ActualTool:   actualTool,
			Passed:       true,
		}
		fail := func(format string, args ...any) {
			result.Passed = false
			result.Errors = append(result.Errors, fmt.Sprintf(format, args...))
		}

		if err != nil {
			fail("selector error: %v", err)
		}
		if actualTool != test.ExpectedTool {
			fail("wrong tool: expected %s, got %s", test.ExpectedTool, actualTool)
		}
		for _, forbidden := range test.NotTools {
			if actualTool == forbidden {
				fail("selected forbidden tool: %s", forbidden)
			}
		}
		for key, expected := range test.ExpectedArgs {
			actual, ok := actualArgs[key]
			switch {
			case !ok:
				fail("missing arg %s (expected %v)", key, expected)
			case !compareValues(expected, actual):
				fail("wrong arg %s: expected %v, got %v", key, expected, actual)
			}
		}

		metrics.record(test.Category, result.Passed,
			fmt.Sprintf("[%s] %s: %s", test.ID, test.Input, strings.Join(result.Errors, "; ")))
		results = append(results, result)
	}

	return metrics, results
}

// EvaluateConfusionPairs runs disambiguation tests against a selector.
// Results are grouped by pair id.
func EvaluateConfusionPairs(suite *ConfusionPairSuite, selector ToolSelector) *EvalMetrics {
	metrics := newMetrics()
	for _, pair := range suite.Pairs {
		for _, test := range pair.Tests {
			actual, _, err := selector.SelectTool(test.Input)
			passed := err == nil && actual == test.Expected
			metrics.record(pair.ID, passed,
				fmt.Sprintf("[%s] %s: expected %s, got %s (%s)", pair.ID, test.Input, test.Expected, actual, test.Reason))
		}
	}
	return metrics
}

// CheckSuites reports references to tools that specs doesn't define and
// tools that no selection test covers
func CheckSuites(selection *ToolSelectionSuite, pairs *ConfusionPairSuite, specs []tools.ToolSpec) []string {
	known := make(map[string]bool, len(specs))
	covered := make(map[string]bool, len(specs))
	for _, spec := range specs {
		known[spec.Name] = true
	}

	var problems []string
	check := func(where, name string) {
		if !known[name] {
			problems = append(problems, fmt.Sprintf("%s: unknown tool %q", where, name))
		}
	}

	if selection != nil {
		for _, test := range selection.Tests {
			check(test.ID, test.ExpectedTool)
			covered[test.ExpectedTool] = true
			for _, name := range test.NotTools {
				check(test.ID, name)
			}
		}
	}
	if pairs != nil {
		for _, pair := range pairs.Pairs {
			for _, name := range pair.Tools {
				check(pair.ID, name)
			}
			for _, test := range pair.Tests {
				check(pair.ID, test.Expected)
			}
		}
	}

	for _, spec := range specs {
		if !covered[spec.Name] {
			problems = append(problems, fmt.Sprintf("no selection test covers %s", spec.Name))
		}
	}
	sort.Strings(problems)
	return problems
}

// compareValues compares JSON-decoded values, treating numeric kinds as equal
// when their values are
func compareValues(expected, actual any) bool {
	if expected == nil || actual == nil {
		return expected == actual
	}

	ev := reflect.ValueOf(expected)
	av := reflect.ValueOf(actual)

	if ev.Kind() == reflect.String && av.Kind() == reflect.String {
		return strings.EqualFold(ev.String(), av.String())
	}
	if f, ok := asFloat(ev); ok {
		if g, ok := asFloat(av); ok {
			return f == g
		}
		return false
	}
	if ev.Kind() == reflect.Slice && av.Kind() == reflect.Slice {
		if ev.Len() != av.Len() {
			return false
		}
		for i := 0; i < ev.Len(); i++ {
			if !compareValues(ev.Index(i).Interface(), av.Index(i).Interface()) {
				return false
			}
		}
		return true
	}

	return reflect.DeepEqual(expected, actual)
}

func asFloat(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}

// FormatMetrics returns a human-readable summary of evaluation metrics
func FormatMetrics(metrics *EvalMetrics, suiteName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n=== %s ===\n", suiteName)
	fmt.Fprintf(&b, "Total: %d tests\n", metrics.TotalTests)
	fmt.Fprintf(&b, "Passed: %d (%.1f%%)\n", metrics.PassedTests, metrics.Accuracy*100)
	fmt.Fprintf(&b, "Failed: %d\n", metrics.FailedTests)

	if len(metrics.ByCategory) > 0 {
		categories := make([]string, 0, len(metrics.ByCategory))
		for cat := range metrics.ByCategory {
			categories = append(categories, cat)
		}
		sort.Strings(categories)

		b.WriteString("\nBy Category:\n")
		for _, cat := range categories {
			m := metrics.ByCategory[cat]
			acc := float64(m.Passed) / float64(m.Total) * 100
			fmt.Fprintf(&b, "  %-25s: %d/%d (%.0f%%)\n", cat, m.Passed, m.Total, acc)
		}
	}

	details := metrics.FailedDetails
	if len(details) > 10 {
		fmt.Fprintf(&b, "\nFailed Tests (showing first 10 of %d):\n", len(details))
		details = details[:10]
	} else if len(details) > 0 {
		b.WriteString("\nFailed Tests:\n")
	}
	for _, detail := range details {
		fmt.Fprintf(&b, "  - %s\n", detail)
	}

	return b.String()
}
