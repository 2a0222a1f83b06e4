package scenario

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// document is the JSON view of a finished run that assertion paths address:
// "report.categories.jackpot", "analysis.win_rate", "report.players.0.wins".
func document(r *Result) (map[string]interface{}, error) {
	data, err := json.Marshal(map[string]interface{}{
		"report":   r.Report,
		"analysis": r.Analysis,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextEncodeResult, err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextEncodeResult, err)
	}
	return doc, nil
}

// checkAssertion evaluates an assertion against the run document
func checkAssertion(assertion Assertion, doc map[string]interface{}) AssertionResult {
	result := AssertionResult{
		Type:     assertion.Type,
		Path:     assertion.Path,
		Expected: assertion.Value,
		Reason:   assertion.Reason,
		Passed:   true,
	}

	actual, found := getValueByPath(assertion.Path, doc)
	result.Actual = actual
	if !found {
		result.Passed = false
		result.Error = fmt.Sprintf("path '%s' not found", assertion.Path)
		return result
	}

	switch assertion.Type {
	case AssertEquals:
		result.Passed = valuesEqual(actual, assertion.Value)
		if !result.Passed {
			result.Error = fmt.Sprintf("expected %v, got %v", assertion.Value, actual)
		}

	case AssertGreaterThan:
		passed, err := compareNumeric(actual, assertion.Value, ">")
		result.Passed = passed
		if err != nil {
			result.Error = err.Error()
		}

	case AssertLessThan:
		passed, err := compareNumeric(actual, assertion.Value, "<")
		result.Passed = passed
		if err != nil {
			result.Error = err.Error()
		}

	case AssertBetween:
		passedMin, err1 := compareNumeric(actual, assertion.Min, ">=")
		passedMax, err2 := compareNumeric(actual, assertion.Max, "<=")
		result.Passed = passedMin && passedMax
		if err1 != nil || err2 != nil {
			result.Error = fmt.Sprintf("between comparison failed: min=%v, max=%v", err1, err2)
		}
		result.Expected = fmt.Sprintf("between %v and %v", assertion.Min, assertion.Max)

	case AssertTrue:
		b, ok := actual.(bool)
		result.Passed = ok && b
		if !result.Passed {
			result.Error = fmt.Sprintf("expected true, got %v", actual)
		}

	case AssertFalse:
		b, ok := actual.(bool)
		result.Passed = ok && !b
		if !result.Passed {
			result.Error = fmt.Sprintf("expected false, got %v", actual)
		}

	case AssertNotEmpty:
		result.Passed = !isEmpty(actual)
		if !result.Passed {
			result.Error = "value is empty"
		}

	default:
		result.Passed = false
		result.Error = fmt.Sprintf("unknown assertion type: %s", assertion.Type)
	}

	if !result.Passed && result.Error == "" {
		result.Error = fmt.Sprintf("expected %s %v, got %v", assertion.Type, result.Expected, actual)
	}
	return result
}

// getValueByPath walks a dotted path through maps and, by index, slices
func getValueByPath(path string, doc map[string]interface{}) (interface{}, bool) {
	if path == "" {
		return nil, false
	}

	var current interface{} = doc
	for _, part := range strings.Split(path, ".") {
		switch v := current.(type) {
		case map[string]interface{}:
			next, ok := v[part]
			if !ok {
				return nil, false
			}
			current = next
		case []interface{}:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(v) {
				return nil, false
			}
			current = v[i]
		default:
			return nil, false
		}
	}
	return current, true
}

// valuesEqual compares two values for equality
func valuesEqual(a, b interface{}) bool {
	// Handle numeric comparisons specially
	aNum, aIsNum := toFloat64(a)
	bNum, bIsNum := toFloat64(b)
	if aIsNum && bIsNum {
		return aNum == bNum
	}

	return reflect.DeepEqual(a, b)
}

// compareNumeric compares two numeric values
func compareNumeric(actual, expected interface{}, op string) (bool, error) {
	a, aOk := toFloat64(actual)
	b, bOk := toFloat64(expected)

	if !aOk || !bOk {
		return false, fmt.Errorf("cannot compare non-numeric values: %v, %v", actual, expected)
	}

	switch op {
	case ">":
		return a > b, nil
	case ">=":
		return a >= b, nil
	case "<":
		return a < b, nil
	case "<=":
		return a <= b, nil
	default:
		return false, fmt.Errorf("unknown comparison operator: %s", op)
	}
}

// toFloat64 converts a value to float64 if possible. Decimals arrive as
// numeric strings.
func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// isEmpty checks if a value is empty
func isEmpty(v interface{}) bool {
	if v == nil {
		return true
	}

	switch val := v.(type) {
	case string:
		return val == ""
	case []interface{}:
		return len(val) == 0
	case map[string]interface{}:
		return len(val) == 0
	default:
		return false
	}
}
