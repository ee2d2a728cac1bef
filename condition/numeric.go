package condition

import "strconv"

// NumericOperator is one of the six numeric comparison operators a
// NumericRule may apply.
type NumericOperator int

const (
	Equal NumericOperator = iota
	NotEqual
	GreaterThan
	LessThan
	GreaterThanOrEqual
	LessThanOrEqual
)

// NumericRule narrows the incoming value by Path (via
// PropertyPathResolver; empty resolves to the value itself), converts
// the result to float64, and compares it against CompareTo using Op. A
// path that fails to resolve, or a value that cannot be converted to
// float64, evaluates to false rather than erroring — condition
// evaluation is boolean-only and has no side-band error channel of its
// own. Path lets rules in the same RuleSet each narrow the value
// independently, e.g. "a.x > 5 AND b.y == 3" over one resolved root.
type NumericRule struct {
	Path      string
	Op        NumericOperator
	CompareTo float64
}

// Evaluate implements Rule.
func (r NumericRule) Evaluate(value any) bool {
	resolved, ok := resolve(value, r.Path)
	if !ok {
		return false
	}
	v, ok := toFloat64(resolved)
	if !ok {
		return false
	}
	switch r.Op {
	case Equal:
		return v == r.CompareTo
	case NotEqual:
		return v != r.CompareTo
	case GreaterThan:
		return v > r.CompareTo
	case LessThan:
		return v < r.CompareTo
	case GreaterThanOrEqual:
		return v >= r.CompareTo
	case LessThanOrEqual:
		return v <= r.CompareTo
	default:
		return false
	}
}

// toFloat64 converts the common numeric kinds (including gjson's own
// float64/int64 results and JSON-decoded float64) plus numeric
// strings to float64.
func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
