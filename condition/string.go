package condition

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// StringOperator is one of the string comparison operators a
// StringRule may apply. The "I" suffix marks the case-insensitive
// variant of the preceding operator.
type StringOperator int

const (
	StringEqual StringOperator = iota
	StringEqualI
	StringNotEqual
	StringNotEqualI
	Contains
	ContainsI
	StartsWith
	StartsWithI
	EndsWith
	EndsWithI
	IsEmpty
	IsNotEmpty
)

var fold = cases.Fold()

// StringRule narrows the incoming value by Path (via
// PropertyPathResolver; empty resolves to the value itself), coerces
// the result to string, and compares it against CompareTo using Op.
// IsEmpty/IsNotEmpty ignore CompareTo; every other operator requires
// the resolved value to be a string and CompareTo non-nil, otherwise
// it evaluates to false. A path that fails to resolve is treated as a
// nil value rather than erroring, same as NumericRule.
type StringRule struct {
	Path      string
	Op        StringOperator
	CompareTo *string
}

// Evaluate implements Rule.
func (r StringRule) Evaluate(value any) bool {
	resolved, _ := resolve(value, r.Path)

	if r.Op == IsEmpty || r.Op == IsNotEmpty {
		s, isString := resolved.(string)
		if !isString && resolved != nil {
			s = fmt.Sprint(resolved)
		}
		empty := s == ""
		if r.Op == IsEmpty {
			return empty
		}
		return !empty
	}

	s, ok := resolved.(string)
	if !ok || r.CompareTo == nil {
		return false
	}
	cmp := *r.CompareTo

	switch r.Op {
	case StringEqual:
		return s == cmp
	case StringEqualI:
		return foldEqual(s, cmp)
	case StringNotEqual:
		return s != cmp
	case StringNotEqualI:
		return !foldEqual(s, cmp)
	case Contains:
		return strings.Contains(s, cmp)
	case ContainsI:
		return strings.Contains(fold.String(s), fold.String(cmp))
	case StartsWith:
		return strings.HasPrefix(s, cmp)
	case StartsWithI:
		return strings.HasPrefix(fold.String(s), fold.String(cmp))
	case EndsWith:
		return strings.HasSuffix(s, cmp)
	case EndsWithI:
		return strings.HasSuffix(fold.String(s), fold.String(cmp))
	default:
		return false
	}
}

// foldEqual reports whether a and b are equal under culture-independent
// case folding, using golang.org/x/text/cases rather than
// strings.EqualFold (which only handles simple ASCII case folding).
func foldEqual(a, b string) bool {
	return fold.String(a) == fold.String(b)
}

