package condition

import "testing"

type constRule bool

func (c constRule) Evaluate(any) bool { return bool(c) }

func TestRuleSet_Evaluate(t *testing.T) {
	t.Run("empty set is vacuously true under And", func(t *testing.T) {
		rs := RuleSet{Combinator: And}
		if !rs.Evaluate(nil) {
			t.Error("expected an empty And set to evaluate true")
		}
	})

	t.Run("empty set is vacuously false under Or", func(t *testing.T) {
		rs := RuleSet{Combinator: Or}
		if rs.Evaluate(nil) {
			t.Error("expected an empty Or set to evaluate false")
		}
	})

	t.Run("And requires every rule to hold", func(t *testing.T) {
		rs := RuleSet{Combinator: And, Rules: []Rule{constRule(true), constRule(true)}}
		if !rs.Evaluate(nil) {
			t.Error("expected all-true rules to satisfy And")
		}
		rs.Rules = append(rs.Rules, constRule(false))
		if rs.Evaluate(nil) {
			t.Error("expected one false rule to fail And")
		}
	})

	t.Run("Or requires at least one rule to hold", func(t *testing.T) {
		rs := RuleSet{Combinator: Or, Rules: []Rule{constRule(false), constRule(true)}}
		if !rs.Evaluate(nil) {
			t.Error("expected one true rule to satisfy Or")
		}
		rs.Rules = []Rule{constRule(false), constRule(false)}
		if rs.Evaluate(nil) {
			t.Error("expected all-false rules to fail Or")
		}
	})
}

// TestRuleSet_Evaluate_RulesOverDifferentPaths exercises a RuleSet
// whose rules each narrow a shared root by their own Path, e.g.
// "a.x > 5 AND b.y == "z"" — a set cannot be collapsed to one
// path shared by every rule.
func TestRuleSet_Evaluate_RulesOverDifferentPaths(t *testing.T) {
	target, err := ParseJSON(`{"a":{"x":10},"b":{"y":"z"}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rs := RuleSet{
		Combinator: And,
		Rules: []Rule{
			NumericRule{Path: "a.x", Op: GreaterThan, CompareTo: 5},
			StringRule{Path: "b.y", Op: StringEqual, CompareTo: ptr("z")},
		},
	}
	if !rs.Evaluate(target) {
		t.Error("expected both rules, each resolving its own path, to hold")
	}

	rs.Rules[1] = StringRule{Path: "b.y", Op: StringEqual, CompareTo: ptr("not-z")}
	if rs.Evaluate(target) {
		t.Error("expected the mismatched second rule to fail the set")
	}
}
