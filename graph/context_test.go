package graph

import "testing"

func TestExecutionContext_StatusTransitions(t *testing.T) {
	t.Run("starts Idle and generates a RunID when none given", func(t *testing.T) {
		ec := NewExecutionContext("")
		if ec.CurrentStatus() != Idle {
			t.Errorf("expected Idle, got %s", ec.CurrentStatus())
		}
		if ec.ExecutionID() == "" {
			t.Error("expected a generated RunID")
		}
	})

	t.Run("allows Idle to Running", func(t *testing.T) {
		ec := NewExecutionContext("run-1")
		if err := ec.SetStatus(Running); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ec.CurrentStatus() != Running {
			t.Errorf("expected Running, got %s", ec.CurrentStatus())
		}
	})

	t.Run("allows Running to each terminal status", func(t *testing.T) {
		for _, terminal := range []Status{Completed, Failed, Cancelled} {
			ec := NewExecutionContext("run-1")
			_ = ec.SetStatus(Running)
			if err := ec.SetStatus(terminal); err != nil {
				t.Errorf("expected Running->%s to be legal, got %v", terminal, err)
			}
		}
	})

	t.Run("rejects Idle to Completed directly", func(t *testing.T) {
		ec := NewExecutionContext("run-1")
		if err := ec.SetStatus(Completed); err == nil {
			t.Fatal("expected Idle->Completed to be rejected")
		}
	})

	t.Run("rejects transitions out of a terminal status", func(t *testing.T) {
		ec := NewExecutionContext("run-1")
		_ = ec.SetStatus(Running)
		_ = ec.SetStatus(Completed)
		if err := ec.SetStatus(Running); err == nil {
			t.Fatal("expected Completed->Running to be rejected")
		}
	})

	t.Run("setting the current status is a no-op, not an error", func(t *testing.T) {
		ec := NewExecutionContext("run-1")
		if err := ec.SetStatus(Idle); err != nil {
			t.Fatalf("expected re-setting the current status to succeed, got %v", err)
		}
	})
}

func TestExecutionContext_Variables(t *testing.T) {
	ec := NewExecutionContext("run-1")

	if _, ok := ec.GetVariable("missing"); ok {
		t.Error("expected missing variable to report false")
	}

	ec.SetVariable("x", 10)
	v, ok := ec.GetVariable("x")
	if !ok || v != 10 {
		t.Errorf("expected x=10, got %v, %v", v, ok)
	}

	ec.SetVariable("x", 20)
	v, _ = ec.GetVariable("x")
	if v != 20 {
		t.Errorf("expected overwrite to take effect, got %v", v)
	}
}

func TestTryGetVariable(t *testing.T) {
	ec := NewExecutionContext("run-1")
	ec.SetVariable("count", 5)
	ec.SetVariable("name", "alice")

	if v, ok := TryGetVariable[int](ec, "count"); !ok || v != 5 {
		t.Errorf("expected count=5, got %v, %v", v, ok)
	}
	if _, ok := TryGetVariable[string](ec, "count"); ok {
		t.Error("expected a type mismatch to report false")
	}
	if _, ok := TryGetVariable[int](ec, "missing"); ok {
		t.Error("expected a missing key to report false")
	}
	if v, ok := TryGetVariable[string](ec, "name"); !ok || v != "alice" {
		t.Errorf("expected name=alice, got %v, %v", v, ok)
	}
}
