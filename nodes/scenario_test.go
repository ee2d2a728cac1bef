package nodes

import (
	"context"
	"testing"

	"github.com/flowgraph/workflowcore/condition"
	"github.com/flowgraph/workflowcore/graph"
)

func mustConnect(t *testing.T, g *graph.Graph, src, tgt *graph.Connector) {
	t.Helper()
	if _, ok := g.AddConnection(src, tgt); !ok {
		t.Fatalf("failed to connect %s -> %s", src.Name(), tgt.Name())
	}
}

func TestScenario_LinearSuccess(t *testing.T) {
	start := NewStart()
	setX := NewSetVariable("x", 1)
	end := NewEnd()

	g := graph.NewGraph()
	g.AddNode(start)
	g.AddNode(setX)
	g.AddNode(end)
	mustConnect(t, g, start.Out(), setX.In())
	mustConnect(t, g, setX.Out(), end.In())

	if !g.Validate() {
		t.Fatal("expected the wired graph to validate")
	}

	runner := graph.NewWorkflowRunner()
	ec := graph.NewExecutionContext("")
	if err := runner.Run(context.Background(), start, ec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ec.CurrentStatus() != graph.Completed {
		t.Errorf("expected Completed, got %s", ec.CurrentStatus())
	}
	v, ok := ec.GetVariable("x")
	if !ok || v != 1 {
		t.Errorf("expected x=1, got %v, %v", v, ok)
	}
}

func TestScenario_ConditionalBranches(t *testing.T) {
	t.Run("value 10 activates the true branch", func(t *testing.T) {
		start := NewStart()
		setValue := NewSetVariable("myValue", 10)
		ifElse := NewIfElse("myValue", condition.RuleSet{
			Rules: []condition.Rule{condition.NumericRule{Op: condition.GreaterThan, CompareTo: 5}},
		})
		greater := NewSetVariable("result", "Greater")
		notGreater := NewSetVariable("result", "Not Greater")
		merge := NewMerge()
		end := NewEnd()

		g := graph.NewGraph()
		for _, n := range []graph.Node{start, setValue, ifElse, greater, notGreater, merge, end} {
			g.AddNode(n)
		}
		mustConnect(t, g, start.Out(), setValue.In())
		mustConnect(t, g, setValue.Out(), ifElse.In())
		mustConnect(t, g, ifElse.True(), greater.In())
		mustConnect(t, g, ifElse.False(), notGreater.In())
		mustConnect(t, g, greater.Out(), merge.A())
		mustConnect(t, g, notGreater.Out(), merge.B())
		mustConnect(t, g, merge.Out(), end.In())

		if !g.Validate() {
			t.Fatal("expected the wired graph to validate")
		}

		runner := graph.NewWorkflowRunner(graph.WithBranchMode(graph.RouteOnly))
		ec := graph.NewExecutionContext("")
		if err := runner.Run(context.Background(), start, ec); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		v, ok := ec.GetVariable("result")
		if !ok || v != "Greater" {
			t.Errorf("expected result=Greater, got %v, %v", v, ok)
		}
	})

	t.Run("value 3 activates the false branch", func(t *testing.T) {
		start := NewStart()
		setValue := NewSetVariable("myValue", 3)
		ifElse := NewIfElse("myValue", condition.RuleSet{
			Rules: []condition.Rule{condition.NumericRule{Op: condition.GreaterThan, CompareTo: 5}},
		})
		greater := NewSetVariable("result", "Greater")
		notGreater := NewSetVariable("result", "Not Greater")
		merge := NewMerge()
		end := NewEnd()

		g := graph.NewGraph()
		for _, n := range []graph.Node{start, setValue, ifElse, greater, notGreater, merge, end} {
			g.AddNode(n)
		}
		mustConnect(t, g, start.Out(), setValue.In())
		mustConnect(t, g, setValue.Out(), ifElse.In())
		mustConnect(t, g, ifElse.True(), greater.In())
		mustConnect(t, g, ifElse.False(), notGreater.In())
		mustConnect(t, g, greater.Out(), merge.A())
		mustConnect(t, g, notGreater.Out(), merge.B())
		mustConnect(t, g, merge.Out(), end.In())

		runner := graph.NewWorkflowRunner(graph.WithBranchMode(graph.RouteOnly))
		ec := graph.NewExecutionContext("")
		if err := runner.Run(context.Background(), start, ec); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		v, ok := ec.GetVariable("result")
		if !ok || v != "Not Greater" {
			t.Errorf("expected result=Not Greater, got %v, %v", v, ok)
		}
	})
}
