package nodes

import (
	"context"
	"errors"
	"testing"

	"github.com/flowgraph/workflowcore/condition"
	"github.com/flowgraph/workflowcore/graph"
)

func TestInputJson_Execute_ParsesValidSource(t *testing.T) {
	n := NewInputJSON(`{"a":1}`)
	ec := graph.NewExecutionContext("")

	r := n.Execute(context.Background(), ec, nil)
	if !r.Success() {
		t.Fatalf("unexpected failure: %v", r.Err())
	}
	data, hasData := r.OutputData()
	if !hasData {
		t.Fatal("expected parsed data to be forwarded")
	}
	if _, ok := data.(condition.JSONValue); !ok {
		t.Errorf("expected a condition.JSONValue, got %T", data)
	}
}

func TestInputJson_Execute_FailsOnBlankSource(t *testing.T) {
	for _, src := range []string{"", "   ", "\n\t"} {
		n := NewInputJSON(src)
		ec := graph.NewExecutionContext("")
		r := n.Execute(context.Background(), ec, nil)
		if r.Success() {
			t.Fatalf("expected blank source %q to fail", src)
		}
		var gerr *graph.Error
		if !errors.As(r.Err(), &gerr) || gerr.Kind != graph.InvalidArgument {
			t.Errorf("expected an InvalidArgument error for %q, got %v", src, r.Err())
		}
	}
}

func TestInputJson_Execute_FailsOnInvalidSyntax(t *testing.T) {
	n := NewInputJSON(`{not json`)
	ec := graph.NewExecutionContext("")
	r := n.Execute(context.Background(), ec, nil)
	if r.Success() {
		t.Fatal("expected syntactically invalid JSON to fail")
	}
	var gerr *graph.Error
	if !errors.As(r.Err(), &gerr) || gerr.Kind != graph.Parse {
		t.Errorf("expected a Parse-kind error, got %v", r.Err())
	}
}
