package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/flowgraph/workflowcore/graph"
)

type fakeNode struct {
	id graph.NodeID
}

func (f *fakeNode) ID() graph.NodeID                    { return f.id }
func (f *fakeNode) Type() string                        { return "fake" }
func (f *fakeNode) Inputs() []*graph.Connector          { return nil }
func (f *fakeNode) Outputs() []*graph.Connector         { return nil }
func (f *fakeNode) Position() (float64, float64)        { return 0, 0 }
func (f *fakeNode) SetPosition(x, y float64)            {}
func (f *fakeNode) Validate() error                     { return nil }
func (f *fakeNode) Execute(ctx context.Context, ec *graph.ExecutionContext, inputData any) graph.NodeResult {
	return graph.Succeed()
}

func TestCatalog_RegisterAndCreateInstance(t *testing.T) {
	c := New()
	meta := Metadata{Type: "Fake", DisplayName: "Fake Node", Category: "test"}

	if err := c.Register(meta, func() graph.Node { return &fakeNode{id: "f1"} }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("creates by exact type", func(t *testing.T) {
		n, err := c.CreateInstance("Fake")
		if err != nil || n == nil {
			t.Fatalf("unexpected result: %v, %v", n, err)
		}
	})

	t.Run("creates by case-insensitive display name", func(t *testing.T) {
		n, err := c.CreateInstance("fake node")
		if err != nil || n == nil {
			t.Fatalf("unexpected result: %v, %v", n, err)
		}
	})

	t.Run("fails for an unregistered token", func(t *testing.T) {
		_, err := c.CreateInstance("Unknown")
		if err == nil {
			t.Fatal("expected an error")
		}
		var gerr *graph.Error
		if !errors.As(err, &gerr) || gerr.Kind != graph.InvalidArgument {
			t.Errorf("expected an InvalidArgument error, got %v", err)
		}
	})
}

func TestCatalog_Register_Validation(t *testing.T) {
	t.Run("rejects empty type", func(t *testing.T) {
		c := New()
		if err := c.Register(Metadata{}, func() graph.Node { return &fakeNode{} }); err == nil {
			t.Fatal("expected an error for empty Type")
		}
	})

	t.Run("rejects nil factory", func(t *testing.T) {
		c := New()
		if err := c.Register(Metadata{Type: "X"}, nil); err == nil {
			t.Fatal("expected an error for a nil factory")
		}
	})

	t.Run("rejects a duplicate type", func(t *testing.T) {
		c := New()
		meta := Metadata{Type: "X"}
		_ = c.Register(meta, func() graph.Node { return &fakeNode{} })
		if err := c.Register(meta, func() graph.Node { return &fakeNode{} }); err == nil {
			t.Fatal("expected an error for a duplicate Type")
		}
	})
}

func TestCatalog_List(t *testing.T) {
	c := New()
	_ = c.Register(Metadata{Type: "A"}, func() graph.Node { return &fakeNode{} })
	_ = c.Register(Metadata{Type: "B"}, func() graph.Node { return &fakeNode{} })

	list := c.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}
}
