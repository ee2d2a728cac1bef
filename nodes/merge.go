package nodes

import (
	"context"

	"github.com/flowgraph/workflowcore/graph"
)

// Merge joins two inputs, A and B, into a single output, Out. Execute
// forwards whatever inputData the runner delivered — from whichever
// branch actually ran — through Out, activated.
type Merge struct {
	*graph.BaseNode
}

// NewMerge builds a Merge node with input connectors A and B and a
// single output, Out.
func NewMerge() *Merge {
	a, b, o := in("a"), in("b"), out("out")
	n := &Merge{BaseNode: graph.NewBaseNode("", TypeMerge, []*graph.Connector{a, b}, []*graph.Connector{o})}
	n.BaseNode.SetOwner(n)
	return n
}

func (n *Merge) A() *graph.Connector   { return n.InputByName("a") }
func (n *Merge) B() *graph.Connector   { return n.InputByName("b") }
func (n *Merge) Out() *graph.Connector { return n.OutputByName("out") }

func (n *Merge) Execute(ctx context.Context, ec *graph.ExecutionContext, inputData any) graph.NodeResult {
	return graph.Activate(n.Out().ID(), inputData)
}
