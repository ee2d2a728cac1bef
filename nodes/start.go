package nodes

import (
	"context"

	"github.com/flowgraph/workflowcore/graph"
)

// Start has no inputs and a single output, Out. Execute always
// succeeds and activates Out with no payload; it is the sole entry
// point a WorkflowRunner walks from.
type Start struct {
	*graph.BaseNode
}

// NewStart builds a Start node with a single output connector, Out.
func NewStart() *Start {
	o := out("out")
	n := &Start{BaseNode: graph.NewBaseNode("", TypeStart, nil, []*graph.Connector{o})}
	n.BaseNode.SetOwner(n)
	return n
}

// Out returns the node's sole output connector.
func (n *Start) Out() *graph.Connector { return n.OutputByName("out") }

func (n *Start) Execute(ctx context.Context, ec *graph.ExecutionContext, inputData any) graph.NodeResult {
	return graph.ActivateEmpty(n.Out().ID())
}
