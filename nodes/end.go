package nodes

import (
	"context"

	"github.com/flowgraph/workflowcore/graph"
)

// End has a single input, In, and no outputs. Execute always succeeds
// and activates nothing; it is a terminal node.
type End struct {
	*graph.BaseNode
}

// NewEnd builds an End node with a single input connector, In.
func NewEnd() *End {
	i := in("in")
	n := &End{BaseNode: graph.NewBaseNode("", TypeEnd, []*graph.Connector{i}, nil)}
	n.BaseNode.SetOwner(n)
	return n
}

// In returns the node's sole input connector.
func (n *End) In() *graph.Connector { return n.InputByName("in") }

func (n *End) Execute(ctx context.Context, ec *graph.ExecutionContext, inputData any) graph.NodeResult {
	return graph.Succeed()
}
