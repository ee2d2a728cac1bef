package nodes

import (
	"context"

	"github.com/flowgraph/workflowcore/graph"
)

// Output has one input, In, and no outputs. Execute writes the
// received inputData under OutputName in the run's ExecutionContext
// and completes without activating anything.
type Output struct {
	*graph.BaseNode

	// OutputName is the context key Execute writes inputData under.
	OutputName string
}

// NewOutput builds an Output node writing received data under name.
func NewOutput(name string) *Output {
	i := in("in")
	n := &Output{
		BaseNode:   graph.NewBaseNode("", TypeOutput, []*graph.Connector{i}, nil),
		OutputName: name,
	}
	n.BaseNode.SetOwner(n)
	return n
}

func (n *Output) In() *graph.Connector { return n.InputByName("in") }

func (n *Output) Execute(ctx context.Context, ec *graph.ExecutionContext, inputData any) graph.NodeResult {
	if n.OutputName == "" {
		return graph.Fail(&graph.Error{Kind: graph.InvalidArgument, NodeID: n.ID(), Message: "Output requires a non-empty output name"})
	}
	ec.SetVariable(n.OutputName, inputData)
	return graph.Succeed()
}
