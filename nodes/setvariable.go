package nodes

import (
	"context"

	"github.com/flowgraph/workflowcore/graph"
)

// SetVariable has one input, In, and one output, Out. Execute writes
// Value under VariableName in the run's ExecutionContext, then
// activates Out, forwarding Value downstream.
type SetVariable struct {
	*graph.BaseNode

	// VariableName is the context key Execute writes Value under.
	VariableName string
	// Value is the literal value stored under VariableName.
	Value any
}

// NewSetVariable builds a SetVariable node writing value under name.
func NewSetVariable(name string, value any) *SetVariable {
	i, o := in("in"), out("out")
	n := &SetVariable{
		BaseNode:     graph.NewBaseNode("", TypeSetVariable, []*graph.Connector{i}, []*graph.Connector{o}),
		VariableName: name,
		Value:        value,
	}
	n.BaseNode.SetOwner(n)
	return n
}

func (n *SetVariable) In() *graph.Connector  { return n.InputByName("in") }
func (n *SetVariable) Out() *graph.Connector { return n.OutputByName("out") }

func (n *SetVariable) Execute(ctx context.Context, ec *graph.ExecutionContext, inputData any) graph.NodeResult {
	if n.VariableName == "" {
		return graph.Fail(&graph.Error{Kind: graph.InvalidArgument, NodeID: n.ID(), Message: "SetVariable requires a non-empty variable name"})
	}
	ec.SetVariable(n.VariableName, n.Value)
	return graph.Activate(n.Out().ID(), n.Value)
}
