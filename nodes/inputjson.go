package nodes

import (
	"context"
	"strings"

	"github.com/flowgraph/workflowcore/condition"
	"github.com/flowgraph/workflowcore/graph"
)

// InputJson has no inputs and a single output, Out. Execute parses
// Source into a structured JSON value and activates Out with it.
type InputJson struct {
	*graph.BaseNode

	// Source is the raw JSON text Execute parses.
	Source string
}

// NewInputJSON builds an InputJson node parsing source.
func NewInputJSON(source string) *InputJson {
	o := out("out")
	n := &InputJson{
		BaseNode: graph.NewBaseNode("", TypeInputJSON, nil, []*graph.Connector{o}),
		Source:   source,
	}
	n.BaseNode.SetOwner(n)
	return n
}

func (n *InputJson) Out() *graph.Connector { return n.OutputByName("out") }

func (n *InputJson) Execute(ctx context.Context, ec *graph.ExecutionContext, inputData any) graph.NodeResult {
	if strings.TrimSpace(n.Source) == "" {
		return graph.Fail(&graph.Error{Kind: graph.InvalidArgument, NodeID: n.ID(), Message: "InputJson source must not be null, empty, or whitespace"})
	}
	value, err := condition.ParseJSON(n.Source)
	if err != nil {
		return graph.Fail(err)
	}
	return graph.Activate(n.Out().ID(), value)
}
