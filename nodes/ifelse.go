package nodes

import (
	"context"

	"github.com/flowgraph/workflowcore/condition"
	"github.com/flowgraph/workflowcore/graph"
)

// IfElse has one input, In, and two outputs, True and False. Execute
// resolves the value to test — context[InputVariableName] when set,
// otherwise the node's received inputData — evaluates Rules under its
// configured combinator against that value, and activates True or
// False accordingly. Each rule resolves its own property path against
// the shared value (see condition.NumericRule/StringRule), so a single
// RuleSet can combine conditions over different paths, e.g.
// "a.x > 5 AND b.y == "z"".
type IfElse struct {
	*graph.BaseNode

	// InputVariableName, when non-empty, names a context variable to
	// test instead of the node's inputData.
	InputVariableName string
	// Rules is the condition list evaluated against the resolved value.
	Rules condition.RuleSet
}

// NewIfElse builds an IfElse node evaluating rules against the value
// named by inputVariableName (or inputData, when empty).
func NewIfElse(inputVariableName string, rules condition.RuleSet) *IfElse {
	i, t, f := in("in"), out("true"), out("false")
	n := &IfElse{
		BaseNode:          graph.NewBaseNode("", TypeIfElse, []*graph.Connector{i}, []*graph.Connector{t, f}),
		InputVariableName: inputVariableName,
		Rules:             rules,
	}
	n.BaseNode.SetOwner(n)
	return n
}

func (n *IfElse) In() *graph.Connector    { return n.InputByName("in") }
func (n *IfElse) True() *graph.Connector  { return n.OutputByName("true") }
func (n *IfElse) False() *graph.Connector { return n.OutputByName("false") }

func (n *IfElse) Execute(ctx context.Context, ec *graph.ExecutionContext, inputData any) graph.NodeResult {
	target := inputData
	if n.InputVariableName != "" {
		v, ok := ec.GetVariable(n.InputVariableName)
		if !ok {
			return graph.Fail(&graph.Error{Kind: graph.Resolution, NodeID: n.ID(), Message: "variable not found: " + n.InputVariableName})
		}
		target = v
	}

	if n.Rules.Evaluate(target) {
		return graph.ActivateEmpty(n.True().ID())
	}
	return graph.ActivateEmpty(n.False().ID())
}
