package graph

import "context"

// testNode is a minimal concrete Node used across this package's
// tests: one input (in), one output (out), and a scripted Execute
// result so tests can drive specific success/failure/activation
// outcomes without a real canonical node type.
type testNode struct {
	*BaseNode
	result func(inputData any) NodeResult
}

func newTestNode(kind string, result func(inputData any) NodeResult) *testNode {
	in := NewConnector("", "in", Input, "any", nil)
	out := NewConnector("", "out", Output, "any", nil)
	n := &testNode{
		BaseNode: NewBaseNode("", kind, []*Connector{in}, []*Connector{out}),
		result:   result,
	}
	n.BaseNode.SetOwner(n)
	return n
}

func (n *testNode) In() *Connector  { return n.InputByName("in") }
func (n *testNode) Out() *Connector { return n.OutputByName("out") }

func (n *testNode) Execute(ctx context.Context, ec *ExecutionContext, inputData any) NodeResult {
	if n.result != nil {
		return n.result(inputData)
	}
	return ActivateEmpty(n.Out().ID())
}

// connect wires src's sole output to tgt's sole input, failing the
// test immediately if the connection is rejected.
func connect(t interface{ Fatalf(string, ...any) }, src, tgt *testNode) *Connection {
	conn, err := newConnection(src.Out(), tgt.In())
	if err != nil {
		t.Fatalf("unexpected connection error: %v", err)
	}
	return conn
}
