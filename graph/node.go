package graph

import "context"

// Node is the execution contract every graph participant implements:
// identity and port accessors from BaseNode, plus Execute, the single
// operation the runner invokes. Canonical node types (package nodes)
// embed *BaseNode and supply their own Execute.
type Node interface {
	ID() NodeID
	Type() string
	Inputs() []*Connector
	Outputs() []*Connector
	Position() (x, y float64)
	SetPosition(x, y float64)
	Validate() error
	Execute(ctx context.Context, ec *ExecutionContext, inputData any) NodeResult
}

// BaseNode provides the identity, port bookkeeping, and coordinate
// round-trip shared by every concrete node type. It does not
// implement Execute; embedders supply their own.
type BaseNode struct {
	id      NodeID
	kind    string
	inputs  []*Connector
	outputs []*Connector
	x, y    float64
}

// NewBaseNode builds a BaseNode of the given type token from
// already-constructed input/output connectors; an empty id is replaced
// with a generated NodeID. It does not set the connectors' parents:
// see the nodes package for the two-step pattern (build connectors
// with a nil parent, build the BaseNode, then call SetOwner once the
// enclosing node exists).
func NewBaseNode(id NodeID, kind string, inputs, outputs []*Connector) *BaseNode {
	if id == "" {
		id = NewNodeID()
	}
	return &BaseNode{id: id, kind: kind, inputs: inputs, outputs: outputs}
}

// SetOwner fixes every input and output connector's parent to owner.
// Concrete node constructors call this exactly once, immediately after
// allocating the enclosing struct, since a connector cannot name its
// parent node until that node exists.
func (n *BaseNode) SetOwner(owner Node) {
	for _, c := range n.inputs {
		c.setParent(owner)
	}
	for _, c := range n.outputs {
		c.setParent(owner)
	}
}

func (n *BaseNode) ID() NodeID   { return n.id }
func (n *BaseNode) Type() string { return n.kind }

func (n *BaseNode) Inputs() []*Connector {
	out := make([]*Connector, len(n.inputs))
	copy(out, n.inputs)
	return out
}

func (n *BaseNode) Outputs() []*Connector {
	out := make([]*Connector, len(n.outputs))
	copy(out, n.outputs)
	return out
}

func (n *BaseNode) Position() (float64, float64) { return n.x, n.y }

func (n *BaseNode) SetPosition(x, y float64) {
	n.x, n.y = x, y
}

// OutputByName finds an output connector by its declared name, or nil.
func (n *BaseNode) OutputByName(name string) *Connector {
	for _, c := range n.outputs {
		if c.name == name {
			return c
		}
	}
	return nil
}

// InputByName finds an input connector by its declared name, or nil.
func (n *BaseNode) InputByName(name string) *Connector {
	for _, c := range n.inputs {
		if c.name == name {
			return c
		}
	}
	return nil
}

// Validate checks the node's own structural invariants: a non-empty
// id and connectors that actually belong to n. Concrete node types
// wrap this with their own port-count checks.
func (n *BaseNode) Validate() error {
	if n.id == "" {
		return &Error{Kind: InvalidArgument, Message: "node id must not be empty"}
	}
	for _, c := range n.inputs {
		if c.parent != nil && c.parent.ID() != n.id {
			return &Error{Kind: InvalidArgument, NodeID: n.id, Message: "input connector owned by a different node"}
		}
	}
	for _, c := range n.outputs {
		if c.parent != nil && c.parent.ID() != n.id {
			return &Error{Kind: InvalidArgument, NodeID: n.id, Message: "output connector owned by a different node"}
		}
	}
	return nil
}

// NodeResult is the immutable value returned from Execute. It is
// constructed exclusively through Succeed, Activate, ActivateEmpty,
// and Fail so the spec's construction invariants (failure carries no
// activation or payload; a payload requires an activated output)
// always hold.
type NodeResult struct {
	success         bool
	err             error
	activatedOutput ConnectorID
	hasActivation   bool
	outputData      any
	hasOutputData   bool
}

// Succeed reports a successful node that activates no output (a
// terminal node such as End).
func Succeed() NodeResult {
	return NodeResult{success: true}
}

// Activate reports a successful node that forwards data along output.
// A nil data argument is forwarded as-is: nil is a legitimate payload,
// distinct from "no payload" (see ActivateEmpty).
func Activate(output ConnectorID, data any) NodeResult {
	return NodeResult{
		success:         true,
		activatedOutput: output,
		hasActivation:   true,
		outputData:      data,
		hasOutputData:   true,
	}
}

// ActivateEmpty reports a successful node that activates output but
// forwards no payload.
func ActivateEmpty(output ConnectorID) NodeResult {
	return NodeResult{success: true, activatedOutput: output, hasActivation: true}
}

// Fail reports a failed node. err must not be nil.
func Fail(err error) NodeResult {
	return NodeResult{success: false, err: err}
}

func (r NodeResult) Success() bool { return r.success }
func (r NodeResult) Err() error    { return r.err }

// ActivatedOutput returns the chosen output connector id and whether
// one was set at all.
func (r NodeResult) ActivatedOutput() (ConnectorID, bool) {
	return r.activatedOutput, r.hasActivation
}

// OutputData returns the forwarded payload and whether one is present.
func (r NodeResult) OutputData() (any, bool) {
	return r.outputData, r.hasOutputData
}
