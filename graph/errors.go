// Package graph provides the core directed-graph workflow execution engine:
// the node/connector/connection model, traversal, the execution context,
// the node contract, the node executor, and the workflow runner.
package graph

import "fmt"

// Kind classifies an Error by the policy that produced it.
//
// The runner and model code use Kind rather than sentinel errors so
// callers can branch on category (errors.As) without depending on
// exact message text.
type Kind int

const (
	// InvalidArgument covers null/empty identifiers, null connectors or
	// nodes, incompatible types, same-direction connections, fan-in
	// violations, unregistered node types, and missing factories.
	InvalidArgument Kind = iota

	// Structural covers a detected cycle on connection add, or an
	// orphaned connection found during Validate.
	Structural

	// Resolution covers a property path that cannot be traversed:
	// a missing segment, a null intermediate value, or a JSON kind
	// mismatch.
	Resolution

	// Parse covers JSON parse failures in the InputJson node.
	Parse

	// NodeFailure covers any error returned (or panic recovered) from a
	// node's Execute call, normalized by the NodeExecutor.
	NodeFailure

	// Cancelled covers cooperative cancellation observed by the runner.
	Cancelled
)

// String returns a lowercase, hyphenated label for the kind.
func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid-argument"
	case Structural:
		return "structural"
	case Resolution:
		return "resolution"
	case Parse:
		return "parse"
	case NodeFailure:
		return "node-failure"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Error is the single structured error type returned by this package.
// It carries a Kind for programmatic branching, a human-readable
// Message, the NodeID responsible (empty if none), and an optional
// wrapped Cause.
type Error struct {
	Kind    Kind
	Message string
	NodeID  NodeID
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.NodeID != "" {
		return fmt.Sprintf("%s: node %s: %s", e.Kind, e.NodeID, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is/errors.As to
// see through an Error to whatever it wraps.
func (e *Error) Unwrap() error {
	return e.Cause
}
