package graph

import "github.com/google/uuid"

// NodeID identifies a Node within a Graph. Two nodes in the same Graph
// never share an ID; the zero value is never valid.
type NodeID string

// ConnectorID identifies a Connector within its owning Node.
type ConnectorID string

// ConnectionID identifies a Connection within a Graph.
type ConnectionID string

// RunID identifies a single WorkflowRunner.Run invocation.
type RunID string

// NewNodeID returns a freshly generated, random NodeID.
func NewNodeID() NodeID {
	return NodeID(uuid.NewString())
}

// NewConnectorID returns a freshly generated, random ConnectorID.
func NewConnectorID() ConnectorID {
	return ConnectorID(uuid.NewString())
}

// NewConnectionID returns a freshly generated, random ConnectionID.
func NewConnectionID() ConnectionID {
	return ConnectionID(uuid.NewString())
}

// NewRunID returns a freshly generated, random RunID.
func NewRunID() RunID {
	return RunID(uuid.NewString())
}
