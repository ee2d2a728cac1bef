// Package emit provides event emission and observability for workflow
// execution: a backend-agnostic Event shape plus pluggable Emitter
// implementations (logging, in-memory history, OpenTelemetry tracing).
package emit

// Event represents one of the seven workflow lifecycle notifications
// (workflow_started, node_starting, node_completed, node_failed,
// workflow_failed, workflow_completed, workflow_cancelled) emitted by
// a WorkflowRunner.
//
// Event is deliberately decoupled from the graph package's own Event
// type: emit must not import graph, so the runner translates its
// internal graph.Event into this shape at the point of emission.
type Event struct {
	// RunID identifies the workflow execution that emitted this event.
	RunID string

	// Kind names which lifecycle notification this is, e.g.
	// "node_starting" or "workflow_failed".
	Kind string

	// Step is the node's 0-indexed position in this run's visit order.
	// Zero for workflow-scoped events, except a workflow_failed caused
	// by a node failure, which carries the failing node's Step.
	Step int

	// NodeID identifies which node emitted this event. Empty for
	// workflow-scoped events, except a workflow_failed caused by a node
	// failure, which names the failing node.
	NodeID string

	// NodeType names the node's registered type token. Empty for
	// workflow-scoped events, except a workflow_failed caused by a node
	// failure.
	NodeType string

	// Status is the ExecutionContext's status at the time of emission.
	Status string

	// Err carries the failure for node_failed/workflow_failed events;
	// nil otherwise.
	Err error

	// Meta carries additional structured data specific to this event.
	Meta map[string]interface{}
}
