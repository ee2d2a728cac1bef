package graph

import (
	"time"

	"github.com/flowgraph/workflowcore/graph/emit"
)

// Option is a functional option for configuring a WorkflowRunner.
//
// Example:
//
//	runner := graph.NewWorkflowRunner(
//	    graph.WithEmitter(emit.NewLogEmitter(os.Stdout, true)),
//	    graph.WithMetrics(graph.NewMetricsRecorder(nil)),
//	    graph.WithBranchMode(graph.RouteOnly),
//	    graph.WithDefaultNodeTimeout(10*time.Second),
//	)
type Option func(*WorkflowRunner)

// WithEmitter sets the Emitter that receives lifecycle events.
//
// Default: emit.NewNullEmitter() (events are discarded).
func WithEmitter(e emit.Emitter) Option {
	return func(r *WorkflowRunner) {
		if e != nil {
			r.emitter = e
		}
	}
}

// WithExecutor overrides the NodeExecutor used to invoke each node.
// Use this to layer policies (timeouts, retries, instrumentation)
// around node invocation without changing node implementations.
//
// Default: NewDefaultExecutor().
func WithExecutor(e NodeExecutor) Option {
	return func(r *WorkflowRunner) {
		if e != nil {
			r.executor = e
		}
	}
}

// WithMetrics enables workflow-run and node-execution metrics
// collection.
//
// Default: nil (no metrics recorded).
func WithMetrics(m *MetricsRecorder) Option {
	return func(r *WorkflowRunner) {
		r.metrics = m
	}
}

// WithBranchMode resolves the branch-skip open question: ScheduleAll
// (default) executes every reachable node; RouteOnly skips a node
// whose inbound connection was not fed by the upstream node's
// activated output.
func WithBranchMode(mode BranchMode) Option {
	return func(r *WorkflowRunner) {
		r.branchMode = mode
	}
}

// WithDefaultNodeTimeout wraps each node's Execute call in a derived
// context.WithTimeout. A node without this option (the default) runs
// with whatever deadline the caller's ctx already carries.
func WithDefaultNodeTimeout(d time.Duration) Option {
	return func(r *WorkflowRunner) {
		r.defaultTimeout = d
	}
}

// WithOnObserverError installs a hook invoked when a custom Emitter
// panics during event delivery. The panic is always recovered; this
// hook is the only way to observe it. The run itself is never
// aborted by an observer panic.
func WithOnObserverError(fn func(ObserverError)) Option {
	return func(r *WorkflowRunner) {
		r.onObserverError = fn
	}
}
