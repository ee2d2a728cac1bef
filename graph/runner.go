package graph

import (
	"context"
	"time"

	"github.com/flowgraph/workflowcore/graph/emit"
)

// BranchMode resolves the design-note open question on branch-skip
// semantics.
type BranchMode int

const (
	// ScheduleAll executes every reachable node in topological order,
	// including both branches of a conditional, regardless of which
	// output a node activated. This is the default and matches the
	// core algorithm described in the design notes.
	ScheduleAll BranchMode = iota

	// RouteOnly skips a node entirely — no NodeStarting/NodeCompleted
	// pair is emitted for it — when its sole inbound connection
	// originates from an output that was not the upstream node's
	// ActivatedOutput.
	RouteOnly
)

// ObserverError is surfaced to an optional OnObserverError hook when a
// custom Emitter panics. It never aborts the run.
type ObserverError struct {
	Event Event
	Panic any
}

// WorkflowRunner orchestrates a single workflow run: it topologically
// orders the reachable subgraph, invokes each node through a
// NodeExecutor, forwards payloads along activated outputs, and emits
// the seven lifecycle events.
type WorkflowRunner struct {
	emitter         emit.Emitter
	executor        NodeExecutor
	metrics         *MetricsRecorder
	branchMode      BranchMode
	defaultTimeout  time.Duration
	onObserverError func(ObserverError)
}

// NewWorkflowRunner builds a WorkflowRunner configured by opts. Absent
// an explicit WithEmitter/WithExecutor, it defaults to a NullEmitter
// and a DefaultExecutor.
func NewWorkflowRunner(opts ...Option) *WorkflowRunner {
	r := &WorkflowRunner{
		emitter:    emit.NewNullEmitter(),
		executor:   NewDefaultExecutor(),
		branchMode: ScheduleAll,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run drives the workflow starting at start, sharing ec across every
// node invocation. It returns the terminal Error, if any (nil on
// Completed or Cancelled).
func (r *WorkflowRunner) Run(ctx context.Context, start Node, ec *ExecutionContext) error {
	if r.metrics != nil && ec.CurrentStatus() == Idle {
		defer func() {
			switch s := ec.CurrentStatus(); s {
			case Completed, Failed, Cancelled:
				r.metrics.RecordRun(string(ec.ExecutionID()), s.String())
			}
		}()
	}
	if ctx.Err() != nil {
		if err := ec.SetStatus(Cancelled); err != nil {
			return err
		}
		return nil
	}

	if err := ec.SetStatus(Running); err != nil {
		return err
	}
	r.emit(Event{Kind: WorkflowStarted, RunID: ec.ExecutionID(), Status: ec.CurrentStatus()})

	order, err := TopologicalSort(start)
	if err != nil {
		_ = ec.SetStatus(Failed)
		r.emit(Event{Kind: WorkflowFailed, RunID: ec.ExecutionID(), Status: ec.CurrentStatus(), Err: err})
		return err
	}

	if ctx.Err() != nil {
		if err := ec.SetStatus(Cancelled); err != nil {
			return err
		}
		r.emit(Event{Kind: WorkflowCancelled, RunID: ec.ExecutionID(), Status: ec.CurrentStatus()})
		return nil
	}

	activated := map[NodeID]ConnectorID{}
	forwarded := map[NodeID]any{}

	for step, n := range order {
		if ctx.Err() != nil {
			if err := ec.SetStatus(Cancelled); err != nil {
				return err
			}
			r.emit(Event{Kind: WorkflowCancelled, RunID: ec.ExecutionID(), Status: ec.CurrentStatus()})
			return nil
		}

		if r.branchMode == RouteOnly && r.skip(n, activated) {
			continue
		}

		input := forwarded[n.ID()]

		r.emit(Event{Kind: NodeStarting, RunID: ec.ExecutionID(), NodeID: n.ID(), NodeType: n.Type(), Step: step, Status: ec.CurrentStatus()})

		nodeCtx := ctx
		var cancel context.CancelFunc
		if r.defaultTimeout > 0 {
			nodeCtx, cancel = context.WithTimeout(ctx, r.defaultTimeout)
		}
		nodeStart := time.Now()
		result := r.executor.Execute(nodeCtx, n, ec, input)
		if cancel != nil {
			cancel()
		}
		if r.metrics != nil {
			status := "success"
			if !result.Success() {
				status = "error"
			}
			r.metrics.RecordNodeExecution(string(ec.ExecutionID()), string(n.ID()), status, time.Since(nodeStart))
		}

		if ctx.Err() != nil {
			_ = ec.SetStatus(Cancelled)
			r.emit(Event{Kind: WorkflowCancelled, RunID: ec.ExecutionID(), Status: ec.CurrentStatus()})
			return nil
		}

		if !result.Success() {
			r.emit(Event{Kind: NodeFailed, RunID: ec.ExecutionID(), NodeID: n.ID(), NodeType: n.Type(), Step: step, Status: ec.CurrentStatus(), Err: result.Err()})
			_ = ec.SetStatus(Failed)
			r.emit(Event{Kind: WorkflowFailed, RunID: ec.ExecutionID(), NodeID: n.ID(), NodeType: n.Type(), Step: step, Status: ec.CurrentStatus(), Err: result.Err()})
			return result.Err()
		}

		r.emit(Event{Kind: NodeCompleted, RunID: ec.ExecutionID(), NodeID: n.ID(), NodeType: n.Type(), Step: step, Status: ec.CurrentStatus()})

		if out, ok := result.ActivatedOutput(); ok {
			activated[n.ID()] = out
			if data, hasData := result.OutputData(); hasData {
				if target := targetOf(n, out); target != nil {
					forwarded[target.ID()] = data
				}
			}
		}
	}

	_ = ec.SetStatus(Completed)
	r.emit(Event{Kind: WorkflowCompleted, RunID: ec.ExecutionID(), Status: ec.CurrentStatus()})
	return nil
}

// skip reports whether, under RouteOnly, n should be skipped because
// its single inbound connection was not fed by its source's activated
// output.
func (r *WorkflowRunner) skip(n Node, activated map[NodeID]ConnectorID) bool {
	for _, in := range n.Inputs() {
		conns := in.Connections()
		if len(conns) == 0 {
			continue
		}
		src := conns[0].Source()
		srcParent := src.Parent()
		if srcParent == nil {
			continue
		}
		chosen, ok := activated[srcParent.ID()]
		if !ok {
			continue
		}
		if chosen != src.ID() {
			return true
		}
	}
	return false
}

// targetOf finds the node fed by n's output connector identified by
// outputID, following its (possibly fanned-out) connections and
// returning the first connected target. Fan-out to multiple
// downstream nodes beyond the first is not meaningful here since the
// topological order already linearises a single schedule; a node with
// genuine multi-target fan-out is expected to be modelled with
// distinct output connectors per branch.
func targetOf(n Node, outputID ConnectorID) Node {
	for _, out := range n.Outputs() {
		if out.ID() != outputID {
			continue
		}
		for _, conn := range out.Connections() {
			if target := conn.Target().Parent(); target != nil {
				return target
			}
		}
	}
	return nil
}

// emit delivers evt to the configured Emitter, recovering from a
// panic and surfacing it through OnObserverError instead of letting it
// unwind the run.
func (r *WorkflowRunner) emit(evt Event) {
	defer func() {
		if p := recover(); p != nil && r.onObserverError != nil {
			r.onObserverError(ObserverError{Event: evt, Panic: p})
		}
	}()
	r.emitter.Emit(emit.Event{
		RunID:    string(evt.RunID),
		Kind:     evt.Kind.String(),
		Step:     evt.Step,
		NodeID:   string(evt.NodeID),
		NodeType: evt.NodeType,
		Status:   evt.Status.String(),
		Err:      evt.Err,
	})
}
