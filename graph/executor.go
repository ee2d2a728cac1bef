package graph

import (
	"context"
	"fmt"
)

// NodeExecutor is a thin seam wrapping node invocation: the insertion
// point for cross-cutting policies (timeouts, retries, instrumentation)
// layered around Execute without touching node implementations.
type NodeExecutor interface {
	Execute(ctx context.Context, n Node, ec *ExecutionContext, inputData any) NodeResult
}

// DefaultExecutor invokes Node.Execute directly, recovering from
// panics and normalizing them into a failed NodeResult carrying a
// NodeFailure-kind Error, and letting a cancellation observed through
// ctx propagate unchanged to the runner's cancellation path.
type DefaultExecutor struct{}

// NewDefaultExecutor returns the executor used when no Option
// overrides it.
func NewDefaultExecutor() *DefaultExecutor {
	return &DefaultExecutor{}
}

// Execute calls n.Execute, converting a panic raised inside it into a
// failed NodeResult rather than letting it unwind the runner.
func (DefaultExecutor) Execute(ctx context.Context, n Node, ec *ExecutionContext, inputData any) (result NodeResult) {
	defer func() {
		if r := recover(); r != nil {
			result = Fail(&Error{
				Kind:    NodeFailure,
				NodeID:  n.ID(),
				Message: fmt.Sprintf("node panicked: %v", r),
			})
		}
	}()
	return n.Execute(ctx, ec, inputData)
}
