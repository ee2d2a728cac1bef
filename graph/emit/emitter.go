package emit

import "context"

// Emitter receives and processes observability events from workflow
// execution.
//
// Emitters enable pluggable observability backends:
// - Logging: stdout, files, syslog.
// - Distributed tracing: OpenTelemetry, Jaeger, Zipkin.
// - In-memory history for tests and dashboards.
//
// Implementations should be non-blocking and must not panic; Emit
// errors are logged internally rather than propagated, since the
// runner treats a recovered Emitter panic as a side-band
// ObserverError rather than letting it unwind the run.
type Emitter interface {
	// Emit sends a single observability event to the configured
	// backend. Emit should not panic.
	Emit(event Event)

	// EmitBatch sends multiple events in a single operation. Events
	// must be processed in order. Returns an error only on
	// catastrophic backend failures; individual event failures should
	// be handled internally.
	EmitBatch(ctx context.Context, events []Event) error

	// Flush ensures all buffered events are sent to the backend. Safe
	// to call multiple times.
	Flush(ctx context.Context) error
}
