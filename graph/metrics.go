package graph

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRecorder provides Prometheus-compatible metrics collection
// for workflow execution monitoring.
//
// Metrics exposed (namespaced "workflowcore_"):
//
//  1. runs_total (counter): Workflow runs by terminal status
//     (completed/failed/cancelled). Labels: status.
//  2. node_executions_total (counter): Node executions by outcome.
//     Labels: node_id, status (success/error).
//  3. node_latency_ms (histogram): Node execution duration.
//     Labels: node_id, status.
type MetricsRecorder struct {
	runs          *prometheus.CounterVec
	nodeExecs     *prometheus.CounterVec
	nodeLatencyMs *prometheus.HistogramVec
}

// NewMetricsRecorder creates and registers workflow execution metrics
// with the provided Prometheus registry. A nil registry uses
// prometheus.DefaultRegisterer.
func NewMetricsRecorder(registry prometheus.Registerer) *MetricsRecorder {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &MetricsRecorder{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workflowcore",
			Name:      "runs_total",
			Help:      "Workflow runs by terminal status",
		}, []string{"status"}),
		nodeExecs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workflowcore",
			Name:      "node_executions_total",
			Help:      "Node executions by outcome",
		}, []string{"node_id", "status"}),
		nodeLatencyMs: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "workflowcore",
			Name:      "node_latency_ms",
			Help:      "Node execution duration in milliseconds",
			Buckets:   []float64{1, 5, 10, 50, 100, 500, 1000, 5000, 10000},
		}, []string{"node_id", "status"}),
	}
}

// RecordRun increments the run counter for runID's terminal status
// ("completed", "failed", or "cancelled").
func (m *MetricsRecorder) RecordRun(runID, status string) {
	m.runs.WithLabelValues(status).Inc()
}

// RecordNodeExecution increments the node-execution counter and
// observes latency for a single Execute call.
func (m *MetricsRecorder) RecordNodeExecution(runID, nodeID, status string, latency time.Duration) {
	m.nodeExecs.WithLabelValues(nodeID, status).Inc()
	m.nodeLatencyMs.WithLabelValues(nodeID, status).Observe(float64(latency.Milliseconds()))
}
