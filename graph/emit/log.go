package emit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LogEmitter implements Emitter by writing structured log output to a
// writer.
//
// Supports two output modes:
// - Text mode (default): human-readable key=value pairs.
// - JSON mode: machine-readable JSON, one event per line.
//
// Example text output:
//
//	[node_starting] runID=run-001 step=0 nodeID=nodeA
//
// Example JSON output:
//
//	{"runID":"run-001","step":0,"nodeID":"nodeA","kind":"node_starting"}
type LogEmitter struct {
	writer   io.Writer
	jsonMode bool
}

// NewLogEmitter creates a new LogEmitter.
func NewLogEmitter(writer io.Writer, jsonMode bool) *LogEmitter {
	if writer == nil {
		writer = os.Stdout
	}
	return &LogEmitter{writer: writer, jsonMode: jsonMode}
}

// Emit writes an event to the configured writer.
func (l *LogEmitter) Emit(event Event) {
	if l.jsonMode {
		l.emitJSON(event)
	} else {
		l.emitText(event)
	}
}

func (l *LogEmitter) emitJSON(event Event) {
	errMsg := ""
	if event.Err != nil {
		errMsg = event.Err.Error()
	}
	data, err := json.Marshal(struct {
		RunID    string                 `json:"runID"`
		Step     int                    `json:"step"`
		NodeID   string                 `json:"nodeID"`
		NodeType string                 `json:"nodeType,omitempty"`
		Kind     string                 `json:"kind"`
		Status   string                 `json:"status,omitempty"`
		Err      string                 `json:"error,omitempty"`
		Meta     map[string]interface{} `json:"meta,omitempty"`
	}{
		RunID:    event.RunID,
		Step:     event.Step,
		NodeID:   event.NodeID,
		NodeType: event.NodeType,
		Kind:     event.Kind,
		Status:   event.Status,
		Err:      errMsg,
		Meta:     event.Meta,
	})
	if err != nil {
		_, _ = fmt.Fprintf(l.writer, "{\"error\":\"failed to marshal event: %v\"}\n", err)
		return
	}
	_, _ = fmt.Fprintf(l.writer, "%s\n", data)
}

func (l *LogEmitter) emitText(event Event) {
	_, _ = fmt.Fprintf(l.writer, "[%s] runID=%s step=%d nodeID=%s", event.Kind, event.RunID, event.Step, event.NodeID)
	if event.Err != nil {
		_, _ = fmt.Fprintf(l.writer, " error=%q", event.Err.Error())
	}
	if len(event.Meta) > 0 {
		if metaJSON, err := json.Marshal(event.Meta); err == nil {
			_, _ = fmt.Fprintf(l.writer, " meta=%s", metaJSON)
		} else {
			_, _ = fmt.Fprintf(l.writer, " meta=%v", event.Meta)
		}
	}
	_, _ = fmt.Fprint(l.writer, "\n")
}

// EmitBatch writes events in order, reusing the same text/JSON
// formatting as Emit.
func (l *LogEmitter) EmitBatch(_ context.Context, events []Event) error {
	for _, event := range events {
		l.Emit(event)
	}
	return nil
}

// Flush is a no-op: LogEmitter writes directly without buffering.
func (l *LogEmitter) Flush(_ context.Context) error {
	return nil
}
