package emit

import (
	"context"
	"testing"
)

func TestNullEmitter_NoOp(t *testing.T) {
	t.Run("emits events without error", func(t *testing.T) {
		emitter := NewNullEmitter()
		events := []Event{
			{RunID: "run-001", Step: 0, NodeID: "node1", Kind: "node_starting"},
			{RunID: "run-001", Step: 0, NodeID: "node1", Kind: "node_completed"},
			{RunID: "run-001", Step: 1, NodeID: "node2", Kind: "node_failed", Meta: map[string]interface{}{"error": "test"}},
		}
		for _, event := range events {
			emitter.Emit(event)
		}
	})

	t.Run("emit batch and flush are no-ops", func(t *testing.T) {
		emitter := NewNullEmitter()
		if err := emitter.EmitBatch(context.Background(), []Event{{RunID: "run-001"}}); err != nil {
			t.Fatalf("EmitBatch returned error: %v", err)
		}
		if err := emitter.Flush(context.Background()); err != nil {
			t.Fatalf("Flush returned error: %v", err)
		}
	})
}

func TestNullEmitter_InterfaceContract(t *testing.T) {
	var _ Emitter = NewNullEmitter()
}
