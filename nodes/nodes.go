// Package nodes provides the canonical node set needed to exercise the
// workflow engine: Start, End, Merge, SetVariable, IfElse, InputJson,
// and Output. Each embeds *graph.BaseNode for identity/port bookkeeping
// and supplies its own Execute.
package nodes

import "github.com/flowgraph/workflowcore/graph"

// Any is the data type tag used by every canonical-node connector.
// The canonical set carries arbitrary, type-erased payloads; a richer
// domain built on this engine would register its own DataType tokens
// and subtypes via graph.RegisterSubtype.
const Any graph.DataType = "any"

const (
	TypeStart       = "Start"
	TypeEnd         = "End"
	TypeMerge       = "Merge"
	TypeSetVariable = "SetVariable"
	TypeIfElse      = "IfElse"
	TypeInputJSON   = "InputJson"
	TypeOutput      = "Output"
)

// in and out build bare, unowned connectors. Every constructor below
// follows the same two-step pattern: build the connectors, build the
// BaseNode from them, allocate the enclosing node value, then call
// BaseNode.SetOwner(n) once n exists so each connector's Parent()
// resolves to the right node.
func in(name string) *graph.Connector {
	return graph.NewConnector("", name, graph.Input, Any, nil)
}

func out(name string) *graph.Connector {
	return graph.NewConnector("", name, graph.Output, Any, nil)
}
