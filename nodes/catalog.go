package nodes

import (
	"github.com/flowgraph/workflowcore/catalog"
	"github.com/flowgraph/workflowcore/condition"
	"github.com/flowgraph/workflowcore/graph"
)

// NewDefaultCatalog builds a catalog.Catalog with the seven canonical
// node types pre-registered under their Type token. Factories produce
// nodes with zero-value configuration (empty variable names, empty
// rule sets); callers reconfigure the returned graph.Node's exported
// fields before wiring it into a Graph.
func NewDefaultCatalog() *catalog.Catalog {
	c := catalog.New()
	register := func(meta catalog.Metadata, factory func() graph.Node) {
		if err := c.Register(meta, factory); err != nil {
			panic(err)
		}
	}

	register(catalog.Metadata{Type: TypeStart, DisplayName: "Start", Category: "control", Description: "Entry point; activates its single output."},
		func() graph.Node { return NewStart() })
	register(catalog.Metadata{Type: TypeEnd, DisplayName: "End", Category: "control", Description: "Terminal node; succeeds without activation."},
		func() graph.Node { return NewEnd() })
	register(catalog.Metadata{Type: TypeMerge, DisplayName: "Merge", Category: "control", Description: "Joins two inputs and forwards whichever ran."},
		func() graph.Node { return NewMerge() })
	register(catalog.Metadata{Type: TypeSetVariable, DisplayName: "Set Variable", Category: "data", Description: "Writes a literal value into the execution context."},
		func() graph.Node { return NewSetVariable("", nil) })
	register(catalog.Metadata{Type: TypeIfElse, DisplayName: "If/Else", Category: "control", Description: "Branches on a condition evaluated against a resolved value."},
		func() graph.Node { return NewIfElse("", condition.RuleSet{}) })
	register(catalog.Metadata{Type: TypeInputJSON, DisplayName: "Input JSON", Category: "data", Description: "Parses a configured JSON source into a structured value."},
		func() graph.Node { return NewInputJSON("") })
	register(catalog.Metadata{Type: TypeOutput, DisplayName: "Output", Category: "data", Description: "Writes received data into the execution context by name."},
		func() graph.Node { return NewOutput("") })

	return c
}
