package graph

// Graph is the aggregate of nodes and connections, keyed by id. It
// enforces the structural invariants: every connection's endpoints
// belong to nodes in the graph, node removal cascades to touching
// connections, and connection addition is rejected if it would create
// a cycle.
type Graph struct {
	nodes       map[NodeID]Node
	connections map[ConnectionID]*Connection
	strict      bool
}

// NewGraph builds an empty Graph using the default, permissive
// (bidirectional) type-compatibility rule.
func NewGraph() *Graph {
	return &Graph{
		nodes:       make(map[NodeID]Node),
		connections: make(map[ConnectionID]*Connection),
	}
}

// StrictTypes switches g to require exact DataType equality on new
// connections, per the open question on type-compatibility symmetry.
// It has no effect on connections already present.
func (g *Graph) StrictTypes() {
	g.strict = true
}

// AddNode adds n to the graph. Returns false iff n is already present
// (by id).
func (g *Graph) AddNode(n Node) bool {
	if n == nil {
		return false
	}
	if _, exists := g.nodes[n.ID()]; exists {
		return false
	}
	g.nodes[n.ID()] = n
	return true
}

// RemoveNode removes n and every connection that touches one of its
// connectors. Returns false if n is not in the graph.
func (g *Graph) RemoveNode(n Node) bool {
	if n == nil {
		return false
	}
	if _, exists := g.nodes[n.ID()]; !exists {
		return false
	}
	for id, conn := range g.connections {
		if conn.source.Parent() == nil || conn.target.Parent() == nil {
			continue
		}
		if conn.source.Parent().ID() == n.ID() || conn.target.Parent().ID() == n.ID() {
			conn.detach()
			delete(g.connections, id)
		}
	}
	delete(g.nodes, n.ID())
	return true
}

// GetNodeByID returns the node with the given id, if present.
func (g *Graph) GetNodeByID(id NodeID) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns a snapshot slice of every node in the graph. Order is
// unspecified.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	return out
}

// Connections returns a snapshot slice of every connection in the
// graph. Order is unspecified.
func (g *Graph) Connections() []*Connection {
	out := make([]*Connection, 0, len(g.connections))
	for _, c := range g.connections {
		out = append(out, c)
	}
	return out
}

func (g *Graph) assignable() AssignableFunc {
	if g.strict {
		return StrictAssignable
	}
	return DefaultAssignable
}

// AddConnection creates a Connection from src to tgt and returns it.
// It returns (nil, false) without mutating the graph when: either
// node is absent from g, the endpoints are direction- or
// type-incompatible, tgt already has an input connection, or the
// connection would create a cycle.
func (g *Graph) AddConnection(src, tgt *Connector) (*Connection, bool) {
	if src == nil || tgt == nil || src.Parent() == nil || tgt.Parent() == nil {
		return nil, false
	}
	if _, ok := g.nodes[src.Parent().ID()]; !ok {
		return nil, false
	}
	if _, ok := g.nodes[tgt.Parent().ID()]; !ok {
		return nil, false
	}

	prevAssignable := src.assignable
	src.assignable, tgt.assignable = g.assignable(), g.assignable()
	defer func() { src.assignable = prevAssignable }()

	if !src.validateConnection(tgt) || !tgt.validateConnection(src) {
		return nil, false
	}
	if g.wouldCreateCycle(src.Parent(), tgt.Parent()) {
		return nil, false
	}

	conn, err := newConnection(src, tgt)
	if err != nil {
		return nil, false
	}
	g.connections[conn.id] = conn
	return conn, true
}

// RemoveConnection detaches c from both endpoints and erases it.
// Returns false if c is nil or not present.
func (g *Graph) RemoveConnection(c *Connection) bool {
	if c == nil {
		return false
	}
	if _, ok := g.connections[c.id]; !ok {
		return false
	}
	c.detach()
	delete(g.connections, c.id)
	return true
}

// Validate reports whether every node self-validates, every
// connection's endpoints belong to nodes in the graph, and no cycle
// exists anywhere in the graph.
func (g *Graph) Validate() bool {
	for _, n := range g.nodes {
		if err := n.Validate(); err != nil {
			return false
		}
	}
	for _, c := range g.connections {
		src, tgt := c.source.Parent(), c.target.Parent()
		if src == nil || tgt == nil {
			return false
		}
		if _, ok := g.nodes[src.ID()]; !ok {
			return false
		}
		if _, ok := g.nodes[tgt.ID()]; !ok {
			return false
		}
	}
	return !g.hasCycle()
}

// wouldCreateCycle reports whether adding an edge from src to tgt
// would create a directed cycle: true iff src is reachable from tgt
// by following existing output->input edges forward.
func (g *Graph) wouldCreateCycle(src, tgt Node) bool {
	if src == nil || tgt == nil {
		return false
	}
	if src.ID() == tgt.ID() {
		return true
	}
	visited := map[NodeID]bool{tgt.ID(): true}
	queue := []Node{tgt}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, out := range cur.Outputs() {
			for _, conn := range out.Connections() {
				next := conn.target.Parent()
				if next == nil {
					continue
				}
				if next.ID() == src.ID() {
					return true
				}
				if !visited[next.ID()] {
					visited[next.ID()] = true
					queue = append(queue, next)
				}
			}
		}
	}
	return false
}

// hasCycle reports whether the graph, taken as a whole, contains a
// directed cycle along output->input edges.
func (g *Graph) hasCycle() bool {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[NodeID]int, len(g.nodes))
	var visit func(n Node) bool
	visit = func(n Node) bool {
		color[n.ID()] = gray
		for _, out := range n.Outputs() {
			for _, conn := range out.Connections() {
				next := conn.target.Parent()
				if next == nil {
					continue
				}
				switch color[next.ID()] {
				case gray:
					return true
				case white:
					if visit(next) {
						return true
					}
				}
			}
		}
		color[n.ID()] = black
		return false
	}
	for id, n := range g.nodes {
		if color[id] == white {
			if visit(n) {
				return true
			}
		}
	}
	return false
}
