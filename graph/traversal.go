package graph

// neighbors returns every node reachable from n in a single hop,
// following both output->input and input->output edges — the graph
// is treated as undirected for reachability-style traversal.
func neighbors(n Node) []Node {
	var out []Node
	for _, c := range n.Outputs() {
		for _, conn := range c.Connections() {
			if p := conn.Target().Parent(); p != nil {
				out = append(out, p)
			}
		}
	}
	for _, c := range n.Inputs() {
		for _, conn := range c.Connections() {
			if p := conn.Source().Parent(); p != nil {
				out = append(out, p)
			}
		}
	}
	return out
}

// forwardNeighbors returns nodes reachable from n by following only
// its output connectors' connections.
func forwardNeighbors(n Node) []Node {
	var out []Node
	for _, c := range n.Outputs() {
		for _, conn := range c.Connections() {
			if p := conn.Target().Parent(); p != nil {
				out = append(out, p)
			}
		}
	}
	return out
}

// DepthFirst walks the graph from start in depth-first order over
// both directions, invoking visit(node) for each newly-seen node.
// Traversal stops as soon as visit returns false.
func DepthFirst(start Node, visit func(Node) bool) {
	if start == nil {
		return
	}
	seen := map[NodeID]bool{}
	var walk func(n Node) bool
	walk = func(n Node) bool {
		if seen[n.ID()] {
			return true
		}
		seen[n.ID()] = true
		if !visit(n) {
			return false
		}
		for _, next := range neighbors(n) {
			if !walk(next) {
				return false
			}
		}
		return true
	}
	walk(start)
}

// BreadthFirst walks the graph from start in FIFO order over both
// directions, invoking visit(node) for each newly-seen node.
// Traversal stops as soon as visit returns false.
func BreadthFirst(start Node, visit func(Node) bool) {
	if start == nil {
		return
	}
	seen := map[NodeID]bool{start.ID(): true}
	queue := []Node{start}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if !visit(n) {
			return
		}
		for _, next := range neighbors(n) {
			if !seen[next.ID()] {
				seen[next.ID()] = true
				queue = append(queue, next)
			}
		}
	}
}

// FindNodeByID runs a BFS over both directions from start looking for
// a node with the given id.
func FindNodeByID(start Node, id NodeID) (Node, bool) {
	var found Node
	BreadthFirst(start, func(n Node) bool {
		if n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found, found != nil
}

// FindShortestPath runs a BFS along output-edges only from start and
// returns the first path reaching end (minimum edge count, ties
// broken by connector/connection insertion order). Returns an empty,
// false result if end is unreachable.
func FindShortestPath(start, end Node) ([]Node, bool) {
	if start == nil || end == nil {
		return nil, false
	}
	if start.ID() == end.ID() {
		return []Node{start}, true
	}
	prev := map[NodeID]Node{}
	seen := map[NodeID]bool{start.ID(): true}
	queue := []Node{start}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, next := range forwardNeighbors(n) {
			if seen[next.ID()] {
				continue
			}
			seen[next.ID()] = true
			prev[next.ID()] = n
			if next.ID() == end.ID() {
				path := []Node{next}
				cur := n
				for cur.ID() != start.ID() {
					path = append([]Node{cur}, path...)
					cur = prev[cur.ID()]
				}
				path = append([]Node{start}, path...)
				return path, true
			}
			queue = append(queue, next)
		}
	}
	return nil, false
}

// GetEntryPoints returns every node reachable (undirected) from start
// whose input connectors all have zero attached connections.
func GetEntryPoints(start Node) []Node {
	var entries []Node
	BreadthFirst(start, func(n Node) bool {
		isEntry := true
		for _, in := range n.Inputs() {
			if len(in.Connections()) > 0 {
				isEntry = false
				break
			}
		}
		if isEntry {
			entries = append(entries, n)
		}
		return true
	})
	return entries
}

// GetExitPoints returns every node reachable (undirected) from start
// whose output connectors all have zero attached connections.
func GetExitPoints(start Node) []Node {
	var exits []Node
	BreadthFirst(start, func(n Node) bool {
		isExit := true
		for _, out := range n.Outputs() {
			if len(out.Connections()) > 0 {
				isExit = false
				break
			}
		}
		if isExit {
			exits = append(exits, n)
		}
		return true
	})
	return exits
}

// TopologicalSort returns a linearisation of the weakly-connected
// component reachable (undirected) from start, consistent with
// source-before-target for every edge in an acyclic graph: the
// component is gathered by an undirected breadth-first walk, each of
// its nodes roots a post-order DFS along output edges, and the
// combined post-order is reversed. Returns a Structural error if a
// cycle is detected within the reachable subgraph.
func TopologicalSort(start Node) ([]Node, error) {
	if start == nil {
		return nil, nil
	}
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := map[NodeID]int{}
	var order []Node
	var visit func(n Node) error
	visit = func(n Node) error {
		color[n.ID()] = gray
		for _, next := range forwardNeighbors(n) {
			switch color[next.ID()] {
			case gray:
				return &Error{Kind: Structural, NodeID: next.ID(), Message: "cycle detected during topological sort"}
			case white:
				if err := visit(next); err != nil {
					return err
				}
			}
		}
		color[n.ID()] = black
		order = append(order, n)
		return nil
	}
	var err error
	BreadthFirst(start, func(n Node) bool {
		if color[n.ID()] == white {
			err = visit(n)
		}
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, nil
}
