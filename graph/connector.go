package graph

// Direction marks whether a Connector accepts incoming data (Input) or
// produces outgoing data (Output). Immutable once a Connector is built.
type Direction int

const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	if d == Input {
		return "input"
	}
	return "output"
}

// DataType is a runtime-visible type tag carried by a Connector. Two
// connectors are wire-compatible when one's DataType is assignable to
// the other's, per the Graph's configured AssignableFunc.
type DataType string

// AssignableFunc reports whether a value tagged `from` may flow into a
// connector tagged `to`. The default, DefaultAssignable, is permissive
// (bidirectional): equal types, or either registered as a subtype of
// the other. Graph.StrictTypes narrows this to exact equality.
type AssignableFunc func(from, to DataType) bool

// subtypeRegistry records `child is-a parent` facts used by
// DefaultAssignable. It is package-level and process-wide, matching
// the spec's notion of a fixed set of runtime type tags.
var subtypeRegistry = map[DataType]map[DataType]bool{}

// RegisterSubtype declares that values tagged `child` may be used
// wherever `parent` is expected. The registry is not guarded by a
// mutex, so RegisterSubtype is not safe for concurrent use; it is a
// one-time-setup call, matching the teacher's own one-time-setup
// registries (e.g. its tool registration pattern).
func RegisterSubtype(child, parent DataType) {
	set, ok := subtypeRegistry[child]
	if !ok {
		set = map[DataType]bool{}
		subtypeRegistry[child] = set
	}
	set[parent] = true
}

func isSubtype(child, parent DataType) bool {
	if child == parent {
		return true
	}
	direct, ok := subtypeRegistry[child]
	return ok && direct[parent]
}

// DefaultAssignable implements the spec's permissive compatibility
// rule: types are equal, source is a subtype of target, or target is
// a subtype of source.
func DefaultAssignable(from, to DataType) bool {
	return from == to || isSubtype(from, to) || isSubtype(to, from)
}

// StrictAssignable requires exact type equality, the strict mode
// named as an open question in the design notes.
func StrictAssignable(from, to DataType) bool {
	return from == to
}

// Connector is a typed input or output port owned by exactly one
// Node. Its parent reference is set once, either at construction or,
// for a connector built with a nil parent, by the owning BaseNode's
// SetOwner; its Direction never changes after construction.
type Connector struct {
	id          ConnectorID
	name        string
	direction   Direction
	dataType    DataType
	parent      Node
	connections []*Connection
	assignable  AssignableFunc
}

// NewConnector builds a Connector owned by parent. parent may be nil at
// construction time (a node's ports are typically built before the
// node itself exists) and fixed up once via setParent.
func NewConnector(id ConnectorID, name string, dir Direction, dt DataType, parent Node) *Connector {
	if id == "" {
		id = NewConnectorID()
	}
	return &Connector{
		id:         id,
		name:       name,
		direction:  dir,
		dataType:   dt,
		parent:     parent,
		assignable: DefaultAssignable,
	}
}

func (c *Connector) ID() ConnectorID      { return c.id }
func (c *Connector) Name() string         { return c.name }
func (c *Connector) Direction() Direction { return c.direction }
func (c *Connector) DataType() DataType   { return c.dataType }
func (c *Connector) Parent() Node         { return c.parent }

// setParent fixes the connector's owning node once, immediately after
// the node is allocated. It is unexported: only BaseNode.SetOwner (in
// the same package) calls it, preserving the "fixed for the connector's
// lifetime" contract from a caller's perspective.
func (c *Connector) setParent(n Node) {
	c.parent = n
}

// Connections returns the connector's attached connections. The
// returned slice is a read-only snapshot; callers must not mutate it.
func (c *Connector) Connections() []*Connection {
	out := make([]*Connection, len(c.connections))
	copy(out, c.connections)
	return out
}

// validateConnection reports whether a Connection could legally join
// c to other: neither side nil, opposite directions, type-compatible,
// and (for an input-side c) no existing connection occupying its
// single fan-in slot.
func (c *Connector) validateConnection(other *Connector) bool {
	if other == nil {
		return false
	}
	if c.direction == other.direction {
		return false
	}
	var from, to DataType
	if c.direction == Output {
		from, to = c.dataType, other.dataType
	} else {
		from, to = other.dataType, c.dataType
	}
	assignable := c.assignable
	if assignable == nil {
		assignable = DefaultAssignable
	}
	if !assignable(from, to) {
		return false
	}
	if c.direction == Input && len(c.connections) > 0 {
		return false
	}
	return true
}

// addConnection attaches conn to this connector's local list. Callers
// (Connection construction) are responsible for calling this on both
// endpoints atomically.
func (c *Connector) addConnection(conn *Connection) {
	c.connections = append(c.connections, conn)
}

// removeConnection detaches conn if present, reporting whether it was
// found. A nil conn always returns false.
func (c *Connector) removeConnection(conn *Connection) bool {
	if conn == nil {
		return false
	}
	for i, existing := range c.connections {
		if existing == conn {
			c.connections = append(c.connections[:i], c.connections[i+1:]...)
			return true
		}
	}
	return false
}
