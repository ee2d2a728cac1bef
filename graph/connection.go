package graph

// Connection is a directed edge from a source Output connector to a
// target Input connector. Construction is atomic: newConnection
// either records the edge on both endpoints or returns an error and
// leaves both untouched.
type Connection struct {
	id     ConnectionID
	source *Connector
	target *Connector
}

func (c *Connection) ID() ConnectionID  { return c.id }
func (c *Connection) Source() *Connector { return c.source }
func (c *Connection) Target() *Connector { return c.target }

// newConnection validates source/target and, only if the connection
// is legal, attaches itself to both connectors. It does not check for
// cycles or graph membership — that is Graph.AddConnection's job.
func newConnection(source, target *Connector) (*Connection, error) {
	if source == nil || target == nil {
		return nil, &Error{Kind: InvalidArgument, Message: "source and target connectors must be non-nil"}
	}
	if source.direction != Output || target.direction != Input {
		return nil, &Error{Kind: InvalidArgument, Message: "source must be an output connector and target an input connector"}
	}
	if source.parent == target.parent {
		return nil, &Error{Kind: InvalidArgument, Message: "source and target must belong to different nodes"}
	}
	if !source.validateConnection(target) || !target.validateConnection(source) {
		return nil, &Error{Kind: InvalidArgument, Message: "connectors are not compatible"}
	}

	conn := &Connection{id: NewConnectionID(), source: source, target: target}
	source.addConnection(conn)
	target.addConnection(conn)
	return conn, nil
}

// detach removes the connection from both of its endpoints.
func (c *Connection) detach() {
	c.source.removeConnection(c)
	c.target.removeConnection(c)
}
