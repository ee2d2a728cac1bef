// Package catalog implements the pluggable NodeCatalog contract
// external callers use to register node types and instantiate them by
// type token or display name.
package catalog

import (
	"strings"
	"sync"

	"github.com/flowgraph/workflowcore/graph"
)

// Metadata describes a registered node type.
type Metadata struct {
	Type        string
	DisplayName string
	Category    string
	Description string
}

// Factory constructs a fresh instance of a registered node type.
type Factory func() graph.Node

// Catalog is a thread-safe registry mapping type tokens and display
// names to node factories. The zero value is not usable; build one
// with New.
type Catalog struct {
	mu        sync.RWMutex
	byType    map[string]entry
	byDisplay map[string]entry
}

type entry struct {
	meta    Metadata
	factory Factory
}

// New builds an empty Catalog.
func New() *Catalog {
	return &Catalog{
		byType:    make(map[string]entry),
		byDisplay: make(map[string]entry),
	}
}

// Register adds a node type to the catalog. Returns a graph.Error of
// kind graph.InvalidArgument if meta.Type is empty, factory is nil, or
// meta.Type is already registered.
func (c *Catalog) Register(meta Metadata, factory func() graph.Node) error {
	if meta.Type == "" {
		return &graph.Error{Kind: graph.InvalidArgument, Message: "node metadata must have a non-empty Type"}
	}
	if factory == nil {
		return &graph.Error{Kind: graph.InvalidArgument, Message: "factory must not be nil"}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.byType[meta.Type]; exists {
		return &graph.Error{Kind: graph.InvalidArgument, Message: "node type already registered: " + meta.Type}
	}

	e := entry{meta: meta, factory: factory}
	c.byType[meta.Type] = e
	if meta.DisplayName != "" {
		c.byDisplay[strings.ToLower(meta.DisplayName)] = e
	}
	return nil
}

// CreateInstance looks up typeOrDisplayName by exact Type first, then
// by case-insensitive DisplayName, and invokes its factory. Returns a
// graph.Error of kind graph.InvalidArgument for an unregistered token.
func (c *Catalog) CreateInstance(typeOrDisplayName string) (graph.Node, error) {
	c.mu.RLock()
	e, ok := c.byType[typeOrDisplayName]
	if !ok {
		e, ok = c.byDisplay[strings.ToLower(typeOrDisplayName)]
	}
	c.mu.RUnlock()

	if !ok {
		return nil, &graph.Error{Kind: graph.InvalidArgument, Message: "unregistered node type: " + typeOrDisplayName}
	}
	return e.factory(), nil
}

// List returns the metadata of every registered node type. Order is
// unspecified.
func (c *Catalog) List() []Metadata {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Metadata, 0, len(c.byType))
	for _, e := range c.byType {
		out = append(out, e.meta)
	}
	return out
}
