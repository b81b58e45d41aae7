package object

import "github.com/roselang/rose/internal/collections"

// Context is a lexical environment: a mapping from name to Value, with
// an optional parent to walk when a name isn't found locally
// (spec §3.3/§4.3). A frame's lifetime is strictly contained in its
// parent's (spec §3.3 Invariant); this package does not enforce that
// directly, it falls out of nothing but the caller ever retaining a
// reference to a child's parent for longer than the child itself.
type Context struct {
	store  *collections.Map[Value]
	parent *Context
}

// NewContext creates a root frame with no parent.
func NewContext() *Context {
	return &Context{store: collections.NewMap[Value]()}
}

// Enclose creates a child frame referencing parent.
func Enclose(parent *Context) *Context {
	return &Context{store: collections.NewMap[Value](), parent: parent}
}

// Get walks from this frame up through parents until name is found.
func (c *Context) Get(name string) (Value, bool) {
	if v, ok := c.store.Get(name); ok {
		return v, true
	}
	if c.parent != nil {
		return c.parent.Get(name)
	}
	return nil, false
}

// Define installs name in this frame only, shadowing any binding of the
// same name in an ancestor frame.
func (c *Context) Define(name string, value Value) {
	c.store.Put(name, value)
}

// Assign mutates the nearest enclosing frame (starting at this one)
// that already holds name. It is a silent no-op if name is absent
// anywhere in the chain (spec §4.3; the evaluator is responsible for
// guarding against assigning to an undefined name where that matters).
func (c *Context) Assign(name string, value Value) {
	if c.store.Contains(name) {
		c.store.Put(name, value)
		return
	}
	if c.parent != nil {
		c.parent.Assign(name, value)
	}
}

// Exists reports whether name is bound in this frame only, ignoring
// parents.
func (c *Context) Exists(name string) bool {
	return c.store.Contains(name)
}
