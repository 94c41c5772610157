package tool

import "sync"

// Catalog is a thread-safe registry of tools keyed by tool name. It is
// populated once at startup and read-only afterwards, so unsynchronized
// concurrent reads through the RWMutex fast path are the common case.
type Catalog struct {
	mu    sync.RWMutex
	tools map[string]GenericTool
}

// NewCatalog creates a new empty tool catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		tools: make(map[string]GenericTool),
	}
}

// NewCatalogWithTools creates a catalog pre-populated with the given tools.
func NewCatalogWithTools(tools ...GenericTool) *Catalog {
	catalog := NewCatalog()
	catalog.Register(tools...)
	return catalog
}

// Register inserts tools into the catalog, keyed by ToolInfo().Name.
// Registering a name that already exists overwrites the previous entry; the
// identifier contract is preserved. Register never fails.
func (c *Catalog) Register(tools ...GenericTool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range tools {
		c.tools[t.ToolInfo().Name] = t
	}
}

// Get retrieves a tool by name. Returns the tool and true if found,
// nil and false otherwise.
func (c *Catalog) Get(name string) (GenericTool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.tools[name]
	return t, ok
}

// Has reports whether a tool with the given name is registered.
func (c *Catalog) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.tools[name]
	return ok
}

// GetMultiple looks up each name in the given order and returns the tools
// that exist, preserving the input order. Names with no catalog entry are
// silently omitted: the similarity index and the catalog can legitimately
// diverge (a tool unregistered after being indexed), so a partial result is
// a policy, not an error. Callers must tolerate len(result) < len(names).
func (c *Catalog) GetMultiple(names []string) []GenericTool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	found := make([]GenericTool, 0, len(names))
	for _, name := range names {
		if t, ok := c.tools[name]; ok {
			found = append(found, t)
		}
	}
	return found
}

// All returns a copy of the internal tool map. The returned map can be
// modified without affecting the catalog.
func (c *Catalog) All() map[string]GenericTool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]GenericTool, len(c.tools))
	for name, t := range c.tools {
		out[name] = t
	}
	return out
}

// Size returns the number of registered tools.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tools)
}
