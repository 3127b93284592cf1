package dom

import "sync"

// MemoryContainer is an in-memory Container implementation. Hosts that do
// not have a real document (server-side rendering, tests) use it to drive
// the bootstrap core and inspect the resulting visible state.
type MemoryContainer struct {
	mu        sync.Mutex
	id        string
	connected bool
	attrs     map[string]string
	loading   bool
	errMsg    string
}

// NewMemoryContainer creates a detached container with the given attributes.
// The loading placeholder starts visible, matching freshly inserted markup.
func NewMemoryContainer(id string, attrs map[string]string) *MemoryContainer {
	copied := make(map[string]string, len(attrs))
	for k, v := range attrs {
		copied[k] = v
	}
	return &MemoryContainer{id: id, attrs: copied, loading: true}
}

func (c *MemoryContainer) ID() string { return c.id }

func (c *MemoryContainer) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// SetConnected marks the container as mounted (or unmounted). The host
// pipeline calls this when it inserts the node into a live document.
func (c *MemoryContainer) SetConnected(connected bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected = connected
}

func (c *MemoryContainer) Attr(name string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.attrs[name]
	return v, ok
}

func (c *MemoryContainer) SetAttr(name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.attrs[name] = value
}

func (c *MemoryContainer) ShowLoading() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = true
}

func (c *MemoryContainer) HideLoading() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
}

func (c *MemoryContainer) ShowError(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	c.errMsg = message
}

// LoadingVisible reports whether the loading placeholder is still shown.
func (c *MemoryContainer) LoadingVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// ErrorMessage returns the last message passed to ShowError, or "".
func (c *MemoryContainer) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}
