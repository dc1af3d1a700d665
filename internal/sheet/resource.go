package sheet

import (
	"fmt"
	"strings"
	"sync"
)

// Resource is a writable sheet target.
type Resource interface {
	// Append adds text at the end of the resource.
	Append(text string)
	// Text returns the full content.
	Text() string
	// Reset empties the resource.
	Reset()
}

// Host resolves sheet resources by id. Lookup finds an existing resource;
// Create makes a new one when Lookup fails.
type Host interface {
	Lookup(id string) (Resource, bool)
	Create(id string) (Resource, error)
}

// Buffer is an in-memory Resource. It is the fallback target when no host is
// available.
type Buffer struct {
	mu sync.Mutex
	sb strings.Builder
}

func (b *Buffer) Append(text string) {
	b.mu.Lock()
	b.sb.WriteString(text)
	b.mu.Unlock()
}

func (b *Buffer) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.String()
}

func (b *Buffer) Reset() {
	b.mu.Lock()
	b.sb.Reset()
	b.mu.Unlock()
}

// MapHost is a Host backed by a map of Buffers. Several sheets sharing one
// MapHost and id write to the same Buffer.
type MapHost struct {
	mu        sync.Mutex
	resources map[string]*Buffer
	// ReadOnly makes Create fail, simulating a host that cannot make new
	// resources.
	ReadOnly bool
}

// NewMapHost returns an empty MapHost.
func NewMapHost() *MapHost {
	return &MapHost{resources: make(map[string]*Buffer)}
}

func (h *MapHost) Lookup(id string) (Resource, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	b, ok := h.resources[id]
	if !ok {
		return nil, false
	}
	return b, true
}

func (h *MapHost) Create(id string) (Resource, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.ReadOnly {
		return nil, fmt.Errorf("create sheet %q: host is read-only", id)
	}
	if h.resources == nil {
		h.resources = make(map[string]*Buffer)
	}
	b, ok := h.resources[id]
	if !ok {
		b = &Buffer{}
		h.resources[id] = b
	}
	return b, nil
}

// Get returns the buffer registered under id, or nil.
func (h *MapHost) Get(id string) *Buffer {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.resources[id]
}
