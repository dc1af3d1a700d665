// Package scope issues identifier bodies from a global counter or, while a
// file scope is active, from a per-scope counter seeded by the scope hash.
//
// File scopes make ids generated while processing one source unit stable
// across rebuilds: the unit's hash is fixed, and the local counter restarts
// at zero every time the unit is entered, so rebuilding an unchanged unit
// produces the same ids without hashing each rule.
//
// Scopes nest with stack discipline. Leave on an empty stack is a no-op.
//
// Thread-safety: Allocator is safe for concurrent use, but a scope stack
// describes one logical compilation unit. Units compiled concurrently need
// separate allocators.
package scope

import (
	"strings"
	"sync"

	"github.com/roach88/styl/internal/ident"
)

type frame struct {
	hash    string
	name    string
	counter uint64
}

// Allocator issues identifiers.
type Allocator struct {
	mu      sync.Mutex
	counter uint64
	stack   []frame
	debug   bool
}

// New returns an allocator in global mode with the counter at zero.
func New() *Allocator {
	return &Allocator{}
}

// Next returns the next identifier with the given kind prefix.
//
// Global mode:  prefix + Encode(counter++)
// Scoped mode:  prefix + hash + Encode(local++)
// Scoped debug: "<scopeName>__<debugName>_<scoped id>"
func (a *Allocator) Next(prefix, debugName string) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.stack) == 0 {
		id := prefix + ident.Encode(a.counter)
		a.counter++
		return id
	}

	top := &a.stack[len(a.stack)-1]
	id := prefix + top.hash + ident.Encode(top.counter)
	top.counter++

	if !a.debug {
		return id
	}
	return debugID(top.name, debugName, id)
}

// debugID joins the readable parts, dropping empty ones.
func debugID(scopeName, debugName, id string) string {
	var sb strings.Builder
	if scopeName != "" {
		sb.WriteString(scopeName)
		sb.WriteString("__")
	}
	if debugName != "" {
		sb.WriteString(debugName)
		sb.WriteString("_")
	}
	sb.WriteString(id)
	return sb.String()
}

// Enter pushes a file scope.
func (a *Allocator) Enter(hash, name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stack = append(a.stack, frame{hash: hash, name: name})
}

// Leave pops the innermost file scope. It is a no-op when no scope is active.
func (a *Allocator) Leave() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.stack) > 0 {
		a.stack = a.stack[:len(a.stack)-1]
	}
}

// EnableDebug switches scoped ids to their human-readable form.
func (a *Allocator) EnableDebug() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.debug = true
}

// Debug reports whether readable ids are enabled.
func (a *Allocator) Debug() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.debug
}

// Depth returns the number of active scopes.
func (a *Allocator) Depth() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.stack)
}

// Reset clears the counter, the scope stack and the debug flag.
func (a *Allocator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.counter = 0
	a.stack = nil
	a.debug = false
}
