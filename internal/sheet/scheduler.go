package sheet

import (
	"sync"
	"time"
)

// Scheduler defers a sheet flush. Schedule must not call flush
// synchronously; a Sheet asks for at most one outstanding flush at a time.
type Scheduler interface {
	Schedule(flush func())
}

// Manual is a caller-driven Scheduler. Scheduled flushes run on Run.
type Manual struct {
	mu     sync.Mutex
	queued []func()
}

// NewManual returns an idle Manual scheduler.
func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Schedule(flush func()) {
	m.mu.Lock()
	m.queued = append(m.queued, flush)
	m.mu.Unlock()
}

// Pending returns the number of scheduled flushes not yet run.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queued)
}

// Run executes every scheduled flush in order and returns how many ran.
func (m *Manual) Run() int {
	m.mu.Lock()
	queued := m.queued
	m.queued = nil
	m.mu.Unlock()

	for _, fn := range queued {
		fn()
	}
	return len(queued)
}

type afterScheduler struct {
	d time.Duration
}

// After returns a Scheduler that runs each flush on its own goroutine once d
// has elapsed.
func After(d time.Duration) Scheduler {
	return afterScheduler{d: d}
}

func (a afterScheduler) Schedule(flush func()) {
	time.AfterFunc(a.d, flush)
}
