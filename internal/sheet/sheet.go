package sheet

import (
	"sync"

	"go.uber.org/zap"
)

// DefaultID is the resource id used when none is configured.
const DefaultID = "_styl"

// Sheet is a CSS accumulator with a dedupe set. It is safe for concurrent
// use.
type Sheet struct {
	mu      sync.Mutex
	id      string
	host    Host
	target  Resource
	seen    map[string]struct{}
	pending pendingQueue
	sched   Scheduler
	log     *zap.Logger
}

// Option configures a Sheet.
type Option func(*Sheet)

// WithHost sets the host used to resolve the target resource.
func WithHost(h Host) Option {
	return func(s *Sheet) { s.host = h }
}

// WithScheduler batches appends; writes reach the target on the scheduled
// flush, on Flush, or on Extract.
func WithScheduler(sc Scheduler) Option {
	return func(s *Sheet) { s.sched = sc }
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(log *zap.Logger) Option {
	return func(s *Sheet) {
		if log != nil {
			s.log = log.Named("sheet")
		}
	}
}

// WithID sets the resource id. An empty id keeps DefaultID.
func WithID(id string) Option {
	return func(s *Sheet) {
		if id != "" {
			s.id = id
		}
	}
}

// New creates an empty sheet. The target resource is resolved on first
// write.
func New(opts ...Option) *Sheet {
	s := &Sheet{
		id:   DefaultID,
		seen: make(map[string]struct{}),
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the resource id.
func (s *Sheet) ID() string { return s.id }

// Append writes text to the sheet. Empty text is ignored.
func (s *Sheet) Append(text string) {
	if text == "" {
		return
	}
	s.mu.Lock()
	schedule := s.appendLocked(text)
	s.mu.Unlock()

	if schedule {
		s.sched.Schedule(s.Flush)
	}
}

// RegisterIfAbsent records id and reports whether it was new.
func (s *Sheet) RegisterIfAbsent(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[id]; ok {
		return false
	}
	s.seen[id] = struct{}{}
	return true
}

// Has reports whether id has been registered since the last Extract.
func (s *Sheet) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.seen[id]
	return ok
}

// Commit compiles and appends the rule named id unless id is already
// registered. The check, compile and append happen under one lock, so
// compile runs at most once per id even with concurrent callers. compile
// must not call back into the sheet.
//
// When compile fails nothing is registered or written. The bool result
// reports whether compile ran and succeeded.
func (s *Sheet) Commit(id string, compile func() (string, error)) (bool, error) {
	s.mu.Lock()
	if _, ok := s.seen[id]; ok {
		s.mu.Unlock()
		return false, nil
	}

	css, err := compile()
	if err != nil {
		s.mu.Unlock()
		s.log.Debug("compile failed", zap.String("id", id), zap.Error(err))
		return false, err
	}

	s.seen[id] = struct{}{}
	var schedule bool
	if css != "" {
		schedule = s.appendLocked(css)
	}
	s.mu.Unlock()

	if schedule {
		s.sched.Schedule(s.Flush)
	}
	return true, nil
}

// Flush writes queued text to the target. It is a no-op without a
// Scheduler or with nothing queued.
func (s *Sheet) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushLocked()
}

// Extract returns the accumulated text and resets the sheet: the target is
// emptied and the dedupe set cleared. Queued text is flushed first.
func (s *Sheet) Extract() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flushLocked()
	target := s.resolve()
	text := target.Text()
	target.Reset()
	clear(s.seen)

	s.log.Debug("extracted", zap.String("id", s.id), zap.Int("bytes", len(text)))
	return text
}

func (s *Sheet) appendLocked(text string) bool {
	if s.sched == nil {
		s.resolve().Append(text)
		return false
	}
	return s.pending.enqueue(text)
}

func (s *Sheet) flushLocked() {
	if s.pending.size() == 0 {
		s.pending.scheduled = false
		return
	}
	n := s.pending.size()
	s.resolve().Append(s.pending.drain())
	s.log.Debug("flushed", zap.String("id", s.id), zap.Int("appends", n))
}

// resolve returns the target resource, looking it up or creating it on
// first use. Host failures fall back to an in-memory Buffer.
func (s *Sheet) resolve() Resource {
	if s.target != nil {
		return s.target
	}

	if s.host == nil {
		s.log.Debug("no host, using in-memory sheet", zap.String("id", s.id))
		s.target = &Buffer{}
		return s.target
	}

	if r, ok := s.host.Lookup(s.id); ok && r != nil {
		s.target = r
		return s.target
	}

	r, err := s.host.Create(s.id)
	switch {
	case err != nil:
		s.log.Warn("sheet target unavailable, using in-memory sheet", zap.String("id", s.id), zap.Error(err))
		s.target = &Buffer{}
	case r == nil:
		s.log.Warn("host returned no sheet target, using in-memory sheet", zap.String("id", s.id))
		s.target = &Buffer{}
	default:
		s.target = r
	}
	return s.target
}
