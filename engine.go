package styl

import (
	"sync"

	"go.uber.org/zap"

	"github.com/roach88/styl/internal/ident"
	"github.com/roach88/styl/internal/scope"
	"github.com/roach88/styl/internal/sheet"
)

// Engine owns one sheet, its dedupe set and an identifier allocator.
// It is safe for concurrent use; file scopes are per Engine, so concurrent
// compilation units should use separate engines.
type Engine struct {
	strategy ident.Strategy
	prefixes ident.Prefixes
	seed     uint64
	alloc    *scope.Allocator
	sheet    *sheet.Sheet
	log      *zap.Logger
}

type config struct {
	strategy  ident.Strategy
	prefixes  ident.Prefixes
	seed      uint64
	debug     bool
	log       *zap.Logger
	sheetOpts []sheet.Option
}

// Option configures an Engine.
type Option func(*config)

// WithStrategy selects how identifiers are generated. An empty strategy
// keeps ident.Sequential.
func WithStrategy(s ident.Strategy) Option {
	return func(c *config) {
		if s != "" {
			c.strategy = s
		}
	}
}

// WithHost sets the host that provides the sheet resource.
func WithHost(h sheet.Host) Option {
	return func(c *config) { c.sheetOpts = append(c.sheetOpts, sheet.WithHost(h)) }
}

// WithScheduler batches sheet writes through s.
func WithScheduler(s sheet.Scheduler) Option {
	return func(c *config) { c.sheetOpts = append(c.sheetOpts, sheet.WithScheduler(s)) }
}

// WithSheetID sets the id of the sheet resource.
func WithSheetID(id string) Option {
	return func(c *config) { c.sheetOpts = append(c.sheetOpts, sheet.WithID(id)) }
}

// WithSeed seeds content-hash identifiers.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed = seed }
}

// WithPrefixes overrides the identifier kind prefixes. Empty fields keep
// their defaults.
func WithPrefixes(p ident.Prefixes) Option {
	return func(c *config) { c.prefixes = p.WithDefaults() }
}

// WithDebug starts the engine with readable scoped identifiers, as if
// EnterDebug had been called.
func WithDebug(debug bool) Option {
	return func(c *config) { c.debug = debug }
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) { c.log = log }
}

// New creates an Engine with an empty sheet.
func New(opts ...Option) *Engine {
	c := config{
		strategy: ident.Sequential,
		prefixes: ident.DefaultPrefixes(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}

	e := &Engine{
		strategy: c.strategy,
		prefixes: c.prefixes,
		seed:     c.seed,
		alloc:    scope.New(),
		sheet:    sheet.New(append(c.sheetOpts, sheet.WithLogger(c.log))...),
		log:      c.log.Named("engine"),
	}
	if c.debug {
		e.alloc.EnableDebug()
	}
	return e
}

var defaultEngine = sync.OnceValue(func() *Engine { return New() })

// Default returns the process-wide engine behind the package-level
// functions.
func Default() *Engine {
	return defaultEngine()
}

// Strategy returns the identifier strategy.
func (e *Engine) Strategy() ident.Strategy { return e.strategy }

// nextID returns a new identifier with the given prefix. content is
// fingerprinted under ident.ContentHash; a nil content always takes the
// allocator.
func (e *Engine) nextID(prefix, debugName string, content any) (string, error) {
	switch {
	case e.strategy == ident.Random:
		return ident.RandomID(prefix), nil
	case e.strategy == ident.ContentHash && content != nil:
		return ident.HashID(prefix, content, e.seed)
	default:
		return e.alloc.Next(prefix, debugName), nil
	}
}

// Extract returns the accumulated CSS and resets the sheet and its dedupe
// set.
func (e *Engine) Extract() string {
	return e.sheet.Extract()
}

// Flush writes batched text to the sheet resource.
func (e *Engine) Flush() {
	e.sheet.Flush()
}

// EnterFileScope starts a file scope: identifiers become hash plus a
// per-scope counter, so the same file yields the same names on every run.
// name is used by debug identifiers.
func (e *Engine) EnterFileScope(hash, name string) {
	e.alloc.Enter(hash, name)
	e.log.Debug("enter file scope", zap.String("hash", hash), zap.String("name", name))
}

// LeaveFileScope ends the innermost file scope. It is a no-op outside a
// scope.
func (e *Engine) LeaveFileScope() {
	e.alloc.Leave()
}

// EnterDebug switches scoped identifiers to a readable form that embeds the
// scope and debug names.
func (e *Engine) EnterDebug() {
	e.alloc.EnableDebug()
}
