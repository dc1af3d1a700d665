package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/roach88/styl"
	"github.com/roach88/styl/internal/compiler"
	"github.com/roach88/styl/internal/ident"
	"github.com/roach88/styl/internal/loader"
	"github.com/roach88/styl/internal/tokens"
)

// ErrCodeCompile marks a rule that does not compile.
const ErrCodeCompile = "E006"

// scopeHashMask keeps file scope hashes at five encoded characters or fewer.
const scopeHashMask = 1<<30 - 1

// FileResult holds the names generated for one input document.
type FileResult struct {
	File      string                   `json:"file"`
	Scope     string                   `json:"scope"`
	Classes   map[string]string        `json:"classes,omitempty"`
	Keyframes map[string]string        `json:"keyframes,omitempty"`
	Themes    map[string]tokens.Tokens `json:"themes,omitempty"`
}

// BuildResult is the output of a build: the extracted sheet, every input
// document that was found and the names generated per loaded file.
type BuildResult struct {
	CSS    string       `json:"css"`
	Inputs []string     `json:"inputs"`
	Files  []FileResult `json:"files"`
}

// BuildError locates a failure inside an input document.
type BuildError struct {
	File    string
	Section string
	Name    string
	Err     error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%s: %s.%s: %v", e.File, e.Section, e.Name, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// Builder compiles documents into one sheet.
type Builder struct {
	cfg    *Config
	engine *styl.Engine
	log    *zap.Logger
}

// NewBuilder returns a builder for cfg. A nil logger disables logging.
func NewBuilder(cfg *Config, log *zap.Logger) (*Builder, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	strategy, err := ident.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	opts := []styl.Option{
		styl.WithStrategy(strategy),
		styl.WithSeed(cfg.Seed),
		styl.WithPrefixes(cfg.Prefixes),
		styl.WithDebug(cfg.Debug),
		styl.WithLogger(log),
	}
	if cfg.SheetID != "" {
		opts = append(opts, styl.WithSheetID(cfg.SheetID))
	}

	return &Builder{cfg: cfg, engine: styl.New(opts...), log: log.Named("build")}, nil
}

// Build compiles every document found under paths. A missing path stops
// the build; errors inside documents are collected and the remaining
// documents still compile. The result is returned alongside the combined
// error.
func (b *Builder) Build(paths []string) (*BuildResult, error) {
	files, err := loader.Find(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, &loader.LoadError{
			Code:    loader.ErrCodeNotFound,
			Message: fmt.Sprintf("no style documents found in %s", strings.Join(paths, ", ")),
		}
	}
	b.log.Debug("found documents", zap.Int("count", len(files)))

	result := &BuildResult{Inputs: files}
	var errs error
	for _, file := range files {
		doc, err := loader.Load(file)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		fr, err := b.buildDocument(doc)
		errs = multierr.Append(errs, err)
		result.Files = append(result.Files, fr)
	}

	result.CSS = b.engine.Extract()
	return result, errs
}

func (b *Builder) buildDocument(doc *loader.Document) (FileResult, error) {
	hash, name := ScopeFor(doc.Path, b.cfg.Seed)
	b.engine.EnterFileScope(hash, name)
	defer b.engine.LeaveFileScope()

	fr := FileResult{File: doc.Path, Scope: hash}
	var errs error
	fail := func(section, name string, err error) {
		errs = multierr.Append(errs, &BuildError{File: doc.Path, Section: section, Name: name, Err: err})
	}

	for _, t := range doc.Themes {
		contract, err := b.engine.CreateGlobalTheme(t.Selector, t.Tokens)
		if err != nil {
			fail(loader.SectionThemes, t.Selector, err)
			continue
		}
		if fr.Themes == nil {
			fr.Themes = make(map[string]tokens.Tokens)
		}
		fr.Themes[t.Selector] = contract
	}

	for _, g := range doc.Globals {
		if err := b.engine.GlobalStyle(g.Name, g.Value); err != nil {
			fail(loader.SectionGlobals, g.Name, err)
		}
	}

	for _, kf := range doc.Keyframes {
		id, err := b.engine.NamedKeyframes(kf.Name, kf.Value)
		if err != nil {
			fail(loader.SectionKeyframes, kf.Name, err)
			continue
		}
		if fr.Keyframes == nil {
			fr.Keyframes = make(map[string]string)
		}
		fr.Keyframes[kf.Name] = id
	}

	for _, s := range doc.Styles {
		cls, err := b.engine.NamedStyle(s.Name, resolveRefs(s.Value, fr.Classes))
		if err != nil {
			fail(loader.SectionStyles, s.Name, err)
			continue
		}
		if fr.Classes == nil {
			fr.Classes = make(map[string]string)
		}
		fr.Classes[s.Name] = cls
	}

	b.log.Debug("compiled document",
		zap.String("file", doc.Path),
		zap.String("scope", hash),
		zap.Int("classes", len(fr.Classes)),
		zap.Int("keyframes", len(fr.Keyframes)))
	return fr, errs
}

// resolveRefs replaces class-name strings that name an earlier style of the
// same document with that style's class.
func resolveRefs(v any, classes map[string]string) any {
	switch v := v.(type) {
	case string:
		if cls, ok := classes[v]; ok {
			return cls
		}
		return v
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = resolveRefs(item, classes)
		}
		return out
	default:
		return v
	}
}

// ScopeFor derives the file scope for path: a short hash of the path and a
// slug of the file's base name.
func ScopeFor(path string, seed uint64) (hash, name string) {
	clean := filepath.ToSlash(filepath.Clean(path))
	h := ident.FingerprintBytes([]byte(clean), seed) & scopeHashMask
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ident.Encode(h), slug.Make(base)
}

// errorCode maps an error to the code shown to users.
func errorCode(err error) string {
	var le *loader.LoadError
	if errors.As(err, &le) {
		return le.Code
	}
	if compiler.IsCompileError(err) {
		return ErrCodeCompile
	}
	return loader.ErrCodeGeneric
}

// toCLIErrors flattens a combined build error.
func toCLIErrors(err error) []CLIError {
	var out []CLIError
	for _, e := range multierr.Errors(err) {
		ce := CLIError{Code: errorCode(e), Message: e.Error()}
		var le *loader.LoadError
		var be *BuildError
		switch {
		case errors.As(e, &le):
			ce.File, ce.Line, ce.Message = le.File, le.Line, le.Message
		case errors.As(e, &be):
			ce.File = be.File
			ce.Message = fmt.Sprintf("%s.%s: %v", be.Section, be.Name, be.Err)
		}
		out = append(out, ce)
	}
	return out
}
