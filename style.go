package styl

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/roach88/styl/internal/compiler"
	"github.com/roach88/styl/internal/ident"
	"github.com/roach88/styl/internal/rule"
)

// Style compiles r and returns its class name.
//
// r is a Rule (or a map), a literal class name string, a []string of class
// names, or a Complex / []any mixing both. Lists yield names joined by single
// spaces. A failing rule writes nothing to the sheet.
func (e *Engine) Style(r any) (string, error) {
	return e.NamedStyle("", r)
}

// NamedStyle is Style with a debug name embedded in readable identifiers.
func (e *Engine) NamedStyle(debugName string, r any) (string, error) {
	switch v := r.(type) {
	case string:
		return v, nil
	case []string:
		return joinClasses(v), nil
	case Complex:
		return e.complexStyle(debugName, v)
	case []any:
		return e.complexStyle(debugName, v)
	}

	ru, ok := rule.As(r)
	if !ok {
		return "", fmt.Errorf("style: unsupported rule type %T", r)
	}
	return e.class(debugName, ru)
}

// MustStyle is Style that panics on error.
func (e *Engine) MustStyle(r any) string {
	cls, err := e.Style(r)
	if err != nil {
		panic(err)
	}
	return cls
}

func (e *Engine) complexStyle(debugName string, items []any) (string, error) {
	classes := make([]string, 0, len(items))
	for i, item := range items {
		if s, ok := item.(string); ok {
			classes = append(classes, s)
			continue
		}
		ru, ok := rule.As(item)
		if !ok {
			return "", fmt.Errorf("style: element %d: unsupported rule type %T", i, item)
		}
		cls, err := e.class(debugName, ru)
		if err != nil {
			return "", fmt.Errorf("style: element %d: %w", i, err)
		}
		classes = append(classes, cls)
	}
	return joinClasses(classes), nil
}

func joinClasses(classes []string) string {
	var sb strings.Builder
	for _, c := range classes {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c)
	}
	return sb.String()
}

func (e *Engine) class(debugName string, r Rule) (string, error) {
	id, err := e.nextID(e.prefixes.Class, debugName, r)
	if err != nil {
		return "", fmt.Errorf("style: %w", err)
	}

	compiled, err := e.sheet.Commit(id, func() (string, error) {
		return compiler.CompileRule("."+id, r)
	})
	if err != nil {
		return "", fmt.Errorf("style %s: %w", id, err)
	}
	e.log.Debug("style", zap.String("id", id), zap.Bool("compiled", compiled))
	return id, nil
}

// StyleVariants compiles one style per key of data. mapper turns each value
// into a style input; a nil mapper uses the values as they are. Keys are
// processed in sorted order and used as debug names.
func (e *Engine) StyleVariants(data map[string]any, mapper func(key string, value any) any) (map[string]string, error) {
	out := make(map[string]string, len(data))
	for _, key := range rule.SortedKeys(data) {
		input := data[key]
		if mapper != nil {
			input = mapper(key, input)
		}
		cls, err := e.NamedStyle(key, input)
		if err != nil {
			return nil, fmt.Errorf("variant %q: %w", key, err)
		}
		out[key] = cls
	}
	return out, nil
}

// GlobalStyle compiles r under a caller-supplied selector. No identifier is
// allocated. Under ident.ContentHash identical selector and rule pairs are
// written once.
func (e *Engine) GlobalStyle(selector string, r any) error {
	ru, ok := rule.As(r)
	if !ok {
		return fmt.Errorf("global style %q: unsupported rule type %T", selector, r)
	}

	compile := func() (string, error) { return compiler.CompileRule(selector, ru) }

	if e.strategy == ident.ContentHash {
		key, err := ident.HashID("global:", []any{selector, ru}, e.seed)
		if err != nil {
			return fmt.Errorf("global style %q: %w", selector, err)
		}
		if _, err := e.sheet.Commit(key, compile); err != nil {
			return fmt.Errorf("global style %q: %w", selector, err)
		}
		return nil
	}

	css, err := compile()
	if err != nil {
		return fmt.Errorf("global style %q: %w", selector, err)
	}
	e.sheet.Append(css)
	e.log.Debug("global style", zap.String("selector", selector))
	return nil
}

// Keyframes compiles kf and returns the keyframes name.
func (e *Engine) Keyframes(kf any) (string, error) {
	return e.NamedKeyframes("", kf)
}

// NamedKeyframes is Keyframes with a debug name.
func (e *Engine) NamedKeyframes(debugName string, kf any) (string, error) {
	ru, ok := rule.As(kf)
	if !ok {
		return "", fmt.Errorf("keyframes: unsupported rule type %T", kf)
	}

	id, err := e.nextID(e.prefixes.Keyframes, debugName, ru)
	if err != nil {
		return "", fmt.Errorf("keyframes: %w", err)
	}

	if _, err := e.sheet.Commit(id, func() (string, error) {
		return compiler.CompileKeyframes(id, ru)
	}); err != nil {
		return "", fmt.Errorf("keyframes %s: %w", id, err)
	}
	return id, nil
}
