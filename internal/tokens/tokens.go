// Package tokens walks and transforms theme token trees.
//
// A tree is a map whose values are either leaves (strings, numbers, nil) or
// nested trees. Traversal visits keys in sorted order so output built from a
// walk is deterministic.
package tokens

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/styl/internal/rule"
)

// Tokens is a token tree.
type Tokens map[string]any

// Path is the key chain leading to a leaf.
type Path []string

func (p Path) String() string { return strings.Join(p, ".") }

// AsTree converts v to a map when it has tree shape.
func AsTree(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case Tokens:
		return t, true
	case map[string]any:
		return t, true
	case map[string]string:
		m := make(map[string]any, len(t))
		for k, s := range t {
			m[k] = s
		}
		return m, true
	default:
		return nil, false
	}
}

// Walk calls fn for every leaf of t in sorted key order.
func Walk(t Tokens, fn func(path Path, leaf any) error) error {
	return walk(t, nil, fn)
}

func walk(m map[string]any, path Path, fn func(Path, any) error) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, rule.CompareKeys)

	for _, k := range keys {
		p := append(slices.Clip(path), k)
		if sub, ok := AsTree(m[k]); ok {
			if err := walk(sub, p, fn); err != nil {
				return err
			}
			continue
		}
		if err := fn(p, m[k]); err != nil {
			return err
		}
	}
	return nil
}

// Map returns a tree with the shape of t whose leaves are replaced by fn.
func Map(t Tokens, fn func(path Path, leaf any) (any, error)) (Tokens, error) {
	return mapTree(t, nil, fn)
}

func mapTree(m map[string]any, path Path, fn func(Path, any) (any, error)) (Tokens, error) {
	out := make(Tokens, len(m))
	for _, k := range rule.SortedKeys(m) {
		p := append(slices.Clip(path), k)
		if sub, ok := AsTree(m[k]); ok {
			mapped, err := mapTree(sub, p, fn)
			if err != nil {
				return nil, err
			}
			out[k] = mapped
			continue
		}
		v, err := fn(p, m[k])
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// Get returns the value at path.
func Get(t Tokens, path Path) (any, bool) {
	var cur any = t
	for _, k := range path {
		m, ok := AsTree(cur)
		if !ok {
			return nil, false
		}
		if cur, ok = m[k]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// Leaves returns the number of leaves in t.
func Leaves(t Tokens) int {
	n := 0
	_ = Walk(t, func(Path, any) error {
		n++
		return nil
	})
	return n
}

// PathError reports a leaf missing from, or mismatched against, another
// tree.
type PathError struct {
	Path    Path
	Message string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("token %q: %s", e.Path.String(), e.Message)
}
