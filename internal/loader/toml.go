package loader

import (
	"errors"

	"github.com/BurntSushi/toml"

	"github.com/roach88/styl/internal/rule"
)

// parseTOML decodes into maps and rebuilds key order from the decoder's
// metadata, which lists keys in definition order. Keys the metadata does not
// cover are appended in sorted order.
func parseTOML(file string, data []byte) (rule.Rule, error) {
	var m map[string]any
	md, err := toml.Decode(string(data), &m)
	if err != nil {
		le := parseError(file, err)
		var perr toml.ParseError
		if errors.As(err, &perr) {
			le.Line = perr.Position.Line
			le.Message = perr.Message
		}
		return nil, le
	}

	order := newTOMLTable()
	for _, key := range md.Keys() {
		v, ok := lookupTOML(m, key)
		if !ok {
			continue
		}
		t := order
		for _, k := range key[:len(key)-1] {
			t = t.table(k)
		}
		last := key[len(key)-1]
		if _, isTable := v.(map[string]any); isTable {
			t.table(last)
		} else {
			t.leaf(last)
		}
	}
	return order.build(m), nil
}

type tomlTable struct {
	order []string
	seen  map[string]bool
	sub   map[string]*tomlTable
}

func newTOMLTable() *tomlTable {
	return &tomlTable{seen: make(map[string]bool), sub: make(map[string]*tomlTable)}
}

func (t *tomlTable) leaf(k string) {
	if !t.seen[k] {
		t.seen[k] = true
		t.order = append(t.order, k)
	}
}

func (t *tomlTable) table(k string) *tomlTable {
	t.leaf(k)
	sub, ok := t.sub[k]
	if !ok {
		sub = newTOMLTable()
		t.sub[k] = sub
	}
	return sub
}

func (t *tomlTable) build(src map[string]any) rule.Rule {
	r := make(rule.Rule, 0, len(src))
	for _, k := range t.order {
		v, ok := src[k]
		if !ok {
			continue
		}
		if m, isTable := v.(map[string]any); isTable {
			r = append(r, rule.Decl{Key: k, Value: t.sub[k].build(m)})
			continue
		}
		r = append(r, rule.Decl{Key: k, Value: tomlValue(v)})
	}
	for _, k := range rule.SortedKeys(src) {
		if !t.seen[k] {
			r = append(r, rule.Decl{Key: k, Value: tomlValue(src[k])})
		}
	}
	return r
}

func lookupTOML(m map[string]any, key toml.Key) (any, bool) {
	var cur any = m
	for _, k := range key {
		tbl, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = tbl[k]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// tomlValue converts values outside the ordered walk. Maps get sorted keys.
func tomlValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		r := make(rule.Rule, 0, len(t))
		for _, k := range rule.SortedKeys(t) {
			r = append(r, rule.Decl{Key: k, Value: tomlValue(t[k])})
		}
		return r
	case []map[string]any:
		list := make([]any, len(t))
		for i, e := range t {
			list[i] = tomlValue(e)
		}
		return list
	case []any:
		list := make([]any, len(t))
		for i, e := range t {
			list[i] = tomlValue(e)
		}
		return list
	default:
		return t
	}
}
