package rule

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf16"
)

// Decl is a single key/value entry of a Rule.
type Decl struct {
	Key   string
	Value any
}

// Rule is an ordered style rule.
type Rule []Decl

// New builds a Rule from alternating key/value arguments.
// Panics if a key is not a string or a value is missing; use it for rules
// written in source code where a malformed literal is a programmer error.
//
// Example: New("color", "blue", "selectors", New("&:hover", New("color", "red")))
func New(kv ...any) Rule {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("rule.New: odd number of arguments (%d)", len(kv)))
	}
	r := make(Rule, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("rule.New: key at position %d is %T, not string", i, kv[i]))
		}
		r = append(r, Decl{Key: key, Value: kv[i+1]})
	}
	return r
}

// Lookup returns the value of the first declaration with the given key.
func (r Rule) Lookup(key string) (any, bool) {
	for _, d := range r {
		if d.Key == key {
			return d.Value, true
		}
	}
	return nil, false
}

// Keys returns declaration keys in order.
func (r Rule) Keys() []string {
	keys := make([]string, len(r))
	for i, d := range r {
		keys[i] = d.Key
	}
	return keys
}

// As converts v to a Rule. Rules are returned as is; map[string]any and
// map[string]string are converted with keys in sorted order.
// The second result is false when v has no rule shape.
func As(v any) (Rule, bool) {
	switch val := v.(type) {
	case Rule:
		return val, true
	case []Decl:
		return Rule(val), true
	case map[string]any:
		r := make(Rule, 0, len(val))
		for _, k := range SortedKeys(val) {
			r = append(r, Decl{Key: k, Value: val[k]})
		}
		return r, true
	case map[string]string:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		slices.SortFunc(keys, CompareKeys)
		r := make(Rule, 0, len(val))
		for _, k := range keys {
			r = append(r, Decl{Key: k, Value: val[k]})
		}
		return r, true
	default:
		return nil, false
	}
}

// SortedKeys returns map keys in canonical order (UTF-16 code units).
func SortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, CompareKeys)
	return keys
}

// CompareKeys orders strings by UTF-16 code units, the ordering used by
// canonical JSON. Go's native comparison uses UTF-8 bytes, which differs
// for characters outside the BMP.
func CompareKeys(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))

	n := min(len(a16), len(b16))
	for i := 0; i < n; i++ {
		if a16[i] != b16[i] {
			if a16[i] < b16[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a16) < len(b16):
		return -1
	case len(a16) > len(b16):
		return 1
	}
	return 0
}

// String renders the rule for diagnostics. It is not CSS.
func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, d := range r {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%q: %v", d.Key, d.Value)
	}
	sb.WriteByte('}')
	return sb.String()
}
