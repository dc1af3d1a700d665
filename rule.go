package styl

import (
	"github.com/roach88/styl/internal/rule"
	"github.com/roach88/styl/internal/tokens"
)

// Rule is an ordered style rule. Maps are accepted wherever a Rule is and
// are read in sorted key order.
type Rule = rule.Rule

// Decl is one key/value entry of a Rule.
type Decl = rule.Decl

// Tokens is a theme token tree: string leaves under nested maps.
type Tokens = tokens.Tokens

// Complex mixes literal class names with rules. Style returns the class
// names joined by single spaces, compiling each rule in place.
type Complex []any

// R builds a Rule from alternating keys and values. It panics on an odd
// argument count or a non-string key.
func R(kv ...any) Rule {
	return rule.New(kv...)
}
