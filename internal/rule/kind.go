package rule

import "strings"

// Kind classifies a rule key.
type Kind int

const (
	// KindProperty is a plain CSS property, camelCase or kebab-case.
	KindProperty Kind = iota
	// KindNested is a selector containing the & placeholder.
	KindNested
	// KindAtRule is a full at-rule prelude such as "@media (min-width: 1px)".
	KindAtRule
	// KindAtRuleGroup is a bare at-rule name such as "@media" whose value
	// maps query strings to rules.
	KindAtRuleGroup
	// KindSelectors is the reserved "selectors" key.
	KindSelectors
	// KindVars is the reserved "vars" key.
	KindVars
	// KindVar is a single variable assignment: "var(--x)" or "--x".
	KindVar
)

// Reserved keys.
const (
	KeySelectors = "selectors"
	KeyVars      = "vars"
)

// Placeholder is the token substituted with the rule's own selector.
const Placeholder = "&"

var kindNames = [...]string{
	KindProperty:    "property",
	KindNested:      "nested",
	KindAtRule:      "at-rule",
	KindAtRuleGroup: "at-rule-group",
	KindSelectors:   "selectors",
	KindVars:        "vars",
	KindVar:         "var",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Classify returns the Kind of a rule key.
func Classify(key string) Kind {
	switch {
	case key == KeySelectors:
		return KindSelectors
	case key == KeyVars:
		return KindVars
	case strings.HasPrefix(key, "@"):
		if strings.ContainsAny(strings.TrimSpace(key), " \t\n(") {
			return KindAtRule
		}
		return KindAtRuleGroup
	case strings.HasPrefix(key, "var(") || strings.HasPrefix(key, "--"):
		return KindVar
	case strings.Contains(key, Placeholder):
		return KindNested
	default:
		return KindProperty
	}
}

// VarName normalizes a variable reference to its bare custom property name.
//
//	var(--a)        --a
//	var(--a, 10px)  --a
//	--a             --a
//	a               --a
func VarName(ref string) string {
	name := strings.TrimSpace(ref)
	if strings.HasPrefix(name, "var(") {
		name = strings.TrimPrefix(name, "var(")
		if idx := strings.IndexByte(name, ','); idx >= 0 {
			name = name[:idx]
		} else {
			name = strings.TrimSuffix(name, ")")
		}
		name = strings.TrimSpace(name)
	}
	if !strings.HasPrefix(name, "--") {
		name = "--" + name
	}
	return name
}
