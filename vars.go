package styl

import "github.com/roach88/styl/internal/rule"

// CreateVar allocates a CSS custom property and returns its reference,
// "var(--<id>)".
func (e *Engine) CreateVar(debugName string) string {
	id, _ := e.nextID(e.prefixes.Var, debugName, nil)
	return "var(--" + id + ")"
}

// CreateContainer allocates a container name.
func (e *Engine) CreateContainer(debugName string) string {
	id, _ := e.nextID(e.prefixes.Container, debugName, nil)
	return id
}

// FallbackVar nests fallbacks into ref:
//
//	FallbackVar("var(--a)", "var(--b)", "10px") == "var(--a, var(--b, 10px))"
//
// Every argument but the last must be a variable reference.
func FallbackVar(ref string, fallbacks ...string) string {
	if len(fallbacks) == 0 {
		return ref
	}
	out := fallbacks[len(fallbacks)-1]
	for i := len(fallbacks) - 2; i >= 0; i-- {
		out = "var(" + rule.VarName(fallbacks[i]) + ", " + out + ")"
	}
	return "var(" + rule.VarName(ref) + ", " + out + ")"
}
