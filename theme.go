package styl

import (
	"fmt"
	"strings"

	"github.com/roach88/styl/internal/rule"
	"github.com/roach88/styl/internal/tokens"
)

// CreateThemeContract returns a tree shaped like t whose leaves are fresh
// variable references. Leaf values of t are ignored; nil leaves are allowed.
func (e *Engine) CreateThemeContract(t Tokens) Tokens {
	contract, _ := tokens.Map(t, func(path tokens.Path, _ any) (any, error) {
		return e.CreateVar(strings.Join(path, "-")), nil
	})
	return contract
}

// AssignVars pairs each variable of contract with the value at the same path
// in values. The result maps variable references to values in sorted path
// order and can be used as a rule. Every contract leaf needs a value and
// every value needs a contract leaf.
func AssignVars(contract, values Tokens) (Rule, error) {
	out := make(Rule, 0, tokens.Leaves(contract))

	err := tokens.Walk(contract, func(path tokens.Path, leaf any) error {
		ref, ok := leaf.(string)
		if !ok || !strings.HasPrefix(ref, "var(") {
			return &tokens.PathError{Path: path, Message: fmt.Sprintf("contract leaf %v is not a variable reference", leaf)}
		}
		v, ok := tokens.Get(values, path)
		if !ok {
			return &tokens.PathError{Path: path, Message: "missing value"}
		}
		if _, nested := tokens.AsTree(v); nested {
			return &tokens.PathError{Path: path, Message: "value is a group, want a leaf"}
		}
		out = append(out, rule.Decl{Key: ref, Value: v})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assign vars: %w", err)
	}

	err = tokens.Walk(values, func(path tokens.Path, _ any) error {
		if _, ok := tokens.Get(contract, path); !ok {
			return &tokens.PathError{Path: path, Message: "not in contract"}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assign vars: %w", err)
	}
	return out, nil
}

// CreateGlobalTheme creates a contract from t, assigns t's values to it
// under selector and returns the contract.
func (e *Engine) CreateGlobalTheme(selector string, t Tokens) (Tokens, error) {
	contract := e.CreateThemeContract(t)
	if err := e.CreateGlobalThemeFromContract(selector, contract, t); err != nil {
		return nil, err
	}
	return contract, nil
}

// CreateGlobalThemeFromContract assigns values to an existing contract under
// selector.
func (e *Engine) CreateGlobalThemeFromContract(selector string, contract, values Tokens) error {
	vars, err := AssignVars(contract, values)
	if err != nil {
		return fmt.Errorf("theme %q: %w", selector, err)
	}
	return e.GlobalStyle(selector, vars)
}

// CreateTheme creates a contract from t and a theme class assigning t's
// values. It returns the class name and the contract.
func (e *Engine) CreateTheme(t Tokens) (string, Tokens, error) {
	name := e.themeName()
	contract, err := e.CreateGlobalTheme("."+name, t)
	if err != nil {
		return "", nil, err
	}
	return name, contract, nil
}

// CreateThemeFromContract creates a theme class assigning values to an
// existing contract and returns the class name.
func (e *Engine) CreateThemeFromContract(contract, values Tokens) (string, error) {
	name := e.themeName()
	if err := e.CreateGlobalThemeFromContract("."+name, contract, values); err != nil {
		return "", err
	}
	return name, nil
}

func (e *Engine) themeName() string {
	id, _ := e.nextID(e.prefixes.Theme, "", nil)
	return id
}
