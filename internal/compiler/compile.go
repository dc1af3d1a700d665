package compiler

import (
	"strings"

	"github.com/roach88/styl/internal/rule"
)

// CompileRule compiles r as the rule for selector. An empty rule compiles
// to the empty string.
func CompileRule(selector string, r rule.Rule) (string, error) {
	c := &ruleCompiler{}
	return c.compile(selector, r, "")
}

type ruleCompiler struct {
	path []string
}

func (c *ruleCompiler) push(key string) { c.path = append(c.path, key) }
func (c *ruleCompiler) pop()            { c.path = c.path[:len(c.path)-1] }

// compile renders r for selector. When outer is non-empty the whole result
// is wrapped in an outer block (an at-rule prelude).
func (c *ruleCompiler) compile(selector string, r rule.Rule, outer string) (string, error) {
	var inner, siblings strings.Builder

	for _, d := range r {
		c.push(d.Key)

		switch rule.Classify(d.Key) {
		case rule.KindAtRuleGroup:
			queries, err := c.nestedRule(d.Value)
			if err != nil {
				return "", err
			}
			for _, q := range queries {
				c.push(q.Key)
				nested, err := c.nestedRule(q.Value)
				if err != nil {
					return "", err
				}
				css, err := c.compile(selector, nested, d.Key+" "+q.Key)
				if err != nil {
					return "", err
				}
				siblings.WriteString(css)
				c.pop()
			}

		case rule.KindAtRule:
			nested, err := c.nestedRule(d.Value)
			if err != nil {
				return "", err
			}
			css, err := c.compile(selector, nested, d.Key)
			if err != nil {
				return "", err
			}
			siblings.WriteString(css)

		case rule.KindSelectors:
			selectors, err := c.nestedRule(d.Value)
			if err != nil {
				return "", err
			}
			for _, s := range selectors {
				c.push(s.Key)
				if !strings.Contains(s.Key, rule.Placeholder) {
					return "", newError(c.path, "selector must reference the rule with %q", rule.Placeholder)
				}
				css, err := c.compileNested(selector, s.Key, s.Value)
				if err != nil {
					return "", err
				}
				siblings.WriteString(css)
				c.pop()
			}

		case rule.KindNested:
			css, err := c.compileNested(selector, d.Key, d.Value)
			if err != nil {
				return "", err
			}
			siblings.WriteString(css)

		case rule.KindVars:
			vars, err := c.nestedRule(d.Value)
			if err != nil {
				return "", err
			}
			for _, v := range vars {
				c.push(v.Key)
				if err := c.writeVar(&inner, v.Key, v.Value); err != nil {
					return "", err
				}
				c.pop()
			}

		case rule.KindVar:
			if err := c.writeVar(&inner, d.Key, d.Value); err != nil {
				return "", err
			}

		default:
			if err := c.writeProperty(&inner, d.Key, d.Value); err != nil {
				return "", err
			}
		}

		c.pop()
	}

	var out strings.Builder
	if inner.Len() > 0 {
		out.WriteString(selector)
		out.WriteByte('{')
		out.WriteString(inner.String())
		out.WriteByte('}')
	}
	out.WriteString(siblings.String())

	if out.Len() > 0 && outer != "" {
		return outer + "{" + out.String() + "}", nil
	}
	return out.String(), nil
}

// compileNested substitutes every placeholder in template with selector and
// compiles value as a standalone sibling rule.
func (c *ruleCompiler) compileNested(selector, template string, value any) (string, error) {
	nested, err := c.nestedRule(value)
	if err != nil {
		return "", err
	}
	return c.compile(strings.ReplaceAll(template, rule.Placeholder, selector), nested, "")
}

func (c *ruleCompiler) nestedRule(v any) (rule.Rule, error) {
	r, ok := rule.As(v)
	if !ok {
		return nil, newError(c.path, "expected a nested rule, got %T", v)
	}
	return r, nil
}

func (c *ruleCompiler) writeVar(sb *strings.Builder, key string, value any) error {
	s, ok, err := formatValue(value, "")
	if err != nil {
		return newError(c.path, "%v", err)
	}
	if !ok {
		return nil
	}
	sb.WriteString(rule.VarName(key))
	sb.WriteByte(':')
	sb.WriteString(s)
	sb.WriteByte(';')
	return nil
}

func (c *ruleCompiler) writeProperty(sb *strings.Builder, key string, value any) error {
	s, ok, err := formatValue(value, unitFor(key))
	if err != nil {
		return newError(c.path, "%v", err)
	}
	if !ok {
		return nil
	}
	sb.WriteString(Kebab(key))
	sb.WriteByte(':')
	sb.WriteString(s)
	sb.WriteByte(';')
	return nil
}
