// Package recipe builds multi-variant class name functions on top of
// styl.Engine.
//
// A recipe is compiled once: the base style, every variant style and every
// compound style are registered when New is called. The returned Func only
// picks class names.
package recipe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/styl"
	"github.com/roach88/styl/internal/rule"
)

// Selection picks one variant per group. Boolean variants use "true" and
// "false"; an empty value leaves the group unselected.
type Selection map[string]string

// Compound adds Style when every group in Variants has the given value.
type Compound struct {
	Variants Selection
	Style    any
}

// Options describes a recipe. Style values are anything Engine.Style
// accepts; strings are literal class names.
type Options struct {
	Base             any
	Variants         map[string]map[string]any
	DefaultVariants  Selection
	CompoundVariants []Compound
}

// Func returns the class names for a selection.
type Func func(sel Selection) string

type compiled struct {
	base      string
	groups    []string
	variants  map[string]map[string]string
	compounds []compoundClass
	defaults  Selection
}

type compoundClass struct {
	match Selection
	class string
}

// New compiles opts on e.
func New(e *styl.Engine, opts Options) (Func, error) {
	c := &compiled{
		variants: make(map[string]map[string]string, len(opts.Variants)),
		defaults: opts.DefaultVariants,
	}

	if opts.Base != nil {
		base, err := e.NamedStyle("base", opts.Base)
		if err != nil {
			return nil, fmt.Errorf("recipe base: %w", err)
		}
		c.base = base
	}

	groups := make(map[string]any, len(opts.Variants))
	for g := range opts.Variants {
		groups[g] = nil
	}
	c.groups = rule.SortedKeys(groups)

	for _, g := range c.groups {
		classes, err := e.StyleVariants(opts.Variants[g], nil)
		if err != nil {
			return nil, fmt.Errorf("recipe variant group %q: %w", g, err)
		}
		c.variants[g] = classes
	}

	for i, cv := range opts.CompoundVariants {
		cls, err := e.NamedStyle("compound", cv.Style)
		if err != nil {
			return nil, fmt.Errorf("recipe compound variant %d: %w", i, err)
		}
		c.compounds = append(c.compounds, compoundClass{match: cv.Variants, class: cls})
	}

	return c.classes, nil
}

func (c *compiled) classes(sel Selection) string {
	combined := make(Selection, len(c.defaults)+len(sel))
	for k, v := range c.defaults {
		combined[k] = v
	}
	for k, v := range sel {
		if v != "" {
			combined[k] = v
		}
	}

	parts := make([]string, 0, 1+len(c.groups)+len(c.compounds))
	parts = append(parts, c.base)
	for _, g := range c.groups {
		if cls, ok := c.variants[g][combined[g]]; ok {
			parts = append(parts, cls)
		}
	}

compounds:
	for _, cc := range c.compounds {
		for k, v := range cc.match {
			if combined[k] != v {
				continue compounds
			}
		}
		parts = append(parts, cc.class)
	}

	var sb strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p)
	}
	return sb.String()
}

// Bool formats a boolean variant value.
func Bool(b bool) string {
	return strconv.FormatBool(b)
}
