// Package loader reads style definition documents.
//
// A document is a CUE, YAML, JSON or TOML file with up to four top-level
// sections, processed in this order:
//
//	themes:    selector -> token tree        (global theme variables)
//	globals:   selector -> rule              (global styles)
//	keyframes: name     -> keyframes rule
//	styles:    name     -> rule | [class names and rules]
//
// Object keys keep their document order in every format except where a
// format has no order (TOML inline tables inside arrays), where keys are
// sorted.
package loader

import (
	"fmt"
	"os"

	"github.com/roach88/styl/internal/rule"
	"github.com/roach88/styl/internal/tokens"
)

// Section names.
const (
	SectionThemes    = "themes"
	SectionGlobals   = "globals"
	SectionKeyframes = "keyframes"
	SectionStyles    = "styles"
)

// Entry is one named item of a section.
type Entry struct {
	Name  string
	Value any
}

// Theme is a global theme: a selector and its token tree.
type Theme struct {
	Selector string
	Tokens   tokens.Tokens
}

// Document is a loaded style definition file.
type Document struct {
	Path      string
	Format    Format
	Themes    []Theme
	Globals   []Entry // Value is rule.Rule
	Keyframes []Entry // Value is rule.Rule
	Styles    []Entry // Value is rule.Rule or []any
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, File: path, Message: err.Error()}
	}
	return Parse(path, data)
}

// Parse parses data in the format implied by path's extension.
func Parse(path string, data []byte) (*Document, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	root, err := ParseTree(format, path, data)
	if err != nil {
		return nil, err
	}
	doc, err := FromTree(path, root)
	if err != nil {
		return nil, err
	}
	doc.Format = format
	return doc, nil
}

// ParseTree parses data into an ordered tree. Objects become rule.Rule,
// arrays []any; numbers are int64 or float64.
func ParseTree(format Format, path string, data []byte) (rule.Rule, error) {
	switch format {
	case FormatCUE:
		return parseCUE(path, data)
	case FormatYAML:
		return parseYAML(path, data)
	case FormatJSON:
		return parseJSON(path, data)
	case FormatTOML:
		return parseTOML(path, data)
	default:
		return nil, &LoadError{Code: ErrCodeUnsupported, File: path, Message: fmt.Sprintf("unknown format %q", format)}
	}
}

// FromTree validates the top-level shape of root and splits it into
// sections. Rules themselves are not compiled here.
func FromTree(path string, root rule.Rule) (*Document, error) {
	doc := &Document{Path: path}

	for _, section := range root {
		entries, ok := section.Value.(rule.Rule)
		if !ok {
			return nil, shapeError(path, section.Key, "section must be a mapping, got %s", describe(section.Value))
		}

		switch section.Key {
		case SectionThemes:
			for _, e := range entries {
				t, ok := toTokens(e.Value)
				if !ok {
					return nil, shapeError(path, section.Key+"."+e.Key, "theme must be a token tree, got %s", describe(e.Value))
				}
				doc.Themes = append(doc.Themes, Theme{Selector: e.Key, Tokens: t})
			}

		case SectionGlobals, SectionKeyframes:
			for _, e := range entries {
				r, ok := e.Value.(rule.Rule)
				if !ok {
					return nil, shapeError(path, section.Key+"."+e.Key, "must be a mapping, got %s", describe(e.Value))
				}
				entry := Entry{Name: e.Key, Value: r}
				if section.Key == SectionGlobals {
					doc.Globals = append(doc.Globals, entry)
				} else {
					doc.Keyframes = append(doc.Keyframes, entry)
				}
			}

		case SectionStyles:
			for _, e := range entries {
				switch v := e.Value.(type) {
				case rule.Rule:
				case []any:
					for i, item := range v {
						switch item.(type) {
						case string, rule.Rule:
						default:
							return nil, shapeError(path, fmt.Sprintf("%s.%s[%d]", section.Key, e.Key, i),
								"list items must be class names or rules, got %s", describe(item))
						}
					}
				case string:
				default:
					return nil, shapeError(path, section.Key+"."+e.Key, "style must be a mapping, a class name or a list, got %s", describe(e.Value))
				}
				doc.Styles = append(doc.Styles, Entry{Name: e.Key, Value: e.Value})
			}

		default:
			return nil, shapeError(path, section.Key, "unknown section (want themes, globals, keyframes or styles)")
		}
	}
	return doc, nil
}

// toTokens converts an ordered tree to a token tree. Leaves must be scalars.
func toTokens(v any) (tokens.Tokens, bool) {
	r, ok := v.(rule.Rule)
	if !ok {
		return nil, false
	}
	t := make(tokens.Tokens, len(r))
	for _, d := range r {
		switch val := d.Value.(type) {
		case rule.Rule:
			sub, ok := toTokens(val)
			if !ok {
				return nil, false
			}
			t[d.Key] = sub
		case []any:
			return nil, false
		default:
			t[d.Key] = val
		}
	}
	return t, true
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case rule.Rule:
		return "mapping"
	case []any:
		return "list"
	case string:
		return "string"
	case bool:
		return "bool"
	case int64, float64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
