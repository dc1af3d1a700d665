package ident

import "fmt"

// Strategy selects how identifier bodies are derived.
type Strategy string

const (
	// Sequential draws ids from the scope allocator (default).
	Sequential Strategy = "sequential"
	// ContentHash derives ids from the fingerprint of the rule.
	ContentHash Strategy = "hash"
	// Random uses short random ids.
	Random Strategy = "random"
)

// ValidStrategies lists the accepted strategy names.
var ValidStrategies = []Strategy{Sequential, ContentHash, Random}

// ParseStrategy validates a strategy name. Empty defaults to Sequential.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "":
		return Sequential, nil
	case Sequential, ContentHash, Random:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("invalid id strategy %q: must be one of %v", s, ValidStrategies)
	}
}

// Prefixes holds the single-character tag for each identifier kind.
type Prefixes struct {
	Class     string `yaml:"class"`
	Keyframes string `yaml:"keyframes"`
	Var       string `yaml:"var"`
	Container string `yaml:"container"`
	Theme     string `yaml:"theme"`
}

// DefaultPrefixes returns the standard tags: c, k, v, o, t.
func DefaultPrefixes() Prefixes {
	return Prefixes{
		Class:     "c",
		Keyframes: "k",
		Var:       "v",
		Container: "o",
		Theme:     "t",
	}
}

// WithDefaults fills empty tags from DefaultPrefixes.
func (p Prefixes) WithDefaults() Prefixes {
	d := DefaultPrefixes()
	if p.Class == "" {
		p.Class = d.Class
	}
	if p.Keyframes == "" {
		p.Keyframes = d.Keyframes
	}
	if p.Var == "" {
		p.Var = d.Var
	}
	if p.Container == "" {
		p.Container = d.Container
	}
	if p.Theme == "" {
		p.Theme = d.Theme
	}
	return p
}
