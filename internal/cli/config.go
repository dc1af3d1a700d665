package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/styl/internal/ident"
)

// Config is the styl.yaml file. Command-line flags override it.
type Config struct {
	Strategy string         `yaml:"strategy"`
	Debug    bool           `yaml:"debug"`
	Seed     uint64         `yaml:"seed"`
	SheetID  string         `yaml:"sheet_id"`
	Prefixes ident.Prefixes `yaml:"prefixes"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Strategy: string(ident.Sequential),
		Prefixes: ident.DefaultPrefixes(),
	}
}

// LoadConfig reads a YAML config file over the defaults. Unknown keys are
// rejected. An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.Prefixes = cfg.Prefixes.WithDefaults()
	if _, err := ident.ParseStrategy(cfg.Strategy); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
