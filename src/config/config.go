package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/eriklarko/rpn-logic/src/boolexpr"
	"github.com/eriklarko/rpn-logic/src/truthtable"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for a config file when none is given.
const DefaultPath = ".rpnlogic.yaml"

// DefaultMaxVariables keeps truth tables at a million rows unless the user
// asks for more.
const DefaultMaxVariables = 20

type Config struct {
	// Format is how truth tables are rendered, see truthtable.ParseFormat.
	// Empty means pick one based on whether stdout is a terminal.
	Format string `yaml:"format,omitempty"`
	// Workers is the number of truth table rows evaluated concurrently
	Workers int `yaml:"workers"`
	// MaxDepth bounds how deeply nested a formula may be
	MaxDepth int `yaml:"max-depth"`
	// MaxVariables is the largest number of variables a truth table is
	// generated for without asking
	MaxVariables int `yaml:"max-variables"`
	// Summary appends row counts to every truth table
	Summary bool `yaml:"summary"`

	Path string `yaml:"-"`
}

func Default() *Config {
	return &Config{
		Workers:      1,
		MaxDepth:     boolexpr.DefaultMaxDepth,
		MaxVariables: DefaultMaxVariables,
		Path:         DefaultPath,
	}
}

// LoadConfig reads the config file at path. Keys missing from the file keep
// their default values, an empty file is the default config. If the file doesn't exist the returned error
// satisfies os.IsNotExist.
func LoadConfig(path string) (*Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		// not an error enough to stop execution, the relative path works too
		absPath = path
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		// returned unwrapped so os.IsNotExist works on it
		return nil, err
	}

	config := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file %s: %w", absPath, err)
	}
	config.Path = path

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", absPath, err)
	}
	return config, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Format != "" {
		if _, err := truthtable.ParseFormat(c.Format); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}
	if c.MaxDepth < 1 {
		errs = append(errs, fmt.Errorf("max-depth must be at least 1, got %d", c.MaxDepth))
	}
	if c.MaxVariables < 1 || c.MaxVariables > truthtable.MaxVariables {
		errs = append(errs, fmt.Errorf("max-variables must be between 1 and %d, got %d", truthtable.MaxVariables, c.MaxVariables))
	}
	return errors.Join(errs...)
}

// Write stores the config at c.Path.
func (c *Config) Write() error {
	content, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.Path, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", c.Path, err)
	}
	// WriteFile keeps the permissions of files that already exist
	if err := os.Chmod(c.Path, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", c.Path, err)
	}
	return nil
}
