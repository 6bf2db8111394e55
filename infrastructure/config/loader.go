package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader reads scenario files from disk, expanding environment variable
// references before parsing and layering HTN_-prefixed run-option
// overrides after it, grounded on the teacher's infrastructure/config.Loader.
type Loader struct {
	// ExpandEnv enables ${VAR}/$VAR expansion in the raw file content.
	ExpandEnv bool
	// StrictEnv fails the load if a referenced env var is missing.
	StrictEnv bool
}

// NewLoader creates a Loader with default settings (env expansion on,
// missing vars tolerated — they expand to "").
func NewLoader() *Loader {
	return &Loader{ExpandEnv: true}
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithEnvExpansion enables or disables ${VAR} expansion.
func WithEnvExpansion(enabled bool) LoaderOption {
	return func(l *Loader) { l.ExpandEnv = enabled }
}

// WithStrictEnv fails the load on a missing referenced env var.
func WithStrictEnv(enabled bool) LoaderOption {
	return func(l *Loader) { l.StrictEnv = enabled }
}

// NewLoaderWithOptions creates a Loader with the given options applied.
func NewLoaderWithOptions(opts ...LoaderOption) *Loader {
	l := NewLoader()
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFile loads and parses a scenario file. Only the .yaml and .yml
// extensions are accepted; any other extension yields ErrUnsupportedFormat.
func (l *Loader) LoadFile(path string) (*ScenarioConfig, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("accessing scenario file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario file: %w", err)
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	return l.Load(f)
}

// Load parses a scenario from r, applying env-var expansion (if enabled)
// and HTN_-prefixed run-option overrides, and filling in any run: fields
// the file omitted with DefaultRunOptions.
func (l *Loader) Load(r io.Reader) (*ScenarioConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}

	if l.ExpandEnv {
		expanded, err := (&envExpander{strict: l.StrictEnv}).Expand(string(data))
		if err != nil {
			return nil, err
		}
		data = []byte(expanded)
	}

	cfg := &ScenarioConfig{Run: DefaultRunOptions()}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	cfg.Run = applyRunOverrides(cfg.Run)
	return cfg, nil
}

// LoadString parses a scenario from a string, for tests and inline
// scenarios.
func (l *Loader) LoadString(content string) (*ScenarioConfig, error) {
	return l.Load(strings.NewReader(content))
}

func validate(cfg *ScenarioConfig) error {
	if cfg.Domain == "" {
		return fmt.Errorf("%w: scenario has no domain", ErrValidationFailed)
	}
	for i, item := range cfg.Goal {
		switch item.Kind {
		case "action", "task":
			if item.Name == "" {
				return fmt.Errorf("%w: goal[%d]: %s item has no name", ErrValidationFailed, i, item.Kind)
			}
		case "unigoal":
			if item.Var == "" {
				return fmt.Errorf("%w: goal[%d]: unigoal item has no var", ErrValidationFailed, i)
			}
		case "multigoal":
			if len(item.Multigoal) == 0 {
				return fmt.Errorf("%w: goal[%d]: multigoal item has no conjuncts", ErrValidationFailed, i)
			}
		default:
			return fmt.Errorf("%w: goal[%d]: unrecognized kind %q", ErrValidationFailed, i, item.Kind)
		}
	}
	return nil
}
