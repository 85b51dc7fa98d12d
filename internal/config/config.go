package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Package config handles loading, validation, and access to application configuration.

// UI modes.
const (
	ModeLine = "line" // Numbered menu read line by line from stdin
	ModeTUI  = "tui"  // Full-screen Bubble Tea interface
)

// Config holds the application configuration.
type Config struct {
	Catalog struct {
		Path        string `yaml:"path"`                   // Course data file (.csv or .xlsx)
		AllowReload bool   `yaml:"allow_reload,omitempty"` // Re-read the file on a second load
		TrimFields  bool   `yaml:"trim_fields,omitempty"`  // Strip whitespace, drop empty prerequisites
	} `yaml:"catalog"`

	Log struct {
		Level  string `yaml:"level,omitempty"` // e.g., debug, info, warn, error, disabled
		File   string `yaml:"file,omitempty"`  // Empty disables logging
		Pretty bool   `yaml:"pretty,omitempty"`
	} `yaml:"log,omitempty"`

	UI struct {
		Mode string `yaml:"mode,omitempty"` // line or tui
	} `yaml:"ui,omitempty"`

	source string
}

const (
	defaultConfigDirName  = ".courseplanner"
	defaultConfigFileName = "courseplanner.yaml"
	homeConfigFileName    = "config.yaml"
	defaultCatalogPath    = "courselist.csv"
	defaultLogLevel       = "info"
	defaultLogFile        = "courseplanner.log"
)

// Source returns the file the configuration was read from, or an empty
// string when defaults are in use.
func (c *Config) Source() string {
	return c.source
}

// Load tries to load configuration from standard locations.
// Priority: ./courseplanner.yaml, ~/.courseplanner/config.yaml, defaults.
func Load() (*Config, error) {
	paths := []string{defaultConfigFileName}
	homeDir, err := os.UserHomeDir()
	if err == nil {
		paths = append(paths, filepath.Join(homeDir, defaultConfigDirName, homeConfigFileName))
	}
	return loadFirst(paths...)
}

// loadFirst reads the first existing file in paths. Missing files are
// skipped; any other read or parse error is returned.
func loadFirst(paths ...string) (*Config, error) {
	for _, path := range paths {
		cfg, err := loadFromFile(path)
		if err == nil {
			cfg.source = path
			applyDefaults(cfg)
			if err := cfg.validate(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		if !os.IsNotExist(errors.Cause(err)) {
			return nil, errors.Wrapf(err, "error reading config from %s", path)
		}
	}

	cfg := &Config{}
	applyDefaults(cfg)
	return cfg, nil
}

func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err // Propagate error (including os.IsNotExist)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config yaml %s", filePath)
	}
	return &cfg, nil
}

// applyDefaults ensures essential fields have default values if not set.
func applyDefaults(cfg *Config) {
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = defaultCatalogPath
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
	if cfg.Log.File == "" {
		cfg.Log.File = defaultLogFile
	}
	cfg.UI.Mode = strings.ToLower(cfg.UI.Mode)
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = ModeLine
	}
}

func (c *Config) validate() error {
	switch c.UI.Mode {
	case ModeLine, ModeTUI:
	default:
		return errors.Errorf("invalid ui.mode %q in %s: must be '%s' or '%s'", c.UI.Mode, c.source, ModeLine, ModeTUI)
	}
	return nil
}
