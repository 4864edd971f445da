package config

import (
	"encoding/json"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/clonecap/clonecap/packages/capture"
)

// Config represents the clonecap configuration
type Config struct {
	Method       string       `json:"method,omitempty"`       // duplication method generated bindings call
	IncludeTests *bool        `json:"includeTests,omitempty"` // process *_test.go files during walks
	Exclude      []string     `json:"exclude,omitempty"`      // glob patterns skipped during walks
	Verbose      *bool        `json:"verbose,omitempty"`
	NoColor      *bool        `json:"noColor,omitempty"`
	Watch        *WatchConfig `json:"watch,omitempty"`
}

// WatchConfig holds watch-mode settings
type WatchConfig struct {
	DebounceMs int `json:"debounceMs,omitempty"` // milliseconds
}

// boolPtr returns a pointer to a bool value
func boolPtr(b bool) *bool {
	return &b
}

// BoolPtr is exported version of boolPtr for external use
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetMethod returns the duplication method, defaulting to Clone
func (c *Config) GetMethod() string {
	if c.Method == "" {
		return capture.DefaultMethod
	}
	return c.Method
}

// GetIncludeTests returns the include tests setting, defaulting to false
func (c *Config) GetIncludeTests() bool {
	return getBool(c.IncludeTests, false)
}

// GetVerbose returns the verbose setting, defaulting to false
func (c *Config) GetVerbose() bool {
	return getBool(c.Verbose, false)
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// GetDebounceMs returns the watch debounce in milliseconds, defaulting to 300
func (c *Config) GetDebounceMs() int {
	if c.Watch == nil || c.Watch.DebounceMs <= 0 {
		return 300
	}
	return c.Watch.DebounceMs
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".clonecap.json",
	"clonecap.config.json",
	".clonecap.yaml",
	".clonecap.yml",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}

	// Search from the current directory upward
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory and
// its parents, nearest first
func FindAndLoadConfig(dir string) (*Config, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	for {
		for _, filename := range ConfigFilenames {
			configPath := filepath.Join(abs, filename)
			if _, err := os.Stat(configPath); err == nil {
				return loadConfigFromFile(configPath)
			}
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			break
		}
		abs = parent
	}

	// Return defaults if no config file found
	return DefaultConfig(), nil
}

// loadConfigFromFile loads configuration from a specific file
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc := data
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		// YAML configs use the same camelCase keys as JSON; decode to a
		// generic document so one schema covers both formats.
		var generic map[string]any
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		doc, err = json.Marshal(generic)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := ValidateSchema(doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(doc, config); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if config.Method != "" && !token.IsIdentifier(config.Method) {
		return nil, fmt.Errorf("%s: method %q is not a valid Go identifier", path, config.Method)
	}

	return config, nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.Method != "" {
		result.Method = other.Method
	}

	// Boolean flags - only override if explicitly set in other config
	if other.IncludeTests != nil {
		result.IncludeTests = other.IncludeTests
	}
	if other.Verbose != nil {
		result.Verbose = other.Verbose
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}

	// Merge exclude patterns
	if len(other.Exclude) > 0 {
		result.Exclude = other.Exclude
	}

	if other.Watch != nil {
		watch := *other.Watch
		if watch.DebounceMs <= 0 && result.Watch != nil {
			watch.DebounceMs = result.Watch.DebounceMs
		}
		result.Watch = &watch
	}

	return &result
}

// SaveConfig saves the configuration to a file
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
