package config

import "github.com/clonecap/clonecap/packages/capture"

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Method:       capture.DefaultMethod,
		IncludeTests: boolPtr(false),
		Exclude:      nil,
		Verbose:      boolPtr(false),
		NoColor:      boolPtr(false),
		Watch: &WatchConfig{
			DebounceMs: 300,
		},
	}
}
