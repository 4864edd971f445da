// Package config handles configuration loading and management for clonecap.
//
// It provides functionality for:
//   - Loading configuration from .clonecap.json or .clonecap.yaml files
//   - JSON Schema validation of loaded documents
//   - Default configuration values
//   - Layered merging (defaults, file, environment, flags)
package config
