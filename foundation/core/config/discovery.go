// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Searches a list of directories for the first matching
//              configuration file and loads it. Also builds a configuration
//              entirely from prefixed environment variables.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-04
// Modified: 2026-10-10
//
// Change History:
// - 2026-10-04 v0.1.0: Initial implementation of file discovery
// - 2026-10-10 v0.2.0: textkit defaults, shared candidate walk

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the search locations used by the textkit CLI
func DefaultDiscoveryOptions() DiscoveryOptions {
	return DiscoveryOptions{
		Paths:      []string{".", "./config", "/etc/textkit"},
		Filenames:  []string{"textkit"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "TEXTKIT",
		Required:   false,
	}
}

func (o DiscoveryOptions) withDefaults() DiscoveryOptions {
	if len(o.Paths) == 0 {
		o.Paths = []string{"."}
	}
	if len(o.Filenames) == 0 {
		o.Filenames = []string{"config"}
	}
	if len(o.Extensions) == 0 {
		o.Extensions = []string{".toml", ".yaml", ".yml"}
	}
	return o
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	options = options.withDefaults()

	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}

// FindConfigFile returns the first existing candidate without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, configPath := range candidates {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", tkerror.New("configuration file not found").
		WithCode(tkerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

// Discover finds and loads the first matching configuration file. When no
// file exists and Required is false, an empty configuration is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	configPath, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, tkerror.Wrap(err, "no configuration file found").
				WithOperation("config.Discover")
		}
		return Empty(options.EnvPrefix), nil
	}

	cfg, err := LoadWithOptions(configPath, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
	})
	if err != nil {
		return nil, tkerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", configPath)).
			WithOperation("config.Discover").
			WithDetail("configPath", configPath)
	}
	return cfg, nil
}

// LoadFromEnv builds a configuration from environment variables carrying
// the prefix. TEXTKIT_LOG_LEVEL becomes log.level.
func LoadFromEnv(envPrefix string) *Config {
	data := make(map[string]interface{})
	prefix := ""
	if envPrefix != "" {
		prefix = strings.ToUpper(envPrefix) + "_"
	}

	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(key, prefix) {
			continue
		}
		configKey := strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(key, prefix), "_", "."))
		setNestedValue(data, configKey, parseEnvValue(value))
	}

	return &Config{
		data:      data,
		format:    FormatAuto,
		envPrefix: envPrefix,
	}
}

func parseEnvValue(value string) interface{} {
	if value == "true" || value == "false" {
		return value == "true"
	}
	if intVal, err := strconv.Atoi(value); err == nil {
		return intVal
	}
	if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
		return floatVal
	}
	return value
}

func setNestedValue(data map[string]interface{}, key string, value interface{}) {
	keys := strings.Split(key, ".")
	current := data

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}
