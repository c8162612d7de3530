// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads textkit settings from TOML or YAML files
//              with environment variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-04
// Modified: 2026-10-11
//
// Change History:
// - 2026-10-04 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-11 v0.2.0: Slimmed to the keys textkit needs

/*
Package config provides configuration loading for textkit.

Key Features:
  - TOML and YAML with detection by file extension
  - Dot-path access such as "allocator.max_bytes"
  - Environment overrides: with prefix TEXTKIT the key log.level is read from TEXTKIT_LOG_LEVEL
  - File discovery across a list of directories
  - Declarative validation with Required, Type, Min, Max and OneOf rules

# Loading

	cfg, err := config.Load("textkit.toml")
	if err != nil {
		return err
	}
	limit := cfg.GetInt("allocator.max_bytes", 0)

A typical file:

	[allocator]
	max_bytes = 1048576

	[validation]
	surrogates = "strict"

	[format]
	locale = "de-DE"

	[log]
	level = "info"
	format = "text"

# Discovery

	cfg, err := config.Discover(config.DefaultDiscoveryOptions())

Discover returns an empty configuration when no file exists and Required
is false. Environment overrides still apply to it.

# Validation

	res := cfg.Validate(config.ValidationRules{
		"allocator.max_bytes":   {Type: "int", Min: config.IntPtr(0)},
		"validation.surrogates": {OneOf: []string{"strict", "lenient"}},
	})
	if err := res.Err(); err != nil {
		return err
	}

All accessors are safe for concurrent use.
*/
package config
