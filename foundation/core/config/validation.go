// File: validation.go
// Title: Configuration Validation Implementation
// Description: Validates configuration values against declarative rules:
//              required keys, value types, integer bounds and enumerations.
//              Environment overrides are validated like file values.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-04
// Modified: 2026-10-11
//
// Change History:
// - 2026-10-04 v0.1.0: Initial implementation of validation
// - 2026-10-11 v0.2.0: OneOf rules, read-only validation, Err helper

package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

// ValidationRule describes the constraints for one configuration key
type ValidationRule struct {
	Required bool     // Key must be present
	Type     string   // "string", "int" or "bool"; empty skips the type check
	Min      *int     // Inclusive lower bound for int values
	Max      *int     // Inclusive upper bound for int values
	OneOf    []string // Allowed values, compared case-insensitively
}

// ValidationRules maps dot-path keys to their rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err returns nil for a valid result, otherwise an InvalidConfig error
// listing every violation
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return tkerror.New("invalid configuration: "+strings.Join(r.Errors, "; ")).
		WithCode(tkerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("violations", len(r.Errors))
}

// IntPtr is a helper for ValidationRule bounds
func IntPtr(v int) *int {
	return &v
}

// Validate validates the configuration against the provided rules. Keys are
// checked in sorted order so the error list is stable.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}
	return result
}

func (c *Config) lookup(key string) interface{} {
	if envValue, ok := c.getEnvValue(key); ok {
		return parseEnvValue(envValue)
	}
	return c.getValue(key)
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	value := c.lookup(key)
	if value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	switch rule.Type {
	case "":
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("field '%s' must be a string, got %T", key, value)
		}
	case "int":
		if _, ok := toInt(value); !ok {
			return fmt.Errorf("field '%s' must be an integer, got %T", key, value)
		}
	case "bool":
		switch v := value.(type) {
		case bool:
		case string:
			if _, err := strconv.ParseBool(v); err != nil {
				return fmt.Errorf("field '%s' must be a boolean, got '%s'", key, v)
			}
		default:
			return fmt.Errorf("field '%s' must be a boolean, got %T", key, value)
		}
	default:
		return fmt.Errorf("unknown validation type: %s", rule.Type)
	}

	if rule.Min != nil || rule.Max != nil {
		n, ok := toInt(value)
		if !ok {
			return fmt.Errorf("field '%s' bounds require an integer value", key)
		}
		if rule.Min != nil && n < *rule.Min {
			return fmt.Errorf("field '%s' value %d is less than minimum %d", key, n, *rule.Min)
		}
		if rule.Max != nil && n > *rule.Max {
			return fmt.Errorf("field '%s' value %d is greater than maximum %d", key, n, *rule.Max)
		}
	}

	if len(rule.OneOf) > 0 {
		s := fmt.Sprintf("%v", value)
		for _, allowed := range rule.OneOf {
			if strings.EqualFold(s, allowed) {
				return nil
			}
		}
		return fmt.Errorf("field '%s' value '%s' is not one of [%s]", key, s, strings.Join(rule.OneOf, ", "))
	}

	return nil
}
