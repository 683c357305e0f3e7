/*
Package params provides type-safe value extraction from map[string]any.

# Overview

params wraps a map[string]any of named construction parameters and provides
typed accessor methods that handle missing keys and type mismatches
gracefully by returning default values. This is the free-form context
passed to flyweight producers; it avoids verbose type assertions and nil
checks when reading values that arrived from YAML/JSON structures.

# Basic Usage

Create Params from any map and extract values with defaults:

	p := params.New(map[string]any{
	    "timeout": "30s",
	    "retries": 3,
	    "enabled": true,
	})

	timeout := p.Duration("timeout", 10*time.Second) // 30s
	retries := p.Int("retries", 5)                   // 3
	enabled := p.Bool("enabled", false)              // true
	missing := p.String("missing", "default")        // "default"

# Type Coercion

Duration handles multiple input types:
  - string: parsed with time.ParseDuration ("30s", "1h30m")
  - int/float64: interpreted as seconds
  - time.Duration: used directly

Numeric types handle reasonable conversions:
  - int from float64 (truncated, only when no fractional part)
  - float64 from int

All methods return the default value if:
  - The key is missing
  - The value cannot be converted to the requested type
  - The conversion would lose precision (e.g., float to int with fraction)

# Loading From Files

Parameter sets can be loaded from YAML or JSON files:

	p, err := params.FromFile("glyph.yaml")
	if err != nil {
	    log.Fatal(err)
	}

The zero value of Params is valid and behaves like an empty map.
*/
package params
