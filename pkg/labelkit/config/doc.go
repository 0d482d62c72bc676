/*
Package config provides type-safe configuration extraction from map[string]any.

# Overview

config wraps a map[string]any and provides typed accessor methods that handle
missing keys and type mismatches gracefully by returning default values.
Engine construction reads its settings through this package, so a config file
with a misspelled or mistyped key falls back to defaults rather than erroring.

# Basic Usage

Create a Config from any map and extract values with defaults:

	cfg := config.New(map[string]any{
	    "cache_size": 512,
	    "cache_ttl":  "15m",
	    "metrics":    true,
	})

	size    := cfg.Int("cache_size", 1024)              // 512
	ttl     := cfg.Duration("cache_ttl", 0)             // 15m
	metrics := cfg.Bool("metrics", false)               // true
	missing := cfg.String("log_level", "info")          // "info"

# Type Coercion

Duration handles multiple input types:
  - string: parsed with time.ParseDuration ("90s", "15m")
  - int/float64: interpreted as seconds
  - time.Duration: used directly

Int converts from int64 and from float64 when there is no fractional part.

All methods return the default value if:
  - The key is missing
  - The value cannot be converted to the requested type
  - The conversion would lose precision (e.g., float to int with fraction)

# File Loading

Load configuration from YAML or JSON files:

	cfg, err := config.FromFile("labelkit.yaml")
	if err != nil {
	    log.Fatal(err)
	}

	// Or load from bytes
	cfg, err = config.FromYAML(yamlBytes)
	cfg, err = config.FromJSON(jsonBytes)

# Thread Safety

Config is safe for concurrent read access. The underlying map is not
modified after creation. However, if the original map is modified
externally, behavior is undefined.
*/
package config
