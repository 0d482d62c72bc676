package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/labelkit/pkg/labelkit/config"
)

// TestNew verifies Config creation from maps.
func TestNew(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
	}{
		{"nil map", nil},
		{"empty map", map[string]any{}},
		{"with values", map[string]any{"key": "value"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.NotNil(t, cfg.Raw())
		})
	}
}

// TestString verifies string extraction with defaults.
func TestString(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		key        string
		defaultVal string
		want       string
	}{
		{"key exists", map[string]any{"log_level": "debug"}, "log_level", "info", "debug"},
		{"key missing", map[string]any{"other": "value"}, "log_level", "info", "info"},
		{"empty string", map[string]any{"log_level": ""}, "log_level", "info", ""},
		{"wrong type int", map[string]any{"log_level": 123}, "log_level", "info", "info"},
		{"wrong type bool", map[string]any{"log_level": true}, "log_level", "info", "info"},
		{"nil map", nil, "log_level", "info", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			got := cfg.String(tt.key, tt.defaultVal)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestBool verifies boolean extraction with defaults.
func TestBool(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		key        string
		defaultVal bool
		want       bool
	}{
		{"true value", map[string]any{"metrics": true}, "metrics", false, true},
		{"false value", map[string]any{"metrics": false}, "metrics", true, false},
		{"key missing", map[string]any{}, "metrics", true, true},
		{"wrong type string", map[string]any{"metrics": "true"}, "metrics", false, false},
		{"wrong type int", map[string]any{"metrics": 1}, "metrics", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			got := cfg.Bool(tt.key, tt.defaultVal)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestInt verifies integer extraction with type conversions.
func TestInt(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		key        string
		defaultVal int
		want       int
	}{
		{"int value", map[string]any{"cache_size": 512}, "cache_size", 1024, 512},
		{"int64 value", map[string]any{"cache_size": int64(256)}, "cache_size", 1024, 256},
		{"whole float64", map[string]any{"cache_size": float64(128)}, "cache_size", 1024, 128},
		{"fractional float64", map[string]any{"cache_size": 128.5}, "cache_size", 1024, 1024},
		{"zero disables", map[string]any{"cache_size": 0}, "cache_size", 1024, 0},
		{"key missing", map[string]any{}, "cache_size", 1024, 1024},
		{"wrong type string", map[string]any{"cache_size": "512"}, "cache_size", 1024, 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			got := cfg.Int(tt.key, tt.defaultVal)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestDuration verifies duration extraction with various input types.
func TestDuration(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		key        string
		defaultVal time.Duration
		want       time.Duration
	}{
		{"string duration", map[string]any{"cache_ttl": "15m"}, "cache_ttl", 0, 15 * time.Minute},
		{"string complex duration", map[string]any{"cache_ttl": "1h30m"}, "cache_ttl", 0, 90 * time.Minute},
		{"int seconds", map[string]any{"cache_ttl": 60}, "cache_ttl", 0, 60 * time.Second},
		{"int64 seconds", map[string]any{"cache_ttl": int64(45)}, "cache_ttl", 0, 45 * time.Second},
		{"float64 seconds", map[string]any{"cache_ttl": 30.5}, "cache_ttl", 0, 30*time.Second + 500*time.Millisecond},
		{"time.Duration directly", map[string]any{"cache_ttl": 5 * time.Minute}, "cache_ttl", 0, 5 * time.Minute},
		{"key missing", map[string]any{}, "cache_ttl", 10 * time.Second, 10 * time.Second},
		{"invalid string", map[string]any{"cache_ttl": "forever"}, "cache_ttl", 10 * time.Second, 10 * time.Second},
		{"wrong type bool", map[string]any{"cache_ttl": true}, "cache_ttl", 10 * time.Second, 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			got := cfg.Duration(tt.key, tt.defaultVal)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestAnyAndHas verifies raw access and key presence.
func TestAnyAndHas(t *testing.T) {
	cfg := config.New(map[string]any{
		"modifiers": []any{"upper", "truncate"},
		"nested":    map[string]any{"a": 1},
	})

	assert.True(t, cfg.Has("modifiers"))
	assert.False(t, cfg.Has("missing"))

	assert.Equal(t, []any{"upper", "truncate"}, cfg.Any("modifiers", nil))
	assert.Equal(t, "fallback", cfg.Any("missing", "fallback"))
}

// TestFromYAML verifies YAML parsing into Config.
func TestFromYAML(t *testing.T) {
	yamlData := []byte(`
cache_size: 512
cache_ttl: 15m
metrics: true
log_level: debug
`)

	cfg, err := config.FromYAML(yamlData)
	require.NoError(t, err)

	assert.Equal(t, 512, cfg.Int("cache_size", 1024))
	assert.Equal(t, 15*time.Minute, cfg.Duration("cache_ttl", 0))
	assert.True(t, cfg.Bool("metrics", false))
	assert.Equal(t, "debug", cfg.String("log_level", "info"))
}

func TestFromYAML_Invalid(t *testing.T) {
	_, err := config.FromYAML([]byte("cache_size: [unclosed"))
	assert.Error(t, err)
}

// TestFromJSON verifies JSON parsing into Config.
func TestFromJSON(t *testing.T) {
	jsonData := []byte(`{"cache_size": 256, "tracing": true}`)

	cfg, err := config.FromJSON(jsonData)
	require.NoError(t, err)

	// JSON numbers decode as float64; Int converts whole values.
	assert.Equal(t, 256, cfg.Int("cache_size", 1024))
	assert.True(t, cfg.Bool("tracing", false))
}

func TestFromJSON_Invalid(t *testing.T) {
	_, err := config.FromJSON([]byte(`{"cache_size":`))
	assert.Error(t, err)
}

// TestFromFile verifies extension-based loading.
func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(dir, "labelkit.yaml")
		require.NoError(t, os.WriteFile(path, []byte("cache_size: 64\n"), 0o644))

		cfg, err := config.FromFile(path)
		require.NoError(t, err)
		assert.Equal(t, 64, cfg.Int("cache_size", 1024))
	})

	t.Run("json file", func(t *testing.T) {
		path := filepath.Join(dir, "labelkit.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"metrics": true}`), 0o644))

		cfg, err := config.FromFile(path)
		require.NoError(t, err)
		assert.True(t, cfg.Bool("metrics", false))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(dir, "labelkit.toml")
		require.NoError(t, os.WriteFile(path, []byte("cache_size = 64"), 0o644))

		_, err := config.FromFile(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.FromFile(filepath.Join(dir, "absent.yaml"))
		assert.Error(t, err)
	})
}
