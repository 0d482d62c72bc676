/*
Package labelkit renders display strings from operator-authored templates.

# Overview

labelkit is a small template language for building human-readable labels
(stream titles, torrent names, notification lines) from loosely-typed data
at request time. Templates mix literal text with variable markers, chainable
value modifiers, and nested conditional blocks:

	{title|upper} ({year}) - {size|bytes}{if seeders > 0} [{seeders} seeds]{/if}

Because templates come from operators rather than developers, the engine
never fails a render: malformed markers degrade to literal text, unresolved
paths render empty, and a broken modifier leaves its input untouched. Render
always returns a string, for any template and any data shape.

The library provides:
  - A compile cache so each distinct template parses once (bounded, LRU)
  - Per-engine modifier registration with panic recovery
  - Optional structured logging, OpenTelemetry metrics and tracing

# Basic Usage

Render directly through the default engine:

	data := map[string]any{
	    "title": "cosmos",
	    "year":  2024,
	}
	out := labelkit.Render("{title|title} ({year})", data)
	// "Cosmos (2024)"

Or hold an Engine to control caching, modifiers, and observability:

	engine := labelkit.New(
	    labelkit.WithCacheSize(256),
	    labelkit.WithCacheTTL(15*time.Minute),
	)
	out := engine.Render("{title|upper}", data)

Precompile hot templates to skip the cache lookup:

	tpl := engine.Compile("{user.name|truncate(20)}")
	for _, u := range users {
	    fmt.Println(tpl.Render(u))
	}

# Template Syntax

A variable marker is a dotted path plus an optional modifier chain:

	{title}
	{episode.show.name}
	{streams.0.quality}
	{size|bytes}
	{title|upper|truncate(30)}

Paths resolve per segment against maps (string keys), struct fields
(case-insensitive), and slices or arrays (all-digit segments index). Any
segment that fails makes the whole path absent, which renders as "".

Conditional blocks test a restricted boolean grammar:

	{if status = 'ok'}up{else}down{/if}
	{if seeders > 0 and size >= 1073741824}big and alive{/if}
	{if a}{if b}both{else}only a{/if}{/if}

Comparison operators, in the order the parser tries them: !=, >=, <=, =, >,
<, ~ (contains), $ (starts with), ^ (ends with). The ~, $ and ^ tests are
case-insensitive. A bare path is a truthy test. "and"/"or" chain conditions
left to right with no precedence and no short-circuit; see the expr
subpackage for the precise splitting and comparison rules.

# Modifiers

Built-ins: bytes, time, upper, lower, title, join, first, last, truncate,
replace. The modifier subpackage documents each. Register custom modifiers
per engine:

	engine := labelkit.New(labelkit.WithModifier("stars", func(v any, args []string) (any, bool) {
	    n, ok := expr.ToFloat64(v)
	    if !ok {
	        return v, true
	    }
	    return strings.Repeat("*", int(n)), true
	}))

A modifier that panics is recovered: the value passes through unchanged and
the event is logged and counted when observability is enabled.

# Configuration

Engines can be built from YAML or JSON config files:

	cfg, err := config.FromFile("labelkit.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	engine := labelkit.NewFromConfig(cfg)

with keys cache_size, cache_ttl, metrics, tracing, and log_level.

# Observability

Enable logging, metrics, and tracing:

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	engine := labelkit.New(
	    labelkit.WithLogger(logger),
	    labelkit.WithMetrics(true),
	    labelkit.WithTracing(true),
	)

Logs include structured fields: render_id, template_len, duration_ms.
OpenTelemetry metrics: labelkit.renders, labelkit.render.latency_ms, etc.
OpenTelemetry tracing: labelkit.render > labelkit.compile spans.

# Thread Safety

  - Engine IS safe for concurrent use
  - Template IS safe for concurrent use (immutable)
  - Data values are never mutated by the engine
  - Registering modifiers after construction is safe, but renders in flight
    may use the previous registration

# Subpackages

  - resolve: dotted-path resolution over arbitrary data
  - expr: condition parsing and evaluation
  - modifier: the modifier registry and built-ins
  - cache: the generic LRU cache backing compiled templates
  - config: typed config extraction and file loading
  - catalog: named template sets loaded from YAML, with live reload
  - observability: logging, metrics, and tracing helpers
*/
package labelkit
