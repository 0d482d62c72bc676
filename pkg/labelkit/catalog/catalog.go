// Package catalog manages named sets of label templates loaded from YAML.
//
// Operators keep label formats in catalog files rather than in code:
//
//	templates:
//	  movie: "{title|title} ({year}) - {size|bytes}"
//	  episode: "{show} S{season}E{number} [{resolution|upper}]"
//
// A Catalog compiles every entry through its engine at load time and
// serves them by name. Load and LoadDir replace the active set atomically;
// Watch reloads on file changes, keeping the previous set when a reload
// fails. Template names are a caller-facing namespace, so unlike the
// render path, looking up an unknown name is an error.
package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/labelkit/pkg/labelkit"
	"github.com/randalmurphal/labelkit/pkg/labelkit/observability"
)

// DefaultDebounce is the quiet period Watch waits for after a file event
// before reloading.
const DefaultDebounce = 200 * time.Millisecond

// ErrNotFound is returned by Get and Render for names the catalog does not
// hold.
var ErrNotFound = errors.New("template not found in catalog")

// LoadError wraps a failure to read or parse a catalog file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load catalog %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Catalog is a named template set. It is safe for concurrent use; lookups
// proceed during reloads and see either the old set or the new one.
type Catalog struct {
	engine   *labelkit.Engine
	logger   *slog.Logger
	debounce time.Duration

	mu        sync.RWMutex
	templates map[string]*labelkit.Template
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger for load and watch events. A nil logger (the
// default) disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// WithDebounce sets the quiet period Watch waits for before reloading.
// Default: DefaultDebounce. Values below zero are ignored.
func WithDebounce(d time.Duration) Option {
	return func(c *Catalog) {
		if d >= 0 {
			c.debounce = d
		}
	}
}

// New creates an empty Catalog that compiles through engine. A nil engine
// gets a private default engine.
func New(engine *labelkit.Engine, opts ...Option) *Catalog {
	if engine == nil {
		engine = labelkit.New()
	}
	c := &Catalog{
		engine:    engine,
		debounce:  DefaultDebounce,
		templates: make(map[string]*labelkit.Template),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// catalogFile is the on-disk document shape.
type catalogFile struct {
	Templates map[string]string `yaml:"templates"`
}

// Load reads one catalog file and replaces the active template set with
// its contents. On any read or parse failure the active set is left
// untouched and a *LoadError is returned.
func (c *Catalog) Load(path string) error {
	compiled, err := c.loadFile(path)
	if err != nil {
		return err
	}
	c.swap(compiled)
	observability.LogCatalogLoad(c.logger, path, len(compiled))
	return nil
}

// LoadDir reads every .yaml and .yml file directly under dir, in name
// order, and replaces the active set with the merged result. Later files
// win on duplicate template names. Files that fail to parse are skipped
// with a warning; an unreadable directory leaves the active set untouched.
func (c *Catalog) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return &LoadError{Path: dir, Err: err}
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !isCatalogFile(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	merged := make(map[string]*labelkit.Template)
	for _, name := range names {
		path := filepath.Join(dir, name)
		compiled, err := c.loadFile(path)
		if err != nil {
			observability.LogCatalogError(c.logger, path, err)
			continue
		}
		for tname, tpl := range compiled {
			merged[tname] = tpl
		}
	}

	c.swap(merged)
	observability.LogCatalogLoad(c.logger, dir, len(merged))
	return nil
}

// loadFile reads and compiles one catalog file without touching the
// active set.
func (c *Catalog) loadFile(path string) (map[string]*labelkit.Template, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var doc catalogFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	compiled := make(map[string]*labelkit.Template, len(doc.Templates))
	for name, text := range doc.Templates {
		compiled[name] = c.engine.Compile(text)
	}
	return compiled, nil
}

// swap installs a new template set.
func (c *Catalog) swap(templates map[string]*labelkit.Template) {
	c.mu.Lock()
	c.templates = templates
	c.mu.Unlock()
}

// Set compiles text and stores it under name, replacing any previous
// entry. Entries added with Set are dropped by the next Load or LoadDir.
func (c *Catalog) Set(name, text string) {
	tpl := c.engine.Compile(text)
	c.mu.Lock()
	c.templates[name] = tpl
	c.mu.Unlock()
}

// Get returns the named compiled template, or ErrNotFound.
func (c *Catalog) Get(name string) (*labelkit.Template, error) {
	c.mu.RLock()
	tpl, ok := c.templates[name]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return tpl, nil
}

// Render renders the named template against data. The only possible error
// is an unknown name; rendering itself never fails.
func (c *Catalog) Render(name string, data any) (string, error) {
	tpl, err := c.Get(name)
	if err != nil {
		return "", err
	}
	return tpl.Render(data), nil
}

// Names returns the catalog's template names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.templates))
	for name := range c.templates {
		names = append(names, name)
	}
	c.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Len returns the number of templates in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.templates)
}

// isCatalogFile reports whether a directory entry looks like a catalog
// document. Hidden files are skipped.
func isCatalogFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
