package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/labelkit/pkg/labelkit/catalog"
)

// startWatch runs Watch in the background and returns a stop function that
// cancels it and waits for a clean return.
func startWatch(t *testing.T, c *catalog.Catalog, path string) func() {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- c.Watch(ctx, path)
	}()
	// Give the watcher time to register before the test mutates files.
	time.Sleep(100 * time.Millisecond)

	return func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("watch did not stop after context cancellation")
		}
	}
}

func TestWatch_ReloadsFileOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalogFile(t, dir, "labels.yaml", "templates:\n  a: \"one\"\n")

	c := catalog.New(nil, catalog.WithDebounce(20*time.Millisecond))
	require.NoError(t, c.Load(path))
	require.Equal(t, 1, c.Len())

	stop := startWatch(t, c, path)
	defer stop()

	writeCatalogFile(t, dir, "labels.yaml", "templates:\n  a: \"one\"\n  b: \"two\"\n")

	require.Eventually(t, func() bool {
		return c.Len() == 2
	}, 3*time.Second, 25*time.Millisecond, "watcher should pick up the new template")

	out, err := c.Render("b", nil)
	require.NoError(t, err)
	assert.Equal(t, "two", out)
}

func TestWatch_KeepsPreviousSetOnBadReload(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalogFile(t, dir, "labels.yaml", "templates:\n  a: \"good\"\n")

	c := catalog.New(nil, catalog.WithDebounce(20*time.Millisecond))
	require.NoError(t, c.Load(path))

	stop := startWatch(t, c, path)
	defer stop()

	writeCatalogFile(t, dir, "labels.yaml", "templates: [\n")
	time.Sleep(300 * time.Millisecond)

	out, err := c.Render("a", nil)
	require.NoError(t, err, "broken reload must keep the previous set")
	assert.Equal(t, "good", out)

	writeCatalogFile(t, dir, "labels.yaml", "templates:\n  a: \"fixed\"\n")

	require.Eventually(t, func() bool {
		got, err := c.Render("a", nil)
		return err == nil && got == "fixed"
	}, 3*time.Second, 25*time.Millisecond, "repaired file should load")
}

func TestWatch_Directory(t *testing.T) {
	dir := t.TempDir()
	writeCatalogFile(t, dir, "base.yaml", "templates:\n  a: \"one\"\n")

	c := catalog.New(nil, catalog.WithDebounce(20*time.Millisecond))
	require.NoError(t, c.LoadDir(dir))
	require.Equal(t, 1, c.Len())

	stop := startWatch(t, c, dir)
	defer stop()

	writeCatalogFile(t, dir, "extra.yaml", "templates:\n  b: \"two\"\n")

	require.Eventually(t, func() bool {
		return c.Len() == 2
	}, 3*time.Second, 25*time.Millisecond, "watcher should reload the directory")
}

func TestWatch_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	writeCatalogFile(t, dir, "base.yaml", "templates:\n  a: \"one\"\n")

	c := catalog.New(nil, catalog.WithDebounce(20*time.Millisecond))
	require.NoError(t, c.LoadDir(dir))

	stop := startWatch(t, c, dir)
	defer stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("scratch"), 0o644))
	time.Sleep(300 * time.Millisecond)

	assert.Equal(t, 1, c.Len(), "non-catalog files should not trigger reloads")
}

func TestWatch_MissingPath(t *testing.T) {
	c := catalog.New(nil)

	err := c.Watch(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
}

func TestWatch_StopsOnContextCancel(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalogFile(t, dir, "labels.yaml", "templates:\n  a: \"one\"\n")

	c := catalog.New(nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- c.Watch(ctx, path)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not return after cancellation")
	}
}
