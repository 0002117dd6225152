package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, path, sketch string) {
	t.Helper()
	data := []byte("sketch = \"" + sketch + "\"\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func waitForSketch(t *testing.T, w *Watcher, sketch string) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Configs():
			if cfg.Sketch == sketch {
				return
			}
		case <-w.Errors():
		case <-timeout:
			t.Fatalf("no config with sketch %q delivered", sketch)
		}
	}
}

func TestWatcherDeliversReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketch.toml")
	writeConfig(t, path, "triangle")

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	writeConfig(t, path, "cube")
	waitForSketch(t, w, "cube")

	writeConfig(t, path, "circle")
	waitForSketch(t, w, "circle")
}

func TestWatcherReportsInvalidFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketch.toml")
	writeConfig(t, path, "triangle")

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, os.WriteFile(path, []byte("nonsense = true\n"), 0o644))
	select {
	case err := <-w.Errors():
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("no error delivered")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sketch.toml")
	writeConfig(t, path, "triangle")

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Start(context.Background()))

	writeConfig(t, filepath.Join(dir, "other.toml"), "cube")
	select {
	case cfg := <-w.Configs():
		t.Fatalf("unexpected reload of %q", cfg.Sketch)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketch.toml")
	writeConfig(t, path, "triangle")

	w, err := NewWatcher(path)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	cancel()

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	assert.ErrorIs(t, w.Start(context.Background()), ErrWatcherClosed)
}
