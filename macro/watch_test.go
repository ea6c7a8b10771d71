package macro

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/softkbd/pkg"
)

// touchUntil rewrites path with data until done receives or the test
// times out. The first writes may land before the watch is in place.
func touchUntil[T any](t *testing.T, path string, data []byte, done <-chan T) T {
	t.Helper()
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	timeout := time.After(5 * time.Second)
	for {
		require.NoError(t, os.WriteFile(path, data, 0o600))
		select {
		case v := <-done:
			return v
		case <-tick.C:
		case <-timeout:
			t.Fatal("timed out waiting for the watcher")
		}
	}
}

func runWatcher(t *testing.T, w *Watcher) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-errc)
	})
}

func TestWatcherReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "macros.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"layers": [{"id": 1, "name": "old", "buttons": {}}]}`), 0o600))

	changed := make(chan *Config, 16)
	runWatcher(t, NewWatcher(path, func(c *Config) { changed <- c }, WithDebounce(10*time.Millisecond)))

	cfg := touchUntil(t, path, []byte(sampleConfig), changed)
	require.Len(t, cfg.Layers, 2)
	assert.Equal(t, "Text", cfg.Layers[0].Name)
}

func TestWatcherInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "macros.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	changed := make(chan *Config, 16)
	failed := make(chan error, 16)
	runWatcher(t, NewWatcher(path,
		func(c *Config) { changed <- c },
		WithDebounce(10*time.Millisecond),
		WithErrorHook(func(err error) { failed <- err })))

	// Writes to other files in the directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{"), 0o600))

	err := touchUntil(t, path, []byte(`{"layers": []}`), failed)
	assert.ErrorIs(t, err, pkg.ErrInvalidConfig)
	assert.Empty(t, changed)
}

func TestWatcherMissingDirectory(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "gone", "macros.json"), nil)
	assert.Error(t, w.Run(context.Background()))
}
