package macro

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ardnew/softkbd/pkg"
)

// DefaultDebounce is how long a Watcher waits after the last change before
// reloading.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a macropad configuration file whenever it changes.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func(*Config)
	onError  func(error)
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the quiet period before a reload.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) { w.debounce = d }
}

// WithErrorHook sets a function called with each reload or watch error.
// Errors are logged either way and do not stop the watcher.
func WithErrorHook(fn func(error)) WatcherOption {
	return func(w *Watcher) { w.onError = fn }
}

// NewWatcher creates a Watcher for path. onChange receives every
// configuration that loads and validates.
func NewWatcher(path string, onChange func(*Config), opts ...WatcherOption) *Watcher {
	w := &Watcher{
		path:     path,
		debounce: DefaultDebounce,
		onChange: onChange,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run watches until ctx is done. The file's directory is watched rather
// than the file so editors that replace the file are followed.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}
	pkg.LogInfo(pkg.ComponentMacro, "watching macros", "path", w.path)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			w.reload()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.fail(fmt.Errorf("watch %s: %w", w.path, err))
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.fail(err)
		return
	}
	pkg.LogInfo(pkg.ComponentMacro, "macros reloaded",
		"path", w.path,
		"layers", len(cfg.Layers))
	if w.onChange != nil {
		w.onChange(cfg)
	}
}

func (w *Watcher) fail(err error) {
	pkg.LogWarn(pkg.ComponentMacro, "macro reload failed", "error", err)
	if w.onError != nil {
		w.onError(err)
	}
}
