// Package watcher provides recursive filesystem watching with debouncing,
// used by the watch mode to trigger summary regeneration.
package watcher

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// IgnoreChecker is used by the watcher to skip excluded paths. Paths are
// relative to the watched root with forward slashes.
type IgnoreChecker interface {
	Excluded(relativePath string, isDir bool) bool
	ExcludedDir(relativePath string) bool
}

// Watcher provides recursive file system watching with debouncing.
type Watcher struct {
	fsWatcher     *fsnotify.Watcher
	debouncer     *Debouncer
	ignoreChecker IgnoreChecker
	rootDir       string
	logger        *slog.Logger
}

// NewWatcher creates a recursive file watcher on the given root directory,
// registering every non-excluded subdirectory.
func NewWatcher(rootDir string, ignoreChecker IgnoreChecker, logger *slog.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher:     fsWatcher,
		debouncer:     NewDebouncer(100 * time.Millisecond),
		ignoreChecker: ignoreChecker,
		rootDir:       rootDir,
		logger:        logger,
	}

	err = filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip entries that can't be read
		}
		if !d.IsDir() {
			return nil
		}
		if path != rootDir && ignoreChecker.ExcludedDir(w.relative(path)) {
			return filepath.SkipDir
		}
		if watchErr := fsWatcher.Add(path); watchErr != nil {
			w.logger.Warn("failed to watch directory", "path", path, "error", watchErr)
		}
		return nil
	})
	if err != nil {
		fsWatcher.Close()
		return nil, err
	}

	return w, nil
}

// Events returns the channel that receives debounced file system events.
func (w *Watcher) Events() <-chan []DebouncedEvent {
	return w.debouncer.Output()
}

// Start begins listening for file system events. Call this in a goroutine;
// it runs until the watcher is closed.
func (w *Watcher) Start() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

// handleEvent converts a single fsnotify event into a debounced event.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name
	relPath := w.relative(path)

	// A newly created directory joins the watch set instead of emitting
	if event.Has(fsnotify.Create) {
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			if !w.ignoreChecker.ExcludedDir(relPath) {
				if err := w.fsWatcher.Add(path); err != nil {
					w.logger.Warn("failed to watch new directory", "path", path, "error", err)
				}
			}
			return
		}
	}

	if w.ignoreChecker.Excluded(relPath, false) {
		return
	}

	var op EventOp
	switch {
	case event.Has(fsnotify.Create):
		op = OpCreate
	case event.Has(fsnotify.Write):
		op = OpWrite
	case event.Has(fsnotify.Remove):
		op = OpRemove
	case event.Has(fsnotify.Rename):
		op = OpRename
	default:
		return
	}

	w.debouncer.Add(relPath, op)
}

// relative converts an absolute event path to a root-relative slash path.
func (w *Watcher) relative(path string) string {
	relPath, err := filepath.Rel(w.rootDir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(relPath)
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}
