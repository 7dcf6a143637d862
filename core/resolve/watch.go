package resolve

import (
	"context"
	"log"

	"github.com/fsnotify/fsnotify"
)

// Watcher invalidates a Resolver when entries are added to, removed from or
// renamed inside a search path directory.
type Watcher struct {
	resolver *Resolver
	watcher  *fsnotify.Watcher
	logger   *log.Logger

	// watched is only touched by Sync, the caller serializes Sync calls.
	watched map[string]bool
}

// NewWatcher creates a watcher for the resolver's search path. Call Sync to
// pick up the current directories and Run to start processing events.
func NewWatcher(resolver *Resolver, logger *log.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		resolver: resolver,
		watcher:  fsw,
		logger:   logger,
		watched:  make(map[string]bool),
	}, nil
}

// Sync makes the watched set match the current search path. Directories that
// can't be watched are skipped the same way lookups skip them.
func (w *Watcher) Sync() {
	dirs, _ := w.resolver.SearchPath().Refresh()

	want := make(map[string]bool)
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		dir = w.resolver.Scanner().Abs(dir)
		if want[dir] {
			continue
		}
		want[dir] = true

		if w.watched[dir] {
			continue
		}
		if err := w.watcher.Add(dir); err != nil {
			w.logger.Printf("not watching %q: %v", dir, err)
			continue
		}
		w.watched[dir] = true
	}

	for dir := range w.watched {
		if want[dir] {
			continue
		}
		// The directory may already be gone, that's fine.
		_ = w.watcher.Remove(dir)
		delete(w.watched, dir)
	}
}

// Run processes events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				w.resolver.Invalidate()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Printf("watch error: %v", err)
		}
	}
}

// Close stops watching all directories.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
