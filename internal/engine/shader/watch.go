package shader

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ErrSourceFS is returned when watching a library that reads from an fs.FS.
var ErrSourceFS = errors.New("shader: cannot watch a library reading from an fs.FS")

// Watcher reports programs whose stage files change on disk.
// It never touches GL state, so it can run on any goroutine.
type Watcher struct {
	fsw *fsnotify.Watcher
	lib *Library
	log ErrorLogger
}

// NewWatcher watches the directories of every stage file in lib. Stage paths
// must be OS paths, and definitions must not be added while watching.
func NewWatcher(lib *Library) (*Watcher, error) {
	if lib.fsys != nil {
		return nil, ErrSourceFS
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	dirs := make(map[string]bool)
	for _, name := range lib.Names() {
		def, _ := lib.Definition(name)
		for _, f := range def.Sources.Files() {
			dirs[filepath.Dir(filepath.Clean(f))] = true
		}
	}

	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	return &Watcher{fsw: fsw, lib: lib, log: lib.log}, nil
}

// Run sends the name of every affected program to changed until ctx is
// done or the watcher is closed. Watch errors are logged and skipped.
func (w *Watcher) Run(ctx context.Context, changed chan<- string) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			for _, name := range w.lib.ProgramsFor(event.Name) {
				select {
				case changed <- name:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.LogError("watch: " + err.Error())
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
