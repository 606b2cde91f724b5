package prefabs

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Change names a spec or script file that changed on disk. Name is relative
// to the watched directory, slash separated (e.g. "kobold.yaml" or
// "scripts/kobold.tengo").
type Change struct {
	Name   string
	Script bool
}

// Watcher reports edits to the prefab directory so specs and brain scripts can
// be reloaded while the game runs.
type Watcher struct {
	watcher *fsnotify.Watcher
	root    string
	Events  chan Change
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches dir and its scripts subdirectory when present.
func NewWatcher(dir string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("prefabs: watch %s: %w", dir, err)
	}

	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("prefabs: watch %s: %w", dir, err)
	}
	// scripts/ is optional on disk; the embedded copies fill in.
	_ = w.Add(filepath.Join(dir, "scripts"))

	watcher := &Watcher{
		watcher: w,
		root:    dir,
		Events:  make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Drain returns every change queued so far without blocking.
func (w *Watcher) Drain() []Change {
	var out []Change
	for {
		select {
		case c := <-w.Events:
			if !containsChange(out, c) {
				out = append(out, c)
			}
		default:
			return out
		}
	}
}

// run reports a file once no further event for it has arrived within
// reloadDebounce, so a save made of several writes is read after the last one.
func (w *Watcher) run() {
	timer := time.NewTimer(reloadDebounce)
	timer.Stop()
	defer timer.Stop()

	pending := make(map[string]Change)
	var fire <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			change, ok := w.classify(event.Name)
			if !ok {
				continue
			}
			pending[change.Name] = change
			timer.Reset(reloadDebounce)
			fire = timer.C
		case <-fire:
			fire = nil
			for _, name := range slices.Sorted(maps.Keys(pending)) {
				select {
				case w.Events <- pending[name]:
				case <-w.closeCh:
					return
				}
			}
			clear(pending)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) classify(path string) (Change, bool) {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	rel = filepath.ToSlash(rel)
	switch {
	case isSpecFile(rel):
		return Change{Name: rel}, true
	case isScriptFile(rel):
		return Change{Name: rel, Script: true}, true
	}
	return Change{}, false
}

func containsChange(list []Change, c Change) bool {
	for _, x := range list {
		if x == c {
			return true
		}
	}
	return false
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
