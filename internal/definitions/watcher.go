package definitions

import (
	"context"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
)

const defaultDebounce = 500 * time.Millisecond

// WatcherConfig holds configuration for a definitions Watcher
type WatcherConfig struct {
	// Dir is the definitions directory to watch
	Dir string

	// Debounce is how long changes are collected before files are parsed
	Debounce time.Duration

	// OnLoad receives the definitions of every created or changed file
	OnLoad func(path string, defs []Definition)

	// OnError receives files that could not be parsed
	OnError func(path string, err error)
}

// Watcher reloads definition files as they are created or written. Removed
// files are ignored: registrations are permanent for the process lifetime.
type Watcher struct {
	dir      string
	debounce time.Duration
	onLoad   func(path string, defs []Definition)
	onError  func(path string, err error)

	watcher *fsnotify.Watcher

	pendingMu sync.Mutex
	pending   map[string]struct{}
}

// NewWatcher creates a watcher on the directory. Run starts delivering.
func NewWatcher(cfg *WatcherConfig) (*Watcher, error) {
	if cfg == nil || cfg.OnLoad == nil {
		panic("definitions watcher requires an OnLoad callback")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to create file watcher")
	}
	if err := fsw.Add(cfg.Dir); err != nil {
		_ = fsw.Close()
		return nil, dnderr.Wrap(err, "failed to watch mutator directory").WithMeta("dir", cfg.Dir)
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	onError := cfg.OnError
	if onError == nil {
		onError = func(path string, err error) {
			log.Printf("DefinitionWatcher: Failed to load %s: %v", path, err)
		}
	}

	return &Watcher{
		dir:      cfg.Dir,
		debounce: debounce,
		onLoad:   cfg.OnLoad,
		onError:  onError,
		watcher:  fsw,
		pending:  make(map[string]struct{}),
	}, nil
}

// Run processes file events until the context is cancelled
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	log.Printf("DefinitionWatcher: Watching %s", w.dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("DefinitionWatcher: Watch error: %v", err)
		case <-ticker.C:
			w.flush()
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !IsDefinitionFile(event.Name) {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	w.pendingMu.Lock()
	w.pending[event.Name] = struct{}{}
	w.pendingMu.Unlock()
}

// flush parses every file that changed since the last tick
func (w *Watcher) flush() {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	paths := make([]string, 0, len(w.pending))
	for path := range w.pending {
		paths = append(paths, path)
	}
	w.pending = make(map[string]struct{})
	w.pendingMu.Unlock()

	for _, path := range paths {
		defs, err := LoadFile(path)
		if err != nil {
			w.onError(path, err)
			continue
		}
		log.Printf("DefinitionWatcher: Loaded %d definitions from %s", len(defs), filepath.Base(path))
		w.onLoad(path, defs)
	}
}
