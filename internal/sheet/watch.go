package sheet

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Debounce is how long a sheet file must be quiet after a change before it
// is reported. Image editors often truncate and then write.
const Debounce = 100 * time.Millisecond

// Watcher notices changes to one sheet file. Events are collected on a
// goroutine; Changed is polled from the frame loop.
type Watcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	log      zerolog.Logger
	done     chan struct{}

	mu    sync.Mutex
	dirty bool
	last  time.Time
}

// NewWatcher watches the directory holding path so that replace-by-rename
// saves are seen as well as in-place writes. If debounce is negative,
// Debounce is used.
func NewWatcher(path string, debounce time.Duration, log zerolog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	err = fw.Add(filepath.Dir(abs))
	if err != nil {
		fw.Close()
		return nil, err
	}
	if debounce < 0 {
		debounce = Debounce
	}
	w := &Watcher{
		path:     abs,
		debounce: debounce,
		watcher:  fw,
		log:      log.With().Str("component", "sheet.watcher").Logger(),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.log.Debug().Str("op", ev.Op.String()).Str("path", ev.Name).Msg("sheet changed")
			w.mu.Lock()
			w.dirty = true
			w.last = time.Now()
			w.mu.Unlock()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("watch error")
		}
	}
}

// Changed reports, at most once per burst of events, whether the sheet file
// changed and has been quiet for the debounce period by now.
func (w *Watcher) Changed(now time.Time) bool {
	if w == nil {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.dirty || now.Sub(w.last) < w.debounce {
		return false
	}
	w.dirty = false
	return true
}

// Close stops watching.
func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}
	err := w.watcher.Close()
	<-w.done
	return err
}
