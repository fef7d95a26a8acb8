package faqsource

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yanqian/hr-assistant/internal/domain/faq"
	apperrors "github.com/yanqian/hr-assistant/pkg/errors"
)

// Reloader swaps in a new corpus.
type Reloader interface {
	Reload(entries []faq.Entry) error
}

// Watcher rebuilds the index when the FAQ CSV changes on disk.
// Events are debounced so editors that write in several steps trigger one reload.
type Watcher struct {
	source   *FileSource
	target   Reloader
	watcher  *fsnotify.Watcher
	debounce time.Duration
	logger   *slog.Logger

	mu       sync.Mutex
	timer    *time.Timer
	stopChan chan struct{}
	done     chan struct{}
}

// NewWatcher creates a watcher for source feeding target.
func NewWatcher(source *FileSource, target Reloader, logger *slog.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		source:   source,
		target:   target,
		watcher:  w,
		debounce: 300 * time.Millisecond,
		logger:   logger.With("component", "faqsource.watcher"),
	}, nil
}

// Start begins watching. The parent directory is watched because editors often replace the file.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.source.Path())
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.stopChan = make(chan struct{})
	w.done = make(chan struct{})
	go w.loop()
	w.logger.Info("faq watcher started", "path", w.source.Path())
	return nil
}

// Stop halts the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	if w.stopChan != nil {
		close(w.stopChan)
		<-w.done
	}
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	_ = w.watcher.Close()
	w.logger.Info("faq watcher stopped")
}

func (w *Watcher) loop() {
	defer close(w.done)
	target := filepath.Clean(w.source.Path())
	for {
		select {
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.schedule()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("faq watcher error", "error", err)
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	entries, err := w.source.Load(ctx)
	if err != nil {
		w.logger.Error("faq reload failed, keeping current index", "code", apperrors.CodeOf(err), "error", err)
		return
	}
	if err := w.target.Reload(entries); err != nil {
		w.logger.Error("faq index rebuild failed, keeping current index", "error", err)
		return
	}
	w.logger.Info("faq corpus reloaded", "entries", len(entries))
}
