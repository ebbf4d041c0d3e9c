package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	sdui "github.com/jbriggs-source/PestGenie-sub002"
)

// reloadEvent is one hot-reload outcome: a freshly decoded screen, or the
// error that keeps the previous screen on display.
type reloadEvent struct {
	screen *sdui.Screen
	err    error
}

// schemaWatcher re-decodes a schema document whenever it changes on disk.
// It watches the containing directory rather than the file itself because
// editors save by rename, which drops per-file watches.
type schemaWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	log     *zap.Logger
	events  chan reloadEvent
	pending map[string]time.Time
	settle  time.Duration
}

func newSchemaWatcher(path string, log *zap.Logger) (*schemaWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}
	return &schemaWatcher{
		watcher: watcher,
		path:    abs,
		log:     log,
		events:  make(chan reloadEvent, 1),
		pending: make(map[string]time.Time),
		settle:  250 * time.Millisecond,
	}, nil
}

// Events delivers reload outcomes. The channel closes when Run returns.
func (w *schemaWatcher) Events() <-chan reloadEvent { return w.events }

// Run is the watch loop. It blocks until the context is cancelled and owns
// the watcher's lifetime: when it returns, the fsnotify goroutines are gone
// and the events channel is closed.
func (w *schemaWatcher) Run(ctx context.Context) error {
	defer close(w.events)
	defer w.watcher.Close()

	// Rapid saves collapse: events are batched until they settle.
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Error("schema watch error", zap.Error(err))

		case <-ticker.C:
			w.flushSettled()
		}
	}
}

func (w *schemaWatcher) handleEvent(event fsnotify.Event) {
	if event.Name != w.path {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return
	}
	w.log.Debug("schema changed", zap.String("op", event.Op.String()))
	w.pending[event.Name] = time.Now()
}

// flushSettled reloads every document whose events have settled past the
// debounce window.
func (w *schemaWatcher) flushSettled() {
	now := time.Now()
	for path, at := range w.pending {
		if now.Sub(at) < w.settle {
			continue
		}
		delete(w.pending, path)
		w.reload(path)
	}
}

// reload re-decodes the document and delivers the outcome. Decode failures
// are delivered as errors so the host can show them while the previous
// screen stays up.
func (w *schemaWatcher) reload(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Mid-rename gap; the create event that follows carries the
			// real reload.
			return
		}
		w.deliver(reloadEvent{err: err})
		return
	}
	screen, err := sdui.DecodeScreen(data)
	if err != nil {
		w.log.Warn("schema reload failed, keeping previous screen", zap.Error(err))
		w.deliver(reloadEvent{err: err})
		return
	}
	w.log.Info("schema reloaded", zap.Int("version", screen.Version))
	w.deliver(reloadEvent{screen: screen})
}

// deliver hands off the latest outcome without ever blocking the watch
// loop: an undelivered stale outcome is dropped in favor of the new one.
// Run is the only sender, so after the drain the buffered send cannot block.
func (w *schemaWatcher) deliver(ev reloadEvent) {
	select {
	case <-w.events:
	default:
	}
	w.events <- ev
}
