// Package watch reloads the content file when it changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/zhaoyu-io/folio/internal/content"
	"go.uber.org/zap"
)

// ReloadFunc is told about every successful reload.
type ReloadFunc func(c *content.Content, version uint64)

// ContentWatcher watches the directory holding the content file so that
// editors which save by rename are still noticed. A burst of events is
// collapsed into one reload once the file has been quiet for the throttle.
type ContentWatcher struct {
	path     string
	store    *content.Store
	throttle time.Duration
	onReload ReloadFunc
	log      *zap.Logger
	watcher  *fsnotify.Watcher
}

func New(path string, store *content.Store, throttle time.Duration, onReload ReloadFunc, log *zap.Logger) (*ContentWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ContentWatcher{
		path:     abs,
		store:    store,
		throttle: throttle,
		onReload: onReload,
		log:      log,
		watcher:  w,
	}, nil
}

// Run processes events until ctx is done. It always returns nil after
// cancellation so it can sit in an errgroup next to the HTTP server.
func (cw *ContentWatcher) Run(ctx context.Context) error {
	defer cw.watcher.Close()

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-cw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != cw.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			cw.log.Debug("content changed", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
			timer.Reset(cw.throttle)

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return nil
			}
			cw.log.Warn("content watcher error", zap.Error(err))

		case <-timer.C:
			cw.reload()
		}
	}
}

// reload keeps the previous content when the new file does not parse.
func (cw *ContentWatcher) reload() {
	c, err := content.Load(cw.path)
	if err != nil {
		cw.log.Warn("content reload failed, keeping previous version", zap.String("path", cw.path), zap.Error(err))
		return
	}
	version := cw.store.Set(c)
	cw.log.Info("content reloaded", zap.String("path", cw.path), zap.Uint64("version", version))
	if cw.onReload != nil {
		cw.onReload(c, version)
	}
}
