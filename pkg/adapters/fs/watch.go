package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/notepad/pkg/core"
)

// Watch reports changes to the note document made by other processes.
// Writes performed through this repository, and events that leave the
// content unchanged, are not reported. The channel closes when ctx ends.
func (r *Repository) Watch(ctx context.Context) (<-chan core.FileChanged, error) {
	target, err := r.absPath()
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	// Editors often replace files by rename, so watch the directory.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	// Take a baseline so the first event is compared against what is on
	// disk now rather than against nothing.
	if _, err := r.observe(); err != nil {
		r.config.Logger.Debug("watch baseline failed", "error", err)
	}

	out := make(chan core.FileChanged)
	r.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(out)
		defer r.setWatcherActive(false)
		defer watcher.Close()
		return r.watchLoop(ctx, watcher, target, out)
	}, lifecycle.WithErrorHandler(func(err error) {
		r.config.Logger.Error("watcher stopped", "error", err)
	}))

	return out, nil
}

func (r *Repository) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, target string, out chan<- core.FileChanged) error {
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || (event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write)) {
				continue
			}
			r.config.Logger.Debug("note file event", "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(r.config.Debounce)
			} else {
				timer.Reset(r.config.Debounce)
			}
			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.config.Logger.Error("fsnotify error", "error", err)

		case <-fire:
			fire = nil
			changed, err := r.observe()
			if err != nil {
				r.config.Logger.Warn("failed to inspect note file", "error", err)
				continue
			}
			if !changed {
				continue
			}
			select {
			case out <- core.FileChanged{Path: r.Path}:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
