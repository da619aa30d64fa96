package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-runs the pipeline when markdown files under root change. Bursts
// of events are merged: the run starts once no event arrived for
// mergeEventsDelay.
type Watcher struct {
	log              *slog.Logger
	root             string
	ignore           []string
	mergeEventsDelay time.Duration
	run              func() error
}

func NewWatcher(log *slog.Logger, cfg *Config, run func() error) *Watcher {
	return &Watcher{
		log:              log,
		root:             cfg.InputDir,
		ignore:           []string{cfg.OutputDir, cfg.AnalysisDir},
		mergeEventsDelay: time.Duration(cfg.MergeEventsMs) * time.Millisecond,
		run:              run,
	}
}

// Watch subscribes to the directory tree and processes events in the
// background until ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err = w.addTree(fw, w.root); err != nil {
		fw.Close()
		return err
	}

	go w.loop(ctx, fw)
	return nil
}

func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher) {
	defer fw.Close()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if w.ignored(ev.Name) {
				continue
			}

			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err = w.addTree(fw, ev.Name); err != nil {
						w.log.Error("failed to watch new directory", "path", ev.Name, "error", err)
					}
					pending = time.After(w.mergeEventsDelay)
					continue
				}
			}

			if filepath.Ext(ev.Name) != ".md" {
				continue
			}

			w.log.Debug("document changed", "path", ev.Name, "op", ev.Op.String())
			pending = time.After(w.mergeEventsDelay)

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.log.Error("watch error", "error", err)

		case <-pending:
			pending = nil
			if err := w.run(); err != nil {
				w.log.Error("analysis run failed", "error", err)
			}
		}
	}
}

func (w *Watcher) addTree(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if w.ignored(path) {
			return filepath.SkipDir
		}

		if err = fw.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}

		return nil
	})
}

// ignored reports whether path lies inside one of the generated directories.
func (w *Watcher) ignored(path string) bool {
	for _, dir := range w.ignore {
		if dir != "" && isWithin(path, dir) {
			return true
		}
	}

	return false
}
