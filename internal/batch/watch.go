package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zigmaq/congreso-etl/internal/pipeline"
)

const debounceDelay = 500 * time.Millisecond

// Watch runs an initial batch over root and then reprocesses individual
// datasets when their sheet files change. Create and write events are
// debounced per dataset so a burst of writes triggers one run. Watch
// returns when ctx is cancelled.
func (r *Runner) Watch(ctx context.Context, root string) error {
	if _, err := r.Run(ctx, root); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("input watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(root); err != nil {
		return fmt.Errorf("input watcher add %s: %w", root, err)
	}
	datasets, err := FindDatasets(root)
	if err != nil {
		return err
	}
	for _, ds := range datasets {
		if err := w.Add(ds.Dir); err != nil {
			return fmt.Errorf("input watcher add %s: %w", ds.Dir, err)
		}
	}
	slog.Info("watching for changes", "root", root, "datasets", len(datasets))

	pending := make(map[string]*time.Timer)
	fire := make(chan string)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
	}()

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			dir, name := r.datasetFor(root, ev.Name)
			if name == "" {
				// A fresh directory under the root may become a dataset
				// once its sheets arrive; watch it so those writes are
				// seen. Everything else (outputs, lock files) is ignored.
				base := filepath.Base(ev.Name)
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() &&
					filepath.Dir(ev.Name) == root && !ignoredName(base) && !watched(w, ev.Name) {
					if err := w.Add(ev.Name); err != nil {
						slog.Warn("cannot watch new directory", "dir", ev.Name, "error", err)
					}
				}
				continue
			}
			if !watched(w, dir) {
				if err := w.Add(dir); err != nil {
					slog.Warn("cannot watch new dataset", "dir", dir, "error", err)
					continue
				}
			}
			if t, ok := pending[name]; ok {
				t.Stop()
			}
			ds := name
			pending[name] = time.AfterFunc(debounceDelay, func() {
				select {
				case fire <- ds:
				case <-ctx.Done():
				}
			})

		case name := <-fire:
			delete(pending, name)
			ds := pipeline.Dataset{Name: name, Dir: filepath.Join(root, name)}
			slog.Info("change detected, reprocessing", "dataset", name)
			start := time.Now()
			if _, err := r.pipe.Run(ctx, ds); err != nil {
				slog.Error("dataset failed", "dataset", name, "error", err)
				continue
			}
			elapsed := time.Since(start)
			slog.Info("dataset reprocessed", "dataset", name, "duration", elapsed)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", "error", err)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// datasetFor maps an event path to the dataset it belongs to. Events on the
// root itself, on ignored names, or on paths that do not resolve to a
// dataset directory (a directory holding a career sheet) return an empty
// dataset name. The last check keeps the pipeline's own outputs, written
// into the root when output_dir equals the input root, from being scheduled
// as datasets.
func (r *Runner) datasetFor(root, path string) (dir, name string) {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", ""
	}
	name = rel
	if i := strings.IndexByte(rel, filepath.Separator); i >= 0 {
		name = rel[:i]
	}
	if ignoredName(name) {
		return "", ""
	}
	dir = filepath.Join(root, name)
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return "", ""
	}
	if _, err := os.Stat(filepath.Join(dir, pipeline.CareerFile)); err != nil {
		return "", ""
	}
	return dir, name
}

func watched(w *fsnotify.Watcher, dir string) bool {
	for _, p := range w.WatchList() {
		if p == dir {
			return true
		}
	}
	return false
}
