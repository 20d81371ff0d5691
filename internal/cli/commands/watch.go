package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/kant/libmusicxml/internal/cli/output"
)

// watchFiles re-renders an input after it changes, until ctx is done. The
// parent directories are watched and events filtered to the inputs.
func watchFiles(ctx context.Context, cmdCtx *CommandContext, files []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	inputs := make(map[string]string, len(files)) // cleaned absolute path -> argument
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		inputs[abs] = f
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	watchLoop(ctx, cmdCtx, watcher, inputs)
	return nil
}

// watchLoop handles file system events.
func watchLoop(ctx context.Context, cmdCtx *CommandContext, watcher *fsnotify.Watcher, inputs map[string]string) {
	reporter := &watchReporter{r: cmdCtx.Renderer}
	debounce := cmdCtx.Cfg.WatchDebounce

	var mu sync.Mutex
	timers := make(map[string]*time.Timer)
	defer func() {
		mu.Lock()
		defer mu.Unlock()
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			// Only handle write/create events for watched inputs
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			file, ok := inputs[abs]
			if !ok {
				continue
			}

			// Debounce per file
			mu.Lock()
			if t := timers[abs]; t != nil {
				t.Stop()
			}
			timers[abs] = time.AfterFunc(debounce, func() {
				runID := uuid.NewString()
				logger := cmdCtx.Logger.With("run_id", runID)
				res, err := renderOne(cmdCtx, logger, file, false)
				reporter.report(res, err)
			})
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			cmdCtx.Logger.Warn("watcher error", "error", err)
		}
	}
}

// watchReporter serializes the reports of re-renders, which run on their
// own timer goroutines.
type watchReporter struct {
	mu sync.Mutex
	r  *output.Renderer
}

func (w *watchReporter) report(res renderResult, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.r.Error(err.Error())
		return
	}
	w.r.Success(fmt.Sprintf("%s → %s", res.input, w.r.Styles().Path.Render(res.output)))
}
