// Package watch reruns the build whenever the input file changes, so
// the report tracks a spreadsheet being edited live. Spreadsheet
// editors save by writing a temp file and renaming it over the
// original, which replaces the watched inode; the watcher therefore
// sits on the input's directory and filters events by file name.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cryback/amglabor/internal/app"
	"github.com/cryback/amglabor/internal/config"
	"github.com/cryback/amglabor/internal/logger"
)

// debounceWindow coalesces the event bursts editors emit per save.
const debounceWindow = 300 * time.Millisecond

// Run builds once, then rebuilds on every change to the input file
// until ctx is canceled. In watch mode every build failure, including
// the fatal-class ones, only logs: the point is to keep watching while
// the sheet is mid-edit and temporarily broken.
func Run(ctx context.Context, cfg *config.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(cfg.Build.Input)
	if dir == "" {
		dir = "."
	}
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	target := filepath.Base(cfg.Build.Input)
	logger.Infof("watching %s for changes to %s", dir, target)

	build(cfg)

	debounce := time.NewTimer(debounceWindow)
	if !debounce.Stop() {
		<-debounce.C
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			debounce.Reset(debounceWindow)
		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			return fmt.Errorf("watcher failed: %w", err)
		case <-debounce.C:
			logger.Infof("%s changed, rebuilding", target)
			build(cfg)
		}
	}
}

func build(cfg *config.Config) {
	if err := app.Run(cfg); err != nil {
		logger.Errorf("build failed: %v", err)
	}
}
