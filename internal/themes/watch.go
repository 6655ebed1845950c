package themes

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"pkt.systems/pslog"
)

// WatchDebounce coalesces bursts of events (a cp -r emits one per file)
const WatchDebounce = 250 * time.Millisecond

// Watch calls onChange once per burst of filesystem events under any existing
// root until ctx is done. Roots that do not exist are ignored; it returns an
// error only if no watcher could be created at all.
func Watch(ctx context.Context, roots []string, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	log := pslog.Ctx(ctx)
	watched := 0
	for _, root := range roots {
		if _, err := os.Stat(root); err != nil {
			continue
		}
		if err := w.Add(root); err != nil {
			log.Debug("cannot watch theme root", "root", root, "err", err)
			continue
		}
		watched++
	}
	if watched == 0 {
		w.Close()
		return fmt.Errorf("no theme root could be watched")
	}

	go func() {
		defer w.Close()
		var timer *time.Timer
		var fire <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				log.Debug("theme root changed", "path", ev.Name, "op", ev.Op.String())
				if timer == nil {
					timer = time.NewTimer(WatchDebounce)
				} else {
					timer.Reset(WatchDebounce)
				}
				fire = timer.C
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("theme watcher error", "err", err)
			case <-fire:
				fire = nil
				onChange()
			}
		}
	}()
	return nil
}
