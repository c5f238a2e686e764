package storage

import (
	"context"
	"time"

	"github.com/framepeach/framepeach/internal/logging"
)

// Autosaver persists the project snapshot on a fixed interval and shortly
// after any scene mutation (debounced). A failed save is logged and the
// loop keeps running; persistence is never fatal to the editor.
type Autosaver struct {
	interval time.Duration
	debounce time.Duration
	snapshot func() *Snapshot
	project  *ProjectStore
	logger   logging.Logger
	changes  chan struct{}
}

// NewAutosaver wires an autosaver. snapshot is called on the autosaver's
// goroutine to capture the current editor state.
func NewAutosaver(interval, debounce time.Duration, snapshot func() *Snapshot, project *ProjectStore, logger logging.Logger) *Autosaver {
	return &Autosaver{
		interval: interval,
		debounce: debounce,
		snapshot: snapshot,
		project:  project,
		logger:   logger,
		changes:  make(chan struct{}, 1),
	}
}

// NotifyChange schedules a debounced save. Safe to call from any handler;
// a pending notification coalesces repeated calls.
func (a *Autosaver) NotifyChange() {
	select {
	case a.changes <- struct{}{}:
	default:
	}
}

// Run blocks until ctx is cancelled, saving on the interval ticker and
// a debounce delay after each change notification. A final save runs on
// shutdown.
func (a *Autosaver) Run(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	debounce := time.NewTimer(a.debounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-a.changes:
			debounce.Reset(a.debounce)

		case <-debounce.C:
			a.save(ctx)

		case <-ticker.C:
			a.save(ctx)

		case <-ctx.Done():
			a.save(context.WithoutCancel(ctx))
			return
		}
	}
}

func (a *Autosaver) save(ctx context.Context) {
	if err := a.project.Save(ctx, a.snapshot()); err != nil {
		a.logger.Warn(ctx, "autosave failed", "error", err)
	}
}
