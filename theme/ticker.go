package theme

import (
	"context"
	"time"
)

// Watcher re-evaluates the theme on an interval and emits a Theme on its
// output channel whenever the selected mode changes. The check interval
// is coarse on purpose: theme bands only move on hour boundaries.
type Watcher struct {
	prefs      Preferences
	interval   time.Duration
	outputChan chan Theme
	now        func() time.Time
}

// NewWatcher creates a watcher for the given preferences that checks
// once a minute.
func NewWatcher(prefs Preferences) *Watcher {
	return &Watcher{
		prefs:      prefs,
		interval:   time.Minute,
		outputChan: make(chan Theme, 1),
		now:        time.Now,
	}
}

// SetInterval changes the check interval.
func (w *Watcher) SetInterval(interval time.Duration) {
	w.interval = interval
}

// OutputChannel returns the channel that emits theme changes. The current
// theme is emitted once at start, then again on every mode transition.
func (w *Watcher) OutputChannel() <-chan Theme {
	return w.outputChan
}

// Start begins watching. The returned function stops the watcher and
// closes the output channel.
func (w *Watcher) Start(ctx context.Context) func() {
	watchCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer close(w.outputChan)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		current := ModeFor(w.now(), w.prefs)
		w.emit(watchCtx, palettes[current])

		for {
			select {
			case <-ticker.C:
				next := ModeFor(w.now(), w.prefs)
				if next == current {
					continue
				}
				current = next
				w.emit(watchCtx, palettes[current])
			case <-watchCtx.Done():
				return
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

func (w *Watcher) emit(ctx context.Context, t Theme) {
	select {
	case w.outputChan <- t:
	case <-ctx.Done():
	}
}
