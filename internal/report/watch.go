package report

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"targetrack/internal/client"
)

const clearScreen = "\033[H\033[2J"

// Watcher reloads the dashboard on a fixed interval and redraws it on Out.
type Watcher struct {
	Load     func(ctx context.Context) (*Dashboard, error)
	Out      io.Writer
	Interval time.Duration
	// OnError receives load and render failures from Run. Nil drops them.
	OnError func(error)

	latest  client.Latest[*Dashboard]
	started atomic.Uint64

	mu    sync.Mutex
	shown uint64
}

// Refresh loads one dashboard and draws it. Superseded loads are dropped
// silently, and a refresh never draws over one that started after it.
func (w *Watcher) Refresh(ctx context.Context) error {
	n := w.started.Add(1)

	d, err := w.latest.Do(ctx, w.Load)
	switch {
	case errors.Is(err, client.ErrStale), errors.Is(err, context.Canceled):
		return nil
	case err != nil:
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if n < w.shown {
		return nil
	}
	w.shown = n

	if _, err := io.WriteString(w.Out, clearScreen); err != nil {
		return err
	}
	return Render(w.Out, d)
}

// Run refreshes immediately and then on every tick until ctx is done. A
// refresh still loading when the next tick fires is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	refresh := func() {
		if err := w.Refresh(ctx); err != nil && w.OnError != nil {
			w.OnError(err)
		}
	}

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	go refresh()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			go refresh()
		}
	}
}
