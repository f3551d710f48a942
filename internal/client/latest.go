package client

import (
	"context"
	"errors"
	"sync"
)

// ErrStale is returned by Latest.Do when a newer call superseded this one
// before it completed.
var ErrStale = errors.New("response superseded by a newer request")

// Latest runs fetches where only the most recent result may be applied,
// such as reloading a list after each filter change. Starting a call
// cancels the previous one in flight, and a result that arrives after a
// newer call started is discarded with ErrStale.
//
// The zero value is ready to use.
type Latest[T any] struct {
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// Do runs fetch with a context that is cancelled when the next Do starts.
func (l *Latest[T]) Do(ctx context.Context, fetch func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.seq++
	token := l.seq
	l.cancel = cancel
	l.mu.Unlock()

	v, err := fetch(ctx)

	l.mu.Lock()
	current := token == l.seq
	if current {
		l.cancel = nil
	}
	l.mu.Unlock()

	if !current {
		var zero T
		return zero, ErrStale
	}
	return v, err
}
