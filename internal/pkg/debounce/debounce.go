package debounce

import (
	"context"
	"sync"
	"time"

	"storefront-service/internal/pkg/clock"
	"storefront-service/internal/pkg/errors"
)

// ErrSuperseded is returned to a caller whose pending call was replaced by
// a newer one for the same key.
var ErrSuperseded = errors.Superseded("superseded by a newer request")

type call struct {
	timer      clock.Timer
	fire       chan struct{}
	superseded chan struct{}
}

// Debouncer delays calls per key; only the last call made within the
// delay window actually runs.
type Debouncer struct {
	clock clock.Clock
	delay time.Duration

	mu      sync.Mutex
	pending map[string]*call
}

func New(c clock.Clock, delay time.Duration) *Debouncer {
	return &Debouncer{
		clock:   c,
		delay:   delay,
		pending: make(map[string]*call),
	}
}

// Do waits for the debounce delay and then runs fn, unless another Do for
// the same key arrives first, in which case it returns ErrSuperseded.
func (d *Debouncer) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if d.delay <= 0 {
		return fn(ctx)
	}

	c := &call{
		fire:       make(chan struct{}),
		superseded: make(chan struct{}),
	}

	d.mu.Lock()
	if prev, ok := d.pending[key]; ok {
		// a timer that already fired keeps running; only a stopped one is superseded
		if prev.timer.Stop() {
			close(prev.superseded)
		}
	}
	d.pending[key] = c
	c.timer = d.clock.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.pending[key] == c {
			delete(d.pending, key)
		}
		d.mu.Unlock()
		close(c.fire)
	})
	d.mu.Unlock()

	select {
	case <-c.fire:
		return fn(ctx)
	case <-c.superseded:
		return ErrSuperseded
	case <-ctx.Done():
		d.mu.Lock()
		if c.timer.Stop() && d.pending[key] == c {
			delete(d.pending, key)
		}
		d.mu.Unlock()
		return ctx.Err()
	}
}

// Pending reports how many keys have a call waiting.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}
