package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultPollInterval bounds how stale a view's "logged in" affordance can be
// after the session changes underneath it.
const DefaultPollInterval = 2 * time.Second

// Observer re-derives "is a session currently active" from the Store on a
// fixed interval and publishes the answer to subscribers. Views that take no
// part in login or logout converge on the current session state within one
// interval of any change, including a clear performed by another execution
// context mid-request.
//
// Polling is deliberate: the durable store has no change notification visible
// to every reader, and a bounded, documented staleness window is acceptable.
// Each tick is one cheap read; the observer never blocks on its subscribers'
// behalf beyond running their callbacks.
type Observer struct {
	store    Store
	interval time.Duration
	log      zerolog.Logger

	mu     sync.Mutex
	subs   []func(active bool)
	active bool
	primed bool
}

// NewObserver creates an observer polling store every interval. A zero or
// negative interval falls back to DefaultPollInterval.
func NewObserver(store Store, interval time.Duration, log zerolog.Logger) *Observer {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Observer{store: store, interval: interval, log: log}
}

// Subscribe registers fn and immediately invokes it with the current state so
// a late subscriber does not wait a full interval for its first signal.
func (o *Observer) Subscribe(fn func(active bool)) {
	current := o.readActive()

	o.mu.Lock()
	o.subs = append(o.subs, fn)
	o.mu.Unlock()

	fn(current)
}

// Active returns the most recently published state, falling back to a direct
// read before the first tick.
func (o *Observer) Active() bool {
	o.mu.Lock()
	primed, active := o.primed, o.active
	o.mu.Unlock()
	if primed {
		return active
	}
	return o.readActive()
}

// Start polls until ctx is cancelled. The first tick runs immediately.
func (o *Observer) Start(ctx context.Context) {
	go func() {
		o.tick()
		ticker := time.NewTicker(o.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				o.tick()
			}
		}
	}()
}

func (o *Observer) tick() {
	active := o.readActive()

	o.mu.Lock()
	changed := !o.primed || active != o.active
	o.active = active
	o.primed = true
	var subs []func(bool)
	if changed {
		subs = append(subs, o.subs...)
	}
	o.mu.Unlock()

	if !changed {
		return
	}
	o.log.Debug().Bool("active", active).Msg("session state changed")
	for _, fn := range subs {
		fn(active)
	}
}

func (o *Observer) readActive() bool {
	sess, err := o.store.Read()
	if err != nil {
		// A transient read failure is not a logout; keep the last answer.
		o.log.Warn().Err(err).Msg("session poll failed")
		o.mu.Lock()
		defer o.mu.Unlock()
		return o.active
	}
	return sess != nil
}
