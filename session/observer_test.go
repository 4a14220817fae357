package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/ems-console/session"
	"github.com/jrsteele09/ems-console/session/storefakes"
)

const testPollInterval = 10 * time.Millisecond

// signalRecorder collects the observer's published states.
type signalRecorder struct {
	mu     sync.Mutex
	states []bool
}

func (r *signalRecorder) record(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, active)
}

func (r *signalRecorder) last() (bool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.states) == 0 {
		return false, false
	}
	return r.states[len(r.states)-1], true
}

func TestObserverSubscribeDeliversCurrentState(t *testing.T) {
	store := storefakes.NewFakeStore()
	require.NoError(t, store.Write("t1", session.Profile{Username: "alice", Roles: []string{"HR"}}))

	observer := session.NewObserver(store, testPollInterval, zerolog.Nop())

	rec := &signalRecorder{}
	observer.Subscribe(rec.record)

	state, ok := rec.last()
	require.True(t, ok)
	require.True(t, state)
}

func TestObserverConvergesAfterClear(t *testing.T) {
	store := storefakes.NewFakeStore()
	require.NoError(t, store.Write("t1", session.Profile{Username: "alice", Roles: []string{"HR"}}))

	observer := session.NewObserver(store, testPollInterval, zerolog.Nop())

	rec := &signalRecorder{}
	observer.Subscribe(rec.record)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	observer.Start(ctx)

	require.NoError(t, store.Clear())

	// The published signal must flip to inactive within one poll interval;
	// allow generous slack for the scheduler.
	require.Eventually(t, func() bool {
		state, ok := rec.last()
		return ok && !state
	}, 50*testPollInterval, testPollInterval/2)
}

func TestObserverNotifiesEverySubscriber(t *testing.T) {
	store := storefakes.NewFakeStore()
	observer := session.NewObserver(store, testPollInterval, zerolog.Nop())

	recorders := []*signalRecorder{{}, {}, {}}
	for _, rec := range recorders {
		observer.Subscribe(rec.record)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	observer.Start(ctx)

	require.NoError(t, store.Write("t1", session.Profile{Username: "alice", Roles: []string{"HR"}}))

	for _, rec := range recorders {
		rec := rec
		require.Eventually(t, func() bool {
			state, ok := rec.last()
			return ok && state
		}, 50*testPollInterval, testPollInterval/2)
	}
}

func TestObserverActiveReflectsStore(t *testing.T) {
	store := storefakes.NewFakeStore()
	observer := session.NewObserver(store, testPollInterval, zerolog.Nop())

	require.False(t, observer.Active())

	require.NoError(t, store.Write("t1", session.Profile{Username: "alice", Roles: []string{"HR"}}))
	require.True(t, observer.Active())
}
