package router_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/ems-console/router"
	"github.com/jrsteele09/ems-console/router/routerfakes"
	"github.com/jrsteele09/ems-console/session"
	"github.com/jrsteele09/ems-console/session/storefakes"
)

type guardFixture struct {
	store   *storefakes.FakeStore
	nav     *routerfakes.FakeNavigator
	pending *router.PendingDestination
	guard   *router.Guard
}

func newGuardFixture(t *testing.T) *guardFixture {
	t.Helper()
	store := storefakes.NewFakeStore()
	nav := routerfakes.NewFakeNavigator()
	pending := router.NewPendingDestination()
	return &guardFixture{
		store:   store,
		nav:     nav,
		pending: pending,
		guard:   router.NewGuard(store, nav, pending, zerolog.Nop()),
	}
}

func TestGuardDeniesWithoutSession(t *testing.T) {
	f := newGuardFixture(t)

	decision, err := f.guard.Check(router.RouteAddEmployee)
	require.NoError(t, err)
	require.Equal(t, router.DecisionDenied, decision)
	require.Equal(t, router.RouteLogin, f.nav.Current())

	dest, ok := f.pending.Consume()
	require.True(t, ok)
	require.Equal(t, router.RouteAddEmployee, dest)
}

func TestGuardAllowsWithSession(t *testing.T) {
	f := newGuardFixture(t)
	require.NoError(t, f.store.Write("t1", session.Profile{Username: "alice", Roles: []string{"HR"}}))

	decision, err := f.guard.Check(router.RouteEmployees)
	require.NoError(t, err)
	require.Equal(t, router.DecisionAllowed, decision)
	require.Empty(t, f.nav.History())

	_, ok := f.pending.Consume()
	require.False(t, ok)
}

func TestGuardReevaluatesEveryNavigation(t *testing.T) {
	f := newGuardFixture(t)
	require.NoError(t, f.store.Write("t1", session.Profile{Username: "alice", Roles: []string{"HR"}}))

	decision, err := f.guard.Check(router.RouteEmployees)
	require.NoError(t, err)
	require.Equal(t, router.DecisionAllowed, decision)

	// The session dies between two navigations; the very next guarded
	// transition must catch it without waiting for any poll tick.
	require.NoError(t, f.store.Clear())

	decision, err = f.guard.Check(router.RouteDepartments)
	require.NoError(t, err)
	require.Equal(t, router.DecisionDenied, decision)
	require.Equal(t, router.RouteLogin, f.nav.Current())
}

func TestPendingDestinationConsumedOnce(t *testing.T) {
	pending := router.NewPendingDestination()
	pending.Set(router.RouteAddEmployee)

	dest, ok := pending.Consume()
	require.True(t, ok)
	require.Equal(t, router.RouteAddEmployee, dest)

	_, ok = pending.Consume()
	require.False(t, ok)
}

func TestPendingDestinationLastSetWins(t *testing.T) {
	pending := router.NewPendingDestination()
	pending.Set(router.RouteEmployees)
	pending.Set(router.RouteAuditLogs)

	dest, ok := pending.Consume()
	require.True(t, ok)
	require.Equal(t, router.RouteAuditLogs, dest)
}
