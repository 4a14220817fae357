package router

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/jrsteele09/ems-console/session"
)

// Decision is the guard's verdict on one navigation attempt.
type Decision int

const (
	// DecisionChecking is the transient state while the store is consulted.
	DecisionChecking Decision = iota
	// DecisionAllowed renders the requested view.
	DecisionAllowed
	// DecisionDenied redirects to login, remembering the attempted path.
	DecisionDenied
)

func (d Decision) String() string {
	switch d {
	case DecisionChecking:
		return "checking"
	case DecisionAllowed:
		return "allowed"
	case DecisionDenied:
		return "denied"
	}
	return "unknown"
}

// Guard gates privileged routes on the presence of a session. Every
// navigation attempt re-reads the store - nothing is cached - so a session
// that died between two navigations is caught at the next guarded transition,
// before any network round-trip and before the observer's next tick.
type Guard struct {
	store   session.Store
	nav     Navigator
	pending *PendingDestination
	log     zerolog.Logger
}

func NewGuard(store session.Store, nav Navigator, pending *PendingDestination, log zerolog.Logger) *Guard {
	return &Guard{store: store, nav: nav, pending: pending, log: log}
}

// Check evaluates a navigation attempt to path. When no session exists the
// attempted path is captured as the pending destination and the navigator is
// sent to the login entry point.
func (g *Guard) Check(path string) (Decision, error) {
	sess, err := g.store.Read()
	if err != nil {
		// An unreadable store cannot prove a session; deny and redirect.
		g.deny(path)
		return DecisionDenied, errors.Wrap(err, "[Guard.Check] read session")
	}
	if sess == nil {
		g.deny(path)
		return DecisionDenied, nil
	}
	return DecisionAllowed, nil
}

func (g *Guard) deny(path string) {
	g.pending.Set(path)
	g.log.Debug().Str("path", path).Msg("navigation denied, redirecting to login")
	g.nav.Navigate(RouteLogin)
}
