package main

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/jrsteele09/ems-console/router"
)

var _ router.Navigator = (*consoleNavigator)(nil)

// consoleNavigator is the shell's router.Navigator: a route change is logged
// and remembered so the command that triggered it can tell the user where the
// session layer sent them.
type consoleNavigator struct {
	mu      sync.Mutex
	current string
	log     zerolog.Logger
}

func newConsoleNavigator(log zerolog.Logger) *consoleNavigator {
	return &consoleNavigator{log: log}
}

func (n *consoleNavigator) Navigate(path string) {
	n.mu.Lock()
	n.current = path
	n.mu.Unlock()
	n.log.Debug().Str("path", path).Msg("navigate")
}

func (n *consoleNavigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}
