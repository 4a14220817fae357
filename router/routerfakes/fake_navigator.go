package routerfakes

import (
	"sync"

	"github.com/jrsteele09/ems-console/router"
)

var _ router.Navigator = (*FakeNavigator)(nil)

// FakeNavigator records every navigation for assertions.
type FakeNavigator struct {
	mu    sync.Mutex
	paths []string
}

func NewFakeNavigator() *FakeNavigator {
	return &FakeNavigator{}
}

func (n *FakeNavigator) Navigate(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, path)
}

// Current returns the most recent navigation target, or "" when none.
func (n *FakeNavigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.paths) == 0 {
		return ""
	}
	return n.paths[len(n.paths)-1]
}

// History returns a copy of all navigations in order.
func (n *FakeNavigator) History() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.paths...)
}
