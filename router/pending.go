package router

import "sync"

// PendingDestination remembers the route a user was trying to reach when the
// guard turned them away, so a successful login can resume there. The value
// is consumed exactly once; it is deliberately not persisted, matching a
// redirect state that does not survive a reload.
type PendingDestination struct {
	mu   sync.Mutex
	path string
	set  bool
}

func NewPendingDestination() *PendingDestination {
	return &PendingDestination{}
}

// Set records path as the destination to resume after login, replacing any
// previously remembered one.
func (p *PendingDestination) Set(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.path = path
	p.set = true
}

// Consume returns the remembered destination and forgets it. ok is false when
// nothing was remembered.
func (p *PendingDestination) Consume() (path string, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	path, ok = p.path, p.set
	p.path, p.set = "", false
	return path, ok
}
