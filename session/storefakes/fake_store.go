package storefakes

import (
	"sync"

	"github.com/jrsteele09/ems-console/session"
)

var _ session.Store = (*FakeStore)(nil)

// FakeStore is an in-memory session.Store for tests.
type FakeStore struct {
	mu      sync.RWMutex
	current *session.Session

	WriteErr error
	ReadErr  error
	ClearErr error
}

func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

func (fs *FakeStore) Write(credential string, profile session.Profile) error {
	if fs.WriteErr != nil {
		return fs.WriteErr
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.current = &session.Session{Credential: credential, Profile: profile}
	return nil
}

func (fs *FakeStore) Read() (*session.Session, error) {
	if fs.ReadErr != nil {
		return nil, fs.ReadErr
	}
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	if fs.current == nil {
		return nil, nil
	}
	copied := *fs.current
	return &copied, nil
}

func (fs *FakeStore) Clear() error {
	if fs.ClearErr != nil {
		return fs.ClearErr
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.current = nil
	return nil
}
