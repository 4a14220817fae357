package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

var _ Store = (*FileStore)(nil)

// FileStore persists the session as a single JSON file under the user's
// config directory. The file survives process restarts and is shared between
// concurrently running commands against the same account, which callers rely
// on.
//
// The username field duplicates Profile.Username so that display-only readers
// can pick it up without deserialising the whole profile record.
type FileStore struct {
	mu   sync.Mutex
	path string
}

type stateRecord struct {
	Credential string   `json:"token"`
	Profile    *Profile `json:"profile,omitempty"`
	Username   string   `json:"username,omitempty"`
}

// DefaultStatePath returns the conventional location of the session file.
func DefaultStatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "[DefaultStatePath] resolve home directory")
	}
	return filepath.Join(home, ".config", "ems-console", "session.json"), nil
}

// NewFileStore creates a store backed by the file at path. The file is
// created on the first Write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Write replaces the session record atomically: the new record is written to
// a temporary file and renamed over the old one, so a reader never observes a
// credential without its profile.
func (fs *FileStore) Write(credential string, profile Profile) error {
	if credential == "" {
		return errors.New("[FileStore.Write] credential is required")
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(fs.path), 0o700); err != nil {
		return errors.Wrap(err, "[FileStore.Write] create state directory")
	}

	b, err := json.MarshalIndent(stateRecord{
		Credential: credential,
		Profile:    &profile,
		Username:   profile.Username,
	}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "[FileStore.Write] encode session record")
	}

	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return errors.Wrap(err, "[FileStore.Write] write session record")
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		return errors.Wrap(err, "[FileStore.Write] replace session record")
	}
	return nil
}

// Read returns the stored session, or nil when none exists. A record missing
// either half of the (credential, profile) pair is treated as no session, so
// the pair invariant holds for every reader.
func (fs *FileStore) Read() (*Session, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	b, err := os.ReadFile(fs.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "[FileStore.Read] read session record")
	}

	var rec stateRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, errors.Wrap(err, "[FileStore.Read] decode session record")
	}
	if rec.Credential == "" || rec.Profile == nil {
		return nil, nil
	}
	return &Session{Credential: rec.Credential, Profile: *rec.Profile}, nil
}

// Clear removes the session record. Clearing twice is a no-op.
func (fs *FileStore) Clear() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := os.Remove(fs.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "[FileStore.Clear] remove session record")
	}
	return nil
}

// Username returns the redundantly stored display username without decoding
// the profile record. Empty when no session exists.
func (fs *FileStore) Username() string {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	b, err := os.ReadFile(fs.path)
	if err != nil {
		return ""
	}
	var rec stateRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return ""
	}
	return rec.Username
}
