package session

// Store is the single source of truth for the current session. There is no
// in-memory cache alongside it: every reader goes to the durable record, so
// independently running views always observe the same state.
//
// Writers replace the whole record; there are no partial-field updates.
type Store interface {
	// Write persists the credential and profile as one record.
	Write(credential string, profile Profile) error

	// Read returns the current session, or nil when no session exists.
	Read() (*Session, error)

	// Clear removes the session record. Clearing an absent session is not an
	// error.
	Clear() error
}
