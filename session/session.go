// Package session holds the client's view of "currently logged in as": an
// opaque bearer credential paired with the profile the authenticator returned
// for it. The credential is never inspected locally - its validity is decided
// entirely by the remote service.
package session

// Profile describes the authenticated user as reported by the authenticator.
type Profile struct {
	UserID   string   `json:"userId"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// Session pairs the bearer credential with its profile. The two are written
// and cleared together; no state exists where one is present without the
// other.
type Session struct {
	Credential string
	Profile    Profile
}

// HasRole reports whether the profile's role set contains name. An empty role
// set simply means no privileged capabilities.
func (p Profile) HasRole(name string) bool {
	for _, r := range p.Roles {
		if r == name {
			return true
		}
	}
	return false
}
