// Package transport decorates the shared HTTP client with the session layer's
// two middlewares: bearer attachment on the way out and forced invalidation on
// an authentication-rejected response on the way in. Both are installed once
// on the client rather than at call sites, so every request from every view
// goes through them with no exceptions list.
package transport

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jrsteele09/ems-console/router"
	"github.com/jrsteele09/ems-console/session"
)

var (
	_ http.RoundTripper = (*Bearer)(nil)
	_ http.RoundTripper = (*Invalidator)(nil)
)

// Bearer attaches the stored credential to every outbound request. When no
// session exists the request is dispatched unmodified; unauthenticated calls
// to protected endpoints are expected to fail server-side, not to be
// special-cased here. A pure decoration step: no retries, no queuing.
type Bearer struct {
	Store session.Store
	Base  http.RoundTripper
}

func (b *Bearer) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.Header.Set("X-Request-ID", uuid.New().String())

	if sess, err := b.Store.Read(); err == nil && sess != nil {
		out.Header.Set("Authorization", "Bearer "+sess.Credential)
	}
	return b.base().RoundTrip(out)
}

func (b *Bearer) base() http.RoundTripper {
	if b.Base != nil {
		return b.Base
	}
	return http.DefaultTransport
}

// Invalidator is the single point of forced logout. On any 401 response it
// clears the session store and sends the navigator back to the login entry
// point, regardless of which view issued the request: other views hold
// long-lived references to profile data, and only a global hook guarantees
// they all converge once the credential is dead.
//
// A 403 is a different condition - authenticated but forbidden - and passes
// through untouched; denying one action must never cost the whole session.
// Two racing 401s both fire the teardown; clearing an already cleared store
// and re-navigating to login are idempotent, so the second pass is harmless.
type Invalidator struct {
	Store session.Store
	Nav   router.Navigator
	Base  http.RoundTripper
	Log   zerolog.Logger
}

func (iv *Invalidator) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := iv.base().RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		iv.Log.Info().Str("url", req.URL.Path).Msg("credential rejected, invalidating session")
		if clearErr := iv.Store.Clear(); clearErr != nil {
			iv.Log.Error().Err(clearErr).Msg("failed to clear session store")
		}
		iv.Nav.Navigate(router.RouteLogin)
	}
	return resp, nil
}

func (iv *Invalidator) base() http.RoundTripper {
	if iv.Base != nil {
		return iv.Base
	}
	return http.DefaultTransport
}

// NewClient builds the shared HTTP client: bearer attachment innermost,
// invalidation outermost, so the teardown sees exactly what the backend
// answered.
func NewClient(store session.Store, nav router.Navigator, timeout time.Duration, log zerolog.Logger) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &Invalidator{
			Store: store,
			Nav:   nav,
			Log:   log,
			Base:  &Bearer{Store: store},
		},
	}
}
