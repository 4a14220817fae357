// Package login orchestrates credential submission to the remote
// authenticator: on success it populates the session store and resumes the
// remembered destination, on failure it classifies the condition for the
// login screen. The store is left untouched on every failure path.
package login

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/jrsteele09/ems-console/router"
	"github.com/jrsteele09/ems-console/session"
)

// Flow drives the authentication exchanges against the remote service.
//
// A submission in flight does not lock out another; if two race, the store
// reflects whichever write lands last. The UI only shows one login form at a
// time, so the race is practically unreachable rather than designed away.
type Flow struct {
	baseURL    string
	store      session.Store
	nav        router.Navigator
	pending    *router.PendingDestination
	httpClient *http.Client
	log        zerolog.Logger
}

// NewFlow wires the flow. httpClient must not carry the session-invalidating
// transport: a rejected submission is this package's to classify, and it
// leaves any live session and the navigator alone.
func NewFlow(
	baseURL string,
	store session.Store,
	nav router.Navigator,
	pending *router.PendingDestination,
	httpClient *http.Client,
	log zerolog.Logger,
) (*Flow, error) {
	if baseURL == "" {
		return nil, errors.New("[NewFlow] baseURL is required")
	}
	if store == nil {
		return nil, errors.New("[NewFlow] session store is required")
	}
	if nav == nil {
		return nil, errors.New("[NewFlow] navigator is required")
	}
	if pending == nil {
		return nil, errors.New("[NewFlow] pending destination is required")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Flow{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		store:      store,
		nav:        nav,
		pending:    pending,
		httpClient: httpClient,
		log:        log,
	}, nil
}

type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token    string      `json:"token"`
	Username string      `json:"username"`
	UserID   json.Number `json:"userId"`
	Roles    []string    `json:"roles"`
}

// Submit exchanges the credentials for a session. On success the store is
// populated atomically and navigation resumes at the pending destination, or
// the dashboard when none was remembered. On failure the error is one of
// ErrInvalidCredentials, ErrAccessDenied or ErrServiceUnavailable, carrying
// the backend's message when it sent one.
func (f *Flow) Submit(ctx context.Context, username, password string) (*session.Session, error) {
	status, body, err := f.postJSON(ctx, "/authenticate", authRequest{Username: username, Password: password})
	if err != nil {
		return nil, errors.Wrap(ErrServiceUnavailable, err.Error())
	}

	if status < 200 || status >= 300 {
		msg := responseMessage(body, status)
		f.log.Info().Int("status", status).Str("username", username).Msg("authentication rejected")
		switch status {
		case http.StatusUnauthorized:
			return nil, errors.Wrap(ErrInvalidCredentials, msg)
		case http.StatusForbidden:
			return nil, errors.Wrap(ErrAccessDenied, msg)
		default:
			return nil, errors.Wrap(ErrServiceUnavailable, msg)
		}
	}

	var resp authResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(ErrServiceUnavailable, "malformed authentication response")
	}
	if resp.Token == "" {
		return nil, errors.Wrap(ErrServiceUnavailable, "authentication response missing token")
	}

	profile := session.Profile{
		UserID:   resp.UserID.String(),
		Username: resp.Username,
		Roles:    resp.Roles,
	}
	if profile.Username == "" {
		profile.Username = username
	}
	if err := f.store.Write(resp.Token, profile); err != nil {
		return nil, errors.Wrap(err, "[Flow.Submit] persist session")
	}

	dest, ok := f.pending.Consume()
	if !ok {
		dest = router.RouteDashboard
	}
	f.log.Info().Str("username", profile.Username).Str("destination", dest).Msg("login successful")
	f.nav.Navigate(dest)

	return &session.Session{Credential: resp.Token, Profile: profile}, nil
}

// Logout clears the session and returns to the login entry point. Explicit
// logout and forced invalidation share the same teardown.
func (f *Flow) Logout() error {
	if err := f.store.Clear(); err != nil {
		return errors.Wrap(err, "[Flow.Logout] clear session")
	}
	f.log.Info().Msg("logged out")
	f.nav.Navigate(router.RouteLogin)
	return nil
}

func (f *Flow) postJSON(ctx context.Context, path string, payload any) (int, []byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, errors.Wrap(err, "encode request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return 0, nil, errors.Wrap(err, "read response")
	}
	return resp.StatusCode, body, nil
}

func (f *Flow) getText(ctx context.Context, path string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path, nil)
	if err != nil {
		return 0, nil, err
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return 0, nil, errors.Wrap(err, "read response")
	}
	return resp.StatusCode, body, nil
}

// responseMessage pulls a human-readable message out of a failure body: a
// JSON {message} envelope when present, the raw body otherwise, the status
// text as a last resort.
func responseMessage(body []byte, status int) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	if msg := strings.TrimSpace(string(body)); msg != "" {
		return msg
	}
	return http.StatusText(status)
}
