package transport_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/ems-console/router"
	"github.com/jrsteele09/ems-console/router/routerfakes"
	"github.com/jrsteele09/ems-console/session"
	"github.com/jrsteele09/ems-console/session/storefakes"
	"github.com/jrsteele09/ems-console/transport"
)

func loggedInStore(t *testing.T, credential string) *storefakes.FakeStore {
	t.Helper()
	store := storefakes.NewFakeStore()
	require.NoError(t, store.Write(credential, session.Profile{
		UserID:   "7",
		Username: "alice",
		Roles:    []string{"HR"},
	}))
	return store
}

func TestBearerAttachesStoredCredential(t *testing.T) {
	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
	}))
	defer server.Close()

	client := &http.Client{Transport: &transport.Bearer{Store: loggedInStore(t, "t1")}}
	resp, err := client.Get(server.URL + "/api/employees")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, "Bearer t1", gotAuth)
	require.NotEmpty(t, gotRequestID)
}

func TestBearerLeavesRequestUnmodifiedWithoutSession(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer server.Close()

	client := &http.Client{Transport: &transport.Bearer{Store: storefakes.NewFakeStore()}}
	resp, err := client.Get(server.URL + "/api/employees")
	require.NoError(t, err)
	defer resp.Body.Close()

	// Dispatched unmodified; the backend decides what an unauthenticated
	// request is worth.
	require.Empty(t, gotAuth)
}

func TestInvalidatorTearsDownSessionOn401(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	store := loggedInStore(t, "t1")
	nav := routerfakes.NewFakeNavigator()
	client := transport.NewClient(store, nav, 5*time.Second, zerolog.Nop())

	resp, err := client.Get(server.URL + "/api/employees")
	require.NoError(t, err)
	defer resp.Body.Close()

	sess, err := store.Read()
	require.NoError(t, err)
	require.Nil(t, sess)
	require.Equal(t, router.RouteLogin, nav.Current())
}

func TestInvalidatorIsIdempotentAcrossRacing401s(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	store := loggedInStore(t, "t1")
	nav := routerfakes.NewFakeNavigator()
	client := transport.NewClient(store, nav, 5*time.Second, zerolog.Nop())

	// Two responses carrying 401 - the second teardown must leave the system
	// exactly where the first did.
	for i := 0; i < 2; i++ {
		resp, err := client.Get(server.URL + "/api/employees")
		require.NoError(t, err)
		resp.Body.Close()
	}

	sess, err := store.Read()
	require.NoError(t, err)
	require.Nil(t, sess)
	require.Equal(t, router.RouteLogin, nav.Current())
}

func TestInvalidatorLeaves403Alone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	store := loggedInStore(t, "t1")
	nav := routerfakes.NewFakeNavigator()
	client := transport.NewClient(store, nav, 5*time.Second, zerolog.Nop())

	resp, err := client.Get(server.URL + "/api/admin/users")
	require.NoError(t, err)
	defer resp.Body.Close()

	// Forbidden is a local denial: the session survives and nobody is
	// redirected.
	sess, err := store.Read()
	require.NoError(t, err)
	require.NotNil(t, sess)
	require.Equal(t, "t1", sess.Credential)
	require.Empty(t, nav.History())
}

func TestClientChainAttachesThenInspects(t *testing.T) {
	var requests int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		if r.Header.Get("Authorization") != "Bearer t1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	store := loggedInStore(t, "t1")
	nav := routerfakes.NewFakeNavigator()
	client := transport.NewClient(store, nav, 5*time.Second, zerolog.Nop())

	resp, err := client.Get(server.URL + "/api/employees")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.EqualValues(t, 1, atomic.LoadInt64(&requests))
	require.Empty(t, nav.History())
}
