package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/contactkeeper/internal/client/models"
	"github.com/dmitrijs2005/contactkeeper/internal/client/token"
)

// fakeBackend is a minimal in-process rendition of the REST API, enough to
// exercise the client end to end: tokens are plain strings, "valid" is the
// only accepted one unless rotated.
type fakeBackend struct {
	mux        *http.ServeMux
	validToken string
	refreshOK  bool
	requests   []string
}

func newFakeBackend(t *testing.T) (*fakeBackend, *httptest.Server, *Client, token.Store) {
	t.Helper()
	b := &fakeBackend{mux: http.NewServeMux(), validToken: "valid", refreshOK: true}

	b.mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds models.LoginCredentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Password != "Str0ng!pass" {
			writeDetail(w, http.StatusUnauthorized, "incorrect username or password")
			return
		}
		writeLogin(w, http.StatusOK, b.validToken, creds.Username)
	})
	b.mux.HandleFunc("POST /api/v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		if !b.refreshOK {
			writeDetail(w, http.StatusUnauthorized, "token expired")
			return
		}
		b.validToken = "rotated"
		writeLogin(w, http.StatusOK, b.validToken, "alice")
	})
	b.mux.HandleFunc("GET /api/v1/contacts", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+b.validToken {
			writeDetail(w, http.StatusUnauthorized, "invalid token")
			return
		}
		b.requests = append(b.requests, r.URL.RawQuery)
		_ = json.NewEncoder(w).Encode(models.ContactList{Items: []*models.Contact{{ID: 1, FirstName: "John"}},
			Total: 1, Page: 1, Size: 10, Pages: 1})
	})
	b.mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := httptest.NewServer(b.mux)
	t.Cleanup(srv.Close)

	tokens := token.NewMemoryStore()
	client, err := New(Options{BaseURL: srv.URL + "/api/v1", Tokens: tokens})
	require.NoError(t, err)
	return b, srv, client, tokens
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

func writeLogin(w http.ResponseWriter, status int, tok, username string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.LoginResponse{
		AccessToken: tok,
		TokenType:   "bearer",
		ExpiresIn:   1800,
		User:        &models.User{ID: 1, Username: username, IsActive: true},
	})
}

func TestClient_LoginSuccess(t *testing.T) {
	_, _, client, _ := newFakeBackend(t)

	resp, err := client.Login(context.Background(), models.LoginCredentials{Username: "alice", Password: "Str0ng!pass"})
	require.NoError(t, err)
	assert.Equal(t, "valid", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "alice", resp.User.Username)
}

func TestClient_LoginFailureSurfacesDetail(t *testing.T) {
	_, _, client, _ := newFakeBackend(t)

	_, err := client.Login(context.Background(), models.LoginCredentials{Username: "alice", Password: "wrongpass"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.EqualError(t, err, "incorrect username or password")
}

func TestClient_ListContactsQueryParams(t *testing.T) {
	b, _, client, tokens := newFakeBackend(t)
	require.NoError(t, tokens.Save("valid"))

	fav := true
	list, err := client.ListContacts(context.Background(), ListQuery{Page: 2, Size: 25, Search: "doe", Favorite: &fav})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	require.Len(t, b.requests, 1)
	assert.Equal(t, "favorite=true&page=2&search=doe&size=25", b.requests[0])
}

func TestClient_ExpiredTokenIsRefreshedTransparently(t *testing.T) {
	b, _, client, tokens := newFakeBackend(t)
	require.NoError(t, tokens.Save("expired"))

	list, err := client.ListContacts(context.Background(), ListQuery{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)

	stored, err := tokens.Load()
	require.NoError(t, err)
	assert.Equal(t, "rotated", stored, "refreshed credential persisted")
	_ = b
}

func TestClient_FailedRefreshEndsSession(t *testing.T) {
	b, _, client, tokens := newFakeBackend(t)
	b.refreshOK = false
	require.NoError(t, tokens.Save("expired"))

	navigated := false
	client.SetSessionExpiredHandler(func() { navigated = true })

	_, err := client.ListContacts(context.Background(), ListQuery{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.True(t, navigated)
	assert.False(t, tokens.Present())
}

func TestClient_Ping(t *testing.T) {
	_, _, client, _ := newFakeBackend(t)
	assert.NoError(t, client.Ping(context.Background()))

	down, err := New(Options{BaseURL: "http://127.0.0.1:1/api/v1", Tokens: token.NewMemoryStore()})
	require.NoError(t, err)
	assert.ErrorIs(t, down.Ping(context.Background()), ErrUnavailable)
}
