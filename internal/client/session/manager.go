// Package session owns the client's authentication state and mediates every
// transition into and out of it: startup bootstrap, login, register, logout
// and the forced expiry escalation coming from the request pipeline.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/contactkeeper/internal/client/api"
	"github.com/dmitrijs2005/contactkeeper/internal/client/models"
	"github.com/dmitrijs2005/contactkeeper/internal/client/token"
	"github.com/dmitrijs2005/contactkeeper/internal/validation"
	"github.com/dmitrijs2005/contactkeeper/internal/logging"
)

// Navigation targets signalled to the Navigator.
const (
	TargetLogin    = "login"
	TargetContacts = "contacts"
)

// Navigator receives navigation intents. Intents fire strictly after the
// session state mutation they depend on, so an observer never sees a
// navigation for a state that is not yet applied.
type Navigator interface {
	Navigate(target string)
}

// Session is the client-visible authentication state.
// Invariant: Authenticated == (User != nil).
type Session struct {
	User          *models.User
	Authenticated bool
	Loading       bool
}

// AuthClient is the slice of the API client the manager needs. Narrowed for
// testability.
type AuthClient interface {
	Login(ctx context.Context, creds models.LoginCredentials) (*models.LoginResponse, error)
	Register(ctx context.Context, creds models.RegisterCredentials) (*models.LoginResponse, error)
	Me(ctx context.Context) (*models.LoginResponse, error)
	Logout(ctx context.Context) error
}

// Manager owns the Session. All methods are safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	api      AuthClient
	tokens   token.Store
	nav      Navigator
	validate *validation.Validator
	log      logging.Logger
	session  Session
}

// NewManager builds a Manager in the initial loading state.
func NewManager(apiClient AuthClient, tokens token.Store, nav Navigator, log logging.Logger) *Manager {
	return &Manager{
		api:      apiClient,
		tokens:   tokens,
		nav:      nav,
		validate: validation.New(),
		log:      log,
		session:  Session{Loading: true},
	}
}

// Session returns a snapshot of the current state.
func (m *Manager) Session() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// Bootstrap resolves the initial session exactly once on startup. With a
// stored credential it probes the identity endpoint; any failure silently
// clears the credential — there simply is no prior session. Loading is
// always left false.
func (m *Manager) Bootstrap(ctx context.Context) {
	defer func() {
		m.mu.Lock()
		m.session.Loading = false
		m.mu.Unlock()
	}()

	if !m.tokens.Present() {
		return
	}

	resp, err := m.api.Me(ctx)
	if err != nil {
		m.log.Debug(ctx, "session bootstrap failed, clearing credential", "error", err)
		_ = m.tokens.Clear()
		m.setUser(nil)
		return
	}
	m.setUser(resp.User)
}

// Login validates the credentials locally, authenticates, persists the
// issued credential and navigates to dest (or the contacts landing view
// when dest is empty). Failures surface one normalized message and leave
// the session unauthenticated.
func (m *Manager) Login(ctx context.Context, creds models.LoginCredentials, dest string) error {
	if err := m.validate.Struct(creds); err != nil {
		return err
	}

	resp, err := m.api.Login(ctx, creds)
	if err != nil {
		return normalizeAuthError(err)
	}

	if err := m.tokens.Save(resp.AccessToken); err != nil {
		return err
	}
	m.setUser(resp.User)

	if dest == "" {
		dest = TargetContacts
	}
	m.nav.Navigate(dest)
	return nil
}

// Register creates an account; on success the contract is identical to
// Login.
func (m *Manager) Register(ctx context.Context, creds models.RegisterCredentials, dest string) error {
	if err := m.validate.Struct(creds); err != nil {
		return err
	}

	resp, err := m.api.Register(ctx, creds)
	if err != nil {
		return normalizeAuthError(err)
	}

	if err := m.tokens.Save(resp.AccessToken); err != nil {
		return err
	}
	m.setUser(resp.User)

	if dest == "" {
		dest = TargetContacts
	}
	m.nav.Navigate(dest)
	return nil
}

// Logout ends the session: the backend notification is best-effort, the
// local teardown is unconditional. Never returns an error — logout is
// always locally effective.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.api.Logout(ctx); err != nil {
		m.log.Warn(ctx, "backend logout notification failed", "error", err)
	}

	_ = m.tokens.Clear()
	m.setUser(nil)
	m.nav.Navigate(TargetLogin)
}

// HandleSessionExpired is the pipeline's escalation hook: the credential is
// already cleared by the pipeline, so only the session state and navigation
// remain.
func (m *Manager) HandleSessionExpired() {
	m.setUser(nil)
	m.nav.Navigate(TargetLogin)
}

// UpdateUser replaces the cached user without touching the credential. Used
// after profile edits.
func (m *Manager) UpdateUser(u *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session.User != nil {
		m.session.User = u
		m.session.Authenticated = u != nil
	}
}

func (m *Manager) setUser(u *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session.User = u
	m.session.Authenticated = u != nil
}

// normalizeAuthError prefers the backend-supplied detail message and falls
// back to a generic one for transport-level failures.
func normalizeAuthError(err error) error {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return errors.New("authentication failed: server unreachable")
}
