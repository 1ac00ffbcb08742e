// Package session holds the signed-in user, the bearer token and the UI
// preferences, and gates routes on them.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"taskboard/internal/api"
	"taskboard/internal/client"
	"taskboard/internal/notify"

	"go.uber.org/zap"
)

const (
	RouteHome  = "/"
	RouteLogin = "/login"
)

var publicRoutes = []string{"/login", "/signup", "/forgot-password"}

const resetRoutePrefix = "/reset-password/"

var ErrNotAuthenticated = errors.New("not logged in")

// API is the part of the REST client the session needs.
type API interface {
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	Register(ctx context.Context, name, email, password string) (*api.AuthResponse, error)
	Me(ctx context.Context) (*api.User, error)
}

type Manager struct {
	mu       sync.RWMutex
	state    State
	store    Store
	api      API
	notifier notify.Notifier
	logger   *zap.Logger
}

// NewManager loads the persisted state. Attach must be called before any
// operation that talks to the server.
func NewManager(store Store, n notify.Notifier, logger *zap.Logger) (*Manager, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	st, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Manager{state: st, store: store, notifier: n, logger: logger}, nil
}

func (m *Manager) Attach(a API) {
	m.mu.Lock()
	m.api = a
	m.mu.Unlock()
}

// Token implements client.TokenSource.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Token
}

func (m *Manager) IsAuthenticated() bool {
	return m.Token() != ""
}

func (m *Manager) User() *User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state.User == nil {
		return nil
	}
	u := *m.state.User
	return &u
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *Manager) update(fn func(*State)) error {
	m.mu.Lock()
	fn(&m.state)
	st := m.state
	m.mu.Unlock()
	return m.store.Save(st)
}

func (m *Manager) setToken(token string) error {
	return m.update(func(s *State) { s.Token = token })
}

func (m *Manager) clearAuth() error {
	return m.update(func(s *State) {
		s.Token = ""
		s.User = nil
	})
}

func (m *Manager) fetchUser(ctx context.Context) (*User, error) {
	me, err := m.api.Me(ctx)
	if err != nil {
		return nil, err
	}
	u := FromAPI(*me)
	if err := m.update(func(s *State) { s.User = &u }); err != nil {
		return nil, err
	}
	return &u, nil
}

func FromAPI(u api.User) User {
	return User{ID: u.ID, Name: u.Name, Email: u.Email, ProfilePicture: u.ProfilePicture}
}

// SetUser replaces the cached profile, e.g. after an avatar upload.
func (m *Manager) SetUser(u api.User) error {
	cached := FromAPI(u)
	return m.update(func(s *State) { s.User = &cached })
}

// Login stores the issued token, loads the profile and returns the home route.
func (m *Manager) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := m.api.Login(ctx, email, password)
	if err == nil {
		err = m.setToken(resp.Token)
	}
	var user *User
	if err == nil {
		user, err = m.fetchUser(ctx)
	}
	if err != nil {
		_ = m.clearAuth()
		msg := err.Error()
		if msg == "" {
			msg = "Login failed. Please check your credentials."
		}
		m.notifier.Error(msg)
		m.logger.Debug("login failed", zap.Error(err))
		return "", err
	}

	name := user.Name
	if name == "" {
		name = "there"
	}
	m.notifier.Success("Welcome back, " + name + "!")
	return RouteHome, nil
}

// Signup registers, stores the issued token and returns the home route.
func (m *Manager) Signup(ctx context.Context, name, email, password string) (string, error) {
	resp, err := m.api.Register(ctx, name, email, password)
	if err == nil {
		err = m.setToken(resp.Token)
	}
	var user *User
	if err == nil {
		user, err = m.fetchUser(ctx)
	}
	if err != nil {
		_ = m.clearAuth()
		m.notifier.Error(signupMessage(err))
		m.logger.Debug("signup failed", zap.Error(err))
		return "", err
	}

	display := user.Name
	if display == "" {
		display = name
	}
	if display == "" {
		display = "there"
	}
	m.notifier.Success("Account created! Welcome, " + display + ".")
	return RouteHome, nil
}

func signupMessage(err error) string {
	msg := err.Error()
	switch {
	case client.StatusOf(err) == 409 || strings.Contains(msg, "already exists") || strings.Contains(msg, "409"):
		return "This email is already registered. Please log in."
	case strings.Contains(msg, "name") || strings.Contains(msg, "required"):
		return "Please enter your full name."
	default:
		return "Registration failed."
	}
}

// Logout forgets the token and the user and returns the login route.
func (m *Manager) Logout() (string, error) {
	if err := m.clearAuth(); err != nil {
		return "", err
	}
	m.notifier.Success("You have been logged out.")
	return RouteLogin, nil
}

// Restore validates a stored token. It returns the login route when the
// token was rejected and "" otherwise.
func (m *Manager) Restore(ctx context.Context) (string, error) {
	if !m.IsAuthenticated() {
		return "", nil
	}
	if _, err := m.fetchUser(ctx); err != nil {
		m.logger.Debug("token validation failed", zap.Error(err))
		if clearErr := m.clearAuth(); clearErr != nil {
			return "", clearErr
		}
		m.notifier.Error("Session expired. Please log in again.")
		return RouteLogin, nil
	}
	return "", nil
}

func IsPublic(route string) bool {
	for _, r := range publicRoutes {
		if route == r {
			return true
		}
	}
	return strings.HasPrefix(route, resetRoutePrefix) && len(route) > len(resetRoutePrefix)
}

// Guard returns route when it may be shown, or the login route.
func (m *Manager) Guard(route string) string {
	if IsPublic(route) || m.IsAuthenticated() {
		return route
	}
	return RouteLogin
}

// RequireAuth is Guard for callers without routes.
func (m *Manager) RequireAuth() error {
	if !m.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	return nil
}

// Theme defaults to dark.
func (m *Manager) Theme() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state.Theme == "" {
		return ThemeDark
	}
	return m.state.Theme
}

func (m *Manager) SetTheme(theme string) error {
	if theme != ThemeDark && theme != ThemeLight {
		return errors.New("theme must be dark or light")
	}
	return m.update(func(s *State) { s.Theme = theme })
}

func (m *Manager) ToggleTheme() (string, error) {
	next := ThemeDark
	if m.Theme() == ThemeDark {
		next = ThemeLight
	}
	return next, m.SetTheme(next)
}

func (m *Manager) ToggleSidebar() (bool, error) {
	var collapsed bool
	err := m.update(func(s *State) {
		s.SidebarCollapsed = !s.SidebarCollapsed
		collapsed = s.SidebarCollapsed
	})
	return collapsed, err
}
