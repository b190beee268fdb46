// ABOUTME: Session manager owning credential decode, expiry, and the auth protocol
// ABOUTME: The only writer of the credential store; views consume its state

package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campus-companion/cli/internal/client"
	"github.com/campus-companion/cli/internal/credstore"
	"github.com/campus-companion/cli/internal/notify"
)

// State is the session lifecycle state.
type State int

const (
	// StateUnknown holds until Resolve has read the credential store.
	StateUnknown State = iota
	StateUnauthenticated
	StateAuthenticated
)

// Identity is the decoded, read-only projection of the credential's claims.
type Identity struct {
	ID    string
	Name  string
	Email string
}

// claims is the credential's embedded claim set.
type claims struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Manager owns session state. All access is single-threaded (one TUI loop or
// one command invocation), so no locking is needed.
type Manager struct {
	store    *credstore.Store
	api      *client.Client
	state    State
	identity Identity

	now func() time.Time
}

// NewManager creates a manager in the Unknown state. Call Resolve before
// rendering anything protected.
func NewManager(store *credstore.Store, api *client.Client) *Manager {
	return &Manager{
		store: store,
		api:   api,
		now:   time.Now,
	}
}

// Resolve reads the stored credential and settles the session state. A
// malformed or expired credential is cleared silently; that is a routine
// transition, not a fault.
func (m *Manager) Resolve() {
	token, ok := m.store.Get()
	if !ok {
		m.setUnauthenticated()
		return
	}

	identity, expiry, err := decode(token)
	if err != nil {
		slog.Debug("stored credential rejected", "error", err)
		m.store.Clear()
		m.setUnauthenticated()
		return
	}
	if !expiry.After(m.now()) {
		slog.Debug("stored credential expired", "expiry", expiry)
		m.store.Clear()
		m.setUnauthenticated()
		return
	}

	m.state = StateAuthenticated
	m.identity = identity
}

// State returns the current session state.
func (m *Manager) State() State { return m.state }

// Authenticated reports whether a valid, unexpired credential is held.
func (m *Manager) Authenticated() bool { return m.state == StateAuthenticated }

// Identity returns the decoded claims while authenticated.
func (m *Manager) Identity() (Identity, bool) {
	if m.state != StateAuthenticated {
		return Identity{}, false
	}
	return m.identity, true
}

// Login performs the credential exchange. All failures are converted to a
// false result plus one error signal; nothing is thrown past this boundary.
func (m *Manager) Login(ctx context.Context, email, password string) (bool, notify.Signal) {
	token, err := m.api.Login(ctx, email, password)
	if err != nil {
		m.setUnauthenticated()
		return false, notify.FromError(err, "An error occurred during login. Please try again.")
	}

	identity, expiry, err := decode(token)
	if err != nil || !expiry.After(m.now()) {
		slog.Debug("issued credential rejected", "error", err)
		m.setUnauthenticated()
		return false, notify.Error("An error occurred during login. Please try again.")
	}

	if err := m.store.Set(token); err != nil {
		m.setUnauthenticated()
		return false, notify.Error("Could not save your session. Please try again.")
	}

	m.state = StateAuthenticated
	m.identity = identity
	return true, notify.Success("Login successful!")
}

// Register creates an account. It never authenticates the caller;
// registration is followed by a separate login.
func (m *Manager) Register(ctx context.Context, input client.RegisterInput) (bool, notify.Signal) {
	if err := m.api.Register(ctx, input); err != nil {
		return false, notify.FromError(err, "Registration failed. Please try again.")
	}
	return true, notify.Success("Registration successful! Please login.")
}

// Logout clears the credential. It never fails.
func (m *Manager) Logout() notify.Signal {
	if err := m.store.Clear(); err != nil {
		slog.Debug("clearing credential failed", "error", err)
	}
	m.setUnauthenticated()
	return notify.Success("Logged out successfully!")
}

func (m *Manager) setUnauthenticated() {
	m.state = StateUnauthenticated
	m.identity = Identity{}
}

// decode parses the credential without signature verification (the signing
// secret lives server-side) and validates the claim shape. A token with any
// missing or mistyped claim is never trusted as an identity.
func decode(token string) (Identity, time.Time, error) {
	var c claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &c); err != nil {
		return Identity{}, time.Time{}, err
	}
	if c.ID == "" || c.Name == "" || c.Email == "" {
		return Identity{}, time.Time{}, fmt.Errorf("credential missing identity claims")
	}
	if c.ExpiresAt == nil {
		return Identity{}, time.Time{}, fmt.Errorf("credential missing expiry")
	}
	return Identity{ID: c.ID, Name: c.Name, Email: c.Email}, c.ExpiresAt.Time, nil
}
