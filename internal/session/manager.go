package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/letsdodifferent/HCLTech/internal/apperror"
	"github.com/letsdodifferent/HCLTech/internal/model"
)

// AuthService is the slice of the API facade the manager needs.
type AuthService interface {
	Register(ctx context.Context, data model.Registration) (*model.Session, error)
	Login(ctx context.Context, creds model.Credentials) (*model.Session, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*model.User, error)
}

// Result is what login and register resolve to. They never surface a
// transport error directly; failures carry the server-provided message.
type Result struct {
	OK      bool
	User    model.User
	Message string
}

// Manager owns the process-wide session state. It is mutated only by
// Login, Register, Logout and the HTTP wrapper's 401 teardown (via Clear).
type Manager struct {
	store Store
	auth  AuthService
	log   *zap.Logger
}

// NewManager wires the manager over its credential store and auth API.
func NewManager(store Store, auth AuthService, log *zap.Logger) *Manager {
	return &Manager{store: store, auth: auth, log: log}
}

// Register creates an account and opens a session on success.
func (m *Manager) Register(ctx context.Context, data model.Registration) Result {
	sess, err := m.auth.Register(ctx, data)
	if err != nil {
		return Result{Message: apperror.UserMessage(err)}
	}
	if err := m.store.Save(sess); err != nil {
		m.log.Error("failed to persist session", zap.Error(err))
		return Result{Message: "Could not save your session. Please try again."}
	}
	return Result{OK: true, User: sess.User}
}

// Login opens a session on success.
func (m *Manager) Login(ctx context.Context, creds model.Credentials) Result {
	sess, err := m.auth.Login(ctx, creds)
	if err != nil {
		return Result{Message: apperror.UserMessage(err)}
	}
	if err := m.store.Save(sess); err != nil {
		m.log.Error("failed to persist session", zap.Error(err))
		return Result{Message: "Could not save your session. Please try again."}
	}
	return Result{OK: true, User: sess.User}
}

// Logout tells the backend, then clears locally no matter what the network
// said.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.auth.Logout(ctx); err != nil {
		m.log.Warn("logout request failed, clearing local session anyway", zap.Error(err))
	}
	return m.store.Clear()
}

// Restore refreshes the stored identity from the backend when a credential
// exists. A 401 during the call tears the session down through the HTTP
// wrapper, so a nil return simply means "not authenticated".
func (m *Manager) Restore(ctx context.Context) *model.User {
	if m.Token() == "" {
		return nil
	}
	user, err := m.auth.Me(ctx)
	if err != nil {
		return nil
	}
	if sess, _ := m.store.Load(); sess != nil {
		sess.User = *user
		_ = m.store.Save(sess)
	}
	return user
}

// Current returns the stored identity, or nil when there is no live session.
func (m *Manager) Current() *model.User {
	sess, err := m.store.Load()
	if err != nil || sess == nil {
		return nil
	}
	if expired(sess.Token) {
		return nil
	}
	u := sess.User
	return &u
}

// Token returns the stored credential for the bearer middleware.
func (m *Manager) Token() string {
	sess, err := m.store.Load()
	if err != nil || sess == nil {
		return ""
	}
	return sess.Token
}

// Clear drops the session; this is the 401 handler's entry point.
func (m *Manager) Clear() {
	_ = m.store.Clear()
}

// IsPatient reports whether the current session belongs to a patient.
func (m *Manager) IsPatient() bool {
	u := m.Current()
	return u != nil && u.Role == model.RolePatient
}

// IsProvider reports whether the current session belongs to a provider.
func (m *Manager) IsProvider() bool {
	u := m.Current()
	return u != nil && u.Role == model.RoleProvider
}

// expired peeks at the JWT exp claim without verifying the signature; only
// the server can truly validate the token, but a locally expired one is
// treated as "no session" to save a doomed round trip. Opaque tokens pass.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
