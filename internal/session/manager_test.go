package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"github.com/letsdodifferent/HCLTech/internal/api"
	"github.com/letsdodifferent/HCLTech/internal/guard"
	"github.com/letsdodifferent/HCLTech/internal/httpclient"
	"github.com/letsdodifferent/HCLTech/internal/model"
	"github.com/letsdodifferent/HCLTech/internal/portaltest"
)

// newTestManager wires a manager the way main does: the HTTP client reads
// the token from the store and the 401 hook clears it and records the
// forced navigation.
func newTestManager(t *testing.T, srv *portaltest.Server) (*Manager, *MemoryStore, *string) {
	store := &MemoryStore{}
	redirect := new(string)

	hc := httpclient.New(srv.URL, 5*time.Second, zaptest.NewLogger(t),
		httpclient.WithTokenFunc(func() string {
			sess, _ := store.Load()
			if sess == nil {
				return ""
			}
			return sess.Token
		}),
		httpclient.WithUnauthorized(func() {
			_ = store.Clear()
			*redirect = guard.RouteLogin
		}),
	)
	client := api.New(hc)
	return NewManager(store, client.Auth, zaptest.NewLogger(t)), store, redirect
}

func TestLoginStoresSession(t *testing.T) {
	srv := portaltest.New(t)
	m, store, _ := newTestManager(t, srv)

	res := m.Login(context.Background(), model.Credentials{Email: portaltest.Email, Password: portaltest.Password})

	assert.True(t, res.OK)
	assert.Equal(t, model.RolePatient, res.User.Role)
	assert.True(t, m.IsPatient())
	assert.False(t, m.IsProvider())

	sess, _ := store.Load()
	assert.Equal(t, portaltest.Token, sess.Token)
}

func TestLoginFailureReturnsServerMessage(t *testing.T) {
	srv := portaltest.New(t)
	m, store, _ := newTestManager(t, srv)

	res := m.Login(context.Background(), model.Credentials{Email: portaltest.Email, Password: "wrong"})

	assert.False(t, res.OK)
	assert.Equal(t, "Invalid email or password", res.Message)

	sess, _ := store.Load()
	assert.Nil(t, sess)
}

func TestRegisterStoresSession(t *testing.T) {
	srv := portaltest.New(t)
	m, _, _ := newTestManager(t, srv)

	res := m.Register(context.Background(), model.Registration{
		Name: "Ravi Kumar", Age: 41, Email: "ravi@example.com", Phone: "9123456789",
		AadharCard: "1111-2222-3333", Password: "secret123", ConfirmPassword: "secret123",
		Role: model.RoleProvider, Consent: true,
	})

	assert.True(t, res.OK)
	assert.Equal(t, "Ravi Kumar", res.User.Name)
	assert.True(t, m.IsProvider())
}

func TestLogoutClearsLocallyEvenWhenNetworkFails(t *testing.T) {
	srv := portaltest.New(t)
	m, store, _ := newTestManager(t, srv)
	_ = store.Save(&model.Session{User: model.User{Role: model.RolePatient}, Token: portaltest.Token})

	srv.Fail("/auth/logout", 500, "backend down")

	err := m.Logout(context.Background())

	assert.NoError(t, err)
	sess, _ := store.Load()
	assert.Nil(t, sess, "session must be cleared regardless of the network outcome")
}

func TestUnauthorizedResponseEmptiesSessionAndRedirects(t *testing.T) {
	srv := portaltest.New(t)
	m, store, redirect := newTestManager(t, srv)
	_ = store.Save(&model.Session{User: model.User{Role: model.RolePatient}, Token: "stale-token"})

	// Any authenticated call with a bad credential triggers the teardown.
	user := m.Restore(context.Background())

	assert.Nil(t, user)
	assert.Nil(t, m.Current())
	assert.Equal(t, guard.RouteLogin, *redirect)
}

func TestCurrentTreatsExpiredJWTAsLoggedOut(t *testing.T) {
	store := &MemoryStore{}
	m := NewManager(store, nil, zaptest.NewLogger(t))

	expiredToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("test-key"))
	assert.NoError(t, err)

	_ = store.Save(&model.Session{User: model.User{ID: "u1", Role: model.RolePatient}, Token: expiredToken})

	assert.Nil(t, m.Current())
	assert.False(t, m.IsPatient())
}

func TestCurrentAcceptsOpaqueToken(t *testing.T) {
	store := &MemoryStore{}
	m := NewManager(store, nil, zaptest.NewLogger(t))
	_ = store.Save(&model.Session{User: model.User{ID: "u1", Role: model.RolePatient}, Token: "opaque-token"})

	u := m.Current()
	assert.NotNil(t, u)
	assert.Equal(t, "u1", u.ID)
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())

	sess, err := store.Load()
	assert.NoError(t, err)
	assert.Nil(t, sess)

	saved := &model.Session{User: model.User{ID: "u1", Name: "Asha Rao"}, Token: "tok"}
	assert.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	assert.NoError(t, err)
	assert.Equal(t, saved, loaded)

	assert.NoError(t, store.Clear())
	loaded, err = store.Load()
	assert.NoError(t, err)
	assert.Nil(t, loaded)

	// Clearing twice is fine.
	assert.NoError(t, store.Clear())
}
