package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loungeshop/storefront/internal/api"
	"github.com/loungeshop/storefront/internal/models"
	"github.com/loungeshop/storefront/internal/state"
)

type fakeGateway struct {
	resp *api.AuthResponse
	err  error

	registerCalls int
	loginCalls    int
}

func (f *fakeGateway) Register(ctx context.Context, username, email, password string) (*api.AuthResponse, error) {
	f.registerCalls++
	return f.resp, f.err
}

func (f *fakeGateway) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	f.loginCalls++
	return f.resp, f.err
}

func okResponse(role string) *api.AuthResponse {
	return &api.AuthResponse{
		User:  models.User{ID: "u1", Username: "ada", Email: "ada@example.com", Role: role},
		Token: "token-abc",
	}
}

func TestLogin_SetsStateAndPersists(t *testing.T) {
	t.Parallel()

	mem := state.NewMemory()
	s, err := New(mem)
	require.NoError(t, err)
	s.Gateway = &fakeGateway{resp: okResponse(models.RoleUser)}

	resp, err := s.Login(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "ada", resp.User.Username)

	assert.Equal(t, "token-abc", s.Token())
	require.NotNil(t, s.Current())
	assert.Equal(t, "ada", s.Current().Username)
	assert.True(t, s.Authenticated())

	saved, err := mem.LoadSession()
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "token-abc", saved.Token)
	assert.Equal(t, "u1", saved.User.ID)
}

func TestRegister_SetsStateAndPersists(t *testing.T) {
	t.Parallel()

	mem := state.NewMemory()
	s, err := New(mem)
	require.NoError(t, err)
	gw := &fakeGateway{resp: okResponse(models.RoleUser)}
	s.Gateway = gw

	_, err = s.Register(context.Background(), "ada", "ada@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, 1, gw.registerCalls)
	assert.True(t, s.Authenticated())
}

func TestLogin_FailureLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	mem := state.NewMemory()
	s, err := New(mem)
	require.NoError(t, err)
	s.Gateway = &fakeGateway{err: &api.Error{Status: 401, Message: "invalid credentials"}}

	resp, err := s.Login(context.Background(), "ada@example.com", "wrong")
	require.Error(t, err)
	assert.Nil(t, resp)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid credentials", apiErr.Message)

	assert.False(t, s.Authenticated())
	assert.Nil(t, s.Current())

	saved, err := mem.LoadSession()
	require.NoError(t, err)
	assert.Nil(t, saved)
}

func TestLogout_ClearsStateAndStorage(t *testing.T) {
	t.Parallel()

	mem := state.NewMemory()
	s, err := New(mem)
	require.NoError(t, err)
	s.Gateway = &fakeGateway{resp: okResponse(models.RoleAdmin)}
	_, err = s.Login(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)

	s.Logout()

	assert.Empty(t, s.Token())
	assert.Nil(t, s.Current())
	assert.False(t, s.Authenticated())

	saved, err := mem.LoadSession()
	require.NoError(t, err)
	assert.Nil(t, saved)
}

func TestNew_RehydratesPersistedSession(t *testing.T) {
	t.Parallel()

	mem := state.NewMemory()
	require.NoError(t, mem.SaveSession(&state.SessionState{
		User:  models.User{ID: "u1", Username: "ada", Role: models.RoleAdmin},
		Token: "opaque-token",
	}))

	s, err := New(mem)
	require.NoError(t, err)

	assert.Equal(t, "opaque-token", s.Token())
	require.NotNil(t, s.Current())
	assert.Equal(t, models.RoleAdmin, s.Current().Role)
}

func TestNew_DropsExpiredJWTSession(t *testing.T) {
	t.Parallel()

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	tokenStr, err := expired.SignedString([]byte("irrelevant"))
	require.NoError(t, err)

	mem := state.NewMemory()
	require.NoError(t, mem.SaveSession(&state.SessionState{
		User:  models.User{ID: "u1"},
		Token: tokenStr,
	}))

	s, err := New(mem)
	require.NoError(t, err)

	assert.False(t, s.Authenticated())
	saved, err := mem.LoadSession()
	require.NoError(t, err)
	assert.Nil(t, saved, "expired session should be removed from storage")
}

func TestCurrent_ReturnsCopy(t *testing.T) {
	t.Parallel()

	mem := state.NewMemory()
	s, err := New(mem)
	require.NoError(t, err)
	s.Gateway = &fakeGateway{resp: okResponse(models.RoleUser)}
	_, err = s.Login(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)

	s.Current().Role = models.RoleAdmin
	assert.Equal(t, models.RoleUser, s.Current().Role)
}

func TestLogin_NetworkErrorSurfaces(t *testing.T) {
	t.Parallel()

	mem := state.NewMemory()
	s, err := New(mem)
	require.NoError(t, err)
	s.Gateway = &fakeGateway{err: errors.New("connection refused")}

	_, err = s.Login(context.Background(), "ada@example.com", "secret")
	require.Error(t, err)
	assert.False(t, s.Authenticated())
}
