package jwt

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	gerr "github.com/jekabolt/sellerboard-kpi/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)
	tok, err := NewTokenWithSubject(jwtAuth, time.Hour, DashboardSubject)
	assert.NoError(t, err)

	sub, err := VerifyToken(jwtAuth, tok)
	assert.NoError(t, err)
	assert.Equal(t, DashboardSubject, sub)

	_, err = VerifyToken(jwtauth.New("HS256", []byte("other"), nil), tok)
	assert.Error(t, err)
}

func TestExpiredToken(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)
	tok, err := NewTokenWithSubject(jwtAuth, -time.Hour, DashboardSubject)
	require.NoError(t, err)

	_, err = VerifyToken(jwtAuth, tok)
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	a, err := New(&Config{JWTSecret: "secret", Password: "hunter2"})
	require.NoError(t, err)

	_, err = a.Login("wrong")
	require.ErrorIs(t, err, gerr.ErrInvalidPassword)

	cookie, err := a.Login("hunter2")
	require.NoError(t, err)
	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, 180*24*60*60, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)

	sub, err := VerifyToken(a.JWTAuth(), cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, DashboardSubject, sub)

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(cookie)
	assert.Equal(t, cookie.Value, TokenFromCookie(r))
	assert.Empty(t, TokenFromCookie(httptest.NewRequest("GET", "/", nil)))
}

func TestLoginWithoutPasswordConfigured(t *testing.T) {
	a, err := New(&Config{JWTSecret: "secret"})
	require.NoError(t, err)
	_, err = a.Login("")
	require.ErrorIs(t, err, gerr.ErrInvalidPassword)
}

func TestCronAllowed(t *testing.T) {
	a, err := New(&Config{JWTSecret: "secret", CronSecret: "cron"})
	require.NoError(t, err)
	assert.True(t, a.CronAllowed("cron"))
	assert.False(t, a.CronAllowed("nope"))

	a, err = New(&Config{JWTSecret: "secret"})
	require.NoError(t, err)
	assert.False(t, a.CronAllowed(""))
}

func TestNewRequiresSecret(t *testing.T) {
	_, err := New(&Config{})
	require.Error(t, err)
}
