package jwt

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	gerr "github.com/jekabolt/sellerboard-kpi/internal/errors"
)

const (
	// CookieName is the cookie holding the session token.
	CookieName = "auth_token"
	// DashboardSubject is the subject of session tokens issued on login.
	DashboardSubject = "dashboard"
)

// Config holds the dashboard login and cron settings.
type Config struct {
	JWTSecret    string        `mapstructure:"jwt_secret"`
	Password     string        `mapstructure:"password"`
	TokenTTL     time.Duration `mapstructure:"token_ttl"`
	CronSecret   string        `mapstructure:"cron_secret"`
	SecureCookie bool          `mapstructure:"secure_cookie"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		TokenTTL: 180 * 24 * time.Hour,
	}
}

// Auth issues and checks dashboard session tokens.
type Auth struct {
	ja *jwtauth.JWTAuth
	c  *Config
}

// New creates an Auth signing tokens with HS256.
func New(c *Config) (*Auth, error) {
	if c.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is not configured")
	}
	if c.TokenTTL == 0 {
		c.TokenTTL = 180 * 24 * time.Hour
	}
	return &Auth{
		ja: jwtauth.New("HS256", []byte(c.JWTSecret), nil),
		c:  c,
	}, nil
}

// JWTAuth returns the underlying token signer for verifier middleware.
func (a *Auth) JWTAuth() *jwtauth.JWTAuth {
	return a.ja
}

// Login checks the password and returns a session cookie.
func (a *Auth) Login(password string) (*http.Cookie, error) {
	if a.c.Password == "" || !equal(password, a.c.Password) {
		return nil, gerr.ErrInvalidPassword
	}
	token, err := NewTokenWithSubject(a.ja, a.c.TokenTTL, DashboardSubject)
	if err != nil {
		return nil, fmt.Errorf("can't issue token: %w", err)
	}
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(a.c.TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   a.c.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// CronAllowed reports whether secret matches the configured cron secret.
// An unset cron secret rejects every request.
func (a *Auth) CronAllowed(secret string) bool {
	return a.c.CronSecret != "" && equal(secret, a.c.CronSecret)
}

// TokenFromCookie finds the session token for jwtauth.Verify.
func TokenFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func VerifyToken(jwtAuth *jwtauth.JWTAuth, token string) (string, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return "", err
	}
	return t.Subject(), nil
}

// NewTokenWithSubject creates a JWT with optional subject claim.
func NewTokenWithSubject(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, subject string) (string, error) {
	claims := map[string]interface{}{
		"exp": time.Now().Add(ttl).Unix(),
	}
	if subject != "" {
		claims["sub"] = subject
	}
	_, ts, err := jwtAuth.Encode(claims)
	if err != nil {
		return ts, err
	}
	return ts, nil
}
