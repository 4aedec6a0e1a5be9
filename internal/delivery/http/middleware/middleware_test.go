package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-management/config"
	"clinic-management/internal/domain/entity"
	"clinic-management/internal/service"
	"clinic-management/pkg/jwt"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*AuthMiddleware, *jwt.JWTService, service.SessionStore) {
	t.Helper()
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	sessions := service.NewMemorySessionStore(time.Minute)
	return NewAuthMiddleware(jwtService, sessions), jwtService, sessions
}

// sessionEcho reports the session the middleware attached
func sessionEcho(seen **Session) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := GetSessionFromContext(r.Context())
		*seen = session
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthenticate_ValidSession(t *testing.T) {
	auth, jwtService, sessions := newAuthFixture(t)

	token, tokenID, err := jwtService.GenerateToken(7, "dr@example.com", "both")
	require.NoError(t, err)
	require.NoError(t, sessions.Save(context.Background(), 7, tokenID, time.Hour))

	var seen *Session
	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	auth.Authenticate(sessionEcho(&seen)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, 7, seen.UserID)
	assert.Equal(t, "dr@example.com", seen.Email)
	assert.Equal(t, entity.RoleBoth, seen.Role)
	assert.Equal(t, tokenID, seen.TokenID)
}

func TestAuthenticate_Rejections(t *testing.T) {
	auth, jwtService, sessions := newAuthFixture(t)

	revoked, revokedID, err := jwtService.GenerateToken(7, "dr@example.com", "doctor")
	require.NoError(t, err)
	require.NoError(t, sessions.Save(context.Background(), 7, revokedID, time.Hour))
	require.NoError(t, sessions.Revoke(context.Background(), 7, revokedID))

	foreign := jwt.NewJWTService(config.JWTConfig{Secret: "other-secret", Expiry: time.Hour})
	forged, _, err := foreign.GenerateToken(7, "dr@example.com", "admin")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong signature", "Bearer " + forged},
		{"revoked session", "Bearer " + revoked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen *Session
			req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			auth.Authenticate(sessionEcho(&seen)).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Nil(t, seen)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name    string
		session *Session
		status  int
	}{
		{"no session", nil, http.StatusUnauthorized},
		{"doctor", &Session{UserID: 1, Role: entity.RoleDoctor}, http.StatusForbidden},
		{"admin", &Session{UserID: 1, Role: entity.RoleAdmin}, http.StatusOK},
		{"both", &Session{UserID: 1, Role: entity.RoleBoth}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/users", nil)
			if tt.session != nil {
				req = req.WithContext(WithSession(req.Context(), tt.session))
			}
			rec := httptest.NewRecorder()
			RequireAdmin(ok).ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodOptions, "/api/clients/1", nil)
	rec := httptest.NewRecorder()
	NewCORSMiddleware("https://clinic.example").Handle(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, called)
	assert.Equal(t, "https://clinic.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestRateLimitMiddleware_PerClient(t *testing.T) {
	limiter := NewRateLimitMiddleware(config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2})
	h := limiter.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = ip + ":40000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))
}

func TestRateLimitMiddleware_ForwardedForOnlyFromTrustedProxy(t *testing.T) {
	limiter := NewRateLimitMiddleware(config.RateLimitConfig{
		RequestsPerSecond: 0.001,
		Burst:             1,
		TrustedProxies:    []string{"10.1.0.0/16"},
	})
	h := limiter.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(peer, forwarded string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = peer + ":40000"
		if forwarded != "" {
			req.Header.Set("X-Forwarded-For", forwarded)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	// an untrusted peer cannot rotate its bucket through the header
	assert.Equal(t, http.StatusOK, send("203.0.113.9", "198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.9", "198.51.100.2"))

	// behind the proxy each forwarded client has its own bucket
	assert.Equal(t, http.StatusOK, send("10.1.0.5", "198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.1.0.5", "198.51.100.1"))
	assert.Equal(t, http.StatusOK, send("10.1.0.5", "198.51.100.2"))

	// spoofed leftmost hops are ignored; the proxy-appended address is used
	assert.Equal(t, http.StatusTooManyRequests, send("10.1.0.5", "192.0.2.77, 198.51.100.2"))
}

func TestLoggingMiddleware_RequestIDAndRecovery(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	logging := NewLoggingMiddleware(log)

	var requestID string
	h := logging.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ = GetRequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.NotEmpty(t, requestID)
	assert.Equal(t, requestID, rec.Header().Get(HeaderXRequestID))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(HeaderXRequestID, "upstream-id")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "upstream-id", rec.Header().Get(HeaderXRequestID))

	panicking := logging.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec = httptest.NewRecorder()
	panicking.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/clients", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}
