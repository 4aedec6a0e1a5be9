package middleware

import (
	"context"
	"net/http"
	"strings"

	"clinic-management/internal/domain/entity"
	"clinic-management/internal/service"
	"clinic-management/pkg/jwt"
	"clinic-management/pkg/response"
)

type contextKey string

const sessionKey contextKey = "session"

// Session is the authenticated identity attached to a request
type Session struct {
	UserID  int
	Email   string
	Role    entity.Role
	TokenID string
}

type AuthMiddleware struct {
	jwtService   *jwt.JWTService
	sessionStore service.SessionStore
}

func NewAuthMiddleware(jwtService *jwt.JWTService, sessionStore service.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:   jwtService,
		sessionStore: sessionStore,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		// Signature alone is not enough; the session must still be registered
		exists, err := m.sessionStore.Exists(r.Context(), claims.UserID, claims.TokenID())
		if err != nil {
			response.InternalServerError(w, "Failed to validate token", err)
			return
		}
		if !exists {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		ctx := WithSession(r.Context(), &Session{
			UserID:  claims.UserID,
			Email:   claims.Email,
			Role:    entity.Role(claims.Role),
			TokenID: claims.TokenID(),
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithSession returns a copy of ctx carrying session
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// GetSessionFromContext extracts the authenticated session from context
func GetSessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionKey).(*Session)
	return session, ok && session != nil
}
