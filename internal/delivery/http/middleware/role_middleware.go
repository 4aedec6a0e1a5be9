package middleware

import (
	"net/http"

	"clinic-management/internal/domain/entity"
	"clinic-management/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the required roles.
// The role is read from the session set by AuthMiddleware.
func RequireRole(allowedRoles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := GetSessionFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, role := range allowedRoles {
				if session.Role == role {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin admits the admin and both roles
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin, entity.RoleBoth)(next)
}
