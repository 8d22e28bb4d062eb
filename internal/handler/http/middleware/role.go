package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/goalline/academy-backend-go/internal/domain/user"
	"github.com/goalline/academy-backend-go/internal/handler/http/response"
)

// RequireAdmin requires the ADMIN or SUPER_ADMIN role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Admin access required")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, "Admin access required")
			return
		}

		role := user.Role(roleStr)
		if role != user.RoleAdmin && role != user.RoleSuperAdmin {
			response.Forbidden(w, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireStaff requires any staff role: COACH, ADMIN or SUPER_ADMIN.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Staff access required")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, "Staff access required")
			return
		}

		role := user.Role(roleStr)
		if role != user.RoleCoach && role != user.RoleAdmin && role != user.RoleSuperAdmin {
			response.Forbidden(w, "Staff access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
