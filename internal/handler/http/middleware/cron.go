package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/goalline/academy-backend-go/internal/handler/http/response"
)

// RequireCronSecret guards operational endpoints triggered by external
// schedulers. The caller presents the shared secret as a bearer token.
func RequireCronSecret(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				response.Unauthorized(w, "Cron trigger is not configured")
				return
			}

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				response.Unauthorized(w, "Missing bearer token")
				return
			}

			if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
				response.Unauthorized(w, "Invalid cron secret")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
