package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func cronTestServer(secret string) http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return RequireCronSecret(secret)(ok)
}

func TestRequireCronSecret_ValidToken(t *testing.T) {
	h := cronTestServer("super-secret")

	req := httptest.NewRequest(http.MethodPost, "/billing/run", nil)
	req.Header.Set("Authorization", "Bearer super-secret")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireCronSecret_MissingHeader(t *testing.T) {
	h := cronTestServer("super-secret")

	req := httptest.NewRequest(http.MethodPost, "/billing/run", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireCronSecret_WrongToken(t *testing.T) {
	h := cronTestServer("super-secret")

	req := httptest.NewRequest(http.MethodPost, "/billing/run", nil)
	req.Header.Set("Authorization", "Bearer not-the-secret")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireCronSecret_NotConfigured(t *testing.T) {
	h := cronTestServer("")

	req := httptest.NewRequest(http.MethodPost, "/billing/run", nil)
	req.Header.Set("Authorization", "Bearer anything")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
