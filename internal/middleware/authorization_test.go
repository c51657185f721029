package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func serveWithRole(mw func(http.Handler) http.Handler, role string) int {
	req := httptest.NewRequest(http.MethodDelete, "/api/brands/1", nil)
	if role != "" {
		ctx := context.WithValue(req.Context(), SubjectKey, "alice")
		ctx = context.WithValue(ctx, RoleKey, role)
		req = req.WithContext(ctx)
	}
	w := httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(w, req)
	return w.Code
}

func TestRequireRole(t *testing.T) {
	writers := RequireRole([]string{RoleAdmin, RoleEditor}, zap.NewNop())

	assert.Equal(t, http.StatusOK, serveWithRole(writers, RoleAdmin))
	assert.Equal(t, http.StatusOK, serveWithRole(writers, RoleEditor))
	assert.Equal(t, http.StatusForbidden, serveWithRole(writers, "viewer"))
	assert.Equal(t, http.StatusForbidden, serveWithRole(writers, ""))
}

func TestRequireAdmin(t *testing.T) {
	admins := RequireAdmin(zap.NewNop())

	assert.Equal(t, http.StatusOK, serveWithRole(admins, RoleAdmin))
	assert.Equal(t, http.StatusForbidden, serveWithRole(admins, RoleEditor))
}
