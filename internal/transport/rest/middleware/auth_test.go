package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/remix-pengkefei/ai-training-admin/internal/service"
	"github.com/remix-pengkefei/ai-training-admin/internal/session"
	"github.com/remix-pengkefei/ai-training-admin/internal/transport/rest/middleware"
)

func newProtected(t *testing.T) (http.Handler, string) {
	t.Helper()

	guard := session.NewGuard(session.NewMemoryStore(), nil, 0)
	authSvc := service.NewAuthService("admin", "qifukeji", "test-secret", guard)

	resp, err := authSvc.Login(context.Background(), "admin", "qifukeji")
	require.NoError(t, err)

	mw := middleware.NewAuthMiddleware(authSvc)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NotEmpty(t, middleware.GetSessionID(r.Context()))
		w.WriteHeader(http.StatusOK)
	})
	return mw.RequireAdmin(next), resp.Token
}

func TestRequireAdminMissingToken(t *testing.T) {
	protected, _ := newProtected(t)

	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/events", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdminBearerToken(t *testing.T) {
	protected, token := newProtected(t)

	req := httptest.NewRequest("GET", "/v1/events", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdminQueryToken(t *testing.T) {
	// Downloads cannot set headers; the token may ride the query string.
	protected, token := newProtected(t)

	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/events/e1/registrations/export?token="+token, nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdminExpiredSession(t *testing.T) {
	now := time.Now()
	guard := session.NewGuard(session.NewMemoryStore(), func() time.Time { return now }, 0)
	authSvc := service.NewAuthService("admin", "qifukeji", "test-secret", guard)

	resp, err := authSvc.Login(context.Background(), "admin", "qifukeji")
	require.NoError(t, err)

	now = now.Add(25 * time.Hour)

	mw := middleware.NewAuthMiddleware(authSvc)
	protected := mw.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("expired session must not reach the handler")
	}))

	req := httptest.NewRequest("GET", "/v1/events", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)

	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
