package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/remix-pengkefei/ai-training-admin/internal/service"
	"github.com/remix-pengkefei/ai-training-admin/internal/session"
)

func newAuthService(now *time.Time) (*service.AuthService, *session.MemoryStore) {
	store := session.NewMemoryStore()
	guard := session.NewGuard(store, func() time.Time { return *now }, 0)
	return service.NewAuthService("admin", "qifukeji", "test-secret", guard), store
}

func TestLoginSuccessOpensSession(t *testing.T) {
	ctx := context.Background()
	now := time.Now().Truncate(time.Second)
	svc, _ := newAuthService(&now)

	resp, err := svc.Login(ctx, "admin", "qifukeji")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, now.Add(24*time.Hour), resp.ExpiresAt)

	sessionID, err := svc.Authorize(ctx, resp.Token)
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	svc, _ := newAuthService(&now)

	for _, tc := range []struct{ user, pass string }{
		{"admin", "wrong"},
		{"root", "qifukeji"},
		{"", ""},
	} {
		resp, err := svc.Login(ctx, tc.user, tc.pass)
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
		require.Nil(t, resp, "failed login must not create a session")
	}
}

func TestAuthorizeExpiredSessionIsCleared(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	svc, _ := newAuthService(&now)

	resp, err := svc.Login(ctx, "admin", "qifukeji")
	require.NoError(t, err)

	now = now.Add(25 * time.Hour)
	_, err = svc.Authorize(ctx, resp.Token)
	require.ErrorIs(t, err, service.ErrSessionExpired)

	// Still rejected on a second check; the stored pair is gone.
	_, err = svc.Authorize(ctx, resp.Token)
	require.ErrorIs(t, err, service.ErrSessionExpired)
}

func TestAuthorizeRejectsGarbageToken(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	svc, _ := newAuthService(&now)

	_, err := svc.Authorize(ctx, "not-a-token")
	require.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestLogoutClearsSession(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	svc, _ := newAuthService(&now)

	resp, err := svc.Login(ctx, "admin", "qifukeji")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, resp.Token))

	_, err = svc.Authorize(ctx, resp.Token)
	require.ErrorIs(t, err, service.ErrSessionExpired)
}
