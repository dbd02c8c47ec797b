package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thaihung204/GENTRY-BE/internal/core/auth"
	"github.com/Thaihung204/GENTRY-BE/internal/repo"
)

func newAuthSvc(t *testing.T, ttl time.Duration) (*AuthService, *repo.UserRepo) {
	t.Helper()
	db := newTestDB(t)
	users := repo.NewUserRepo(db)
	jwter := &auth.JWTer{
		Secret:   []byte("test-secret"),
		Issuer:   "gentry",
		Audience: "gentry-client",
		TTL:      ttl,
	}
	return NewAuthService(users, jwter, testLogger()), users
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthSvc(t, time.Hour)

	u, err := svc.Register(RegisterInput{Email: "Anna@Example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", u.Email)
	assert.Equal(t, "anna", u.FullName) // 未给名字时取邮箱前缀
	assert.True(t, u.IsActive)

	res, err := svc.Login("anna@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.Equal(t, u.ID, res.User.ID)

	_, err = svc.Login("anna@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthSvc(t, time.Hour)

	_, err := svc.Register(RegisterInput{Email: "dup@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{Email: "DUP@example.com", Password: "other456"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginDeactivatedUser(t *testing.T) {
	svc, users := newAuthSvc(t, time.Hour)

	u, err := svc.Register(RegisterInput{Email: "gone@example.com", Password: "secret123"})
	require.NoError(t, err)
	require.NoError(t, users.Deactivate(u.ID))

	_, err = svc.Login("gone@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshWithExpiredAccessToken(t *testing.T) {
	// TTL 为负 → 签出的 token 立刻过期
	svc, _ := newAuthSvc(t, -time.Minute)

	_, err := svc.Register(RegisterInput{Email: "ref@example.com", Password: "secret123"})
	require.NoError(t, err)
	res, err := svc.Login("ref@example.com", "secret123")
	require.NoError(t, err)

	// 过期 token 刷新成功
	again, err := svc.Refresh(res.AccessToken)
	require.NoError(t, err)
	assert.NotEmpty(t, again.AccessToken)
	assert.Equal(t, res.User.ID, again.User.ID)

	// 篡改过的 token 一律拒绝
	_, err = svc.Refresh(res.AccessToken + "x")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshDeactivatedUser(t *testing.T) {
	svc, users := newAuthSvc(t, time.Hour)

	u, err := svc.Register(RegisterInput{Email: "ban@example.com", Password: "secret123"})
	require.NoError(t, err)
	res, err := svc.Login("ban@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, users.Deactivate(u.ID))
	_, err = svc.Refresh(res.AccessToken)
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestResetPassword(t *testing.T) {
	svc, _ := newAuthSvc(t, time.Hour)

	_, err := svc.Register(RegisterInput{Email: "rp@example.com", Password: "oldpass123"})
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword("rp@example.com", "newpass456"))

	_, err = svc.Login("rp@example.com", "oldpass123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login("rp@example.com", "newpass456")
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.ResetPassword("nobody@example.com", "whatever1"), ErrNotFound)
}

func TestCurrentUser(t *testing.T) {
	svc, users := newAuthSvc(t, time.Hour)

	u, err := svc.Register(RegisterInput{Email: "me@example.com", Password: "secret123"})
	require.NoError(t, err)

	got, err := svc.CurrentUser(u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)

	require.NoError(t, users.Deactivate(u.ID))
	_, err = svc.CurrentUser(u.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
