package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Thaihung204/GENTRY-BE/internal/domain"
	"github.com/Thaihung204/GENTRY-BE/internal/repo"
	"github.com/Thaihung204/GENTRY-BE/internal/service"
	"github.com/Thaihung204/GENTRY-BE/internal/transport/http/handler"
)

// 后台引擎复用 API 测试环境的库和 jwter，只换路由
func newAdminEnv(t *testing.T) *env {
	t.Helper()
	e := newTestEnv(t)
	log := zap.NewNop()
	h := handler.NewAdminHandler(
		repo.NewUserRepo(e.db),
		service.NewFeedbackService(repo.NewFeedbackRepo(e.db), log),
		log,
	)
	e.r = NewAdminEngine(log, h, e.jwter)
	return e
}

func TestAdminRequiresAdminRole(t *testing.T) {
	e := newAdminEnv(t)
	_, userTok := e.seedUser(t, "pleb@example.com", domain.RoleUser)

	w := e.do(t, http.MethodGet, "/admin/v1/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.do(t, http.MethodGet, "/admin/v1/users", userTok, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminUserListAndBan(t *testing.T) {
	e := newAdminEnv(t)
	target, _ := e.seedUser(t, "target@example.com", domain.RoleUser)
	_, adminTok := e.seedUser(t, "root@example.com", domain.RoleAdmin)

	w := e.do(t, http.MethodGet, "/admin/v1/users?q=target", adminTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "target@example.com")

	w = e.do(t, http.MethodPost, "/admin/v1/users/"+target.ID+"/ban", adminTok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var row domain.User
	require.NoError(t, e.db.First(&row, "id = ?", target.ID).Error)
	assert.False(t, row.IsActive) // 软禁用，行保留

	w = e.do(t, http.MethodPost, "/admin/v1/users/no-such-id/ban", adminTok, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminFeedbackModeration(t *testing.T) {
	e := newAdminEnv(t)
	_, adminTok := e.seedUser(t, "root@example.com", domain.RoleAdmin)

	fbSvc := service.NewFeedbackService(repo.NewFeedbackRepo(e.db), zap.NewNop())
	f, err := fbSvc.Submit("", service.FeedbackInput{Name: "N", Rating: 4, Content: "nice"})
	require.NoError(t, err)

	w := e.do(t, http.MethodPatch, "/admin/v1/feedbacks/"+f.ID+"/visibility", adminTok,
		gin.H{"isVisible": false})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var row domain.Feedback
	require.NoError(t, e.db.First(&row, "id = ?", f.ID).Error)
	assert.False(t, row.IsVisible)

	w = e.do(t, http.MethodGet, "/admin/v1/feedbacks/statistics", adminTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hidden":1`)

	w = e.do(t, http.MethodDelete, "/admin/v1/feedbacks/"+f.ID, adminTok, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminMetricsExposed(t *testing.T) {
	e := newAdminEnv(t)
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	e.r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
