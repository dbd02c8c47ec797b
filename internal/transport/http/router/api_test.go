package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Thaihung204/GENTRY-BE/internal/core/auth"
	"github.com/Thaihung204/GENTRY-BE/internal/core/database"
	"github.com/Thaihung204/GENTRY-BE/internal/domain"
	"github.com/Thaihung204/GENTRY-BE/internal/repo"
	"github.com/Thaihung204/GENTRY-BE/internal/service"
	"github.com/Thaihung204/GENTRY-BE/pkg/llm"
	"github.com/Thaihung204/GENTRY-BE/pkg/utils"
)

type stubCompleter struct {
	reply string
	err   error
}

func (s *stubCompleter) Complete(context.Context, string, string) (string, error) {
	return s.reply, s.err
}

type env struct {
	r     *gin.Engine
	db    *gorm.DB
	jwter *auth.JWTer
	stub  *stubCompleter
}

func newTestEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", utils.NewID())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, database.Seed(db))

	jwter := &auth.JWTer{
		Secret:   []byte("router-test-secret"),
		Issuer:   "gentry",
		Audience: "gentry-client",
		TTL:      time.Hour,
	}
	log := zap.NewNop()
	stub := &stubCompleter{reply: "{}"}

	userRepo := repo.NewUserRepo(db)
	itemRepo := repo.NewItemRepo(db)
	outfitRepo := repo.NewOutfitRepo(db)
	chatRepo := repo.NewChatHistoryRepo(db)

	d := Deps{
		Log:      log,
		JWTer:    jwter,
		Auth:     service.NewAuthService(userRepo, jwter, log),
		Wardrobe: service.NewWardrobeService(itemRepo, log),
		Outfits:  service.NewOutfitService(outfitRepo),
		RefData:  service.NewRefDataService(repo.NewRefDataRepo(db), nil, time.Minute),
		Feedback: service.NewFeedbackService(repo.NewFeedbackRepo(db), log),
		Chats:    service.NewChatHistoryService(chatRepo, log),
		Stylist: service.NewStylistService(
			itemRepo, userRepo, outfitRepo, stub,
			service.NewAffiliateService(0, 0, log), log),
	}
	return &env{r: NewAPIEngine(d), db: db, jwter: jwter, stub: stub}
}

func (e *env) seedUser(t *testing.T, email, role string) (*domain.User, string) {
	t.Helper()
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		FullName:     "Router Test",
		PasswordHash: utils.HashPassword("secret123"),
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, e.db.Create(u).Error)
	tok, _, err := e.jwter.Issue(u.ID, u.Email, u.FullName, u.Role, false)
	require.NoError(t, err)
	return u, tok
}

func (e *env) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e), "body: %s", w.Body.String())
	return e
}

func TestCurrentUserRequiresToken(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodGet, "/api/auth/current-user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 401, decode(t, w).Code)

	w = e.do(t, http.MethodGet, "/api/auth/current-user", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterLoginCurrentUserFlow(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "flow@example.com", "password": "secret123", "fullName": "Flow",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// 重复注册 → 400
	w = e.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "flow@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = e.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "flow@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &login))
	require.NotEmpty(t, login.AccessToken)

	w = e.do(t, http.MethodGet, "/api/auth/current-user", login.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var me struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &me))
	assert.Equal(t, "flow@example.com", me.Email)

	// 错密码 → 401
	w = e.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "flow@example.com", "password": "nope12345",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthCheckAlways200(t *testing.T) {
	e := newTestEnv(t)
	_, tok := e.seedUser(t, "chk@example.com", domain.RoleUser)

	w := e.do(t, http.MethodGet, "/api/auth/check", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)

	w = e.do(t, http.MethodGet, "/api/auth/check", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)
}

func TestFeedbackRatingBounds(t *testing.T) {
	e := newTestEnv(t)

	for _, rating := range []int{0, 6} {
		w := e.do(t, http.MethodPost, "/api/feedbacks", "", gin.H{
			"name": "A", "rating": rating, "content": "x",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "rating %d", rating)
	}

	w := e.do(t, http.MethodPost, "/api/feedbacks", "", gin.H{
		"name": "A", "rating": 5, "content": "great",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestFeedbackAdminRoutes(t *testing.T) {
	e := newTestEnv(t)
	_, userTok := e.seedUser(t, "plain@example.com", domain.RoleUser)
	_, adminTok := e.seedUser(t, "root@example.com", domain.RoleAdmin)

	// 普通用户 → 403
	w := e.do(t, http.MethodGet, "/api/feedbacks/all", userTok, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = e.do(t, http.MethodGet, "/api/feedbacks/statistics", userTok, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 管理员 → 200
	w = e.do(t, http.MethodGet, "/api/feedbacks/all", adminTok, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = e.do(t, http.MethodGet, "/api/feedbacks/statistics", adminTok, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// 不存在的反馈 → 404
	w = e.do(t, http.MethodDelete, "/api/feedbacks/no-such-id", adminTok, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRefDataEndpoints(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodGet, "/api/occasions", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var occasions []domain.Occasion
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &occasions))
	assert.Len(t, occasions, 6)

	w = e.do(t, http.MethodGet, "/api/weathers/2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Rainy")

	w = e.do(t, http.MethodGet, "/api/styles/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = e.do(t, http.MethodGet, "/api/occasions/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWardrobeOwnerScoping(t *testing.T) {
	e := newTestEnv(t)
	_, aliceTok := e.seedUser(t, "alice@example.com", domain.RoleUser)
	_, bobTok := e.seedUser(t, "bob@example.com", domain.RoleUser)

	w := e.do(t, http.MethodPost, "/api/items", aliceTok, gin.H{
		"name": "White tee", "categoryId": 1, "colorId": 2,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created domain.Item
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &created))
	require.NotEmpty(t, created.ID)

	// 主人可见
	w = e.do(t, http.MethodGet, "/api/items/"+created.ID, aliceTok, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// 他人 → 404（不给 403，避免暴露存在性）
	w = e.do(t, http.MethodGet, "/api/items/"+created.ID, bobTok, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = e.do(t, http.MethodDelete, "/api/items/"+created.ID, bobTok, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 未登录 → 401
	w = e.do(t, http.MethodGet, "/api/items", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOutfitAIChatUpstreamDown(t *testing.T) {
	e := newTestEnv(t)
	u, tok := e.seedUser(t, "ai@example.com", domain.RoleUser)
	require.NoError(t, e.db.Create(&domain.Item{
		ID: utils.NewID(), UserID: u.ID, Name: "White tee", CategoryID: 1, IsActive: true,
	}).Error)

	e.stub.err = fmt.Errorf("%w: dial tcp", llm.ErrUnavailable)
	w := e.do(t, http.MethodPost, "/api/outfitai/chat", tok, gin.H{
		"userMessage": "dress me",
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, 502, decode(t, w).Code)
}

func TestOutfitAIChatEmptyWardrobeIs200(t *testing.T) {
	e := newTestEnv(t)
	_, tok := e.seedUser(t, "bare@example.com", domain.RoleUser)

	w := e.do(t, http.MethodPost, "/api/outfitai/chat", tok, gin.H{
		"userMessage": "dress me",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestChatHistoryOwnerScoping(t *testing.T) {
	e := newTestEnv(t)
	u, tok := e.seedUser(t, "hist@example.com", domain.RoleUser)
	_, otherTok := e.seedUser(t, "other@example.com", domain.RoleUser)

	ch := &domain.ChatHistory{
		ID: utils.NewID(), UserID: u.ID, UserMessage: "hi", AIResponse: "{}",
		ChatType: domain.ChatTypeOutfitRecommendation, IsActive: true,
	}
	require.NoError(t, e.db.Create(ch).Error)

	w := e.do(t, http.MethodDelete, "/api/outfitai/chat-history/"+ch.ID, otherTok, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = e.do(t, http.MethodDelete, "/api/outfitai/chat-history/"+ch.ID, tok, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodGet, "/api/outfitai/chat-history", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []domain.ChatHistory
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &list))
	assert.Empty(t, list)
}

func TestHealth(t *testing.T) {
	e := newTestEnv(t)
	w := e.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
