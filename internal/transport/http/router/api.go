package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Thaihung204/GENTRY-BE/internal/core/auth"
	"github.com/Thaihung204/GENTRY-BE/internal/domain"
	"github.com/Thaihung204/GENTRY-BE/internal/service"
	mdw "github.com/Thaihung204/GENTRY-BE/internal/transport/http/middleware"
)

// Deps 用户端全部依赖，由 cmd/api 组装
type Deps struct {
	Log      *zap.Logger
	JWTer    *auth.JWTer
	Auth     *service.AuthService
	Wardrobe *service.WardrobeService
	Outfits  *service.OutfitService
	RefData  *service.RefDataService
	Feedback *service.FeedbackService
	Chats    *service.ChatHistoryService
	Stylist  *service.StylistService
}

func NewAPIEngine(d Deps) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(
		cors.Default(), // 前端跨域访问
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(4<<20),
		mdw.Timeout(90*time.Second), // LLM 调用可能较慢
		mdw.SimpleRecovery(d.Log),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
	)

	// 健康检查
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	api := r.Group("/api")

	// 鉴权分组
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(d.JWTer, ""))

	// 管理员分组（feedback 审核挂这里）
	admin := api.Group("")
	admin.Use(mdw.AuthJWT(d.JWTer, domain.RoleAdmin))

	mountAuthActions(api, authed, d)
	mountWardrobeActions(authed, d)
	mountRefDataActions(api, d)
	mountFeedbackActions(api, admin, d)
	mountOutfitAIActions(authed, d)

	return r
}
