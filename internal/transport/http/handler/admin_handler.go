package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Thaihung204/GENTRY-BE/internal/domain"
	"github.com/Thaihung204/GENTRY-BE/internal/service"
	httpez "github.com/Thaihung204/GENTRY-BE/internal/transport/http/ez"
)

// AdminHandler 后台端：用户管理 + 反馈审核
type AdminHandler struct {
	users    domain.UserRepository
	feedback *service.FeedbackService
	log      *zap.Logger
}

func NewAdminHandler(users domain.UserRepository, feedback *service.FeedbackService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{users: users, feedback: feedback, log: log.Named("admin")}
}

type userListQ struct {
	Offset int    `form:"offset,default=0"`
	Limit  int    `form:"limit,default=20"`
	Q      string `form:"q"` // 按 email/full_name 模糊搜
}

type userRow struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	IsPremium bool      `json:"isPremium"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type userListOut struct {
	Total int64     `json:"total"`
	Items []userRow `json:"items"`
}

type feedbackPageQ struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"pageSize,default=50"`
}

type feedbackVisibilityIn struct {
	IsVisible *bool `json:"isVisible" binding:"required"`
}

// Mount 注册全部后台接口；分组已要求 admin 角色
func (h *AdminHandler) Mount(admin *gin.RouterGroup) {
	ez := httpez.New(admin)

	httpez.RegisterAction(ez, httpez.Action[userListQ, userListOut]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *userListQ) (userListOut, error) {
			if in.Limit <= 0 || in.Limit > 100 {
				in.Limit = 20
			}
			us, total, err := h.users.List(strings.TrimSpace(in.Q), in.Offset, in.Limit)
			if err != nil {
				return userListOut{}, httpez.Internal("list users failed", err)
			}
			out := userListOut{Total: total, Items: make([]userRow, 0, len(us))}
			for _, u := range us {
				out.Items = append(out.Items, userRow{
					ID: u.ID, Email: u.Email, FullName: u.FullName, Role: u.Role,
					IsPremium: u.IsPremium, IsActive: u.IsActive, CreatedAt: u.CreatedAt,
				})
			}
			return out, nil
		},
	})

	// 封禁 = 软禁用，账号与数据保留
	httpez.RegisterAction(ez, httpez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/users/:id/ban",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			if id == "" {
				return nil, httpez.BadRequest("missing id")
			}
			u, err := h.users.FindByID(id)
			if err != nil {
				return nil, httpez.Internal("find user failed", err)
			}
			if u == nil {
				return nil, httpez.NotFound("user not found")
			}
			if err := h.users.Deactivate(id); err != nil {
				return nil, httpez.Internal("ban user failed", err)
			}
			h.log.Info("user banned", zap.String("uid", id), zap.String("by", c.GetString("userId")))
			return gin.H{"id": id, "isActive": false}, nil
		},
	})

	httpez.RegisterAction(ez, httpez.Action[feedbackPageQ, *service.FeedbackPage]{
		Method: http.MethodGet,
		Path:   "/feedbacks",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *feedbackPageQ) (*service.FeedbackPage, error) {
			return h.feedback.ListAll(in.Page, in.PageSize)
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, *domain.FeedbackStats]{
		Method: http.MethodGet,
		Path:   "/feedbacks/statistics",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.FeedbackStats, error) {
			return h.feedback.Statistics()
		},
	})

	httpez.RegisterAction(ez, httpez.Action[feedbackVisibilityIn, gin.H]{
		Method: http.MethodPatch,
		Path:   "/feedbacks/:id/visibility",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *feedbackVisibilityIn) (gin.H, error) {
			id := c.Param("id")
			if err := h.feedback.SetVisibility(id, *in.IsVisible, c.GetString("userId")); err != nil {
				return nil, err
			}
			return gin.H{"id": id, "isVisible": *in.IsVisible}, nil
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/feedbacks/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			if err := h.feedback.Delete(id); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})
}
