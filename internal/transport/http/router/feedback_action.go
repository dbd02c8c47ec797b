package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Thaihung204/GENTRY-BE/internal/domain"
	"github.com/Thaihung204/GENTRY-BE/internal/service"
	httpez "github.com/Thaihung204/GENTRY-BE/internal/transport/http/ez"
)

type pageQ struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"pageSize,default=10"`
}

type visibilityIn struct {
	IsVisible *bool `json:"isVisible" binding:"required"`
}

func mountFeedbackActions(api, admin *gin.RouterGroup, d Deps) {
	pub := httpez.New(api)
	adm := httpez.New(admin)

	// 提交允许匿名；带了合法 token 就归属到该用户
	httpez.RegisterAction(pub, httpez.Action[service.FeedbackInput, *domain.Feedback]{
		Method: http.MethodPost,
		Path:   "/feedbacks",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *service.FeedbackInput) (*domain.Feedback, error) {
			return d.Feedback.Submit(optionalUserID(c, d), *in)
		},
	})

	httpez.RegisterAction(pub, httpez.Action[pageQ, *service.FeedbackPage]{
		Method: http.MethodGet,
		Path:   "/feedbacks",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *pageQ) (*service.FeedbackPage, error) {
			return d.Feedback.ListVisible(in.Page, in.PageSize)
		},
	})

	httpez.RegisterAction(adm, httpez.Action[pageQ, *service.FeedbackPage]{
		Method: http.MethodGet,
		Path:   "/feedbacks/all",
		Binder: httpez.BindQuery,
		Auth:   true,
		Roles:  []string{domain.RoleAdmin},
		Handler: func(c *gin.Context, in *pageQ) (*service.FeedbackPage, error) {
			return d.Feedback.ListAll(in.Page, in.PageSize)
		},
	})

	httpez.RegisterAction(adm, httpez.Action[struct{}, *domain.FeedbackStats]{
		Method: http.MethodGet,
		Path:   "/feedbacks/statistics",
		Binder: httpez.BindNone,
		Auth:   true,
		Roles:  []string{domain.RoleAdmin},
		Handler: func(c *gin.Context, _ *struct{}) (*domain.FeedbackStats, error) {
			return d.Feedback.Statistics()
		},
	})

	httpez.RegisterAction(adm, httpez.Action[visibilityIn, gin.H]{
		Method: http.MethodPatch,
		Path:   "/feedbacks/:id/visibility",
		Binder: httpez.BindJSON,
		Auth:   true,
		Roles:  []string{domain.RoleAdmin},
		Handler: func(c *gin.Context, in *visibilityIn) (gin.H, error) {
			id := c.Param("id")
			if err := d.Feedback.SetVisibility(id, *in.IsVisible, c.GetString("userId")); err != nil {
				return nil, err
			}
			return gin.H{"id": id, "isVisible": *in.IsVisible}, nil
		},
	})

	httpez.RegisterAction(adm, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/feedbacks/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Roles:  []string{domain.RoleAdmin},
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			if err := d.Feedback.Delete(id); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})
}

func optionalUserID(c *gin.Context, d Deps) string {
	ah := c.GetHeader("Authorization")
	if !strings.HasPrefix(ah, "Bearer ") {
		return ""
	}
	claims, err := d.JWTer.Parse(strings.TrimPrefix(ah, "Bearer "))
	if err != nil {
		return ""
	}
	return claims.UID
}
