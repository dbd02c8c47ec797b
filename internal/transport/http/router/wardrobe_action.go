package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Thaihung204/GENTRY-BE/internal/domain"
	"github.com/Thaihung204/GENTRY-BE/internal/service"
	httpez "github.com/Thaihung204/GENTRY-BE/internal/transport/http/ez"
)

type outfitListQ struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"pageSize,default=20"`
}

func mountWardrobeActions(authed *gin.RouterGroup, d Deps) {
	ez := httpez.New(authed)

	httpez.RegisterAction(ez, httpez.Action[struct{}, []domain.Item]{
		Method: http.MethodGet,
		Path:   "/items",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Item, error) {
			return d.Wardrobe.ListMine(c.GetString("userId"))
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, *domain.Item]{
		Method: http.MethodGet,
		Path:   "/items/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Item, error) {
			return d.Wardrobe.Get(c.GetString("userId"), c.Param("id"))
		},
	})

	httpez.RegisterAction(ez, httpez.Action[service.ItemInput, *domain.Item]{
		Method: http.MethodPost,
		Path:   "/items",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *service.ItemInput) (*domain.Item, error) {
			return d.Wardrobe.Add(c.GetString("userId"), *in)
		},
	})

	httpez.RegisterAction(ez, httpez.Action[service.ItemInput, *domain.Item]{
		Method: http.MethodPut,
		Path:   "/items/:id",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *service.ItemInput) (*domain.Item, error) {
			return d.Wardrobe.Update(c.GetString("userId"), c.Param("id"), *in)
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/items/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			if err := d.Wardrobe.Delete(c.GetString("userId"), c.Param("id")); err != nil {
				return nil, err
			}
			return gin.H{"id": c.Param("id")}, nil
		},
	})

	// 套装只读：由 AI 推荐或历史生成
	httpez.RegisterAction(ez, httpez.Action[outfitListQ, *service.OutfitPage]{
		Method: http.MethodGet,
		Path:   "/outfits",
		Binder: httpez.BindQuery,
		Auth:   true,
		Handler: func(c *gin.Context, in *outfitListQ) (*service.OutfitPage, error) {
			return d.Outfits.ListMine(c.GetString("userId"), in.Page, in.PageSize)
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, *domain.Outfit]{
		Method: http.MethodGet,
		Path:   "/outfits/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Outfit, error) {
			return d.Outfits.Get(c.GetString("userId"), c.Param("id"))
		},
	})
}
