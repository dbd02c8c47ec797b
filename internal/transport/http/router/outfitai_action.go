package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Thaihung204/GENTRY-BE/internal/domain"
	"github.com/Thaihung204/GENTRY-BE/internal/service"
	httpez "github.com/Thaihung204/GENTRY-BE/internal/transport/http/ez"
)

type historyQ struct {
	Limit int `form:"limit,default=50"`
}

func mountOutfitAIActions(authed *gin.RouterGroup, d Deps) {
	ez := httpez.New(authed)

	httpez.RegisterAction(ez, httpez.Action[service.ChatInput, *service.ChatResult]{
		Method: http.MethodPost,
		Path:   "/outfitai/chat",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *service.ChatInput) (*service.ChatResult, error) {
			return d.Stylist.Chat(c, c.GetString("userId"), *in)
		},
	})

	httpez.RegisterAction(ez, httpez.Action[historyQ, []domain.ChatHistory]{
		Method: http.MethodGet,
		Path:   "/outfitai/chat-history",
		Binder: httpez.BindQuery,
		Auth:   true,
		Handler: func(c *gin.Context, in *historyQ) ([]domain.ChatHistory, error) {
			return d.Chats.List(c.GetString("userId"), in.Limit)
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/outfitai/chat-history/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			if err := d.Chats.Delete(c.GetString("userId"), id); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/outfitai/chat-history",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			n, err := d.Chats.ClearAll(c.GetString("userId"))
			if err != nil {
				return nil, err
			}
			return gin.H{"cleared": n}, nil
		},
	})
}
