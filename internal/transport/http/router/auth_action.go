package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Thaihung204/GENTRY-BE/internal/service"
	httpez "github.com/Thaihung204/GENTRY-BE/internal/transport/http/ez"
)

type registerIn struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName" binding:"omitempty,max=255"`
	Gender   string `json:"gender"   binding:"omitempty,max=32"`
}

type loginIn struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type resetIn struct {
	Email       string `json:"email"       binding:"required,email"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type refreshIn struct {
	AccessToken string `json:"accessToken" binding:"required"`
}

func mountAuthActions(api, authed *gin.RouterGroup, d Deps) {
	pub := httpez.New(api)
	priv := httpez.New(authed)

	httpez.RegisterAction(pub, httpez.Action[registerIn, gin.H]{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *registerIn) (gin.H, error) {
			u, err := d.Auth.Register(service.RegisterInput{
				Email:    in.Email,
				Password: in.Password,
				FullName: in.FullName,
				Gender:   in.Gender,
			})
			if err != nil {
				return nil, err
			}
			return gin.H{"id": u.ID, "email": u.Email, "fullName": u.FullName}, nil
		},
	})

	httpez.RegisterAction(pub, httpez.Action[loginIn, *service.LoginResult]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (*service.LoginResult, error) {
			return d.Auth.Login(in.Email, in.Password)
		},
	})

	// 无服务端会话，登出由客户端丢弃 token；保留端点兼容旧客户端
	httpez.RegisterAction(priv, httpez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/auth/logout",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			return gin.H{"loggedOut": true}, nil
		},
	})

	httpez.RegisterAction(priv, httpez.Action[struct{}, any]{
		Method: http.MethodGet,
		Path:   "/auth/current-user",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (any, error) {
			return d.Auth.CurrentUser(c.GetString("userId"))
		},
	})

	httpez.RegisterAction(pub, httpez.Action[resetIn, gin.H]{
		Method: http.MethodPost,
		Path:   "/auth/reset-password",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *resetIn) (gin.H, error) {
			if err := d.Auth.ResetPassword(in.Email, in.NewPassword); err != nil {
				return nil, err
			}
			return gin.H{"reset": true}, nil
		},
	})

	httpez.RegisterAction(pub, httpez.Action[refreshIn, *service.LoginResult]{
		Method: http.MethodPost,
		Path:   "/auth/refresh-token",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *refreshIn) (*service.LoginResult, error) {
			return d.Auth.Refresh(in.AccessToken)
		},
	})

	// 探活：带不带 token 都返回 200，客户端据 authenticated 分流
	httpez.RegisterAction(pub, httpez.Action[struct{}, gin.H]{
		Method: http.MethodGet,
		Path:   "/auth/check",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			ah := c.GetHeader("Authorization")
			if !strings.HasPrefix(ah, "Bearer ") {
				return gin.H{"authenticated": false}, nil
			}
			claims, err := d.JWTer.Parse(strings.TrimPrefix(ah, "Bearer "))
			if err != nil {
				return gin.H{"authenticated": false}, nil
			}
			return gin.H{"authenticated": true, "userId": claims.UID}, nil
		},
	})
}
