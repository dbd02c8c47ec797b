package ez

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Thaihung204/GENTRY-BE/internal/service"
	resp "github.com/Thaihung204/GENTRY-BE/internal/transport/http/response"
	"github.com/Thaihung204/GENTRY-BE/pkg/llm"
)

// EZ 轻封装：在某个分组下一行注册动作接口
type EZ struct{ g *gin.RouterGroup }

func New(g *gin.RouterGroup) EZ { return EZ{g: g} }

// 绑定方式
type Binder string

const (
	BindJSON  Binder = "json"  // 从 JSON 绑定
	BindQuery Binder = "query" // 从 URL ?a=b 绑定
	BindNone  Binder = "none"  // 不绑定，自己从 c.Param / c.PostForm 取
)

// AErr 统一错误对象（配合 resp.Error(int, msg)）
type AErr struct {
	Code int
	Msg  string
	Err  error
}

func (e *AErr) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "action error"
}

func BadRequest(msg string) error   { return &AErr{Code: resp.CodeBadRequest, Msg: msg} }
func Unauthorized(msg string) error { return &AErr{Code: resp.CodeUnauthorized, Msg: msg} }
func Forbidden(msg string) error    { return &AErr{Code: resp.CodeForbidden, Msg: msg} }
func NotFound(msg string) error     { return &AErr{Code: resp.CodeNotFound, Msg: msg} }
func Internal(msg string, err error) error {
	return &AErr{Code: resp.CodeServerError, Msg: msg, Err: err}
}
func BadGateway(msg string, err error) error {
	return &AErr{Code: resp.CodeBadGateway, Msg: msg, Err: err}
}

// 动作定义：I 入参，O 出参
type Action[I any, O any] struct {
	Method  string   // "GET" | "POST" | "PUT" | "DELETE"
	Path    string   // 例："/auth/login"、"/api/outfit-ai/chat"
	Binder  Binder   // 绑定方式
	Auth    bool     // 是否要求登录（检查 userId）
	Roles   []string // 限定角色（可选）
	Handler func(c *gin.Context, in *I) (O, error)
}

// mapErr service 哨兵错误集中映射；AErr 原样透传
func mapErr(err error) *AErr {
	var ae *AErr
	if errors.As(err, &ae) {
		return ae
	}
	switch {
	case errors.Is(err, service.ErrNotFound):
		return &AErr{Code: resp.CodeNotFound, Err: err}
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrEmailTaken):
		return &AErr{Code: resp.CodeBadRequest, Err: err}
	case errors.Is(err, service.ErrInvalidCredentials):
		return &AErr{Code: resp.CodeUnauthorized, Err: err}
	case errors.Is(err, service.ErrUserInactive), errors.Is(err, service.ErrForbidden):
		return &AErr{Code: resp.CodeForbidden, Err: err}
	case errors.Is(err, llm.ErrUnavailable):
		return &AErr{Code: resp.CodeBadGateway, Err: err}
	default:
		return &AErr{Code: resp.CodeServerError, Err: err}
	}
}

func fail(c *gin.Context, code int, msg string) {
	c.JSON(resp.HTTPStatus(code), resp.Error(code, msg))
}

// RegisterAction 在当前 EZ 下注册动作接口
func RegisterAction[I any, O any](e EZ, a Action[I, O]) {
	h := func(c *gin.Context) {
		// 1) 鉴权/角色
		if a.Auth {
			uid := c.GetString("userId")
			if uid == "" {
				fail(c, resp.CodeUnauthorized, "unauthorized")
				return
			}
			if len(a.Roles) > 0 {
				role := c.GetString("role")
				ok := false
				for _, r := range a.Roles {
					if role == r {
						ok = true
						break
					}
				}
				if !ok {
					fail(c, resp.CodeForbidden, "forbidden")
					return
				}
			}
		}

		// 2) 绑定入参
		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		default: // BindNone: 不绑定
		}
		if bindErr != nil {
			fail(c, resp.CodeBadRequest, bindErr.Error())
			return
		}

		// 3) 执行 + 统一错误映射
		out, err := a.Handler(c, &in)
		if err != nil {
			ae := mapErr(err)
			fail(c, ae.Code, ae.Error())
			return
		}
		c.JSON(http.StatusOK, resp.OK(out))
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodPatch:
		e.g.PATCH(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default: // 默认 POST
		e.g.POST(a.Path, h)
	}
}
