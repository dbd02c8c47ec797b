package service

import "errors"

// 业务错误，transport 层统一映射到 HTTP 状态码
var (
	ErrNotFound           = errors.New("resource not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user not found or deactivated")
	ErrForbidden          = errors.New("forbidden")
	ErrValidation         = errors.New("invalid input")
)
