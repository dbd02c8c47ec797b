package service

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Thaihung204/GENTRY-BE/internal/core/auth"
	"github.com/Thaihung204/GENTRY-BE/internal/domain"
	"github.com/Thaihung204/GENTRY-BE/pkg/utils"
)

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Gender   string
}

// TokenPair 一次签发的访问 + 刷新令牌
type TokenPair struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"tokenExpiry"`
}

type LoginResult struct {
	User *domain.User `json:"user"`
	TokenPair
}

type AuthService struct {
	users domain.UserRepository
	jwter *auth.JWTer
	log   *zap.Logger
}

func NewAuthService(users domain.UserRepository, jwter *auth.JWTer, log *zap.Logger) *AuthService {
	return &AuthService{users: users, jwter: jwter, log: log.Named("auth")}
}

func (s *AuthService) Register(in RegisterInput) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, ErrValidation
	}
	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		FullName:     strings.TrimSpace(in.FullName),
		PasswordHash: utils.HashPassword(in.Password),
		Role:         domain.RoleUser,
		Gender:       in.Gender,
		IsActive:     true,
	}
	if u.FullName == "" {
		if at := strings.IndexByte(email, '@'); at > 0 {
			u.FullName = email[:at]
		}
	}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	s.log.Info("user registered", zap.String("uid", u.ID))
	return u, nil
}

func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.IsActive || !utils.CheckPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(u)
}

func (s *AuthService) CurrentUser(uid string) (*domain.User, error) {
	u, err := s.users.FindByID(uid)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.IsActive {
		return nil, ErrNotFound
	}
	return u, nil
}

func (s *AuthService) ResetPassword(email, newPassword string) error {
	if newPassword == "" {
		return ErrValidation
	}
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return err
	}
	if u == nil || !u.IsActive {
		return ErrNotFound
	}
	u.PasswordHash = utils.HashPassword(newPassword)
	return s.users.Update(u)
}

// Refresh 允许 access token 已过期，但签名必须有效；用户必须仍然在册
func (s *AuthService) Refresh(accessToken string) (*LoginResult, error) {
	claims, err := s.jwter.ParseExpired(accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	u, err := s.users.FindByID(claims.UID)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.IsActive {
		return nil, ErrUserInactive
	}
	return s.issue(u)
}

func (s *AuthService) issue(u *domain.User) (*LoginResult, error) {
	tok, exp, err := s.jwter.Issue(u.ID, u.Email, u.FullName, u.Role, u.IsPremium)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		User: u,
		TokenPair: TokenPair{
			AccessToken:  tok,
			RefreshToken: auth.NewRefreshToken(),
			ExpiresAt:    exp,
		},
	}, nil
}
