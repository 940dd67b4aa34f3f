package service

import (
	"context"
	"errors"

	"Event_Admin/internal/model"
	"Event_Admin/internal/pkg"
	"Event_Admin/internal/repository/mysql"
	"Event_Admin/internal/repository/redis"

	"golang.org/x/crypto/bcrypt"
)

const deniedNotAdmin = "access denied: only administrators can access this dashboard"

// SessionOutcome 准入结果。Denied 时 Tokens 一定为 nil，不存在"半登录"状态
type SessionOutcome struct {
	Admitted bool        `json:"admitted"`
	Reason   string      `json:"reason,omitempty"`
	Tokens   *pkg.Pair   `json:"tokens,omitempty"`
	Admin    *model.User `json:"admin,omitempty"`
}

type authUserStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
}

type sessionStore interface {
	AddToken(adminID, token string) error
	DeleteToken(adminID string) error
}

type AuthService struct {
	users    authUserStore
	sessions sessionStore
}

func NewAuthService() *AuthService {
	return &AuthService{
		users:    &mysql.UserRepository{},
		sessions: &redis.SessionRepository{},
	}
}

// Login 密码校验之后同步查角色；非 admin 不发 token，也不留会话
func (s *AuthService) Login(ctx context.Context, email, password string) (*SessionOutcome, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return &SessionOutcome{Reason: "invalid email or password"}, nil
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return &SessionOutcome{Reason: "invalid email or password"}, nil
	}

	if user.Role != model.RoleAdmin {
		return &SessionOutcome{Reason: deniedNotAdmin}, nil
	}

	tokens, err := pkg.GeneratePair(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	if err = s.sessions.AddToken(user.ID, tokens.AccessToken); err != nil {
		return nil, err
	}

	return &SessionOutcome{Admitted: true, Tokens: tokens, Admin: user}, nil
}

func (s *AuthService) Logout(adminID string) error {
	return s.sessions.DeleteToken(adminID)
}

// Refresh 换新 token 前重新确认角色，降级的账号拿不到新会话
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*pkg.Pair, error) {
	tokens, err := pkg.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}

	claims, err := pkg.ParseAccess(tokens.AccessToken)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil || user.Role != model.RoleAdmin {
		_ = s.sessions.DeleteToken(claims.UserID)
		return nil, errors.New(deniedNotAdmin)
	}

	if err = s.sessions.AddToken(user.ID, tokens.AccessToken); err != nil {
		return nil, err
	}
	return tokens, nil
}
