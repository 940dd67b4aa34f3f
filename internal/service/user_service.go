package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"Event_Admin/internal/model"
	"Event_Admin/internal/pkg/listview"
	"Event_Admin/internal/repository/mysql"
)

var (
	ErrPageOutOfRange = errors.New("page out of range")
	ErrNameRequired   = errors.New("name is required")
	ErrEmailRequired  = errors.New("email is required")
	ErrEmailInvalid   = errors.New("invalid email address")
	ErrBadStatus      = errors.New("unknown status")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type userStore interface {
	FindAll(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
}

type UserService struct {
	repo     userStore
	pageSize int
	banDays  int
	now      func() time.Time
}

func NewUserService(pageSize, banDays int) *UserService {
	if banDays <= 0 {
		banDays = DefaultBanDays
	}
	return &UserService{
		repo:     &mysql.UserRepository{},
		pageSize: pageSize,
		banDays:  banDays,
		now:      time.Now,
	}
}

// List 全量拉取后内存过滤分页。admin 账号先于任何搜索条件被剔除
func (s *UserService) List(ctx context.Context, query, status string, page int) (listview.View[model.User], error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return listview.View[model.User]{}, err
	}

	ctl := listview.New(users, listview.Config[model.User]{
		SearchFields: func(u model.User) []string { return []string{u.Name, u.Email} },
		CategoryOf:   func(u model.User) string { return u.Status },
		Include:      func(u model.User) bool { return u.Role != model.RoleAdmin },
		PageSize:     s.pageSize,
	})
	ctl.SetQuery(query)
	ctl.SetCategory(status)

	if !pageInRange(page, ctl.PageCount()) {
		return listview.View[model.User]{}, ErrPageOutOfRange
	}
	ctl.GoToPage(page)
	return ctl.View(), nil
}

// StatusChange 状态动作之后反馈给调用方做本地补丁的增量
type StatusChange struct {
	Status   string     `json:"status"`
	BannedAt *time.Time `json:"banned_at,omitempty"`
	BanUntil *time.Time `json:"ban_until,omitempty"`
}

// SetStatus 状态唯一写入口。status=banned 时在这里统一盖上封禁窗口
func (s *UserService) SetStatus(ctx context.Context, id, status string) (*StatusChange, error) {
	switch status {
	case model.StatusActive, model.StatusDisabled, model.StatusBanned:
	default:
		return nil, ErrBadStatus
	}

	change := &StatusChange{Status: status}
	fields := map[string]any{"status": status}
	if status == model.StatusBanned {
		bannedAt, banUntil := BanWindow(s.now(), s.banDays)
		fields["banned_at"] = bannedAt
		fields["ban_until"] = banUntil
		change.BannedAt = &bannedAt
		change.BanUntil = &banUntil
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return change, nil
}

// Update 只允许改 name/email，校验失败前不会发出任何写
func (s *UserService) Update(ctx context.Context, id, name, email string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return ErrNameRequired
	}
	if email == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return ErrEmailInvalid
	}

	return s.repo.UpdateFields(ctx, id, map[string]any{
		"name":  name,
		"email": email,
	})
}
