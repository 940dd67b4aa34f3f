package service

import (
	"context"
	"errors"
	"time"

	"Event_Admin/internal/model"
	"Event_Admin/internal/repository/mysql"

	"gorm.io/gorm"
)

var errInjected = errors.New("injected store failure")

// memStore 内存版文档存储。写操作按事务语义执行：失败时不留下任何状态变化，
// attempts 记录尝试过的写，writes 只记录真正生效的写
type memStore struct {
	users   map[string]model.User
	reports map[string]model.Report
	events  map[string]model.Event
	notes   []model.Notification
	audits  []model.ModerationOutbox

	failOn   string // 注入失败的写操作名
	attempts []string
	writes   []string
}

func newMemStore() *memStore {
	return &memStore{
		users:   map[string]model.User{},
		reports: map[string]model.Report{},
		events:  map[string]model.Event{},
	}
}

func applyUserFields(u *model.User, fields map[string]any) {
	for k, v := range fields {
		switch k {
		case "name":
			u.Name = v.(string)
		case "email":
			u.Email = v.(string)
		case "status":
			u.Status = v.(string)
		case "banned_at":
			t := v.(time.Time)
			u.BannedAt = &t
		case "ban_until":
			t := v.(time.Time)
			u.BanUntil = &t
		}
	}
}

func applyReportFields(r *model.Report, fields map[string]any) {
	for k, v := range fields {
		switch k {
		case "status":
			r.Status = v.(string)
		case "action":
			r.Action = v.(string)
		case "action_taken_at":
			t := v.(time.Time)
			r.ActionTakenAt = &t
		}
	}
}

// --- userStore ---

func (s *memStore) FindAll(ctx context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *memStore) FindByID(ctx context.Context, id string) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (s *memStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memStore) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	s.attempts = append(s.attempts, "user.update")
	if s.failOn == "user.update" {
		return errInjected
	}
	u, ok := s.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	applyUserFields(&u, fields)
	s.users[id] = u
	s.writes = append(s.writes, "user.update")
	return nil
}

// reportStore 与 userStore 的 FindAll/FindByID 同名，拆一个包装类型给 ReportService 用
type memReportStore struct{ *memStore }

func (s *memReportStore) FindAll(ctx context.Context) ([]model.Report, error) {
	out := make([]model.Report, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, r)
	}
	return out, nil
}

func (s *memReportStore) FindByID(ctx context.Context, id string) (*model.Report, error) {
	r, ok := s.reports[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &r, nil
}

func (s *memReportStore) Resolve(ctx context.Context, id string, fields map[string]any) error {
	s.attempts = append(s.attempts, "report.resolve")
	if s.failOn == "report.resolve" {
		return errInjected
	}
	r, ok := s.reports[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if r.Status != model.ReportPending {
		return mysql.ErrReportClosed
	}
	applyReportFields(&r, fields)
	s.reports[id] = r
	s.writes = append(s.writes, "report.resolve")
	return nil
}

func (s *memReportStore) ResolveWithUserBan(ctx context.Context, id string, reportFields map[string]any, userID string, userFields map[string]any, note *model.Notification, audit *model.ModerationOutbox) error {
	r, ok := s.reports[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if r.Status != model.ReportPending {
		return mysql.ErrReportClosed
	}

	// 第一笔：用户封禁
	s.attempts = append(s.attempts, "user.update")
	if s.failOn == "user.update" {
		return errInjected
	}
	// 第二笔：举报终态。失败时整个事务回滚，前面的写不落地
	s.attempts = append(s.attempts, "report.resolve")
	if s.failOn == "report.resolve" {
		return errInjected
	}

	u, ok := s.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	applyUserFields(&u, userFields)
	s.users[userID] = u
	s.writes = append(s.writes, "user.update")

	applyReportFields(&r, reportFields)
	s.reports[id] = r
	s.writes = append(s.writes, "report.resolve")

	if note != nil {
		s.notes = append(s.notes, *note)
	}
	if audit != nil {
		s.audits = append(s.audits, *audit)
	}
	return nil
}

func (s *memReportStore) ResolveWithEventDelete(ctx context.Context, id string, reportFields map[string]any, eventID string, note *model.Notification, audit *model.ModerationOutbox) error {
	r, ok := s.reports[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if r.Status != model.ReportPending {
		return mysql.ErrReportClosed
	}

	s.attempts = append(s.attempts, "event.delete")
	if s.failOn == "event.delete" {
		return errInjected
	}
	s.attempts = append(s.attempts, "report.resolve")
	if s.failOn == "report.resolve" {
		return errInjected
	}

	delete(s.events, eventID)
	s.writes = append(s.writes, "event.delete")

	applyReportFields(&r, reportFields)
	s.reports[id] = r
	s.writes = append(s.writes, "report.resolve")

	if note != nil {
		s.notes = append(s.notes, *note)
	}
	if audit != nil {
		s.audits = append(s.audits, *audit)
	}
	return nil
}

// memEventStore 给 EventService/StatsService 用
type memEventStore struct{ *memStore }

func (s *memEventStore) FindAll(ctx context.Context) ([]model.Event, error) {
	out := make([]model.Event, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e)
	}
	return out, nil
}

func (s *memEventStore) FindByID(ctx context.Context, id string) (*model.Event, error) {
	e, ok := s.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}

func (s *memEventStore) DeleteWithAudit(ctx context.Context, id string, audit *model.ModerationOutbox) error {
	s.attempts = append(s.attempts, "event.delete")
	if s.failOn == "event.delete" {
		return errInjected
	}
	if _, ok := s.events[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.events, id)
	s.writes = append(s.writes, "event.delete")
	if audit != nil {
		s.audits = append(s.audits, *audit)
	}
	return nil
}
