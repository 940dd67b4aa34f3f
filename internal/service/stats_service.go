package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"Event_Admin/internal/model"
	"Event_Admin/internal/repository/mysql"
)

type Stats struct {
	TotalUsers     int `json:"total_users"`
	TotalEvents    int `json:"total_events"`
	TotalReports   int `json:"total_reports"`
	ActiveUsers    int `json:"active_users"`
	PublicEvents   int `json:"public_events"`
	PrivateEvents  int `json:"private_events"`
	PendingReports int `json:"pending_reports"`

	RecentActivity []Activity `json:"recent_activity"`
}

type Activity struct {
	Type      string    `json:"type"` // user / event / report
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type StatsService struct {
	users   userStore
	events  eventStore
	reports reportStore
}

func NewStatsService() *StatsService {
	return &StatsService{
		users:   &mysql.UserRepository{},
		events:  &mysql.EventRepository{},
		reports: &mysql.ReportRepository{},
	}
}

// Overview 首页汇总，三个集合全量拉一遍后在内存里算
func (s *StatsService) Overview(ctx context.Context) (*Stats, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.events.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	reports, err := s.reports.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	st := &Stats{
		TotalUsers:   len(users),
		TotalEvents:  len(events),
		TotalReports: len(reports),
	}
	for _, u := range users {
		if u.Status != model.StatusBanned && u.Status != model.StatusDisabled {
			st.ActiveUsers++
		}
	}
	for _, e := range events {
		switch strings.ToLower(e.Type) {
		case model.EventPublic:
			st.PublicEvents++
		case model.EventPrivate:
			st.PrivateEvents++
		}
	}
	for _, r := range reports {
		if r.Status == model.ReportPending {
			st.PendingReports++
		}
	}

	st.RecentActivity = recentActivity(users, events, reports)
	return st, nil
}

// recentActivity 最近动态：2 个新用户 + 2 个新活动 + 1 条新举报，按时间倒序
func recentActivity(users []model.User, events []model.Event, reports []model.Report) []Activity {
	var acts []Activity

	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	for i, u := range users {
		if i >= 2 {
			break
		}
		name := u.Name
		if name == "" {
			name = u.Email
		}
		acts = append(acts, Activity{
			Type:      "user",
			Message:   fmt.Sprintf("New user registered: %s", name),
			Timestamp: u.CreatedAt,
		})
	}

	sort.Slice(events, func(i, j int) bool { return events[i].CreatedAt.After(events[j].CreatedAt) })
	for i, e := range events {
		if i >= 2 {
			break
		}
		acts = append(acts, Activity{
			Type:      "event",
			Message:   fmt.Sprintf("New %s event created: %q", e.Type, e.Title),
			Timestamp: e.CreatedAt,
		})
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].CreatedAt.After(reports[j].CreatedAt) })
	for i, r := range reports {
		if i >= 1 {
			break
		}
		acts = append(acts, Activity{
			Type:      "report",
			Message:   fmt.Sprintf("New report: %s on %q", r.Reason, r.EventTitle),
			Timestamp: r.CreatedAt,
		})
	}

	sort.Slice(acts, func(i, j int) bool { return acts[i].Timestamp.After(acts[j].Timestamp) })
	return acts
}
