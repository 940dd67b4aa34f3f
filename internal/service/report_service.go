package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"Event_Admin/internal/model"
	"Event_Admin/internal/pkg/listview"
	"Event_Admin/internal/repository/mysql"

	"github.com/google/uuid"
)

var (
	ErrReportClosed = errors.New("report already closed")
	ErrBadAction    = errors.New("unknown action")
)

type reportStore interface {
	FindAll(ctx context.Context) ([]model.Report, error)
	FindByID(ctx context.Context, id string) (*model.Report, error)
	Resolve(ctx context.Context, id string, fields map[string]any) error
	ResolveWithUserBan(ctx context.Context, id string, reportFields map[string]any, userID string, userFields map[string]any, note *model.Notification, audit *model.ModerationOutbox) error
	ResolveWithEventDelete(ctx context.Context, id string, reportFields map[string]any, eventID string, note *model.Notification, audit *model.ModerationOutbox) error
}

// ReportService 把一个管理动作翻译成一组外部写。
// 成组的写在仓储层单事务执行，失败时调用方拿不到更新后的快照，本地状态不会被污染
type ReportService struct {
	repo     reportStore
	users    userStore
	pageSize int
	banDays  int
	now      func() time.Time
	sendMail func(to, reason string) error // nil 时不发警告邮件
}

func NewReportService(pageSize, banDays int, sendMail func(to, reason string) error) *ReportService {
	if banDays <= 0 {
		banDays = DefaultBanDays
	}
	return &ReportService{
		repo:     &mysql.ReportRepository{},
		users:    &mysql.UserRepository{},
		pageSize: pageSize,
		banDays:  banDays,
		now:      time.Now,
		sendMail: sendMail,
	}
}

func (s *ReportService) List(ctx context.Context, query, status string, page int) (listview.View[model.Report], error) {
	reports, err := s.repo.FindAll(ctx)
	if err != nil {
		return listview.View[model.Report]{}, err
	}

	ctl := listview.New(reports, listview.Config[model.Report]{
		SearchFields: func(r model.Report) []string {
			return []string{r.Reason, r.Description, r.EventTitle, r.ReporterName}
		},
		CategoryOf: func(r model.Report) string { return r.Status },
		PageSize:   s.pageSize,
	})
	ctl.SetQuery(query)
	ctl.SetCategory(status)

	if !pageInRange(page, ctl.PageCount()) {
		return listview.View[model.Report]{}, ErrPageOutOfRange
	}
	ctl.GoToPage(page)
	return ctl.View(), nil
}

// resolved 返回打好终态补丁的新副本，原快照不动
func resolved(r model.Report, status, action string, at time.Time) model.Report {
	r.Status = status
	r.Action = action
	r.ActionTakenAt = &at
	return r
}

// Resolve 举报处置分发。pending -> 终态只发生一次，重复处置报 ErrReportClosed
func (s *ReportService) Resolve(ctx context.Context, reportID, action, actorID string) (*model.Report, error) {
	report, err := s.repo.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.Status != model.ReportPending {
		return nil, ErrReportClosed
	}

	now := s.now()

	switch action {
	case model.ActionReviewEvent:
		err = s.repo.Resolve(ctx, reportID, terminalFields(model.ReportResolved, model.ActionReviewEvent, now))
		if err != nil {
			return nil, s.mapClosed(err)
		}
		out := resolved(*report, model.ReportResolved, model.ActionReviewEvent, now)
		return &out, nil

	case model.ActionNoAction:
		err = s.repo.Resolve(ctx, reportID, terminalFields(model.ReportRejected, model.ActionNoAction, now))
		if err != nil {
			return nil, s.mapClosed(err)
		}
		out := resolved(*report, model.ReportRejected, model.ActionNoAction, now)
		return &out, nil

	case model.ActionUserBanned:
		bannedAt, banUntil := BanWindow(now, s.banDays)
		userFields := map[string]any{
			"status":    model.StatusBanned,
			"banned_at": bannedAt,
			"ban_until": banUntil,
		}
		err = s.repo.ResolveWithUserBan(ctx, reportID,
			terminalFields(model.ReportResolved, model.ActionUserBanned, now),
			report.EventHostID, userFields,
			s.warningNote(report, now),
			s.audit(report, model.ActionUserBanned, report.EventHostID, actorID))
		if err != nil {
			return nil, s.mapClosed(err)
		}
		s.mailWarning(ctx, report)
		out := resolved(*report, model.ReportResolved, model.ActionUserBanned, now)
		return &out, nil

	case model.ActionEventDeleted:
		err = s.repo.ResolveWithEventDelete(ctx, reportID,
			terminalFields(model.ReportResolved, model.ActionEventDeleted, now),
			report.EventID,
			s.warningNote(report, now),
			s.audit(report, model.ActionEventDeleted, report.EventID, actorID))
		if err != nil {
			return nil, s.mapClosed(err)
		}
		s.mailWarning(ctx, report)
		out := resolved(*report, model.ReportResolved, model.ActionEventDeleted, now)
		return &out, nil
	}

	return nil, ErrBadAction
}

func (s *ReportService) mapClosed(err error) error {
	if errors.Is(err, mysql.ErrReportClosed) {
		return ErrReportClosed
	}
	return err
}

func terminalFields(status, action string, at time.Time) map[string]any {
	return map[string]any{
		"status":          status,
		"action":          action,
		"action_taken_at": at,
	}
}

func (s *ReportService) warningNote(r *model.Report, at time.Time) *model.Notification {
	if r.EventHostID == "" {
		return nil
	}
	return &model.Notification{
		ID:        uuid.NewString(),
		UserID:    r.EventHostID,
		Type:      "warning",
		Title:     "Warning: Content Violation",
		Message:   fmt.Sprintf("Your content has been reported for: %s. Please review our community guidelines.", r.Reason),
		ReportID:  r.ID,
		EventID:   r.EventID,
		Severity:  "medium",
		CreatedAt: at,
	}
}

func (s *ReportService) audit(r *model.Report, action, targetID, actorID string) *model.ModerationOutbox {
	payload, _ := json.Marshal(map[string]string{
		"report_id": r.ID,
		"event_id":  r.EventID,
		"host_id":   r.EventHostID,
		"reason":    r.Reason,
	})
	return &model.ModerationOutbox{
		EventID:  uuid.NewString(),
		ActorID:  actorID,
		Action:   action,
		TargetID: targetID,
		Payload:  string(payload),
	}
}

// mailWarning 尽力而为，邮件失败只记日志，不影响已落库的处置
func (s *ReportService) mailWarning(ctx context.Context, r *model.Report) {
	if s.sendMail == nil || r.EventHostID == "" {
		return
	}
	host, err := s.users.FindByID(ctx, r.EventHostID)
	if err != nil {
		log.Printf("warning mail: lookup host %s failed: %v", r.EventHostID, err)
		return
	}
	if err := s.sendMail(host.Email, r.Reason); err != nil {
		log.Printf("warning mail to %s failed: %v", host.Email, err)
	}
}
