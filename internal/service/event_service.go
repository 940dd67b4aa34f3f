package service

import (
	"context"
	"encoding/json"
	"time"

	"Event_Admin/internal/model"
	"Event_Admin/internal/pkg/listview"
	"Event_Admin/internal/repository/mysql"

	"github.com/google/uuid"
)

type eventStore interface {
	FindAll(ctx context.Context) ([]model.Event, error)
	FindByID(ctx context.Context, id string) (*model.Event, error)
	DeleteWithAudit(ctx context.Context, id string, audit *model.ModerationOutbox) error
}

type EventService struct {
	repo     eventStore
	pageSize int
	now      func() time.Time
}

func NewEventService(pageSize int) *EventService {
	return &EventService{
		repo:     &mysql.EventRepository{},
		pageSize: pageSize,
		now:      time.Now,
	}
}

func (s *EventService) List(ctx context.Context, query, typ string, page int) (listview.View[model.Event], error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return listview.View[model.Event]{}, err
	}

	ctl := listview.New(events, listview.Config[model.Event]{
		SearchFields: func(e model.Event) []string { return []string{e.Title, e.Description, e.Location} },
		CategoryOf:   func(e model.Event) string { return e.Type },
		PageSize:     s.pageSize,
	})
	ctl.SetQuery(query)
	ctl.SetCategory(typ)

	if !pageInRange(page, ctl.PageCount()) {
		return listview.View[model.Event]{}, ErrPageOutOfRange
	}
	ctl.GoToPage(page)
	return ctl.View(), nil
}

// Delete 硬删除，不可恢复；审计记录随事务落库
func (s *EventService) Delete(ctx context.Context, id, actorID string) error {
	ev, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	payload, _ := json.Marshal(map[string]string{
		"event_id": ev.ID,
		"title":    ev.Title,
		"host_id":  ev.HostID,
	})
	audit := &model.ModerationOutbox{
		EventID:  uuid.NewString(),
		ActorID:  actorID,
		Action:   model.ActionEventDeleted,
		TargetID: ev.ID,
		Payload:  string(payload),
	}
	return s.repo.DeleteWithAudit(ctx, id, audit)
}
