package service

import (
	"context"
	"errors"
	"testing"

	"Event_Admin/internal/model"

	"gorm.io/gorm"
)

func newEventFixture() (*EventService, *memEventStore) {
	store := newMemStore()
	store.events["e1"] = model.Event{ID: "e1", Title: "Concert", Description: "open air", Location: "park", Type: model.EventPublic, HostID: "u1"}
	store.events["e2"] = model.Event{ID: "e2", Title: "Dinner", Description: "italian", Location: "downtown", Type: model.EventPrivate, HostID: "u2"}

	events := &memEventStore{store}
	return &EventService{repo: events, pageSize: 6, now: fixedNow}, events
}

func TestEventList(t *testing.T) {
	t.Run("type filter", func(t *testing.T) {
		svc, _ := newEventFixture()
		view, err := svc.List(context.Background(), "", model.EventPrivate, 1)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if view.FilteredCount != 1 || view.Items[0].ID != "e2" {
			t.Fatalf("unexpected view %+v", view)
		}
	})

	t.Run("search covers location", func(t *testing.T) {
		svc, _ := newEventFixture()
		view, err := svc.List(context.Background(), "PARK", "all", 1)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if view.FilteredCount != 1 || view.Items[0].ID != "e1" {
			t.Fatalf("unexpected view %+v", view)
		}
	})
}

func TestEventDelete(t *testing.T) {
	t.Run("delete removes the event and records an audit entry", func(t *testing.T) {
		svc, store := newEventFixture()

		if err := svc.Delete(context.Background(), "e1", "admin1"); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if _, ok := store.events["e1"]; ok {
			t.Fatal("event still present")
		}
		if len(store.audits) != 1 || store.audits[0].Action != model.ActionEventDeleted || store.audits[0].TargetID != "e1" {
			t.Fatalf("audit missing or wrong: %+v", store.audits)
		}
	})

	t.Run("unknown event reports not found", func(t *testing.T) {
		svc, _ := newEventFixture()

		if err := svc.Delete(context.Background(), "missing", "admin1"); !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Fatalf("expected record not found, got %v", err)
		}
	})
}
