package service

import (
	"context"
	"testing"
	"time"

	"Event_Admin/internal/model"
)

func TestStatsOverview(t *testing.T) {
	store := newMemStore()
	base := fixedNow()

	store.users["u1"] = model.User{ID: "u1", Name: "Alice", Status: model.StatusActive, CreatedAt: base}
	store.users["u2"] = model.User{ID: "u2", Name: "Bob", Status: model.StatusBanned, CreatedAt: base.Add(-time.Hour)}
	store.users["u3"] = model.User{ID: "u3", Name: "Cara", Status: model.StatusDisabled, CreatedAt: base.Add(-2 * time.Hour)}

	store.events["e1"] = model.Event{ID: "e1", Title: "Concert", Type: model.EventPublic, CreatedAt: base.Add(-time.Minute)}
	store.events["e2"] = model.Event{ID: "e2", Title: "Dinner", Type: "Private", CreatedAt: base.Add(-2 * time.Minute)}

	store.reports["r1"] = model.Report{ID: "r1", Reason: "spam", EventTitle: "Concert", Status: model.ReportPending, CreatedAt: base.Add(-time.Second)}
	store.reports["r2"] = model.Report{ID: "r2", Reason: "scam", EventTitle: "Dinner", Status: model.ReportResolved, CreatedAt: base.Add(-time.Minute)}

	svc := &StatsService{users: store, events: &memEventStore{store}, reports: &memReportStore{store}}

	stats, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}

	if stats.TotalUsers != 3 || stats.TotalEvents != 2 || stats.TotalReports != 2 {
		t.Fatalf("totals wrong: %+v", stats)
	}
	if stats.ActiveUsers != 1 {
		t.Fatalf("active users = %d, want 1", stats.ActiveUsers)
	}
	if stats.PublicEvents != 1 || stats.PrivateEvents != 1 {
		t.Fatalf("event split wrong: %+v", stats)
	}
	if stats.PendingReports != 1 {
		t.Fatalf("pending reports = %d, want 1", stats.PendingReports)
	}

	if len(stats.RecentActivity) != 5 {
		t.Fatalf("expected 5 recent activities (2 users + 2 events + 1 report), got %d", len(stats.RecentActivity))
	}
	for i := 1; i < len(stats.RecentActivity); i++ {
		if stats.RecentActivity[i].Timestamp.After(stats.RecentActivity[i-1].Timestamp) {
			t.Fatalf("activity feed not sorted newest first at %d", i)
		}
	}
}
