package monitor

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/good-yellow-bee/gradtrack/internal/storage"
	"github.com/good-yellow-bee/gradtrack/internal/tracker"
)

func setupTracker(t *testing.T) *tracker.Tracker {
	t.Helper()
	store := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "monitor_test.db"))
	if err := store.Open(); err != nil {
		t.Fatalf("failed to open storage: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if err := store.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return tracker.New(store)
}

func TestCheckOnceMiss(t *testing.T) {
	tr := setupTracker(t)
	m := New(tr, WithChance(0), WithRand(rand.New(rand.NewSource(1))))

	id, err := m.CheckOnce(context.Background())
	if err != nil {
		t.Fatalf("CheckOnce() error: %v", err)
	}
	if id != "" {
		t.Errorf("CheckOnce() with zero chance filed notification %s", id)
	}

	count, err := tr.UnreadNotificationCount(context.Background())
	if err != nil {
		t.Fatalf("UnreadNotificationCount() error: %v", err)
	}
	if count != 0 {
		t.Errorf("unread count = %d, want 0", count)
	}
}

func TestCheckOnceHit(t *testing.T) {
	tr := setupTracker(t)
	m := New(tr, WithChance(1), WithRand(rand.New(rand.NewSource(1))))

	id, err := m.CheckOnce(context.Background())
	if err != nil {
		t.Fatalf("CheckOnce() error: %v", err)
	}
	if id == "" {
		t.Fatal("CheckOnce() with certain chance filed nothing")
	}

	list, err := tr.Notifications(context.Background())
	if err != nil {
		t.Fatalf("Notifications() error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d notifications, want 1", len(list))
	}
	n := list[0]
	if n.IsRead {
		t.Error("crawled notification is already read")
	}
	found := false
	for _, a := range crawlPool {
		if n.Title == a.Title && n.ProjectID == a.ProjectID && n.Link == a.Link {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("notification %q does not match any pool entry", n.Title)
	}
}

func TestCheckOnceAccumulates(t *testing.T) {
	tr := setupTracker(t)
	m := New(tr, WithChance(1), WithRand(rand.New(rand.NewSource(7))))

	for i := 0; i < 5; i++ {
		if _, err := m.CheckOnce(context.Background()); err != nil {
			t.Fatalf("CheckOnce() #%d error: %v", i, err)
		}
	}

	count, err := tr.UnreadNotificationCount(context.Background())
	if err != nil {
		t.Fatalf("UnreadNotificationCount() error: %v", err)
	}
	if count != 5 {
		t.Errorf("unread count = %d, want 5", count)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	tr := setupTracker(t)
	m := New(tr,
		WithInterval(10*time.Millisecond),
		WithChance(1),
		WithRand(rand.New(rand.NewSource(1))))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := m.Run(ctx); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	count, err := tr.UnreadNotificationCount(context.Background())
	if err != nil {
		t.Fatalf("UnreadNotificationCount() error: %v", err)
	}
	if count == 0 {
		t.Error("Run() filed no notifications before cancel")
	}
}
