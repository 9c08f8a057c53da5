package store

import (
	"context"
	"reflect"
	"testing"
	"time"

	"taskspark/internal/model"
)

func testStore(t *testing.T) Store {
	t.Helper()
	return Store{Dir: t.TempDir()}
}

func TestSaveLoadTasks_RoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	due := "2024-07-01"
	want := []model.Task{
		{
			ID:          "id-1",
			Title:       "Write report",
			Description: "quarterly numbers",
			Completed:   false,
			CreatedAt:   time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC),
			DueDate:     &due,
			Priority:    model.PriorityHigh,
			Category:    "Work",
		},
		{
			ID:        "id-2",
			Title:     "No deadline",
			Completed: true,
			CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			Priority:  model.PriorityLow,
			Category:  "Other",
		},
	}

	if err := s.SaveTasks(ctx, "alice", want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.LoadTasks(ctx, "alice")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round-trip mismatch:\n got: %+v\nwant: %+v", got, want)
	}
	if got[1].DueDate != nil {
		t.Fatalf("expected absent due date to stay absent, got %v", *got[1].DueDate)
	}
}

func TestLoadTasks_MissingCollectionIsEmpty(t *testing.T) {
	s := testStore(t)
	got, err := s.LoadTasks(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty collection, got %+v", got)
	}
}

func TestLoadTasks_CorruptPayloadRecoversAsEmpty(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, TasksKey("alice"), `{"not": "an array"`); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := s.LoadTasks(ctx, "alice")
	if err != nil {
		t.Fatalf("load should recover, got error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty collection, got %+v", got)
	}
}

func TestTasksAreScopedPerUser(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	alice := []model.Task{{ID: "a", Title: "Alice's", Priority: model.PriorityMedium, Category: "Other", CreatedAt: time.Now().UTC()}}
	if err := s.SaveTasks(ctx, "alice", alice); err != nil {
		t.Fatalf("save alice: %v", err)
	}

	bob, err := s.LoadTasks(ctx, "bob")
	if err != nil {
		t.Fatalf("load bob: %v", err)
	}
	if len(bob) != 0 {
		t.Fatalf("expected bob's collection to be independent, got %+v", bob)
	}

	if err := s.SaveTasks(ctx, "bob", []model.Task{{ID: "b", Title: "Bob's"}}); err != nil {
		t.Fatalf("save bob: %v", err)
	}
	got, err := s.LoadTasks(ctx, "alice")
	if err != nil {
		t.Fatalf("reload alice: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("alice's collection affected by bob's save: %+v", got)
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if _, ok, err := s.CurrentUser(ctx); err != nil || ok {
		t.Fatalf("expected logged out initially (ok=%v err=%v)", ok, err)
	}

	u, err := s.Login(ctx, "  alice  ")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u != "alice" {
		t.Fatalf("expected trimmed username, got %q", u)
	}

	// A fresh Store value over the same dir restores the session.
	s2 := Store{Dir: s.Dir}
	got, ok, err := s2.CurrentUser(ctx)
	if err != nil || !ok || got != "alice" {
		t.Fatalf("expected restored session alice, got %q (ok=%v err=%v)", got, ok, err)
	}

	if err := s.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok, _ := s.CurrentUser(ctx); ok {
		t.Fatalf("expected logged out after logout")
	}
}

func TestLogin_BlankUsernameRejected(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for _, in := range []string{"", "   "} {
		if _, err := s.Login(ctx, in); err != ErrEmptyUsername {
			t.Fatalf("Login(%q): expected ErrEmptyUsername, got %v", in, err)
		}
	}
	if _, ok, _ := s.CurrentUser(ctx); ok {
		t.Fatalf("rejected login must not persist a session")
	}
}

func TestLogout_KeepsTaskCollections(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if _, err := s.Login(ctx, "alice"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := s.SaveTasks(ctx, "alice", []model.Task{{ID: "a", Title: "Keep me"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}

	got, err := s.LoadTasks(ctx, "alice")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("logout deleted the task collection: %+v", got)
	}
}

func TestEventLog_AppendAndTail(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for _, typ := range []string{"task.create", "task.toggle", "task.delete"} {
		if err := s.AppendEvent(ctx, "alice", typ, "id-1", map[string]any{"via": "test"}); err != nil {
			t.Fatalf("append %s: %v", typ, err)
		}
	}

	all, err := s.ReadEventsTail(ctx, 0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}

	tail, err := s.ReadEventsTail(ctx, 2)
	if err != nil {
		t.Fatalf("tail: %v", err)
	}
	if len(tail) != 2 {
		t.Fatalf("expected tail of 2, got %d", len(tail))
	}
	if tail[0].Actor != "alice" || tail[0].Type == "" {
		t.Fatalf("unexpected event fields: %+v", tail[0])
	}
	if tail[1].TS.Before(tail[0].TS) {
		t.Fatalf("expected chronological order, got %v then %v", tail[0].TS, tail[1].TS)
	}
}
