package tui

import (
	"strings"
	"testing"
	"time"

	"taskspark/internal/model"
)

func strPtr(s string) *string { return &s }

func TestTaskRowTitleMarksOverdue(t *testing.T) {
	t.Setenv("TASKSPARK_TUI_GLYPHS", "unicode")
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	row := taskRowItem{
		task: model.Task{
			ID:       "t1",
			Title:    "Pay rent",
			DueDate:  strPtr("2024-06-01"),
			Priority: model.PriorityHigh,
			Category: "Home",
		},
		now: now,
	}

	out := row.Title()
	if !strings.Contains(out, "overdue 2024-06-01") {
		t.Fatalf("expected overdue marker, got: %q", out)
	}
	if !strings.Contains(out, "☐") {
		t.Fatalf("expected unchecked box, got: %q", out)
	}
	if !strings.Contains(out, "#Home") {
		t.Fatalf("expected category tag, got: %q", out)
	}
}

func TestTaskRowTitleCompleted(t *testing.T) {
	t.Setenv("TASKSPARK_TUI_GLYPHS", "unicode")
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	row := taskRowItem{
		task: model.Task{
			ID:        "t1",
			Title:     "Pay rent",
			Completed: true,
			DueDate:   strPtr("2024-06-01"),
			Priority:  model.PriorityLow,
		},
		now: now,
	}

	out := row.Title()
	if !strings.Contains(out, "☑") {
		t.Fatalf("expected checked box, got: %q", out)
	}
	// Completed tasks are never overdue.
	if strings.Contains(out, "overdue") {
		t.Fatalf("completed task must not show overdue, got: %q", out)
	}
	if !strings.Contains(out, "due 2024-06-01") {
		t.Fatalf("expected plain due label, got: %q", out)
	}
}

func TestTaskRowTitleUntitledFallback(t *testing.T) {
	row := taskRowItem{task: model.Task{ID: "t1", Title: "   "}}
	if !strings.Contains(row.Title(), "(untitled)") {
		t.Fatalf("expected untitled placeholder, got: %q", row.Title())
	}
}

func TestGlyphCheckboxASCII(t *testing.T) {
	t.Setenv("TASKSPARK_TUI_GLYPHS", "ascii")
	if got := glyphCheckbox(true); got != "[x]" {
		t.Fatalf("expected [x], got %q", got)
	}
	if got := glyphCheckbox(false); got != "[ ]" {
		t.Fatalf("expected [ ], got %q", got)
	}
}
