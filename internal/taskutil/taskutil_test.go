package taskutil

import (
	"testing"

	"taskspark/internal/model"
)

func TestNormalizePriority(t *testing.T) {
	cases := []struct {
		in      string
		want    model.Priority
		wantErr bool
	}{
		{"", model.PriorityMedium, false},
		{"low", model.PriorityLow, false},
		{"LOW", model.PriorityLow, false},
		{"  medium ", model.PriorityMedium, false},
		{"med", model.PriorityMedium, false},
		{"high", model.PriorityHigh, false},
		{"urgent", "", true},
	}
	for _, tc := range cases {
		got, err := NormalizePriority(tc.in)
		if tc.wantErr && err == nil {
			t.Fatalf("NormalizePriority(%q): expected error", tc.in)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("NormalizePriority(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("NormalizePriority(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestNormalizeFilter(t *testing.T) {
	cases := []struct {
		in      string
		want    model.FilterType
		wantErr bool
	}{
		{"", model.FilterAll, false},
		{"all", model.FilterAll, false},
		{"Completed", model.FilterCompleted, false},
		{"done", model.FilterCompleted, false},
		{"pending", model.FilterPending, false},
		{"open", model.FilterPending, false},
		{"wat", "", true},
	}
	for _, tc := range cases {
		got, err := NormalizeFilter(tc.in)
		if tc.wantErr && err == nil {
			t.Fatalf("NormalizeFilter(%q): expected error", tc.in)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("NormalizeFilter(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("NormalizeFilter(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestNormalizeDueDate(t *testing.T) {
	if got, err := NormalizeDueDate("  "); err != nil || got != nil {
		t.Fatalf("expected blank due date to be nil, got %v (err %v)", got, err)
	}
	got, err := NormalizeDueDate("2024-06-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || *got != "2024-06-01" {
		t.Fatalf("expected 2024-06-01, got %v", got)
	}
	if _, err := NormalizeDueDate("June 1st"); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
	if _, err := NormalizeDueDate("2024-13-40"); err == nil {
		t.Fatalf("expected error for impossible date")
	}
}

func TestNormalizeCategory(t *testing.T) {
	if got := NormalizeCategory("  "); got != model.DefaultCategory {
		t.Fatalf("expected default category, got %q", got)
	}
	if got := NormalizeCategory(" Work "); got != "Work" {
		t.Fatalf("expected trimmed category, got %q", got)
	}
}
