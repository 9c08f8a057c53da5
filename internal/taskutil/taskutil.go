package taskutil

import (
	"fmt"
	"strings"
	"time"

	"taskspark/internal/model"
)

// NormalizePriority maps user input to a Priority. Empty input means
// "use the default" (medium).
func NormalizePriority(s string) (model.Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return model.PriorityMedium, nil
	case "low":
		return model.PriorityLow, nil
	case "medium", "med":
		return model.PriorityMedium, nil
	case "high":
		return model.PriorityHigh, nil
	default:
		return "", fmt.Errorf("invalid priority: %q (expected low|medium|high)", s)
	}
}

// NormalizeFilter maps user input to a FilterType. Empty input means "all".
func NormalizeFilter(s string) (model.FilterType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return model.FilterAll, nil
	case "completed", "done":
		return model.FilterCompleted, nil
	case "pending", "open":
		return model.FilterPending, nil
	default:
		return "", fmt.Errorf("invalid filter: %q (expected all|pending|completed)", s)
	}
}

// NormalizeDueDate validates a YYYY-MM-DD due date. It returns nil for empty
// input (no deadline).
func NormalizeDueDate(s string) (*string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid due date: %q (expected YYYY-MM-DD)", s)
	}
	// Re-format so "2024-6-1" style inputs never reach the store.
	norm := t.Format("2006-01-02")
	return &norm, nil
}

// NormalizeCategory trims the category and applies the default for blank input.
func NormalizeCategory(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.DefaultCategory
	}
	return s
}
