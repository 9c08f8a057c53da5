package model

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank orders priorities for the view comparator: higher sorts first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 0
	default:
		// Unknown values sort with medium rather than disappearing to the bottom.
		return 1
	}
}

// DefaultCategory is applied when a task is created or edited with a blank category.
const DefaultCategory = "Other"

// Task is the canonical task entity. The canonical list for a user keeps
// newest-created tasks first; display order is always derived, never stored.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`

	// DueDate is an optional calendar date (YYYY-MM-DD). Nil means no deadline.
	DueDate *string `json:"dueDate,omitempty"`

	Priority Priority `json:"priority"`
	Category string   `json:"category"`
}

// Overdue reports whether the task's due date lies strictly before now's
// UTC calendar date and the task is not completed. It is computed per read,
// never persisted.
func (t Task) Overdue(now time.Time) bool {
	if t.Completed || t.DueDate == nil {
		return false
	}
	return *t.DueDate < now.UTC().Format("2006-01-02")
}

// FilterType is the transient status filter selected in the UI. Not persisted.
type FilterType string

const (
	FilterAll       FilterType = "all"
	FilterCompleted FilterType = "completed"
	FilterPending   FilterType = "pending"
)

// TaskCounts are the aggregate counts shown next to the filter controls.
type TaskCounts struct {
	All       int `json:"all"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

type Event struct {
	ID       string    `json:"id"`
	TS       time.Time `json:"ts"`
	Actor    string    `json:"actor"`
	Type     string    `json:"type"`
	EntityID string    `json:"entityId"`
	Payload  any       `json:"payload"`
}
