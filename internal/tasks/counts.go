package tasks

import (
	"math"
	"time"

	"taskspark/internal/model"
)

// CountsOf computes the aggregate counts from the canonical list.
func CountsOf(list []model.Task) model.TaskCounts {
	c := model.TaskCounts{All: len(list)}
	for _, t := range list {
		if t.Completed {
			c.Completed++
		}
	}
	c.Pending = c.All - c.Completed
	return c
}

// OverdueCount counts pending tasks whose due date is strictly before now.
// Overdue is a derived property, so the caller supplies the clock.
func OverdueCount(list []model.Task, now time.Time) int {
	n := 0
	for _, t := range list {
		if t.Overdue(now) {
			n++
		}
	}
	return n
}

// CompletionPercentage returns round(100 * completed / all), or 0 for an
// empty collection.
func CompletionPercentage(c model.TaskCounts) int {
	if c.All <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(c.Completed) / float64(c.All)))
}
