package tasks

import (
	"errors"
	"strings"
	"time"

	"taskspark/internal/model"
	"taskspark/internal/taskutil"
)

// ErrEmptyTitle rejects add/edit with a blank or whitespace-only title.
// The canonical list is left untouched; callers decide whether to tell the user.
var ErrEmptyTitle = errors.New("task title is empty")

// Fields carries the mutable task fields for Add and Edit.
type Fields struct {
	Title       string
	Description string
	DueDate     *string
	Priority    model.Priority
	Category    string
}

func (f Fields) normalize() (Fields, error) {
	f.Title = strings.TrimSpace(f.Title)
	if f.Title == "" {
		return Fields{}, ErrEmptyTitle
	}
	f.Description = strings.TrimSpace(f.Description)
	if f.Priority == "" {
		f.Priority = model.PriorityMedium
	}
	f.Category = taskutil.NormalizeCategory(f.Category)
	return f, nil
}

// Result reports what a mutation did. Changed is false for lookup misses,
// which are no-ops rather than errors. Callers are responsible for saving the
// returned list and appending the event.
type Result struct {
	Task         model.Task
	Changed      bool
	EventPayload map[string]any
}

// Add prepends a new task to the canonical list (newest-first is a visible
// invariant of the collection, not a sort artifact). ID and creation time are
// supplied by the caller so the function stays deterministic.
func Add(list []model.Task, f Fields, id string, now time.Time) ([]model.Task, Result, error) {
	nf, err := f.normalize()
	if err != nil {
		return list, Result{}, err
	}

	t := model.Task{
		ID:          id,
		Title:       nf.Title,
		Description: nf.Description,
		Completed:   false,
		CreatedAt:   now.UTC(),
		DueDate:     nf.DueDate,
		Priority:    nf.Priority,
		Category:    nf.Category,
	}

	out := make([]model.Task, 0, len(list)+1)
	out = append(out, t)
	out = append(out, list...)

	return out, Result{
		Task:    t,
		Changed: true,
		EventPayload: map[string]any{
			"title":    t.Title,
			"priority": string(t.Priority),
			"category": t.Category,
		},
	}, nil
}

// Edit replaces all mutable fields of the task with the given id, leaving ID
// and CreatedAt untouched. A blank category defaults to "Other" exactly like
// Add. Unknown ids are a no-op.
func Edit(list []model.Task, id string, f Fields) ([]model.Task, Result, error) {
	nf, err := f.normalize()
	if err != nil {
		return list, Result{}, err
	}

	for i := range list {
		if list[i].ID != id {
			continue
		}
		list[i].Title = nf.Title
		list[i].Description = nf.Description
		list[i].DueDate = nf.DueDate
		list[i].Priority = nf.Priority
		list[i].Category = nf.Category
		return list, Result{
			Task:    list[i],
			Changed: true,
			EventPayload: map[string]any{
				"title":    nf.Title,
				"priority": string(nf.Priority),
				"category": nf.Category,
			},
		}, nil
	}
	return list, Result{}, nil
}

// ToggleComplete flips the completed flag of the task with the given id.
// Unknown ids are a no-op.
func ToggleComplete(list []model.Task, id string) ([]model.Task, Result) {
	for i := range list {
		if list[i].ID != id {
			continue
		}
		list[i].Completed = !list[i].Completed
		return list, Result{
			Task:         list[i],
			Changed:      true,
			EventPayload: map[string]any{"completed": list[i].Completed},
		}
	}
	return list, Result{}
}

// Delete removes the task with the given id. Unknown ids are a no-op.
func Delete(list []model.Task, id string) ([]model.Task, Result) {
	for i := range list {
		if list[i].ID != id {
			continue
		}
		removed := list[i]
		out := append(list[:i:i], list[i+1:]...)
		return out, Result{
			Task:         removed,
			Changed:      true,
			EventPayload: map[string]any{"title": removed.Title},
		}
	}
	return list, Result{}
}

// Find returns the task with the given id.
func Find(list []model.Task, id string) (model.Task, bool) {
	for i := range list {
		if list[i].ID == id {
			return list[i], true
		}
	}
	return model.Task{}, false
}
