package tasks

import (
	"sort"
	"strings"

	"taskspark/internal/model"
)

// DeriveView computes the display-ordered subset of the canonical list for
// the given status filter and search term. It is pure: the input list is
// never mutated, and equal inputs always produce the same output.
//
// Pipeline: status filter, then search, then one stable sort under a single
// composite comparator. The tie-break chain must stay a single total order;
// three independent sorts would not be stable against each other.
func DeriveView(list []model.Task, filter model.FilterType, searchTerm string) []model.Task {
	out := make([]model.Task, 0, len(list))
	for _, t := range list {
		if !matchesFilter(t, filter) {
			continue
		}
		if !matchesSearch(t, searchTerm) {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool { return viewLess(out[i], out[j]) })
	return out
}

func matchesFilter(t model.Task, filter model.FilterType) bool {
	switch filter {
	case model.FilterCompleted:
		return t.Completed
	case model.FilterPending:
		return !t.Completed
	default:
		return true
	}
}

func matchesSearch(t model.Task, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), term) ||
		strings.Contains(strings.ToLower(t.Description), term) ||
		strings.Contains(strings.ToLower(t.Category), term)
}

// viewLess is the composite display order:
//  1. pending before completed
//  2. higher priority first
//  3. earlier due date first; any due date before none
//  4. newest createdAt first
func viewLess(a, b model.Task) bool {
	if a.Completed != b.Completed {
		return !a.Completed
	}
	if ar, br := a.Priority.Rank(), b.Priority.Rank(); ar != br {
		return ar > br
	}
	switch {
	case a.DueDate != nil && b.DueDate == nil:
		return true
	case a.DueDate == nil && b.DueDate != nil:
		return false
	case a.DueDate != nil && b.DueDate != nil && *a.DueDate != *b.DueDate:
		// YYYY-MM-DD compares chronologically as a string.
		return *a.DueDate < *b.DueDate
	}
	return a.CreatedAt.After(b.CreatedAt)
}
