package tui

import (
	"strings"
	"testing"

	"taskspark/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
)

func TestNextFilterCycles(t *testing.T) {
	order := []model.FilterType{model.FilterAll, model.FilterPending, model.FilterCompleted, model.FilterAll}
	for i := 0; i < len(order)-1; i++ {
		if got := nextFilter(order[i]); got != order[i+1] {
			t.Fatalf("nextFilter(%s) = %s, want %s", order[i], got, order[i+1])
		}
	}
}

func newTestAppModel(ts []model.Task) appModel {
	m := appModel{filter: model.FilterAll, tasks: ts}
	m.search = textinput.New()
	m.taskList = newTaskList()
	m.taskList.SetSize(80, 20)
	m.refreshList()
	return m
}

func TestRefreshListAppliesFilterAndSearch(t *testing.T) {
	m := newTestAppModel([]model.Task{
		{ID: "1", Title: "Write report", Category: "Work"},
		{ID: "2", Title: "Pay rent", Category: "Home", Completed: true},
	})

	if got := len(m.taskList.Items()); got != 2 {
		t.Fatalf("expected 2 rows, got %d", got)
	}

	m.filter = model.FilterPending
	m.refreshList()
	if got := len(m.taskList.Items()); got != 1 {
		t.Fatalf("expected 1 pending row, got %d", got)
	}

	m.filter = model.FilterAll
	m.search.SetValue("home")
	m.refreshList()
	items := m.taskList.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 search hit, got %d", len(items))
	}
	if row, _ := items[0].(taskRowItem); row.task.ID != "2" {
		t.Fatalf("expected category match, got %q", row.task.ID)
	}
}

func TestRefreshListKeepsSelection(t *testing.T) {
	m := newTestAppModel([]model.Task{
		{ID: "1", Title: "First"},
		{ID: "2", Title: "Second"},
		{ID: "3", Title: "Third"},
	})

	m.taskList.Select(1)
	m.refreshList()

	sel, ok := m.selectedTask()
	if !ok || sel.ID != "2" {
		t.Fatalf("expected selection to survive refresh, got %+v (ok=%v)", sel, ok)
	}
}

func TestSummaryLine(t *testing.T) {
	m := newTestAppModel([]model.Task{
		{ID: "1", Title: "A"},
		{ID: "2", Title: "B", Completed: true},
	})

	out := m.summaryLine()
	if !strings.Contains(out, "2 tasks") {
		t.Fatalf("expected task count, got: %q", out)
	}
	if !strings.Contains(out, "1 done (50%)") {
		t.Fatalf("expected completion summary, got: %q", out)
	}
	if strings.Contains(out, "overdue") {
		t.Fatalf("no overdue tasks expected, got: %q", out)
	}
}
