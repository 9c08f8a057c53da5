package tui

import (
	"strings"
	"time"

	"taskspark/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// renderTaskDetail renders the right-hand panel for the selected task.
func renderTaskDetail(t model.Task, now time.Time, width, height int) string {
	if width < 20 {
		width = 20
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)
	labelStyle := styleMuted()

	title := strings.TrimSpace(t.Title)
	if title == "" {
		title = "(untitled)"
	}

	status := "pending"
	if t.Completed {
		status = "done"
	}
	statusLine := glyphCheckbox(t.Completed) + " " + status
	if t.Overdue(now) {
		statusLine += "  " + metaOverdueStyle.Render("overdue")
	}

	lines := []string{
		titleStyle.Render(title),
		"",
		statusLine,
		labelStyle.Render("priority  ") + renderPriorityTag(t.Priority),
		labelStyle.Render("category  ") + t.Category,
	}
	if t.DueDate != nil {
		lines = append(lines, labelStyle.Render("due       ")+*t.DueDate)
	}
	if !t.CreatedAt.IsZero() {
		lines = append(lines, labelStyle.Render("created   ")+t.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	if desc := strings.TrimSpace(t.Description); desc != "" {
		lines = append(lines, "", renderMarkdown(desc, width-2))
	}

	body := strings.Join(lines, "\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		PaddingLeft(1).
		Render(body)
}
