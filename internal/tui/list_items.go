package tui

import (
	"strings"
	"time"

	"taskspark/internal/model"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

var (
	priorityHighStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#d16d7a")).Bold(true)
	priorityMediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5f9fb0"))
	priorityLowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c757d"))

	metaDueStyle      = lipgloss.NewStyle().Foreground(colorChromeMutedFg)
	metaCategoryStyle = lipgloss.NewStyle().Foreground(colorChromeMutedFg)
	metaOverdueStyle  = lipgloss.NewStyle().Foreground(colorDangerFg).Bold(true)

	doneTitleStyle = lipgloss.NewStyle().Foreground(colorMuted).Strikethrough(true)
)

type taskRowItem struct {
	task model.Task
	// now is captured at refresh time so every row agrees on "today".
	now time.Time
}

func (i taskRowItem) FilterValue() string { return i.task.Title }

func (i taskRowItem) Title() string {
	box := glyphCheckbox(i.task.Completed)
	if i.task.Completed {
		box = priorityLowStyle.Render(box)
	} else {
		box = priorityHighStyle.Render(box)
	}

	title := strings.TrimSpace(i.task.Title)
	if title == "" {
		title = "(untitled)"
	}
	if i.task.Completed {
		title = doneTitleStyle.Render(title)
	}

	metaParts := make([]string, 0, 4)
	metaParts = append(metaParts, renderPriorityTag(i.task.Priority))
	if i.task.DueDate != nil {
		if i.task.Overdue(i.now) {
			metaParts = append(metaParts, metaOverdueStyle.Render("overdue "+*i.task.DueDate))
		} else {
			metaParts = append(metaParts, metaDueStyle.Render("due "+*i.task.DueDate))
		}
	}
	if c := strings.TrimSpace(i.task.Category); c != "" {
		metaParts = append(metaParts, metaCategoryStyle.Render("#"+c))
	}

	return box + " " + title + "  " + strings.Join(metaParts, " ")
}

func (i taskRowItem) Description() string { return "" }

func renderPriorityTag(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return priorityHighStyle.Render("high")
	case model.PriorityLow:
		return priorityLowStyle.Render("low")
	default:
		return priorityMediumStyle.Render("med")
	}
}

func newTaskList() list.Model {
	l := list.New([]list.Item{}, newTaskRowDelegate(), 0, 0)
	// We render our own header, filter bar and footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	// Search is handled by our own input so it can feed the view derivation.
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("task", "tasks")
	// The bubbles list quits on ESC by default; here ESC is "back/cancel".
	l.KeyMap.Quit.SetKeys("q")
	// Emacs-style navigation aliases.
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	return l
}

func selectTaskByID(l *list.Model, id string) {
	if id == "" {
		return
	}
	for i, it := range l.Items() {
		if ti, ok := it.(taskRowItem); ok && ti.task.ID == id {
			l.Select(i)
			return
		}
	}
}
