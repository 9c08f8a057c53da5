package tui

import (
	"strings"

	"taskspark/internal/model"
	"taskspark/internal/tasks"
	"taskspark/internal/taskutil"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	formFieldTitle = iota
	formFieldDescription
	formFieldDue
	formFieldPriority
	formFieldCategory
	formFieldCount
)

var formFieldLabels = [formFieldCount]string{
	"Title",
	"Description",
	"Due (YYYY-MM-DD)",
	"Priority (low|medium|high)",
	"Category",
}

// taskForm is the add/edit input form. It is a plain value edited through
// appModel.Update; submission is interpreted by the caller.
type taskForm struct {
	heading string
	inputs  [formFieldCount]textinput.Model
	focus   int
	errMsg  string
}

func newTaskForm(heading string, t *model.Task) taskForm {
	f := taskForm{heading: heading}
	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 256
		in.Width = 48
		in.Placeholder = formFieldLabels[i]
		f.inputs[i] = in
	}
	f.inputs[formFieldDue].CharLimit = 10
	f.inputs[formFieldDue].Width = 12
	f.inputs[formFieldPriority].CharLimit = 6
	f.inputs[formFieldPriority].Width = 8

	if t != nil {
		f.inputs[formFieldTitle].SetValue(t.Title)
		f.inputs[formFieldDescription].SetValue(t.Description)
		if t.DueDate != nil {
			f.inputs[formFieldDue].SetValue(*t.DueDate)
		}
		f.inputs[formFieldPriority].SetValue(string(t.Priority))
		f.inputs[formFieldCategory].SetValue(t.Category)
	}

	f.inputs[formFieldTitle].Focus()
	return f
}

func (f *taskForm) setFocus(idx int) {
	if idx < 0 {
		idx = formFieldCount - 1
	}
	if idx >= formFieldCount {
		idx = 0
	}
	for i := range f.inputs {
		if i == idx {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	f.focus = idx
}

// update routes one message into the focused input and handles focus cycling.
// It reports whether the form was submitted.
func (f *taskForm) update(msg tea.Msg) (submitted bool, cmd tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			f.setFocus(f.focus + 1)
			return false, nil
		case "shift+tab", "up":
			f.setFocus(f.focus - 1)
			return false, nil
		case "enter":
			if f.focus == formFieldCount-1 {
				return true, nil
			}
			f.setFocus(f.focus + 1)
			return false, nil
		case "ctrl+s":
			return true, nil
		}
	}
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return false, cmd
}

// fields validates the form and produces the mutation input. Validation
// failures set errMsg and return false without touching anything.
func (f *taskForm) fields() (tasks.Fields, bool) {
	prio, err := taskutil.NormalizePriority(f.inputs[formFieldPriority].Value())
	if err != nil {
		f.errMsg = err.Error()
		return tasks.Fields{}, false
	}
	due, err := taskutil.NormalizeDueDate(f.inputs[formFieldDue].Value())
	if err != nil {
		f.errMsg = err.Error()
		return tasks.Fields{}, false
	}
	if strings.TrimSpace(f.inputs[formFieldTitle].Value()) == "" {
		f.errMsg = "title must not be empty"
		return tasks.Fields{}, false
	}
	f.errMsg = ""
	return tasks.Fields{
		Title:       f.inputs[formFieldTitle].Value(),
		Description: f.inputs[formFieldDescription].Value(),
		DueDate:     due,
		Priority:    prio,
		Category:    f.inputs[formFieldCategory].Value(),
	}, true
}

func (f taskForm) view(width int) string {
	if width < 30 {
		width = 30
	}

	headingStyle := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)
	labelStyle := styleMuted()
	focusedLabelStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	var b strings.Builder
	b.WriteString(headingStyle.Render(f.heading))
	b.WriteString("\n\n")
	for i := range f.inputs {
		label := labelStyle.Render(formFieldLabels[i])
		if i == f.focus {
			label = focusedLabelStyle.Render(formFieldLabels[i])
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(renderInputLine(width-4, f.inputs[i].View()))
		b.WriteString("\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(colorDangerFg).Render(f.errMsg))
	}
	b.WriteString("\n")
	b.WriteString(styleMuted().Render("enter/tab: next field  ctrl+s: save  esc: cancel"))
	return b.String()
}
