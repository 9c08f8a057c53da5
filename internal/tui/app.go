package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskspark/internal/model"
	"taskspark/internal/store"
	"taskspark/internal/tasks"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type view int

const (
	viewLogin view = iota
	viewTasks
	viewForm
)

type appModel struct {
	store    store.Store
	username string

	width  int
	height int

	view view

	// tasks is the canonical list, newest first. Display order is derived on
	// every refresh, never stored.
	tasks  []model.Task
	filter model.FilterType

	search        textinput.Model
	searchFocused bool

	taskList list.Model

	form      taskForm
	editingID string

	loginInput textinput.Model

	statusMsg string
}

func newAppModel(s store.Store) appModel {
	m := appModel{
		store:  s,
		filter: model.FilterAll,
		view:   viewLogin,
	}

	m.loginInput = textinput.New()
	m.loginInput.Prompt = ""
	m.loginInput.Placeholder = "username"
	m.loginInput.CharLimit = 64
	m.loginInput.Width = 32
	m.loginInput.Focus()

	m.search = textinput.New()
	m.search.Prompt = "/ "
	m.search.Placeholder = "search title, description or category"
	m.search.CharLimit = 128
	m.search.Width = 40

	m.taskList = newTaskList()

	ctx := context.Background()
	if u, ok, err := s.CurrentUser(ctx); err == nil && ok {
		m.username = u
		m.tasks, _ = s.LoadTasks(ctx, u)
		m.view = viewTasks
		m.refreshList()
	}
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case viewLogin:
			return m.updateLogin(msg)
		case viewForm:
			return m.updateForm(msg)
		default:
			return m.updateTasks(msg)
		}
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

func (m appModel) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		ctx := context.Background()
		u, err := m.store.Login(ctx, m.loginInput.Value())
		if err != nil {
			m.statusMsg = "enter a username to continue"
			return m, nil
		}
		_ = m.store.AppendEvent(ctx, u, "session.login", "", map[string]any{"username": u})
		m.username = u
		m.tasks, _ = m.store.LoadTasks(ctx, u)
		m.statusMsg = ""
		m.view = viewTasks
		m.refreshList()
		return m, nil
	}
	var cmd tea.Cmd
	m.loginInput, cmd = m.loginInput.Update(msg)
	return m, cmd
}

func (m appModel) updateTasks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchFocused {
		switch msg.String() {
		case "esc":
			m.search.SetValue("")
			m.search.Blur()
			m.searchFocused = false
			m.refreshList()
			return m, nil
		case "enter":
			m.search.Blur()
			m.searchFocused = false
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.refreshList()
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "/":
		m.searchFocused = true
		m.search.Focus()
		return m, nil
	case "esc":
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.refreshList()
		}
		return m, nil
	case "f", "tab":
		m.filter = nextFilter(m.filter)
		m.refreshList()
		return m, nil
	case "r":
		// Reload from the store so CLI commands in another terminal are
		// reflected.
		m.tasks, _ = m.store.LoadTasks(context.Background(), m.username)
		m.refreshList()
		return m, nil
	case "a":
		m.form = newTaskForm("New task", nil)
		m.editingID = ""
		m.statusMsg = ""
		m.view = viewForm
		return m, nil
	case "e":
		if t, ok := m.selectedTask(); ok {
			m.form = newTaskForm("Edit task", &t)
			m.editingID = t.ID
			m.statusMsg = ""
			m.view = viewForm
		}
		return m, nil
	case "enter", "x", " ":
		if t, ok := m.selectedTask(); ok {
			updated, res := tasks.ToggleComplete(m.tasks, t.ID)
			if res.Changed {
				m.persist(updated, "task.toggle", res.Task.ID, res.EventPayload)
			}
		}
		return m, nil
	case "d":
		if t, ok := m.selectedTask(); ok {
			updated, res := tasks.Delete(m.tasks, t.ID)
			if res.Changed {
				m.persist(updated, "task.delete", res.Task.ID, res.EventPayload)
				m.statusMsg = fmt.Sprintf("deleted %q", res.Task.Title)
			}
		}
		return m, nil
	case "L":
		ctx := context.Background()
		if err := m.store.Logout(ctx); err == nil {
			_ = m.store.AppendEvent(ctx, m.username, "session.logout", "", map[string]any{"username": m.username})
		}
		m.username = ""
		m.tasks = nil
		m.loginInput.SetValue("")
		m.loginInput.Focus()
		m.statusMsg = ""
		m.view = viewLogin
		return m, nil
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.view = viewTasks
		return m, nil
	}
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	submitted, cmd := m.form.update(msg)
	if !submitted {
		return m, cmd
	}

	f, ok := m.form.fields()
	if !ok {
		return m, nil
	}

	if m.editingID == "" {
		updated, res, err := tasks.Add(m.tasks, f, store.NewTaskID(), time.Now())
		if err != nil {
			m.form.errMsg = err.Error()
			return m, nil
		}
		m.persist(updated, "task.create", res.Task.ID, res.EventPayload)
		m.statusMsg = fmt.Sprintf("added %q", res.Task.Title)
	} else {
		updated, res, err := tasks.Edit(m.tasks, m.editingID, f)
		if err != nil {
			m.form.errMsg = err.Error()
			return m, nil
		}
		if res.Changed {
			m.persist(updated, "task.edit", res.Task.ID, res.EventPayload)
			m.statusMsg = fmt.Sprintf("updated %q", res.Task.Title)
		}
	}
	m.view = viewTasks
	return m, nil
}

// persist saves the canonical list and appends the mutation event, then
// refreshes the derived view.
func (m *appModel) persist(updated []model.Task, eventType, entityID string, payload map[string]any) {
	ctx := context.Background()
	if err := m.store.SaveTasks(ctx, m.username, updated); err != nil {
		m.statusMsg = "save failed: " + err.Error()
		return
	}
	_ = m.store.AppendEvent(ctx, m.username, eventType, entityID, payload)
	m.tasks = updated
	m.refreshList()
}

func (m *appModel) selectedTask() (model.Task, bool) {
	if it, ok := m.taskList.SelectedItem().(taskRowItem); ok {
		return it.task, true
	}
	return model.Task{}, false
}

func (m *appModel) refreshList() {
	curID := ""
	if t, ok := m.selectedTask(); ok {
		curID = t.ID
	}
	now := time.Now()
	derived := tasks.DeriveView(m.tasks, m.filter, m.search.Value())
	items := make([]list.Item, 0, len(derived))
	for _, t := range derived {
		items = append(items, taskRowItem{task: t, now: now})
	}
	m.taskList.SetItems(items)
	selectTaskByID(&m.taskList, curID)
}

func (m *appModel) resize() {
	h := m.bodyHeight()
	w := m.listWidth()
	m.taskList.SetSize(w, h)
}

func (m appModel) bodyHeight() int {
	h := m.height - 7
	if h < 8 {
		h = 8
	}
	return h
}

func (m appModel) listWidth() int {
	if !m.splitView() {
		if m.width < 40 {
			return 40
		}
		return m.width
	}
	return m.width * 3 / 5
}

func (m appModel) splitView() bool {
	return m.width >= 90
}

func nextFilter(f model.FilterType) model.FilterType {
	switch f {
	case model.FilterAll:
		return model.FilterPending
	case model.FilterPending:
		return model.FilterCompleted
	default:
		return model.FilterAll
	}
}

func (m appModel) View() string {
	switch m.view {
	case viewLogin:
		return m.viewLogin()
	case viewForm:
		return m.viewForm()
	default:
		return m.viewTasks()
	}
}

func (m appModel) viewLogin() string {
	title := lipgloss.NewStyle().Bold(true).Render("TaskSpark")
	prompt := "Who is working today?"
	hint := styleMuted().Render("enter: continue  esc: quit")

	lines := []string{title, "", prompt, "", renderInputLine(36, m.loginInput.View()), ""}
	if m.statusMsg != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(colorDangerFg).Render(m.statusMsg), "")
	}
	lines = append(lines, hint)
	box := strings.Join(lines, "\n")

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

func (m appModel) viewForm() string {
	body := m.form.view(minInt(m.width, 64))
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}

func (m appModel) viewTasks() string {
	header := lipgloss.NewStyle().Bold(true).Render("TaskSpark") +
		"  " + styleMuted().Render("@"+m.username) +
		"  " + m.summaryLine()

	filterBar := m.renderFilterBar()

	searchLine := ""
	if m.searchFocused || m.search.Value() != "" {
		searchLine = m.search.View()
	}

	body := m.taskList.View()
	if m.splitView() {
		detailW := m.width - m.listWidth() - 2
		h := m.bodyHeight()
		var detail string
		if t, ok := m.selectedTask(); ok {
			detail = renderTaskDetail(t, time.Now(), detailW, h)
		} else {
			detail = lipgloss.NewStyle().Width(detailW).Height(h).PaddingLeft(1).Render("No task selected.")
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, detail)
	}

	footerText := "a: add  e: edit  enter/x: toggle  d: delete  f: filter  /: search  r: reload  L: logout  q: quit"
	footer := lipgloss.NewStyle().Faint(true).Render(footerText)
	if m.statusMsg != "" {
		footer = styleMuted().Render(m.statusMsg) + "\n" + footer
	}

	sections := []string{header, filterBar}
	if searchLine != "" {
		sections = append(sections, searchLine)
	}
	sections = append(sections, body, footer)
	return strings.Join(sections, "\n")
}

func (m appModel) summaryLine() string {
	c := tasks.CountsOf(m.tasks)
	pct := tasks.CompletionPercentage(c)
	sep := " " + glyphSeparator() + " "
	parts := []string{
		fmt.Sprintf("%d tasks", c.All),
		fmt.Sprintf("%d done (%d%%)", c.Completed, pct),
	}
	if o := tasks.OverdueCount(m.tasks, time.Now()); o > 0 {
		parts = append(parts, metaOverdueStyle.Render(fmt.Sprintf("%d overdue", o)))
	}
	return styleMuted().Render(strings.Join(parts, sep))
}

func (m appModel) renderFilterBar() string {
	c := tasks.CountsOf(m.tasks)
	active := lipgloss.NewStyle().
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true).
		Padding(0, 1)
	inactive := styleMuted().Padding(0, 1)

	seg := func(f model.FilterType, label string, n int) string {
		txt := fmt.Sprintf("%s (%d)", label, n)
		if m.filter == f {
			return active.Render(txt)
		}
		return inactive.Render(txt)
	}

	return seg(model.FilterAll, "all", c.All) +
		" " + seg(model.FilterPending, "pending", c.Pending) +
		" " + seg(model.FilterCompleted, "completed", c.Completed)
}

func minInt(a, b int) int {
	if b > 0 && b < a {
		return b
	}
	return a
}
