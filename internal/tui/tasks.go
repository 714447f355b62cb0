package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/focuscal/internal/session"
)

// tasksModel lists the tasks scheduled for the selected date and hosts
// the add-task form.
type tasksModel struct {
	repo     *session.Repo
	machine  *session.Machine
	notifier *uiNotifier
	width    int
	height   int

	cursor int

	formActive bool
	form       *huh.Form
	confirming bool // clear-completed confirmation

	// Form field pointers (survive value copies)
	formTitle    *string
	formDate     *string
	formDuration *string
	formReps     *string
	formConfirm  *bool
}

func newTasksModel(r *session.Repo, m *session.Machine, n *uiNotifier) tasksModel {
	title, date, duration, reps := "", "", "25", "1"
	confirm := false
	return tasksModel{
		repo:         r,
		machine:      m,
		notifier:     n,
		formTitle:    &title,
		formDate:     &date,
		formDuration: &duration,
		formReps:     &reps,
		formConfirm:  &confirm,
	}
}

func (t *tasksModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t tasksModel) visible() []session.Task {
	return t.repo.ByDate(t.machine.SelectedDate())
}

func (t tasksModel) update(msg tea.Msg) (tasksModel, tea.Cmd) {
	if t.formActive && t.form != nil {
		return t.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	tasks := t.visible()
	if t.cursor >= len(tasks) {
		t.cursor = max(0, len(tasks)-1)
	}

	switch {
	case key.Matches(keyMsg, keys.Up):
		if t.cursor > 0 {
			t.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if t.cursor < len(tasks)-1 {
			t.cursor++
		}

	case key.Matches(keyMsg, keys.New):
		return t.showAddForm()

	case key.Matches(keyMsg, keys.Delete):
		if len(tasks) == 0 {
			return t, nil
		}
		p, err := t.repo.Remove(tasks[t.cursor].ID)
		if err != nil {
			return t, errStatusCmd(err)
		}
		return t, persistCmd(p)

	case key.Matches(keyMsg, keys.Done):
		if len(tasks) == 0 {
			return t, nil
		}
		task := tasks[t.cursor]
		p, err := t.repo.SetCompleted(task.ID, !task.Completed)
		if err != nil {
			return t, errStatusCmd(err)
		}
		return t, persistCmd(p)

	case key.Matches(keyMsg, keys.Enter):
		if len(tasks) == 0 {
			return t, nil
		}
		task := tasks[t.cursor]
		if err := t.machine.StartFocusOnTask(task.ID); err != nil {
			return t, errStatusCmd(err)
		}
		return t, func() tea.Msg { return taskFocusedMsg{title: task.Title} }

	case key.Matches(keyMsg, keys.Clear):
		return t.showClearConfirm()
	}
	return t, nil
}

func (t tasksModel) showAddForm() (tasksModel, tea.Cmd) {
	*t.formTitle = ""
	*t.formDate = string(t.machine.SelectedDate())
	*t.formDuration = "25"
	*t.formReps = "1"
	t.confirming = false

	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(t.formTitle),
			huh.NewInput().Title("Date (YYYY-MM-DD)").Value(t.formDate),
			huh.NewInput().Title("Focus duration (min)").Value(t.formDuration),
			huh.NewInput().Title("Repetitions").Value(t.formReps),
		),
	).WithShowHelp(true).WithShowErrors(true)

	t.formActive = true
	return t, t.form.Init()
}

func (t tasksModel) showClearConfirm() (tasksModel, tea.Cmd) {
	*t.formConfirm = false
	t.confirming = true

	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Clear all completed tasks?").
				Affirmative("Clear").
				Negative("Keep").
				Value(t.formConfirm),
		),
	).WithShowHelp(true)

	t.formActive = true
	return t, t.form.Init()
}

func (t tasksModel) updateForm(msg tea.Msg) (tasksModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			t.formActive = false
			t.form = nil
			return t, nil
		}
	}

	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	if t.form.State == huh.StateCompleted {
		t.formActive = false
		if t.confirming {
			return t.applyClear()
		}
		return t.applyAdd()
	}

	return t, cmd
}

func (t tasksModel) applyAdd() (tasksModel, tea.Cmd) {
	c, err := session.ParseCandidate(*t.formTitle, *t.formDate, *t.formDuration, *t.formReps)
	if err != nil {
		return t, errStatusCmd(err)
	}
	task, p, err := t.repo.Add(c)
	if err != nil {
		return t, errStatusCmd(err)
	}
	return t, tea.Batch(
		persistCmd(p),
		statusCmd(fmt.Sprintf("Added %q", task.Title), false),
	)
}

func (t tasksModel) applyClear() (tasksModel, tea.Cmd) {
	if !*t.formConfirm {
		return t, nil
	}
	n, p, err := t.repo.ClearCompleted()
	if err != nil {
		return t, errStatusCmd(err)
	}
	if n == 0 {
		return t, statusCmd("No completed tasks to clear", false)
	}
	return t, tea.Batch(
		persistCmd(p),
		statusCmd(fmt.Sprintf("Cleared %d completed task(s)", n), false),
	)
}

func (t tasksModel) view() string {
	if t.formActive && t.form != nil {
		title := titleStyle.Render("New Task")
		if t.confirming {
			title = titleStyle.Render("Clear Completed")
		}
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", t.form.View())
		return panelStyle.Width(t.width - 4).Render(content)
	}

	w := t.width - 4
	date := t.machine.SelectedDate()
	title := titleStyle.Render("Tasks — " + date.Display(t.machine.Today()))

	tasks := t.visible()
	if len(tasks) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No tasks scheduled for this day. Press n to add one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for i, task := range tasks {
		cursor := "  "
		style := normalItemStyle
		if i == t.cursor {
			cursor = "> "
			style = selectedItemStyle
		}

		check := "[ ]"
		if task.Completed {
			check = successStyle.Render("[x]")
			if i != t.cursor {
				style = doneItemStyle
			}
		}

		active := ""
		if task.ID == t.machine.ActiveTaskID() {
			active = highlightStyle.Render(" ◆")
		}

		meta := mutedStyle.Render(fmt.Sprintf("  %dm × %d/%d", task.DurationMinutes, task.CompletedInstances, task.TargetInstances))
		rows = append(rows, cursor+check+" "+style.Render(task.Title)+meta+active)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  enter: focus  x: done  d: delete  D: clear done"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
