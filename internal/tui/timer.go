package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/focuscal/internal/session"
)

// timerModel is the countdown view over the session state machine.
type timerModel struct {
	machine  *session.Machine
	repo     *session.Repo
	notifier *uiNotifier
	width    int
	height   int
}

func newTimerModel(m *session.Machine, r *session.Repo, n *uiNotifier) timerModel {
	return timerModel{machine: m, repo: r, notifier: n}
}

func (t *timerModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t timerModel) update(msg tea.Msg) (timerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		persists := t.machine.Tick()
		cmds := persistCmds(persists)
		cmds = append(cmds, noticeCmds(t.notifier)...)
		return t, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Toggle):
			t.machine.Toggle()
			return t, tea.Batch(noticeCmds(t.notifier)...)

		case key.Matches(msg, keys.Reset):
			t.machine.Reset()
			return t, statusCmd("Timer reset", false)

		case key.Matches(msg, keys.Skip):
			t.machine.Skip()
			return t, nil

		case key.Matches(msg, keys.Mode):
			next := nextMode(t.machine.Mode())
			if err := t.machine.SwitchMode(next); err != nil {
				return t, errStatusCmd(err)
			}
			return t, nil
		}
	}
	return t, nil
}

func nextMode(m session.Mode) session.Mode {
	switch m {
	case session.ModeFocus:
		return session.ModeShortBreak
	case session.ModeShortBreak:
		return session.ModeLongBreak
	default:
		return session.ModeFocus
	}
}

func (t timerModel) view() string {
	w := t.width - 4
	accent := lipgloss.NewStyle().Foreground(modeColor(t.machine.Mode()))

	title := titleStyle.Render("Focus Timer")
	tabs := t.renderModeTabs()

	countdown := accent.Bold(true).Width(w - 6).Align(lipgloss.Center).
		Render(formatCountdown(t.machine.TimeLeft()))

	var stateLabel string
	switch {
	case t.machine.Running():
		stateLabel = accent.Bold(true).Render(t.machine.Mode().String())
	default:
		stateLabel = mutedStyle.Render(t.machine.Mode().String() + " · paused")
	}

	cycleLabel := t.renderCycle()
	taskLine := t.renderTaskLine()

	var controls string
	if t.machine.Running() {
		controls = mutedStyle.Render("space: pause  s: skip  r: reset")
	} else {
		controls = mutedStyle.Render("space: start  s: skip  r: reset  m: mode")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		tabs,
		"",
		countdown,
		stateLabel,
		cycleLabel,
		"",
		taskLine,
		"",
		controls,
	)
	return panelStyle.Width(w).Render(content)
}

func (t timerModel) renderModeTabs() string {
	modes := []session.Mode{session.ModeFocus, session.ModeShortBreak, session.ModeLongBreak}
	var tabs []string
	for _, m := range modes {
		if m == t.machine.Mode() {
			tabs = append(tabs, activeTabStyle.Render(m.String()))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(m.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func (t timerModel) renderCycle() string {
	if t.machine.Mode() == session.ModeFocus {
		return mutedStyle.Render(fmt.Sprintf("cycle #%d", t.machine.Cycle()))
	}
	return mutedStyle.Render("Break!")
}

// renderTaskLine shows the attached task and its repetition progress,
// or the default-session hint.
func (t timerModel) renderTaskLine() string {
	task, ok := t.machine.ActiveTask()
	if !ok {
		return mutedStyle.Render("No task attached — default session")
	}

	var dots []string
	for i := 0; i < task.TargetInstances; i++ {
		if i < task.CompletedInstances {
			dots = append(dots, successStyle.Render("●"))
		} else {
			dots = append(dots, mutedStyle.Render("○"))
		}
	}
	progress := strings.Join(dots, " ")
	counter := mutedStyle.Render(fmt.Sprintf(" %d/%d", task.CompletedInstances, task.TargetInstances))

	return highlightStyle.Render("TASK: "+task.Title) + "  " + progress + counter
}
