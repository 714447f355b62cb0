package tui

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/focuscal/internal/export"
	"github.com/sadopc/focuscal/internal/session"
	"github.com/sadopc/focuscal/internal/store"
)

// App is the root Bubble Tea model. It owns the session core (repo +
// machine) and fans messages out to the views.
type App struct {
	store    *store.Store
	repo     *session.Repo
	machine  *session.Machine
	notifier *uiNotifier

	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	timer    timerModel
	tasks    tasksModel
	calendar calendarModel
	stats    statsModel
	settings settingsModel

	help   help.Model
	status string
}

func NewApp(s *store.Store) App {
	notifier := &uiNotifier{}
	clock := session.SystemClock()
	repo := session.NewRepo(s, clock, slog.Default())
	machine := session.NewMachine(repo, notifier, clock, s.Durations())

	h := help.New()
	h.ShowAll = false

	return App{
		store:      s,
		repo:       repo,
		machine:    machine,
		notifier:   notifier,
		activeView: viewTimer,
		timer:      newTimerModel(machine, repo, notifier),
		tasks:      newTasksModel(repo, machine, notifier),
		calendar:   newCalendarModel(repo, machine),
		stats:      newStatsModel(repo, machine),
		settings:   newSettingsModel(s, repo, machine),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		persistCmd(a.repo.Load(a.store.Owner())),
		tickCmd(),
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.timer.setSize(a.width, contentHeight)
		a.tasks.setSize(a.width, contentHeight)
		a.calendar.setSize(a.width, contentHeight)
		a.stats.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (a form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewTimer
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewTasks
			return a, nil
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewCalendar
			return a, nil
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewStats
			return a, nil
		case key.Matches(msg, keys.Tab5):
			a.activeView = viewSettings
			return a, nil
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % 5
			return a, nil
		}

	case tickMsg:
		// The countdown is always routed through the timer view, no
		// matter which tab is showing.
		var cmd tea.Cmd
		a.timer, cmd = a.timer.update(msg)
		return a, tea.Batch(tickCmd(), cmd)

	case outcomeMsg:
		if text := a.repo.Apply(msg.outcome); text != "" {
			a.status = errorStyle.Render(text)
		}
		return a, nil

	case statusMsg:
		if msg.isError {
			a.status = errorStyle.Render(msg.text)
		} else {
			a.status = msg.text
		}
		return a, nil

	case taskFocusedMsg:
		a.activeView = viewTimer
		a.status = fmt.Sprintf("Ready to focus on %q — press space", msg.title)
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.exportPicking = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewTimer:
		a.timer, cmd = a.timer.update(msg)
	case viewTasks:
		a.tasks, cmd = a.tasks.update(msg)
	case viewCalendar:
		a.calendar, cmd = a.calendar.update(msg)
	case viewStats:
		a.stats, cmd = a.stats.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewTasks:
		return a.tasks.formActive
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewTimer:
		content = a.timer.view()
	case viewTasks:
		content = a.tasks.view()
	case viewCalendar:
		content = a.calendar.view()
	case viewStats:
		content = a.stats.view()
	case viewSettings:
		content = a.settings.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("focuscal")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	// Countdown indicator in footer.
	timerInfo := ""
	if a.machine.Running() {
		style := lipgloss.NewStyle().Foreground(modeColor(a.machine.Mode()))
		timerInfo = style.Render(" ● " + formatCountdown(a.machine.TimeLeft()))
	} else if a.machine.TimeLeft() != 0 {
		timerInfo = warningStyle.Render(" ⏸ " + formatCountdown(a.machine.TimeLeft()))
	}

	left := footerStyle.Render(helpView)
	right := timerInfo + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Format")
	formats := []string{"CSV", "JSON"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	tasks := a.repo.All()
	return func() tea.Msg {
		home, _ := os.UserHomeDir()
		dateStr := time.Now().Format("2006-01-02")

		var path string
		if format == 0 {
			path = filepath.Join(home, fmt.Sprintf("focuscal-export-%s.csv", dateStr))
			if err := export.ToCSV(tasks, path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
		} else {
			path = filepath.Join(home, fmt.Sprintf("focuscal-export-%s.json", dateStr))
			if err := export.ToJSON(tasks, path); err != nil {
				return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
			}
		}

		return exportDoneMsg{path: path}
	}
}
