package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/focuscal/internal/session"
	"github.com/sadopc/focuscal/internal/store"
)

// settingsModel edits the owner identity and the per-mode timer
// defaults, persisted in the settings table.
type settingsModel struct {
	store    *store.Store
	repo     *session.Repo
	machine  *session.Machine
	width    int
	height   int

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	owner     *string
	focusMin  *string
	shortMin  *string
	longMin   *string
}

func newSettingsModel(s *store.Store, r *session.Repo, m *session.Machine) settingsModel {
	owner, focus, short, long := "", "", "", ""
	return settingsModel{
		store:    s,
		repo:     r,
		machine:  m,
		owner:    &owner,
		focusMin: &focus,
		shortMin: &short,
		longMin:  &long,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.Enter), key.Matches(keyMsg, keys.New):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	d := s.store.Durations()
	*s.owner = s.store.Owner()
	*s.focusMin = strconv.Itoa(d.Focus / 60)
	*s.shortMin = strconv.Itoa(d.ShortBreak / 60)
	*s.longMin = strconv.Itoa(d.LongBreak / 60)

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Owner identity").Value(s.owner),
			huh.NewInput().Title("Focus (min)").Value(s.focusMin),
			huh.NewInput().Title("Short break (min)").Value(s.shortMin),
			huh.NewInput().Title("Long break (min)").Value(s.longMin),
		),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		return s.save()
	}

	return s, cmd
}

func (s settingsModel) save() (settingsModel, tea.Cmd) {
	d, err := parseDurations(*s.focusMin, *s.shortMin, *s.longMin)
	if err != nil {
		return s, errStatusCmd(err)
	}

	if err := s.store.SetDurations(d); err != nil {
		return s, statusCmd(fmt.Sprintf("Save failed: %v", err), true)
	}
	owner := strings.TrimSpace(*s.owner)
	if err := s.store.SetOwner(owner); err != nil {
		return s, statusCmd(fmt.Sprintf("Save failed: %v", err), true)
	}

	s.machine.SetDurations(d)

	cmds := []tea.Cmd{statusCmd("Settings saved", false)}
	if owner != s.repo.Owner() {
		cmds = append(cmds, persistCmd(s.repo.Load(owner)))
	}
	return s, tea.Batch(cmds...)
}

func parseDurations(focus, short, long string) (session.Durations, error) {
	toSecs := func(label, v string) (int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 1 || n > 999 {
			return 0, fmt.Errorf("%s must be a whole number of minutes between 1 and 999", label)
		}
		return n * 60, nil
	}

	var d session.Durations
	var err error
	if d.Focus, err = toSecs("focus", focus); err != nil {
		return d, err
	}
	if d.ShortBreak, err = toSecs("short break", short); err != nil {
		return d, err
	}
	if d.LongBreak, err = toSecs("long break", long); err != nil {
		return d, err
	}
	return d, nil
}

func (s settingsModel) view() string {
	if s.formActive && s.form != nil {
		content := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Settings"), "", s.form.View())
		return panelStyle.Width(s.width - 4).Render(content)
	}

	w := s.width - 4
	d := s.store.Durations()

	owner := s.store.Owner()
	ownerLabel := owner
	if ownerLabel == "" {
		ownerLabel = errorStyle.Render("not set — task changes are disabled")
	}

	rows := []string{
		titleStyle.Render("Settings"),
		"",
		fmt.Sprintf("  %-22s %s", "Owner identity", ownerLabel),
		fmt.Sprintf("  %-22s %d min", "Focus", d.Focus/60),
		fmt.Sprintf("  %-22s %d min", "Short break", d.ShortBreak/60),
		fmt.Sprintf("  %-22s %d min", "Long break", d.LongBreak/60),
		"",
		mutedStyle.Render("  enter: edit"),
	}
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
