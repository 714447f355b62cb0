package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/focuscal/internal/session"
)

// calendarModel renders the month grid. Days with incomplete tasks get
// a marker; moving the selection drives the machine's selected date.
type calendarModel struct {
	repo    *session.Repo
	machine *session.Machine
	width   int
	height  int

	year  int
	month time.Month
}

func newCalendarModel(r *session.Repo, m *session.Machine) calendarModel {
	today := m.Today().Time()
	return calendarModel{
		repo:    r,
		machine: m,
		year:    today.Year(),
		month:   today.Month(),
	}
}

func (c *calendarModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

func (c calendarModel) update(msg tea.Msg) (calendarModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Left):
		return c.moveSelection(-1)
	case key.Matches(keyMsg, keys.Right):
		return c.moveSelection(1)
	case key.Matches(keyMsg, keys.Up):
		return c.moveSelection(-7)
	case key.Matches(keyMsg, keys.Down):
		return c.moveSelection(7)

	case key.Matches(keyMsg, keys.PrevMonth):
		c.year, c.month = prevMonth(c.year, c.month)
		return c, nil
	case key.Matches(keyMsg, keys.NextMonth):
		c.year, c.month = nextMonth(c.year, c.month)
		return c, nil

	case key.Matches(keyMsg, keys.Today):
		today := c.machine.Today()
		if err := c.machine.SelectDate(today); err != nil {
			return c, errStatusCmd(err)
		}
		t := today.Time()
		c.year, c.month = t.Year(), t.Month()
		return c, nil
	}
	return c, nil
}

// moveSelection shifts the selected date by days, paging the displayed
// month along with it. Rejected while the timer runs.
func (c calendarModel) moveSelection(days int) (calendarModel, tea.Cmd) {
	next := session.DateOf(c.machine.SelectedDate().Time().AddDate(0, 0, days))
	if err := c.machine.SelectDate(next); err != nil {
		return c, errStatusCmd(err)
	}
	t := next.Time()
	c.year, c.month = t.Year(), t.Month()
	return c, nil
}

func prevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

func (c calendarModel) view() string {
	w := c.width - 4

	first := time.Date(c.year, c.month, 1, 0, 0, 0, 0, time.Local)
	title := titleStyle.Render(first.Format("January 2006"))

	marked := c.repo.DatesWithIncompleteWork()
	today := c.machine.Today()
	selected := c.machine.SelectedDate()

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	weekdays := []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	var header []string
	for _, d := range weekdays {
		header = append(header, mutedStyle.Width(4).Align(lipgloss.Center).Render(d))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, header...))

	daysInMonth := time.Date(c.year, c.month+1, 0, 0, 0, 0, 0, time.Local).Day()
	var week []string

	// Leading blanks before the 1st.
	for i := 0; i < int(first.Weekday()); i++ {
		week = append(week, calendarDayStyle.Render(" "))
	}

	for day := 1; day <= daysInMonth; day++ {
		date := session.DateOf(time.Date(c.year, c.month, day, 0, 0, 0, 0, time.Local))

		label := strconv.Itoa(day)
		if marked[date] {
			label += "•"
		}

		style := calendarDayStyle
		switch {
		case date == selected:
			style = calendarSelectedStyle
		case date == today:
			style = calendarTodayStyle
		case marked[date]:
			style = calendarMarkedStyle
		}
		week = append(week, style.Render(label))

		if len(week) == 7 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, week...))
			week = nil
		}
	}
	if len(week) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, week...))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  • has open tasks   selected: "+selected.Display(today)))
	rows = append(rows, mutedStyle.Render("  arrows: select day  [/]: month  t: today"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
