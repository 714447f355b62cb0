package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/focuscal/internal/session"
)

// statsModel charts completed focus reps per scheduled day.
type statsModel struct {
	repo    *session.Repo
	machine *session.Machine
	width   int
	height  int

	offset int // 7-day blocks back from today (0 = current)
	chart  barchart.Model
}

func newStatsModel(r *session.Repo, m *session.Machine) statsModel {
	return statsModel{
		repo:    r,
		machine: m,
		chart:   barchart.New(60, 12),
	}
}

func (s *statsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s statsModel) dateRange() (time.Time, time.Time) {
	today := s.machine.Today().Time()
	end := today.AddDate(0, 0, 1-7*s.offset)
	return end.AddDate(0, 0, -7), end
}

func (s statsModel) update(msg tea.Msg) (statsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(keyMsg, keys.Left):
		s.offset++
	case key.Matches(keyMsg, keys.Right):
		if s.offset > 0 {
			s.offset--
		}
	}
	return s, nil
}

// repsPerDay aggregates completed repetitions by scheduled date.
func (s statsModel) repsPerDay() map[session.Date]int {
	reps := make(map[session.Date]int)
	for _, t := range s.repo.All() {
		if t.CompletedInstances > 0 {
			reps[t.Date] += t.CompletedInstances
		}
	}
	return reps
}

func (s *statsModel) buildChart() {
	chartWidth := s.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if s.height > 30 {
		chartHeight = 16
	}

	s.chart = barchart.New(chartWidth, chartHeight)

	from, to := s.dateRange()
	reps := s.repsPerDay()

	var bars []barchart.BarData
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		date := session.DateOf(d)
		value := float64(reps[date])

		style := lipgloss.NewStyle().Foreground(colorFocus)
		if value == 0 {
			style = lipgloss.NewStyle().Foreground(colorSubtle)
		}

		bars = append(bars, barchart.BarData{
			Label: d.Format("Mon 02"),
			Values: []barchart.BarValue{
				{Name: "reps", Value: value, Style: style},
			},
		})
	}

	s.chart.PushAll(bars)
	s.chart.Draw()
}

func (s statsModel) view() string {
	w := s.width - 4

	from, to := s.dateRange()
	dateLabel := mutedStyle.Render(fmt.Sprintf("%s — %s",
		from.Format("Jan 02"), to.Add(-24*time.Hour).Format("Jan 02, 2006")))

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Focus Reps"), "  ", dateLabel,
	)

	sCopy := s
	sCopy.buildChart()
	chartView := sCopy.chart.View()

	table := s.renderSummaryTable(from, to)
	nav := mutedStyle.Render("  ←/→: navigate weeks")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", chartView, "", table, "", nav),
	)
}

func (s statsModel) renderSummaryTable(from, to time.Time) string {
	reps := s.repsPerDay()

	var rows []string
	total := 0
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		date := session.DateOf(d)
		if n := reps[date]; n > 0 {
			rows = append(rows, fmt.Sprintf("  %-12s %4d rep(s)", string(date), n))
			total += n
		}
	}
	if len(rows) == 0 {
		return mutedStyle.Render("  No completed reps in this period")
	}
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", 20)))
	rows = append(rows, fmt.Sprintf("  %-12s %4d rep(s)", "total", total))
	return strings.Join(rows, "\n")
}
