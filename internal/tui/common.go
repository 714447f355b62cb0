package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/focuscal/internal/session"
)

// viewState represents the currently active view.
type viewState int

const (
	viewTimer viewState = iota
	viewTasks
	viewCalendar
	viewStats
	viewSettings
)

var viewNames = []string{"Timer", "Tasks", "Calendar", "Stats", "Settings"}

// --- Messages ---

type tickMsg time.Time

type statusMsg struct {
	text    string
	isError bool
}

// outcomeMsg carries a finished persistence call back to the update
// loop, where Repo.Apply runs its correction on cache state.
type outcomeMsg struct {
	outcome session.Outcome
}

// taskFocusedMsg asks the app to jump to the timer view after a task
// was attached.
type taskFocusedMsg struct {
	title string
}

type exportDoneMsg struct {
	path string
}

// persistCmd runs a persistence continuation off the update loop.
func persistCmd(p session.Persist) tea.Cmd {
	if p == nil {
		return nil
	}
	return func() tea.Msg {
		return outcomeMsg{outcome: p()}
	}
}

func persistCmds(ps []session.Persist) []tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range ps {
		if c := persistCmd(p); c != nil {
			cmds = append(cmds, c)
		}
	}
	return cmds
}

func statusCmd(text string, isError bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isError: isError}
	}
}

func errStatusCmd(err error) tea.Cmd {
	return statusCmd(err.Error(), true)
}

// --- Notifier ---

// uiNotifier queues machine events during an update; the active view
// drains them into status messages afterwards. Everything stays on the
// update goroutine.
type uiNotifier struct {
	events []notice
}

type notice struct {
	kind    session.EventKind
	payload any
}

func (n *uiNotifier) Notify(kind session.EventKind, payload any) {
	n.events = append(n.events, notice{kind: kind, payload: payload})
}

func (n *uiNotifier) drain() []notice {
	out := n.events
	n.events = nil
	return out
}

// noticeStatus maps a machine event to the footer message. The bell
// rings on session boundaries, mirroring the audible cue of the
// original app.
func noticeStatus(nt notice) statusMsg {
	switch nt.kind {
	case session.EventStartClick:
		return statusMsg{text: "Timer started"}
	case session.EventPauseClick:
		return statusMsg{text: "Paused"}
	case session.EventFocusComplete:
		return statusMsg{text: "Focus finished — time for a break! \a"}
	case session.EventBreakComplete:
		return statusMsg{text: "Break over — back to work! \a"}
	case session.EventRepComplete:
		if p, ok := nt.payload.(session.RepProgress); ok {
			return statusMsg{text: fmt.Sprintf("Rep %d/%d done — take a break \a", p.Current, p.Target)}
		}
		return statusMsg{text: "Rep done — take a break \a"}
	case session.EventTaskFullyComplete:
		if t, ok := nt.payload.(session.Task); ok {
			return statusMsg{text: fmt.Sprintf("Task %q fully complete! \a", t.Title)}
		}
		return statusMsg{text: "Task fully complete! \a"}
	}
	return statusMsg{}
}

func noticeCmds(notifier *uiNotifier) []tea.Cmd {
	var cmds []tea.Cmd
	for _, nt := range notifier.drain() {
		msg := noticeStatus(nt)
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	return cmds
}

// --- Helpers ---

// formatCountdown renders whole seconds as mm:ss.
func formatCountdown(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
