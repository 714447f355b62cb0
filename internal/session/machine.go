package session

// Mode is the timer mode.
type Mode int

const (
	ModeFocus Mode = iota
	ModeShortBreak
	ModeLongBreak
)

var modeNames = map[Mode]string{
	ModeFocus:      "FOCUS",
	ModeShortBreak: "SHORT BREAK",
	ModeLongBreak:  "LONG BREAK",
}

func (m Mode) String() string { return modeNames[m] }

// Durations holds the default countdown lengths per mode, in seconds.
type Durations struct {
	Focus      int
	ShortBreak int
	LongBreak  int
}

func DefaultDurations() Durations {
	return Durations{Focus: 1500, ShortBreak: 300, LongBreak: 900}
}

func (d Durations) forMode(m Mode) int {
	switch m {
	case ModeShortBreak:
		return d.ShortBreak
	case ModeLongBreak:
		return d.LongBreak
	default:
		return d.Focus
	}
}

// Machine owns the timer mode, countdown, active-task binding,
// repetition progress and cycle counting. It is single-threaded: all
// methods run on the update goroutine, driven by an external
// once-per-second tick source.
type Machine struct {
	repo     *Repo
	notifier Notifier
	clock    Clock

	mode         Mode
	timeLeft     int // seconds
	running      bool
	cycle        int
	activeTaskID string // lookup key, may dangle after deletion
	selectedDate Date

	durations Durations
	onChange  func()
}

// NewMachine builds a paused focus-mode machine at the full focus
// duration, cycle 1, with no task attached and today selected.
func NewMachine(repo *Repo, notifier Notifier, clock Clock, d Durations) *Machine {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	m := &Machine{
		repo:         repo,
		notifier:     notifier,
		clock:        clock,
		mode:         ModeFocus,
		timeLeft:     d.Focus,
		cycle:        1,
		selectedDate: clock.Today(),
		durations:    d,
	}
	repo.OnReplace(func(oldID, newID string) {
		if m.activeTaskID == oldID {
			m.activeTaskID = newID
		}
	})
	return m
}

// OnChange registers the render-invalidation callback.
func (m *Machine) OnChange(fn func()) { m.onChange = fn }

func (m *Machine) invalidate() {
	if m.onChange != nil {
		m.onChange()
	}
}

func (m *Machine) Mode() Mode            { return m.mode }
func (m *Machine) TimeLeft() int         { return m.timeLeft }
func (m *Machine) Running() bool         { return m.running }
func (m *Machine) Cycle() int            { return m.cycle }
func (m *Machine) ActiveTaskID() string  { return m.activeTaskID }
func (m *Machine) SelectedDate() Date    { return m.selectedDate }
func (m *Machine) Durations() Durations  { return m.durations }

// Today exposes the machine's clock so views compare against the same
// calendar day the machine uses.
func (m *Machine) Today() Date { return m.clock.Today() }

// ActiveTask resolves the attached task, tolerating a dangling id.
func (m *Machine) ActiveTask() (Task, bool) {
	if m.activeTaskID == "" {
		return Task{}, false
	}
	return m.repo.Get(m.activeTaskID)
}

// SwitchMode changes the timer mode manually. A running timer must be
// paused first. Manual mode changes always detach the active task and
// reset the countdown to the mode's default.
func (m *Machine) SwitchMode(mode Mode) error {
	if m.running {
		return ErrBusy
	}
	m.activeTaskID = ""
	m.enterMode(mode, m.durations.forMode(mode))
	return nil
}

// StartFocusOnTask attaches the task and readies a focus session of
// the task's duration. The timer is not started; Toggle does that.
func (m *Machine) StartFocusOnTask(taskID string) error {
	if m.running {
		return ErrBusy
	}
	t, ok := m.repo.Get(taskID)
	if !ok {
		return ErrTaskNotFound
	}
	m.activeTaskID = t.ID
	m.enterMode(ModeFocus, t.DurationMinutes*60)
	return nil
}

// Toggle is the start/pause/resume entry point. A tap while the
// countdown sits at zero resets the current mode instead of starting.
func (m *Machine) Toggle() {
	if m.running {
		m.running = false
		m.notifier.Notify(EventPauseClick, nil)
		m.invalidate()
		return
	}
	if m.timeLeft == 0 {
		m.enterMode(m.mode, m.fullDuration())
		return
	}
	m.running = true
	m.notifier.Notify(EventStartClick, nil)
	m.invalidate()
}

// Reset stops the countdown, detaches any active task and restores the
// current mode's default duration.
func (m *Machine) Reset() {
	m.running = false
	m.activeTaskID = ""
	m.enterMode(m.mode, m.durations.forMode(m.mode))
}

// Tick advances the countdown by one second. The running flag is
// dropped before expiry handling so a re-entrant tick cannot race the
// mode transition. Any persistence continuations produced by task
// completion are returned for the caller to run.
func (m *Machine) Tick() []Persist {
	if !m.running {
		return nil
	}
	m.timeLeft--
	if m.timeLeft <= 0 {
		m.timeLeft = 0
		m.running = false
		return m.onExpire()
	}
	m.invalidate()
	return nil
}

// Skip forces the countdown to expire on the next tick, so that a
// skipped session produces exactly the side effects of a natural
// zero-crossing. Skipping an untouched paused timer is a no-op.
func (m *Machine) Skip() {
	if !m.running && m.timeLeft == m.fullDuration() {
		return
	}
	m.timeLeft = 1
	m.invalidate()
}

// SelectDate moves the task-list/calendar selection. Rejected while
// the timer runs.
func (m *Machine) SelectDate(d Date) error {
	if m.running {
		return ErrBusy
	}
	m.selectedDate = d
	m.invalidate()
	return nil
}

// SetDurations installs new per-mode defaults. A paused timer is reset
// to the new full duration of its current mode; a running countdown is
// left alone.
func (m *Machine) SetDurations(d Durations) {
	m.durations = d
	if !m.running && m.activeTaskID == "" {
		m.timeLeft = d.forMode(m.mode)
	}
	m.invalidate()
}

// fullDuration is the countdown length a fresh session of the current
// mode would get: the attached task's duration for focus, else the
// mode default. A dangling task id falls back to the default.
func (m *Machine) fullDuration() int {
	if m.mode == ModeFocus && m.activeTaskID != "" {
		if t, ok := m.repo.Get(m.activeTaskID); ok {
			return t.DurationMinutes * 60
		}
	}
	return m.durations.forMode(m.mode)
}

// enterMode sets the mode and countdown without touching the
// active-task binding; callers decide whether the binding survives.
func (m *Machine) enterMode(mode Mode, seconds int) {
	m.running = false
	m.mode = mode
	m.timeLeft = seconds
	m.invalidate()
}

// onExpire runs the completion transition after the countdown reaches
// zero. Focus completions count toward the attached task and the
// cycle; break completions hand control back to focus, resuming a
// mid-sequence task automatically.
func (m *Machine) onExpire() []Persist {
	var persists []Persist

	switch m.mode {
	case ModeFocus:
		if m.activeTaskID != "" {
			if t, ok := m.repo.Get(m.activeTaskID); ok {
				updated, p, err := m.repo.IncrementInstance(t.ID)
				if err == nil {
					persists = append(persists, p)
					if updated.CompletedInstances >= updated.TargetInstances {
						if done, derr := m.repo.SetCompleted(t.ID, true); derr == nil {
							persists = append(persists, done)
						}
						m.activeTaskID = ""
						m.notifier.Notify(EventTaskFullyComplete, updated)
					} else {
						m.notifier.Notify(EventRepComplete, RepProgress{
							Current: updated.CompletedInstances,
							Target:  updated.TargetInstances,
						})
					}
				}
			} else {
				// Task deleted mid-session: degrade to an unassigned
				// completion.
				m.activeTaskID = ""
				m.notifier.Notify(EventFocusComplete, nil)
			}
		} else {
			m.notifier.Notify(EventFocusComplete, nil)
		}

		m.cycle++
		next := ModeShortBreak
		if (m.cycle-1)%4 == 0 {
			next = ModeLongBreak
		}
		m.enterMode(next, m.durations.forMode(next))

	case ModeShortBreak, ModeLongBreak:
		m.notifier.Notify(EventBreakComplete, nil)
		if m.activeTaskID != "" {
			if t, ok := m.repo.Get(m.activeTaskID); ok {
				m.enterMode(ModeFocus, t.DurationMinutes*60)
				break
			}
			m.activeTaskID = ""
		}
		m.enterMode(ModeFocus, m.durations.Focus)
	}

	return persists
}
