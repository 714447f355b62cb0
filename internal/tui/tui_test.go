package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/focuscal/internal/session"
	"github.com/sadopc/focuscal/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// newTestCore wires a repo and machine over an in-memory store, the
// same way NewApp does.
func newTestCore(t *testing.T) (*session.Repo, *session.Machine, *uiNotifier, *store.Store) {
	t.Helper()
	s := newTestStore(t)
	s.SetOwner("mira")

	notifier := &uiNotifier{}
	clock := session.SystemClock()
	repo := session.NewRepo(s, clock, nil)
	repo.SetOwner("mira")
	machine := session.NewMachine(repo, notifier, clock, s.Durations())
	return repo, machine, notifier, s
}

// addTask persists a task for the machine's selected date.
func addTask(t *testing.T, repo *session.Repo, m *session.Machine, title string, durationMin int) session.Task {
	t.Helper()
	_, persist, err := repo.Add(session.Candidate{
		Title:           title,
		Date:            m.SelectedDate(),
		DurationMinutes: durationMin,
		TargetInstances: 1,
	})
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if msg := repo.Apply(persist()); msg != "" {
		t.Fatalf("persist add: %s", msg)
	}
	for _, task := range repo.ByDate(m.SelectedDate()) {
		if task.Title == title {
			return task
		}
	}
	t.Fatalf("task %q not found after add", title)
	return session.Task{}
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var (
	spaceKey = tea.KeyMsg{Type: tea.KeySpace}
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	upKey    = tea.KeyMsg{Type: tea.KeyUp}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
	rightKey = tea.KeyMsg{Type: tea.KeyRight}
)

// collect runs a command tree and gathers the messages it produces.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// ============================================================
// Timer view
// ============================================================

func TestTimerToggleKey(t *testing.T) {
	repo, machine, notifier, _ := newTestCore(t)
	tm := newTimerModel(machine, repo, notifier)

	tm, _ = tm.update(spaceKey)
	if !machine.Running() {
		t.Fatal("space should start the timer")
	}

	tm, _ = tm.update(spaceKey)
	if machine.Running() {
		t.Fatal("space should pause the timer")
	}
}

func TestTimerTickDecrements(t *testing.T) {
	repo, machine, notifier, _ := newTestCore(t)
	tm := newTimerModel(machine, repo, notifier)

	tm, _ = tm.update(spaceKey)
	tm, _ = tm.update(tickMsg(time.Now()))
	if machine.TimeLeft() != 1499 {
		t.Fatalf("tick should decrement the countdown, got %d", machine.TimeLeft())
	}
}

func TestTimerResetKey(t *testing.T) {
	repo, machine, notifier, _ := newTestCore(t)
	tm := newTimerModel(machine, repo, notifier)

	tm, _ = tm.update(spaceKey)
	tm, _ = tm.update(tickMsg(time.Now()))
	tm, cmd := tm.update(keyPress('r'))

	if machine.Running() || machine.TimeLeft() != 1500 {
		t.Fatal("r should stop and restore the default duration")
	}
	msgs := collect(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected a status message, got %d msgs", len(msgs))
	}
	if sm, ok := msgs[0].(statusMsg); !ok || sm.text != "Timer reset" {
		t.Fatalf("unexpected message %v", msgs[0])
	}
}

func TestTimerModeKeyCyclesModes(t *testing.T) {
	repo, machine, notifier, _ := newTestCore(t)
	tm := newTimerModel(machine, repo, notifier)

	tm, _ = tm.update(keyPress('m'))
	if machine.Mode() != session.ModeShortBreak {
		t.Fatalf("expected short break, got %v", machine.Mode())
	}
	tm, _ = tm.update(keyPress('m'))
	if machine.Mode() != session.ModeLongBreak {
		t.Fatalf("expected long break, got %v", machine.Mode())
	}
	tm, _ = tm.update(keyPress('m'))
	if machine.Mode() != session.ModeFocus {
		t.Fatalf("expected focus, got %v", machine.Mode())
	}
}

func TestTimerModeKeyRejectedWhileRunning(t *testing.T) {
	repo, machine, notifier, _ := newTestCore(t)
	tm := newTimerModel(machine, repo, notifier)

	tm, _ = tm.update(spaceKey)
	tm, cmd := tm.update(keyPress('m'))

	if machine.Mode() != session.ModeFocus {
		t.Fatal("mode must not change while running")
	}
	msgs := collect(cmd)
	if len(msgs) != 1 {
		t.Fatal("expected an error status")
	}
	if sm, ok := msgs[0].(statusMsg); !ok || !sm.isError {
		t.Fatalf("expected error status, got %v", msgs[0])
	}
}

func TestTimerSkipKey(t *testing.T) {
	repo, machine, notifier, _ := newTestCore(t)
	tm := newTimerModel(machine, repo, notifier)

	// Paused at full duration: no-op.
	tm, _ = tm.update(keyPress('s'))
	if machine.TimeLeft() != 1500 {
		t.Fatal("skip on an untouched timer should do nothing")
	}

	tm, _ = tm.update(spaceKey)
	tm, _ = tm.update(keyPress('s'))
	tm, _ = tm.update(tickMsg(time.Now()))
	if machine.Mode() != session.ModeShortBreak {
		t.Fatalf("skip plus tick should land in the break, got %v", machine.Mode())
	}
}

func TestTimerViewShowsCountdown(t *testing.T) {
	repo, machine, notifier, _ := newTestCore(t)
	tm := newTimerModel(machine, repo, notifier)
	tm.setSize(100, 30)

	out := tm.view()
	if !strings.Contains(out, "25:00") {
		t.Fatal("view should show the initial countdown")
	}
	if !strings.Contains(out, "No task attached") {
		t.Fatal("view should show the default-session hint")
	}
}

func TestTimerViewShowsAttachedTask(t *testing.T) {
	repo, machine, notifier, _ := newTestCore(t)
	task := addTask(t, repo, machine, "write report", 50)
	machine.StartFocusOnTask(task.ID)

	tm := newTimerModel(machine, repo, notifier)
	tm.setSize(100, 30)

	out := tm.view()
	if !strings.Contains(out, "write report") {
		t.Fatal("view should name the attached task")
	}
	if !strings.Contains(out, "50:00") {
		t.Fatal("countdown should reflect the task duration")
	}
}

// ============================================================
// Tasks view
// ============================================================

func TestTasksCursorNavigation(t *testing.T) {
	repo, machine, notifier, _ := newTestCore(t)
	addTask(t, repo, machine, "one", 30)
	addTask(t, repo, machine, "two", 20)

	tk := newTasksModel(repo, machine, notifier)
	if tk.cursor != 0 {
		t.Fatal("cursor should start at 0")
	}

	tk, _ = tk.update(downKey)
	if tk.cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", tk.cursor)
	}
	tk, _ = tk.update(downKey)
	if tk.cursor != 1 {
		t.Fatal("cursor should stop at the last task")
	}
	tk, _ = tk.update(upKey)
	if tk.cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", tk.cursor)
	}
}

func TestTasksEnterAttachesTask(t *testing.T) {
	repo, machine, notifier, _ := newTestCore(t)
	task := addTask(t, repo, machine, "deep work", 50)

	tk := newTasksModel(repo, machine, notifier)
	tk, cmd := tk.update(enterKey)

	if machine.ActiveTaskID() != task.ID {
		t.Fatal("enter should attach the task")
	}
	msgs := collect(cmd)
	if len(msgs) != 1 {
		t.Fatal("expected a focus message")
	}
	if fm, ok := msgs[0].(taskFocusedMsg); !ok || fm.title != "deep work" {
		t.Fatalf("unexpected message %v", msgs[0])
	}
}

func TestTasksEnterRejectedWhileRunning(t *testing.T) {
	repo, machine, notifier, _ := newTestCore(t)
	addTask(t, repo, machine, "deep work", 50)
	machine.Toggle()

	tk := newTasksModel(repo, machine, notifier)
	tk, cmd := tk.update(enterKey)

	if machine.ActiveTaskID() != "" {
		t.Fatal("attach must be rejected while running")
	}
	msgs := collect(cmd)
	if sm, ok := msgs[0].(statusMsg); !ok || !sm.isError {
		t.Fatalf("expected error status, got %v", msgs[0])
	}
}

func TestTasksDeleteKey(t *testing.T) {
	repo, machine, notifier, _ := newTestCore(t)
	task := addTask(t, repo, machine, "doomed", 25)

	tk := newTasksModel(repo, machine, notifier)
	tk, cmd := tk.update(keyPress('d'))

	if _, ok := repo.Get(task.ID); ok {
		t.Fatal("d should remove the task from the cache")
	}
	// Run the persist continuation through Apply, as the app would.
	for _, msg := range collect(cmd) {
		if om, ok := msg.(outcomeMsg); ok {
			if text := repo.Apply(om.outcome); text != "" {
				t.Fatalf("persist failed: %s", text)
			}
		}
	}
}

func TestTasksDoneKeyToggles(t *testing.T) {
	repo, machine, notifier, _ := newTestCore(t)
	task := addTask(t, repo, machine, "almost there", 25)

	tk := newTasksModel(repo, machine, notifier)
	tk, _ = tk.update(keyPress('x'))

	got, _ := repo.Get(task.ID)
	if !got.Completed {
		t.Fatal("x should mark the task done")
	}

	tk, _ = tk.update(keyPress('x'))
	got, _ = repo.Get(task.ID)
	if got.Completed {
		t.Fatal("x again should un-mark it")
	}
}

func TestTasksDeleteOnEmptyList(t *testing.T) {
	repo, machine, notifier, _ := newTestCore(t)
	tk := newTasksModel(repo, machine, notifier)

	tk, cmd := tk.update(keyPress('d'))
	if cmd != nil {
		t.Fatal("delete on an empty list should be a no-op")
	}
}

func TestTasksNewKeyOpensForm(t *testing.T) {
	repo, machine, notifier, _ := newTestCore(t)
	tk := newTasksModel(repo, machine, notifier)

	tk, _ = tk.update(keyPress('n'))
	if !tk.formActive {
		t.Fatal("n should open the add form")
	}

	tk, _ = tk.update(escKey)
	if tk.formActive {
		t.Fatal("esc should close the form")
	}
}

func TestTasksView(t *testing.T) {
	repo, machine, notifier, _ := newTestCore(t)
	addTask(t, repo, machine, "visible task", 25)

	tk := newTasksModel(repo, machine, notifier)
	tk.setSize(100, 30)

	out := tk.view()
	if !strings.Contains(out, "visible task") {
		t.Fatal("view should list the task")
	}
	if !strings.Contains(out, "Today") {
		t.Fatal("view should label the selected date")
	}
}

func TestTasksViewEmpty(t *testing.T) {
	repo, machine, notifier, _ := newTestCore(t)
	tk := newTasksModel(repo, machine, notifier)
	tk.setSize(100, 30)

	if !strings.Contains(tk.view(), "No tasks scheduled") {
		t.Fatal("empty view should show the hint")
	}
}

// ============================================================
// Calendar view
// ============================================================

func TestCalendarMonthPaging(t *testing.T) {
	repo, machine, _, _ := newTestCore(t)
	c := newCalendarModel(repo, machine)

	year, month := c.year, c.month
	c, _ = c.update(keyPress(']'))
	wantYear, wantMonth := nextMonth(year, month)
	if c.year != wantYear || c.month != wantMonth {
		t.Fatalf("expected %d %v, got %d %v", wantYear, wantMonth, c.year, c.month)
	}

	c, _ = c.update(keyPress('['))
	if c.year != year || c.month != month {
		t.Fatal("[ should page back to the original month")
	}
}

func TestCalendarMoveSelection(t *testing.T) {
	repo, machine, _, _ := newTestCore(t)
	c := newCalendarModel(repo, machine)

	before := machine.SelectedDate()
	c, _ = c.update(rightKey)
	want := session.DateOf(before.Time().AddDate(0, 0, 1))
	if machine.SelectedDate() != want {
		t.Fatalf("expected %s, got %s", want, machine.SelectedDate())
	}

	c, _ = c.update(keyPress('t'))
	if machine.SelectedDate() != machine.Today() {
		t.Fatal("t should jump back to today")
	}
}

func TestCalendarSelectionRejectedWhileRunning(t *testing.T) {
	repo, machine, _, _ := newTestCore(t)
	machine.Toggle()

	c := newCalendarModel(repo, machine)
	before := machine.SelectedDate()
	c, cmd := c.update(rightKey)

	if machine.SelectedDate() != before {
		t.Fatal("selection must not move while the timer runs")
	}
	msgs := collect(cmd)
	if sm, ok := msgs[0].(statusMsg); !ok || !sm.isError {
		t.Fatalf("expected error status, got %v", msgs[0])
	}
}

func TestCalendarMonthBoundaries(t *testing.T) {
	if y, m := prevMonth(2024, time.January); y != 2023 || m != time.December {
		t.Fatalf("prevMonth(Jan) = %d %v", y, m)
	}
	if y, m := nextMonth(2024, time.December); y != 2025 || m != time.January {
		t.Fatalf("nextMonth(Dec) = %d %v", y, m)
	}
}

func TestCalendarViewMarksOpenWork(t *testing.T) {
	repo, machine, _, _ := newTestCore(t)
	addTask(t, repo, machine, "open work", 25)

	c := newCalendarModel(repo, machine)
	c.setSize(100, 30)

	if !strings.Contains(c.view(), "•") {
		t.Fatal("a day with open tasks should carry the marker")
	}
}

// ============================================================
// Stats view
// ============================================================

func TestStatsWeekNavigation(t *testing.T) {
	repo, machine, _, _ := newTestCore(t)
	s := newStatsModel(repo, machine)

	s, _ = s.update(tea.KeyMsg{Type: tea.KeyLeft})
	if s.offset != 1 {
		t.Fatalf("left should page back a week, got offset %d", s.offset)
	}
	s, _ = s.update(rightKey)
	if s.offset != 0 {
		t.Fatalf("right should page forward, got offset %d", s.offset)
	}
	s, _ = s.update(rightKey)
	if s.offset != 0 {
		t.Fatal("offset must not go past the current week")
	}
}

func TestStatsRepsPerDay(t *testing.T) {
	repo, machine, _, _ := newTestCore(t)
	task := addTask(t, repo, machine, "counted", 25)
	_, p, _ := repo.IncrementInstance(task.ID)
	repo.Apply(p())

	s := newStatsModel(repo, machine)
	reps := s.repsPerDay()
	if reps[task.Date] != 1 {
		t.Fatalf("expected 1 rep on %s, got %d", task.Date, reps[task.Date])
	}
}

func TestStatsViewRenders(t *testing.T) {
	repo, machine, _, _ := newTestCore(t)
	task := addTask(t, repo, machine, "counted", 25)
	_, p, _ := repo.IncrementInstance(task.ID)
	repo.Apply(p())

	s := newStatsModel(repo, machine)
	s.setSize(100, 40)

	out := s.view()
	if out == "" {
		t.Fatal("stats view rendered empty")
	}
	if !strings.Contains(out, "total") {
		t.Fatal("summary should show a total once reps exist")
	}
}

// ============================================================
// Settings view
// ============================================================

func TestParseDurations(t *testing.T) {
	d, err := parseDurations("25", "5", "15")
	if err != nil {
		t.Fatal(err)
	}
	want := session.Durations{Focus: 1500, ShortBreak: 300, LongBreak: 900}
	if d != want {
		t.Fatalf("expected %+v, got %+v", want, d)
	}

	bad := [][3]string{
		{"0", "5", "15"},
		{"1000", "5", "15"},
		{"soon", "5", "15"},
		{"25", "", "15"},
		{"25", "5", "-1"},
	}
	for _, b := range bad {
		if _, err := parseDurations(b[0], b[1], b[2]); err == nil {
			t.Fatalf("expected rejection for %v", b)
		}
	}
}

func TestSettingsViewShowsMissingOwner(t *testing.T) {
	repo, machine, _, s := newTestCore(t)
	s.SetOwner("")

	sm := newSettingsModel(s, repo, machine)
	sm.setSize(100, 30)

	if !strings.Contains(sm.view(), "not set") {
		t.Fatal("missing owner should be called out")
	}
}

func TestSettingsFormOpenClose(t *testing.T) {
	repo, machine, _, s := newTestCore(t)
	sm := newSettingsModel(s, repo, machine)

	sm, _ = sm.update(enterKey)
	if !sm.formActive {
		t.Fatal("enter should open the form")
	}
	sm, _ = sm.update(escKey)
	if sm.formActive {
		t.Fatal("esc should close the form")
	}
}

// ============================================================
// App model
// ============================================================

func newTestApp(t *testing.T) App {
	t.Helper()
	s := newTestStore(t)
	s.SetOwner("mira")
	app := NewApp(s)
	m, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m.(App)
}

func TestNewAppDefaults(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)

	if app.activeView != viewTimer {
		t.Fatal("default view should be the timer")
	}
	if app.showHelp || app.exportPicking {
		t.Fatal("overlays should be hidden by default")
	}
	if app.isFormActive() {
		t.Fatal("no forms should be active initially")
	}
}

func TestAppTabSwitching(t *testing.T) {
	app := newTestApp(t)

	for _, tc := range []struct {
		press rune
		want  viewState
	}{
		{'2', viewTasks},
		{'3', viewCalendar},
		{'4', viewStats},
		{'5', viewSettings},
		{'1', viewTimer},
	} {
		m, _ := app.Update(keyPress(tc.press))
		app = m.(App)
		if app.activeView != tc.want {
			t.Fatalf("key %c: expected view %d, got %d", tc.press, tc.want, app.activeView)
		}
	}
}

func TestAppTabKeyCycles(t *testing.T) {
	app := newTestApp(t)

	for i := 0; i < 5; i++ {
		m, _ := app.Update(tabKey)
		app = m.(App)
	}
	if app.activeView != viewTimer {
		t.Fatal("five tabs should come back around to the timer")
	}
}

func TestAppQuitKey(t *testing.T) {
	app := newTestApp(t)
	_, cmd := app.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected a quit message")
	}
}

func TestAppTickReachesTimerFromAnyView(t *testing.T) {
	app := newTestApp(t)
	app.machine.Toggle()

	m, _ := app.Update(keyPress('3')) // calendar tab
	app = m.(App)
	m, _ = app.Update(tickMsg(time.Now()))
	app = m.(App)

	if app.machine.TimeLeft() != 1499 {
		t.Fatalf("tick should reach the machine on any tab, got %d", app.machine.TimeLeft())
	}
}

func TestAppStatusMessage(t *testing.T) {
	app := newTestApp(t)

	m, _ := app.Update(statusMsg{text: "saved ok"})
	app = m.(App)
	if app.status != "saved ok" {
		t.Fatalf("unexpected status %q", app.status)
	}
	if !strings.Contains(app.renderFooter(), "saved ok") {
		t.Fatal("footer should show the status")
	}
}

func TestAppOutcomeMessage(t *testing.T) {
	app := newTestApp(t)

	m, _ := app.Update(outcomeMsg{outcome: func(*session.Repo) string { return "could not save task" }})
	app = m.(App)
	if !strings.Contains(app.status, "could not save task") {
		t.Fatalf("persistence errors should surface in the status, got %q", app.status)
	}
}

func TestAppTaskFocusedSwitchesToTimer(t *testing.T) {
	app := newTestApp(t)
	m, _ := app.Update(keyPress('2'))
	app = m.(App)

	m, _ = app.Update(taskFocusedMsg{title: "deep work"})
	app = m.(App)
	if app.activeView != viewTimer {
		t.Fatal("focusing a task should jump to the timer view")
	}
	if !strings.Contains(app.status, "deep work") {
		t.Fatal("status should name the task")
	}
}

func TestAppExportPicker(t *testing.T) {
	app := newTestApp(t)

	m, _ := app.Update(keyPress('e'))
	app = m.(App)
	if !app.exportPicking {
		t.Fatal("e should open the export picker")
	}

	m, _ = app.Update(downKey)
	app = m.(App)
	if app.exportCursor != 1 {
		t.Fatal("down should move the export cursor")
	}

	m, _ = app.Update(escKey)
	app = m.(App)
	if app.exportPicking {
		t.Fatal("esc should close the picker")
	}
}

func TestAppViewStatesRender(t *testing.T) {
	app := newTestApp(t)

	for v := viewTimer; v <= viewSettings; v++ {
		app.activeView = v
		if out := app.View(); out == "" {
			t.Fatalf("view %d rendered empty", v)
		}
	}
}

func TestAppLoadingState(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)
	if app.View() != "Loading..." {
		t.Fatal("unsized app should show the loading placeholder")
	}
}

func TestAppHeaderContainsAllTabs(t *testing.T) {
	app := newTestApp(t)
	header := app.renderHeader()
	for _, name := range viewNames {
		if !strings.Contains(header, name) {
			t.Fatalf("header missing tab %q", name)
		}
	}
}

// ============================================================
// Helpers and notices
// ============================================================

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "00:00"},
		{1, "00:01"},
		{60, "01:00"},
		{1500, "25:00"},
		{3599, "59:59"},
		{-5, "00:00"},
	}
	for _, tt := range tests {
		if got := formatCountdown(tt.secs); got != tt.want {
			t.Errorf("formatCountdown(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestNoticeStatus(t *testing.T) {
	tests := []struct {
		kind    session.EventKind
		payload any
		want    string
	}{
		{session.EventStartClick, nil, "Timer started"},
		{session.EventPauseClick, nil, "Paused"},
		{session.EventFocusComplete, nil, "time for a break"},
		{session.EventBreakComplete, nil, "back to work"},
		{session.EventRepComplete, session.RepProgress{Current: 2, Target: 3}, "Rep 2/3"},
		{session.EventTaskFullyComplete, session.Task{Title: "thesis"}, `"thesis"`},
	}
	for _, tt := range tests {
		got := noticeStatus(notice{kind: tt.kind, payload: tt.payload})
		if !strings.Contains(got.text, tt.want) {
			t.Errorf("noticeStatus(%v) = %q, want it to contain %q", tt.kind, got.text, tt.want)
		}
	}
}

func TestUINotifierDrain(t *testing.T) {
	n := &uiNotifier{}
	n.Notify(session.EventStartClick, nil)
	n.Notify(session.EventPauseClick, nil)

	events := n.drain()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if got := n.drain(); got != nil {
		t.Fatal("drain should empty the queue")
	}
}

func TestViewNames(t *testing.T) {
	if len(viewNames) != 5 {
		t.Fatalf("expected 5 view names, got %d", len(viewNames))
	}
	expected := []string{"Timer", "Tasks", "Calendar", "Stats", "Settings"}
	for i, name := range expected {
		if viewNames[i] != name {
			t.Fatalf("viewNames[%d] = %q, want %q", i, viewNames[i], name)
		}
	}
}

// ============================================================
// Key bindings
// ============================================================

func TestKeyMapShortHelp(t *testing.T) {
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("short help should have bindings")
	}
}

func TestKeyMapFullHelp(t *testing.T) {
	groups := keys.FullHelp()
	if len(groups) == 0 {
		t.Fatal("full help should have groups")
	}
	for i, g := range groups {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}
