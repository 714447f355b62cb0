package session

// EventKind identifies a notification emitted by the state machine.
type EventKind int

const (
	EventStartClick EventKind = iota
	EventPauseClick
	EventFocusComplete
	EventBreakComplete
	EventRepComplete
	EventTaskFullyComplete
)

var eventNames = map[EventKind]string{
	EventStartClick:        "start",
	EventPauseClick:        "pause",
	EventFocusComplete:     "focus_complete",
	EventBreakComplete:     "break_complete",
	EventRepComplete:       "rep_complete",
	EventTaskFullyComplete: "task_complete",
}

func (k EventKind) String() string { return eventNames[k] }

// RepProgress is the payload for EventRepComplete.
type RepProgress struct {
	Current int
	Target  int
}

// Notifier receives fire-and-forget notification events. The machine
// never depends on what the implementation does with them.
type Notifier interface {
	Notify(kind EventKind, payload any)
}

// NopNotifier discards all events.
type NopNotifier struct{}

func (NopNotifier) Notify(EventKind, any) {}
