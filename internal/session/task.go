package session

import (
	"fmt"
	"time"
)

// Date is a calendar day in local time, formatted YYYY-MM-DD.
type Date string

const dateLayout = "2006-01-02"

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date(t.Format(dateLayout)), nil
}

func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

func (d Date) IsZero() bool {
	return d == ""
}

func (d Date) Time() time.Time {
	t, _ := time.ParseInLocation(dateLayout, string(d), time.Local)
	return t
}

// Display renders the date relative to today: "Today", "Tomorrow",
// or e.g. "Mon, Jan 2".
func (d Date) Display(today Date) string {
	switch {
	case d == today:
		return "Today"
	case d == DateOf(today.Time().AddDate(0, 0, 1)):
		return "Tomorrow"
	default:
		return d.Time().Format("Mon, Jan 2")
	}
}

// Task is one schedulable unit of focus work. A task is done once
// CompletedInstances reaches TargetInstances, or when toggled manually.
type Task struct {
	ID                 string
	OwnerID            string
	Title              string
	Date               Date
	DurationMinutes    int
	TargetInstances    int
	CompletedInstances int
	Completed          bool
	CreatedAt          time.Time
}

// Duration is the length of one focus repetition.
func (t Task) Duration() time.Duration {
	return time.Duration(t.DurationMinutes) * time.Minute
}

// Clock supplies wall-clock time so tests can pin "today".
type Clock interface {
	Now() time.Time
	Today() Date
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
func (systemClock) Today() Date    { return DateOf(time.Now()) }

// SystemClock returns a Clock backed by time.Now in local time.
func SystemClock() Clock { return systemClock{} }
