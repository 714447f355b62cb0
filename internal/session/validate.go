package session

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors surfaced to the user by the views.
var (
	// ErrBusy rejects an operation because the timer is running.
	ErrBusy = errors.New("timer is running, pause it first")
	// ErrTaskNotFound reports a task id with no matching cached task.
	ErrTaskNotFound = errors.New("task not found")
	// ErrNoIdentity rejects a mutation because no owner identity is set.
	ErrNoIdentity = errors.New("no owner identity configured")
)

// ValidationError is a user-input rejection with a displayable message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErr(msg string) error { return &ValidationError{Message: msg} }

// Candidate is the validated input for creating a Task.
type Candidate struct {
	Title           string `validate:"required"`
	Date            Date   `validate:"required"`
	DurationMinutes int    `validate:"min=1,max=999"`
	TargetInstances int    `validate:"min=1,max=99"`
}

var validate = validator.New()

var fieldMessages = map[string]string{
	"Title":           "title must not be empty",
	"Date":            "a valid date is required",
	"DurationMinutes": "duration must be between 1 and 999 minutes",
	"TargetInstances": "repetitions must be between 1 and 99",
}

// ParseCandidate builds a Candidate from raw form input. Duration and
// repetitions must be whole numbers; an empty repetitions field defaults
// to 1.
func ParseCandidate(title, date, duration, instances string) (Candidate, error) {
	c := Candidate{Title: strings.TrimSpace(title), TargetInstances: 1}

	if date != "" {
		d, err := ParseDate(date)
		if err != nil {
			return Candidate{}, validationErr("a valid date is required")
		}
		c.Date = d
	}

	dur, err := strconv.Atoi(strings.TrimSpace(duration))
	if err != nil {
		return Candidate{}, validationErr("duration must be a whole number of minutes")
	}
	c.DurationMinutes = dur

	if s := strings.TrimSpace(instances); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Candidate{}, validationErr("repetitions must be a whole number")
		}
		c.TargetInstances = n
	}

	return c, nil
}

// ValidateCandidate checks a candidate against the range rules and
// against the existing tasks for duplicate titles (case-insensitive,
// same owner and date). It is pure: no state is mutated.
func ValidateCandidate(c Candidate, ownerID string, existing []Task) error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			if msg, ok := fieldMessages[verrs[0].Field()]; ok {
				return validationErr(msg)
			}
		}
		return validationErr("invalid task input")
	}

	title := strings.ToLower(c.Title)
	for _, t := range existing {
		if t.OwnerID == ownerID && t.Date == c.Date && strings.ToLower(t.Title) == title {
			return validationErr("a task with this title already exists on this date")
		}
	}
	return nil
}
