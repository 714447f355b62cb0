package session

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// TaskStore is the persistence collaborator behind the cache. The
// sqlite implementation lives in internal/store; tests use a fake.
type TaskStore interface {
	ListTasks(ownerID string) ([]Task, error)
	InsertTask(t Task) (Task, error)
	UpdateTaskCompleted(id string, completed bool) error
	UpdateTaskInstances(id string, completedInstances int) error
	DeleteTask(id string) error
	DeleteCompleted(ownerID string) error
}

// Persist is a deferred store call. The caller runs it off the update
// loop (as a tea.Cmd) and feeds the Outcome back into Repo.Apply.
type Persist func() Outcome

// Outcome applies a correction or rollback to the cache after a store
// call finishes. It returns a user-visible error message, or "".
type Outcome func(*Repo) string

const localIDPrefix = "local-"

// IsLocalID reports whether id belongs to a placeholder task that has
// not yet been assigned a store identity.
func IsLocalID(id string) bool { return strings.HasPrefix(id, localIDPrefix) }

// Repo is the in-memory mirror of the owner's tasks. All mutation is
// applied locally first; store writes happen through the returned
// Persist continuations. Single-threaded by contract: every method and
// every Outcome runs on the update goroutine.
type Repo struct {
	store TaskStore
	log   *slog.Logger
	clock Clock

	owner string
	tasks []Task // creation order

	onChange  func()
	onReplace func(oldID, newID string)
}

func NewRepo(store TaskStore, clock Clock, log *slog.Logger) *Repo {
	if log == nil {
		log = slog.Default()
	}
	return &Repo{store: store, clock: clock, log: log}
}

// OnChange registers the render-invalidation callback.
func (r *Repo) OnChange(fn func()) { r.onChange = fn }

// OnReplace registers a hook fired when a placeholder task is swapped
// for its store-assigned entity. The machine uses it to re-point a
// stale active-task reference.
func (r *Repo) OnReplace(fn func(oldID, newID string)) { r.onReplace = fn }

func (r *Repo) invalidate() {
	if r.onChange != nil {
		r.onChange()
	}
}

func (r *Repo) SetOwner(ownerID string) { r.owner = ownerID }
func (r *Repo) Owner() string           { return r.owner }

// HasIdentity reports whether a task-owning identity is available.
func (r *Repo) HasIdentity() bool { return r.owner != "" }

// Load fetches the owner's tasks and replaces the cache wholesale. On
// store failure the cache is left untouched.
func (r *Repo) Load(ownerID string) Persist {
	return func() Outcome {
		tasks, err := r.store.ListTasks(ownerID)
		return func(r *Repo) string {
			if err != nil {
				r.log.Error("load tasks", "owner", ownerID, "err", err)
				return "could not load tasks"
			}
			r.owner = ownerID
			r.tasks = tasks
			return ""
		}
	}
}

// Get looks up a cached task by id. Every dereference of a task id
// goes through here; a dangling id is reported, never a panic.
func (r *Repo) Get(id string) (Task, bool) {
	for _, t := range r.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// All returns the cached tasks in creation order.
func (r *Repo) All() []Task {
	out := make([]Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

// Add validates the candidate, inserts a locally-tagged placeholder,
// and returns the persist continuation. On persist success the
// placeholder is swapped for the store entity (its id changes); on
// failure the placeholder is removed and an error surfaced.
func (r *Repo) Add(c Candidate) (Task, Persist, error) {
	if !r.HasIdentity() {
		return Task{}, nil, ErrNoIdentity
	}
	if err := ValidateCandidate(c, r.owner, r.tasks); err != nil {
		return Task{}, nil, err
	}

	placeholder := Task{
		ID:              localIDPrefix + uuid.NewString(),
		OwnerID:         r.owner,
		Title:           c.Title,
		Date:            c.Date,
		DurationMinutes: c.DurationMinutes,
		TargetInstances: c.TargetInstances,
		CreatedAt:       r.clock.Now(),
	}
	r.tasks = append(r.tasks, placeholder)
	r.invalidate()

	persist := func() Outcome {
		stored, err := r.store.InsertTask(placeholder)
		return func(r *Repo) string {
			i := r.index(placeholder.ID)
			if err != nil {
				r.log.Error("insert task", "title", placeholder.Title, "err", err)
				if i >= 0 {
					r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
				}
				return "could not save task, it has been removed"
			}
			if i >= 0 {
				// Keep local progress made while the insert was in
				// flight; the store entity only differs in identity.
				stored.CompletedInstances = r.tasks[i].CompletedInstances
				stored.Completed = r.tasks[i].Completed
				r.tasks[i] = stored
			}
			if r.onReplace != nil {
				r.onReplace(placeholder.ID, stored.ID)
			}
			return ""
		}
	}
	return placeholder, persist, nil
}

// SetCompleted toggles a task's done flag. Manual toggling does not
// touch CompletedInstances. Persist failures are logged, not rolled
// back; local and remote state may diverge until the next Load.
func (r *Repo) SetCompleted(id string, completed bool) (Persist, error) {
	i := r.index(id)
	if i < 0 {
		return nil, ErrTaskNotFound
	}
	r.tasks[i].Completed = completed
	r.invalidate()

	return func() Outcome {
		err := r.store.UpdateTaskCompleted(id, completed)
		return func(r *Repo) string {
			if err != nil {
				r.log.Error("update task completed", "id", id, "err", err)
			}
			return ""
		}
	}, nil
}

// IncrementInstance bumps a task's completed repetition count. Only
// the count is persisted; marking full completion is the machine's
// call via SetCompleted.
func (r *Repo) IncrementInstance(id string) (Task, Persist, error) {
	i := r.index(id)
	if i < 0 {
		return Task{}, nil, ErrTaskNotFound
	}
	r.tasks[i].CompletedInstances++
	t := r.tasks[i]
	r.invalidate()

	persist := func() Outcome {
		err := r.store.UpdateTaskInstances(id, t.CompletedInstances)
		return func(r *Repo) string {
			if err != nil {
				r.log.Error("update task instances", "id", id, "err", err)
			}
			return ""
		}
	}
	return t, persist, nil
}

// Remove deletes a task optimistically. Store failures are logged only.
func (r *Repo) Remove(id string) (Persist, error) {
	i := r.index(id)
	if i < 0 {
		return nil, ErrTaskNotFound
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	r.invalidate()

	return func() Outcome {
		err := r.store.DeleteTask(id)
		return func(r *Repo) string {
			if err != nil {
				r.log.Error("delete task", "id", id, "err", err)
			}
			return ""
		}
	}, nil
}

// ClearCompleted removes every completed task for the owner. The
// returned count lets the caller show a notice when there was nothing
// to clear (persist is nil in that case).
func (r *Repo) ClearCompleted() (int, Persist, error) {
	if !r.HasIdentity() {
		return 0, nil, ErrNoIdentity
	}
	kept := r.tasks[:0]
	removed := 0
	for _, t := range r.tasks {
		if t.OwnerID == r.owner && t.Completed {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	if removed == 0 {
		return 0, nil, nil
	}
	r.tasks = kept
	r.invalidate()

	owner := r.owner
	return removed, func() Outcome {
		err := r.store.DeleteCompleted(owner)
		return func(r *Repo) string {
			if err != nil {
				r.log.Error("clear completed", "owner", owner, "err", err)
			}
			return ""
		}
	}, nil
}

// ByDate returns the tasks scheduled for d, incomplete first, longer
// focus durations first. The sort is stable for equal keys.
func (r *Repo) ByDate(d Date) []Task {
	var out []Task
	for _, t := range r.tasks {
		if t.Date == d {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Completed != out[j].Completed {
			return !out[i].Completed
		}
		return out[i].DurationMinutes > out[j].DurationMinutes
	})
	return out
}

// DatesWithIncompleteWork returns the distinct dates that still have
// incomplete tasks; the calendar marks those cells.
func (r *Repo) DatesWithIncompleteWork() map[Date]bool {
	dates := make(map[Date]bool)
	for _, t := range r.tasks {
		if !t.Completed {
			dates[t.Date] = true
		}
	}
	return dates
}

// Apply runs a persistence outcome on the update goroutine and returns
// its user-visible error message, if any.
func (r *Repo) Apply(o Outcome) string {
	if o == nil {
		return ""
	}
	msg := o(r)
	r.invalidate()
	return msg
}

func (r *Repo) index(id string) int {
	for i, t := range r.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
