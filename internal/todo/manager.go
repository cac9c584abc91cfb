// Package todo owns the in-memory task collection: id assignment, state
// changes, filtering, and persisting the whole collection after each change.
package todo

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/josephgoksu/todo/models"
	"github.com/josephgoksu/todo/store"
)

// Manager holds the loaded collection and writes it back through a
// TaskStore after every mutation.
type Manager struct {
	store store.TaskStore
	tasks []models.Task
	loc   *time.Location
}

// Option configures a Manager.
type Option func(*Manager)

// WithLocation sets the zone used to resolve civil date-times.
// The default is time.Local.
func WithLocation(loc *time.Location) Option {
	return func(m *Manager) {
		if loc != nil {
			m.loc = loc
		}
	}
}

// Open loads the collection from s and returns a Manager over it.
func Open(s store.TaskStore, opts ...Option) (*Manager, error) {
	tasks, err := s.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	m := &Manager{
		store: s,
		tasks: tasks,
		loc:   time.Local,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// NextID returns the id the next added task will receive.
func (m *Manager) NextID() int {
	maxID := 0
	for _, t := range m.tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}

// Add appends a new task and saves the collection. When due is set it is
// resolved in the manager's location and must name exactly one instant.
func (m *Manager) Add(text string, priority models.Priority, tags []string, due *CivilTime) (models.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Task{}, ErrEmptyText
	}
	if priority != models.PriorityNone && !priority.Valid() {
		return models.Task{}, fmt.Errorf("%w %q", models.ErrInvalidPriority, priority)
	}

	task := models.Task{
		ID:       m.NextID(),
		Text:     text,
		Priority: priority,
		Tags:     append([]string{}, tags...),
	}
	if due != nil {
		at, err := due.In(m.loc)
		if err != nil {
			return models.Task{}, err
		}
		task.DueDate = &at
	}

	next := append(m.snapshot(), task)
	if err := m.commit(next); err != nil {
		return models.Task{}, err
	}
	slog.Debug("task added", "id", task.ID)
	return task.Clone(), nil
}

// MarkDone sets the task's done flag and saves the collection.
func (m *Manager) MarkDone(id int) (models.Task, error) {
	return m.update(id, func(t *models.Task) { t.Done = true })
}

// Toggle flips the task's done flag and saves the collection.
func (m *Manager) Toggle(id int) (models.Task, error) {
	return m.update(id, func(t *models.Task) { t.Done = !t.Done })
}

// Remove deletes the task, keeping the order of the rest, and saves the
// collection. Ids of other tasks are left untouched.
func (m *Manager) Remove(id int) (models.Task, error) {
	i := m.index(id)
	if i < 0 {
		return models.Task{}, &NotFoundError{ID: id}
	}
	removed := m.tasks[i].Clone()

	next := m.snapshot()
	next = append(next[:i], next[i+1:]...)
	if err := m.commit(next); err != nil {
		return models.Task{}, err
	}
	slog.Debug("task removed", "id", id)
	return removed, nil
}

// Get returns a copy of the task with the given id.
func (m *Manager) Get(id int) (models.Task, error) {
	i := m.index(id)
	if i < 0 {
		return models.Task{}, &NotFoundError{ID: id}
	}
	return m.tasks[i].Clone(), nil
}

// List returns a copy of every task in collection order.
func (m *Manager) List() []models.Task {
	return m.snapshot()
}

// Select returns the tasks matching f in collection order.
func (m *Manager) Select(f Filter) []models.Task {
	out := []models.Task{}
	for _, t := range m.tasks {
		if f.Match(t) {
			out = append(out, t.Clone())
		}
	}
	return out
}

// ResolveFilterDue resolves a --due-before value in the manager's location.
// Skipped or repeated wall-clock times are reported, never replaced by now.
func (m *Manager) ResolveFilterDue(c CivilTime) (time.Time, error) {
	return c.In(m.loc)
}

func (m *Manager) update(id int, mutate func(*models.Task)) (models.Task, error) {
	i := m.index(id)
	if i < 0 {
		return models.Task{}, &NotFoundError{ID: id}
	}

	next := m.snapshot()
	mutate(&next[i])
	if err := m.commit(next); err != nil {
		return models.Task{}, err
	}
	slog.Debug("task updated", "id", id, "done", next[i].Done)
	return next[i].Clone(), nil
}

// commit saves next and only then replaces the in-memory collection, so a
// failed write leaves the manager as it was.
func (m *Manager) commit(next []models.Task) error {
	if err := m.store.Save(next); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	m.tasks = next
	return nil
}

func (m *Manager) snapshot() []models.Task {
	out := make([]models.Task, len(m.tasks))
	for i, t := range m.tasks {
		out[i] = t.Clone()
	}
	return out
}

func (m *Manager) index(id int) int {
	for i, t := range m.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
