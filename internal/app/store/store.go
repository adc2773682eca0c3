// Package store provides the authoritative in-memory task collection.
//
// A Store owns an ordered task sequence (insertion order, never reordered by
// edits) and notifies subscribers with a full snapshot after every change:
//
//	s := store.New(initial)
//	unsubscribe := s.Subscribe(func(snapshot []task.Task) { ... })
//	defer unsubscribe()
//
//	created, err := s.AddTask("Write report", task.PriorityHigh)
//
// Every mutation is atomic: it is either fully applied or rejected with an
// error and no state change. Snapshots are taken while the lock is held and
// delivered after it is released, in the order the mutations happened, so a
// subscriber may call back into the Store. A mutation made from inside a
// subscriber is delivered once the current delivery finishes.
//
// A snapshot goes to the subscribers registered when its mutation happened
// and still registered when it is delivered. Whichever caller finds the
// delivery queue idle delivers every queued snapshot, including ones queued
// by other goroutines while it runs, so under a steady stream of concurrent
// writes one caller can stay busy delivering for others. If a subscriber
// panics, the panic reaches the mutating caller and the snapshots still
// queued are delivered, in order, ahead of the next mutation's.
package store

import (
	"slices"
	"sync"

	"github.com/jsamuelsen11/go-task-manager/internal/domain"
	"github.com/jsamuelsen11/go-task-manager/internal/domain/task"
	"github.com/jsamuelsen11/go-task-manager/internal/platform/ids"
	"github.com/jsamuelsen11/go-task-manager/internal/ports"
)

const (
	resourceTask = "task"
	msgInvalidID = "is required and must be at most 255 characters"
)

// Subscriber receives a snapshot of the whole task sequence after a change.
// The slice belongs to the subscriber.
type Subscriber func(snapshot []task.Task)

type subscription struct {
	id uint64
	fn Subscriber
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator sets the generator used for new task ids.
// Defaults to random UUIDs.
func WithIDGenerator(gen ports.IDGenerator) Option {
	return func(s *Store) {
		s.ids = gen
	}
}

// Store is the task state container. The zero value is not usable; call New.
type Store struct {
	mu    sync.Mutex
	tasks []task.Task
	ids   ports.IDGenerator

	subs    []subscription
	nextSub uint64

	// pending holds snapshots not yet delivered; draining is true while one
	// goroutine is delivering them.
	pending  []delivery
	draining bool
}

// delivery is a queued snapshot and the subscribers it is addressed to.
type delivery struct {
	snapshot []task.Task
	subs     []subscription
}

// New creates a Store holding a copy of initial. The caller is responsible
// for handing in a sequence that already satisfies the task invariants.
func New(initial []task.Task, opts ...Option) *Store {
	s := &Store{
		tasks: task.Clone(initial),
		ids:   ids.UUID{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn to receive a snapshot after every subsequent change.
// Nothing is delivered at subscribe time. The returned function removes the
// subscription and may be called more than once.
func (s *Store) Subscribe(fn Subscriber) (unsubscribe func()) {
	s.mu.Lock()
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.subs = slices.DeleteFunc(s.subs, func(sub subscription) bool {
				return sub.id == id
			})
		})
	}
}

// AddTask appends a new, incomplete task with a fresh id.
func (s *Store) AddTask(title string, priority task.Priority) (task.Task, error) {
	t := task.Task{Title: title, Priority: priority}
	if err := t.Validate(); err != nil {
		return task.Task{}, err
	}

	err := s.mutate(func() error {
		t.ID = s.newIDLocked()
		s.tasks = append(s.tasks, t)
		return nil
	})
	return t, err
}

// EditTask overwrites every field of the task sharing t.ID, keeping its
// position in the sequence.
func (s *Store) EditTask(t task.Task) (task.Task, error) {
	if err := t.Validate(); err != nil {
		return task.Task{}, err
	}

	err := s.mutate(func() error {
		i := task.IndexOf(s.tasks, t.ID)
		if i < 0 {
			return notFound(t.ID)
		}
		s.tasks[i] = t
		return nil
	})
	if err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// DeleteTask removes the task with the given id.
func (s *Store) DeleteTask(id string) error {
	return s.mutate(func() error {
		i := task.IndexOf(s.tasks, id)
		if i < 0 {
			return notFound(id)
		}
		s.tasks = slices.Delete(s.tasks, i, i+1)
		return nil
	})
}

// ToggleTaskCompletion flips Completed on the task with the given id.
func (s *Store) ToggleTaskCompletion(id string) (task.Task, error) {
	var updated task.Task
	err := s.mutate(func() error {
		i := task.IndexOf(s.tasks, id)
		if i < 0 {
			return notFound(id)
		}
		s.tasks[i].Completed = !s.tasks[i].Completed
		updated = s.tasks[i]
		return nil
	})
	return updated, err
}

// SetTasks replaces the whole sequence. Every task must be valid and ids must
// be unique; otherwise nothing changes.
func (s *Store) SetTasks(tasks []task.Task) error {
	if err := checkSequence(tasks); err != nil {
		return err
	}
	next := task.Clone(tasks)
	return s.mutate(func() error {
		s.tasks = next
		return nil
	})
}

// ImportTasks replaces the sequence with the valid rows of a JSON payload.
// A payload that is not a JSON array yields a *domain.ImportError and leaves
// the store unchanged. Invalid rows are dropped and counted.
func (s *Store) ImportTasks(payload string) (task.DecodeResult, error) {
	res, err := task.Decode([]byte(payload))
	if err != nil {
		return task.DecodeResult{}, err
	}

	next := task.Clone(res.Tasks)
	_ = s.mutate(func() error {
		s.tasks = next
		return nil
	})
	return res, nil
}

// ExportTasks renders the sequence as pretty-printed JSON.
func (s *Store) ExportTasks() (string, error) {
	return task.Export(s.GetAllTasks())
}

// ClearAll removes every task.
func (s *Store) ClearAll() {
	_ = s.mutate(func() error {
		s.tasks = []task.Task{}
		return nil
	})
}

// ClearCompleted removes the completed tasks and returns them.
func (s *Store) ClearCompleted() []task.Task {
	var removed []task.Task
	_ = s.mutate(func() error {
		removed = task.Completed(s.tasks)
		s.tasks = task.Pending(s.tasks)
		return nil
	})
	return removed
}

// MarkAllCompleted sets Completed on every task.
func (s *Store) MarkAllCompleted() {
	s.markAll(true)
}

// MarkAllIncomplete clears Completed on every task.
func (s *Store) MarkAllIncomplete() {
	s.markAll(false)
}

func (s *Store) markAll(completed bool) {
	_ = s.mutate(func() error {
		for i := range s.tasks {
			s.tasks[i].Completed = completed
		}
		return nil
	})
}

// mutate runs fn under the lock. When fn succeeds the resulting state is
// queued as a snapshot and delivered to subscribers before mutate returns,
// unless a delivery is already running, in which case that one delivers it.
func (s *Store) mutate(fn func() error) error {
	s.mu.Lock()
	if err := fn(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.pending = append(s.pending, delivery{
		snapshot: task.Clone(s.tasks),
		subs:     slices.Clone(s.subs),
	})
	s.mu.Unlock()

	s.drain()
	return nil
}

func (s *Store) drain() {
	s.mu.Lock()
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true
	defer func() {
		s.draining = false
		s.mu.Unlock()
	}()

	for len(s.pending) > 0 {
		d := s.pending[0]
		s.pending = s.pending[1:]
		for _, sub := range d.subs {
			if s.subscribedLocked(sub.id) {
				s.callUnlocked(sub.fn, d.snapshot)
			}
		}
	}
}

func (s *Store) subscribedLocked(id uint64) bool {
	return slices.ContainsFunc(s.subs, func(sub subscription) bool {
		return sub.id == id
	})
}

// callUnlocked runs fn with the lock released and takes it back afterwards,
// including when fn panics.
func (s *Store) callUnlocked(fn Subscriber, snapshot []task.Task) {
	s.mu.Unlock()
	defer s.mu.Lock()

	fn(task.Clone(snapshot))
}

// newIDLocked returns an id not used by any stored task.
func (s *Store) newIDLocked() string {
	for {
		id := s.ids.NewID()
		if task.IndexOf(s.tasks, id) < 0 {
			return id
		}
	}
}

func notFound(id string) error {
	return &domain.NotFoundError{Resource: resourceTask, ID: id}
}

// checkSequence verifies the task invariants over a whole sequence.
func checkSequence(tasks []task.Task) error {
	seen := make(map[string]struct{}, len(tasks))
	for i := range tasks {
		if !task.ValidID(tasks[i].ID) {
			return &domain.ValidationError{Fields: map[string]string{"id": msgInvalidID}}
		}
		if err := tasks[i].Validate(); err != nil {
			return err
		}
		if _, dup := seen[tasks[i].ID]; dup {
			return &domain.ValidationError{Fields: map[string]string{"id": "duplicate: " + tasks[i].ID}}
		}
		seen[tasks[i].ID] = struct{}{}
	}
	return nil
}
