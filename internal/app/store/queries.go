package store

import "github.com/jsamuelsen11/go-task-manager/internal/domain/task"

// read runs fn over the current sequence under the lock. fn must not retain
// the slice or call back into the Store.
func read[T any](s *Store, fn func(tasks []task.Task) T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.tasks)
}

// GetTask returns a copy of the task with the given id.
func (s *Store) GetTask(id string) (task.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := task.IndexOf(s.tasks, id)
	if i < 0 {
		return task.Task{}, false
	}
	return s.tasks[i], true
}

// GetAllTasks returns a copy of the whole sequence.
func (s *Store) GetAllTasks() []task.Task {
	return read(s, task.Clone)
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	return read(s, func(tasks []task.Task) int { return len(tasks) })
}

// GetFilteredTasks returns the tasks matching f in insertion order.
func (s *Store) GetFilteredTasks(f task.Filter) []task.Task {
	return read(s, f.Apply)
}

// TasksByPriority returns the tasks with exactly priority p.
func (s *Store) TasksByPriority(p task.Priority) []task.Task {
	return s.GetFilteredTasks(task.Filter{Priority: p})
}

// CompletedTasks returns the completed tasks in insertion order.
func (s *Store) CompletedTasks() []task.Task {
	return read(s, task.Completed)
}

// PendingTasks returns the incomplete tasks in insertion order.
func (s *Store) PendingTasks() []task.Task {
	return read(s, task.Pending)
}

// Counts returns the total/completed/pending split.
func (s *Store) Counts() task.Counts {
	return read(s, task.Count)
}

// GetStatistics returns aggregate statistics over every task.
func (s *Store) GetStatistics() task.Statistics {
	return read(s, task.CalculateStatistics)
}

// SortTasksByPriority returns a copy sorted by priority weight. With
// ascending false the order is High, Medium, Low. Ties keep insertion order.
func (s *Store) SortTasksByPriority(ascending bool) []task.Task {
	return read(s, func(tasks []task.Task) []task.Task {
		return task.SortByPriority(tasks, ascending)
	})
}

// SortTasksByTitle returns a copy sorted by title, ignoring case.
func (s *Store) SortTasksByTitle(ascending bool) []task.Task {
	return read(s, func(tasks []task.Task) []task.Task {
		return task.SortByTitle(tasks, ascending)
	})
}

// SearchTasks returns the tasks whose title contains query, ignoring case.
// A blank query returns every task.
func (s *Store) SearchTasks(query string) []task.Task {
	return read(s, func(tasks []task.Task) []task.Task {
		return task.Search(tasks, query)
	})
}

// ValidateTask checks a draft against the task rules. It reads no state.
func (s *Store) ValidateTask(d task.Draft) task.ValidationResult {
	return task.ValidateDraft(d)
}
