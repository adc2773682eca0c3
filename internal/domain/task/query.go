package task

import (
	"slices"
	"strings"
)

// SortByPriority returns a stably sorted copy of tasks. With ascending false
// the order is High, Medium, Low; ties keep their original relative order.
func SortByPriority(tasks []Task, ascending bool) []Task {
	out := Clone(tasks)
	slices.SortStableFunc(out, func(a, b Task) int {
		if ascending {
			return a.Priority.Weight() - b.Priority.Weight()
		}
		return b.Priority.Weight() - a.Priority.Weight()
	})
	return out
}

// SortByTitle returns a stably sorted copy of tasks ordered by title,
// ignoring case.
func SortByTitle(tasks []Task, ascending bool) []Task {
	out := Clone(tasks)
	slices.SortStableFunc(out, func(a, b Task) int {
		c := strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		if !ascending {
			c = -c
		}
		return c
	})
	return out
}

// Search returns the tasks whose title contains query, ignoring case.
// A blank query returns a copy of every task.
func Search(tasks []Task, query string) []Task {
	if strings.TrimSpace(query) == "" {
		return Clone(tasks)
	}

	q := strings.ToLower(query)
	out := make([]Task, 0, len(tasks))
	for i := range tasks {
		if strings.Contains(strings.ToLower(tasks[i].Title), q) {
			out = append(out, tasks[i])
		}
	}
	return out
}

// Completed returns the completed tasks in their original order.
func Completed(tasks []Task) []Task {
	done := true
	return Filter{Completed: &done}.Apply(tasks)
}

// Pending returns the incomplete tasks in their original order.
func Pending(tasks []Task) []Task {
	done := false
	return Filter{Completed: &done}.Apply(tasks)
}

// IndexOf returns the position of the task with the given id, or -1.
func IndexOf(tasks []Task, id string) int {
	return slices.IndexFunc(tasks, func(t Task) bool { return t.ID == id })
}
