package task

// Filter holds optional filter criteria for listing tasks.
// An empty Priority or PriorityAll matches every task; a nil Completed
// matches both states.
type Filter struct {
	Priority  Priority
	Completed *bool
}

// Matches reports whether t satisfies every criterion in f.
func (f Filter) Matches(t *Task) bool {
	if f.Priority != "" && f.Priority != PriorityAll && t.Priority != f.Priority {
		return false
	}
	if f.Completed != nil && t.Completed != *f.Completed {
		return false
	}
	return true
}

// Apply returns the tasks matching f in their original order.
func (f Filter) Apply(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for i := range tasks {
		if f.Matches(&tasks[i]) {
			out = append(out, tasks[i])
		}
	}
	return out
}
