package task

import "math"

// Counts is the completed/pending split of a task sequence.
type Counts struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// Statistics aggregates a task sequence for display.
type Statistics struct {
	TotalTasks        int              `json:"totalTasks"`
	CompletedTasks    int              `json:"completedTasks"`
	PendingTasks      int              `json:"pendingTasks"`
	CompletionRate    int              `json:"completionRate"`
	PriorityBreakdown map[Priority]int `json:"priorityBreakdown"`
}

// Count returns the completed/pending split of tasks.
func Count(tasks []Task) Counts {
	var completed int
	for i := range tasks {
		if tasks[i].Completed {
			completed++
		}
	}
	return Counts{
		Total:     len(tasks),
		Completed: completed,
		Pending:   len(tasks) - completed,
	}
}

// CalculateStatistics summarizes tasks. CompletionRate is the completed
// percentage rounded to the nearest integer, and 0 for an empty sequence.
// PriorityBreakdown always carries all three priorities.
func CalculateStatistics(tasks []Task) Statistics {
	c := Count(tasks)

	breakdown := make(map[Priority]int, len(Priorities))
	for _, p := range Priorities {
		breakdown[p] = 0
	}
	for i := range tasks {
		breakdown[tasks[i].Priority]++
	}

	var rate int
	if c.Total > 0 {
		rate = int(math.Round(float64(c.Completed) / float64(c.Total) * 100))
	}

	return Statistics{
		TotalTasks:        c.Total,
		CompletedTasks:    c.Completed,
		PendingTasks:      c.Pending,
		CompletionRate:    rate,
		PriorityBreakdown: breakdown,
	}
}
