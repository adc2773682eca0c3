package task

import "fmt"

// Priority ranks how urgent a Task is.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"

	// PriorityAll is a filter value only. It is never stored on a Task.
	PriorityAll Priority = "All"
)

// Priorities lists the storable priorities from most to least urgent.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// IsValid returns true if the priority is one of the storable constants.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Weight returns the sort weight: High=3, Medium=2, Low=1, anything else 0.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (p Priority) String() string {
	return string(p)
}

// ParsePriority converts raw input into a storable Priority. Matching is
// exact, as priorities are part of the exported wire format.
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority %q: %s", s, msgPriority)
	}
	return p, nil
}
