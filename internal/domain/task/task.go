// Package task holds the Task entity and the pure functions that filter,
// sort, search, validate, summarize, and decode task sequences. Nothing in
// this package owns state; the store in internal/app/store does.
package task

import (
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/go-task-manager/internal/domain"
)

// MaxTitleLength is the longest title, in characters, a Task may carry.
const MaxTitleLength = 200

// MaxIDLength is the longest id, in characters, a stored Task may carry.
// Repositories size their key columns to it.
const MaxIDLength = 255

const (
	msgTitleEmpty   = "cannot be empty"
	msgTitleTooLong = "must be at most 200 characters"
	msgPriority     = "must be High, Medium, or Low"
)

// Task is a single to-do item. The JSON shape is the export format.
type Task struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Priority  Priority `json:"priority"`
	Completed bool     `json:"completed"`
}

// Validate checks business rules for the Task entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass. The ID is not checked; the
// store assigns it.
func (t *Task) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = msgTitleEmpty
	} else if utf8.RuneCountInString(t.Title) > MaxTitleLength {
		fields["title"] = msgTitleTooLong
	}
	if !t.Priority.IsValid() {
		fields["priority"] = msgPriority
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Clone returns a copy of tasks that shares no backing array with the input.
// A nil input yields an empty, non-nil slice.
func Clone(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}

// ValidID reports whether id is non-empty and at most MaxIDLength characters.
// Ids are compared byte for byte; "a" and "A" are different tasks.
func ValidID(id string) bool {
	return id != "" && utf8.RuneCountInString(id) <= MaxIDLength
}

// Sanitize returns the tasks of in that have a valid id, pass Validate, and
// do not repeat an earlier id, along with how many were dropped. Order is
// kept.
func Sanitize(in []Task) (valid []Task, dropped int) {
	valid = make([]Task, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for i := range in {
		if !ValidID(in[i].ID) || in[i].Validate() != nil {
			dropped++
			continue
		}
		if _, dup := seen[in[i].ID]; dup {
			dropped++
			continue
		}
		seen[in[i].ID] = struct{}{}
		valid = append(valid, in[i])
	}
	return valid, dropped
}
