package dto

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/go-task-manager/internal/domain"
	"github.com/jsamuelsen11/go-task-manager/internal/domain/task"
)

const (
	msgRequired = domain.MsgRequired
	msgTooLong  = "must be at most 200 characters"
	msgPriority = "must be High, Medium, or Low"
)

// CreateTaskRequest represents the JSON body for creating a task.
type CreateTaskRequest struct {
	Title    string `json:"title"`
	Priority string `json:"priority"`
}

// Validate checks that the title is present and the priority is storable.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTaskRequest) Validate() error {
	fields := make(map[string]string)

	checkTitle(fields, r.Title)
	if !task.Priority(r.Priority).IsValid() {
		fields["priority"] = msgPriority
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateTaskRequest represents the JSON body for replacing a task.
// A missing completed keeps the current completion state.
type UpdateTaskRequest struct {
	Title     string `json:"title"`
	Priority  string `json:"priority"`
	Completed *bool  `json:"completed,omitempty"`
}

// Validate checks the same rules as CreateTaskRequest.
func (r *UpdateTaskRequest) Validate() error {
	create := CreateTaskRequest{Title: r.Title, Priority: r.Priority}
	return create.Validate()
}

// ToTask builds the replacement task for id. current supplies the
// completion state when the request leaves it out.
func (r *UpdateTaskRequest) ToTask(id string, current bool) task.Task {
	completed := current
	if r.Completed != nil {
		completed = *r.Completed
	}
	return task.Task{
		ID:        id,
		Title:     r.Title,
		Priority:  task.Priority(r.Priority),
		Completed: completed,
	}
}

// ValidateTaskRequest is a form draft to check without saving. Completed is
// kept raw so a non-boolean value, null included, is reported rather than
// rejected or mistaken for an absent key.
type ValidateTaskRequest struct {
	Title     *string         `json:"title"`
	Priority  *string         `json:"priority"`
	Completed json.RawMessage `json:"completed"`
}

// ToDraft converts the request to a task.Draft.
func (r *ValidateTaskRequest) ToDraft() task.Draft {
	d := task.Draft{
		Title:    r.Title,
		Priority: r.Priority,
	}
	if len(r.Completed) > 0 {
		d.HasCompleted = true
		_ = json.Unmarshal(r.Completed, &d.Completed)
	}
	return d
}

func checkTitle(fields map[string]string, title string) {
	switch {
	case strings.TrimSpace(title) == "":
		fields["title"] = msgRequired
	case utf8.RuneCountInString(title) > task.MaxTitleLength:
		fields["title"] = msgTooLong
	}
}
