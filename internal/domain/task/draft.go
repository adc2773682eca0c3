package task

import (
	"strings"
	"unicode/utf8"
)

// Messages reported by ValidateDraft.
const (
	MsgTitleRequired    = "Title is required"
	MsgTitleTooLong     = "Title must be less than 200 characters"
	MsgPriorityInvalid  = "Priority must be High, Medium, or Low"
	MsgCompletedNotBool = "Completed status must be a boolean"
)

// Draft is a partially filled task as submitted by a form or API client.
// Nil fields are absent. Completed stays untyped so that a non-boolean value
// can be reported instead of rejected at decode time; HasCompleted marks a
// completed key that was present, so an explicit null is reported too.
type Draft struct {
	Title        *string
	Priority     *string
	Completed    any
	HasCompleted bool
}

// ValidationResult lists every rule a Draft violates.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// ValidateDraft checks d against the task rules without touching any state.
// Every violated rule is reported, in a fixed order.
func ValidateDraft(d Draft) ValidationResult {
	errs := make([]string, 0, 4)

	if d.Title == nil || strings.TrimSpace(*d.Title) == "" {
		errs = append(errs, MsgTitleRequired)
	}
	if d.Title != nil && utf8.RuneCountInString(*d.Title) > MaxTitleLength {
		errs = append(errs, MsgTitleTooLong)
	}
	if d.Priority != nil && *d.Priority != "" && !Priority(*d.Priority).IsValid() {
		errs = append(errs, MsgPriorityInvalid)
	}
	if d.HasCompleted || d.Completed != nil {
		if _, ok := d.Completed.(bool); !ok {
			errs = append(errs, MsgCompletedNotBool)
		}
	}

	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
