package dto_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-task-manager/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-manager/internal/domain"
	"github.com/jsamuelsen11/go-task-manager/internal/domain/task"
)

func boolPtr(b bool) *bool       { return &b }
func stringPtr(s string) *string { return &s }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestCreateTaskRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.CreateTaskRequest
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid request passes",
			req:     dto.CreateTaskRequest{Title: "Write report", Priority: "High"},
			wantErr: false,
		},
		{
			name:    "title of exactly 200 characters passes",
			req:     dto.CreateTaskRequest{Title: strings.Repeat("a", 200), Priority: "Low"},
			wantErr: false,
		},
		{
			name:      "empty title fails",
			req:       dto.CreateTaskRequest{Title: "", Priority: "High"},
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "whitespace title fails",
			req:       dto.CreateTaskRequest{Title: "   ", Priority: "High"},
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "title over 200 characters fails",
			req:       dto.CreateTaskRequest{Title: strings.Repeat("a", 201), Priority: "High"},
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "missing priority fails",
			req:       dto.CreateTaskRequest{Title: "Write report"},
			wantErr:   true,
			wantField: "priority",
		},
		{
			name:      "lowercase priority fails",
			req:       dto.CreateTaskRequest{Title: "Write report", Priority: "high"},
			wantErr:   true,
			wantField: "priority",
		},
		{
			name:      "filter-only priority fails",
			req:       dto.CreateTaskRequest{Title: "Write report", Priority: "All"},
			wantErr:   true,
			wantField: "priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()

			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestCreateTaskRequest_ValidateReportsEveryField(t *testing.T) {
	t.Parallel()

	req := dto.CreateTaskRequest{Title: " ", Priority: "Urgent"}
	err := req.Validate()

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %v", err)
	}
	if len(verr.Fields) != 2 {
		t.Errorf("len(Fields) = %d, want 2: %v", len(verr.Fields), verr.Fields)
	}
}

func TestUpdateTaskRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := dto.UpdateTaskRequest{Title: "Write report", Priority: "Medium", Completed: boolPtr(true)}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	invalid := dto.UpdateTaskRequest{Title: "", Priority: "Medium"}
	requireValidationField(t, invalid.Validate(), "title")
}

func TestUpdateTaskRequest_ToTask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		completed     *bool
		current       bool
		wantCompleted bool
	}{
		{name: "missing completed keeps current true", completed: nil, current: true, wantCompleted: true},
		{name: "missing completed keeps current false", completed: nil, current: false, wantCompleted: false},
		{name: "explicit false overrides", completed: boolPtr(false), current: true, wantCompleted: false},
		{name: "explicit true overrides", completed: boolPtr(true), current: false, wantCompleted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := dto.UpdateTaskRequest{Title: "Call bank", Priority: "Low", Completed: tt.completed}

			got := req.ToTask("7", tt.current)

			want := task.Task{ID: "7", Title: "Call bank", Priority: task.PriorityLow, Completed: tt.wantCompleted}
			if got != want {
				t.Errorf("ToTask() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestValidateTaskRequest_ToDraft(t *testing.T) {
	t.Parallel()

	req := dto.ValidateTaskRequest{
		Title:     stringPtr("Write report"),
		Priority:  stringPtr("High"),
		Completed: json.RawMessage(`"yes"`),
	}

	d := req.ToDraft()

	if d.Title == nil || *d.Title != "Write report" {
		t.Errorf("Title = %v, want %q", d.Title, "Write report")
	}
	if d.Priority == nil || *d.Priority != "High" {
		t.Errorf("Priority = %v, want %q", d.Priority, "High")
	}
	if !d.HasCompleted || d.Completed != "yes" {
		t.Errorf("Completed = %v (present %v), want %q", d.Completed, d.HasCompleted, "yes")
	}
}

func TestValidateTaskRequest_CompletedPresence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		wantPresent bool
		wantValue   any
	}{
		{name: "absent", body: `{"title":"a"}`, wantPresent: false, wantValue: nil},
		{name: "null", body: `{"title":"a","completed":null}`, wantPresent: true, wantValue: nil},
		{name: "bool", body: `{"title":"a","completed":true}`, wantPresent: true, wantValue: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var req dto.ValidateTaskRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			d := req.ToDraft()
			if d.HasCompleted != tt.wantPresent {
				t.Errorf("HasCompleted = %v, want %v", d.HasCompleted, tt.wantPresent)
			}
			if d.Completed != tt.wantValue {
				t.Errorf("Completed = %v, want %v", d.Completed, tt.wantValue)
			}
		})
	}
}
