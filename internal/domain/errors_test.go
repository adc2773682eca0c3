package domain_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jsamuelsen11/go-task-manager/internal/domain"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Fields: map[string]string{
		"title":    "cannot be empty",
		"priority": "must be High, Medium, or Low",
	}}

	if !errors.Is(err, domain.ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = false, want true")
	}
	want := "validation error: priority: must be High, Medium, or Low; title: cannot be empty"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestNotFoundError(t *testing.T) {
	t.Parallel()

	var err error = &domain.NotFoundError{Resource: "task", ID: "42"}

	if !errors.Is(err, domain.ErrNotFound) {
		t.Error("errors.Is(err, ErrNotFound) = false, want true")
	}
	if err.Error() != `task "42" not found` {
		t.Errorf("Error() = %q, want %q", err.Error(), `task "42" not found`)
	}

	var nf *domain.NotFoundError
	if !errors.As(err, &nf) || nf.ID != "42" {
		t.Errorf("errors.As() = %v, want ID 42", nf)
	}
}

func TestImportError(t *testing.T) {
	t.Parallel()

	var syntaxErr *json.SyntaxError
	parseErr := json.Unmarshal([]byte("{not json"), &struct{}{})
	if !errors.As(parseErr, &syntaxErr) {
		t.Fatalf("json.Unmarshal error = %T, want *json.SyntaxError", parseErr)
	}

	err := &domain.ImportError{Err: parseErr}

	if !errors.Is(err, domain.ErrImport) {
		t.Error("errors.Is(err, ErrImport) = false, want true")
	}
	if !errors.As(err, &syntaxErr) {
		t.Error("errors.As(err, *json.SyntaxError) = false, want true")
	}
	if want := "invalid JSON data for tasks import: " + parseErr.Error(); err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if errors.Is(err, domain.ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = true, want false")
	}
}
