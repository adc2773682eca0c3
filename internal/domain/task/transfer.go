package task

import (
	"encoding/json"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/go-task-manager/internal/domain"
)

// Export renders tasks as a JSON array indented with two spaces. An empty
// sequence renders as "[]".
func Export(tasks []Task) (string, error) {
	b, err := json.MarshalIndent(Clone(tasks), "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeResult is the outcome of decoding an import payload.
type DecodeResult struct {
	Tasks   []Task
	Skipped int
}

// Decode parses an import payload. The payload must be a JSON array or a
// *domain.ImportError is returned. Rows that are not objects, lack a string
// id accepted by ValidID or a non-blank title, carry a priority outside
// High/Medium/Low, carry a non-boolean completed, or repeat an earlier id
// are dropped and counted in Skipped.
func Decode(payload []byte) (DecodeResult, error) {
	var rows []json.RawMessage
	if err := json.Unmarshal(payload, &rows); err != nil {
		return DecodeResult{}, &domain.ImportError{Err: err}
	}
	if rows == nil {
		return DecodeResult{}, &domain.ImportError{Err: errNotArray}
	}

	res := DecodeResult{Tasks: make([]Task, 0, len(rows))}
	seen := make(map[string]struct{}, len(rows))
	for _, raw := range rows {
		t, ok := decodeRow(raw)
		if !ok {
			res.Skipped++
			continue
		}
		if _, dup := seen[t.ID]; dup {
			res.Skipped++
			continue
		}
		seen[t.ID] = struct{}{}
		res.Tasks = append(res.Tasks, t)
	}
	return res, nil
}

var errNotArray = errors.New("payload is not a JSON array")

func decodeRow(raw json.RawMessage) (Task, bool) {
	var row map[string]any
	if err := json.Unmarshal(raw, &row); err != nil || row == nil {
		return Task{}, false
	}

	id, _ := row["id"].(string)
	title, _ := row["title"].(string)
	priority, _ := row["priority"].(string)
	completed, isBool := row["completed"].(bool)

	switch {
	case !ValidID(id),
		strings.TrimSpace(title) == "",
		utf8.RuneCountInString(title) > MaxTitleLength,
		!Priority(priority).IsValid(),
		!isBool:
		return Task{}, false
	}

	return Task{
		ID:        id,
		Title:     title,
		Priority:  Priority(priority),
		Completed: completed,
	}, true
}
