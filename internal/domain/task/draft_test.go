package task

import (
	"reflect"
	"strings"
	"testing"
)

func strPtr(v string) *string { return &v }

func TestValidateDraft(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		draft Draft
		want  []string
	}{
		{
			name:  "complete draft is valid",
			draft: Draft{Title: strPtr("Buy milk"), Priority: strPtr("Low"), Completed: false},
			want:  []string{},
		},
		{
			name:  "title only is valid",
			draft: Draft{Title: strPtr("Buy milk")},
			want:  []string{},
		},
		{
			name:  "missing title",
			draft: Draft{},
			want:  []string{MsgTitleRequired},
		},
		{
			name:  "blank title",
			draft: Draft{Title: strPtr("   ")},
			want:  []string{MsgTitleRequired},
		},
		{
			name:  "long title",
			draft: Draft{Title: strPtr(strings.Repeat("x", 201))},
			want:  []string{MsgTitleTooLong},
		},
		{
			name:  "empty priority is treated as absent",
			draft: Draft{Title: strPtr("ok"), Priority: strPtr("")},
			want:  []string{},
		},
		{
			name: "every rule violated",
			draft: Draft{
				Title:     strPtr(strings.Repeat(" ", 201)),
				Priority:  strPtr("Urgent"),
				Completed: "yes",
			},
			want: []string{MsgTitleRequired, MsgTitleTooLong, MsgPriorityInvalid, MsgCompletedNotBool},
		},
		{
			name:  "null completed",
			draft: Draft{Title: strPtr("ok"), HasCompleted: true},
			want:  []string{MsgCompletedNotBool},
		},
		{
			name:  "absent completed",
			draft: Draft{Title: strPtr("ok")},
			want:  []string{},
		},
		{
			name:  "numeric completed",
			draft: Draft{Title: strPtr("ok"), Completed: float64(1)},
			want:  []string{MsgCompletedNotBool},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ValidateDraft(tt.draft)
			if !reflect.DeepEqual(got.Errors, tt.want) {
				t.Errorf("ValidateDraft().Errors = %v, want %v", got.Errors, tt.want)
			}
			if got.IsValid != (len(tt.want) == 0) {
				t.Errorf("ValidateDraft().IsValid = %v, want %v", got.IsValid, len(tt.want) == 0)
			}
		})
	}
}
