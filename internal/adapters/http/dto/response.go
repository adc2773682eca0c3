// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/go-task-manager/internal/domain/task"
	"github.com/jsamuelsen11/go-task-manager/internal/ports"
)

// TaskResponse represents a single task in HTTP responses. The shape matches
// the export format.
type TaskResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Priority  string `json:"priority"`
	Completed bool   `json:"completed"`
}

// TaskListResponse represents a list of tasks in HTTP responses.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count"`
}

// ToTaskResponse converts a domain Task to an HTTP response DTO.
func ToTaskResponse(t *task.Task) TaskResponse {
	return TaskResponse{
		ID:        t.ID,
		Title:     t.Title,
		Priority:  t.Priority.String(),
		Completed: t.Completed,
	}
}

// ToTaskListResponse converts a task sequence to a list response. Order is
// preserved and an empty sequence renders as an empty array.
func ToTaskListResponse(tasks []task.Task) TaskListResponse {
	items := make([]TaskResponse, len(tasks))
	for i := range tasks {
		items[i] = ToTaskResponse(&tasks[i])
	}
	return TaskListResponse{
		Tasks: items,
		Count: len(items),
	}
}

// StatisticsResponse represents aggregate task statistics.
type StatisticsResponse struct {
	TotalTasks        int            `json:"totalTasks"`
	CompletedTasks    int            `json:"completedTasks"`
	PendingTasks      int            `json:"pendingTasks"`
	CompletionRate    int            `json:"completionRate"`
	PriorityBreakdown map[string]int `json:"priorityBreakdown"`
}

// ToStatisticsResponse converts domain statistics. Every storable priority
// appears in the breakdown.
func ToStatisticsResponse(s *task.Statistics) StatisticsResponse {
	breakdown := make(map[string]int, len(task.Priorities))
	for _, p := range task.Priorities {
		breakdown[p.String()] = s.PriorityBreakdown[p]
	}
	return StatisticsResponse{
		TotalTasks:        s.TotalTasks,
		CompletedTasks:    s.CompletedTasks,
		PendingTasks:      s.PendingTasks,
		CompletionRate:    s.CompletionRate,
		PriorityBreakdown: breakdown,
	}
}

// ImportResponse reports the tasks an import kept and how many rows it dropped.
type ImportResponse struct {
	Tasks   []TaskResponse `json:"tasks"`
	Count   int            `json:"count"`
	Skipped int            `json:"skipped"`
}

// ToImportResponse converts a ports.ImportResult.
func ToImportResponse(res *ports.ImportResult) ImportResponse {
	list := ToTaskListResponse(res.Tasks)
	return ImportResponse{
		Tasks:   list.Tasks,
		Count:   list.Count,
		Skipped: res.Skipped,
	}
}

// ValidationResponse reports every rule a draft violates.
type ValidationResponse struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// ToValidationResponse converts a task.ValidationResult. Errors is never null.
func ToValidationResponse(res task.ValidationResult) ValidationResponse {
	errs := res.Errors
	if errs == nil {
		errs = []string{}
	}
	return ValidationResponse{
		IsValid: res.IsValid,
		Errors:  errs,
	}
}
