package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jsamuelsen11/go-task-manager/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-manager/internal/domain/task"
)

// JSON output uses the same shapes as the HTTP API.

func printTask(w io.Writer, asJSON bool, t task.Task) error {
	if asJSON {
		return writeJSON(w, dto.ToTaskResponse(&t))
	}
	return printTasks(w, false, []task.Task{t})
}

func printTasks(w io.Writer, asJSON bool, tasks []task.Task) error {
	if asJSON {
		return writeJSON(w, dto.ToTaskListResponse(tasks))
	}
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, "no tasks")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDONE\tPRIORITY\tTITLE")
	for i := range tasks {
		done := " "
		if tasks[i].Completed {
			done = "x"
		}
		fmt.Fprintf(tw, "%s\t[%s]\t%s\t%s\n", tasks[i].ID, done, tasks[i].Priority, tasks[i].Title)
	}
	return tw.Flush()
}

func printStatistics(w io.Writer, asJSON bool, s task.Statistics) error {
	resp := dto.ToStatisticsResponse(&s)
	if asJSON {
		return writeJSON(w, resp)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total\t%d\n", resp.TotalTasks)
	fmt.Fprintf(tw, "Completed\t%d\n", resp.CompletedTasks)
	fmt.Fprintf(tw, "Pending\t%d\n", resp.PendingTasks)
	fmt.Fprintf(tw, "Completion rate\t%d%%\n", resp.CompletionRate)
	for _, p := range task.Priorities {
		fmt.Fprintf(tw, "%s\t%d\n", p, resp.PriorityBreakdown[p.String()])
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
