package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-task-manager/internal/domain/task"
	"github.com/jsamuelsen11/go-task-manager/internal/ports"
)

func addCmd(opts *globalOptions, with runner) *cobra.Command {
	var priority string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: with(func(cmd *cobra.Command, args []string, s *session) error {
			created, err := s.svc.AddTask(cmd.Context(), strings.Join(args, " "), task.Priority(priority))
			if err != nil {
				return err
			}
			return printTask(cmd.OutOrStdout(), opts.json, created)
		}),
	}
	cmd.Flags().StringVarP(&priority, "priority", "p", string(task.PriorityMedium), "High, Medium, or Low")
	return cmd
}

// queryFlags are the list filters shared by list and search.
type queryFlags struct {
	priority  string
	completed bool
	pending   bool
	sort      string
	asc       bool
	desc      bool
}

func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.priority, "priority", "p", "", "Only this priority (High, Medium, Low, All)")
	cmd.Flags().BoolVar(&f.completed, "completed", false, "Only completed tasks")
	cmd.Flags().BoolVar(&f.pending, "pending", false, "Only pending tasks")
	cmd.Flags().StringVar(&f.sort, "sort", "", "Order by priority or title")
	cmd.Flags().BoolVar(&f.asc, "asc", false, "Ascending order")
	cmd.Flags().BoolVar(&f.desc, "desc", false, "Descending order")
	cmd.MarkFlagsMutuallyExclusive("completed", "pending")
	cmd.MarkFlagsMutuallyExclusive("asc", "desc")
}

func (f *queryFlags) query(search string) (ports.TaskQuery, error) {
	q := ports.TaskQuery{Search: search}

	if f.priority != "" {
		p := task.Priority(f.priority)
		if p != task.PriorityAll && !p.IsValid() {
			return q, fmt.Errorf("invalid --priority %q: must be High, Medium, Low, or All", f.priority)
		}
		q.Filter.Priority = p
	}
	switch {
	case f.completed:
		q.Filter.Completed = boolPtr(true)
	case f.pending:
		q.Filter.Completed = boolPtr(false)
	}

	switch sort := ports.SortField(f.sort); sort {
	case ports.SortNone, ports.SortPriority, ports.SortTitle:
		q.Sort = sort
	default:
		return q, fmt.Errorf("invalid --sort %q: must be priority or title", f.sort)
	}
	q.Ascending = f.asc || (!f.desc && q.Sort == ports.SortTitle)
	return q, nil
}

func listCmd(opts *globalOptions, with runner) *cobra.Command {
	var flags queryFlags

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Args:    cobra.NoArgs,
		RunE: with(func(cmd *cobra.Command, _ []string, s *session) error {
			q, err := flags.query("")
			if err != nil {
				return err
			}
			return printTasks(cmd.OutOrStdout(), opts.json, s.svc.ListTasks(cmd.Context(), q))
		}),
	}
	flags.register(cmd)
	return cmd
}

func searchCmd(opts *globalOptions, with runner) *cobra.Command {
	var flags queryFlags

	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "List tasks whose title contains text, ignoring case",
		Args:  cobra.MinimumNArgs(1),
		RunE: with(func(cmd *cobra.Command, args []string, s *session) error {
			q, err := flags.query(strings.Join(args, " "))
			if err != nil {
				return err
			}
			return printTasks(cmd.OutOrStdout(), opts.json, s.svc.ListTasks(cmd.Context(), q))
		}),
	}
	flags.register(cmd)
	return cmd
}

func editCmd(opts *globalOptions, with runner) *cobra.Command {
	var (
		title     string
		priority  string
		completed bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a task's title, priority, or completion",
		Args:  cobra.ExactArgs(1),
		RunE: with(func(cmd *cobra.Command, args []string, s *session) error {
			t, err := s.svc.GetTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("title") {
				t.Title = title
			}
			if cmd.Flags().Changed("priority") {
				t.Priority = task.Priority(priority)
			}
			if cmd.Flags().Changed("completed") {
				t.Completed = completed
			}

			updated, err := s.svc.EditTask(cmd.Context(), t)
			if err != nil {
				return err
			}
			return printTask(cmd.OutOrStdout(), opts.json, updated)
		}),
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "New priority")
	cmd.Flags().BoolVar(&completed, "completed", false, "Completion state")
	return cmd
}

func doneCmd(opts *globalOptions, with runner) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task between pending and completed",
		Args:  cobra.ExactArgs(1),
		RunE: with(func(cmd *cobra.Command, args []string, s *session) error {
			updated, err := s.svc.ToggleTaskCompletion(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printTask(cmd.OutOrStdout(), opts.json, updated)
		}),
	}
}

func rmCmd(with runner) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>...",
		Aliases: []string{"delete"},
		Short:   "Delete tasks",
		Long:    "Delete tasks. Nothing is deleted unless every id exists.",
		Args:    cobra.MinimumNArgs(1),
		RunE: with(func(cmd *cobra.Command, args []string, s *session) error {
			for _, id := range args {
				if _, err := s.svc.GetTask(cmd.Context(), id); err != nil {
					return err
				}
			}
			for _, id := range args {
				if err := s.svc.DeleteTask(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
			}
			return nil
		}),
	}
}

func statsCmd(opts *globalOptions, with runner) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show completion statistics",
		Args:  cobra.NoArgs,
		RunE: with(func(cmd *cobra.Command, _ []string, s *session) error {
			return printStatistics(cmd.OutOrStdout(), opts.json, s.svc.Statistics(cmd.Context()))
		}),
	}
}

func exportCmd(with runner) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every task as JSON",
		Args:  cobra.NoArgs,
		RunE: with(func(cmd *cobra.Command, _ []string, s *session) error {
			doc, err := s.svc.ExportTasks(cmd.Context())
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), doc)
				return err
			}
			return os.WriteFile(output, []byte(doc+"\n"), 0o644)
		}),
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "File to write (default stdout)")
	return cmd
}

func importCmd(opts *globalOptions, with runner) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file|->",
		Short: "Replace every task with the contents of an export file",
		Args:  cobra.ExactArgs(1),
		RunE: with(func(cmd *cobra.Command, args []string, s *session) error {
			payload, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			res, err := s.svc.ImportTasks(cmd.Context(), payload)
			if err != nil {
				return err
			}
			if res.Skipped > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped %d invalid rows\n", res.Skipped)
			}
			return printTasks(cmd.OutOrStdout(), opts.json, res.Tasks)
		}),
	}
}

func clearCmd(opts *globalOptions, with runner) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove completed tasks, or every task with --all",
		Args:  cobra.NoArgs,
		RunE: with(func(cmd *cobra.Command, _ []string, s *session) error {
			if all {
				s.svc.ClearAll(cmd.Context())
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "removed every task")
				return err
			}
			return printTasks(cmd.OutOrStdout(), opts.json, s.svc.ClearCompleted(cmd.Context()))
		}),
	}
	cmd.Flags().BoolVar(&all, "all", false, "Remove every task, not only completed ones")
	return cmd
}

func readInput(stdin io.Reader, name string) (string, error) {
	var (
		b   []byte
		err error
	)
	if name == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(b), nil
}

func boolPtr(b bool) *bool { return &b }
