package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-task-manager/internal/platform/logging"
)

const (
	envProfile     = "APP_PROFILE"
	defaultProfile = "local"
)

func rootCmd(open opener) *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "taskctl",
		Short: "Manage the task list",
		Long: `taskctl reads the task list from the configured repository, applies one
change, and writes it back.

The repository comes from the same layered configuration as the server
(configs/base.yaml, configs/{profile}.yaml, APP_* variables). --driver and
--file override it for one invocation.`,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if _, err := logging.ParseLevel(opts.logLevel); err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			return nil
		},
	}

	profile := os.Getenv(envProfile)
	if profile == "" {
		profile = defaultProfile
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.profile, "profile", profile, "Config profile (local, dev, qa, prod)")
	flags.StringVar(&opts.configDir, "config-dir", "configs", "Directory holding the YAML config files")
	flags.StringVar(&opts.driver, "driver", "", "Override persistence.driver (memory, file, mysql, remote)")
	flags.StringVar(&opts.file, "file", "", "Override persistence.file.path")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.BoolVar(&opts.json, "json", false, "Print JSON instead of a table")

	// with opens a session, runs fn, and reports a failed save as the
	// command's error.
	with := func(fn func(cmd *cobra.Command, args []string, s *session) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) (err error) {
			s, err := open(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, s.close())
			}()
			return fn(cmd, args, s)
		}
	}

	cmd.AddCommand(
		addCmd(opts, with),
		listCmd(opts, with),
		searchCmd(opts, with),
		editCmd(opts, with),
		doneCmd(opts, with),
		rmCmd(with),
		statsCmd(opts, with),
		exportCmd(with),
		importCmd(opts, with),
		clearCmd(opts, with),
	)
	return cmd
}

type runner = func(fn func(cmd *cobra.Command, args []string, s *session) error) func(*cobra.Command, []string) error
