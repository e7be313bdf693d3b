package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/n2code/reorganizer"
	"github.com/n2code/reorganizer/internal/config"
	"github.com/n2code/reorganizer/internal/logging"
)

type CliRequest struct {
	config   config.Config
	layout   reorganizer.Layout
	fs       afero.Fs
	stdout   io.Writer
	stderr   io.Writer
	terminal bool //whether stdout is attached to a terminal
}

// executionError marks failures of the reorganization itself as opposed to bad invocations.
type executionError struct {
	error
}

func (e executionError) Unwrap() error {
	return e.error
}

func (rq *CliRequest) newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorganizer",
		Short: "Promote the nested mini app to the project root and archive the rest",
		Long: `Reorganizes the project directory in a single pass:

  1. moves all top-level entries into "` + rq.layout.ArchiveName + `" (version control,
     dependencies, build output and the tooling itself stay in place),
  2. copies the visible contents of "` + rq.layout.SourceName + `" to the root,
     REPLACING same-named entries without backup,
  3. removes "` + rq.layout.SourceName + `",
  4. verifies and reports the result.

Base directory: ` + rq.layout.Base + `

Output can be tuned via environment:
  REORGANIZER_VERBOSITY  default | verbose | quiet
  REORGANIZER_COLOR      auto | always | never
  REORGANIZER_LOG_LEVEL  debug | info | warn | error | none
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rq.execute(); err != nil {
				return executionError{err}
			}
			return nil
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetOut(rq.stdout)
	cmd.SetErr(rq.stderr)
	return cmd
}

// run executes the command line and returns the exit code.
func (rq *CliRequest) run(args []string) (exitCode int) {
	if args == nil {
		args = []string{} //cobra falls back to os.Args otherwise
	}
	cmd := rq.newCommand()
	cmd.SetArgs(args)

	err := cmd.Execute()
	var execErr executionError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &execErr):
		fmt.Fprintf(rq.stderr, "reorganization aborted: %s\n", execErr.error)
		return 1
	default:
		fmt.Fprintf(rq.stderr, "%s\nUsage help: reorganizer -h\n", err)
		return 2
	}
}

func (rq *CliRequest) execute() error {
	logger, err := logging.GetLogger(rq.config.LogLevel, rq.stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	var createConfig reorganizer.CreateConfig
	switch rq.config.Verbosity {
	case config.VerbosityVerbose:
		createConfig.Verbosity = reorganizer.VerboseMode
	case config.VerbosityQuiet:
		createConfig.Verbosity = reorganizer.QuietMode
	}
	createConfig.Colors = rq.config.UseColors(rq.terminal)
	createConfig.Logger = logger
	createConfig.Stdout = rq.stdout
	createConfig.Stderr = rq.stderr

	api, err := reorganizer.New(rq.fs, rq.layout, createConfig)
	if err != nil {
		return err
	}
	_, err = api.Run()
	return err
}
