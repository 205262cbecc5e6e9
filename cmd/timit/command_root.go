package main

import (
	"errors"
	"fmt"

	"github.com/SanjoDeundiak/timit/pkg/lib"
	"github.com/SanjoDeundiak/timit/pkg/lib/runner"
	"github.com/spf13/cobra"
)

// errReported is returned once the failure has already been written to the report.
var errReported = errors.New("observation failed")

type rootOptions struct {
	nanos bool

	stdin  string
	stdout string
	stderr string

	stdinInherit  bool
	stdoutInherit bool
	stderrInherit bool

	logLevel   string
	noColor    bool
	forceColor bool
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "timit [flags] <command> [args...]",
		Short:         "A simple program execution reporter",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("command to execute is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := root.Flags()
	// everything after the command belongs to the command
	flags.SetInterspersed(false)

	flags.BoolVarP(&opts.nanos, "nanos", "n", false, "Display execution time as integer nanos instead of prettified")
	flags.StringVarP(&opts.stdin, "stdin", "i", "", "Set stdin for the spawned process")
	flags.StringVarP(&opts.stdout, "stdout", "o", "", "Set stdout for the spawned process")
	flags.StringVarP(&opts.stderr, "stderr", "e", "", "Set stderr for the spawned process")
	flags.BoolVar(&opts.stdinInherit, "stdin-inherit", false, "Inherit stdin from the current process")
	flags.BoolVar(&opts.stdoutInherit, "stdout-inherit", false, "Inherit stdout from the current process")
	flags.BoolVar(&opts.stderrInherit, "stderr-inherit", false, "Inherit stderr from the current process")
	flags.StringVar(&opts.logLevel, "log-level", envOr(EnvLogLevel, defaultLogLevel), "Diagnostic log level written to stderr (trace, debug, info, warn, error, off)")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.BoolVar(&opts.forceColor, "force-color", false, "Force colored output")

	root.MarkFlagsMutuallyExclusive("stdin", "stdin-inherit")
	root.MarkFlagsMutuallyExclusive("stdout", "stdout-inherit")
	root.MarkFlagsMutuallyExclusive("stderr", "stderr-inherit")
	root.MarkFlagsMutuallyExclusive("no-color", "force-color")

	return root
}

func run(cmd *cobra.Command, opts *rootOptions, args []string) (err error) {
	out := cmd.OutOrStdout()

	logger, err := newLogger(opts.logLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	files, cfg, err := openStdio(opts)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := files.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	command := lib.Command{Command: args[0], Args: args[1:]}
	observer := runner.NewObserver(runner.WithLogger(logger))

	printCommand(out, command)
	_, _ = fmt.Fprintln(out, beginDelimiter)
	outcome, obsErr := observer.Observe(command, cfg)
	_, _ = fmt.Fprintln(out, endDelimiter)

	if obsErr != nil {
		printError(out, obsErr)
		return errReported
	}
	printResults(out, outcome, opts.nanos, colorize(opts.noColor, opts.forceColor, out))
	return nil
}
