// Package cli provides the command-line interface for logtally.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/logtally/logtally/internal/cli/commands"
)

// Execute runs the root command and returns the process exit code.
func Execute() int {
	return run(NewRootCommand(), os.Args[1:], os.Stdout, os.Stderr)
}

// run executes a configured root command and maps the outcome to an exit
// code: 0 success, 1 invalid arguments (usage on stdout), 2 runtime error
// (message on stderr).
func run(rootCmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return 0
	}

	if errors.Is(err, commands.ErrUsage) {
		// Print error and usage to stdout (SilenceUsage prevents Cobra from doing this)
		fmt.Fprintf(stdout, "Error: %v\n\n", err)
		fmt.Fprint(stdout, cmd.UsageString())
		return 1
	}

	// Print error to stderr (SilenceErrors prevents Cobra from doing this)
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 2
}

// NewRootCommand creates the root cobra command with all subcommands attached.
// The scan command is the root itself, so `logtally <file>` works directly.
func NewRootCommand() *cobra.Command {
	rootCmd := commands.NewScanCommand()
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	// Flag parse failures are usage errors too
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", commands.ErrUsage, err)
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewPreviewCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
