// Package commands implements the logtally command set.
package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/logtally/logtally/pkg/analyzer"
	"github.com/logtally/logtally/pkg/output"
	"github.com/logtally/logtally/pkg/parser"
	"github.com/logtally/logtally/pkg/webhook"
)

// DefaultTopN is the ranking size used when --top is not given.
const DefaultTopN = 5

// ScanOptions holds command-line options for the scan command.
type ScanOptions struct {
	TopN    int
	Output  string
	Verbose bool
	Quiet   bool

	// Webhook options
	WebhookURL   string
	WebhookToken string
}

// NewScanCommand creates the scan command, which is also the root command.
func NewScanCommand() *cobra.Command {
	opts := &ScanOptions{}

	cmd := &cobra.Command{
		Use:   "logtally <log-file>",
		Short: "Report aggregate statistics for a log file",
		Long: `logtally reads a log file line by line and reports aggregate statistics:
total line count, per-severity counts, and the most frequent normalized
messages.

Severity is the first whitespace-delimited token that matches TRACE, DEBUG,
INFO, WARN, WARNING, ERROR or FATAL (case-insensitive, WARNING counts as
WARN); lines with no such token count as UNKNOWN. The message is the text
after the first " - " separator, or the whole line when there is none.

Exit codes:
  0 - Success
  1 - Invalid arguments (usage printed to stdout)
  2 - Log file could not be opened, or another runtime error`,
		Args: exactArgs(1, "expected exactly one log file path"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().IntVar(&opts.TopN, "top", DefaultTopN, "Number of top messages to report (at least 1)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json|yaml)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Include scan details in text output")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "One-line summary only")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "POST the JSON report to this endpoint after printing")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")

	return cmd
}

// exactArgs is cobra.ExactArgs with the failure classified as a usage error.
func exactArgs(n int, hint string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s, got %d", ErrUsage, hint, len(args))
		}
		return nil
	}
}

func runScan(cmd *cobra.Command, args []string, opts *ScanOptions) error {
	logPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// All argument validation happens before the file is touched
	if opts.TopN < 1 {
		return fmt.Errorf("%w: --top must be at least 1, got %d", ErrUsage, opts.TopN)
	}

	formatter, err := newFormatter(opts)
	if err != nil {
		return err
	}

	source := parser.NewFileSource(logPath)
	defer source.Close()

	start := time.Now()
	stats, err := analyzer.Scan(ctx, source)
	if err != nil {
		return err
	}

	report := output.NewReport(stats, logPath, opts.TopN, time.Since(start))

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	// Webhook failures are reported but don't fail the scan
	sendWebhook(ctx, opts, report, cmd.ErrOrStderr())

	return nil
}

func newFormatter(opts *ScanOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	}

	switch opts.Output {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	case "yaml":
		return output.NewYAMLFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("%w: unknown output format %q (use text, json or yaml)", ErrUsage, opts.Output)
	}
}

// sendWebhook posts the report when a webhook URL is configured.
func sendWebhook(ctx context.Context, opts *ScanOptions, report *output.Report, stderr io.Writer) {
	if opts.WebhookURL == "" {
		return
	}

	client := webhook.NewClient(opts.WebhookURL, opts.WebhookToken, 0)
	d := client.Send(ctx, report)

	if d.Success() {
		fmt.Fprintf(stderr, "Webhook %s: sent (%d, %s)\n", opts.WebhookURL, d.StatusCode, d.Duration)
	} else {
		fmt.Fprintf(stderr, "Webhook %s: failed (%v)\n", opts.WebhookURL, d.Err)
	}
}
