package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/logtally/logtally/pkg/analyzer"
)

// PreviewOptions holds command-line options for the preview command.
type PreviewOptions struct {
	Output     string
	SampleSize int
}

// NewPreviewCommand creates the preview command.
func NewPreviewCommand() *cobra.Command {
	opts := &PreviewOptions{}

	cmd := &cobra.Command{
		Use:   "preview <log-file>",
		Short: "Show how the first lines of a file classify",
		Long: `Classify a sample of lines from the start of a log file and show the
extracted severity level and message for each.

Level extraction is heuristic: the first whitespace-delimited token that
matches a severity name wins, so a severity-like word inside free text is
picked up as the line's level. Preview makes that visible before you rely
on the aggregate numbers.

Example:
  logtally preview app.log
  logtally preview --sample 50 app.log
  logtally preview -o json app.log`,
		Args: exactArgs(1, "expected exactly one log file path"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVarP(&opts.SampleSize, "sample", "n", analyzer.DefaultSampleSize, "Number of lines to sample (at least 1)")

	return cmd
}

func runPreview(cmd *cobra.Command, args []string, opts *PreviewOptions) error {
	logPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.SampleSize < 1 {
		return fmt.Errorf("%w: --sample must be at least 1, got %d", ErrUsage, opts.SampleSize)
	}

	p := analyzer.NewPreviewer(analyzer.WithSampleSize(opts.SampleSize))
	result, err := p.PreviewFile(ctx, logPath)
	if err != nil {
		return err
	}

	switch opts.Output {
	case "json":
		return outputPreviewJSON(result, cmd.OutOrStdout())
	case "text":
		return outputPreviewText(result, logPath, cmd.OutOrStdout())
	default:
		return fmt.Errorf("%w: unknown output format %q (use text or json)", ErrUsage, opts.Output)
	}
}

func outputPreviewText(result *analyzer.PreviewResult, logPath string, w io.Writer) error {
	fmt.Fprintf(w, "Preview of %s\n", logPath)
	fmt.Fprintf(w, "Lines sampled: %d\n", result.SampledLines)
	fmt.Fprintf(w, "Recognized levels: %d/%d (%.0f%%)\n",
		result.RecognizedLines, result.SampledLines, result.Coverage()*100)
	fmt.Fprintln(w)

	if result.SampledLines == 0 {
		fmt.Fprintln(w, "The file is empty.")
		return nil
	}

	for _, s := range result.Samples {
		fmt.Fprintf(w, "%4d  %-7s  %s\n", s.Num, s.Level, s.Message)
	}

	return nil
}

func outputPreviewJSON(result *analyzer.PreviewResult, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
