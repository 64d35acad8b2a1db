package output

import (
	"context"
	"fmt"
	"io"
	"time"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "logtally: %d lines, %d levels, %d distinct messages\n",
		report.Summary.TotalLines,
		report.Summary.DistinctLevels,
		report.Summary.DistinctMessages)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	// Header
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary")
	fmt.Fprintln(w, "-------")
	fmt.Fprintf(w, "Total lines: %d\n", report.Summary.TotalLines)
	fmt.Fprintln(w)

	// Levels, well-known order first
	fmt.Fprintln(w, "Log levels:")
	for _, lc := range report.Levels {
		fmt.Fprintf(w, "  %s: %d\n", lc.Level, lc.Count)
	}
	fmt.Fprintln(w)

	// Ranking
	fmt.Fprintln(w, "Top messages:")
	if len(report.Messages) == 0 {
		fmt.Fprintln(w, "  (No messages found)")
	}
	for i, m := range report.Messages {
		fmt.Fprintf(w, "  %d) %s (%d)\n", i+1, m.Message, m.Count)
	}
	fmt.Fprintln(w)

	if f.opts.Verbose {
		fmt.Fprintf(w, "Source: %s\n", report.Metadata.Source)
		fmt.Fprintf(w, "Scanned in: %s\n", report.Metadata.Duration.Round(time.Millisecond))
		fmt.Fprintf(w, "Top messages requested: %d\n", report.Metadata.TopN)
	}

	return nil
}
