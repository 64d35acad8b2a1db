package analyzer

import (
	"context"
	"io"

	"github.com/logtally/logtally/pkg/parser"
)

// Scan drains the source, classifying every line and folding it into a
// fresh Stats. The pass is single-threaded and runs to completion unless
// the context is cancelled or the source fails.
func Scan(ctx context.Context, source parser.LineSource) (*Stats, error) {
	stats := NewStats()

	for {
		line, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		level, message := Classify(line.Text)
		stats.Observe(level, message)
	}

	return stats, nil
}
