package analyzer

import (
	"context"
	"io"

	"github.com/logtally/logtally/pkg/parser"
)

// DefaultSampleSize is the number of lines a Previewer samples by default.
const DefaultSampleSize = 20

// Sample is one previewed line with its classification.
type Sample struct {
	Num     int    `json:"line" yaml:"line"`
	Text    string `json:"text" yaml:"text"`
	Level   Level  `json:"level" yaml:"level"`
	Message string `json:"message" yaml:"message"`
}

// PreviewResult reports how the classifier reads a sample of a file.
type PreviewResult struct {
	// Samples holds the classified lines in input order.
	Samples []Sample `json:"samples" yaml:"samples"`

	// SampledLines is the number of lines sampled.
	SampledLines int `json:"sampled_lines" yaml:"sampled_lines"`

	// RecognizedLines is the number of sampled lines with a known level.
	RecognizedLines int `json:"recognized_lines" yaml:"recognized_lines"`
}

// Coverage returns the fraction of sampled lines with a recognized level.
func (r *PreviewResult) Coverage() float64 {
	if r.SampledLines == 0 {
		return 0
	}
	return float64(r.RecognizedLines) / float64(r.SampledLines)
}

// Previewer classifies a small sample of a log file so the extraction
// heuristics can be checked before trusting aggregate numbers.
type Previewer struct {
	sampleSize int
}

// Option configures the Previewer.
type Option func(*Previewer)

// WithSampleSize sets the number of lines to sample (default 20).
func WithSampleSize(n int) Option {
	return func(p *Previewer) {
		if n > 0 {
			p.sampleSize = n
		}
	}
}

// NewPreviewer creates a Previewer with default settings.
func NewPreviewer(opts ...Option) *Previewer {
	p := &Previewer{
		sampleSize: DefaultSampleSize,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PreviewFile classifies up to the sample size of lines from the start
// of the given file.
func (p *Previewer) PreviewFile(ctx context.Context, path string) (*PreviewResult, error) {
	source := parser.NewFileSource(path)
	defer source.Close()

	var lines []string
	for len(lines) < p.sampleSize {
		line, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		lines = append(lines, line.Text)
	}

	return p.PreviewLines(lines), nil
}

// PreviewLines classifies the given lines.
func (p *Previewer) PreviewLines(lines []string) *PreviewResult {
	result := &PreviewResult{
		Samples:      make([]Sample, 0, len(lines)),
		SampledLines: len(lines),
	}

	for i, line := range lines {
		level, message := Classify(line)
		if level != LevelUnknown {
			result.RecognizedLines++
		}
		result.Samples = append(result.Samples, Sample{
			Num:     i + 1,
			Text:    line,
			Level:   level,
			Message: message,
		})
	}

	return result
}
