// Package output provides report construction and formatting for scan results.
package output

import (
	"sort"
	"time"

	"github.com/logtally/logtally/pkg/analyzer"
)

// renderOrder is the fixed ordering for well-known severity levels.
// Levels outside this list render after it, sorted ascending by name.
var renderOrder = []analyzer.Level{
	analyzer.LevelInfo,
	analyzer.LevelWarn,
	analyzer.LevelError,
	analyzer.LevelDebug,
	analyzer.LevelTrace,
	analyzer.LevelFatal,
	analyzer.LevelUnknown,
}

// Report is the complete scan output with everything in rendering order.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary" yaml:"summary"`

	// Levels lists observed severity levels with their counts.
	Levels []LevelCount `json:"levels" yaml:"levels"`

	// Messages is the top-message ranking, most frequent first.
	Messages []analyzer.MessageStat `json:"top_messages" yaml:"top_messages"`

	// Metadata provides context about the scan run.
	Metadata Metadata `json:"metadata" yaml:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// TotalLines is the number of input lines read, blank lines included.
	TotalLines int64 `json:"total_lines" yaml:"total_lines"`

	// DistinctLevels is the number of distinct severity levels observed.
	DistinctLevels int `json:"distinct_levels" yaml:"distinct_levels"`

	// DistinctMessages is the number of distinct non-empty messages observed.
	DistinctMessages int `json:"distinct_messages" yaml:"distinct_messages"`
}

// LevelCount is one severity level with its line count.
type LevelCount struct {
	Level analyzer.Level `json:"level" yaml:"level"`
	Count int64          `json:"count" yaml:"count"`
}

// Metadata provides context about the scan run.
type Metadata struct {
	// Source is the log file that was scanned.
	Source string `json:"source" yaml:"source"`

	// ScannedAt is when the scan completed.
	ScannedAt time.Time `json:"scanned_at" yaml:"scanned_at"`

	// Duration is how long the scan took.
	Duration time.Duration `json:"duration" yaml:"duration"`

	// TopN is the requested ranking size.
	TopN int `json:"top_n" yaml:"top_n"`
}

// NewReport creates a Report from scan statistics.
func NewReport(stats *analyzer.Stats, source string, topN int, elapsed time.Duration) *Report {
	return &Report{
		Summary: Summary{
			TotalLines:       stats.TotalLines,
			DistinctLevels:   stats.DistinctLevels(),
			DistinctMessages: stats.DistinctMessages(),
		},
		Levels:   orderedLevels(stats),
		Messages: stats.TopMessages(topN),
		Metadata: Metadata{
			Source:    source,
			ScannedAt: time.Now(),
			Duration:  elapsed,
			TopN:      topN,
		},
	}
}

// orderedLevels lists observed levels in the fixed well-known order,
// then any remaining levels sorted ascending by name.
func orderedLevels(stats *analyzer.Stats) []LevelCount {
	levels := make([]LevelCount, 0, len(stats.LevelCounts))
	known := make(map[analyzer.Level]bool, len(renderOrder))

	for _, level := range renderOrder {
		known[level] = true
		if count, ok := stats.LevelCounts[level]; ok {
			levels = append(levels, LevelCount{Level: level, Count: count})
		}
	}

	var extra []LevelCount
	for level, count := range stats.LevelCounts {
		if !known[level] {
			extra = append(extra, LevelCount{Level: level, Count: count})
		}
	}
	sort.Slice(extra, func(i, j int) bool {
		return extra[i].Level < extra[j].Level
	})

	return append(levels, extra...)
}
