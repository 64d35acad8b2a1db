// Package analyzer provides log line classification and aggregate statistics.
package analyzer

// Level is the coarse severity classification of a single log line.
type Level string

const (
	LevelTrace Level = "TRACE"
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
	LevelFatal Level = "FATAL"

	// LevelUnknown is assigned to lines with no recognized severity token.
	LevelUnknown Level = "UNKNOWN"
)

// levelTokens are the severity tokens recognized during extraction.
// WARNING is an accepted alias that normalizes to WARN.
var levelTokens = []string{"TRACE", "DEBUG", "INFO", "WARN", "WARNING", "ERROR", "FATAL"}
