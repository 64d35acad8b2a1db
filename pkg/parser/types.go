// Package parser provides line-oriented log file reading.
package parser

// Line represents a single raw log line with its provenance.
type Line struct {
	// Text is the line content without the trailing newline.
	Text string

	// Source is the file path this line came from.
	Source string

	// Num is the 1-based line number in the source file.
	Num int
}
