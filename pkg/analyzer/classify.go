package analyzer

import "strings"

// messageSeparator splits the line prefix (timestamp, level, component)
// from the free-text message body.
const messageSeparator = " - "

// ExtractLevel scans the line's whitespace-delimited tokens in order and
// returns the severity of the first token matching a known severity name,
// case-insensitively. WARNING normalizes to WARN. Lines with no matching
// token classify as UNKNOWN.
//
// A severity-like word in free text before the real level field wins the
// scan and misclassifies the line. Use the preview command to check how a
// file classifies.
func ExtractLevel(line string) Level {
	for _, token := range strings.Fields(line) {
		upper := strings.ToUpper(token)
		for _, known := range levelTokens {
			if upper != known {
				continue
			}
			if upper == "WARNING" {
				return LevelWarn
			}
			return Level(upper)
		}
	}
	return LevelUnknown
}

// ExtractMessage returns the line's message body: the text after the first
// " - " separator when present, otherwise the whole line. The result is
// trimmed of surrounding whitespace either way.
func ExtractMessage(line string) string {
	if i := strings.Index(line, messageSeparator); i >= 0 {
		return strings.TrimSpace(line[i+len(messageSeparator):])
	}
	return strings.TrimSpace(line)
}

// Classify extracts the severity level and normalized message of one line.
func Classify(line string) (Level, string) {
	return ExtractLevel(line), ExtractMessage(line)
}
