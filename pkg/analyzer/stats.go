package analyzer

import "sort"

// Stats accumulates aggregate statistics over a single scan pass.
// It is owned by one goroutine and does no locking.
type Stats struct {
	// TotalLines counts every input line, blank lines included.
	TotalLines int64

	// LevelCounts maps each observed severity level to its line count.
	LevelCounts map[Level]int64

	// MessageCounts maps each non-empty normalized message to its count.
	MessageCounts map[string]int64
}

// NewStats returns an empty Stats ready for accumulation.
func NewStats() *Stats {
	return &Stats{
		LevelCounts:   make(map[Level]int64),
		MessageCounts: make(map[string]int64),
	}
}

// Observe folds one classified line into the statistics.
// Empty messages are counted in TotalLines but not in MessageCounts.
func (s *Stats) Observe(level Level, message string) {
	s.TotalLines++
	s.LevelCounts[level]++
	if message != "" {
		s.MessageCounts[message]++
	}
}

// DistinctLevels returns the number of distinct severity levels observed.
func (s *Stats) DistinctLevels() int {
	return len(s.LevelCounts)
}

// DistinctMessages returns the number of distinct non-empty messages observed.
func (s *Stats) DistinctMessages() int {
	return len(s.MessageCounts)
}

// MessageStat is one entry of the top-message ranking.
type MessageStat struct {
	Message string `json:"message" yaml:"message"`
	Count   int64  `json:"count" yaml:"count"`
}

// TopMessages returns up to n messages ordered by count descending,
// ties broken by message ascending in byte order. A non-positive n
// returns an empty ranking.
func (s *Stats) TopMessages(n int) []MessageStat {
	if n <= 0 {
		return nil
	}

	ranked := make([]MessageStat, 0, len(s.MessageCounts))
	for message, count := range s.MessageCounts {
		ranked = append(ranked, MessageStat{Message: message, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Message < ranked[j].Message
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
