package analyzer

import "testing"

func TestStats_Observe(t *testing.T) {
	s := NewStats()

	s.Observe(LevelInfo, "User login ok")
	s.Observe(LevelInfo, "User login ok")
	s.Observe(LevelError, "TNS no listener")
	s.Observe(LevelUnknown, "")

	if s.TotalLines != 4 {
		t.Errorf("TotalLines = %d, want 4", s.TotalLines)
	}
	if s.LevelCounts[LevelInfo] != 2 {
		t.Errorf("LevelCounts[INFO] = %d, want 2", s.LevelCounts[LevelInfo])
	}
	if s.LevelCounts[LevelUnknown] != 1 {
		t.Errorf("LevelCounts[UNKNOWN] = %d, want 1", s.LevelCounts[LevelUnknown])
	}
	if s.MessageCounts["User login ok"] != 2 {
		t.Errorf("MessageCounts = %d, want 2", s.MessageCounts["User login ok"])
	}
	if _, ok := s.MessageCounts[""]; ok {
		t.Error("empty message must not be recorded")
	}
	if s.DistinctLevels() != 3 {
		t.Errorf("DistinctLevels() = %d, want 3", s.DistinctLevels())
	}
	if s.DistinctMessages() != 2 {
		t.Errorf("DistinctMessages() = %d, want 2", s.DistinctMessages())
	}

	// Level counts partition the total
	var sum int64
	for _, c := range s.LevelCounts {
		sum += c
	}
	if sum != s.TotalLines {
		t.Errorf("level counts sum to %d, want %d", sum, s.TotalLines)
	}
}

func TestStats_TopMessages(t *testing.T) {
	s := NewStats()
	for i := 0; i < 5; i++ {
		s.Observe(LevelInfo, "frequent")
	}
	for i := 0; i < 3; i++ {
		s.Observe(LevelInfo, "beta")
		s.Observe(LevelInfo, "alpha")
	}
	s.Observe(LevelInfo, "rare")

	top := s.TopMessages(3)
	if len(top) != 3 {
		t.Fatalf("TopMessages(3) returned %d entries, want 3", len(top))
	}

	// Count descending, ties broken by message ascending
	want := []MessageStat{
		{Message: "frequent", Count: 5},
		{Message: "alpha", Count: 3},
		{Message: "beta", Count: 3},
	}
	for i := range want {
		if top[i] != want[i] {
			t.Errorf("TopMessages(3)[%d] = %+v, want %+v", i, top[i], want[i])
		}
	}
}

func TestStats_TopMessages_FewerThanRequested(t *testing.T) {
	s := NewStats()
	s.Observe(LevelInfo, "only one")

	top := s.TopMessages(10)
	if len(top) != 1 {
		t.Errorf("TopMessages(10) returned %d entries, want 1", len(top))
	}
}

func TestStats_TopMessages_NonPositive(t *testing.T) {
	s := NewStats()
	s.Observe(LevelInfo, "msg")

	if got := s.TopMessages(0); len(got) != 0 {
		t.Errorf("TopMessages(0) returned %d entries, want 0", len(got))
	}
	if got := s.TopMessages(-1); len(got) != 0 {
		t.Errorf("TopMessages(-1) returned %d entries, want 0", len(got))
	}
}

func TestStats_Empty(t *testing.T) {
	s := NewStats()

	if s.TotalLines != 0 {
		t.Errorf("TotalLines = %d, want 0", s.TotalLines)
	}
	if s.DistinctLevels() != 0 {
		t.Errorf("DistinctLevels() = %d, want 0", s.DistinctLevels())
	}
	if got := s.TopMessages(5); len(got) != 0 {
		t.Errorf("TopMessages(5) returned %d entries, want 0", len(got))
	}
}
