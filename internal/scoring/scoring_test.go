package scoring

import (
	"testing"
	"time"

	"go-quiz/internal/battle"
)

// TestJudge checks that answers are scored according to the score table.
func TestJudge(t *testing.T) {
	tests := []struct {
		name        string
		given       string
		secondsLeft int
		timedOut    bool
		wantCorrect bool
		wantPoints  int
	}{
		{"right answer", "Paris", 0, false, true, 100},
		{"right answer with speed bonus", "Paris", 7, false, true, 170},
		{"wrong answer", "Rome", 7, false, false, 0},
		{"timeout", "", 0, true, false, 0},
		{"timeout ignores matching answer", "Paris", 3, true, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Judge(tt.given, "Paris", tt.secondsLeft, tt.timedOut)
			if a.IsCorrect != tt.wantCorrect {
				t.Errorf("IsCorrect = %v, expected %v", a.IsCorrect, tt.wantCorrect)
			}
			if a.Points != tt.wantPoints {
				t.Errorf("Points = %d, expected %d", a.Points, tt.wantPoints)
			}
			if a.Correct != "Paris" {
				t.Errorf("Correct = %q, expected Paris", a.Correct)
			}
			if a.TimedOut != tt.timedOut {
				t.Errorf("TimedOut = %v, expected %v", a.TimedOut, tt.timedOut)
			}
		})
	}
}

// TestSummarize verifies the tally shown on the results screen.
func TestSummarize(t *testing.T) {
	right := Judge("a", "a", 2, false)
	wrong := Judge("b", "a", 2, false)
	late := Judge("", "a", 0, true)

	b := battle.Battle{
		ID: 1,
		Questions: []battle.Question{
			{ID: 1, Answer: &right},
			{ID: 2, Answer: &wrong},
			{ID: 3, Answer: &late},
			{ID: 4},
		},
	}

	s := Summarize(b)
	if s.Total != 4 || s.Correct != 1 || s.Wrong != 1 || s.TimedOut != 1 || s.Unanswered != 1 {
		t.Errorf("unexpected tally: %+v", s)
	}
	if s.Points != 120 {
		t.Errorf("expected 120 points, got %d", s.Points)
	}
	if s.Perfect() {
		t.Error("summary should not be perfect")
	}
}

func TestSummarize_Perfect(t *testing.T) {
	right := Judge("a", "a", 0, false)
	s := Summarize(battle.Battle{Questions: []battle.Question{{ID: 1, Answer: &right}}})
	if !s.Perfect() {
		t.Errorf("expected perfect summary, got %+v", s)
	}
	if (Summary{}).Perfect() {
		t.Error("empty summary should not be perfect")
	}
}

// TestGetNScoreEntries verifies that the scoreboard returns the best entries first.
func TestGetNScoreEntries(t *testing.T) {
	sb := NewScoreboard()
	sb.now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }

	if sb.HighScore() != nil {
		t.Fatal("expected no high score on an empty scoreboard")
	}

	sb.Record("low", 100)
	sb.Record("high", 300)
	sb.Record("mid", 200)

	entries := sb.GetNScoreEntries(5)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	// Expected order: 300 (high), 200 (mid), 100 (low)
	if entries[0].Score != 300 || entries[1].Score != 200 || entries[2].Score != 100 {
		t.Errorf("unexpected order: %+v", entries)
	}
	if entries[0].Timestamp != "2024-01-01T00:00:00Z" {
		t.Errorf("unexpected timestamp %q", entries[0].Timestamp)
	}

	top := sb.GetNScoreEntries(2)
	if len(top) != 2 {
		t.Errorf("expected 2 entries, got %d", len(top))
	}

	if hs := sb.HighScore(); hs == nil || hs.Name != "high" {
		t.Errorf("expected high score entry 'high', got %+v", hs)
	}
}
