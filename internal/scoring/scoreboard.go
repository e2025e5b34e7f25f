package scoring

import (
	"sort"
	"sync"
	"time"
)

// ScoreboardEntry is a single finished battle on the scoreboard.
type ScoreboardEntry struct {
	Name      string `json:"name"`
	Score     int    `json:"score"`
	Timestamp string `json:"timestamp"`
}

// Scoreboard keeps the finished battles of a backend process.
// It is safe for concurrent use.
type Scoreboard struct {
	mu      sync.Mutex
	entries []ScoreboardEntry
	now     func() time.Time
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{now: time.Now}
}

// Record adds a finished battle.
func (sb *Scoreboard) Record(name string, score int) ScoreboardEntry {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	entry := ScoreboardEntry{
		Name:      name,
		Score:     score,
		Timestamp: sb.now().Format(time.RFC3339),
	}
	sb.entries = append(sb.entries, entry)
	return entry
}

// GetNScoreEntries returns the top N entries sorted by score.
func (sb *Scoreboard) GetNScoreEntries(n int) []ScoreboardEntry {
	sb.mu.Lock()
	// Make a copy to avoid modifying the original slice.
	entriesCopy := make([]ScoreboardEntry, len(sb.entries))
	copy(entriesCopy, sb.entries)
	sb.mu.Unlock()

	sort.SliceStable(entriesCopy, func(i, j int) bool {
		return entriesCopy[i].Score > entriesCopy[j].Score
	})

	if len(entriesCopy) < n {
		return entriesCopy
	}
	return entriesCopy[:n]
}

// HighScore returns the best entry, or nil when nothing was recorded.
func (sb *Scoreboard) HighScore() *ScoreboardEntry {
	top := sb.GetNScoreEntries(1)
	if len(top) == 0 {
		return nil
	}
	return &top[0]
}
