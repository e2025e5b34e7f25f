package tracking

import (
	"sort"

	"go.uber.org/zap"
)

// Goals reached by the quiz client.
const (
	GoalOpenApp    = "open app"
	GoalStartGame  = "start-game"
	GoalFinishGame = "finish-game"
	GoalConversion = "conversion"
)

// Tracker records analytics goals. Delivery is up to the implementation.
type Tracker interface {
	ReachGoal(goal string, params map[string]string)
	Identify(userID, vkID int)
}

// Log records goals to a zap logger under a sink name.
type Log struct {
	logger *zap.Logger
}

func NewLog(logger *zap.Logger, sink string) *Log {
	return &Log{logger: logger.Named(sink)}
}

func (l *Log) ReachGoal(goal string, params map[string]string) {
	fields := []zap.Field{zap.String("goal", goal)}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, zap.String(k, params[k]))
	}

	l.logger.Info("goal reached", fields...)
}

func (l *Log) Identify(userID, vkID int) {
	l.logger.Info("user identified", zap.Int("user_id", userID), zap.Int("vk_id", vkID))
}

// Multi fans every call out to all trackers.
type Multi []Tracker

func (m Multi) ReachGoal(goal string, params map[string]string) {
	for _, t := range m {
		t.ReachGoal(goal, params)
	}
}

func (m Multi) Identify(userID, vkID int) {
	for _, t := range m {
		t.Identify(userID, vkID)
	}
}

// Nop discards everything.
type Nop struct{}

func (Nop) ReachGoal(string, map[string]string) {}
func (Nop) Identify(int, int)                   {}
