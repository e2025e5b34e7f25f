package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLog_ReachGoal(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	tr := NewLog(zap.New(core), "trackers")

	tr.ReachGoal(GoalStartGame, map[string]string{"type": "Animals", "mode": "single"})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "trackers", entry.LoggerName)
	assert.Equal(t, "goal reached", entry.Message)
	assert.Equal(t, map[string]interface{}{
		"goal": "start-game",
		"mode": "single",
		"type": "Animals",
	}, entry.ContextMap())
}

func TestLog_Identify(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	NewLog(zap.New(core), "trackers").Identify(7, 700)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, int64(7), logs.All()[0].ContextMap()["user_id"])
	assert.Equal(t, int64(700), logs.All()[0].ContextMap()["vk_id"])
}

func TestMulti(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)
	m := Multi{NewLog(logger, "a"), Nop{}, NewLog(logger, "b")}

	m.ReachGoal(GoalOpenApp, nil)
	m.Identify(1, 2)

	assert.Equal(t, 4, logs.Len())
	assert.Equal(t, 2, logs.FilterMessage("goal reached").Len())
}
