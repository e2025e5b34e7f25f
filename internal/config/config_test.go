package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestLoadFiles_Defaults(t *testing.T) {
	cfg, err := LoadFiles(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.False(t, cfg.Production)
	assert.True(t, cfg.Offline())
	assert.Equal(t, "bright_light", cfg.Theme)
	assert.True(t, cfg.NotificationsEnabled)
	assert.Equal(t, 20*time.Second, cfg.QuestionTime)
	assert.Equal(t, 5, cfg.QuestionsPerBattle)
	assert.Equal(t, "quiz.log", cfg.LogFile)
	assert.Equal(t, ":8080", cfg.ListenAddr)
}

func TestLoadFiles_Environment(t *testing.T) {
	t.Setenv("QUIZ_API_URL", "http://localhost:9000")
	t.Setenv("QUIZ_DECKS", "decks/a.txt:decks/b.yaml")
	t.Setenv("QUIZ_QUESTION_TIME", "1m30s")
	t.Setenv("QUIZ_PRODUCTION", "true")

	cfg, err := LoadFiles()
	require.NoError(t, err)

	assert.False(t, cfg.Offline())
	assert.Equal(t, []string{"decks/a.txt", "decks/b.yaml"}, cfg.DeckPaths)
	assert.Equal(t, 90*time.Second, cfg.QuestionTime)
	assert.True(t, cfg.Production)
}

func TestLoadFiles_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("QUIZ_QUESTIONS=8\nQUIZ_THEME=space_gray\n"), 0644))
	t.Cleanup(func() {
		os.Unsetenv("QUIZ_QUESTIONS")
		os.Unsetenv("QUIZ_THEME")
	})

	cfg, err := LoadFiles(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.QuestionsPerBattle)
	assert.Equal(t, "space_gray", cfg.Theme)
}

func TestLoadFiles_BadValue(t *testing.T) {
	t.Setenv("QUIZ_QUESTIONS", "many")

	_, err := LoadFiles()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestValidate(t *testing.T) {
	valid := Config{QuestionsPerBattle: 5, DeckPaths: []string{"d.txt"}, LogFile: "quiz.log"}
	require.NoError(t, valid.Validate())

	online := Config{QuestionsPerBattle: 5, APIURL: "https://quiz.example.com", LogFile: "quiz.log"}
	require.NoError(t, online.Validate())

	bad := Config{QuestionTime: -time.Second, APIURL: "not a url"}
	err := bad.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 4)
}
