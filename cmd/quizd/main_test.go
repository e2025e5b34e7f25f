package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-quiz/internal/config"
)

func TestServerConfig_RequiresDecks(t *testing.T) {
	cfg := config.Config{APIURL: "http://quiz.example", LogFile: "quiz.log", QuestionsPerBattle: 5}

	err := serverConfig(cfg).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no decks given")

	cfg.DeckPaths = []string{"decks/"}
	assert.NoError(t, serverConfig(cfg).Validate())
}
