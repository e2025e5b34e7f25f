package api

import (
	"context"
	"errors"
	"fmt"

	"go-quiz/internal/battle"
	"go-quiz/internal/scoring"
)

var ErrNotFound = errors.New("not found")
var ErrUnknownGameType = errors.New("unknown game type")

// NotificationsStatus is the user's notification preference on the backend.
type NotificationsStatus string

const (
	NotificationsAllow NotificationsStatus = "allow"
	NotificationsBlock NotificationsStatus = "block"
)

// GameMode selects single or multiplayer play.
type GameMode string

const (
	ModeSingle GameMode = "single"
	ModeMulti  GameMode = "multi"
)

// GameType names a question topic.
type GameType string

type User struct {
	ID                  int                 `json:"id"`
	VKID                int                 `json:"vk_id"`
	Name                string              `json:"name"`
	Score               int                 `json:"score"`
	NotificationsStatus NotificationsStatus `json:"notifications_status"`
}

type ScoreboardEntry = scoring.ScoreboardEntry

// AnswerRequest submits an answer to a question. An empty Answer with
// TimedOut set reports that the question timer expired.
type AnswerRequest struct {
	Answer      string `json:"answer"`
	SecondsLeft int    `json:"seconds_left"`
	TimedOut    bool   `json:"timed_out,omitempty"`
}

// Service is the quiz backend used by the screen controller.
type Service interface {
	FetchUser(ctx context.Context) (User, error)
	BlockNotifications(ctx context.Context) (User, error)
	GameTypes(ctx context.Context) ([]GameType, error)
	StartBattle(ctx context.Context, gameType GameType) (battle.Battle, error)
	GetBattle(ctx context.Context, id int) (battle.Battle, error)
	Answer(ctx context.Context, battleID, questionID int, req AnswerRequest) (battle.Question, error)
	Scoreboard(ctx context.Context) ([]ScoreboardEntry, error)
}

// Error is a failed backend call.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	if e.Status == 404 {
		return ErrNotFound
	}
	return nil
}
