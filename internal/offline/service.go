package offline

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"go.uber.org/zap"

	"go-quiz/internal/api"
	"go-quiz/internal/battle"
	"go-quiz/internal/deck"
	"go-quiz/internal/scoring"
)

// Options tune the offline backend.
type Options struct {
	PlayerName         string
	QuestionsPerBattle int
	NoShuffle          bool
}

type record struct {
	battle  battle.Battle
	answers []string // correct option per question, by index
	done    bool
}

// Service is an in-memory quiz backend built from loaded decks.
// It is safe for concurrent use.
type Service struct {
	opts       Options
	logger     *zap.Logger
	topics     map[api.GameType][]deck.Card
	scoreboard *scoring.Scoreboard

	mu      sync.Mutex
	user    api.User
	battles map[int]*record
	nextID  int
}

func NewService(cards []deck.Card, opts Options, logger *zap.Logger) (*Service, error) {
	if len(cards) == 0 {
		return nil, fmt.Errorf("no cards found in provided paths")
	}
	if opts.QuestionsPerBattle < 1 {
		opts.QuestionsPerBattle = 1
	}

	topics := make(map[api.GameType][]deck.Card)
	for topic, cs := range deck.GroupByTopic(cards) {
		topics[api.GameType(topic)] = cs
	}

	return &Service{
		opts:       opts,
		logger:     logger.Named("offline"),
		topics:     topics,
		scoreboard: scoring.NewScoreboard(),
		user: api.User{
			ID:                  1,
			VKID:                1,
			Name:                opts.PlayerName,
			NotificationsStatus: api.NotificationsAllow,
		},
		battles: make(map[int]*record),
		nextID:  1,
	}, nil
}

func (s *Service) FetchUser(ctx context.Context) (api.User, error) {
	if err := ctx.Err(); err != nil {
		return api.User{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user, nil
}

func (s *Service) BlockNotifications(ctx context.Context) (api.User, error) {
	if err := ctx.Err(); err != nil {
		return api.User{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.NotificationsStatus = api.NotificationsBlock
	return s.user, nil
}

func (s *Service) GameTypes(ctx context.Context) ([]api.GameType, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	types := make([]api.GameType, 0, len(s.topics))
	for t := range s.topics {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types, nil
}

func (s *Service) StartBattle(ctx context.Context, gameType api.GameType) (battle.Battle, error) {
	if err := ctx.Err(); err != nil {
		return battle.Battle{}, err
	}
	cards, ok := s.topics[gameType]
	if !ok {
		return battle.Battle{}, fmt.Errorf("%w: %q", api.ErrUnknownGameType, gameType)
	}

	picked := make([]deck.Card, len(cards))
	copy(picked, cards)
	if !s.opts.NoShuffle {
		rand.Shuffle(len(picked), func(i, j int) {
			picked[i], picked[j] = picked[j], picked[i]
		})
	}
	if len(picked) > s.opts.QuestionsPerBattle {
		picked = picked[:s.opts.QuestionsPerBattle]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &record{battle: battle.Battle{ID: s.nextID, Type: string(gameType)}}
	s.nextID++
	for i, c := range picked {
		rec.battle.Questions = append(rec.battle.Questions, battle.Question{
			ID:      i + 1,
			Text:    c.Prompt,
			Options: append([]string(nil), c.Options...),
		})
		rec.answers = append(rec.answers, c.Answer)
	}
	s.battles[rec.battle.ID] = rec

	s.logger.Debug("battle started",
		zap.Int("battle_id", rec.battle.ID),
		zap.String("type", string(gameType)),
		zap.Int("questions", len(picked)),
	)
	return copyBattle(rec.battle), nil
}

func (s *Service) GetBattle(ctx context.Context, id int) (battle.Battle, error) {
	if err := ctx.Err(); err != nil {
		return battle.Battle{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.battles[id]
	if !ok {
		return battle.Battle{}, fmt.Errorf("battle %d: %w", id, api.ErrNotFound)
	}
	return copyBattle(rec.battle), nil
}

// Answer confirms an answer. Answering the same question again returns the
// first confirmed result.
func (s *Service) Answer(ctx context.Context, battleID, questionID int, req api.AnswerRequest) (battle.Question, error) {
	if err := ctx.Err(); err != nil {
		return battle.Question{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.battles[battleID]
	if !ok {
		return battle.Question{}, fmt.Errorf("battle %d: %w", battleID, api.ErrNotFound)
	}
	idx := -1
	for i, q := range rec.battle.Questions {
		if q.ID == questionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return battle.Question{}, fmt.Errorf("question %d of battle %d: %w", questionID, battleID, api.ErrNotFound)
	}

	q := &rec.battle.Questions[idx]
	if q.Answer != nil {
		return copyQuestion(*q), nil
	}

	a := scoring.Judge(req.Answer, rec.answers[idx], req.SecondsLeft, req.TimedOut)
	q.Answer = &a
	s.user.Score += a.Points

	s.finishIfComplete(rec)
	return copyQuestion(*q), nil
}

func (s *Service) Scoreboard(ctx context.Context) ([]api.ScoreboardEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.scoreboard.GetNScoreEntries(10), nil
}

func (s *Service) finishIfComplete(rec *record) {
	if rec.done {
		return
	}
	for _, q := range rec.battle.Questions {
		if q.Answer == nil {
			return
		}
	}
	rec.done = true
	summary := scoring.Summarize(rec.battle)
	if best := s.scoreboard.HighScore(); best == nil || summary.Points > best.Score {
		s.logger.Info("new high score", zap.String("player", s.user.Name), zap.Int("points", summary.Points))
	}
	s.scoreboard.Record(s.user.Name, summary.Points)
	s.logger.Info("battle finished",
		zap.Int("battle_id", rec.battle.ID),
		zap.Int("points", summary.Points),
		zap.Int("correct", summary.Correct),
	)
}

func copyBattle(b battle.Battle) battle.Battle {
	c := b
	c.Questions = make([]battle.Question, len(b.Questions))
	for i, q := range b.Questions {
		c.Questions[i] = copyQuestion(q)
	}
	return c
}

func copyQuestion(q battle.Question) battle.Question {
	c := q
	c.Options = append([]string(nil), q.Options...)
	if q.Answer != nil {
		a := *q.Answer
		c.Answer = &a
	}
	return c
}
