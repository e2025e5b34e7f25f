package battle

import "errors"

var ErrNoNextQuestion = errors.New("already on the last question")
var ErrEmptyBattle = errors.New("battle has no questions")
var ErrUnknownAction = errors.New("unknown battle action")

// Action is a request to transition the battle state.
type Action interface{ isBattleAction() }

// SetBattle replaces the battle and activates its first question.
type SetBattle struct {
	Battle Battle
}

// UpdateQuestion replaces the question with the same ID.
type UpdateQuestion struct {
	Question Question
}

// GoToNextQuestion activates the question after the active one.
type GoToNextQuestion struct{}

func (SetBattle) isBattleAction()        {}
func (UpdateQuestion) isBattleAction()   {}
func (GoToNextQuestion) isBattleAction() {}

// Reduce applies a to s and returns the next state. It never mutates s or a.
// On error the returned state is s.
func Reduce(s State, a Action) (State, error) {
	switch act := a.(type) {
	case SetBattle:
		if len(act.Battle.Questions) == 0 {
			return s, ErrEmptyBattle
		}
		b := act.Battle.clone()
		first := b.Questions[0].clone()
		return State{
			Battle:          &b,
			ActiveQuestion:  &first,
			HasNextQuestion: len(b.Questions) > 1,
		}, nil

	case UpdateQuestion:
		if s.Battle == nil {
			return s, nil
		}
		idx := s.Battle.indexOf(act.Question.ID)
		if idx < 0 {
			return s, nil
		}
		b := s.Battle.clone()
		b.Questions[idx] = act.Question.clone()

		next := State{Battle: &b, ActiveQuestion: s.ActiveQuestion, HasNextQuestion: s.HasNextQuestion}
		if s.ActiveQuestion != nil && s.ActiveQuestion.ID == act.Question.ID {
			q := act.Question.clone()
			next.ActiveQuestion = &q
		}
		return next, nil

	case GoToNextQuestion:
		if !s.HasNextQuestion || s.Battle == nil {
			return s, ErrNoNextQuestion
		}
		// An active question missing from the sequence restarts at the first one.
		idx := -1
		if s.ActiveQuestion != nil {
			idx = s.Battle.indexOf(s.ActiveQuestion.ID)
		}
		if idx+1 >= len(s.Battle.Questions) {
			return s, ErrNoNextQuestion
		}
		q := s.Battle.Questions[idx+1].clone()
		return State{
			Battle:          s.Battle,
			ActiveQuestion:  &q,
			HasNextQuestion: idx+1 < len(s.Battle.Questions)-1,
		}, nil

	default:
		return s, ErrUnknownAction
	}
}
