package battle

import "slices"

// Answer is the server-confirmed outcome of answering a question.
type Answer struct {
	Given     string `json:"given"`
	Correct   string `json:"correct"`
	IsCorrect bool   `json:"is_correct"`
	Points    int    `json:"points"`
	TimedOut  bool   `json:"timed_out,omitempty"`
}

// Question is a single quiz item. Its ID is unique within a battle.
type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"question"`
	Options []string `json:"options,omitempty"`
	Answer  *Answer  `json:"answer,omitempty"`
}

// Answered reports whether the question carries a confirmed answer.
func (q Question) Answered() bool {
	return q.Answer != nil
}

func (q Question) clone() Question {
	c := q
	c.Options = slices.Clone(q.Options)
	if q.Answer != nil {
		a := *q.Answer
		c.Answer = &a
	}
	return c
}

// Battle is one quiz round: an ordered, fixed-length sequence of questions.
type Battle struct {
	ID        int        `json:"id"`
	Type      string     `json:"type,omitempty"`
	Questions []Question `json:"questions"`
}

func (b Battle) clone() Battle {
	c := b
	if b.Questions != nil {
		c.Questions = make([]Question, len(b.Questions))
		for i, q := range b.Questions {
			c.Questions[i] = q.clone()
		}
	}
	return c
}

func (b Battle) indexOf(id int) int {
	return slices.IndexFunc(b.Questions, func(q Question) bool { return q.ID == id })
}

// State is the reducer state of a battle screen. The zero value is empty.
type State struct {
	Battle          *Battle   `json:"battle"`
	ActiveQuestion  *Question `json:"active_question"`
	HasNextQuestion bool      `json:"has_next_question"`
}

// ActiveIndex returns the position of the active question, or -1.
func (s State) ActiveIndex() int {
	if s.Battle == nil || s.ActiveQuestion == nil {
		return -1
	}
	return s.Battle.indexOf(s.ActiveQuestion.ID)
}

// Progress returns the 1-based number of the active question and the total.
func (s State) Progress() (int, int) {
	if s.Battle == nil {
		return 0, 0
	}
	return s.ActiveIndex() + 1, len(s.Battle.Questions)
}

// Finished reports whether the active question is the last one and has been answered.
func (s State) Finished() bool {
	return s.ActiveQuestion != nil && !s.HasNextQuestion && s.ActiveQuestion.Answered()
}
