package scoring

import (
	"go-quiz/internal/battle"
)

// Outcome names a scoring event for a single answered question.
type Outcome string

const (
	RightAnswer Outcome = "rightAnswer"
	WrongAnswer Outcome = "wrongAnswer"
	Timeout     Outcome = "timeout"
)

// Points returns the points earned for an outcome. Right answers also earn a
// speed bonus for every second left on the question timer.
func Points(outcome Outcome, secondsLeft int) int {
	points := getScoreTable()[string(outcome)]
	if outcome == RightAnswer && secondsLeft > 0 {
		points += secondsLeft * getScoreTable()["speedBonus"]
	}
	return points
}

// Judge compares a given answer with the correct one and returns the
// confirmed answer metadata.
func Judge(given, correct string, secondsLeft int, timedOut bool) battle.Answer {
	a := battle.Answer{
		Given:    given,
		Correct:  correct,
		TimedOut: timedOut,
	}
	switch {
	case timedOut:
		a.Points = Points(Timeout, 0)
	case given == correct:
		a.IsCorrect = true
		a.Points = Points(RightAnswer, secondsLeft)
	default:
		a.Points = Points(WrongAnswer, 0)
	}
	return a
}

// Summary tallies the answers of a battle for the results screen.
type Summary struct {
	Total      int
	Correct    int
	Wrong      int
	TimedOut   int
	Unanswered int
	Points     int
}

// Summarize counts the confirmed answers of b.
func Summarize(b battle.Battle) Summary {
	s := Summary{Total: len(b.Questions)}
	for _, q := range b.Questions {
		switch {
		case q.Answer == nil:
			s.Unanswered++
			continue
		case q.Answer.TimedOut:
			s.TimedOut++
		case q.Answer.IsCorrect:
			s.Correct++
		default:
			s.Wrong++
		}
		s.Points += q.Answer.Points
	}
	return s
}

// Perfect reports whether every question was answered correctly.
func (s Summary) Perfect() bool {
	return s.Total > 0 && s.Correct == s.Total
}

// getScoreTable returns the predefined values for different scoring events.
func getScoreTable() map[string]int {
	return map[string]int{
		"rightAnswer": 100,
		"wrongAnswer": 0,
		"timeout":     0,
		"speedBonus":  10,
	}
}
