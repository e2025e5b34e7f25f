package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func q(id int, text string) Question {
	return Question{ID: id, Text: text}
}

func populated(active int, hasNext bool, questions ...Question) State {
	a := questions[active]
	return State{
		Battle:          &Battle{ID: 1, Questions: questions},
		ActiveQuestion:  &a,
		HasNextQuestion: hasNext,
	}
}

func TestReduce_SetBattle(t *testing.T) {
	cases := []struct {
		name      string
		questions []Question
		wantNext  bool
	}{
		{name: "single question", questions: []Question{q(1, "cat")}, wantNext: false},
		{name: "two questions", questions: []Question{q(1, ""), q(2, "")}, wantNext: true},
		{name: "three questions", questions: []Question{q(7, "a"), q(3, "b"), q(9, "c")}, wantNext: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := Battle{ID: 1, Questions: tc.questions}
			got, err := Reduce(State{}, SetBattle{Battle: b})
			require.NoError(t, err)

			assert.Equal(t, &b, got.Battle)
			assert.Equal(t, &tc.questions[0], got.ActiveQuestion)
			assert.Equal(t, tc.wantNext, got.HasNextQuestion)
		})
	}
}

func TestReduce_SetBattleReplacesExisting(t *testing.T) {
	s := populated(1, false, q(1, "cat"), q(2, "dog"))

	got, err := Reduce(s, SetBattle{Battle: Battle{ID: 2, Questions: []Question{q(5, "x"), q(6, "y")}}})
	require.NoError(t, err)

	assert.Equal(t, 2, got.Battle.ID)
	assert.Equal(t, 5, got.ActiveQuestion.ID)
	assert.True(t, got.HasNextQuestion)
}

func TestReduce_SetBattleEmpty(t *testing.T) {
	s := State{}
	got, err := Reduce(s, SetBattle{Battle: Battle{ID: 1}})

	require.ErrorIs(t, err, ErrEmptyBattle)
	assert.Equal(t, s, got)
}

func TestReduce_UpdateQuestion(t *testing.T) {
	s := populated(1, true, q(1, "test"), q(2, "cat"), q(3, "car"))

	got, err := Reduce(s, UpdateQuestion{Question: q(2, "dog")})
	require.NoError(t, err)

	want := State{
		Battle:          &Battle{ID: 1, Questions: []Question{q(1, "test"), q(2, "dog"), q(3, "car")}},
		ActiveQuestion:  &Question{ID: 2, Text: "dog"},
		HasNextQuestion: true,
	}
	assert.Equal(t, want, got)
}

func TestReduce_UpdateQuestionNotActive(t *testing.T) {
	s := populated(0, true, q(1, "test"), q(2, "cat"), q(3, "car"))

	got, err := Reduce(s, UpdateQuestion{Question: q(3, "bus")})
	require.NoError(t, err)

	assert.Equal(t, []Question{q(1, "test"), q(2, "cat"), q(3, "bus")}, got.Battle.Questions)
	assert.Equal(t, &Question{ID: 1, Text: "test"}, got.ActiveQuestion)
	assert.True(t, got.HasNextQuestion)
}

func TestReduce_UpdateQuestionWithAnswer(t *testing.T) {
	s := populated(0, false, Question{ID: 4, Text: "2+2", Options: []string{"3", "4"}})
	confirmed := Question{
		ID:      4,
		Text:    "2+2",
		Options: []string{"3", "4"},
		Answer:  &Answer{Given: "4", Correct: "4", IsCorrect: true, Points: 150},
	}

	got, err := Reduce(s, UpdateQuestion{Question: confirmed})
	require.NoError(t, err)

	assert.Equal(t, confirmed, *got.ActiveQuestion)
	assert.Equal(t, confirmed, got.Battle.Questions[0])
	assert.True(t, got.Finished())
}

func TestReduce_UpdateQuestionUnknownID(t *testing.T) {
	s := populated(0, true, q(1, "cat"), q(2, "dog"))

	got, err := Reduce(s, UpdateQuestion{Question: q(42, "owl")})
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestReduce_UpdateQuestionWithoutBattle(t *testing.T) {
	got, err := Reduce(State{}, UpdateQuestion{Question: q(1, "cat")})
	require.NoError(t, err)
	assert.Equal(t, State{}, got)
}

func TestReduce_UpdateQuestionIdempotent(t *testing.T) {
	s := populated(1, true, q(1, "test"), q(2, "cat"), q(3, "car"))
	action := UpdateQuestion{Question: Question{ID: 2, Text: "dog", Answer: &Answer{Given: "a"}}}

	once, err := Reduce(s, action)
	require.NoError(t, err)
	twice, err := Reduce(once, action)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestReduce_GoToNextQuestion(t *testing.T) {
	cases := []struct {
		name      string
		setup     State
		wantID    int
		wantNext  bool
		questions []Question
	}{
		{
			name:      "moves to the last question",
			setup:     populated(0, true, q(1, "cat"), q(2, "dog")),
			wantID:    2,
			wantNext:  false,
			questions: []Question{q(1, "cat"), q(2, "dog")},
		},
		{
			name:      "moves to a middle question",
			setup:     populated(0, true, q(1, "cat"), q(2, "dog"), q(3, "car")),
			wantID:    2,
			wantNext:  true,
			questions: []Question{q(1, "cat"), q(2, "dog"), q(3, "car")},
		},
		{
			name:      "follows sequence order not ids",
			setup:     populated(1, true, q(9, "a"), q(4, "b"), q(6, "c")),
			wantID:    6,
			wantNext:  false,
			questions: []Question{q(9, "a"), q(4, "b"), q(6, "c")},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Reduce(tc.setup, GoToNextQuestion{})
			require.NoError(t, err)

			assert.Equal(t, tc.wantID, got.ActiveQuestion.ID)
			assert.Equal(t, tc.wantNext, got.HasNextQuestion)
			assert.Equal(t, tc.questions, got.Battle.Questions)
		})
	}
}

func TestReduce_GoToNextQuestionOnLast(t *testing.T) {
	s := populated(1, false, q(1, "cat"), q(2, "dog"))

	got, err := Reduce(s, GoToNextQuestion{})
	require.ErrorIs(t, err, ErrNoNextQuestion)
	assert.Equal(t, s, got)
}

func TestReduce_GoToNextQuestionEmpty(t *testing.T) {
	_, err := Reduce(State{}, GoToNextQuestion{})
	require.ErrorIs(t, err, ErrNoNextQuestion)
}

func TestReduce_WalkThroughBattle(t *testing.T) {
	s, err := Reduce(State{}, SetBattle{Battle: Battle{ID: 1, Questions: []Question{q(1, "cat"), q(2, "dog")}}})
	require.NoError(t, err)
	assert.Equal(t, 1, s.ActiveQuestion.ID)

	s, err = Reduce(s, GoToNextQuestion{})
	require.NoError(t, err)
	assert.Equal(t, &Question{ID: 2, Text: "dog"}, s.ActiveQuestion)
	assert.False(t, s.HasNextQuestion)

	_, err = Reduce(s, GoToNextQuestion{})
	require.ErrorIs(t, err, ErrNoNextQuestion)
	assert.EqualError(t, err, "already on the last question")
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	questions := []Question{
		{ID: 1, Text: "cat", Options: []string{"a", "b"}},
		{ID: 2, Text: "dog", Options: []string{"c", "d"}},
	}
	s, err := Reduce(State{}, SetBattle{Battle: Battle{ID: 1, Questions: questions}})
	require.NoError(t, err)

	// The reducer must have copied the payload.
	questions[0].Text = "changed"
	questions[0].Options[0] = "changed"
	assert.Equal(t, "cat", s.Battle.Questions[0].Text)
	assert.Equal(t, "a", s.ActiveQuestion.Options[0])

	before := populated(0, true, q(1, "cat"), q(2, "dog"))
	snapshot := populated(0, true, q(1, "cat"), q(2, "dog"))

	_, err = Reduce(before, UpdateQuestion{Question: q(1, "owl")})
	require.NoError(t, err)
	_, err = Reduce(before, GoToNextQuestion{})
	require.NoError(t, err)

	assert.Equal(t, snapshot, before)
}

func TestReduce_UnknownAction(t *testing.T) {
	s := populated(0, true, q(1, "cat"), q(2, "dog"))
	got, err := Reduce(s, nil)
	require.ErrorIs(t, err, ErrUnknownAction)
	assert.Equal(t, s, got)
}

func TestState_Progress(t *testing.T) {
	var empty State
	n, total := empty.Progress()
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, total)
	assert.Equal(t, -1, empty.ActiveIndex())

	s := populated(1, true, q(1, "a"), q(2, "b"), q(3, "c"))
	n, total = s.Progress()
	assert.Equal(t, 2, n)
	assert.Equal(t, 3, total)
	assert.False(t, s.Finished())
}
