package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/intelligent-quiz/internal/domain/entities"
)

func TestQuizSession_Transitions(t *testing.T) {
	t.Parallel()

	questions := []entities.Question{
		entities.NewClozeQuestion("The Eiffel Tower is located in ______.", "Paris"),
		entities.NewTrueFalseQuestion(eiffelSentence, true),
	}
	s := NewQuizSession(questions, NewAnswerValidator(ExactMatch))
	assert.Equal(t, entities.StateNotStarted, s.State())

	require.NoError(t, s.Start())
	assert.Equal(t, entities.StatePresenting, s.State())

	q, err := s.Present()
	require.NoError(t, err)
	assert.Equal(t, questions[0], q)
	assert.Equal(t, entities.StateAwaiting, s.State())

	result, err := s.Submit(" paris ")
	require.NoError(t, err)
	assert.True(t, result.IsCorrect)
	assert.Equal(t, 1, result.QuestionNum)
	assert.Equal(t, "Paris", result.CorrectAnswer)
	assert.Equal(t, entities.StateScored, s.State())

	require.NoError(t, s.Advance())
	assert.Equal(t, entities.StatePresenting, s.State())
	assert.Equal(t, 1, s.Cursor())

	_, err = s.Present()
	require.NoError(t, err)
	result, err = s.Submit("false")
	require.NoError(t, err)
	assert.False(t, result.IsCorrect)

	require.NoError(t, s.Advance())
	assert.True(t, s.IsComplete())
	assert.Equal(t, entities.Score{Correct: 1, Total: 2}, s.Score())
}

func TestQuizSession_RejectsInvalidTransitions(t *testing.T) {
	t.Parallel()

	s := NewQuizSession([]entities.Question{entities.NewClozeQuestion("______ is big.", "Paris")}, NewAnswerValidator(ExactMatch))

	_, err := s.Present()
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = s.Submit("Paris")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	assert.ErrorIs(t, s.Advance(), ErrInvalidTransition)

	require.NoError(t, s.Start())
	assert.ErrorIs(t, s.Start(), ErrInvalidTransition)

	_, err = s.Present()
	require.NoError(t, err)
	_, err = s.Present()
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = s.Submit("Paris")
	require.NoError(t, err)
	require.NoError(t, s.Advance())

	_, err = s.Present()
	assert.ErrorIs(t, err, ErrSessionComplete)
}

func TestQuizSession_MalformedChoiceScoredIncorrect(t *testing.T) {
	t.Parallel()

	mcq := entities.NewMCQuestion(eiffelSentence, []string{"Paris", "Berlin"}, "Paris")
	s := NewQuizSession([]entities.Question{mcq}, NewAnswerValidator(ExactMatch))

	require.NoError(t, s.Start())
	_, err := s.Present()
	require.NoError(t, err)

	result, err := s.Submit("9")
	require.NoError(t, err)
	assert.False(t, result.IsCorrect)
	assert.True(t, result.IsMalformed)

	require.NoError(t, s.Advance())
	assert.Equal(t, entities.Score{Correct: 0, Total: 1}, s.Score())
}

func TestQuizSession_EmptyCompletesOnStart(t *testing.T) {
	t.Parallel()

	s := NewQuizSession(nil, NewAnswerValidator(ExactMatch))
	require.NoError(t, s.Start())

	assert.True(t, s.IsComplete())
	assert.Equal(t, entities.Score{}, s.Score())
}

func TestQuizSession_CapsQuestionCount(t *testing.T) {
	t.Parallel()

	questions := make([]entities.Question, entities.MaxQuizQuestions+5)
	for i := range questions {
		questions[i] = entities.NewTrueFalseQuestion(eiffelSentence, true)
	}

	s := NewQuizSession(questions, NewAnswerValidator(ExactMatch))
	assert.Equal(t, entities.MaxQuizQuestions, s.Total())
}
