package service

import (
	"errors"
	"fmt"

	"github.com/aliskhannn/intelligent-quiz/internal/domain/entities"
)

var (
	ErrInvalidTransition = errors.New("invalid quiz session transition")
	ErrSessionComplete   = errors.New("quiz session is complete")
)

// QuizSession is the state machine of a single quiz:
// NotStarted -> Presenting(i) -> Awaiting(i) -> Scored(i) -> Presenting(i+1) ... -> Complete.
type QuizSession struct {
	questions []entities.Question
	validator *AnswerValidator

	state   entities.SessionState
	cursor  int // index of the current question
	correct int // number of correct answers so far
}

// NewQuizSession creates a session over at most entities.MaxQuizQuestions questions.
func NewQuizSession(questions []entities.Question, validator *AnswerValidator) *QuizSession {
	if len(questions) > entities.MaxQuizQuestions {
		questions = questions[:entities.MaxQuizQuestions]
	}

	return &QuizSession{
		questions: questions,
		validator: validator,
		state:     entities.StateNotStarted,
	}
}

// State returns the current state.
func (s *QuizSession) State() entities.SessionState { return s.state }

// Cursor returns the 0-based index of the current question.
func (s *QuizSession) Cursor() int { return s.cursor }

// Total returns the number of questions in the session.
func (s *QuizSession) Total() int { return len(s.questions) }

// Score returns the running score.
func (s *QuizSession) Score() entities.Score {
	return entities.Score{Correct: s.correct, Total: len(s.questions)}
}

// IsComplete reports whether the session reached its terminal state.
func (s *QuizSession) IsComplete() bool { return s.state == entities.StateComplete }

// Start begins the session. A session without questions completes immediately.
func (s *QuizSession) Start() error {
	if err := s.expect(entities.StateNotStarted); err != nil {
		return err
	}

	if len(s.questions) == 0 {
		s.state = entities.StateComplete
		return nil
	}

	s.state = entities.StatePresenting
	return nil
}

// Present returns the current question and waits for an answer.
func (s *QuizSession) Present() (entities.Question, error) {
	if err := s.expect(entities.StatePresenting); err != nil {
		return entities.Question{}, err
	}

	s.state = entities.StateAwaiting
	return s.questions[s.cursor], nil
}

// Submit validates the answer to the current question and updates the score.
// Malformed input is scored as incorrect and never aborts the session.
func (s *QuizSession) Submit(input string) (entities.AnswerResult, error) {
	if err := s.expect(entities.StateAwaiting); err != nil {
		return entities.AnswerResult{}, err
	}

	q := s.questions[s.cursor]
	correct, malformed := s.validator.Validate(q, input)
	if correct {
		s.correct++
	}

	s.state = entities.StateScored
	return entities.AnswerResult{
		QuestionNum:   s.cursor + 1,
		UserAnswer:    input,
		CorrectAnswer: q.Answer,
		IsCorrect:     correct,
		IsMalformed:   malformed,
	}, nil
}

// Advance moves to the next question or completes the session after the last one.
func (s *QuizSession) Advance() error {
	if err := s.expect(entities.StateScored); err != nil {
		return err
	}

	s.cursor++
	if s.cursor >= len(s.questions) {
		s.state = entities.StateComplete
		return nil
	}

	s.state = entities.StatePresenting
	return nil
}

func (s *QuizSession) expect(want entities.SessionState) error {
	if s.state == want {
		return nil
	}
	if s.state == entities.StateComplete {
		return ErrSessionComplete
	}
	return fmt.Errorf("%w: %s, want %s", ErrInvalidTransition, s.state, want)
}
