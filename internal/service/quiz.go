package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/intelligent-quiz/internal/domain/entities"
)

// QuizRunner drives a quiz session against a QuizIO.
type QuizRunner struct {
	io        QuizIO
	validator *AnswerValidator
	logger    *zap.Logger
}

// NewQuizRunner creates a new QuizRunner.
func NewQuizRunner(io QuizIO, validator *AnswerValidator, logger *zap.Logger) *QuizRunner {
	return &QuizRunner{
		io:        io,
		validator: validator,
		logger:    logger,
	}
}

// Run asks every question in order and returns the final score.
// A failed read counts as an empty answer for that question; only context
// cancellation or a failed write stops the quiz early.
func (r *QuizRunner) Run(ctx context.Context, questions []entities.Question) (entities.Score, error) {
	session := NewQuizSession(questions, r.validator)
	if err := session.Start(); err != nil {
		return session.Score(), err
	}

	if err := r.io.ShowIntro(session.Total()); err != nil {
		return session.Score(), fmt.Errorf("show intro: %w", err)
	}

	for !session.IsComplete() {
		if err := ctx.Err(); err != nil {
			return session.Score(), err
		}

		if err := r.askQuestion(ctx, session); err != nil {
			return session.Score(), err
		}
	}

	score := session.Score()
	r.logger.Info("quiz completed",
		zap.Int("correct", score.Correct),
		zap.Int("total", score.Total),
	)

	if err := r.io.ShowScore(score); err != nil {
		return score, fmt.Errorf("show score: %w", err)
	}

	return score, nil
}

// askQuestion runs one Presenting -> Awaiting -> Scored -> next cycle.
func (r *QuizRunner) askQuestion(ctx context.Context, session *QuizSession) error {
	q, err := session.Present()
	if err != nil {
		return err
	}

	num := session.Cursor() + 1
	if err := r.io.ShowQuestion(num, session.Total(), q); err != nil {
		return fmt.Errorf("show question %d: %w", num, err)
	}

	input, err := r.io.ReadAnswer(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		r.logger.Warn("failed to read answer",
			zap.Int("question_num", num),
			zap.Error(err),
		)
		input = ""
	}

	result, err := session.Submit(input)
	if err != nil {
		return err
	}

	r.logger.Debug("answer scored",
		zap.Int("question_num", num),
		zap.String("question_type", string(q.Type)),
		zap.Bool("is_correct", result.IsCorrect),
		zap.Bool("is_malformed", result.IsMalformed),
	)

	if err := r.io.ShowResult(q, result); err != nil {
		return fmt.Errorf("show result %d: %w", num, err)
	}

	return session.Advance()
}
