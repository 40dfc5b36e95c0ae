package service

import (
	"context"

	"github.com/aliskhannn/intelligent-quiz/internal/domain/entities"
)

// TextAnalyzer segments raw text into sentences and recognizes named entities in it.
type TextAnalyzer interface {
	Segment(text string) ([]entities.Sentence, error)
	ExtractEntities(text string) ([]entities.Entity, error)
}

// QuizIO is the boundary between the quiz session and the quiz-taker.
type QuizIO interface {
	ShowIntro(total int) error
	ShowQuestion(num, total int, q entities.Question) error
	ReadAnswer(ctx context.Context) (string, error)
	ShowResult(q entities.Question, result entities.AnswerResult) error
	ShowScore(score entities.Score) error
}
