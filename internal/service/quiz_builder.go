package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"

	"github.com/aliskhannn/intelligent-quiz/internal/domain/entities"
)

// GeneratorLimits bounds the number of questions of each type and of the whole quiz.
type GeneratorLimits struct {
	Cloze        int
	MCQ          int
	TrueFalse    int
	MaxQuestions int
}

// DefaultLimits returns the default quiz composition.
func DefaultLimits() GeneratorLimits {
	return GeneratorLimits{
		Cloze:        10,
		MCQ:          7,
		TrueFalse:    8,
		MaxQuestions: entities.MaxQuizQuestions,
	}
}

// Random streams derived from the quiz seed, one per generator.
const (
	streamShuffle int64 = iota
	streamMCQ
	streamTrueFalse
)

// QuizBuilder analyzes text and assembles a shuffled quiz from all question generators.
type QuizBuilder struct {
	analyzer TextAnalyzer
	limits   GeneratorLimits
	seed     int64
	logger   *zap.Logger
}

// NewQuizBuilder creates a new QuizBuilder. A zero seed picks a time-based one.
func NewQuizBuilder(analyzer TextAnalyzer, limits GeneratorLimits, seed int64, logger *zap.Logger) *QuizBuilder {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if limits.MaxQuestions <= 0 || limits.MaxQuestions > entities.MaxQuizQuestions {
		limits.MaxQuestions = entities.MaxQuizQuestions
	}

	return &QuizBuilder{
		analyzer: analyzer,
		limits:   limits,
		seed:     seed,
		logger:   logger,
	}
}

// Build analyzes text and returns the quiz questions.
// Text without qualifying sentences or entities yields a short or empty quiz, not an error.
func (b *QuizBuilder) Build(ctx context.Context, text string) ([]entities.Question, error) {
	sentences, err := b.analyzer.Segment(text)
	if err != nil {
		return nil, fmt.Errorf("segment text: %w", err)
	}

	ents, err := b.analyzer.ExtractEntities(text)
	if err != nil {
		return nil, fmt.Errorf("extract entities: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(sentences) == 0 || len(ents) == 0 {
		b.logger.Warn("no qualifying content",
			zap.Int("sentences", len(sentences)),
			zap.Int("entities", len(ents)),
		)
	}

	return b.Generate(sentences, ents), nil
}

// Generate runs the generators concurrently, merges their questions, shuffles them
// and keeps at most MaxQuestions. The result depends only on the inputs and the seed.
func (b *QuizBuilder) Generate(sentences []entities.Sentence, ents []entities.Entity) []entities.Question {
	var cloze, mcq, trueFalse []entities.Question

	var wg conc.WaitGroup
	wg.Go(func() {
		cloze = NewClozeGenerator(b.logger).Generate(sentences, ents, b.limits.Cloze)
	})
	wg.Go(func() {
		mcq = NewOptionGenerator(b.newRand(streamMCQ), b.logger).Generate(sentences, ents, b.limits.MCQ)
	})
	wg.Go(func() {
		trueFalse = NewTrueFalseGenerator(b.newRand(streamTrueFalse), b.logger).Generate(sentences, b.limits.TrueFalse)
	})
	wg.Wait()

	questions := make([]entities.Question, 0, len(cloze)+len(mcq)+len(trueFalse))
	questions = append(questions, cloze...)
	questions = append(questions, mcq...)
	questions = append(questions, trueFalse...)

	rng := b.newRand(streamShuffle)
	rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	if len(questions) > b.limits.MaxQuestions {
		questions = questions[:b.limits.MaxQuestions]
	}

	b.logger.Info("quiz generated",
		zap.Int("cloze", len(cloze)),
		zap.Int("mcq", len(mcq)),
		zap.Int("true_false", len(trueFalse)),
		zap.Int("total", len(questions)),
	)

	return questions
}

func (b *QuizBuilder) newRand(stream int64) *rand.Rand {
	return rand.New(rand.NewSource(b.seed + stream))
}
