package service

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/intelligent-quiz/internal/domain/entities"
)

// yearPattern matches four-digit years of the 20th and 21st centuries.
var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// yearOffsets are the shifts applied to a year to make a false statement.
var yearOffsets = []int{-10, -5, 5, 10}

// TrueFalseGenerator creates true/false questions by shifting years in sentences.
type TrueFalseGenerator struct {
	rng    *rand.Rand
	logger *zap.Logger
}

// NewTrueFalseGenerator creates a new TrueFalseGenerator.
func NewTrueFalseGenerator(rng *rand.Rand, logger *zap.Logger) *TrueFalseGenerator {
	return &TrueFalseGenerator{
		rng:    rng,
		logger: logger,
	}
}

// Generate creates up to limit true/false questions. Sentences without a year are skipped.
// The limit is checked after each sentence.
func (g *TrueFalseGenerator) Generate(sentences []entities.Sentence, limit int) []entities.Question {
	if limit <= 0 {
		return nil
	}

	questions := make([]entities.Question, 0, limit)
	for _, sentence := range sentences {
		if q, ok := g.fromSentence(sentence); ok {
			questions = append(questions, q)
		}
		if len(questions) >= limit {
			break
		}
	}

	g.logger.Debug("true/false questions generated", zap.Int("count", len(questions)))

	return questions
}

// fromSentence builds a question from the first year in sentence.
// A single draw decides both the displayed statement and the expected answer.
func (g *TrueFalseGenerator) fromSentence(sentence entities.Sentence) (entities.Question, bool) {
	year := yearPattern.FindString(sentence)
	if year == "" {
		return entities.Question{}, false
	}

	value, err := strconv.Atoi(year)
	if err != nil {
		return entities.Question{}, false
	}

	offset := yearOffsets[g.rng.Intn(len(yearOffsets))]
	altered := strings.ReplaceAll(sentence, year, strconv.Itoa(value+offset))
	if altered == sentence {
		g.logger.Debug("degenerate year substitution skipped", zap.String("year", year))
		return entities.Question{}, false
	}

	if g.rng.Intn(2) == 0 {
		return entities.NewTrueFalseQuestion(sentence, true), true
	}
	return entities.NewTrueFalseQuestion(altered, false), true
}
