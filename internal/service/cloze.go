package service

import (
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/intelligent-quiz/internal/domain/entities"
)

// UsedEntities is the set of entity texts already turned into cloze questions.
type UsedEntities map[string]struct{}

// Has reports whether text was already used.
func (u UsedEntities) Has(text string) bool {
	_, ok := u[text]
	return ok
}

// clone returns a copy of the set that is safe to modify.
func (u UsedEntities) clone() UsedEntities {
	out := make(UsedEntities, len(u)+1)
	for k := range u {
		out[k] = struct{}{}
	}
	return out
}

// ClozeGenerator turns sentences into fill-in-the-blank questions.
type ClozeGenerator struct {
	logger *zap.Logger
}

// NewClozeGenerator creates a new ClozeGenerator.
func NewClozeGenerator(logger *zap.Logger) *ClozeGenerator {
	return &ClozeGenerator{logger: logger}
}

// Generate creates up to limit cloze questions, never reusing an entity text.
func (g *ClozeGenerator) Generate(sentences []entities.Sentence, ents []entities.Entity, limit int) []entities.Question {
	questions, _ := g.GenerateFrom(sentences, ents, limit, nil)
	return questions
}

// GenerateFrom works like Generate but skips entity texts already present in used.
// It returns the questions and the accumulated set; used itself is left untouched.
func (g *ClozeGenerator) GenerateFrom(
	sentences []entities.Sentence,
	ents []entities.Entity,
	limit int,
	used UsedEntities,
) ([]entities.Question, UsedEntities) {
	if limit <= 0 {
		return nil, used
	}

	questions := make([]entities.Question, 0, limit)
	for _, sentence := range sentences {
		var blanked []entities.Question
		blanked, used = blankSentence(sentence, ents, used, limit-len(questions))
		questions = append(questions, blanked...)

		if len(questions) >= limit {
			break
		}
	}

	g.logger.Debug("cloze questions generated",
		zap.Int("count", len(questions)),
		zap.Int("used_entities", len(used)),
	)

	return questions, used
}

// blankSentence creates at most remaining questions from a single sentence, one per unused entity
// found in it. Only the first occurrence of the entity text is blanked; matching is a literal,
// case-sensitive substring match, so an entity inside a longer token is blanked as well.
func blankSentence(
	sentence entities.Sentence,
	ents []entities.Entity,
	used UsedEntities,
	remaining int,
) ([]entities.Question, UsedEntities) {
	next := used.clone()

	var out []entities.Question
	for _, ent := range ents {
		if len(out) >= remaining {
			break
		}
		if ent.Text == "" || next.Has(ent.Text) || !strings.Contains(sentence, ent.Text) {
			continue
		}

		text := strings.Replace(sentence, ent.Text, entities.BlankMarker, 1)
		out = append(out, entities.NewClozeQuestion(text, ent.Text))
		next[ent.Text] = struct{}{}
	}

	return out, next
}
