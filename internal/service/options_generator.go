package service

import (
	"math/rand"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/intelligent-quiz/internal/domain/entities"
)

// maxDistractors is the number of wrong options offered next to the correct one.
const maxDistractors = 3

// OptionGenerator generates multiple choice questions whose distractors share the entity label.
type OptionGenerator struct {
	rng    *rand.Rand
	logger *zap.Logger
}

// NewOptionGenerator creates a new option generator.
func NewOptionGenerator(rng *rand.Rand, logger *zap.Logger) *OptionGenerator {
	return &OptionGenerator{
		rng:    rng,
		logger: logger,
	}
}

// Generate creates up to limit multiple choice questions. Entities are visited in random order;
// an entity that appears several times may produce several questions.
func (g *OptionGenerator) Generate(sentences []entities.Sentence, ents []entities.Entity, limit int) []entities.Question {
	if limit <= 0 {
		return nil
	}

	candidates := append([]entities.Entity(nil), ents...)
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	questions := make([]entities.Question, 0, limit)
	for _, ent := range candidates {
		if ent.Text == "" {
			continue
		}

		sentence, ok := findContext(sentences, ent.Text)
		if !ok {
			continue
		}

		distractors := g.generateWrongOptions(candidates, ent, maxDistractors)
		options := g.buildOptionsWithCorrect(ent.Text, distractors)
		questions = append(questions, entities.NewMCQuestion(sentence, options, ent.Text))

		if len(questions) >= limit {
			break
		}
	}

	g.logger.Debug("multiple choice questions generated", zap.Int("count", len(questions)))

	return questions
}

// generateWrongOptions samples up to count distinct entity texts sharing the label of correct.
func (g *OptionGenerator) generateWrongOptions(all []entities.Entity, correct entities.Entity, count int) []string {
	seen := map[string]struct{}{strings.ToLower(correct.Text): {}}

	peers := make([]string, 0, len(all))
	for _, ent := range all {
		if ent.Label != correct.Label || ent.Text == "" {
			continue
		}

		key := strings.ToLower(ent.Text)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		peers = append(peers, ent.Text)
	}

	if len(peers) <= count {
		return peers
	}

	wrongOptions := make([]string, 0, count)
	for _, idx := range g.rng.Perm(len(peers))[:count] {
		wrongOptions = append(wrongOptions, peers[idx])
	}

	return wrongOptions
}

// buildOptionsWithCorrect mixes the correct answer into the distractors in random order.
func (g *OptionGenerator) buildOptionsWithCorrect(correct string, distractors []string) []string {
	options := make([]string, 0, 1+len(distractors))
	options = append(options, correct)
	options = append(options, distractors...)

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return options
}

// findContext returns the first sentence containing text.
func findContext(sentences []entities.Sentence, text string) (entities.Sentence, bool) {
	for _, s := range sentences {
		if strings.Contains(s, text) {
			return s, true
		}
	}
	return "", false
}
