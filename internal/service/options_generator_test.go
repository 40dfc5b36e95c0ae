package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/intelligent-quiz/internal/domain/entities"
)

func TestOptionGenerator_SingleLabelMemberHasNoDistractors(t *testing.T) {
	t.Parallel()

	g := NewOptionGenerator(newTestRand(1), zap.NewNop())
	questions := g.Generate([]entities.Sentence{eiffelSentence}, eiffelEntities(), 7)

	require.Len(t, questions, 3)
	for _, q := range questions {
		assert.Equal(t, entities.QuestionTypeMCQ, q.Type)
		assert.Equal(t, []string{q.Answer}, q.Options)
		assert.Equal(t, eiffelSentence+"\n\n"+entities.MCQPrompt, q.Text)
	}
}

func TestOptionGenerator_DistractorsShareLabel(t *testing.T) {
	t.Parallel()

	sentences := []entities.Sentence{
		"Albert Einstein published the theory of relativity while working in Bern.",
		"Niels Bohr and Werner Heisenberg argued about quantum mechanics for years.",
		"Max Planck introduced the quantum of action at the turn of the century.",
	}
	ents := []entities.Entity{
		{Text: "Albert Einstein", Label: "PERSON"},
		{Text: "Bern", Label: "GPE"},
		{Text: "Niels Bohr", Label: "PERSON"},
		{Text: "Werner Heisenberg", Label: "PERSON"},
		{Text: "Max Planck", Label: "PERSON"},
		{Text: "Erwin Schrodinger", Label: "PERSON"},
	}
	labels := make(map[string]string, len(ents))
	for _, e := range ents {
		labels[e.Text] = e.Label
	}

	for seed := int64(1); seed <= 20; seed++ {
		g := NewOptionGenerator(newTestRand(seed), zap.NewNop())
		questions := g.Generate(sentences, ents, 7)

		// Erwin Schrodinger has no context sentence.
		require.Len(t, questions, 5)
		for _, q := range questions {
			assert.Equal(t, 1, countOf(q.Options, q.Answer), "answer must appear once in %v", q.Options)
			assert.True(t, strings.HasPrefix(q.Text, firstContaining(sentences, q.Answer)))

			lowered := make(map[string]struct{}, len(q.Options))
			for _, opt := range q.Options {
				assert.Equal(t, labels[q.Answer], labels[opt])
				lowered[strings.ToLower(opt)] = struct{}{}
			}
			assert.Len(t, lowered, len(q.Options), "options must be distinct")

			if labels[q.Answer] == "PERSON" {
				assert.Len(t, q.Options, 4)
			} else {
				assert.Len(t, q.Options, 1)
			}
		}
	}
}

func TestOptionGenerator_RepeatedEntityMayYieldSeveralQuestions(t *testing.T) {
	t.Parallel()

	ents := []entities.Entity{
		{Text: "Paris", Label: "GPE"},
		{Text: "Paris", Label: "GPE"},
		{Text: "paris", Label: "GPE"},
	}

	g := NewOptionGenerator(newTestRand(5), zap.NewNop())
	questions := g.Generate([]entities.Sentence{eiffelSentence}, ents, 7)

	require.Len(t, questions, 2)
	for _, q := range questions {
		assert.Equal(t, "Paris", q.Answer)
		assert.Equal(t, []string{"Paris"}, q.Options)
	}
}

func TestOptionGenerator_RespectsLimitAndKeepsInput(t *testing.T) {
	t.Parallel()

	ents := eiffelEntities()
	original := append([]entities.Entity(nil), ents...)

	g := NewOptionGenerator(newTestRand(9), zap.NewNop())

	assert.Len(t, g.Generate([]entities.Sentence{eiffelSentence}, ents, 2), 2)
	assert.Empty(t, g.Generate([]entities.Sentence{eiffelSentence}, ents, 0))
	assert.Empty(t, g.Generate(nil, ents, 7))
	assert.Equal(t, original, ents)
}

func TestOptionGenerator_DeterministicForSeed(t *testing.T) {
	t.Parallel()

	first := NewOptionGenerator(newTestRand(3), zap.NewNop()).Generate([]entities.Sentence{eiffelSentence}, eiffelEntities(), 7)
	second := NewOptionGenerator(newTestRand(3), zap.NewNop()).Generate([]entities.Sentence{eiffelSentence}, eiffelEntities(), 7)

	assert.Equal(t, first, second)
}

func countOf(items []string, s string) int {
	n := 0
	for _, it := range items {
		if it == s {
			n++
		}
	}
	return n
}

func firstContaining(sentences []entities.Sentence, text string) string {
	for _, s := range sentences {
		if strings.Contains(s, text) {
			return s
		}
	}
	return ""
}
