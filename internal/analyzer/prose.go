// Package analyzer adapts an NLP library to the text analysis needs of the quiz:
// sentence segmentation and named entity recognition.
package analyzer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jdkato/prose/v2"
	"go.uber.org/zap"

	"github.com/aliskhannn/intelligent-quiz/internal/domain/entities"
)

// LabelDate tags year entities found in the text.
const LabelDate = "DATE"

// yearPattern matches any standalone four-digit number as a year.
var yearPattern = regexp.MustCompile(`\b\d{4}\b`)

// ProseAnalyzer segments text and extracts entities with prose.
type ProseAnalyzer struct {
	logger *zap.Logger
}

// New creates a new ProseAnalyzer.
func New(logger *zap.Logger) *ProseAnalyzer {
	return &ProseAnalyzer{logger: logger}
}

// Segment returns trimmed sentences longer than entities.MinSentenceLength in document order.
func (a *ProseAnalyzer) Segment(text string) ([]entities.Sentence, error) {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("segment document: %w", err)
	}

	var out []entities.Sentence
	for _, sent := range doc.Sentences() {
		s := strings.TrimSpace(sent.Text)
		if entities.IsQualifyingSentence(s) {
			out = append(out, s)
		}
	}

	a.logger.Debug("text segmented",
		zap.Int("sentences", len(doc.Sentences())),
		zap.Int("qualifying", len(out)),
	)

	return out, nil
}

// ExtractEntities returns named and year entities in document order, dropping
// entities whose text is too short to be asked about.
func (a *ProseAnalyzer) ExtractEntities(text string) ([]entities.Entity, error) {
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("extract entities: %w", err)
	}

	var named []entities.Entity
	for _, ent := range doc.Entities() {
		if entities.IsQualifyingEntity(ent.Text) {
			named = append(named, entities.NewEntity(ent.Text, ent.Label))
		}
	}

	out := mergeYears(text, named)

	a.logger.Debug("entities extracted",
		zap.Int("named", len(named)),
		zap.Int("dates", len(out)-len(named)),
	)

	return out, nil
}

// positioned is an entity with its byte offset in the text.
type positioned struct {
	entity entities.Entity
	offset int
}

// mergeYears interleaves year entities with named ones by offset in text.
// Named entities are expected in document order; each is located after the
// previous one, and one that cannot be found keeps the previous offset.
func mergeYears(text string, named []entities.Entity) []entities.Entity {
	all := make([]positioned, 0, len(named))

	cursor := 0
	for _, ent := range named {
		offset := cursor
		if idx := strings.Index(text[cursor:], ent.Text); idx >= 0 {
			offset = cursor + idx
			cursor = offset + len(ent.Text)
		}
		all = append(all, positioned{entity: ent, offset: offset})
	}

	for _, loc := range yearPattern.FindAllStringIndex(text, -1) {
		year := text[loc[0]:loc[1]]
		all = append(all, positioned{entity: entities.NewEntity(year, LabelDate), offset: loc[0]})
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].offset < all[j].offset
	})

	out := make([]entities.Entity, 0, len(all))
	for _, p := range all {
		out = append(out, p.entity)
	}
	return out
}
