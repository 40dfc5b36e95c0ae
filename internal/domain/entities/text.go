// Package entities contains domain entities used across the application.
package entities

import "strings"

const (
	// MinSentenceLength is the relevance floor for sentences: shorter ones are fragments.
	MinSentenceLength = 30
	// MinEntityLength is the shortest entity text kept by the analyzer.
	MinEntityLength = 2
)

// Sentence is a trimmed sentence of the source text that passed the relevance floor.
type Sentence = string

// Entity represents a named span of text tagged with a semantic category.
type Entity struct {
	Text  string // entity text as it appears in the source
	Label string // category tag, e.g. PERSON, DATE, ORG, GPE
}

// NewEntity creates an entity with trimmed text.
func NewEntity(text, label string) Entity {
	return Entity{
		Text:  strings.TrimSpace(text),
		Label: label,
	}
}

// IsQualifyingSentence reports whether s is long enough to build questions from.
func IsQualifyingSentence(s string) bool {
	return len(strings.TrimSpace(s)) > MinSentenceLength
}

// IsQualifyingEntity reports whether the entity text is long enough to be asked about.
func IsQualifyingEntity(text string) bool {
	return len(strings.TrimSpace(text)) > MinEntityLength
}
