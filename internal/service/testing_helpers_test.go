package service

import (
	"math/rand"

	"github.com/aliskhannn/intelligent-quiz/internal/domain/entities"
)

const (
	eiffelSentence = "The Eiffel Tower was built in 1889 and is located in Paris."
	moonSentence   = "Neil Armstrong walked on the Moon in 1969 during the Apollo 11 mission."
)

func eiffelEntities() []entities.Entity {
	return []entities.Entity{
		{Text: "Eiffel Tower", Label: "FAC"},
		{Text: "1889", Label: "DATE"},
		{Text: "Paris", Label: "GPE"},
	}
}

func moonEntities() []entities.Entity {
	return []entities.Entity{
		{Text: "Neil Armstrong", Label: "PERSON"},
		{Text: "1969", Label: "DATE"},
		{Text: "Apollo 11", Label: "PRODUCT"},
	}
}

func newTestRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
