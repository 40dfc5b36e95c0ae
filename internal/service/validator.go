package service

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aliskhannn/intelligent-quiz/internal/domain/entities"
)

// ExactMatch disables fuzzy matching of free-text answers.
const ExactMatch = 1.0

// AnswerValidator checks user answers against the expected answer of a question.
type AnswerValidator struct {
	threshold float64 // similarity required for free-text answers (0.0 - 1.0)
}

// NewAnswerValidator creates a new AnswerValidator.
// A threshold of ExactMatch (or anything outside (0, 1)) accepts only exact answers.
func NewAnswerValidator(threshold float64) *AnswerValidator {
	if threshold <= 0 || threshold > ExactMatch {
		threshold = ExactMatch
	}
	return &AnswerValidator{
		threshold: threshold,
	}
}

// Validate checks input against q. malformed is reported for multiple choice
// input that is not a number in 1..len(options).
func (v *AnswerValidator) Validate(q entities.Question, input string) (correct, malformed bool) {
	switch q.Type {
	case entities.QuestionTypeMCQ:
		return v.validateChoice(q, input)
	case entities.QuestionTypeTrueFalse:
		return capitalize(strings.TrimSpace(input)) == q.Answer, false
	default:
		return v.validateText(input, q.Answer), false
	}
}

// validateChoice resolves a 1-based option number and compares the chosen option.
func (v *AnswerValidator) validateChoice(q entities.Question, input string) (bool, bool) {
	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || choice < 1 || choice > len(q.Options) {
		return false, true
	}
	return strings.EqualFold(q.Options[choice-1], q.Answer), false
}

// validateText compares free-text answers case-insensitively, optionally with fuzzy matching.
func (v *AnswerValidator) validateText(userAnswer, correctAnswer string) bool {
	user := strings.ToLower(strings.TrimSpace(userAnswer))
	correct := strings.ToLower(strings.TrimSpace(correctAnswer))

	if user == correct {
		return true
	}
	if v.threshold >= ExactMatch || user == "" {
		return false
	}

	return v.similarity(user, correct) >= v.threshold
}

// similarity calculates the similarity between two strings using Levenshtein distance.
func (v *AnswerValidator) similarity(s1, s2 string) float64 {
	distance := levenshteinDistance(s1, s2)
	maxLen := max(utf8.RuneCountInString(s1), utf8.RuneCountInString(s2))

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/float64(maxLen)
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// levenshteinDistance calculates the Levenshtein distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)

	rows := len(r1) + 1
	cols := len(r2) + 1

	// Two rolling rows are enough.
	prev := make([]int, cols)
	curr := make([]int, cols)

	for j := 0; j < cols; j++ {
		prev[j] = j
	}

	for i := 1; i < rows; i++ {
		curr[0] = i

		for j := 1; j < cols; j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}

			curr[j] = min(
				curr[j-1]+1,    // insertion
				prev[j]+1,      // deletion
				prev[j-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[cols-1]
}
