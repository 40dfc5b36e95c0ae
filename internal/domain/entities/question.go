package entities

import "fmt"

// QuestionType identifies the shape of a question.
type QuestionType string

const (
	QuestionTypeCloze     QuestionType = "cloze"
	QuestionTypeTrueFalse QuestionType = "truefalse"
	QuestionTypeMCQ       QuestionType = "mcq"
)

// Answers of true/false questions.
const (
	AnswerTrue  = "True"
	AnswerFalse = "False"
)

// BlankMarker replaces the entity text in cloze questions.
const BlankMarker = "______"

// MCQPrompt is appended to the context sentence of multiple choice questions.
const MCQPrompt = "Choose the correct answer:"

// Question is a single quiz question. Options are set only for multiple choice questions.
type Question struct {
	Type    QuestionType
	Text    string   // question body shown to the quiz-taker
	Options []string // multiple choice
	Answer  string   // expected answer; for MCQ a member of Options
}

// NewClozeQuestion creates a fill-in-the-blank question.
func NewClozeQuestion(text, answer string) Question {
	return Question{
		Type:   QuestionTypeCloze,
		Text:   text,
		Answer: answer,
	}
}

// NewTrueFalseQuestion creates a true/false question for the displayed statement.
func NewTrueFalseQuestion(statement string, isTrue bool) Question {
	answer := AnswerFalse
	if isTrue {
		answer = AnswerTrue
	}
	return Question{
		Type:   QuestionTypeTrueFalse,
		Text:   statement,
		Answer: answer,
	}
}

// NewMCQuestion creates a multiple choice question using the context sentence as the question body.
func NewMCQuestion(sentence string, options []string, answer string) Question {
	return Question{
		Type:    QuestionTypeMCQ,
		Text:    fmt.Sprintf("%s\n\n%s", sentence, MCQPrompt),
		Options: options,
		Answer:  answer,
	}
}
