package console

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/intelligent-quiz/internal/domain/entities"
)

// renderIntro renders the banner shown before the first question.
func renderIntro(total int) string {
	var b strings.Builder
	b.WriteString("\n" + msgIntroTitle + "\n")
	b.WriteString(msgSeparator + "\n")
	if total == 0 {
		b.WriteString(msgNoQuestions + "\n")
	}
	return b.String()
}

// renderQuestion renders the question header, body and answer prompt.
// The prompt is not terminated by a newline so the answer is typed on the same line.
func renderQuestion(num, total int, q entities.Question) string {
	var b strings.Builder
	b.WriteString("\n" + fmt.Sprintf(msgQuestionHead, num, total) + "\n")

	switch q.Type {
	case entities.QuestionTypeCloze:
		b.WriteString(msgFillInBlank + "\n")
		b.WriteString(q.Text + "\n")
		b.WriteString(msgPromptText)
	case entities.QuestionTypeMCQ:
		b.WriteString(q.Text + "\n")
		for i, opt := range q.Options {
			fmt.Fprintf(&b, "%d. %s\n", i+1, opt)
		}
		fmt.Fprintf(&b, msgPromptChoice, len(q.Options))
	case entities.QuestionTypeTrueFalse:
		b.WriteString(msgTrueOrFalse + "\n")
		b.WriteString(q.Text + "\n")
		b.WriteString(msgPromptBool)
	}

	return b.String()
}

// renderResult renders feedback for an answered question.
func renderResult(q entities.Question, result entities.AnswerResult) string {
	switch {
	case result.IsCorrect:
		return msgCorrect + "\n"
	case result.IsMalformed:
		return fmt.Sprintf(msgInvalidChoice, result.CorrectAnswer) + "\n"
	case q.Type == entities.QuestionTypeMCQ:
		return fmt.Sprintf(msgWrongChoice, result.CorrectAnswer) + "\n"
	default:
		return fmt.Sprintf(msgIncorrect, result.CorrectAnswer) + "\n"
	}
}

// renderScore renders the final score block.
func renderScore(score entities.Score) string {
	return fmt.Sprintf("\n%s\n%s\n%s\n",
		msgScoreRule,
		fmt.Sprintf(msgQuizComplete, score.Correct, score.Total),
		msgScoreRule,
	)
}
