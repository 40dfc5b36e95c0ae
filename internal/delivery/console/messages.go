// messages.go contains message templates and formatting functions for the console.

package console

const (
	msgIntroTitle   = "🤖 Intelligent Quiz Generator — Interactive Mode"
	msgSeparator    = "--------------------------------------------------"
	msgScoreRule    = "----------------------------------------"
	msgNoQuestions  = "No questions could be generated from the text."
	msgQuestionHead = "Question %d/%d:"

	msgFillInBlank  = "Fill in the blank:"
	msgTrueOrFalse  = "True or False:"
	msgPromptText   = "Your answer: "
	msgPromptBool   = "Your answer (True/False): "
	msgPromptChoice = "Your choice (1-%d): "

	msgCorrect       = "✅ Correct!"
	msgIncorrect     = "❌ Incorrect. Correct answer: %s"
	msgWrongChoice   = "❌ Wrong. Correct answer: %s"
	msgInvalidChoice = "⚠️ Invalid input. Correct answer: %s"
	msgQuizComplete  = "🎯 Quiz Complete! Your Score: %d/%d"
)
