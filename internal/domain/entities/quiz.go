package entities

// SessionState is a state of the quiz session state machine.
type SessionState string

const (
	StateNotStarted SessionState = "not_started"
	StatePresenting SessionState = "presenting"
	StateAwaiting   SessionState = "awaiting"
	StateScored     SessionState = "scored"
	StateComplete   SessionState = "complete"
)

// MaxQuizQuestions is the largest number of questions in one quiz.
const MaxQuizQuestions = 25

// AnswerResult is the outcome of a single answered question.
type AnswerResult struct {
	QuestionNum   int    // 1-based question number
	UserAnswer    string // raw user input
	CorrectAnswer string // expected answer
	IsCorrect     bool   // whether the answer was scored correct
	IsMalformed   bool   // input could not be interpreted (MCQ only)
}

// Score is the final result of a quiz session.
type Score struct {
	Correct int
	Total   int
}
