package entities

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// Question is one multiple-choice question of a quiz.
type Question struct {
	Prompt            string              `json:"prompt"`             // question text
	Options           [OptionCount]string `json:"options"`            // answers, positionally indexed 0-3
	CorrectIndex      int                 `json:"correct_index"`      // index into Options
	FeedbackCorrect   string              `json:"feedback_correct"`   // shown after a correct answer
	FeedbackIncorrect string              `json:"feedback_incorrect"` // shown after a wrong answer
}

// IsCorrect reports whether index points at the correct option.
func (q Question) IsCorrect(index int) bool {
	return index == q.CorrectIndex
}

// Feedback returns the commentary for an answer with the given correctness.
func (q Question) Feedback(correct bool) string {
	if correct {
		return q.FeedbackCorrect
	}
	return q.FeedbackIncorrect
}

// CorrectAnswer returns the text of the correct option.
func (q Question) CorrectAnswer() string {
	return q.Options[q.CorrectIndex]
}
