package service

import (
	"fmt"

	"github.com/aliskhannn/snarky-quiz/internal/domain/entities"
)

// View is a read-only snapshot of a session, sufficient for rendering.
type View struct {
	Phase          entities.Phase
	QuestionNumber int // 1-based, zero outside Answering and Feedback
	TotalQuestions int
	Question       *entities.Question
	Score          int
	Answered       bool // an option was picked for the current question
	Selected       int  // picked option, -1 unless Answered
	Correct        bool
	Feedback       string
	IsLast         bool
	Classification *entities.Classification // set only in Complete
}

// Controller drives one play-through of a quiz.
// It is not safe for concurrent use; each event must be applied one at a time.
type Controller struct {
	quiz    *entities.Quiz
	session entities.Session
	result  *entities.Classification
}

// NewController creates a controller in the NotStarted phase.
// The quiz must already be validated and is never modified.
func NewController(quiz *entities.Quiz) *Controller {
	return &Controller{
		quiz:    quiz,
		session: entities.NewSession(),
	}
}

// Quiz returns the quiz the controller plays.
func (c *Controller) Quiz() *entities.Quiz {
	return c.quiz
}

// Session returns a copy of the current session state.
func (c *Controller) Session() entities.Session {
	return c.session
}

// Start moves NotStarted to Answering on the first question.
func (c *Controller) Start() error {
	if c.session.Phase != entities.PhaseNotStarted {
		return fmt.Errorf("%w: start in %s phase", ErrInvalidTransition, c.session.Phase)
	}

	c.session = entities.Session{
		Phase:        entities.PhaseAnswering,
		CurrentIndex: 0,
		Score:        0,
		Selected:     -1,
	}
	return nil
}

// SelectOption records the answer to the current question and reveals feedback.
// The score is updated here and nowhere else. A second selection is rejected.
func (c *Controller) SelectOption(index int) error {
	if c.session.Phase != entities.PhaseAnswering {
		return fmt.Errorf("%w: select option in %s phase", ErrInvalidTransition, c.session.Phase)
	}
	if index < 0 || index >= entities.OptionCount {
		return fmt.Errorf("%w: %d", ErrOptionOutOfRange, index)
	}

	if c.current().IsCorrect(index) {
		c.session.Score++
	}
	c.session.Selected = index
	c.session.Phase = entities.PhaseFeedback
	return nil
}

// Advance leaves Feedback for the next question, or for Complete after the last one.
func (c *Controller) Advance() error {
	if c.session.Phase != entities.PhaseFeedback {
		return fmt.Errorf("%w: advance in %s phase", ErrInvalidTransition, c.session.Phase)
	}

	if !c.isLast() {
		c.session.CurrentIndex++
		c.session.Selected = -1
		c.session.Phase = entities.PhaseAnswering
		return nil
	}

	result, err := Classify(c.quiz.Tiers, c.session.Score, c.quiz.Len())
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}
	c.result = &result
	c.session.Phase = entities.PhaseComplete
	return nil
}

// Restart discards the play-through and returns to NotStarted. It is valid in any phase.
func (c *Controller) Restart() {
	c.session = entities.NewSession()
	c.result = nil
}

// View returns a snapshot of the current state.
func (c *Controller) View() View {
	v := View{
		Phase:          c.session.Phase,
		TotalQuestions: c.quiz.Len(),
		Score:          c.session.Score,
		Selected:       -1,
	}

	switch c.session.Phase {
	case entities.PhaseAnswering, entities.PhaseFeedback:
		q := c.current()
		v.Question = &q
		v.QuestionNumber = c.session.CurrentIndex + 1
		v.IsLast = c.isLast()
	case entities.PhaseComplete:
		if c.result != nil {
			result := *c.result
			v.Classification = &result
		}
	}

	if c.session.HasSelection() {
		v.Answered = true
		v.Selected = c.session.Selected
		v.Correct = v.Question.IsCorrect(v.Selected)
		v.Feedback = v.Question.Feedback(v.Correct)
	}

	return v
}

func (c *Controller) current() entities.Question {
	return c.quiz.Questions[c.session.CurrentIndex]
}

func (c *Controller) isLast() bool {
	return c.session.CurrentIndex == c.quiz.Len()-1
}
