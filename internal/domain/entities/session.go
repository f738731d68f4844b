package entities

// Phase is the stage of a play-through.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseAnswering
	PhaseFeedback
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseAnswering:
		return "answering"
	case PhaseFeedback:
		return "feedback"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Session is the mutable state of one play-through.
// CurrentIndex is meaningful in Answering and Feedback, Selected only in Feedback.
type Session struct {
	Phase        Phase
	CurrentIndex int
	Score        int
	Selected     int
}

// NewSession returns a session in its initial state.
func NewSession() Session {
	return Session{Phase: PhaseNotStarted, Selected: -1}
}

// HasSelection reports whether an option has been picked for the current question.
func (s Session) HasSelection() bool {
	return s.Phase == PhaseFeedback && s.Selected >= 0
}
