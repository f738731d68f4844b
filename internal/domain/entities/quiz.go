package entities

// Quiz is the immutable content of the widget: questions, classification tiers
// and the texts shown around them.
type Quiz struct {
	Title      string     `json:"title"`
	Subtitle   string     `json:"subtitle"`
	Blurb      string     `json:"blurb"`      // shown under the subtitle, %d is the question count
	Disclaimer string     `json:"disclaimer"` // small print on the intro screen
	Labels     Labels     `json:"labels"`
	Questions  []Question `json:"questions"`
	Tiers      []Tier     `json:"tiers"` // ordered by descending MinPercent
}

// Labels are the button captions of the presentation layers.
type Labels struct {
	Start     string `json:"start"`
	Next      string `json:"next"`
	Results   string `json:"results"`
	RetryPass string `json:"retry_pass"`
	RetryFail string `json:"retry_fail"`
}

// Len returns the number of questions.
func (q *Quiz) Len() int {
	return len(q.Questions)
}

// RetryLabel returns the restart caption for a pass or a fail.
func (l Labels) RetryLabel(pass bool) string {
	if pass {
		return l.RetryPass
	}
	return l.RetryFail
}
