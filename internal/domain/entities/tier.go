package entities

// Tier is a percentage bucket of the final classification.
// A tier covers [MinPercent, MinPercent of the tier above it).
type Tier struct {
	MinPercent int    `json:"min_percent"`
	Label      string `json:"label"`
	Pass       bool   `json:"pass"`
	Message    string `json:"message"`
}

// Classification is the outcome of a completed play-through.
type Classification struct {
	Score   int
	Total   int
	Percent int
	Tier    Tier
}

// Passed reports whether the classification counts as a pass.
func (c Classification) Passed() bool {
	return c.Tier.Pass
}
