package service

import (
	"fmt"

	"github.com/aliskhannn/snarky-quiz/internal/domain/entities"
)

// DefaultTiers is the built-in classification table.
var DefaultTiers = []entities.Tier{
	{
		MinPercent: 90,
		Label:      "Minimal Acceptable Result",
		Pass:       true,
		Message:    "Score engravers will be dispatched. Please shower before arrival.",
	},
	{
		MinPercent: 80,
		Label:      "Minimal Tolerable Failure",
		Message:    "Additional study sessions will be enforced by armed tutors.",
	},
	{
		MinPercent: 70,
		Label:      "Insufficient Success",
		Message:    "Please report for surgical exclusion.",
	},
	{
		MinPercent: 60,
		Label:      "Dismal Result",
		Message:    "We are both angry and disappointed. Please mark voluntary toes with the appropriate marker.",
	},
	{
		MinPercent: 0,
		Label:      "Exceptional Failure",
		Message:    "Tutors will be dispatched. Please shave the areas listed in the student manual on page 145 to make electrode placement easier.",
	},
}

// TierRange is a tier together with its inclusive percentage bounds.
type TierRange struct {
	Tier entities.Tier
	Low  int
	High int
}

// Ranges lists the inclusive bounds of every tier, highest first.
func Ranges(tiers []entities.Tier) []TierRange {
	ranges := make([]TierRange, 0, len(tiers))
	high := 100
	for _, tier := range tiers {
		ranges = append(ranges, TierRange{Tier: tier, Low: tier.MinPercent, High: high})
		high = tier.MinPercent - 1
	}
	return ranges
}

// Percent returns 100*score/total rounded half up.
func Percent(score, total int) int {
	return (200*score + total) / (2 * total)
}

// ValidateTiers checks that tiers are strictly descending, start at or below 100
// and end with a tier open down to 0.
func ValidateTiers(tiers []entities.Tier) error {
	if len(tiers) == 0 {
		return fmt.Errorf("%w: no tiers", ErrInvalidTiers)
	}
	if tiers[0].MinPercent > 100 {
		return fmt.Errorf("%w: first tier starts at %d%%", ErrInvalidTiers, tiers[0].MinPercent)
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].MinPercent >= tiers[i-1].MinPercent {
			return fmt.Errorf("%w: tier %q is not below tier %q", ErrInvalidTiers, tiers[i].Label, tiers[i-1].Label)
		}
	}
	if last := tiers[len(tiers)-1]; last.MinPercent != 0 {
		return fmt.Errorf("%w: last tier %q starts at %d%%, want 0", ErrInvalidTiers, last.Label, last.MinPercent)
	}
	return nil
}

// Classify maps a final score to its tier. tiers must satisfy ValidateTiers.
func Classify(tiers []entities.Tier, score, total int) (entities.Classification, error) {
	if total <= 0 || score < 0 || score > total {
		return entities.Classification{}, fmt.Errorf("%w: %d of %d", ErrInvalidScore, score, total)
	}

	pct := Percent(score, total)
	for _, tier := range tiers {
		if pct >= tier.MinPercent {
			return entities.Classification{
				Score:   score,
				Total:   total,
				Percent: pct,
				Tier:    tier,
			}, nil
		}
	}

	return entities.Classification{}, fmt.Errorf("%w: no tier covers %d%%", ErrInvalidTiers, pct)
}
