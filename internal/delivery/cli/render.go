package cli

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/snarky-quiz/internal/domain/entities"
	"github.com/aliskhannn/snarky-quiz/internal/service"
)

func optionLetter(index int) string {
	return string(rune('A' + index))
}

func renderIntro(quiz *entities.Quiz) string {
	var sb strings.Builder

	sb.WriteString(quiz.Title + "\n")
	if quiz.Subtitle != "" {
		sb.WriteString(quiz.Subtitle + "\n")
	}
	sb.WriteString("\n")
	if quiz.Blurb != "" {
		sb.WriteString(formatBlurb(quiz) + "\n\n")
	}
	if quiz.Disclaimer != "" {
		sb.WriteString(quiz.Disclaimer + "\n\n")
	}
	fmt.Fprintf(&sb, "Press Enter: %s\n", quiz.Labels.Start)

	return sb.String()
}

func formatBlurb(quiz *entities.Quiz) string {
	if strings.Contains(quiz.Blurb, "%d") {
		return fmt.Sprintf(quiz.Blurb, quiz.Len())
	}
	return quiz.Blurb
}

func renderHeader(v service.View) string {
	return fmt.Sprintf("Question %d of %d    Score: %d\n", v.QuestionNumber, v.TotalQuestions, v.Score)
}

func renderQuestion(v service.View) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(renderHeader(v))
	sb.WriteString("\n")
	sb.WriteString(v.Question.Prompt + "\n\n")
	for idx, option := range v.Question.Options {
		fmt.Fprintf(&sb, "  %s. %s\n", optionLetter(idx), option)
	}
	fmt.Fprintf(&sb, "\nYour answer (A-%s): ", optionLetter(entities.OptionCount-1))

	return sb.String()
}

func renderFeedback(v service.View, labels entities.Labels) string {
	var sb strings.Builder

	sb.WriteString("\n")
	for idx, option := range v.Question.Options {
		mark := " "
		switch {
		case v.Question.IsCorrect(idx):
			mark = "✓"
		case idx == v.Selected:
			mark = "✗"
		}
		fmt.Fprintf(&sb, "%s %s. %s\n", mark, optionLetter(idx), option)
	}

	sb.WriteString("\n")
	if v.Correct {
		sb.WriteString("Correct. ")
	} else {
		sb.WriteString("Wrong. ")
	}
	sb.WriteString(v.Feedback + "\n\n")

	label := labels.Next
	if v.IsLast {
		label = labels.Results
	}
	fmt.Fprintf(&sb, "Press Enter: %s\n", label)

	return sb.String()
}

func renderResults(v service.View, quiz *entities.Quiz) string {
	c := v.Classification

	var sb strings.Builder
	sb.WriteString("\nAssessment Complete\n")
	if c.Passed() {
		sb.WriteString("[ PASSED ]\n\n")
	} else {
		sb.WriteString("[ FAILED ]\n\n")
	}
	fmt.Fprintf(&sb, "%d / %d\n%d%%\n\n", c.Score, c.Total, c.Percent)
	sb.WriteString(c.Tier.Label + "\n")
	sb.WriteString(c.Tier.Message + "\n\n")

	sb.WriteString("Classification Matrix:\n")
	for _, line := range classificationMatrix(quiz.Tiers) {
		sb.WriteString("  " + line + "\n")
	}

	fmt.Fprintf(&sb, "\nType r and press Enter: %s. Anything else quits.\n", quiz.Labels.RetryLabel(c.Passed()))

	return sb.String()
}

// classificationMatrix lists each tier with its percentage range, highest first.
func classificationMatrix(tiers []entities.Tier) []string {
	ranges := service.Ranges(tiers)
	lines := make([]string, 0, len(ranges))
	for _, r := range ranges {
		lines = append(lines, fmt.Sprintf("%d-%d%% %s", r.Low, r.High, r.Tier.Label))
	}
	return lines
}
