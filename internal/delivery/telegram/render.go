package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/snarky-quiz/internal/domain/entities"
	"github.com/aliskhannn/snarky-quiz/internal/service"
)

// screen is a rendered session view: HTML text and the keyboard under it.
type screen struct {
	text     string
	keyboard tgbotapi.InlineKeyboardMarkup
}

func esc(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}

func optionLetter(index int) string {
	return string(rune('A' + index))
}

// renderView renders the screen for the current phase of a session.
func renderView(v service.View, quiz *entities.Quiz) screen {
	switch v.Phase {
	case entities.PhaseAnswering:
		return renderQuestion(v)
	case entities.PhaseFeedback:
		return renderFeedback(v, quiz.Labels)
	case entities.PhaseComplete:
		return renderResults(v, quiz)
	default:
		return renderIntro(quiz)
	}
}

func renderIntro(quiz *entities.Quiz) screen {
	var sb strings.Builder

	sb.WriteString("<b>" + esc(quiz.Title) + "</b>\n")
	if quiz.Subtitle != "" {
		sb.WriteString("<i>" + esc(quiz.Subtitle) + "</i>\n")
	}
	if quiz.Blurb != "" {
		blurb := quiz.Blurb
		if strings.Contains(blurb, "%d") {
			blurb = fmt.Sprintf(blurb, quiz.Len())
		}
		sb.WriteString("\n" + esc(blurb) + "\n")
	}
	if quiz.Disclaimer != "" {
		sb.WriteString("\n<i>" + esc(quiz.Disclaimer) + "</i>")
	}

	return screen{
		text:     sb.String(),
		keyboard: buildStartKeyboard(quiz.Labels),
	}
}

func renderHeader(v service.View) string {
	return fmt.Sprintf("Question %d of %d · Score: %d\n\n<b>%s</b>\n\n",
		v.QuestionNumber, v.TotalQuestions, v.Score, esc(v.Question.Prompt))
}

func renderQuestion(v service.View) screen {
	return screen{
		text:     strings.TrimSuffix(renderHeader(v), "\n\n"),
		keyboard: buildQuizAnswerKeyboard(v.Question, v.QuestionNumber),
	}
}

func renderFeedback(v service.View, labels entities.Labels) screen {
	var sb strings.Builder

	sb.WriteString(renderHeader(v))
	for idx, option := range v.Question.Options {
		mark := "▫️"
		switch {
		case v.Question.IsCorrect(idx):
			mark = "✅"
		case idx == v.Selected:
			mark = "❌"
		}
		fmt.Fprintf(&sb, "%s %s. %s\n", mark, optionLetter(idx), esc(option))
	}

	if v.Correct {
		sb.WriteString("\n<b>Correct.</b> ")
	} else {
		sb.WriteString("\n<b>Wrong.</b> ")
	}
	sb.WriteString(esc(v.Feedback))

	return screen{
		text:     sb.String(),
		keyboard: buildQuizNextKeyboard(labels, v.QuestionNumber, v.IsLast),
	}
}

func renderResults(v service.View, quiz *entities.Quiz) screen {
	c := v.Classification

	var sb strings.Builder
	sb.WriteString("<b>Assessment Complete</b>\n")
	if c.Passed() {
		sb.WriteString("[ PASSED ]\n\n")
	} else {
		sb.WriteString("[ FAILED ]\n\n")
	}
	fmt.Fprintf(&sb, "<b>%d / %d</b>\n%d%%\n\n", c.Score, c.Total, c.Percent)
	sb.WriteString("<b>" + esc(c.Tier.Label) + "</b>\n")
	sb.WriteString(esc(c.Tier.Message) + "\n\n")

	sb.WriteString("<i>Classification Matrix:</i>\n")
	for _, r := range service.Ranges(quiz.Tiers) {
		fmt.Fprintf(&sb, "%d-%d%% %s\n", r.Low, r.High, esc(r.Tier.Label))
	}

	return screen{
		text:     strings.TrimSuffix(sb.String(), "\n"),
		keyboard: buildQuizResultKeyboard(quiz.Labels, c.Passed()),
	}
}
