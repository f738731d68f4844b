package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/snarky-quiz/internal/domain/entities"
)

// buildStartKeyboard builds keyboard for the intro screen.
func buildStartKeyboard(labels entities.Labels) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(labels.Start, buildQuizStartCallback()),
		),
	)
}

// buildQuizAnswerKeyboard builds keyboard for quiz question.
func buildQuizAnswerKeyboard(q *entities.Question, questionNum int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, option := range q.Options {
		text := fmt.Sprintf("%s. %s", optionLetter(i), option)
		button := tgbotapi.NewInlineKeyboardButtonData(text, buildQuizAnswerCallback(questionNum, i))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildQuizNextKeyboard builds keyboard shown under the feedback of a question.
func buildQuizNextKeyboard(labels entities.Labels, questionNum int, isLast bool) tgbotapi.InlineKeyboardMarkup {
	label := labels.Next
	if isLast {
		label = labels.Results
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildQuizNextCallback(questionNum)),
		),
	)
}

// buildQuizResultKeyboard builds keyboard for quiz results screen.
func buildQuizResultKeyboard(labels entities.Labels, pass bool) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 "+labels.RetryLabel(pass), buildQuizRestartCallback()),
		),
	)
}
