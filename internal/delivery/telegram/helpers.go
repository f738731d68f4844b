package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

func newHTMLScreen(chatID int64, s screen) tgbotapi.MessageConfig {
	msg := newHTMLMessage(chatID, s.text)
	msg.ReplyMarkup = s.keyboard
	return msg
}

func newHTMLEdit(chatID int64, msgID int, s screen) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, msgID, s.text, s.keyboard)
	edit.ParseMode = tgbotapi.ModeHTML
	return edit
}
