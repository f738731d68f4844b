// messages.go contains message templates for Telegram.

package telegram

const (
	msgHelp = "Commands:\n\n" +
		"/start - show the quiz intro\n" +
		"/quiz - start a fresh play-through right away\n" +
		"/restart - abandon the current play-through\n" +
		"/help - show this message"
	msgUnknownCommand     = "Unknown command.\n\n" + msgHelp
	msgUseButtons         = "Use the buttons under the question to answer, or /quiz to start."
	msgUnrecognizedAnswer = "Not sure which option that is. Send a letter A-D or tap a button."
	msgInternalError      = "Something went wrong. Please try again later."

	// Callback notices, shown as a toast in the client.
	noticeAlreadyStarted  = "The quiz is already running."
	noticeAlreadyAnswered = "You already answered this one."
	noticeStale           = "That button belongs to an older screen."
	noticeExpired         = "This quiz expired. Starting over."
)
