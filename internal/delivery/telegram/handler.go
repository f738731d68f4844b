package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/snarky-quiz/internal/domain/entities"
	"github.com/aliskhannn/snarky-quiz/internal/service"
)

// BotAPI is the part of *tgbotapi.BotAPI the handler uses.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

// SessionStore keeps one controller per chat.
type SessionStore interface {
	Acquire(chatID int64) *service.Controller
	Lookup(chatID int64) (*service.Controller, bool)
}

type Handler struct {
	bot            BotAPI
	logger         *zap.Logger
	quiz           *entities.Quiz
	sessions       SessionStore
	matcher        *service.AnswerMatcher
	updatesTimeout int
}

func NewHandler(
	bot BotAPI,
	logger *zap.Logger,
	quiz *entities.Quiz,
	sessions SessionStore,
	updatesTimeout int,
) *Handler {
	return &Handler{
		bot:            bot,
		logger:         logger,
		quiz:           quiz,
		sessions:       sessions,
		matcher:        service.NewAnswerMatcher(),
		updatesTimeout: updatesTimeout,
	}
}

// Run consumes updates one at a time until ctx is cancelled.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = h.updatesTimeout

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if !update.Message.IsCommand() {
		h.handleText(chatID, update.Message.Text)
		return
	}

	switch update.Message.Command() {
	case "start", "restart":
		_ = h.withErrorHandling(h.introHandler())(ctx, chatID)

	case "quiz":
		_ = h.withErrorHandling(h.quizHandler())(ctx, chatID)

	case "help":
		h.send(newHTMLMessage(chatID, msgHelp))

	default:
		h.send(newHTMLMessage(chatID, msgUnknownCommand))
	}
}

// handleText treats free text as an answer to the current question.
func (h *Handler) handleText(chatID int64, text string) {
	c, ok := h.sessions.Lookup(chatID)
	if !ok {
		h.send(newHTMLMessage(chatID, msgUseButtons))
		return
	}

	v := c.View()
	if v.Phase != entities.PhaseAnswering {
		h.send(newHTMLMessage(chatID, msgUseButtons))
		return
	}

	index, ok := h.matcher.Match(*v.Question, text)
	if !ok {
		h.send(newHTMLMessage(chatID, msgUnrecognizedAnswer))
		return
	}

	c = h.sessions.Acquire(chatID)
	if err := c.SelectOption(index); err != nil {
		h.logger.Debug("text answer rejected", zap.Int64("chat_id", chatID), zap.Error(err))
		h.send(newHTMLMessage(chatID, msgUseButtons))
		return
	}

	h.send(newHTMLScreen(chatID, renderView(c.View(), h.quiz)))
}

// introHandler discards the chat's play-through and shows the intro screen.
func (h *Handler) introHandler() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		c := h.sessions.Acquire(chatID)
		c.Restart()

		h.send(newHTMLScreen(chatID, renderView(c.View(), h.quiz)))
		return nil
	}
}

// quizHandler discards the chat's play-through and shows the first question.
func (h *Handler) quizHandler() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		c := h.sessions.Acquire(chatID)
		c.Restart()
		if err := c.Start(); err != nil {
			return err
		}

		h.send(newHTMLScreen(chatID, renderView(c.View(), h.quiz)))
		return nil
	}
}

func (h *Handler) sendError(chatID int64, err string) {
	msg := newHTMLMessage(chatID, err)
	h.send(msg)
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
