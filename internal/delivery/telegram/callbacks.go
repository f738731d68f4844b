package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/snarky-quiz/internal/domain/entities"
	"github.com/aliskhannn/snarky-quiz/internal/service"
)

func (h *Handler) handleCallback(_ context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil || cb.Message.Chat == nil {
		h.answerCallback(cb.ID, "")
		return
	}

	data := decodeCallback(cb.Data)
	if data.Action != actionQuiz || len(data.Params) == 0 {
		h.logger.Debug("unknown callback", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "")
		return
	}

	chatID := cb.Message.Chat.ID
	if _, ok := h.sessions.Lookup(chatID); !ok {
		// The session was swept; show the intro of a fresh one.
		c := h.sessions.Acquire(chatID)
		h.answerCallback(cb.ID, noticeExpired)
		h.send(newHTMLEdit(chatID, cb.Message.MessageID, renderView(c.View(), h.quiz)))
		return
	}

	c := h.sessions.Acquire(chatID)
	notice, changed, err := h.applyCallback(c, data)
	if err != nil {
		h.logger.Error("quiz callback failed",
			zap.Int64("chat_id", chatID),
			zap.String("data", cb.Data),
			zap.Error(err),
		)
		h.answerCallback(cb.ID, msgInternalError)
		return
	}

	h.answerCallback(cb.ID, notice)
	if !changed {
		return
	}

	h.send(newHTMLEdit(chatID, cb.Message.MessageID, renderView(c.View(), h.quiz)))
}

// applyCallback feeds one quiz callback into the controller. It returns the
// notice for the client and whether the session changed.
func (h *Handler) applyCallback(c *service.Controller, data callbackData) (string, bool, error) {
	v := c.View()

	switch data.Params[0] {
	case quizStart:
		if err := c.Start(); err != nil {
			return h.rejected(v, data, err)
		}

	case quizAnswer:
		num, ok1 := data.intParam(1)
		index, ok2 := data.intParam(2)
		if !ok1 || !ok2 || num != v.QuestionNumber {
			return noticeStale, false, nil
		}
		if err := c.SelectOption(index); err != nil {
			return h.rejected(v, data, err)
		}

	case quizNext:
		num, ok := data.intParam(1)
		if !ok || num != v.QuestionNumber {
			return noticeStale, false, nil
		}
		if err := c.Advance(); err != nil {
			return h.rejected(v, data, err)
		}

	case quizRestart:
		c.Restart()
		if err := c.Start(); err != nil {
			return "", false, err
		}

	default:
		return noticeStale, false, nil
	}

	h.logger.Debug("transition",
		zap.Stringer("from", v.Phase),
		zap.Stringer("to", c.View().Phase),
		zap.Int("score", c.View().Score),
	)
	return "", true, nil
}

// rejected turns a refused transition into a client notice. Only unexpected
// errors are returned.
func (h *Handler) rejected(v service.View, data callbackData, err error) (string, bool, error) {
	if !errors.Is(err, service.ErrInvalidTransition) && !errors.Is(err, service.ErrOptionOutOfRange) {
		return "", false, err
	}

	h.logger.Debug("transition rejected",
		zap.Stringer("phase", v.Phase),
		zap.String("data", data.Raw),
		zap.Error(err),
	)

	switch {
	case data.Params[0] == quizAnswer && v.Phase == entities.PhaseFeedback:
		return noticeAlreadyAnswered, false, nil
	case data.Params[0] == quizStart && (v.Phase == entities.PhaseAnswering || v.Phase == entities.PhaseFeedback):
		return noticeAlreadyStarted, false, nil
	default:
		return noticeStale, false, nil
	}
}

// answerCallback removes the user's "clock", optionally with a toast.
func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}
