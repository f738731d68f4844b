package telegram

import (
	"context"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/snarky-quiz/internal/domain/entities"
	"github.com/aliskhannn/snarky-quiz/internal/repository"
	"github.com/aliskhannn/snarky-quiz/internal/storage"
)

const testChatID int64 = 42

type fakeBot struct {
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	updates  chan tgbotapi.Update
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.sent = append(b.sent, c)
	return tgbotapi.Message{}, nil
}

func (b *fakeBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	b.requests = append(b.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (b *fakeBot) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return b.updates
}

func (b *fakeBot) lastEdit(t *testing.T) tgbotapi.EditMessageTextConfig {
	t.Helper()
	if len(b.sent) == 0 {
		t.Fatalf("nothing sent")
	}
	edit, ok := b.sent[len(b.sent)-1].(tgbotapi.EditMessageTextConfig)
	if !ok {
		t.Fatalf("last sent is %T, want EditMessageTextConfig", b.sent[len(b.sent)-1])
	}
	return edit
}

func (b *fakeBot) lastMessage(t *testing.T) tgbotapi.MessageConfig {
	t.Helper()
	if len(b.sent) == 0 {
		t.Fatalf("nothing sent")
	}
	msg, ok := b.sent[len(b.sent)-1].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("last sent is %T, want MessageConfig", b.sent[len(b.sent)-1])
	}
	return msg
}

func (b *fakeBot) lastNotice(t *testing.T) string {
	t.Helper()
	if len(b.requests) == 0 {
		t.Fatalf("no callback answered")
	}
	cb, ok := b.requests[len(b.requests)-1].(tgbotapi.CallbackConfig)
	if !ok {
		t.Fatalf("last request is %T, want CallbackConfig", b.requests[len(b.requests)-1])
	}
	return cb.Text
}

func newTestHandler(t *testing.T) (*Handler, *fakeBot, *storage.SessionStorage, *entities.Quiz) {
	t.Helper()
	repo, err := repository.NewQuizRepository("")
	if err != nil {
		t.Fatalf("NewQuizRepository() error = %v", err)
	}
	quiz := repo.Get()
	sessions := storage.NewSessionStorage(quiz)
	bot := &fakeBot{updates: make(chan tgbotapi.Update)}
	return NewHandler(bot, zap.NewNop(), quiz, sessions, 60), bot, sessions, quiz
}

func commandUpdate(text string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID: 1,
			From:      &tgbotapi.User{ID: 7},
			Chat:      &tgbotapi.Chat{ID: testChatID},
			Text:      text,
			Entities:  []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(text)}},
		},
	}
}

func callbackUpdate(data string) tgbotapi.Update {
	return tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb",
			From: &tgbotapi.User{ID: 7},
			Message: &tgbotapi.Message{
				MessageID: 99,
				Chat:      &tgbotapi.Chat{ID: testChatID},
			},
			Data: data,
		},
	}
}

func TestStartCommandShowsIntro(t *testing.T) {
	h, bot, _, _ := newTestHandler(t)

	h.handleUpdate(context.Background(), commandUpdate("/start"))

	msg := bot.lastMessage(t)
	if msg.ChatID != testChatID || msg.ParseMode != tgbotapi.ModeHTML {
		t.Fatalf("unexpected message config: %+v", msg)
	}
	if !strings.Contains(msg.Text, "<b>JavaScript Fundamentals</b>") || !strings.Contains(msg.Text, "7 questions") {
		t.Fatalf("unexpected intro text: %q", msg.Text)
	}
	kb, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	if !ok || len(kb.InlineKeyboard) != 1 || *kb.InlineKeyboard[0][0].CallbackData != "quiz:start" {
		t.Fatalf("unexpected intro keyboard: %+v", msg.ReplyMarkup)
	}
}

func TestFullPlayThroughOverCallbacks(t *testing.T) {
	h, bot, sessions, quiz := newTestHandler(t)
	ctx := context.Background()

	h.handleUpdate(ctx, commandUpdate("/start"))
	h.handleUpdate(ctx, callbackUpdate("quiz:start"))

	edit := bot.lastEdit(t)
	if edit.MessageID != 99 || !strings.Contains(edit.Text, "Question 1 of 7") {
		t.Fatalf("unexpected first question: %+v", edit)
	}
	if len(edit.ReplyMarkup.InlineKeyboard) != entities.OptionCount {
		t.Fatalf("expected %d answer rows, got %d", entities.OptionCount, len(edit.ReplyMarkup.InlineKeyboard))
	}

	for i, q := range quiz.Questions {
		num := i + 1
		pick := q.CorrectIndex
		if i >= 5 {
			pick = (q.CorrectIndex + 1) % entities.OptionCount
		}

		h.handleUpdate(ctx, callbackUpdate(buildQuizAnswerCallback(num, pick)))
		edit = bot.lastEdit(t)
		if !strings.Contains(edit.Text, esc(q.Feedback(pick == q.CorrectIndex))) {
			t.Fatalf("question %d feedback missing: %q", num, edit.Text)
		}

		h.handleUpdate(ctx, callbackUpdate(buildQuizNextCallback(num)))
	}

	edit = bot.lastEdit(t)
	for _, want := range []string{"[ FAILED ]", "<b>5 / 7</b>", "71%", "Insufficient Success", "0-59% Exceptional Failure"} {
		if !strings.Contains(edit.Text, want) {
			t.Fatalf("results missing %q: %q", want, edit.Text)
		}
	}
	if got := edit.ReplyMarkup.InlineKeyboard[0][0].Text; !strings.Contains(got, "Petition for Reassessment") {
		t.Fatalf("retry label = %q", got)
	}

	c, ok := sessions.Lookup(testChatID)
	if !ok || c.View().Phase != entities.PhaseComplete {
		t.Fatalf("session not complete")
	}

	h.handleUpdate(ctx, callbackUpdate("quiz:restart"))
	if v := c.View(); v.Phase != entities.PhaseAnswering || v.QuestionNumber != 1 || v.Score != 0 {
		t.Fatalf("restart did not begin a fresh play-through: %+v", v)
	}
}

func TestRepeatedAnswerIsIgnored(t *testing.T) {
	h, bot, sessions, quiz := newTestHandler(t)
	ctx := context.Background()

	h.handleUpdate(ctx, commandUpdate("/quiz"))
	correct := quiz.Questions[0].CorrectIndex
	wrong := (correct + 1) % entities.OptionCount

	h.handleUpdate(ctx, callbackUpdate(buildQuizAnswerCallback(1, wrong)))
	sentBefore := len(bot.sent)

	h.handleUpdate(ctx, callbackUpdate(buildQuizAnswerCallback(1, correct)))

	if got := bot.lastNotice(t); got != noticeAlreadyAnswered {
		t.Fatalf("notice = %q, want %q", got, noticeAlreadyAnswered)
	}
	if len(bot.sent) != sentBefore {
		t.Fatalf("repeated answer re-rendered the screen")
	}

	c, _ := sessions.Lookup(testChatID)
	if v := c.View(); v.Score != 0 || v.Selected != wrong {
		t.Fatalf("repeated answer changed session: %+v", v)
	}
}

func TestStaleCallbacksAreIgnored(t *testing.T) {
	h, bot, sessions, _ := newTestHandler(t)
	ctx := context.Background()

	h.handleUpdate(ctx, commandUpdate("/quiz"))

	for _, data := range []string{
		buildQuizNextCallback(1),      // advance while answering
		buildQuizAnswerCallback(2, 0), // question not reached yet
		"quiz:answer:x:1",
		"quiz:bogus",
	} {
		h.handleUpdate(ctx, callbackUpdate(data))
		if got := bot.lastNotice(t); got != noticeStale {
			t.Fatalf("%s: notice = %q, want %q", data, got, noticeStale)
		}
	}

	h.handleUpdate(ctx, callbackUpdate("quiz:start"))
	if got := bot.lastNotice(t); got != noticeAlreadyStarted {
		t.Fatalf("notice = %q, want %q", got, noticeAlreadyStarted)
	}

	c, _ := sessions.Lookup(testChatID)
	if v := c.View(); v.Phase != entities.PhaseAnswering || v.QuestionNumber != 1 || v.Score != 0 {
		t.Fatalf("stale callbacks mutated session: %+v", v)
	}
}

func TestCallbackForExpiredSessionShowsIntro(t *testing.T) {
	h, bot, sessions, _ := newTestHandler(t)

	h.handleUpdate(context.Background(), callbackUpdate(buildQuizNextCallback(3)))

	if got := bot.lastNotice(t); got != noticeExpired {
		t.Fatalf("notice = %q, want %q", got, noticeExpired)
	}
	if edit := bot.lastEdit(t); !strings.Contains(edit.Text, "JavaScript Fundamentals") {
		t.Fatalf("expected intro, got %q", edit.Text)
	}
	if _, ok := sessions.Lookup(testChatID); !ok {
		t.Fatalf("fresh session not created")
	}
}

func TestRestartCommandAbandonsPlayThrough(t *testing.T) {
	h, _, sessions, quiz := newTestHandler(t)
	ctx := context.Background()

	h.handleUpdate(ctx, commandUpdate("/quiz"))
	h.handleUpdate(ctx, callbackUpdate(buildQuizAnswerCallback(1, quiz.Questions[0].CorrectIndex)))
	h.handleUpdate(ctx, commandUpdate("/restart"))

	c, _ := sessions.Lookup(testChatID)
	if v := c.View(); v.Phase != entities.PhaseNotStarted || v.Score != 0 {
		t.Fatalf("restart left state: %+v", v)
	}
}

func TestPlainTextAndUnknownCommand(t *testing.T) {
	h, bot, _, _ := newTestHandler(t)
	ctx := context.Background()

	h.handleUpdate(ctx, tgbotapi.Update{Message: &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: testChatID},
		From: &tgbotapi.User{ID: 7},
		Text: "B",
	}})
	if got := bot.lastMessage(t).Text; got != msgUseButtons {
		t.Fatalf("text reply = %q", got)
	}

	h.handleUpdate(ctx, commandUpdate("/dance"))
	if got := bot.lastMessage(t).Text; got != msgUnknownCommand {
		t.Fatalf("unknown command reply = %q", got)
	}

	h.handleUpdate(ctx, commandUpdate("/help"))
	if got := bot.lastMessage(t).Text; got != msgHelp {
		t.Fatalf("help reply = %q", got)
	}
}

func textUpdate(text string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: testChatID},
		From: &tgbotapi.User{ID: 7},
		Text: text,
	}}
}

func TestTypedAnswerWhileAnswering(t *testing.T) {
	h, bot, sessions, quiz := newTestHandler(t)
	ctx := context.Background()

	h.handleUpdate(ctx, commandUpdate("/quiz"))

	h.handleUpdate(ctx, textUpdate("no idea"))
	if got := bot.lastMessage(t).Text; got != msgUnrecognizedAnswer {
		t.Fatalf("unmatched text reply = %q", got)
	}

	q := quiz.Questions[0]
	h.handleUpdate(ctx, textUpdate(optionLetter(q.CorrectIndex)))

	msg := bot.lastMessage(t)
	if !strings.Contains(msg.Text, esc(q.FeedbackCorrect)) {
		t.Fatalf("feedback missing from %q", msg.Text)
	}
	c, _ := sessions.Lookup(testChatID)
	if v := c.View(); v.Phase != entities.PhaseFeedback || v.Score != 1 {
		t.Fatalf("unexpected state after typed answer: %+v", v)
	}

	h.handleUpdate(ctx, textUpdate("A"))
	if got := bot.lastMessage(t).Text; got != msgUseButtons {
		t.Fatalf("text during feedback reply = %q", got)
	}
	if v := c.View(); v.Score != 1 || v.Selected != q.CorrectIndex {
		t.Fatalf("typed text during feedback changed state: %+v", v)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	h, bot, _, _ := newTestHandler(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- h.Run(ctx)
	}()

	bot.updates <- commandUpdate("/help")
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}

	if len(bot.sent) != 1 {
		t.Fatalf("expected one reply, got %d", len(bot.sent))
	}
}
