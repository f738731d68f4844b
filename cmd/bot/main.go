package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/snarky-quiz/internal/config"
	"github.com/aliskhannn/snarky-quiz/internal/delivery/telegram"
	"github.com/aliskhannn/snarky-quiz/internal/logger"
	"github.com/aliskhannn/snarky-quiz/internal/repository"
	"github.com/aliskhannn/snarky-quiz/internal/service"
	"github.com/aliskhannn/snarky-quiz/internal/storage"
)

func main() {
	cfg, err := config.Load(config.RequireTelegramToken())
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	quizRepo, err := repository.NewQuizRepository(cfg.QuizPath)
	if err != nil {
		lg.Fatal("failed to load quiz", zap.String("path", cfg.QuizPath), zap.Error(err))
	}
	quiz := quizRepo.Get()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}
	bot.Debug = cfg.Telegram.Debug

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Show the quiz intro",
		},
		{
			Command:     "quiz",
			Description: "Start a fresh play-through",
		},
		{
			Command:     "restart",
			Description: "Abandon the current play-through",
		},
		{
			Command:     "help",
			Description: "Help",
		},
	}

	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	lg.Info("authorized",
		zap.String("account", bot.Self.UserName),
		zap.Int("questions", quiz.Len()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessions := storage.NewSessionStorage(quiz)
	sweeper := service.NewSweeperService(sessions, cfg.Session.SweepSchedule, cfg.Session.IdleTTL, lg)
	handler := telegram.NewHandler(bot, lg, quiz, sessions, cfg.Telegram.UpdatesTimeout)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sweeper.Start(gctx)
	})
	g.Go(func() error {
		defer bot.StopReceivingUpdates()
		return handler.Run(gctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("bot stopped with error", zap.Error(err))
		return
	}

	lg.Info("shutdown signal received")
}
