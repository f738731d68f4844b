package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// IdleEvictor discards sessions that have been idle for too long.
type IdleEvictor interface {
	EvictIdle(ttl time.Duration) []int64
}

// SweeperService periodically discards idle chat sessions.
type SweeperService struct {
	sessions IdleEvictor
	schedule string
	ttl      time.Duration
	logger   *zap.Logger
}

// NewSweeperService creates a new sweeper. schedule is a cron spec such as "@every 10m".
func NewSweeperService(sessions IdleEvictor, schedule string, ttl time.Duration, logger *zap.Logger) *SweeperService {
	return &SweeperService{
		sessions: sessions,
		schedule: schedule,
		ttl:      ttl,
		logger:   logger,
	}
}

// Start runs the sweeper until ctx is cancelled.
func (s *SweeperService) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	if _, err := c.AddFunc(s.schedule, s.Sweep); err != nil {
		return fmt.Errorf("add sweep job %q: %w", s.schedule, err)
	}

	c.Start()
	s.logger.Info("session sweeper started",
		zap.String("schedule", s.schedule),
		zap.Duration("idle_ttl", s.ttl),
	)

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("session sweeper stopped")
	return nil
}

// Sweep evicts idle sessions once.
func (s *SweeperService) Sweep() {
	evicted := s.sessions.EvictIdle(s.ttl)
	if len(evicted) == 0 {
		return
	}

	s.logger.Info("idle sessions discarded", zap.Int("count", len(evicted)))
	for _, chatID := range evicted {
		s.logger.Debug("session discarded", zap.Int64("chat_id", chatID))
	}
}
