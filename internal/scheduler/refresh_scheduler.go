package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/navjivan/navjivan-backend/internal/store"
	"github.com/navjivan/navjivan-backend/pkg/logger"
)

// RefreshScheduler periodically refetches the whole content mirror, as a
// safety net for change notifications that got lost.
type RefreshScheduler struct {
	cron     *cron.Cron
	store    *store.Store
	interval time.Duration
}

func NewRefreshScheduler(contentStore *store.Store, interval time.Duration) *RefreshScheduler {
	return &RefreshScheduler{
		cron:     cron.New(),
		store:    contentStore,
		interval: interval,
	}
}

func (s *RefreshScheduler) Start() error {
	spec := fmt.Sprintf("@every %s", s.interval)
	_, err := s.cron.AddFunc(spec, func() {
		logger.Debug("Starting scheduled content refresh", nil)
		s.store.RefreshAll(context.Background())
		logger.Debug("Scheduled content refresh finished", nil)
	})

	if err != nil {
		logger.Error("Failed to add cron job for content refresh", err)
		return err
	}

	s.cron.Start()
	logger.Info("Content refresh scheduler started", map[string]interface{}{
		"interval": s.interval.String(),
	})

	return nil
}

func (s *RefreshScheduler) Stop() {
	logger.Info("Stopping content refresh scheduler...", nil)
	s.cron.Stop()
	logger.Info("Content refresh scheduler stopped", nil)
}
