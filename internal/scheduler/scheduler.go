package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/stevebarrettsrha-ops/Asset-Dashboard/internal/config"
	"github.com/stevebarrettsrha-ops/Asset-Dashboard/internal/service/snapshot"
)

// Scheduler runs the periodic audit snapshot job.
type Scheduler struct {
	cron        *cron.Cron
	snapshotSvc *snapshot.Service
	cfg         config.SnapshotConfig
	logger      *zap.Logger
}

// NewScheduler creates a new scheduler instance. The snapshot job fires on the
// configured cron schedule, interpreted in the configured timezone when it
// resolves; otherwise the process-local timezone applies.
func NewScheduler(cfg config.SnapshotConfig, snapshotSvc *snapshot.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []cron.Option{}
	if loc, err := time.LoadLocation(cfg.Timezone); err == nil {
		opts = append(opts, cron.WithLocation(loc))
	} else {
		logger.Warn("invalid timezone, falling back to local", zap.String("timezone", cfg.Timezone), zap.Error(err))
	}

	return &Scheduler{
		cron:        cron.New(opts...),
		snapshotSvc: snapshotSvc,
		cfg:         cfg,
		logger:      logger,
	}
}

// Start registers the snapshot job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.takeSnapshot); err != nil {
		s.logger.Error("failed to schedule snapshot job", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) takeSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if _, err := s.snapshotSvc.TakeSnapshot(ctx, time.Now()); err != nil {
		s.logger.Error("failed to take audit snapshot", zap.Error(err))
	}
}
