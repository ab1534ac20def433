package reconcile

import (
	"context"

	"go-hms/internal/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Scheduler runs the occupancy reconciliation on a fixed cron schedule,
// nightly by default.
type Scheduler struct {
	cron    *cron.Cron
	service Service
	logger  *zap.Logger
}

func NewScheduler(lc fx.Lifecycle, service Service, cfg *config.Config, logger *zap.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(),
		service: service,
		logger:  logger,
	}

	_, err := s.cron.AddFunc(cfg.ReconcileSchedule, func() {
		fixed, err := s.service.ReconcileOccupancy(context.Background())
		if err != nil {
			s.logger.Error("scheduled occupancy reconciliation failed", zap.Error(err))
			return
		}
		s.logger.Info("scheduled occupancy reconciliation finished", zap.Int("roomsFixed", fixed))
	})
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.cron.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.cron.Stop()
			return nil
		},
	})

	return s, nil
}
