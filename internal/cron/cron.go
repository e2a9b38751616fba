package cron

import (
	"context"

	"hrms/internal/cron/job"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron, job.NewMissedCheckoutJob)

type Cron struct {
	logger            *zap.Logger
	server            *cron.Cron
	missedCheckoutJob *job.MissedCheckoutJob
}

// NewCron .
func NewCron(logger *zap.Logger, missedCheckoutJob *job.MissedCheckoutJob) *Cron {
	server := cron.New(
		cron.WithSeconds(),
	)

	return &Cron{
		logger:            logger,
		server:            server,
		missedCheckoutJob: missedCheckoutJob,
	}
}

func (c *Cron) Run() error {
	// 每日 00:15 掃描前一天忘簽退的出勤紀錄
	if _, err := c.server.AddFunc("0 15 0 * * *", c.missedCheckoutJob.Run); err != nil {
		return err
	}

	c.server.Start()
	return nil
}

func (c *Cron) Stop(ctx context.Context) error {
	stopCtx := c.server.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}
