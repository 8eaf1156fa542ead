package app

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"leetcode-digest/internal/domain/ports"
	"leetcode-digest/internal/usecase"
)

// Schedule is a standard 5-field cron expression.
type Schedule string

// Digest is the unit of work run once or on every tick.
type Digest interface {
	Run(ctx context.Context) (usecase.Result, error)
}

// App manages the lifecycle of the daily digest: a single pass or a cron scheduler.
type App struct {
	cron       *cron.Cron
	digest     Digest
	logger     ports.Logger
	schedule   Schedule
	runTimeout time.Duration
}

// New constructs an App instance.
func New(digest *usecase.DailyDigest, logger ports.Logger, schedule Schedule) *App {
	return newApp(digest, logger, schedule)
}

func newApp(digest Digest, logger ports.Logger, schedule Schedule) *App {
	return &App{
		// SkipIfStillRunning keeps ticks from racing on the sent log.
		cron:       cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		digest:     digest,
		logger:     logger,
		schedule:   schedule,
		runTimeout: 30 * time.Minute,
	}
}

// RunOnce executes a single digest pass, the mode used from an external cron.
func (a *App) RunOnce(ctx context.Context) error {
	result, err := a.digest.Run(ctx)
	if err != nil {
		return err
	}
	if len(result.Sent) == 0 {
		a.logger.Info(ctx, "nothing sent", "run_id", result.RunID)
	}
	return nil
}

// Run schedules the digest and blocks until ctx is cancelled. Failed ticks are
// logged and the scheduler keeps going.
func (a *App) Run(ctx context.Context) error {
	if err := a.scheduleJob(); err != nil {
		return err
	}

	a.logger.Info(ctx, "starting scheduler", "cron", string(a.schedule))
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}

func (a *App) scheduleJob() error {
	_, err := a.cron.AddFunc(string(a.schedule), func() {
		ctx, cancel := context.WithTimeout(context.Background(), a.runTimeout)
		defer cancel()
		if _, err := a.digest.Run(ctx); err != nil {
			a.logger.Error(ctx, "scheduled digest run failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", a.schedule, err)
	}
	return nil
}
