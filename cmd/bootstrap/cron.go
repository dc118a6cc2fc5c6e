package bootstrap

import (
	"context"
	"log/slog"

	"brewpoints/internal/pkg/config"
	"brewpoints/internal/usecase/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// CronModule runs the ledger reconciliation sweep on a schedule. The sweep
// is the recovery path for purchases that committed an order but lost every
// ledger compare-and-swap.
var CronModule = fx.Module("cron",
	fx.Invoke(StartReconcileCron),
)

func StartReconcileCron(lc fx.Lifecycle, cfg config.Config, reconcile commands.ReconcileCommands) error {
	schedule := cfg.Loyalty.ReconcileSchedule
	if schedule == "" {
		slog.Info("ledger reconciliation sweep disabled")
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		repaired, err := reconcile.ReconcileLedgers(context.Background())
		if err != nil {
			slog.Error("ledger reconciliation sweep failed", "error", err.Error())
			return
		}
		if repaired > 0 {
			slog.Info("ledger reconciliation sweep finished", "repaired", repaired)
		}
	})
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			slog.Info("ledger reconciliation sweep scheduled", "schedule", schedule)
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopped := c.Stop()
			select {
			case <-stopped.Done():
			case <-ctx.Done():
			}
			return nil
		},
	})

	return nil
}
