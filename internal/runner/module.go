package runner

import (
	"context"
	"time"

	"go.uber.org/fx"

	"unwind_bot/internal/engine"
	"unwind_bot/internal/modules/config"
	"unwind_bot/internal/modules/gateway/service"
	healthsvc "unwind_bot/internal/modules/health/service"
	"unwind_bot/internal/notify"
	"unwind_bot/pkg/logger"
)

func Module() fx.Option {
	return fx.Module("runner",
		fx.Provide(
			NewAudit,
			func(cfg *config.Config, gw *service.Client) *engine.Engine {
				return engine.New(engine.Config{
					PortfolioID:  cfg.Trading.PortfolioID,
					DeliveryArea: cfg.Trading.DeliveryArea,
					AlgoID:       cfg.Trading.AlgoID,
					SignalSource: cfg.Trading.SignalSource,
				}, gw)
			},
			func(cfg *config.Config, gw *service.Client, eng *engine.Engine, n *notify.Telegram, audit *Audit, state *healthsvc.State) *Runner {
				return New(cfg, gw, eng, n, audit, state)
			},
		),
		fx.Invoke(func(lc fx.Lifecycle, ctx context.Context, cfg *config.Config, r *Runner, state *healthsvc.State) {
			runCtx, cancel := context.WithCancel(ctx)
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					state.SetReady(true)
					go r.loop(runCtx, cfg.Trading.RunInterval)
					return nil
				},
				OnStop: func(context.Context) error {
					cancel()
					return nil
				},
			})
		}),
	)
}

// loop fires RunOnce on every interval boundary (quarter hours by default).
// Runs are strictly sequential: the next tick waits for the previous run to
// return.
func (r *Runner) loop(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	for {
		next := time.Now().Truncate(interval).Add(interval)
		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
		if err := r.RunOnce(ctx); err != nil {
			logger.Error("scheduled run failed, next cycle in %s: %v", interval, err)
		}
	}
}
