package gatewaywebsocket

import (
	"context"

	"go.uber.org/fx"

	"unwind_bot/internal/modules/config"
	"unwind_bot/internal/modules/gateway_websocket/service"
)

func Module() fx.Option {
	return fx.Module("gateway_websocket",
		fx.Provide(
			service.NewClient,
		),
		fx.Invoke(func(lc fx.Lifecycle, ctx context.Context, cfg *config.Config, c *service.Client) {
			if !cfg.Websocket.Enabled {
				return
			}
			wsCtx, cancel := context.WithCancel(ctx)
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					go c.Run(wsCtx)
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
