package gateway

import (
	"go.uber.org/fx"

	"unwind_bot/internal/modules/config"
	"unwind_bot/internal/modules/gateway/service"
)

func Module() fx.Option {
	return fx.Module("gateway",
		fx.Provide(
			func(cfg *config.Config) *service.Client {
				return service.NewClient(cfg.Gateway.Host, cfg.Gateway.APIKey)
			},
		),
	)
}
