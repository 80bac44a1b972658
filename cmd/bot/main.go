package main

import (
	"context"
	"log"

	"go.uber.org/fx"

	"unwind_bot/internal/modules/config"
	"unwind_bot/internal/modules/gateway"
	gatewaywebsocket "unwind_bot/internal/modules/gateway_websocket"
	"unwind_bot/internal/modules/health"
	"unwind_bot/internal/modules/postgres"
	"unwind_bot/internal/notify"
	"unwind_bot/internal/runner"
	"unwind_bot/pkg/logger"
	"unwind_bot/pkg/tracing"
)

const serviceName = "unwind-bot"

func main() {
	logger.Init(serviceName)
	tracing.SetServiceName(serviceName)

	app := fx.New(
		fx.Provide(
			func() context.Context {
				return context.Background()
			},
			notify.NewTelegram,
		),
		config.Module(),
		postgres.Module(),
		gateway.Module(),
		health.Module(),
		gatewaywebsocket.Module(),
		runner.Module(),
		fx.Invoke(func(lc fx.Lifecycle, cfg *config.Config) error {
			if cfg.Tracing.Host == "" {
				return nil
			}
			_, closeTracer, err := tracing.InitTracer(tracing.Config{
				Host: cfg.Tracing.Host,
				Port: cfg.Tracing.Port,
			})
			if err != nil {
				return err
			}
			lc.Append(fx.Hook{
				OnStop: func(context.Context) error {
					closeTracer()
					return nil
				},
			})
			return nil
		}),
	)
	if err := app.Start(context.Background()); err != nil {
		log.Fatal(err)
	}
	<-app.Done()
}
