// Operator tool: builds a day of quarter-hour position and valuation signals
// and submits them to the gateway. The engine consumes these on its next run.
package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"unwind_bot/internal/models"
	"unwind_bot/internal/modules/gateway/service"
)

const quarterHours = 96

func main() {
	viper.SetConfigName("signals")
	viper.AddConfigPath("configs")
	viper.SetDefault("signal_source", "OptSystem")
	viper.SetDefault("position_long", 0.0)
	viper.SetDefault("position_short", 7.5)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(errors.Wrap(err, "read signals config"))
	}

	host := viper.GetString("gateway.host")
	apiKey := viper.GetString("gateway.api_key")
	portfolioID := viper.GetString("portfolio_id")
	deliveryArea := viper.GetString("delivery_area")
	if host == "" || apiKey == "" || portfolioID == "" || deliveryArea == "" {
		log.Fatal("signals config needs gateway.host, gateway.api_key, portfolio_id and delivery_area")
	}

	signals := buildSignals(
		viper.GetString("signal_source"),
		viper.GetFloat64("position_long"),
		viper.GetFloat64("position_short"),
		portfolioID,
		deliveryArea,
	)

	client := service.NewClient(host, apiKey)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := client.UpdateSignals(ctx, signals); err != nil {
		log.Fatal(errors.Wrap(err, "update signals"))
	}
	log.Printf("submitted %d signals for %s/%s", len(signals), portfolioID, deliveryArea)
}

// buildSignals emits a position pair and a valuation set for every quarter
// hour of the current UTC day. Valuation values are randomized demo inputs,
// same ranges the exchange sandbox uses.
func buildSignals(source string, positionLong, positionShort float64, portfolioID, deliveryArea string) []models.BulkSignal {
	deliveryStart := time.Now().UTC().Truncate(24 * time.Hour)

	signals := make([]models.BulkSignal, 0, 2*quarterHours)
	for i := 0; i < quarterHours; i++ {
		deliveryEnd := deliveryStart.Add(15 * time.Minute)
		start := deliveryStart.Format("2006-01-02T15:04:05Z")
		end := deliveryEnd.Format("2006-01-02T15:04:05Z")

		signals = append(signals, models.BulkSignal{
			Source:        models.SourcePosition,
			DeliveryStart: start,
			DeliveryEnd:   end,
			PortfolioIDs:  []string{portfolioID},
			DeliveryAreas: []string{deliveryArea},
			PositionLong:  positionLong,
			PositionShort: positionShort,
		})

		signals = append(signals, models.BulkSignal{
			Source:        source,
			DeliveryStart: start,
			DeliveryEnd:   end,
			PortfolioIDs:  []string{portfolioID},
			DeliveryAreas: []string{deliveryArea},
			Value: map[string]float64{
				"fair_value": randRange(30, 60),
				"margin":     randRange(0, 1),
				"max_spread": randRange(20, 30),
				"max_price":  randRange(100, 150),
				"min_price":  randRange(0, 10),
			},
		})

		deliveryStart = deliveryEnd
	}
	return signals
}

func randRange(lo, hi float64) float64 {
	return float64(int((lo+rand.Float64()*(hi-lo))*100)) / 100
}
