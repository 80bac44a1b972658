package engine

import (
	"context"
	"time"

	"github.com/bytedance/sonic"

	"unwind_bot/internal/models"
	"unwind_bot/pkg/logger"
)

// DefaultSignalSource is the source the valuation signals (price bounds,
// margin, spread limit, fair value) are submitted under.
const DefaultSignalSource = "OptSystem"

// Signal keys read from the valuation source.
const (
	keyMaxPrice  = "max_price"
	keyMinPrice  = "min_price"
	keyMaxSpread = "max_spread"
	keyMargin    = "margin"
	keyFairValue = "fair_value"
)

type Config struct {
	PortfolioID  string
	DeliveryArea string
	AlgoID       string
	SignalSource string
}

// BookFetcher provides the public depth for a single contract. The engine
// only pulls it when the aggressor tranche is actually in play.
type BookFetcher interface {
	GetOrders(ctx context.Context, contractID, deliveryArea string) (models.PublicOrderBook, error)
}

// Engine computes the order intents that unwind the signaled position of one
// contract. It holds no mutable state; every Compute call works off the
// contract snapshot it is handed.
type Engine struct {
	cfg   Config
	books BookFetcher
}

func New(cfg Config, books BookFetcher) *Engine {
	if cfg.SignalSource == "" {
		cfg.SignalSource = DefaultSignalSource
	}
	return &Engine{cfg: cfg, books: books}
}

// Compute runs the full per-contract pipeline: trade factor, side/quantity
// resolution, aggressor book walk and originator order. Contracts at or
// beyond the trading window produce nothing. The only error source is the
// public book fetch; every data-sparsity condition degrades to fewer intents.
func (e *Engine) Compute(ctx context.Context, c *models.Contract, now time.Time) ([]models.OrderIntent, error) {
	timeToDelivery := c.DeliveryStart.Sub(now)
	if timeToDelivery >= TradingWindow {
		return nil, nil
	}

	imbalance := Imbalance(c)
	netPos := c.NetPos(e.cfg.PortfolioID)
	factor := TradeFactor(timeToDelivery)
	tranches := Resolve(imbalance, netPos, factor)

	var intents []models.OrderIntent

	if tranches.Aggressor != 0 {
		agg, err := e.buildAggressor(ctx, c, tranches)
		if err != nil {
			return nil, err
		}
		intents = append(intents, agg...)
	}

	if tranches.Originator != 0 {
		if intent, ok := e.buildOriginator(c, tranches); ok {
			intents = append(intents, intent)
		}
	}

	if len(intents) > 0 {
		logger.Info("contract %s: side=%s agg=%.1f orig=%.1f factor=%.1f -> %d intents",
			c.ContractID, tranches.Side, tranches.Aggressor, tranches.Originator, factor, len(intents))
	}

	return intents, nil
}

func (e *Engine) newIntent(contractID string, side models.Side, quantity, price float64, role string) models.OrderIntent {
	tag, _ := sonic.Marshal(models.OrderTag{Type: role, AlgoID: e.cfg.AlgoID})
	return models.OrderIntent{
		ContractID:       contractID,
		PortfolioID:      e.cfg.PortfolioID,
		DeliveryArea:     e.cfg.DeliveryArea,
		ClearingAcctType: "P",
		ExecRestriction:  "NON",
		ValidityRes:      "GFS",
		State:            "ACTI",
		Side:             side,
		Quantity:         quantity,
		Price:            price,
		Txt:              string(tag),
	}
}
