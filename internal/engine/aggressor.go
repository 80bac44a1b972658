package engine

import (
	"context"
	"sort"

	"unwind_bot/internal/models"
)

// buildAggressor walks the public depth from the best price outward and takes
// liquidity until the aggressor tranche is filled or the signaled price bound
// is reached. One intent per price level touched, each at the level's own
// price. Missing spread, spread limit or price bound means no aggressor
// intents at all.
func (e *Engine) buildAggressor(ctx context.Context, c *models.Contract, tr Tranches) ([]models.OrderIntent, error) {
	spread, ok := c.Spread()
	if !ok || spread == 0 {
		return nil, nil
	}
	maxSpread, ok := SignalValue(c, e.cfg.SignalSource, keyMaxSpread)
	if !ok || spread >= maxSpread {
		return nil, nil
	}

	boundKey := keyMinPrice
	if tr.Side == models.SideBuy {
		boundKey = keyMaxPrice
	}
	bound, ok := SignalValue(c, e.cfg.SignalSource, boundKey)
	if !ok {
		return nil, nil
	}

	book, err := e.books.GetOrders(ctx, c.ContractID, e.cfg.DeliveryArea)
	if err != nil {
		return nil, err
	}

	// The gateway returns the depth unsorted. A BUY consumes asks from the
	// lowest price up, a SELL consumes bids from the highest price down.
	var entries []models.PublicOrderBookEntry
	if tr.Side == models.SideBuy {
		entries = append(entries, book.Ask...)
		sort.Slice(entries, func(i, j int) bool { return entries[i].Price < entries[j].Price })
	} else {
		entries = append(entries, book.Bid...)
		sort.Slice(entries, func(i, j int) bool { return entries[i].Price > entries[j].Price })
	}

	var intents []models.OrderIntent
	total := 0.0
	for _, entry := range entries {
		if total >= tr.Aggressor {
			break
		}
		if tr.Side == models.SideBuy && entry.Price > bound {
			break
		}
		if tr.Side == models.SideSell && entry.Price < bound {
			break
		}

		quantity := tr.Aggressor - total
		if entry.Quantity < quantity {
			quantity = entry.Quantity
		}
		intents = append(intents, e.newIntent(c.ContractID, tr.Side, quantity, entry.Price, models.RoleAggressor))
		total += quantity
	}

	return intents, nil
}
