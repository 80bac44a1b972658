package engine

import "unwind_bot/internal/models"

// buildOriginator prices the single resting order for the passive tranche:
// one margin step past the touch, clamped to the signaled bound, falling back
// to fair value when the touch is empty. No derivable price, no order.
func (e *Engine) buildOriginator(c *models.Contract, tr Tranches) (models.OrderIntent, bool) {
	margin, _ := SignalValue(c, e.cfg.SignalSource, keyMargin)

	var price float64
	switch {
	case tr.Side == models.SideBuy && c.BestBidPrice != nil:
		price = *c.BestBidPrice + margin
		if maxPrice, ok := SignalValue(c, e.cfg.SignalSource, keyMaxPrice); ok && price > maxPrice {
			price = maxPrice
		}
	case tr.Side == models.SideSell && c.BestAskPrice != nil:
		price = *c.BestAskPrice - margin
		if minPrice, ok := SignalValue(c, e.cfg.SignalSource, keyMinPrice); ok && price < minPrice {
			price = minPrice
		}
	default:
		fairValue, ok := SignalValue(c, e.cfg.SignalSource, keyFairValue)
		if !ok {
			return models.OrderIntent{}, false
		}
		price = fairValue
	}

	return e.newIntent(c.ContractID, tr.Side, tr.Originator, price, models.RoleOriginator), true
}
