package engine

import "time"

const (
	// DeliveryOffset is how long before delivery start the full imbalance is
	// authorized for trading.
	DeliveryOffset = 30 * time.Minute
	// TradingWindow is how long before delivery start a contract becomes
	// tradable at all.
	TradingWindow = 3 * time.Hour

	factorSlot = 15 * time.Minute
)

// TradeFactor maps time-to-delivery into the fraction of the imbalance the
// engine may act on right now. The result is a staircase: 0.0 at and beyond
// the trading window, 1.0 at and below the offset, and in between it gains
// 0.1 for every completed 15-minute slot as delivery approaches.
func TradeFactor(timeToDelivery time.Duration) float64 {
	if timeToDelivery <= DeliveryOffset {
		return 1.0
	}
	if timeToDelivery >= TradingWindow {
		return 0.0
	}
	remainingSlots := int((timeToDelivery - DeliveryOffset) / factorSlot)
	return float64(10-remainingSlots) / 10
}
