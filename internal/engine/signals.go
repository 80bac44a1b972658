package engine

import "unwind_bot/internal/models"

// SignalValue scans the contract's signal set for the first entry whose
// source matches and whose value map contains key. Signal sets are small and
// set-once per run, so the first match is the match.
func SignalValue(c *models.Contract, source, key string) (float64, bool) {
	if c == nil {
		return 0, false
	}
	for _, s := range c.Signals {
		if s.Source != source {
			continue
		}
		if v, ok := s.Value[key]; ok {
			return v, true
		}
	}
	return 0, false
}

// Imbalance returns long minus short from the dedicated POSITION signal.
// Positive imbalance is excess long that needs to be sold. Defaults to 0 so
// downstream arithmetic always has a defined operand.
func Imbalance(c *models.Contract) float64 {
	if c == nil {
		return 0
	}
	for _, s := range c.Signals {
		if s.Source == models.SourcePosition {
			return s.PositionLong - s.PositionShort
		}
	}
	return 0
}
