package engine

import (
	"math"

	"unwind_bot/internal/models"
)

// Tranches is the resolved target for one contract: a single side and the
// absolute quantities for the aggressor and originator builders, both already
// rounded to the exchange's 0.1 granularity.
type Tranches struct {
	Side       models.Side
	Aggressor  float64
	Originator float64
}

// Resolve combines the signaled imbalance, the already-traded net position
// and the trade factor into tranche quantities and a side.
//
// The aggressor tranche only activates once the factor exceeds 0.1, so the
// very first 10% slice is always worked passively.
func Resolve(imbalance, netPos, factor float64) Tranches {
	aggImbalance := 0.0
	if f := factor - 0.1; f > 0 {
		aggImbalance = imbalance * f
	}
	origImbalance := 0.0
	if factor > 0 {
		origImbalance = imbalance * factor
	}

	aggOpen := aggImbalance + netPos
	origOpen := origImbalance - aggImbalance

	var side models.Side
	switch {
	case aggOpen >= 0 && origOpen >= 0:
		side = models.SideSell
	case aggOpen <= 0 && origOpen <= 0:
		side = models.SideBuy
	default:
		// Crossed signs mean the imbalance reversed abruptly. Close the whole
		// gap aggressively instead of splitting it.
		aggOpen += origOpen
		origOpen = 0
		if aggOpen > 0 {
			side = models.SideSell
		} else {
			side = models.SideBuy
		}
	}

	return Tranches{
		Side:       side,
		Aggressor:  math.Abs(round1(aggOpen)),
		Originator: math.Abs(round1(origOpen)),
	}
}

// round1 rounds to one decimal, the exchange's quantity granularity.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
