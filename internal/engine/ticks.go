package engine

import "math"

// Level keys are integer ticks so that equal prices always land on the
// same level; float keys would fragment levels on rounding noise. These
// helpers convert real-valued prices at the boundary.

func PriceToTicks(price, tick float64) int64 {
	if tick == 0.0 {
		return 0
	}
	return int64(math.Round(price / tick))
}

func TicksToPrice(ticks int64, tick float64) float64 {
	return float64(ticks) * tick
}
