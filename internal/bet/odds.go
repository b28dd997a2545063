package bet

import "math"

// ComputeOdds returns the ratio of the larger pool to the smaller one,
// rounded to two decimals. A defined ratio is always >= 1. When either
// pool is empty it returns 0, a sentinel meaning "no valid ratio" —
// cashout skips the multiplicative step on 0, it is never a real ratio.
func ComputeOdds(a, b *Team) float64 {
	sumA := float64(a.Sum())
	sumB := float64(b.Sum())
	if sumA > 0 && sumB > 0 {
		return math.Round(math.Max(sumA, sumB)/math.Min(sumA, sumB)*100) / 100
	}
	return 0
}

// lockOdds derives the display pair shown while a round is in progress.
// The leading side shows the ratio and the trailing side shows 1; with
// no bets at all both show 0. These are telemetry only — settlement
// recomputes against the stored odds value.
func lockOdds(odds float64, sumRed, sumBlue int) (red, blue float64) {
	if sumRed == 0 && sumBlue == 0 {
		return 0, 0
	}
	if sumRed > sumBlue {
		if odds == 0 {
			return 1, 0
		}
		return odds, 1
	}
	if odds == 0 {
		return 0, 1
	}
	return 1, odds
}
