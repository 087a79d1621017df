package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ZVal returns the two-tailed Z-value associated with a specific confidence interval.
// The interval is a number from 0 to 100 percent.
func ZVal(confidenceInterval float64) float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: 1,
	}
	area := (1 + (confidenceInterval / 100)) / 2
	return dist.Quantile(area)
}

// WinRateInterval returns a normal-approximation confidence interval for a
// score rate, where a draw counts as half a win. The bounds are clamped to
// [0, 1].
func WinRateInterval(score float64, games int, confidenceInterval float64) (lo, hi float64) {
	if games == 0 {
		return 0, 1
	}
	p := score / float64(games)
	half := ZVal(confidenceInterval) * math.Sqrt(p*(1-p)/float64(games))
	return math.Max(0, p-half), math.Min(1, p+half)
}
