package stats

import (
	"math"

	"github.com/shopspring/decimal"
)

// Fairness describes how evenly wins spread across players
type Fairness struct {
	Players     int             `json:"players"`
	AvgWins     decimal.Decimal `json:"avg_wins"`
	MinWins     int             `json:"min_wins"`
	MaxWins     int             `json:"max_wins"`
	StdDev      decimal.Decimal `json:"std_dev"`
	Coefficient decimal.Decimal `json:"coefficient"` // std-dev over mean; lower is fairer
}

// FairnessOf summarizes a per-player win distribution. An empty distribution
// or one without wins has a zero coefficient.
func FairnessOf(wins []int) Fairness {
	f := Fairness{Players: len(wins), AvgWins: decimal.Zero, StdDev: decimal.Zero, Coefficient: decimal.Zero}
	if len(wins) == 0 {
		return f
	}

	sum := 0
	f.MinWins, f.MaxWins = wins[0], wins[0]
	for _, w := range wins {
		sum += w
		f.MinWins = min(f.MinWins, w)
		f.MaxWins = max(f.MaxWins, w)
	}
	mean := float64(sum) / float64(len(wins))

	variance := 0.0
	for _, w := range wins {
		d := float64(w) - mean
		variance += d * d
	}
	stdDev := math.Sqrt(variance / float64(len(wins)))

	f.AvgWins = decimal.NewFromFloat(mean).Round(AvgWinsPlaces)
	f.StdDev = decimal.NewFromFloat(stdDev).Round(StdDevPlaces)
	if sum > 0 {
		f.Coefficient = decimal.NewFromFloat(stdDev / mean).Round(FairnessPlaces)
	}
	return f
}
