package stats

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/CarloSlots_Go/internal/domain"
	"github.com/osse101/CarloSlots_Go/internal/slots"
)

// Expectation compares observed jackpot and wild-match counts with what the
// balancer's odds predict for a fixed table size. Wild matches are measured
// against the wild spawn odds, so spawned wilds that complete no window show
// up as negative wild variance.
type Expectation struct {
	ActivePlayers int `json:"active_players"`

	JackpotOdds      decimal.Decimal `json:"jackpot_odds"`
	ExpectedJackpots decimal.Decimal `json:"expected_jackpots"`
	ActualJackpots   int             `json:"actual_jackpots"`
	JackpotVariance  decimal.Decimal `json:"jackpot_variance"` // percent

	WildOdds     decimal.Decimal `json:"wild_odds"`
	ExpectedWild decimal.Decimal `json:"expected_wild"`
	ActualWild   int             `json:"actual_wild"`
	WildVariance decimal.Decimal `json:"wild_variance"` // percent
}

// Expect evaluates a report against the balance for its active player count
func Expect(rep slots.Report) Expectation {
	b := slots.BalanceFor(rep.ActivePlayers)
	spins := decimal.NewFromInt(int64(rep.TotalSpins))

	jackpotOdds := decimal.NewFromFloat(b.LetterOdds).Pow(decimal.NewFromInt(domain.ReelCount))
	wildOdds := decimal.NewFromFloat(b.WildOdds)

	e := Expectation{
		ActivePlayers:    rep.ActivePlayers,
		JackpotOdds:      jackpotOdds,
		ExpectedJackpots: jackpotOdds.Mul(spins).Round(ExpectationPlaces),
		ActualJackpots:   rep.Categories.Jackpot,
		WildOdds:         wildOdds,
		ExpectedWild:     wildOdds.Mul(spins).Round(0),
		ActualWild:       rep.Categories.WildMatch,
	}
	e.JackpotVariance = variance(rep.Categories.Jackpot, jackpotOdds.Mul(spins))
	e.WildVariance = variance(rep.Categories.WildMatch, wildOdds.Mul(spins))
	return e
}

// OneIn expresses odds as "1 in N"
func OneIn(odds decimal.Decimal) decimal.Decimal {
	if odds.IsZero() {
		return decimal.Zero
	}
	return decimal.NewFromInt(1).Div(odds).Round(0)
}

func variance(actual int, expected decimal.Decimal) decimal.Decimal {
	if expected.IsZero() {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(actual)).Sub(expected).Div(expected).Mul(hundred).Round(ExpectationPlaces)
}
