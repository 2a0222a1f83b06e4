package stats

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/CarloSlots_Go/internal/slots"
)

// Verdict grades an economy configuration from one run
type Verdict string

const (
	VerdictPileUp        Verdict = "TOO EASY - accumulator pile-up"
	VerdictTooManyPity   Verdict = "Too many guaranteed releases"
	VerdictTrendingToCap Verdict = "Trending toward accumulator cap"
	VerdictGood          Verdict = "GOOD BALANCE"
	VerdictModerate      Verdict = "Moderate balance"
)

// Symbol is the short marker printed next to a verdict
func (v Verdict) Symbol() string {
	switch v {
	case VerdictGood:
		return "✓"
	case VerdictModerate:
		return "~"
	default:
		return "!"
	}
}

// Checks are the pass/fail balance gates for a table size
type Checks struct {
	WinRate     bool `json:"win_rate"`
	ReleaseRate bool `json:"release_rate"`
	Fairness    bool `json:"fairness"`
}

// Passed reports whether every gate passed
func (c Checks) Passed() bool {
	return c.WinRate && c.ReleaseRate && c.Fairness
}

// Analysis is the derived view of a report
type Analysis struct {
	WinRate        decimal.Decimal `json:"win_rate"`         // percent of spins
	ReleaseShare   decimal.Decimal `json:"release_share"`    // percent of wins
	ReleaseRate    decimal.Decimal `json:"release_rate"`     // percent of spins
	AvgTickets     decimal.Decimal `json:"avg_tickets"`
	AvgAccumulator decimal.Decimal `json:"avg_accumulator"`
	PlayersAtCap   int             `json:"players_at_cap"`
	Fairness       Fairness        `json:"fairness"`
	Verdict        Verdict         `json:"verdict"`
	Checks         Checks          `json:"checks"`
}

// Analyze derives rates, fairness and a verdict from a run report
func Analyze(rep slots.Report) Analysis {
	releases := rep.Categories.GuaranteedRelease

	wins := make([]int, 0, len(rep.Players))
	tickets, acc := 0, 0
	for _, p := range rep.Players {
		wins = append(wins, p.Wins)
		tickets += p.TicketTotal
		acc += p.Accumulator
	}

	a := Analysis{
		WinRate:        Percent(rep.TotalWins, rep.TotalSpins, RatePlaces),
		ReleaseShare:   Percent(releases, rep.TotalWins, RatePlaces),
		ReleaseRate:    Percent(releases, rep.TotalSpins, RatePlaces),
		AvgTickets:     Ratio(tickets, len(rep.Players)).Round(0),
		AvgAccumulator: Ratio(acc, len(rep.Players)).Round(RatePlaces),
		PlayersAtCap:   rep.PlayersAtCap(),
		Fairness:       FairnessOf(wins),
	}
	a.Verdict = verdict(rep, a)
	a.Checks = Checks{
		WinRate:     a.WinRate.GreaterThanOrEqual(decimal.NewFromInt(WinRateMinPercent)) && a.WinRate.LessThanOrEqual(decimal.NewFromInt(WinRateMaxPercent)),
		ReleaseRate: a.ReleaseRate.LessThanOrEqual(decimal.NewFromInt(ReleaseRateMaxPercent)),
		Fairness:    a.Fairness.Coefficient.LessThan(decimal.RequireFromString(FairnessMax)),
	}
	return a
}

func verdict(rep slots.Report, a Analysis) Verdict {
	releaseShare := Ratio(rep.Categories.GuaranteedRelease, rep.TotalWins)
	capacity := decimal.NewFromInt(int64(rep.AccumulatorCap))

	switch {
	case a.PlayersAtCap >= PileUpPlayers:
		return VerdictPileUp
	case releaseShare.GreaterThan(decimal.RequireFromString(TooManyReleasesShare)):
		return VerdictTooManyPity
	case a.AvgAccumulator.GreaterThan(capacity.Mul(decimal.RequireFromString(TrendingCapShare))):
		return VerdictTrendingToCap
	case releaseShare.LessThan(decimal.RequireFromString(GoodReleasesShare)) &&
		a.AvgAccumulator.LessThan(capacity.Mul(decimal.RequireFromString(GoodCapShare))):
		return VerdictGood
	default:
		return VerdictModerate
	}
}
