package main

import (
	"fmt"

	"github.com/osse101/CarloSlots_Go/internal/scenario"
	"github.com/osse101/CarloSlots_Go/internal/stats"
)

// printResult prints the full breakdown of one run
func printResult(r scenario.Result) {
	rep, a := r.Report, r.Analysis

	PrintHeader(fmt.Sprintf("%s (%d players, %d spins)", r.Name, r.Players, r.Spins))
	out.Printf("   Seed:             %d\n", r.Seed)
	out.Printf("   Accumulator cap:  %d\n", rep.AccumulatorCap)
	out.Printf("   Total wins:       %d (%s%%)\n", rep.TotalWins, a.WinRate)
	out.Printf("   Dead spins:       %d\n", rep.DeadSpins)
	out.Printf("   Max dead streak:  %d\n", rep.MaxDeadStreak)
	out.Printf("   Guardrail:        %d activations\n", rep.GuaranteeTriggers)
	out.Printf("   Suppressed:       %d forced dead, %d back-to-back allowed\n", rep.ForcedDead, rep.BackToBackAllowed)
	printRule("─")
	out.Printf("   CARLO jackpots:   %d\n", rep.Categories.Jackpot)
	out.Printf("   Wild matches:     %d\n", rep.Categories.WildMatch)
	out.Printf("   3-of-a-kind:      %d\n", rep.Categories.ThreeOfKind)
	out.Printf("   4-of-a-kind:      %d\n", rep.Categories.FourOfKind)
	out.Printf("   5-of-a-kind:      %d\n", rep.Categories.FiveOfKind)
	out.Printf("   Ignition wins:    %d (%s%% of wins, %s%% of spins)\n", rep.Categories.GuaranteedRelease, a.ReleaseShare, a.ReleaseRate)
	printRule("─")
	out.Printf("   Avg tickets:      %s\n", a.AvgTickets)
	out.Printf("   Avg accumulator:  %s\n", a.AvgAccumulator)
	out.Printf("   Players at cap:   %d\n", a.PlayersAtCap)
	printFairness(a.Fairness)
	fmt.Printf("   %s %s\n", a.Verdict.Symbol(), a.Verdict)

	for _, as := range r.Assertions {
		if as.Passed {
			PrintSuccess("%s %s", as.Path, as.Type)
		} else {
			PrintWarning("%s %s: %s", as.Path, as.Type, as.Error)
		}
	}
	if r.Error != "" {
		PrintError("%s", r.Error)
	}
}

func printFairness(f stats.Fairness) {
	out.Printf("   Wins per player:  avg %s, min %d, max %d, std-dev %s\n", f.AvgWins, f.MinWins, f.MaxWins, f.StdDev)
	out.Printf("   Fairness:         %s (lower is fairer)\n", f.Coefficient)
}

// printSweepRow prints one compact line per sweep cell
func printSweepRow(r scenario.Result) {
	rep, a := r.Report, r.Analysis
	check := "✓"
	if !a.Checks.Passed() {
		check = "✗"
	}
	out.Printf("%-28s players %2d  spins %7d  wins %6d (%5s%%)  dead %6d  CARLO %3d  wild %5d  ignition %5d  4oak %3d  5oak %3d  %s %s\n",
		truncate(r.ScenarioID, 28), r.Players, r.Spins,
		rep.TotalWins, a.WinRate, rep.DeadSpins,
		rep.Categories.Jackpot, rep.Categories.WildMatch, rep.Categories.GuaranteedRelease,
		rep.Categories.FourOfKind, rep.Categories.FiveOfKind,
		check, a.Verdict.Symbol())
}

// printExpectation prints the observed against expected comparison
func printExpectation(e stats.Expectation) {
	fmt.Println("PROBABILITY ANALYSIS:")
	printRule("─")
	out.Printf("CARLO expected:     ~%s (1/%s)\n", e.ExpectedJackpots, stats.OneIn(e.JackpotOdds))
	out.Printf("CARLO actual:       %d (%s%% variance)\n", e.ActualJackpots, signed(e.JackpotVariance.String()))
	out.Printf("Wild expected:      ~%s (1/%s)\n", e.ExpectedWild, stats.OneIn(e.WildOdds))
	out.Printf("Wild actual:        %d (%s%% variance)\n", e.ActualWild, signed(e.WildVariance.String()))
	printRule("═")
}

func signed(s string) string {
	if len(s) > 0 && s[0] != '-' {
		return "+" + s
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
