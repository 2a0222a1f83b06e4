package slots

// The balancer maps the active player count to per-spin odds and thresholds.
// Every function is pure; callers recompute from the current active count on
// each spin because players may change status mid-run.

// LetterOdds is the chance that a reel shows its fixed CARLO letter.
// Larger tables make letters rarer so player symbols dominate the pool.
func LetterOdds(activePlayers int) float64 {
	switch {
	case activePlayers <= 3:
		return 1.0 / 75
	case activePlayers <= 5:
		return 1.0 / 85
	case activePlayers <= 10:
		return 1.0 / 95
	case activePlayers <= 20:
		return 1.0 / 110
	case activePlayers <= 35:
		return 1.0 / 130
	default:
		return 1.0 / 150
	}
}

// WildOdds is the chance that a spin contains the Luna wild.
// It rises with the table size to offset dilution.
func WildOdds(activePlayers int) float64 {
	switch {
	case activePlayers <= 5:
		return 1.0 / 30
	case activePlayers <= 10:
		return 1.0 / 25
	case activePlayers <= 20:
		return 1.0 / 20
	case activePlayers <= 35:
		return 1.0 / 15
	default:
		return 1.0 / 12
	}
}

// MaxDeadStreak is the longest tolerated run of non-winning spins before the
// guardrail forces a win.
func MaxDeadStreak(activePlayers int) int {
	switch {
	case activePlayers <= 3:
		return 12
	case activePlayers <= 5:
		return 8
	case activePlayers <= 10:
		return 6
	default:
		return 5
	}
}

// IgnitionCooldown is the minimum number of spins between two guaranteed releases.
func IgnitionCooldown(activePlayers int) int {
	switch {
	case activePlayers <= 3:
		return 0
	case activePlayers <= 5:
		return 1
	case activePlayers <= 10:
		return 2
	case activePlayers <= 20:
		return 3
	default:
		return 4
	}
}

// Balance bundles the balancer outputs for a single spin
type Balance struct {
	ActivePlayers    int     `json:"active_players"`
	LetterOdds       float64 `json:"letter_odds"`
	WildOdds         float64 `json:"wild_odds"`
	MaxDeadStreak    int     `json:"max_dead_streak"`
	IgnitionCooldown int     `json:"ignition_cooldown"`
}

// BalanceFor evaluates every balancer function for the given active count
func BalanceFor(activePlayers int) Balance {
	return Balance{
		ActivePlayers:    activePlayers,
		LetterOdds:       LetterOdds(activePlayers),
		WildOdds:         WildOdds(activePlayers),
		MaxDeadStreak:    MaxDeadStreak(activePlayers),
		IgnitionCooldown: IgnitionCooldown(activePlayers),
	}
}
