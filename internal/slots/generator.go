package slots

import (
	"log/slog"

	"github.com/osse101/CarloSlots_Go/internal/domain"
)

// DrawResult is a generated spin plus how it was produced
type DrawResult struct {
	Reels    domain.Reels
	Attempts int
	Fallback bool // retries ran out and the reels were built deterministically
}

// Generator draws one symbol per reel from letters, the wild and the weighted
// pool of active players.
type Generator struct {
	rng RNG
	log *slog.Logger
}

// NewGenerator creates a generator over the injected randomness source
func NewGenerator(rng RNG, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.Default()
	}
	return &Generator{rng: rng, log: log}
}

// Draw produces a spin. With guaranteeWin the result must classify as a win,
// with forceDead it must not. Rejection sampling is bounded by MaxDrawAttempts,
// after which a deterministic spin satisfying the constraint is built.
func (g *Generator) Draw(state *State, balance Balance, guaranteeWin, forceDead bool) DrawResult {
	active := state.ActivePlayers()
	if len(active) == 0 {
		// Nobody can win; an empty table only produces dead spins.
		return DrawResult{Reels: domain.DeadReels()}
	}

	var reels domain.Reels
	for attempt := 1; attempt <= MaxDrawAttempts; attempt++ {
		reels = g.drawOnce(state, active, balance)
		win := Classify(reels, state).IsWin()

		if guaranteeWin && !win {
			continue
		}
		if forceDead && win {
			continue
		}
		return DrawResult{Reels: reels, Attempts: attempt}
	}

	switch {
	case guaranteeWin:
		g.log.Debug(LogMsgFallbackBuilt, "spin", state.SpinIndex, "kind", "guarantee", "player_id", active[0].ID)
		return DrawResult{Reels: GuaranteedReels(active[0].ID), Attempts: MaxDrawAttempts, Fallback: true}
	case forceDead:
		g.log.Debug(LogMsgFallbackBuilt, "spin", state.SpinIndex, "kind", "dead")
		return DrawResult{Reels: domain.DeadReels(), Attempts: MaxDrawAttempts, Fallback: true}
	default:
		return DrawResult{Reels: reels, Attempts: MaxDrawAttempts}
	}
}

// GuaranteedReels marks the first reels with one player and fills the rest
// with their fixed letters, a guaranteed three of a kind.
func GuaranteedReels(playerID int) domain.Reels {
	var r domain.Reels
	for i := range r {
		if i < GuaranteeFallbackKind {
			r[i] = domain.PlayerSymbol(playerID)
		} else {
			r[i] = domain.ReelLetter(i)
		}
	}
	return r
}

func (g *Generator) drawOnce(state *State, active []*domain.Player, balance Balance) domain.Reels {
	wild := -1
	if chance(g.rng, balance.WildOdds) {
		wild = g.rng.IntN(domain.ReelCount)
	}

	var reels domain.Reels
	for i := range reels {
		if i == wild {
			reels[i] = domain.WildSymbol()
			continue
		}
		if chance(g.rng, balance.LetterOdds) {
			reels[i] = domain.ReelLetter(i)
			continue
		}
		if p := g.pickWeighted(state, active, i); p != nil {
			reels[i] = domain.PlayerSymbol(p.ID)
		} else {
			reels[i] = domain.ReelLetter(i)
		}
	}
	return reels
}

// pickWeighted samples an active player with probability proportional to
// their tickets on the reel. A zero-weight pool is repaired to base tickets
// before sampling.
func (g *Generator) pickWeighted(state *State, active []*domain.Player, reel int) *domain.Player {
	if len(active) == 0 {
		return nil
	}

	total := reelWeight(active, reel)
	if total <= 0 {
		g.log.Debug(LogMsgTicketsNormalized, "spin", state.SpinIndex, "reel", reel)
		for _, p := range active {
			p.Normalize()
			if p.Tickets[reel] <= 0 {
				p.Tickets = domain.BaseTickets()
			}
		}
		total = reelWeight(active, reel)
	}

	roll := g.rng.IntN(total)
	cumulative := 0
	for _, p := range active {
		if p.Tickets[reel] <= 0 {
			continue
		}
		cumulative += p.Tickets[reel]
		if roll < cumulative {
			return p
		}
	}
	return active[len(active)-1]
}

func reelWeight(active []*domain.Player, reel int) int {
	total := 0
	for _, p := range active {
		if p.Tickets[reel] > 0 {
			total += p.Tickets[reel]
		}
	}
	return total
}
