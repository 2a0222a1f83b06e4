package slots

import "github.com/osse101/CarloSlots_Go/internal/domain"

// Economy applies ticket and accumulator transitions after each spin.
//
// Overflow policy: a reel pushed past the ticket cap is clamped to the cap and
// the excess becomes accumulator units. No remainder is carried forward, so
// every reel stays within [1, TicketCap].
type Economy struct {
	cfg EconomyConfig
}

// NewEconomy creates the ticket economy for a validated config
func NewEconomy(cfg EconomyConfig) *Economy {
	return &Economy{cfg: cfg}
}

// OverflowUnits converts ticket overflow into accumulator units: any overflow
// below the divisor is worth one unit, larger overflow is worth overflow/divisor.
func OverflowUnits(overflow, divisor int) int {
	if overflow <= 0 {
		return 0
	}
	if overflow < divisor {
		return 1
	}
	return overflow / divisor
}

// appearances maps each player id to the reels it occupies
func appearances(reels domain.Reels) map[int][]int {
	seen := make(map[int][]int, domain.ReelCount)
	for i, s := range reels {
		if s.Kind == domain.SymbolPlayer {
			seen[s.PlayerID] = append(seen[s.PlayerID], i)
		}
	}
	return seen
}

// ApplySpin settles a drawn spin. Inactive players are never touched.
func (e *Economy) ApplySpin(players []*domain.Player, reels domain.Reels, outcome domain.Outcome, accCap int) {
	seen := appearances(reels)

	if !outcome.IsWin() {
		for _, p := range players {
			if !p.IsActive() {
				continue
			}
			if onReels, ok := seen[p.ID]; ok {
				e.spend(p, onReels)
				continue
			}
			e.applyBehavior(p, e.cfg.DeadSpinBehavior, accCap)
		}
		return
	}

	absent := e.winSpinBehavior()
	for _, p := range players {
		if !p.IsActive() {
			continue
		}
		if p.ID == outcome.PlayerID {
			p.ResetAfterWin()
			continue
		}
		if onReels, ok := seen[p.ID]; ok {
			e.spend(p, onReels)
			continue
		}
		e.applyBehavior(p, absent, accCap)
	}
}

// winSpinBehavior is what a win does to active players who did not appear:
// either the win-spin or the re-entry rule asking for a double doubles them
// once.
func (e *Economy) winSpinBehavior() Behavior {
	if e.cfg.WinSpinBehavior == BehaviorDouble || e.cfg.ReentryBehavior == BehaviorDouble {
		return BehaviorDouble
	}
	return BehaviorNone
}

// ApplyRelease settles a guaranteed ignition release for winnerID. No reels
// were drawn, so every other active player counts as absent and follows the
// release re-entry behavior.
func (e *Economy) ApplyRelease(players []*domain.Player, winnerID int, accCap int) {
	b := e.cfg.releaseReentry()
	for _, p := range players {
		if p.ID == winnerID {
			p.ResetAfterWin()
			continue
		}
		if p.IsActive() && b == BehaviorDouble {
			e.applyBehavior(p, BehaviorDouble, accCap)
		}
	}
}

// spend removes one ticket from each reel the player landed on, never below one
func (e *Economy) spend(p *domain.Player, reels []int) {
	for _, r := range reels {
		p.Tickets[r] = max(1, p.Tickets[r]-1)
	}
}

func (e *Economy) applyBehavior(p *domain.Player, b Behavior, accCap int) {
	switch b {
	case BehaviorDouble:
		for r := range p.Tickets {
			e.grow(p, r, p.Tickets[r]*2, accCap)
		}
	case BehaviorHalvePlusOne:
		for r := range p.Tickets {
			e.grow(p, r, (p.Tickets[r]+1)/2+1, accCap)
		}
	case BehaviorNone:
	}
}

// grow sets a reel to next, clamping at the ticket cap and converting the
// excess into accumulator units.
func (e *Economy) grow(p *domain.Player, reel, next, accCap int) {
	next = max(1, next)
	if next <= e.cfg.TicketCap {
		p.Tickets[reel] = next
		return
	}

	overflow := next - e.cfg.TicketCap
	p.Tickets[reel] = e.cfg.TicketCap
	p.Accumulator = min(p.Accumulator+OverflowUnits(overflow, e.cfg.OverflowDivisor), accCap)
}
