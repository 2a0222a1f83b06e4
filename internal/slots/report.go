package slots

import (
	"sort"

	"github.com/osse101/CarloSlots_Go/internal/domain"
)

// CategoryCounts holds wins per category. Kinds are split by count.
type CategoryCounts struct {
	Jackpot           int `json:"jackpot" yaml:"jackpot"`
	WildMatch         int `json:"wild_match" yaml:"wild_match"`
	ThreeOfKind       int `json:"three_of_kind" yaml:"three_of_kind"`
	FourOfKind        int `json:"four_of_kind" yaml:"four_of_kind"`
	FiveOfKind        int `json:"five_of_kind" yaml:"five_of_kind"`
	GuaranteedRelease int `json:"guaranteed_release" yaml:"guaranteed_release"`
}

// Total sums every category
func (c CategoryCounts) Total() int {
	return c.Jackpot + c.WildMatch + c.ThreeOfKind + c.FourOfKind + c.FiveOfKind + c.GuaranteedRelease
}

// PlayerReport is a player's final standing
type PlayerReport struct {
	ID           int                 `json:"id"`
	Name         string              `json:"name"`
	Status       domain.PlayerStatus `json:"status"`
	Wins         int                 `json:"wins"`
	Tickets      domain.Tickets      `json:"tickets"`
	TicketTotal  int                 `json:"ticket_total"`
	Accumulator  int                 `json:"accumulator"`
	AtCap        bool                `json:"at_cap"`
	IgnitionWins int                 `json:"ignition_wins"`
}

// EconomySnapshot samples the ticket economy at one spin
type EconomySnapshot struct {
	Spin             int     `json:"spin"`
	TotalTickets     int     `json:"total_tickets"`
	AvgTickets       float64 `json:"avg_tickets"`
	TotalAccumulator int     `json:"total_accumulator"`
	QueueLength      int     `json:"queue_length"`
}

// StreakCount is how often a dead streak of Length was observed
type StreakCount struct {
	Length int `json:"length"`
	Count  int `json:"count"`
}

// Report summarizes a run
type Report struct {
	RunID             string            `json:"run_id"`
	TotalSpins        int               `json:"total_spins"`
	TotalWins         int               `json:"total_wins"`
	Categories        CategoryCounts    `json:"categories"`
	DeadSpins         int               `json:"dead_spins"`
	MaxDeadStreak     int               `json:"max_dead_streak"`
	GuaranteeTriggers int               `json:"guarantee_triggers"`
	ForcedDead        int               `json:"forced_dead"`
	BackToBackAllowed int               `json:"back_to_back_allowed"`
	FallbackDraws     int               `json:"fallback_draws"`
	ActivePlayers     int               `json:"active_players"`
	AccumulatorCap    int               `json:"accumulator_cap"`
	DeadStreaks       []StreakCount     `json:"dead_streaks"`
	Players           []PlayerReport    `json:"players"`
	Snapshots         []EconomySnapshot `json:"snapshots,omitempty"`
}

// HitRate is the fraction of spins that produced a win
func (r Report) HitRate() float64 {
	if r.TotalSpins == 0 {
		return 0
	}
	return float64(r.TotalWins) / float64(r.TotalSpins)
}

// PlayersAtCap counts players whose accumulator sits at the cap
func (r Report) PlayersAtCap() int {
	n := 0
	for _, p := range r.Players {
		if p.AtCap {
			n++
		}
	}
	return n
}

// tally accumulates counters while a run advances
type tally struct {
	spins             int
	categories        CategoryCounts
	dead              int
	maxStreak         int
	guaranteeTriggers int
	forcedDead        int
	backToBackAllowed int
	fallbacks         int
	streaks           map[int]int
	wins              map[int]int
	ignitionWins      map[int]int
	snapshots         []EconomySnapshot
}

func newTally() *tally {
	return &tally{
		streaks:      make(map[int]int),
		wins:         make(map[int]int),
		ignitionWins: make(map[int]int),
	}
}

func (t *tally) record(o domain.Outcome) {
	t.spins++
	switch o.Category {
	case domain.CategoryDead:
		t.dead++
	case domain.CategoryJackpot:
		t.categories.Jackpot++
	case domain.CategoryWildMatch:
		t.categories.WildMatch++
	case domain.CategoryKind:
		switch o.Count {
		case 3:
			t.categories.ThreeOfKind++
		case 4:
			t.categories.FourOfKind++
		default:
			t.categories.FiveOfKind++
		}
	case domain.CategoryGuaranteedRelease:
		t.categories.GuaranteedRelease++
		t.ignitionWins[o.PlayerID]++
	}
	if o.HasWinner() {
		t.wins[o.PlayerID]++
	}
}

// recordStreak is called for every dead spin with the current streak length,
// so the distribution counts how many streaks reached each length.
func (t *tally) recordStreak(length int) {
	t.streaks[length]++
	if length > t.maxStreak {
		t.maxStreak = length
	}
}

func (t *tally) snapshot(st *State) {
	s := EconomySnapshot{Spin: st.SpinIndex, QueueLength: st.Ignition.Len()}
	active := 0
	for _, p := range st.Players {
		if !p.IsActive() {
			continue
		}
		active++
		s.TotalTickets += p.Tickets.Total()
		s.TotalAccumulator += p.Accumulator
	}
	if active > 0 {
		s.AvgTickets = float64(s.TotalTickets) / float64(active)
	}
	t.snapshots = append(t.snapshots, s)
}

// Snapshot reports the run so far. It does not modify the run.
func (r *Run) Snapshot() Report {
	st := r.state
	t := r.tally
	active := st.ActiveCount()
	accCap := r.cfg.AccumulatorCap.For(active)

	rep := Report{
		RunID:             r.id,
		TotalSpins:        t.spins,
		TotalWins:         t.categories.Total(),
		Categories:        t.categories,
		DeadSpins:         t.dead,
		MaxDeadStreak:     t.maxStreak,
		GuaranteeTriggers: t.guaranteeTriggers,
		ForcedDead:        t.forcedDead,
		BackToBackAllowed: t.backToBackAllowed,
		FallbackDraws:     t.fallbacks,
		ActivePlayers:     active,
		AccumulatorCap:    accCap,
		Players:           make([]PlayerReport, 0, len(st.Players)),
		Snapshots:         append([]EconomySnapshot(nil), t.snapshots...),
	}

	for length, count := range t.streaks {
		rep.DeadStreaks = append(rep.DeadStreaks, StreakCount{Length: length, Count: count})
	}
	sort.Slice(rep.DeadStreaks, func(i, j int) bool {
		return rep.DeadStreaks[i].Length < rep.DeadStreaks[j].Length
	})

	for _, p := range st.Players {
		rep.Players = append(rep.Players, PlayerReport{
			ID:           p.ID,
			Name:         p.Name,
			Status:       p.Status,
			Wins:         t.wins[p.ID],
			Tickets:      p.Tickets,
			TicketTotal:  p.Tickets.Total(),
			Accumulator:  p.Accumulator,
			AtCap:        p.IsActive() && p.Accumulator >= accCap,
			IgnitionWins: t.ignitionWins[p.ID],
		})
	}
	return rep
}
