package slots

import (
	"fmt"

	"github.com/osse101/CarloSlots_Go/internal/domain"
)

// State is everything one run mutates between spins. It is owned by a single
// Run and never shared.
type State struct {
	Players        []*domain.Player
	SpinIndex      int
	DeadStreak     int
	LastSpinWasWin bool
	Ignition       *IgnitionQueue

	byID map[int]*domain.Player
}

// NewState creates playerCount active players named Player1..PlayerN
func NewState(playerCount int) *State {
	s := &State{
		Players:  make([]*domain.Player, 0, playerCount),
		Ignition: NewIgnitionQueue(),
		byID:     make(map[int]*domain.Player, playerCount),
	}
	for i := 0; i < playerCount; i++ {
		s.addPlayer("")
	}
	return s
}

func (s *State) addPlayer(name string) *domain.Player {
	id := len(s.Players) + 1
	if name == "" {
		name = fmt.Sprintf("Player%d", id)
	}
	p := domain.NewPlayer(id, name, len(s.Players))
	s.Players = append(s.Players, p)
	s.byID[id] = p
	return p
}

// Player looks a player up by id; nil when unknown
func (s *State) Player(id int) *domain.Player {
	return s.byID[id]
}

// ActivePlayers returns active players in creation order
func (s *State) ActivePlayers() []*domain.Player {
	active := make([]*domain.Player, 0, len(s.Players))
	for _, p := range s.Players {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// ActiveCount counts players with active status
func (s *State) ActiveCount() int {
	n := 0
	for _, p := range s.Players {
		if p.IsActive() {
			n++
		}
	}
	return n
}

// clampAccumulators keeps every accumulator within a cap that may have shrunk
// because players went inactive.
func (s *State) clampAccumulators(accCap int) {
	for _, p := range s.Players {
		if p.Accumulator > accCap {
			p.Accumulator = accCap
		}
	}
}
