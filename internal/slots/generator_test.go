package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CarloSlots_Go/internal/domain"
)

func TestDraw_NoActivePlayers(t *testing.T) {
	state := NewState(2)
	for _, p := range state.Players {
		p.Status = domain.PlayerStatusInactive
	}
	g := NewGenerator(&scriptedRNG{}, discardLogger())

	res := g.Draw(state, BalanceFor(0), true, false)

	assert.Equal(t, domain.DeadReels(), res.Reels)
	assert.False(t, Classify(res.Reels, state).IsWin())
}

func TestDraw_Unconstrained(t *testing.T) {
	state := NewState(3)
	// rolls 0,1,2,0,1 land players 1,2,3,1,2 on the reels
	g := NewGenerator(&scriptedRNG{ints: []int{0, 1, 2, 0, 1}}, discardLogger())

	res := g.Draw(state, BalanceFor(3), false, false)

	assert.Equal(t, 1, res.Attempts)
	assert.False(t, res.Fallback)
	assert.Equal(t, domain.Reels{mark(1), mark(2), mark(3), mark(1), mark(2)}, res.Reels)
}

func TestDraw_GuaranteeFallback(t *testing.T) {
	state := NewState(3)
	g := NewGenerator(&scriptedRNG{ints: []int{0, 1, 2, 0, 1}}, discardLogger())

	res := g.Draw(state, BalanceFor(3), true, false)

	assert.True(t, res.Fallback)
	assert.Equal(t, MaxDrawAttempts, res.Attempts)
	assert.Equal(t, GuaranteedReels(1), res.Reels)

	out := Classify(res.Reels, state)
	assert.Equal(t, domain.CategoryKind, out.Category)
	assert.Equal(t, 1, out.PlayerID)
	assert.Equal(t, 3, out.Count)
}

func TestDraw_GuaranteeFallbackUsesFirstActive(t *testing.T) {
	state := NewState(4)
	state.Player(1).Status = domain.PlayerStatusInactive
	g := NewGenerator(&scriptedRNG{ints: []int{0, 1, 2, 0, 1}}, discardLogger())

	res := g.Draw(state, BalanceFor(3), true, false)

	require.True(t, res.Fallback)
	assert.Equal(t, GuaranteedReels(2), res.Reels)
}

func TestDraw_ForceDeadFallback(t *testing.T) {
	state := NewState(3)
	// every roll picks player 1: five of a kind each attempt
	g := NewGenerator(&scriptedRNG{ints: []int{0}}, discardLogger())

	res := g.Draw(state, BalanceFor(3), false, true)

	assert.True(t, res.Fallback)
	assert.Equal(t, domain.DeadReels(), res.Reels)
	assert.False(t, Classify(res.Reels, state).IsWin())
}

func TestDraw_ConstraintsHoldWithRealRNG(t *testing.T) {
	state := NewState(8)
	g := NewGenerator(NewRNG(7), discardLogger())
	balance := BalanceFor(8)

	for i := 0; i < 500; i++ {
		won := g.Draw(state, balance, true, false)
		assert.True(t, Classify(won.Reels, state).IsWin())

		dead := g.Draw(state, balance, false, true)
		assert.False(t, Classify(dead.Reels, state).IsWin())
	}
}

func TestDraw_LettersAndWild(t *testing.T) {
	state := NewState(1)
	// first float spawns the wild on reel 2, the rest hit every letter
	g := NewGenerator(&scriptedRNG{floats: []float64{0}, ints: []int{2}}, discardLogger())

	res := g.Draw(state, BalanceFor(1), false, false)

	assert.Equal(t, domain.Reels{letC, letA, wild, letL, letO}, res.Reels)
}

// TestPickWeighted_Convergence verifies sampling frequency tracks ticket share
func TestPickWeighted_Convergence(t *testing.T) {
	state := NewState(3)
	state.Player(1).Tickets[0] = 1
	state.Player(2).Tickets[0] = 3
	state.Player(3).Tickets[0] = 6
	active := state.ActivePlayers()
	g := NewGenerator(NewRNG(42), discardLogger())

	const samples = 100000
	counts := map[int]int{}
	for i := 0; i < samples; i++ {
		counts[g.pickWeighted(state, active, 0).ID]++
	}

	assert.InDelta(t, 0.1, float64(counts[1])/samples, 0.01)
	assert.InDelta(t, 0.3, float64(counts[2])/samples, 0.01)
	assert.InDelta(t, 0.6, float64(counts[3])/samples, 0.01)
}

func TestPickWeighted_ZeroWeightRepair(t *testing.T) {
	state := NewState(2)
	state.Player(1).Tickets = domain.Tickets{0, 0, 0, 0, 0}
	state.Player(2).Tickets = domain.Tickets{0, 4, 4, 4, 4}
	g := NewGenerator(&scriptedRNG{ints: []int{1}}, discardLogger())

	picked := g.pickWeighted(state, state.ActivePlayers(), 0)

	require.NotNil(t, picked)
	assert.Equal(t, 2, picked.ID)
	assert.Equal(t, domain.BaseTickets(), state.Player(1).Tickets)
	assert.Equal(t, domain.BaseTickets(), state.Player(2).Tickets)
}

func TestPickWeighted_SkipsZeroWeightPlayers(t *testing.T) {
	state := NewState(3)
	state.Player(2).Tickets[0] = 0
	g := NewGenerator(&scriptedRNG{ints: []int{1}}, discardLogger())

	picked := g.pickWeighted(state, state.ActivePlayers(), 0)

	assert.Equal(t, 3, picked.ID)
}
