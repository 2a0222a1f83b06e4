package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayer_Lifecycle(t *testing.T) {
	p := NewPlayer(3, "Carol", 2)
	assert.True(t, p.IsActive())
	assert.Equal(t, BaseTickets(), p.Tickets)
	assert.Equal(t, ReelCount, p.Tickets.Total())

	p.Tickets = Tickets{40, 2, 9, 1, 500}
	p.Accumulator = 7
	p.ResetAfterWin()
	assert.Equal(t, BaseTickets(), p.Tickets)
	assert.Zero(t, p.Accumulator)

	p.Status = PlayerStatusInactive
	assert.False(t, p.IsActive())
}

func TestPlayer_Normalize(t *testing.T) {
	p := NewPlayer(1, "Zero", 0)
	p.Tickets = Tickets{}
	p.Normalize()
	assert.Equal(t, BaseTickets(), p.Tickets)

	p.Tickets = Tickets{0, 0, 4, 0, 0}
	p.Normalize()
	assert.Equal(t, Tickets{0, 0, 4, 0, 0}, p.Tickets, "non-degenerate vectors are left alone")
}

func TestReels_String(t *testing.T) {
	assert.Equal(t, "[C A R L O]", JackpotReels().String())
	assert.Equal(t, "[O L R A C]", DeadReels().String())

	r := Reels{PlayerSymbol(4), WildSymbol(), ReelLetter(2), PlayerSymbol(4), LetterSymbol('Q')}
	assert.Equal(t, "[P4 * R P4 Q]", r.String())
	assert.Equal(t, "?", Symbol{Kind: SymbolKind(9)}.String())
	assert.Equal(t, "SymbolKind(9)", SymbolKind(9).String())
	assert.Equal(t, "wild", SymbolWild.String())
}

func TestDeadReels_NeverSpellJackpot(t *testing.T) {
	dead := DeadReels()
	assert.NotEqual(t, JackpotReels(), dead)
	for _, s := range dead {
		assert.Equal(t, SymbolLetter, s.Kind)
	}
}

func TestOutcome(t *testing.T) {
	dead := DeadOutcome()
	assert.False(t, dead.IsWin())
	assert.False(t, dead.HasWinner())
	assert.Equal(t, -1, dead.WindowStart)

	jackpot := Outcome{Category: CategoryJackpot, WindowStart: -1}
	assert.True(t, jackpot.IsWin())
	assert.False(t, jackpot.HasWinner())

	kind := Outcome{Category: CategoryKind, PlayerID: 2, Count: 3, WindowStart: -1}
	assert.True(t, kind.IsWin())
	assert.True(t, kind.HasWinner())
}
