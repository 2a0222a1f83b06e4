package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CarloSlots_Go/internal/domain"
)

func TestIgnitionQueue_RefreshOrderAndPrune(t *testing.T) {
	state := NewState(4)
	q := state.Ignition

	state.Player(3).Accumulator = 12
	q.Refresh(state.Players, 12)
	state.Player(1).Accumulator = 12
	state.Player(2).Accumulator = 12
	q.Refresh(state.Players, 12)

	assert.Equal(t, []int{3, 1, 2}, q.IDs(), "existing entries keep their place, newcomers join in roster order")

	state.Player(1).Status = domain.PlayerStatusInactive
	state.Player(2).Accumulator = 3
	q.Refresh(state.Players, 12)

	assert.Equal(t, []int{3}, q.IDs())
}

func TestIgnitionQueue_CanRelease(t *testing.T) {
	q := NewIgnitionQueue()
	assert.False(t, q.CanRelease(0, 0), "empty queue never releases")

	q.ids = []int{1}
	assert.True(t, q.CanRelease(0, 4), "the first release is not gated by cooldown")

	q.released = true
	q.lastRelease = 10
	assert.False(t, q.CanRelease(11, 2))
	assert.True(t, q.CanRelease(12, 2))
	assert.True(t, q.CanRelease(10, 0))
}

func TestIgnitionQueue_ReleaseSkipsStaleHeads(t *testing.T) {
	state := NewState(3)
	q := state.Ignition
	for _, pl := range state.Players {
		pl.Accumulator = 12
	}
	q.Refresh(state.Players, 12)

	state.Player(1).Accumulator = 0
	state.Player(2).Status = domain.PlayerStatusInactive

	released := q.Release(7, state, 12)

	require.NotNil(t, released)
	assert.Equal(t, 3, released.ID)
	assert.Equal(t, 0, released.Accumulator)
	assert.Equal(t, 7, q.LastRelease())
	assert.Equal(t, 0, q.Len())
}

func TestIgnitionQueue_ReleaseEmptyAfterSkips(t *testing.T) {
	state := NewState(2)
	q := state.Ignition
	q.ids = []int{1, 2, 99}

	assert.Nil(t, q.Release(0, state, 12))
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, -1, q.LastRelease())
}
