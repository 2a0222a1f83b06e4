package slots

import "github.com/osse101/CarloSlots_Go/internal/domain"

// IgnitionQueue is the FIFO of players whose accumulator reached the cap.
// Releases are spaced by the balancer's ignition cooldown.
type IgnitionQueue struct {
	ids         []int
	lastRelease int
	released    bool
}

// NewIgnitionQueue creates an empty queue
func NewIgnitionQueue() *IgnitionQueue {
	return &IgnitionQueue{lastRelease: -1}
}

// Len returns the number of queued players
func (q *IgnitionQueue) Len() int {
	return len(q.ids)
}

// IDs returns a copy of the queued player ids, head first
func (q *IgnitionQueue) IDs() []int {
	return append([]int(nil), q.ids...)
}

// LastRelease returns the spin index of the most recent release, or -1
func (q *IgnitionQueue) LastRelease() int {
	return q.lastRelease
}

func qualifies(p *domain.Player, accCap int) bool {
	return p != nil && p.IsActive() && p.Accumulator >= accCap
}

// Refresh enqueues newly qualifying active players in roster order and prunes
// queued players who went inactive or fell below the cap.
func (q *IgnitionQueue) Refresh(players []*domain.Player, accCap int) {
	queued := make(map[int]bool, len(q.ids))
	for _, id := range q.ids {
		queued[id] = true
	}
	byID := make(map[int]*domain.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
		if qualifies(p, accCap) && !queued[p.ID] {
			q.ids = append(q.ids, p.ID)
			queued[p.ID] = true
		}
	}

	kept := q.ids[:0]
	for _, id := range q.ids {
		if qualifies(byID[id], accCap) {
			kept = append(kept, id)
		}
	}
	q.ids = kept
}

// CanRelease reports whether the queue is non-empty and the cooldown since the
// previous release has elapsed.
func (q *IgnitionQueue) CanRelease(spinIndex, cooldown int) bool {
	if len(q.ids) == 0 {
		return false
	}
	return !q.released || spinIndex-q.lastRelease >= cooldown
}

// Release pops heads until one still qualifies and returns it, resetting its
// accumulator. Every iteration shrinks the queue, so the loop ends; an empty
// queue means no release.
func (q *IgnitionQueue) Release(spinIndex int, roster Roster, accCap int) *domain.Player {
	for len(q.ids) > 0 {
		id := q.ids[0]
		q.ids = q.ids[1:]

		p := roster.Player(id)
		if !qualifies(p, accCap) {
			continue
		}
		p.Accumulator = 0
		q.lastRelease = spinIndex
		q.released = true
		return p
	}
	return nil
}
