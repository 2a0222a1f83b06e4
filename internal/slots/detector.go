package slots

import "github.com/osse101/CarloSlots_Go/internal/domain"

// Roster resolves player ids found on the reels
type Roster interface {
	Player(id int) *domain.Player
}

// Classify determines the outcome of a completed spin. Categories are checked
// in priority order: jackpot, wild match, kind, dead.
func Classify(reels domain.Reels, roster Roster) domain.Outcome {
	if IsJackpot(reels) {
		return domain.Outcome{Category: domain.CategoryJackpot, WindowStart: -1}
	}
	if o, ok := detectWildMatch(reels, roster); ok {
		return o
	}
	if o, ok := detectKind(reels, roster); ok {
		return o
	}
	return domain.DeadOutcome()
}

// IsJackpot reports whether every reel shows its own letter, spelling CARLO
func IsJackpot(reels domain.Reels) bool {
	for i, s := range reels {
		if s.Kind != domain.SymbolLetter || s.Letter != domain.Letters[i] {
			return false
		}
	}
	return true
}

func eligible(roster Roster, id int) bool {
	p := roster.Player(id)
	return p != nil && p.IsActive()
}

// wildIndex returns the position of the only wild, or -1 when there is none or more than one
func wildIndex(reels domain.Reels) int {
	idx := -1
	for i, s := range reels {
		if s.Kind != domain.SymbolWild {
			continue
		}
		if idx >= 0 {
			return -1
		}
		idx = i
	}
	return idx
}

// detectWildMatch scans the three length-3 windows containing the wild in the
// order [w-2,w], [w-1,w+1], [w,w+2]. Windows that fall off the reel strip are
// skipped. Inside a window a player with two marks wins; failing that a lone
// player mark wins. The first window with an active winner decides.
func detectWildMatch(reels domain.Reels, roster Roster) (domain.Outcome, bool) {
	w := wildIndex(reels)
	if w < 0 {
		return domain.Outcome{}, false
	}

	for start := w - (WildWindowLength - 1); start <= w; start++ {
		end := start + WildWindowLength - 1
		if start < 0 || end >= domain.ReelCount {
			continue
		}

		winner := windowWinner(reels[start : end+1])
		if winner == 0 || !eligible(roster, winner) {
			continue
		}
		return domain.Outcome{
			Category:    domain.CategoryWildMatch,
			PlayerID:    winner,
			Count:       WildWindowLength,
			WindowStart: start,
		}, true
	}
	return domain.Outcome{}, false
}

// windowWinner returns the player id that qualifies inside one window, or 0
func windowWinner(window []domain.Symbol) int {
	counts := make(map[int]int, len(window))
	var marks []int
	for _, s := range window {
		if s.Kind != domain.SymbolPlayer {
			continue
		}
		counts[s.PlayerID]++
		marks = append(marks, s.PlayerID)
	}

	for _, id := range marks {
		if counts[id] >= 2 {
			return id
		}
	}
	if len(marks) == 1 {
		return marks[0]
	}
	return 0
}

// detectKind counts player marks across all reels. The winner has the
// greatest count among those reaching MinKindCount; on equal counts the player
// who reached that count first in reel order keeps priority.
func detectKind(reels domain.Reels, roster Roster) (domain.Outcome, bool) {
	counts := make(map[int]int, domain.ReelCount)
	best, bestCount := 0, 0
	for _, s := range reels {
		if s.Kind != domain.SymbolPlayer {
			continue
		}
		counts[s.PlayerID]++
		if counts[s.PlayerID] > bestCount {
			best, bestCount = s.PlayerID, counts[s.PlayerID]
		}
	}

	if bestCount < MinKindCount || !eligible(roster, best) {
		return domain.Outcome{}, false
	}
	return domain.Outcome{
		Category:    domain.CategoryKind,
		PlayerID:    best,
		Count:       bestCount,
		WindowStart: -1,
	}, true
}
