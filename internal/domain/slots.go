package domain

import "fmt"

// ReelCount is the number of independent symbol slots in a spin
const ReelCount = 5

// Letters spells the jackpot word; Letters[i] is the fixed letter of reel i
var Letters = [ReelCount]byte{'C', 'A', 'R', 'L', 'O'}

// PlayerStatus marks whether a player takes part in sampling and win eligibility
type PlayerStatus string

const (
	PlayerStatusActive   PlayerStatus = "active"
	PlayerStatusInactive PlayerStatus = "inactive"
)

// Tickets holds one sampling weight per reel
type Tickets [ReelCount]int

// Total returns the sum of all reel weights
func (t Tickets) Total() int {
	total := 0
	for _, v := range t {
		total += v
	}
	return total
}

// BaseTickets is the vector every player starts with and resets to after a win
func BaseTickets() Tickets {
	return Tickets{1, 1, 1, 1, 1}
}

// Player is a competitor whose name can land on the reels
type Player struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	CreatedAt   int          `json:"created_at"` // join ordinal, tie-break key
	Status      PlayerStatus `json:"status"`
	Tickets     Tickets      `json:"tickets"`
	Accumulator int          `json:"accumulator"` // spark / pity tokens
}

// NewPlayer creates an active player with base tickets
func NewPlayer(id int, name string, createdAt int) *Player {
	return &Player{
		ID:        id,
		Name:      name,
		CreatedAt: createdAt,
		Status:    PlayerStatusActive,
		Tickets:   BaseTickets(),
	}
}

// IsActive reports whether the player can be drawn and can win
func (p *Player) IsActive() bool {
	return p.Status == PlayerStatusActive
}

// Normalize repairs a degenerate all-zero ticket vector to base tickets
func (p *Player) Normalize() {
	if p.Tickets.Total() == 0 {
		p.Tickets = BaseTickets()
	}
}

// ResetAfterWin returns the player to the starting economy state
func (p *Player) ResetAfterWin() {
	p.Tickets = BaseTickets()
	p.Accumulator = 0
}

// SymbolKind tags the closed set of reel symbol shapes
type SymbolKind int

const (
	SymbolLetter SymbolKind = iota
	SymbolWild
	SymbolPlayer
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolLetter:
		return "letter"
	case SymbolWild:
		return "wild"
	case SymbolPlayer:
		return "player"
	}
	return fmt.Sprintf("SymbolKind(%d)", int(k))
}

// Symbol is what lands on one reel. Letter is set only for SymbolLetter,
// PlayerID only for SymbolPlayer.
type Symbol struct {
	Kind     SymbolKind `json:"kind"`
	Letter   byte       `json:"letter,omitempty"`
	PlayerID int        `json:"player_id,omitempty"`
}

// LetterSymbol returns a letter tile
func LetterSymbol(letter byte) Symbol {
	return Symbol{Kind: SymbolLetter, Letter: letter}
}

// ReelLetter returns the fixed letter tile for a reel
func ReelLetter(reel int) Symbol {
	return LetterSymbol(Letters[reel])
}

// WildSymbol returns the Luna wild marker
func WildSymbol() Symbol {
	return Symbol{Kind: SymbolWild}
}

// PlayerSymbol returns a player mark
func PlayerSymbol(playerID int) Symbol {
	return Symbol{Kind: SymbolPlayer, PlayerID: playerID}
}

func (s Symbol) String() string {
	switch s.Kind {
	case SymbolLetter:
		return string(s.Letter)
	case SymbolWild:
		return "*"
	case SymbolPlayer:
		return fmt.Sprintf("P%d", s.PlayerID)
	}
	return "?"
}

// Reels is a completed spin, one symbol per reel index 0..4
type Reels [ReelCount]Symbol

// JackpotReels spells C-A-R-L-O in reel order
func JackpotReels() Reels {
	var r Reels
	for i := range r {
		r[i] = ReelLetter(i)
	}
	return r
}

// DeadReels is an all-letter sequence that can never classify as a win:
// the letters run in reverse so they never spell the jackpot word.
func DeadReels() Reels {
	var r Reels
	for i := range r {
		r[i] = LetterSymbol(Letters[ReelCount-1-i])
	}
	return r
}

func (r Reels) String() string {
	s := "["
	for i, sym := range r {
		if i > 0 {
			s += " "
		}
		s += sym.String()
	}
	return s + "]"
}

// WinCategory is the closed set of spin outcomes
type WinCategory string

const (
	CategoryDead              WinCategory = "dead"
	CategoryJackpot           WinCategory = "jackpot"
	CategoryWildMatch         WinCategory = "wild_match"
	CategoryKind              WinCategory = "kind"
	CategoryGuaranteedRelease WinCategory = "guaranteed_release"
)

// Outcome is the classification of a spin. PlayerID is 0 when no player won
// (dead spins and jackpots). Count is the run length for wild matches and the
// number of matching reels for kinds. WindowStart is the first reel of the
// winning wild window and -1 otherwise.
type Outcome struct {
	Category    WinCategory `json:"category"`
	PlayerID    int         `json:"player_id,omitempty"`
	Count       int         `json:"count,omitempty"`
	WindowStart int         `json:"window_start"`
}

// DeadOutcome is the no-winner result
func DeadOutcome() Outcome {
	return Outcome{Category: CategoryDead, WindowStart: -1}
}

// IsWin reports whether the outcome is anything but a dead spin
func (o Outcome) IsWin() bool {
	return o.Category != CategoryDead
}

// HasWinner reports whether a specific player won
func (o Outcome) HasWinner() bool {
	return o.PlayerID != 0
}
