package slots

// ============================================================================
// Economy Defaults
// ============================================================================

// DefaultTicketCap is the per-reel ticket ceiling
const DefaultTicketCap = 500

// DefaultOverflowDivisor controls how much overflow converts to one accumulator unit
const DefaultOverflowDivisor = 500

// DefaultAccumulatorCap is the spark count that enqueues a player for ignition
const DefaultAccumulatorCap = 12

// DefaultBackToBackOdds is the 1-in-N chance that a win may immediately follow a win
const DefaultBackToBackOdds = 2500

// DefaultSnapshotInterval is how often (in spins) the report samples economy averages
const DefaultSnapshotInterval = 10

// MaxPlayers is the largest table the balancer is tuned for
const MaxPlayers = 75

// ============================================================================
// Generator Limits
// ============================================================================

// MaxDrawAttempts bounds rejection sampling before a deterministic fallback is built
const MaxDrawAttempts = 100

// GuaranteeFallbackKind is the number of reels the fallback win marks with one player
const GuaranteeFallbackKind = 3

// ============================================================================
// Win Detection
// ============================================================================

// WildWindowLength is the width of the reel windows examined around a wild
const WildWindowLength = 3

// MinKindCount is the smallest matching-reel count that wins
const MinKindCount = 3

// ============================================================================
// Accumulator Formulas
// ============================================================================

// Accumulator cap formulas
const (
	CapFormulaFixed = "fixed"
	CapFormulaBase5 = "base5" // 5 + active players
	CapFormulaHalf  = "half"  // 7 + active players / 2
)

// Formula constants
const (
	CapBase5Offset = 5
	CapHalfOffset  = 7
	CapHalfDivisor = 2
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgRunCreated         = "Slot run created"
	LogMsgGuardrailTriggered = "Dead spin guardrail triggered"
	LogMsgBackToBackAllowed  = "Back-to-back win allowed"
	LogMsgIgnitionReleased   = "Ignition queue released player"
	LogMsgFallbackBuilt      = "Draw retries exhausted, built fallback spin"
	LogMsgTicketsNormalized  = "Zero ticket pool normalized"
	LogMsgPlayerStatusSet    = "Player status changed"
	LogMsgPlayerAdded        = "Player joined run"
)

// ============================================================================
// Error Context Messages
// ============================================================================

const (
	ErrContextValidateConfig = "failed to validate economy config"
)
