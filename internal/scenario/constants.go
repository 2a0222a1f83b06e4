package scenario

import "time"

// ============================================================================
// Engine Defaults
// ============================================================================

// DefaultCacheSize is the number of memoized results kept
const DefaultCacheSize = 256

// DefaultCacheTTL is how long a memoized result stays valid
const DefaultCacheTTL = time.Hour

// CatalogSchemaURL names the embedded catalog schema resource
const CatalogSchemaURL = "scenario-catalog.schema.json"

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgScenarioStarted   = "Scenario run started"
	LogMsgScenarioCompleted = "Scenario run completed"
	LogMsgScenarioCached    = "Scenario result served from cache"
	LogMsgStepApplied       = "Scenario step applied"
	LogMsgSweepStarted      = "Sweep started"
	LogMsgSweepCompleted    = "Sweep completed"
)

// ============================================================================
// Error Context Messages
// ============================================================================

const (
	ErrContextOpenCatalog    = "failed to open catalog"
	ErrContextReadCatalog    = "failed to read catalog"
	ErrContextEncodeResult   = "failed to encode result for assertions"
	ErrContextEnqueueRun     = "failed to enqueue sweep run"
	ErrContextSweepCancelled = "sweep cancelled"
)
