package metrics

// Namespace prefixes every metric this service exports
const Namespace = "slotsim"

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Engine metric names
const (
	MetricNameSpinsTotal       = "spins_total"
	MetricNameWinsTotal        = "wins_total"
	MetricNameGuardrailTotal   = "guardrail_triggers_total"
	MetricNameForcedDeadTotal  = "forced_dead_spins_total"
	MetricNameFallbackTotal    = "fallback_draws_total"
	MetricNameDrawAttempts     = "draw_attempts"
	MetricNameIgnitionReleases = "ignition_releases_total"
	MetricNameRunsTotal        = "runs_total"
	MetricNameRunDuration      = "run_duration_seconds"
	MetricNameSweepRunsTotal   = "sweep_runs_scheduled"
	MetricNameSweepRunsDone    = "sweep_runs_completed"
	MetricNameAccumulatorAtCap = "players_at_accumulator_cap"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Engine metric help text
const (
	HelpTextSpinsTotal       = "Total number of spins simulated"
	HelpTextWinsTotal        = "Total number of winning spins by category"
	HelpTextGuardrailTotal   = "Spins where the dead-spin guardrail requested a win"
	HelpTextForcedDeadTotal  = "Spins where back-to-back suppression requested a dead spin"
	HelpTextFallbackTotal    = "Draws that exhausted retries and built a deterministic spin"
	HelpTextDrawAttempts     = "Rejection sampling attempts per drawn spin"
	HelpTextIgnitionReleases = "Guaranteed wins released from the ignition queue"
	HelpTextRunsTotal        = "Completed simulation runs by verdict"
	HelpTextRunDuration      = "Wall time of a simulation run in seconds"
	HelpTextSweepRunsTotal   = "Runs scheduled by the current sweep"
	HelpTextSweepRunsDone    = "Runs completed by the current sweep"
	HelpTextAccumulatorAtCap = "Players at the accumulator cap at the end of the last run"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelCategory = "category"
	LabelKind     = "kind"
	LabelVerdict  = "verdict"
	LabelScenario = "scenario"
)

// Fallback kinds
const (
	FallbackKindGuarantee = "guarantee"
	FallbackKindDead      = "dead"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// DrawAttemptBuckets spans one attempt up to the retry limit
var DrawAttemptBuckets = []float64{1, 2, 3, 5, 10, 25, 50, 100}

// RunDurationBuckets spans short runs up to mega runs
var RunDurationBuckets = []float64{.001, .01, .1, .5, 1, 5, 15, 60, 300}
