package metrics

import (
	"time"

	"github.com/osse101/CarloSlots_Go/internal/domain"
	"github.com/osse101/CarloSlots_Go/internal/slots"
	"github.com/osse101/CarloSlots_Go/internal/stats"
)

// SpinRecorder exports every observed spin. It is safe to share across
// concurrently running simulations.
type SpinRecorder struct{}

// NewSpinRecorder creates a recorder bound to the default registry
func NewSpinRecorder() *SpinRecorder {
	return &SpinRecorder{}
}

// ObserveSpin implements slots.Observer
func (SpinRecorder) ObserveSpin(_ string, res slots.SpinResult) {
	SpinsTotal.Inc()

	if res.Outcome.IsWin() {
		WinsTotal.WithLabelValues(string(res.Outcome.Category)).Inc()
	}
	if res.Outcome.Category == domain.CategoryGuaranteedRelease {
		IgnitionReleases.Inc()
	}
	if !res.Drawn {
		return
	}

	DrawAttempts.Observe(float64(res.Attempts))
	if res.GuaranteeRequested {
		GuardrailTriggers.Inc()
	}
	if res.ForceDeadRequested {
		ForcedDeadSpins.Inc()
	}
	if res.Fallback {
		kind := FallbackKindDead
		if res.GuaranteeRequested {
			kind = FallbackKindGuarantee
		}
		FallbackDraws.WithLabelValues(kind).Inc()
	}
}

// RecordRun exports the summary of a finished run
func RecordRun(scenarioID string, a stats.Analysis, elapsed time.Duration) {
	RunsTotal.WithLabelValues(scenarioID, string(a.Verdict)).Inc()
	RunDuration.WithLabelValues(scenarioID).Observe(elapsed.Seconds())
	PlayersAtCap.WithLabelValues(scenarioID).Set(float64(a.PlayersAtCap))
}

// RecordSweepProgress exports the sweep counters
func RecordSweepProgress(done, total int64) {
	SweepRunsCompleted.Set(float64(done))
	SweepRunsScheduled.Set(float64(total))
}
