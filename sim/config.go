package sim

import (
	"fmt"

	"github.com/inference-sim/schedsim/sim/trace"
)

// DefaultQuantum is the round-robin quantum used when none is configured.
const DefaultQuantum int64 = 2

// SimConfig groups the parameters of one simulation run.
type SimConfig struct {
	Scheduler  string           // "fcfs" (default), "sjf", "priority", "round-robin"
	Quantum    int64            // round-robin only; must be > 0 when Scheduler is round-robin
	TraceLevel trace.TraceLevel // "none" (default) or "timeline"
}

// Validate checks the configuration without building a scheduler.
func (c SimConfig) Validate() error {
	if !IsValidScheduler(c.Scheduler) {
		return fmt.Errorf("%w %q; valid: %v", ErrUnknownScheduler, c.Scheduler, ValidSchedulerNames())
	}
	if CanonicalSchedulerName(c.Scheduler) == SchedulerRoundRobin && c.Quantum <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidQuantum, c.Quantum)
	}
	if !trace.IsValidTraceLevel(string(c.TraceLevel)) {
		return fmt.Errorf("unknown trace level %q", c.TraceLevel)
	}
	return nil
}
