package sim

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownScheduler = errors.New("unknown scheduler")
	ErrInvalidQuantum   = errors.New("round-robin quantum must be positive")
)

// Scheduler names accepted by NewScheduler.
const (
	SchedulerFCFS       = "fcfs"
	SchedulerSJF        = "sjf"
	SchedulerPriority   = "priority"
	SchedulerRoundRobin = "round-robin"
)

// InstanceScheduler picks which ready process occupies an idle CPU.
// SelectNext is only called with a non-empty ready slice, in ready-queue order,
// and returns an index into it. Implementations MUST NOT modify the slice.
type InstanceScheduler interface {
	Name() string
	SelectNext(ready []*Process) int
	// Quantum is the per-dispatch tick budget; 0 means non-preemptive.
	Quantum() int64
}

// FCFSScheduler dispatches in ready-queue order.
type FCFSScheduler struct{}

func (f *FCFSScheduler) Name() string                { return SchedulerFCFS }
func (f *FCFSScheduler) SelectNext(_ []*Process) int { return 0 }
func (f *FCFSScheduler) Quantum() int64              { return 0 }

// SJFScheduler dispatches the ready process with the least remaining CPU time.
// Non-preemptive: a running process is never displaced by a shorter arrival.
// Warning: SJF can starve long processes under sustained load.
type SJFScheduler struct{}

func (s *SJFScheduler) Name() string   { return SchedulerSJF }
func (s *SJFScheduler) Quantum() int64 { return 0 }

func (s *SJFScheduler) SelectNext(ready []*Process) int {
	return minIndex(ready, func(p *Process) int64 { return p.RemainingTime })
}

// PriorityScheduler dispatches the ready process with the lowest priority value.
type PriorityScheduler struct{}

func (p *PriorityScheduler) Name() string   { return SchedulerPriority }
func (p *PriorityScheduler) Quantum() int64 { return 0 }

func (p *PriorityScheduler) SelectNext(ready []*Process) int {
	return minIndex(ready, func(proc *Process) int64 { return proc.Priority })
}

// RoundRobinScheduler dispatches in ready-queue order and grants each dispatch
// a fixed quantum. Preempted processes rejoin at the back of the queue.
type RoundRobinScheduler struct {
	quantum int64
}

// NewRoundRobinScheduler returns ErrInvalidQuantum for a non-positive quantum.
func NewRoundRobinScheduler(quantum int64) (*RoundRobinScheduler, error) {
	if quantum <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidQuantum, quantum)
	}
	return &RoundRobinScheduler{quantum: quantum}, nil
}

func (r *RoundRobinScheduler) Name() string                { return SchedulerRoundRobin }
func (r *RoundRobinScheduler) SelectNext(_ []*Process) int { return 0 }
func (r *RoundRobinScheduler) Quantum() int64              { return r.quantum }

// minIndex returns the index of the smallest key, ties going to the earliest
// queue position. Equivalent to a stable sort on (key, position).
func minIndex(ready []*Process, key func(*Process) int64) int {
	best := 0
	for i := 1; i < len(ready); i++ {
		if key(ready[i]) < key(ready[best]) {
			best = i
		}
	}
	return best
}

// schedulerAliases maps accepted spellings to canonical scheduler names.
var schedulerAliases = map[string]string{
	"":                  SchedulerFCFS,
	SchedulerFCFS:       SchedulerFCFS,
	"fifo":              SchedulerFCFS,
	SchedulerSJF:        SchedulerSJF,
	SchedulerPriority:   SchedulerPriority,
	SchedulerRoundRobin: SchedulerRoundRobin,
	"rr":                SchedulerRoundRobin,
}

// IsValidScheduler returns true if name (or one of its aliases) is recognized.
// Empty string is valid and means fcfs.
func IsValidScheduler(name string) bool {
	_, ok := schedulerAliases[name]
	return ok
}

// CanonicalSchedulerName resolves aliases; unknown names are returned unchanged.
func CanonicalSchedulerName(name string) string {
	if canonical, ok := schedulerAliases[name]; ok {
		return canonical
	}
	return name
}

// ValidSchedulerNames returns the canonical scheduler names in sorted order.
func ValidSchedulerNames() []string {
	seen := map[string]bool{}
	names := make([]string, 0, 4)
	for _, canonical := range schedulerAliases {
		if !seen[canonical] {
			seen[canonical] = true
			names = append(names, canonical)
		}
	}
	sort.Strings(names)
	return names
}

// NewScheduler creates an InstanceScheduler by name.
// Valid names: "fcfs" (default), "sjf", "priority", "round-robin" (alias "rr").
// The quantum is only read for round-robin.
func NewScheduler(name string, quantum int64) (InstanceScheduler, error) {
	switch CanonicalSchedulerName(name) {
	case SchedulerFCFS:
		return &FCFSScheduler{}, nil
	case SchedulerSJF:
		return &SJFScheduler{}, nil
	case SchedulerPriority:
		return &PriorityScheduler{}, nil
	case SchedulerRoundRobin:
		return NewRoundRobinScheduler(quantum)
	default:
		return nil, fmt.Errorf("%w %q; valid: %v", ErrUnknownScheduler, name, ValidSchedulerNames())
	}
}
