// Defines the process model: the immutable ProcessDescriptor supplied by callers and the
// mutable Process run-state the simulator derives from it at the start of every run.

package sim

import (
	"errors"
	"fmt"
)

// NoIO marks a descriptor whose process never issues an I/O request.
const NoIO int64 = -1

// Configuration errors. Returned (wrapped) before any tick is simulated.
var (
	ErrEmptyID           = errors.New("process id must not be empty")
	ErrDuplicateID       = errors.New("duplicate process id")
	ErrInvalidArrival    = errors.New("arrival time must be non-negative")
	ErrInvalidBurst      = errors.New("burst time must be positive")
	ErrInvalidIOOffset   = errors.New("io offset must be -1 or in [0, burst)")
	ErrInvalidIODuration = errors.New("io duration must be positive when io is enabled")
)

// ProcessState is the logical location of a process within one simulation run.
type ProcessState string

const (
	StateNotArrived ProcessState = "not-arrived"
	StateReady      ProcessState = "ready"
	StateOnCPU      ProcessState = "on-cpu"
	StateWaiting    ProcessState = "waiting" // queued for the I/O device
	StateInIO       ProcessState = "in-io"
	StateCompleted  ProcessState = "completed"
)

// ProcessDescriptor is the static description of one simulated process.
// It is never mutated by the simulator.
type ProcessDescriptor struct {
	ID          string `json:"id" yaml:"id"`
	ArrivalTime int64  `json:"arrival" yaml:"arrival"`   // tick the process becomes eligible
	BurstTime   int64  `json:"burst" yaml:"burst"`       // total CPU ticks required
	Priority    int64  `json:"priority" yaml:"priority"` // lower value = higher priority
	// IOOffset is the number of executed CPU ticks after which the single I/O
	// request is issued. NoIO (-1) disables I/O; 0 is accepted but never fires,
	// since the check runs after a tick has executed.
	IOOffset   int64 `json:"io_offset" yaml:"io_offset"`
	IODuration int64 `json:"io_duration" yaml:"io_duration"` // ignored when IOOffset is NoIO
}

// HasIO reports whether the descriptor issues an I/O request.
func (d ProcessDescriptor) HasIO() bool {
	return d.IOOffset != NoIO
}

// Validate checks a single descriptor in isolation.
func (d ProcessDescriptor) Validate() error {
	if d.ID == "" {
		return ErrEmptyID
	}
	if d.ArrivalTime < 0 {
		return fmt.Errorf("process %q: %w, got %d", d.ID, ErrInvalidArrival, d.ArrivalTime)
	}
	if d.BurstTime <= 0 {
		return fmt.Errorf("process %q: %w, got %d", d.ID, ErrInvalidBurst, d.BurstTime)
	}
	if !d.HasIO() {
		return nil
	}
	if d.IOOffset < 0 || d.IOOffset >= d.BurstTime {
		return fmt.Errorf("process %q: %w, got offset %d with burst %d", d.ID, ErrInvalidIOOffset, d.IOOffset, d.BurstTime)
	}
	if d.IODuration <= 0 {
		return fmt.Errorf("process %q: %w, got %d", d.ID, ErrInvalidIODuration, d.IODuration)
	}
	return nil
}

func (d ProcessDescriptor) String() string {
	return fmt.Sprintf("Process[%s, arrival=%d, burst=%d, prio=%d, ioStart=%d, ioDur=%d]",
		d.ID, d.ArrivalTime, d.BurstTime, d.Priority, d.IOOffset, d.IODuration)
}

// ValidateDescriptors validates every descriptor and rejects duplicate ids.
// An empty slice is valid.
func ValidateDescriptors(descs []ProcessDescriptor) error {
	seen := make(map[string]int, len(descs))
	for i, d := range descs {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("descriptor[%d]: %w", i, err)
		}
		if j, ok := seen[d.ID]; ok {
			return fmt.Errorf("descriptor[%d]: %w %q (first seen at descriptor[%d])", i, ErrDuplicateID, d.ID, j)
		}
		seen[d.ID] = i
	}
	return nil
}

// Process is the mutable run-state of one process during a single simulation run.
// A Simulator owns every Process it creates; they are never shared across runs.
type Process struct {
	ProcessDescriptor

	State ProcessState

	RemainingTime   int64 // CPU ticks still required
	CPUTimeExecuted int64 // CPU ticks executed so far, compared against IOOffset
	IORemainingTime int64 // ticks left on the I/O device
	HasIssuedIO     bool  // guards the at-most-once I/O transition

	CompletionTime    int64 // tick after the final CPU tick; -1 until completed
	TurnaroundTime    int64 // CompletionTime - ArrivalTime
	ReadyWaitTicks    int64 // ticks spent in the ready queue while another process could run
	IOWaitTicks       int64 // ticks spent queued for the I/O device
	FirstDispatchTime int64 // first tick on the CPU; -1 until dispatched
	Dispatches        int   // number of times the process was placed on the CPU

	// eligibleAt is the first tick at which the process may be dispatched after
	// entering the ready queue. No ready wait accrues on that tick.
	eligibleAt int64
}

// NewProcess derives a fresh run-state from a descriptor.
func NewProcess(desc ProcessDescriptor) *Process {
	p := &Process{ProcessDescriptor: desc}
	p.Reset()
	return p
}

// Reset restores every dynamic field to its initial value.
func (p *Process) Reset() {
	p.State = StateNotArrived
	p.RemainingTime = p.BurstTime
	p.CPUTimeExecuted = 0
	p.IORemainingTime = 0
	p.HasIssuedIO = false
	p.CompletionTime = -1
	p.TurnaroundTime = 0
	p.ReadyWaitTicks = 0
	p.IOWaitTicks = 0
	p.FirstDispatchTime = -1
	p.Dispatches = 0
	p.eligibleAt = 0
}

// ResponseTime is the delay between arrival and first dispatch, or -1 if the
// process never reached the CPU.
func (p *Process) ResponseTime() int64 {
	if p.FirstDispatchTime < 0 {
		return -1
	}
	return p.FirstDispatchTime - p.ArrivalTime
}

// This method returns a human-readable string representation of a Process.
func (p *Process) String() string {
	return fmt.Sprintf("Process: (ID: %s, State: %s, Remaining: %d, Executed: %d)",
		p.ID, p.State, p.RemainingTime, p.CPUTimeExecuted)
}
