// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/schedsim/sim/trace"
)

// Simulator is the core object that holds simulation time, the single CPU, the
// single I/O device, and the run-state of every process for one run.
type Simulator struct {
	Clock int64
	// Processes is the run-state arena, in descriptor input order.
	Processes []*Process
	// ReadyQ holds processes eligible for the CPU, in insertion order.
	ReadyQ *ProcessQueue
	// IOQ holds processes that issued I/O and wait for the device (FIFO, never reordered).
	IOQ       *ProcessQueue
	CPU       *Process // nil when idle
	IODevice  *Process // nil when idle
	Scheduler InstanceScheduler
	// Trace is nil unless the timeline trace level is configured.
	Trace *trace.SimulationTrace

	quantumRemaining int64
	completed        int
	lastDispatched   *Process
	contextSwitches  int
	cpuBusyTicks     int64
	ioBusyTicks      int64
	tickBudget       int64
}

// NewSimulator validates the configuration and descriptors and derives a fresh
// run-state for every descriptor. Configuration errors are returned before any
// tick is simulated.
func NewSimulator(cfg SimConfig, descs []ProcessDescriptor) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	if err := ValidateDescriptors(descs); err != nil {
		return nil, fmt.Errorf("invalid process set: %w", err)
	}
	scheduler, err := NewScheduler(cfg.Scheduler, cfg.Quantum)
	if err != nil {
		return nil, err
	}

	s := &Simulator{
		Processes: make([]*Process, len(descs)),
		ReadyQ:    &ProcessQueue{},
		IOQ:       &ProcessQueue{},
		Scheduler: scheduler,
	}
	if (trace.TraceConfig{Level: cfg.TraceLevel}).Enabled() {
		s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: cfg.TraceLevel})
	}

	var maxArrival int64
	s.tickBudget = int64(len(descs)) + 1
	for i, d := range descs {
		s.Processes[i] = NewProcess(d)
		maxArrival = max(maxArrival, d.ArrivalTime)
		s.tickBudget += d.BurstTime
		if d.HasIO() {
			s.tickBudget += d.IODuration
		}
	}
	s.tickBudget += maxArrival

	return s, nil
}

// Simulate runs one discipline over descs and returns the finished result.
func Simulate(cfg SimConfig, descs []ProcessDescriptor) (*Result, error) {
	s, err := NewSimulator(cfg, descs)
	if err != nil {
		return nil, err
	}
	return s.Run(), nil
}

// Done reports whether every process has completed. An empty process set is
// done before the first tick.
func (sim *Simulator) Done() bool {
	return sim.completed == len(sim.Processes)
}

// Run advances the clock one tick at a time until every process has completed.
func (sim *Simulator) Run() *Result {
	logrus.Infof("[tick %05d] Starting %s simulation with %d processes", sim.Clock, sim.Scheduler.Name(), len(sim.Processes))
	for !sim.Done() {
		if sim.Clock >= sim.tickBudget {
			panic(fmt.Sprintf("simulation exceeded tick budget %d with %d/%d processes completed",
				sim.tickBudget, sim.completed, len(sim.Processes)))
		}
		sim.Step()
	}
	logrus.Infof("[tick %05d] Simulation ended", sim.Clock)
	return sim.Result()
}

// Step simulates exactly one tick. The order of the phases is load-bearing:
// arrivals and I/O starts happen before waiting-time accrual, accrual before
// the dispatch decision, and a process leaving for I/O skips the completion
// check of the same tick.
func (sim *Simulator) Step() {
	now := sim.Clock

	sim.admitArrivals(now)
	sim.startIO(now)
	sim.accrueWaiting(now)
	sim.dispatch(now)
	movedToIO := sim.executeCPU(now)
	sim.executeIO(now)
	if !movedToIO {
		sim.completeOrPreempt(now)
	}

	sim.Clock++
	sim.checkInvariants()
}

// admitArrivals moves processes arriving at now into the ready queue, in input order.
func (sim *Simulator) admitArrivals(now int64) {
	for _, p := range sim.Processes {
		if p.State == StateNotArrived && p.ArrivalTime == now {
			p.eligibleAt = now
			sim.transition(now, p, StateReady, "arrival")
			sim.ReadyQ.Enqueue(p)
		}
	}
}

// startIO hands the oldest waiting process to an idle I/O device.
func (sim *Simulator) startIO(now int64) {
	if sim.IODevice != nil || sim.IOQ.Len() == 0 {
		return
	}
	p := sim.IOQ.Dequeue()
	sim.transition(now, p, StateInIO, "io-start")
	sim.IODevice = p
}

// accrueWaiting charges one tick of waiting to every queued process. A process
// is not charged on the first tick it is eligible for dispatch.
func (sim *Simulator) accrueWaiting(now int64) {
	for _, p := range sim.ReadyQ.Items() {
		if p.eligibleAt < now {
			p.ReadyWaitTicks++
		}
	}
	for _, p := range sim.IOQ.Items() {
		p.IOWaitTicks++
	}
}

// dispatch asks the scheduler to place a ready process on an idle CPU.
func (sim *Simulator) dispatch(now int64) {
	if sim.CPU != nil || sim.ReadyQ.Len() == 0 {
		return
	}
	idx := sim.Scheduler.SelectNext(sim.ReadyQ.Items())
	if idx < 0 || idx >= sim.ReadyQ.Len() {
		panic(fmt.Sprintf("%s scheduler selected index %d from ready queue of length %d",
			sim.Scheduler.Name(), idx, sim.ReadyQ.Len()))
	}
	p := sim.ReadyQ.RemoveAt(idx)
	if p.State != StateReady {
		panic(fmt.Sprintf("dispatching %s in state %s", p.ID, p.State))
	}

	sim.transition(now, p, StateOnCPU, "dispatch")
	p.Dispatches++
	if sim.lastDispatched != nil && sim.lastDispatched != p {
		sim.contextSwitches++
	}
	sim.lastDispatched = p
	sim.CPU = p
	sim.quantumRemaining = sim.Scheduler.Quantum()
	logrus.Debugf("[tick %05d] dispatch %s (remaining=%d, ready=%s)", now, p.ID, p.RemainingTime, sim.ReadyQ)
}

// executeCPU runs the on-CPU process for one tick. It returns true when the
// process issued its I/O request and vacated the CPU this tick.
func (sim *Simulator) executeCPU(now int64) bool {
	p := sim.CPU
	if p == nil {
		return false
	}
	if p.FirstDispatchTime == -1 {
		p.FirstDispatchTime = now
	}
	if sim.Trace != nil {
		sim.Trace.RecordCPUTick(p.ID, now)
	}
	sim.cpuBusyTicks++
	p.RemainingTime--
	p.CPUTimeExecuted++
	if sim.quantumRemaining > 0 {
		sim.quantumRemaining--
	}

	if p.HasIO() && !p.HasIssuedIO && p.CPUTimeExecuted == p.IOOffset {
		p.HasIssuedIO = true
		p.IORemainingTime = p.IODuration
		sim.transition(now, p, StateWaiting, "io-request")
		sim.IOQ.Enqueue(p)
		sim.CPU = nil
		logrus.Debugf("[tick %05d] %s requests I/O for %d ticks", now, p.ID, p.IODuration)
		return true
	}
	return false
}

// executeIO services the process on the I/O device for one tick.
func (sim *Simulator) executeIO(now int64) {
	p := sim.IODevice
	if p == nil {
		return
	}
	if sim.Trace != nil {
		sim.Trace.RecordIOTick(p.ID, now)
	}
	sim.ioBusyTicks++
	p.IORemainingTime--
	if p.IORemainingTime <= 0 {
		p.eligibleAt = now + 1
		sim.transition(now, p, StateReady, "io-complete")
		sim.ReadyQ.Enqueue(p)
		sim.IODevice = nil
		logrus.Debugf("[tick %05d] %s finished I/O", now, p.ID)
	}
}

// completeOrPreempt retires a finished CPU process, or preempts a surviving one
// whose round-robin quantum is exhausted.
func (sim *Simulator) completeOrPreempt(now int64) {
	p := sim.CPU
	if p == nil {
		return
	}
	if p.RemainingTime == 0 {
		p.CompletionTime = now + 1
		p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
		sim.transition(now, p, StateCompleted, "burst-complete")
		sim.completed++
		sim.CPU = nil
		logrus.Debugf("[tick %05d] %s completed (turnaround=%d)", now, p.ID, p.TurnaroundTime)
		return
	}
	if sim.Scheduler.Quantum() > 0 && sim.quantumRemaining == 0 {
		p.eligibleAt = now + 1
		sim.transition(now, p, StateReady, "preempt")
		sim.ReadyQ.Enqueue(p)
		sim.CPU = nil
		logrus.Debugf("[tick %05d] %s preempted (remaining=%d)", now, p.ID, p.RemainingTime)
	}
}

func (sim *Simulator) transition(now int64, p *Process, to ProcessState, reason string) {
	logrus.Tracef("[tick %05d] %s: %s -> %s (%s)", now, p.ID, p.State, to, reason)
	if sim.Trace != nil {
		sim.Trace.RecordTransition(trace.TransitionRecord{
			ProcessID: p.ID,
			Clock:     now,
			From:      string(p.State),
			To:        string(to),
			Reason:    reason,
		})
	}
	p.State = to
}

// checkInvariants panics on states that only a logic fault can produce.
func (sim *Simulator) checkInvariants() {
	onCPU, inIO := 0, 0
	for _, p := range sim.Processes {
		switch p.State {
		case StateOnCPU:
			onCPU++
			if p != sim.CPU {
				panic(fmt.Sprintf("%s is on-cpu but the CPU holds %v", p.ID, sim.CPU))
			}
		case StateInIO:
			inIO++
			if p != sim.IODevice {
				panic(fmt.Sprintf("%s is in-io but the device holds %v", p.ID, sim.IODevice))
			}
		}
		if p.RemainingTime < 0 {
			panic(fmt.Sprintf("%s has negative remaining time %d", p.ID, p.RemainingTime))
		}
	}
	if onCPU > 1 || inIO > 1 {
		panic(fmt.Sprintf("resource conflict at tick %d: %d processes on CPU, %d on I/O device", sim.Clock-1, onCPU, inIO))
	}
}
