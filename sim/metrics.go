// Tracks per-process results and run-wide aggregates such as average turnaround,
// waiting time, CPU utilization and throughput.

package sim

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/inference-sim/schedsim/sim/trace"
)

// ProcessResult is the finished, read-only view of one process after a run.
type ProcessResult struct {
	ProcessDescriptor `yaml:",inline"`

	CompletionTime    int64 `json:"completion" yaml:"completion"`
	TurnaroundTime    int64 `json:"turnaround" yaml:"turnaround"`
	ReadyWaitTicks    int64 `json:"ready_wait" yaml:"ready_wait"`
	IOWaitTicks       int64 `json:"io_wait" yaml:"io_wait"`
	FirstDispatchTime int64 `json:"first_dispatch" yaml:"first_dispatch"`
	ResponseTime      int64 `json:"response" yaml:"response"`
	Dispatches        int   `json:"dispatches" yaml:"dispatches"`
}

func (r ProcessResult) String() string {
	return fmt.Sprintf("Result[%s, completion=%d, turnaround=%d, readyWait=%d, ioWait=%d, response=%d, dispatches=%d]",
		r.ID, r.CompletionTime, r.TurnaroundTime, r.ReadyWaitTicks, r.IOWaitTicks, r.ResponseTime, r.Dispatches)
}

// Metrics aggregates statistics about one run for final reporting.
type Metrics struct {
	CompletedProcesses int   `json:"completed_processes" yaml:"completed_processes"`
	Makespan           int64 `json:"makespan" yaml:"makespan"` // ticks simulated
	CPUBusyTicks       int64 `json:"cpu_busy_ticks" yaml:"cpu_busy_ticks"`
	CPUIdleTicks       int64 `json:"cpu_idle_ticks" yaml:"cpu_idle_ticks"`
	IOBusyTicks        int64 `json:"io_busy_ticks" yaml:"io_busy_ticks"`
	ContextSwitches    int   `json:"context_switches" yaml:"context_switches"`

	AvgTurnaround    float64 `json:"avg_turnaround" yaml:"avg_turnaround"`
	StdDevTurnaround float64 `json:"stddev_turnaround" yaml:"stddev_turnaround"`
	MaxTurnaround    float64 `json:"max_turnaround" yaml:"max_turnaround"`
	AvgReadyWait     float64 `json:"avg_ready_wait" yaml:"avg_ready_wait"`
	AvgIOWait        float64 `json:"avg_io_wait" yaml:"avg_io_wait"`
	AvgResponse      float64 `json:"avg_response" yaml:"avg_response"`

	CPUUtilization float64 `json:"cpu_utilization" yaml:"cpu_utilization"` // busy ticks / makespan
	Throughput     float64 `json:"throughput" yaml:"throughput"`           // completed processes per tick
}

// Result is the output of one simulation run.
type Result struct {
	Scheduler string                 `json:"scheduler" yaml:"scheduler"`
	Quantum   int64                  `json:"quantum,omitempty" yaml:"quantum,omitempty"`
	Processes []ProcessResult        `json:"processes" yaml:"processes"`
	Metrics   Metrics                `json:"metrics" yaml:"metrics"`
	Timeline  *trace.SimulationTrace `json:"timeline,omitempty" yaml:"timeline,omitempty"`
}

// Result snapshots the current state of the run. Processes are reported in
// descriptor input order.
func (sim *Simulator) Result() *Result {
	res := &Result{
		Scheduler: sim.Scheduler.Name(),
		Quantum:   sim.Scheduler.Quantum(),
		Processes: make([]ProcessResult, len(sim.Processes)),
		Timeline:  sim.Trace,
	}
	for i, p := range sim.Processes {
		res.Processes[i] = ProcessResult{
			ProcessDescriptor: p.ProcessDescriptor,
			CompletionTime:    p.CompletionTime,
			TurnaroundTime:    p.TurnaroundTime,
			ReadyWaitTicks:    p.ReadyWaitTicks,
			IOWaitTicks:       p.IOWaitTicks,
			FirstDispatchTime: p.FirstDispatchTime,
			ResponseTime:      p.ResponseTime(),
			Dispatches:        p.Dispatches,
		}
	}
	res.Metrics = NewMetrics(res.Processes, sim.Clock, sim.cpuBusyTicks, sim.ioBusyTicks, sim.contextSwitches)
	return res
}

// NewMetrics computes run-wide aggregates. Averages only cover completed processes;
// an empty result yields zero values throughout.
func NewMetrics(processes []ProcessResult, makespan, cpuBusy, ioBusy int64, contextSwitches int) Metrics {
	m := Metrics{
		Makespan:        makespan,
		CPUBusyTicks:    cpuBusy,
		CPUIdleTicks:    makespan - cpuBusy,
		IOBusyTicks:     ioBusy,
		ContextSwitches: contextSwitches,
	}

	var turnaround, readyWait, ioWait, response []float64
	for _, p := range processes {
		if p.CompletionTime < 0 {
			continue
		}
		turnaround = append(turnaround, float64(p.TurnaroundTime))
		readyWait = append(readyWait, float64(p.ReadyWaitTicks))
		ioWait = append(ioWait, float64(p.IOWaitTicks))
		response = append(response, float64(p.ResponseTime))
	}
	m.CompletedProcesses = len(turnaround)
	if m.CompletedProcesses == 0 {
		return m
	}

	m.AvgTurnaround = stat.Mean(turnaround, nil)
	m.MaxTurnaround = floats.Max(turnaround)
	if len(turnaround) > 1 {
		m.StdDevTurnaround = stat.StdDev(turnaround, nil)
	}
	m.AvgReadyWait = stat.Mean(readyWait, nil)
	m.AvgIOWait = stat.Mean(ioWait, nil)
	m.AvgResponse = stat.Mean(response, nil)
	if makespan > 0 {
		m.CPUUtilization = float64(cpuBusy) / float64(makespan)
		m.Throughput = float64(m.CompletedProcesses) / float64(makespan)
	}
	return m
}
