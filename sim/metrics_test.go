package sim

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMetrics_Aggregates(t *testing.T) {
	procs := []ProcessResult{
		{ProcessDescriptor: ProcessDescriptor{ID: "a"}, CompletionTime: 4, TurnaroundTime: 4, ReadyWaitTicks: 0, IOWaitTicks: 2, ResponseTime: 0},
		{ProcessDescriptor: ProcessDescriptor{ID: "b"}, CompletionTime: 10, TurnaroundTime: 8, ReadyWaitTicks: 3, IOWaitTicks: 0, ResponseTime: 2},
	}

	m := NewMetrics(procs, 10, 8, 3, 2)

	assert.Equal(t, 2, m.CompletedProcesses)
	assert.Equal(t, int64(2), m.CPUIdleTicks)
	assert.Equal(t, 6.0, m.AvgTurnaround)
	assert.Equal(t, 8.0, m.MaxTurnaround)
	// sample standard deviation of {4, 8}
	assert.InDelta(t, math.Sqrt(8), m.StdDevTurnaround, 1e-9)
	assert.Equal(t, 1.5, m.AvgReadyWait)
	assert.Equal(t, 1.0, m.AvgIOWait)
	assert.Equal(t, 1.0, m.AvgResponse)
	assert.Equal(t, 0.8, m.CPUUtilization)
	assert.Equal(t, 0.2, m.Throughput)
	assert.Equal(t, 2, m.ContextSwitches)
	assert.Equal(t, int64(3), m.IOBusyTicks)
}

func TestNewMetrics_SingleProcessHasZeroStdDev(t *testing.T) {
	procs := []ProcessResult{{CompletionTime: 5, TurnaroundTime: 5}}
	m := NewMetrics(procs, 5, 5, 0, 0)
	assert.Zero(t, m.StdDevTurnaround)
	assert.Equal(t, 5.0, m.AvgTurnaround)
}

func TestNewMetrics_SkipsIncompleteProcesses(t *testing.T) {
	procs := []ProcessResult{
		{CompletionTime: 3, TurnaroundTime: 3},
		{CompletionTime: -1},
	}
	m := NewMetrics(procs, 3, 3, 0, 0)
	assert.Equal(t, 1, m.CompletedProcesses)
	assert.Equal(t, 3.0, m.AvgTurnaround)
}

func TestNewMetrics_Empty(t *testing.T) {
	assert.Equal(t, Metrics{}, NewMetrics(nil, 0, 0, 0, 0))
}

func TestSimulator_Result_InputOrder(t *testing.T) {
	// GIVEN descriptors where the second one completes first
	descs := []ProcessDescriptor{
		{ID: "long", BurstTime: 6, IOOffset: NoIO},
		{ID: "short", BurstTime: 1, IOOffset: NoIO},
	}
	res := mustSimulate(t, SimConfig{Scheduler: SchedulerSJF}, descs)

	// THEN results keep the input order
	assert.Equal(t, "long", res.Processes[0].ID)
	assert.Equal(t, "short", res.Processes[1].ID)
	assert.Equal(t, SchedulerSJF, res.Scheduler)
	assert.Zero(t, res.Quantum)
}

func TestProcessResult_StringShowsOutcome(t *testing.T) {
	// GIVEN a finished single-process run
	res := mustSimulate(t, SimConfig{}, []ProcessDescriptor{{ID: "A", BurstTime: 5, IOOffset: NoIO}})

	// THEN printing the result shows timings, not the descriptor
	for _, s := range []string{res.Processes[0].String(), fmt.Sprintf("%v", res.Processes[0])} {
		assert.Equal(t, "Result[A, completion=5, turnaround=5, readyWait=0, ioWait=0, response=0, dispatches=1]", s)
	}
}
