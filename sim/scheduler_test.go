package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readyProcs(descs ...ProcessDescriptor) []*Process {
	out := make([]*Process, len(descs))
	for i, d := range descs {
		if d.IOOffset == 0 {
			d.IOOffset = NoIO
		}
		out[i] = NewProcess(d)
		out[i].State = StateReady
	}
	return out
}

func TestFCFSScheduler_SelectsFront(t *testing.T) {
	ready := readyProcs(
		ProcessDescriptor{ID: "c", BurstTime: 1, Priority: 9},
		ProcessDescriptor{ID: "a", BurstTime: 9, Priority: 1},
	)
	assert.Equal(t, 0, (&FCFSScheduler{}).SelectNext(ready))
}

func TestSJFScheduler_SelectsLeastRemaining(t *testing.T) {
	ready := readyProcs(
		ProcessDescriptor{ID: "long", BurstTime: 8},
		ProcessDescriptor{ID: "short", BurstTime: 2},
		ProcessDescriptor{ID: "mid", BurstTime: 4},
	)
	assert.Equal(t, 1, (&SJFScheduler{}).SelectNext(ready))
}

func TestSJFScheduler_UsesRemainingNotBurst(t *testing.T) {
	// GIVEN a long process that has already executed most of its burst
	ready := readyProcs(
		ProcessDescriptor{ID: "fresh", BurstTime: 4},
		ProcessDescriptor{ID: "resumed", BurstTime: 10},
	)
	ready[1].RemainingTime = 3

	// THEN SJF compares remaining time
	assert.Equal(t, 1, (&SJFScheduler{}).SelectNext(ready))
}

func TestSJFScheduler_TieBreakByQueuePosition(t *testing.T) {
	ready := readyProcs(
		ProcessDescriptor{ID: "x", BurstTime: 5},
		ProcessDescriptor{ID: "y", BurstTime: 3},
		ProcessDescriptor{ID: "z", BurstTime: 3},
	)
	assert.Equal(t, 1, (&SJFScheduler{}).SelectNext(ready))
}

func TestPriorityScheduler_LowestValueWins(t *testing.T) {
	ready := readyProcs(
		ProcessDescriptor{ID: "a", BurstTime: 1, Priority: 3},
		ProcessDescriptor{ID: "b", BurstTime: 1, Priority: 1},
		ProcessDescriptor{ID: "c", BurstTime: 1, Priority: 1},
	)
	assert.Equal(t, 1, (&PriorityScheduler{}).SelectNext(ready))
}

func TestPriorityScheduler_TieBreakByQueuePosition(t *testing.T) {
	// GIVEN equal priorities, the shortest job queued last
	ready := readyProcs(
		ProcessDescriptor{ID: "x", BurstTime: 7, Priority: 2},
		ProcessDescriptor{ID: "y", BurstTime: 4, Priority: 2},
		ProcessDescriptor{ID: "z", BurstTime: 1, Priority: 2},
	)

	// THEN the queue front wins; burst plays no part
	assert.Equal(t, 0, (&PriorityScheduler{}).SelectNext(ready))
}

func TestRoundRobinScheduler_Quantum(t *testing.T) {
	rr, err := NewRoundRobinScheduler(3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), rr.Quantum())
	assert.Equal(t, 0, rr.SelectNext(readyProcs(ProcessDescriptor{ID: "a", BurstTime: 1}, ProcessDescriptor{ID: "b", BurstTime: 1})))

	_, err = NewRoundRobinScheduler(0)
	assert.ErrorIs(t, err, ErrInvalidQuantum)
}

func TestNonPreemptiveSchedulers_ZeroQuantum(t *testing.T) {
	for _, s := range []InstanceScheduler{&FCFSScheduler{}, &SJFScheduler{}, &PriorityScheduler{}} {
		assert.Zero(t, s.Quantum(), s.Name())
	}
}

func TestNewScheduler_ValidNames(t *testing.T) {
	tests := []struct {
		name     string
		wantName string
	}{
		{"", SchedulerFCFS},
		{"fcfs", SchedulerFCFS},
		{"fifo", SchedulerFCFS},
		{"sjf", SchedulerSJF},
		{"priority", SchedulerPriority},
		{"round-robin", SchedulerRoundRobin},
		{"rr", SchedulerRoundRobin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewScheduler(tt.name, DefaultQuantum)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, s.Name())
		})
	}
}

func TestNewScheduler_UnknownName(t *testing.T) {
	_, err := NewScheduler("lottery", 1)
	require.ErrorIs(t, err, ErrUnknownScheduler)
	assert.Contains(t, err.Error(), "lottery")
}

func TestValidSchedulerNames_SortedCanonical(t *testing.T) {
	assert.Equal(t, []string{"fcfs", "priority", "round-robin", "sjf"}, ValidSchedulerNames())
	assert.True(t, IsValidScheduler("rr"))
	assert.False(t, IsValidScheduler("RR"))
}
