package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessDescriptor_Validate(t *testing.T) {
	tests := []struct {
		name    string
		desc    ProcessDescriptor
		wantErr error
	}{
		{"no io", ProcessDescriptor{ID: "P1", BurstTime: 5, IOOffset: NoIO}, nil},
		{"io inside burst", ProcessDescriptor{ID: "P1", BurstTime: 5, IOOffset: 4, IODuration: 1}, nil},
		{"io offset zero accepted", ProcessDescriptor{ID: "P1", BurstTime: 5, IOOffset: 0, IODuration: 2}, nil},
		{"empty id", ProcessDescriptor{BurstTime: 5, IOOffset: NoIO}, ErrEmptyID},
		{"negative arrival", ProcessDescriptor{ID: "P1", ArrivalTime: -1, BurstTime: 5, IOOffset: NoIO}, ErrInvalidArrival},
		{"zero burst", ProcessDescriptor{ID: "P1", IOOffset: NoIO}, ErrInvalidBurst},
		{"offset equals burst", ProcessDescriptor{ID: "P1", BurstTime: 5, IOOffset: 5, IODuration: 1}, ErrInvalidIOOffset},
		{"offset below -1", ProcessDescriptor{ID: "P1", BurstTime: 5, IOOffset: -2, IODuration: 1}, ErrInvalidIOOffset},
		{"zero io duration", ProcessDescriptor{ID: "P1", BurstTime: 5, IOOffset: 2}, ErrInvalidIODuration},
		{"io duration ignored without io", ProcessDescriptor{ID: "P1", BurstTime: 5, IOOffset: NoIO, IODuration: -3}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.desc.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateDescriptors_DuplicateID(t *testing.T) {
	descs := []ProcessDescriptor{
		{ID: "P1", BurstTime: 1, IOOffset: NoIO},
		{ID: "P2", BurstTime: 1, IOOffset: NoIO},
		{ID: "P1", BurstTime: 2, IOOffset: NoIO},
	}
	err := ValidateDescriptors(descs)
	require.ErrorIs(t, err, ErrDuplicateID)
	assert.Contains(t, err.Error(), "descriptor[2]")
}

func TestValidateDescriptors_Empty(t *testing.T) {
	assert.NoError(t, ValidateDescriptors(nil))
}

func TestNewProcess_InitialState(t *testing.T) {
	desc := ProcessDescriptor{ID: "P1", ArrivalTime: 3, BurstTime: 7, Priority: 2, IOOffset: 2, IODuration: 4}
	p := NewProcess(desc)

	assert.Equal(t, desc, p.ProcessDescriptor)
	assert.Equal(t, StateNotArrived, p.State)
	assert.Equal(t, int64(7), p.RemainingTime)
	assert.Zero(t, p.CPUTimeExecuted)
	assert.False(t, p.HasIssuedIO)
	assert.Equal(t, int64(-1), p.CompletionTime)
	assert.Equal(t, int64(-1), p.FirstDispatchTime)
	assert.Equal(t, int64(-1), p.ResponseTime())
}

func TestProcess_Reset_RestoresInitialValues(t *testing.T) {
	// GIVEN a process that has been partially run
	p := NewProcess(ProcessDescriptor{ID: "P1", BurstTime: 4, IOOffset: 1, IODuration: 2})
	p.State = StateInIO
	p.RemainingTime = 1
	p.CPUTimeExecuted = 3
	p.IORemainingTime = 1
	p.HasIssuedIO = true
	p.ReadyWaitTicks = 5
	p.IOWaitTicks = 2
	p.FirstDispatchTime = 0
	p.Dispatches = 2

	// WHEN it is reset
	p.Reset()

	// THEN it matches a freshly derived process
	assert.Equal(t, NewProcess(p.ProcessDescriptor), p)
}

func TestProcess_ResponseTime(t *testing.T) {
	p := NewProcess(ProcessDescriptor{ID: "P1", ArrivalTime: 2, BurstTime: 4, IOOffset: NoIO})
	p.FirstDispatchTime = 6
	assert.Equal(t, int64(4), p.ResponseTime())
}

func TestProcessDescriptor_HasIO(t *testing.T) {
	assert.False(t, ProcessDescriptor{IOOffset: NoIO}.HasIO())
	assert.True(t, ProcessDescriptor{IOOffset: 0}.HasIO())
}
