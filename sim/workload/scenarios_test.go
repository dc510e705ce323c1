package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/schedsim/sim"
)

func TestSampleProcesses_Valid(t *testing.T) {
	descs := SampleProcesses()
	require.Len(t, descs, 3)
	assert.NoError(t, sim.ValidateDescriptors(descs))
	for _, d := range descs {
		assert.True(t, d.HasIO(), d.ID)
	}
}

func TestScenarios_ValidateAndGenerate(t *testing.T) {
	for _, name := range ScenarioNames() {
		t.Run(name, func(t *testing.T) {
			spec, ok := ScenarioByName(name, 42, 12)
			require.True(t, ok)
			require.NoError(t, spec.Validate())

			descs, err := GenerateProcesses(spec)
			require.NoError(t, err)
			assert.Len(t, descs, 12)
		})
	}
}

func TestScenarioCPUBound_NoIO(t *testing.T) {
	descs, err := GenerateProcesses(ScenarioCPUBound(1, 10))
	require.NoError(t, err)
	for _, d := range descs {
		assert.False(t, d.HasIO(), d.ID)
	}
}

func TestScenarioSimultaneous_AllArriveAtZero(t *testing.T) {
	descs, err := GenerateProcesses(ScenarioSimultaneous(1, 6))
	require.NoError(t, err)
	for _, d := range descs {
		assert.Zero(t, d.ArrivalTime, d.ID)
	}
}

func TestScenarioByName_Unknown(t *testing.T) {
	_, ok := ScenarioByName("bursty", 1, 1)
	assert.False(t, ok)
}
