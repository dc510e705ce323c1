package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeSpecs_RenamesCollidingIDs(t *testing.T) {
	// GIVEN two generated specs that both name their processes P1..P3
	a := &WorkloadSpec{Seed: 1, NumProcesses: 3}
	b := &WorkloadSpec{Seed: 2, NumProcesses: 3}

	// WHEN composed
	merged, err := ComposeSpecs([]*WorkloadSpec{a, b})
	require.NoError(t, err)

	// THEN the second spec's processes are qualified with its position
	var ids []string
	for _, p := range merged.Processes {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"P1", "P2", "P3", "P1.2", "P2.2", "P3.2"}, ids)
	assert.Zero(t, merged.NumProcesses)
	assert.NoError(t, merged.Validate())
}

func TestComposeSpecs_PreservesExplicitProcesses(t *testing.T) {
	explicit := &WorkloadSpec{Processes: []ProcessSpec{{ID: "io", Burst: 4, IO: &IOPoint{Offset: 1, Duration: 2}}}}
	merged, err := ComposeSpecs([]*WorkloadSpec{explicit})
	require.NoError(t, err)
	assert.Equal(t, explicit.Processes, merged.Processes)
}

func TestComposeSpecs_Errors(t *testing.T) {
	_, err := ComposeSpecs(nil)
	assert.Error(t, err)

	_, err = ComposeSpecs([]*WorkloadSpec{{NumProcesses: -1}})
	assert.ErrorContains(t, err, "spec[0]")
}
