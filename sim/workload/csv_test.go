package workload

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/schedsim/sim"
)

func TestLoadCSV_MixedColumnCounts(t *testing.T) {
	input := `# id,burst,arrival,priority,io_offset,io_duration
P1,10,0,1,2,3
P2, 6, 2
P3,8,4,2
`
	descs, err := LoadCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []sim.ProcessDescriptor{
		{ID: "P1", BurstTime: 10, ArrivalTime: 0, Priority: 1, IOOffset: 2, IODuration: 3},
		{ID: "P2", BurstTime: 6, ArrivalTime: 2, IOOffset: sim.NoIO},
		{ID: "P3", BurstTime: 8, ArrivalTime: 4, Priority: 2, IOOffset: sim.NoIO},
	}, descs)
}

func TestLoadCSV_SkipsHeader(t *testing.T) {
	descs, err := LoadCSV(strings.NewReader("id,burst,arrival\nA,3,0\n"))
	require.NoError(t, err)
	require.Len(t, descs, 1)
	assert.Equal(t, "A", descs[0].ID)
}

func TestLoadCSV_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"five fields", "P1,1,0,1,2\n", "expected 3, 4 or 6 fields"},
		{"non-numeric arrival", "P1,4,soon\n", "arrival"},
		{"invalid descriptor", "P1,4,0,1,4,1\n", "io offset"},
		{"duplicate id", "P1,1,0\nP1,2,0\n", "duplicate"},
		{"bad row after header", "id,burst,arrival\nP1,x,0\n", "line 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCSV(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, SampleProcesses()))

	descs, err := LoadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, SampleProcesses(), descs)
}

func TestLoadCSV_Empty(t *testing.T) {
	descs, err := LoadCSV(strings.NewReader("# nothing here\n"))
	require.NoError(t, err)
	assert.Empty(t, descs)
}
