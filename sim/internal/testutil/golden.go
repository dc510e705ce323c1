// Package testutil provides shared test infrastructure for the schedsim engine.
// It consolidates golden dataset types and assertion helpers used across
// sim/ and sim/report/ test packages.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one process set replayed under one discipline.
type GoldenTestCase struct {
	Name      string             `json:"name"`
	Scheduler string             `json:"scheduler"`
	Quantum   int64              `json:"quantum"`
	Processes []GoldenDescriptor `json:"processes"`
	Expected  GoldenExpectedRun  `json:"expected"`
}

// GoldenDescriptor mirrors sim.ProcessDescriptor without importing sim.
type GoldenDescriptor struct {
	ID         string `json:"id"`
	Arrival    int64  `json:"arrival"`
	Burst      int64  `json:"burst"`
	Priority   int64  `json:"priority"`
	IOOffset   int64  `json:"io_offset"`
	IODuration int64  `json:"io_duration"`
}

// GoldenExpectedRun holds the exact outcome of a golden run.
type GoldenExpectedRun struct {
	Makespan        int64           `json:"makespan"`
	ContextSwitches int             `json:"context_switches"`
	CPUBusyTicks    int64           `json:"cpu_busy_ticks"`
	IOBusyTicks     int64           `json:"io_busy_ticks"`
	Processes       []GoldenProcess `json:"processes"`
	CPU             []GoldenSlice   `json:"cpu"`
	IO              []GoldenSlice   `json:"io"`
}

// GoldenProcess holds the expected per-process timings, in descriptor order.
type GoldenProcess struct {
	ID            string `json:"id"`
	Completion    int64  `json:"completion"`
	Turnaround    int64  `json:"turnaround"`
	ReadyWait     int64  `json:"ready_wait"`
	IOWait        int64  `json:"io_wait"`
	FirstDispatch int64  `json:"first_dispatch"`
	Dispatches    int    `json:"dispatches"`
}

// GoldenSlice is a contiguous occupancy interval; Stop is exclusive.
type GoldenSlice struct {
	PID   string `json:"pid"`
	Start int64  `json:"start"`
	Stop  int64  `json:"stop"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
