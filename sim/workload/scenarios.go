package workload

import "github.com/inference-sim/schedsim/sim"

// SampleProcesses returns the built-in three-process example used when no
// workload is supplied.
func SampleProcesses() []sim.ProcessDescriptor {
	return []sim.ProcessDescriptor{
		{ID: "P1", ArrivalTime: 0, BurstTime: 10, Priority: 1, IOOffset: 2, IODuration: 3},
		{ID: "P2", ArrivalTime: 2, BurstTime: 6, Priority: 1, IOOffset: 1, IODuration: 2},
		{ID: "P3", ArrivalTime: 4, BurstTime: 8, Priority: 1, IOOffset: 3, IODuration: 1},
	}
}

// Built-in scenario presets for common workload patterns.
// Each returns a valid WorkloadSpec ready for use with GenerateProcesses.

// ScenarioCPUBound creates a spec where no process issues I/O.
func ScenarioCPUBound(seed int64, n int) *WorkloadSpec {
	never := 0.0
	return &WorkloadSpec{
		Version: CurrentVersion, Seed: seed, NumProcesses: n,
		Burst: Uniform(4, 16),
		IO:    &IOSpec{Probability: &never},
	}
}

// ScenarioIOHeavy creates a spec where every process issues a long I/O request.
func ScenarioIOHeavy(seed int64, n int) *WorkloadSpec {
	always := 1.0
	return &WorkloadSpec{
		Version: CurrentVersion, Seed: seed, NumProcesses: n,
		IO: &IOSpec{Probability: &always, Duration: Uniform(3, 9)},
	}
}

// ScenarioSimultaneous creates a spec where every process arrives at tick 0,
// so the dispatch policy alone decides the order.
func ScenarioSimultaneous(seed int64, n int) *WorkloadSpec {
	return &WorkloadSpec{
		Version: CurrentVersion, Seed: seed, NumProcesses: n,
		Arrival: Constant(0),
	}
}

// scenarios maps preset names to constructors for the CLI.
var scenarios = map[string]func(seed int64, n int) *WorkloadSpec{
	"cpu-bound":    ScenarioCPUBound,
	"io-heavy":     ScenarioIOHeavy,
	"simultaneous": ScenarioSimultaneous,
}

// ScenarioByName returns the named preset, or false when unknown.
func ScenarioByName(name string, seed int64, n int) (*WorkloadSpec, bool) {
	f, ok := scenarios[name]
	if !ok {
		return nil, false
	}
	return f(seed, n), true
}

// ScenarioNames lists the preset names accepted by ScenarioByName.
func ScenarioNames() []string {
	return []string{"cpu-bound", "io-heavy", "simultaneous"}
}
