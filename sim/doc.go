// Package sim provides the discrete-time CPU scheduling simulation engine for schedsim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: ProcessDescriptor input and the Process run-state machine
//     (not-arrived → ready → on-cpu → waiting → in-io → ready → ... → completed)
//   - scheduler.go: the dispatch policies (FCFS, SJF, Priority, Round-Robin)
//   - simulator.go: the tick loop and its eight ordered phases
//
// # Architecture
//
// The sim package owns the engine and its value types; peripheral collaborators live in
// sub-packages:
//   - sim/trace/: per-tick timeline recording (CPU and I/O slices, transitions)
//   - sim/workload/: workload specs, seeded generation and CSV loading
//   - sim/report/: tables, Gantt charts and JSON/YAML encodings of results
//
// Every run builds a fresh Process arena from the immutable descriptors, so runs of
// different disciplines over the same input never observe each other.
//
// # Key Interfaces
//
//   - InstanceScheduler: select the next ready process for an idle CPU and report
//     the quantum (0 for non-preemptive disciplines)
package sim
