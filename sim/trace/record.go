// Package trace provides timeline recording for scheduling simulations.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// Slice is a maximal run of consecutive ticks during which one process held a
// resource (the CPU or the I/O device). Stop is exclusive.
type Slice struct {
	ProcessID string `json:"pid" yaml:"pid"`
	Start     int64  `json:"start" yaml:"start"`
	Stop      int64  `json:"stop" yaml:"stop"`
}

// Len returns the number of ticks covered by the slice.
func (s Slice) Len() int64 {
	return s.Stop - s.Start
}

// TransitionRecord captures a single process state change.
type TransitionRecord struct {
	ProcessID string `json:"pid" yaml:"pid"`
	Clock     int64  `json:"clock" yaml:"clock"`
	From      string `json:"from" yaml:"from"`
	To        string `json:"to" yaml:"to"`
	Reason    string `json:"reason,omitempty" yaml:"reason,omitempty"`
}
