package trace

// TraceLevel controls the verbosity of timeline tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelTimeline captures CPU and I/O occupancy slices plus state transitions.
	TraceLevelTimeline TraceLevel = "timeline"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:     true,
	TraceLevelTimeline: true,
	"":                 true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// Enabled reports whether anything is recorded at this configuration.
func (c TraceConfig) Enabled() bool {
	return c.Level == TraceLevelTimeline
}

// SimulationTrace collects the timeline of one simulation run.
type SimulationTrace struct {
	Config      TraceConfig        `json:"-" yaml:"-"`
	CPU         []Slice            `json:"cpu" yaml:"cpu"`
	IO          []Slice            `json:"io" yaml:"io"`
	Transitions []TransitionRecord `json:"transitions" yaml:"transitions"`
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:      config,
		CPU:         make([]Slice, 0),
		IO:          make([]Slice, 0),
		Transitions: make([]TransitionRecord, 0),
	}
}

// RecordCPUTick marks the CPU as held by pid during tick.
// Consecutive ticks of the same process extend the current slice.
func (st *SimulationTrace) RecordCPUTick(pid string, tick int64) {
	st.CPU = extend(st.CPU, pid, tick)
}

// RecordIOTick marks the I/O device as servicing pid during tick.
func (st *SimulationTrace) RecordIOTick(pid string, tick int64) {
	st.IO = extend(st.IO, pid, tick)
}

// RecordTransition appends a state transition record.
func (st *SimulationTrace) RecordTransition(record TransitionRecord) {
	st.Transitions = append(st.Transitions, record)
}

func extend(slices []Slice, pid string, tick int64) []Slice {
	if n := len(slices); n > 0 {
		last := &slices[n-1]
		if last.ProcessID == pid && last.Stop == tick {
			last.Stop = tick + 1
			return slices
		}
	}
	return append(slices, Slice{ProcessID: pid, Start: tick, Stop: tick + 1})
}
