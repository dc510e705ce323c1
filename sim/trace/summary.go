package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	CPUSlices      int
	IOSlices       int
	CPUBusyTicks   int64
	IOBusyTicks    int64
	Span           int64            // end of the last recorded slice
	SlicesByPID    map[string]int   // process ID → number of CPU slices
	MaxCPUGapByPID map[string]int64 // process ID → longest gap between consecutive CPU slices
	Transitions    map[string]int   // "from->to" → count
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		SlicesByPID:    make(map[string]int),
		MaxCPUGapByPID: make(map[string]int64),
		Transitions:    make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.CPUSlices = len(st.CPU)
	summary.IOSlices = len(st.IO)

	lastStop := make(map[string]int64)
	for _, s := range st.CPU {
		summary.CPUBusyTicks += s.Len()
		summary.SlicesByPID[s.ProcessID]++
		if prev, ok := lastStop[s.ProcessID]; ok {
			if gap := s.Start - prev; gap > summary.MaxCPUGapByPID[s.ProcessID] {
				summary.MaxCPUGapByPID[s.ProcessID] = gap
			}
		} else {
			summary.MaxCPUGapByPID[s.ProcessID] = 0
		}
		lastStop[s.ProcessID] = s.Stop
		summary.Span = max(summary.Span, s.Stop)
	}
	for _, s := range st.IO {
		summary.IOBusyTicks += s.Len()
		summary.Span = max(summary.Span, s.Stop)
	}
	for _, tr := range st.Transitions {
		summary.Transitions[tr.From+"->"+tr.To]++
	}
	return summary
}
