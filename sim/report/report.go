// Package report renders simulation results as tables, Gantt charts and
// machine-readable encodings.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/schedsim/sim"
	"github.com/inference-sim/schedsim/sim/trace"
)

// Output formats accepted by Write.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// IsValidFormat reports whether name is a recognized output format.
func IsValidFormat(name string) bool {
	switch name {
	case FormatTable, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// Write renders results in the named format. Table output prints one section per
// result followed by the comparison table; gantt adds a Gantt chart per section.
func Write(w io.Writer, format string, results []*sim.Result, gantt bool) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, results)
	case FormatYAML:
		return WriteYAML(w, results)
	case FormatTable:
		for _, res := range results {
			WriteTitle(w, Title(res))
			WriteTable(w, res)
			if gantt {
				WriteGantt(w, res.Timeline)
				WriteSliceSummary(w, res.Timeline)
			}
			_, _ = fmt.Fprintln(w)
		}
		if len(results) > 1 {
			WriteComparison(w, results)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q; valid: table, json, yaml", format)
	}
}

// Title names a result by discipline, including the quantum for round-robin.
func Title(res *sim.Result) string {
	if res.Quantum > 0 {
		return fmt.Sprintf("%s (q=%d)", res.Scheduler, res.Quantum)
	}
	return res.Scheduler
}

// WriteTitle prints a banner for one result section.
func WriteTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// WriteTable prints the per-process table with averages in the footer.
func WriteTable(w io.Writer, res *sim.Result) {
	rows := make([][]string, len(res.Processes))
	for i, p := range res.Processes {
		ioStart, ioDur := "-", "-"
		if p.HasIO() {
			ioStart, ioDur = itoa(p.IOOffset), itoa(p.IODuration)
		}
		rows[i] = []string{
			p.ID,
			itoa(p.ArrivalTime),
			itoa(p.BurstTime),
			itoa(p.Priority),
			ioStart,
			ioDur,
			itoa(p.CompletionTime),
			itoa(p.TurnaroundTime),
			itoa(p.ReadyWaitTicks),
			itoa(p.IOWaitTicks),
			itoa(p.ResponseTime),
		}
	}
	m := res.Metrics

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrive", "Burst", "Prio", "IOstart", "IOdur",
		"Complete", "Turnaround", "Wait(ready)", "Wait(IO)", "Response"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "", "",
		fmt.Sprintf("Makespan\n%d", m.Makespan),
		fmt.Sprintf("Average\n%.2f", m.AvgTurnaround),
		fmt.Sprintf("Average\n%.2f", m.AvgReadyWait),
		fmt.Sprintf("Average\n%.2f", m.AvgIOWait),
		fmt.Sprintf("Average\n%.2f", m.AvgResponse)})
	table.Render()
}

// WriteGantt prints the CPU timeline as a Gantt line. Idle gaps are shown as "-".
func WriteGantt(w io.Writer, tl *trace.SimulationTrace) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if tl == nil {
		_, _ = fmt.Fprintln(w, "(timeline not recorded)")
		return
	}
	slices := withIdle(tl.CPU)
	if len(slices) == 0 {
		_, _ = fmt.Fprintln(w, "(empty)")
		return
	}
	_, _ = fmt.Fprint(w, "|")
	for _, s := range slices {
		padding := strings.Repeat(" ", max(0, (8-len(s.ProcessID))/2))
		_, _ = fmt.Fprint(w, padding, s.ProcessID, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, s := range slices {
		_, _ = fmt.Fprint(w, itoa(s.Start), "\t")
		if i == len(slices)-1 {
			_, _ = fmt.Fprint(w, itoa(s.Stop))
		}
	}
	_, _ = fmt.Fprintln(w)
}

// WriteSliceSummary prints, per process in order of first dispatch, how many CPU
// slices it received and the longest stretch it spent off the CPU between two
// of them.
func WriteSliceSummary(w io.Writer, tl *trace.SimulationTrace) {
	if tl == nil || len(tl.CPU) == 0 {
		return
	}
	summary := trace.Summarize(tl)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "CPU Slices", "Max CPU Gap"})
	seen := make(map[string]bool, len(summary.SlicesByPID))
	for _, s := range tl.CPU {
		if seen[s.ProcessID] {
			continue
		}
		seen[s.ProcessID] = true
		table.Append([]string{
			s.ProcessID,
			strconv.Itoa(summary.SlicesByPID[s.ProcessID]),
			itoa(summary.MaxCPUGapByPID[s.ProcessID]),
		})
	}
	table.SetFooter([]string{"", itoa(int64(summary.CPUSlices)), fmt.Sprintf("Span %d", summary.Span)})
	table.Render()
}

// withIdle fills gaps between CPU slices with "-" slices.
func withIdle(in []trace.Slice) []trace.Slice {
	out := make([]trace.Slice, 0, len(in))
	var clock int64
	for _, s := range in {
		if s.Start > clock {
			out = append(out, trace.Slice{ProcessID: "-", Start: clock, Stop: s.Start})
		}
		out = append(out, s)
		clock = s.Stop
	}
	return out
}

// WriteComparison prints one row per result with its run-wide aggregates.
func WriteComparison(w io.Writer, results []*sim.Result) {
	_, _ = fmt.Fprintln(w, "Comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Turnaround", "Stddev", "Avg Wait(ready)",
		"Avg Wait(IO)", "Avg Response", "Makespan", "CPU Util", "Throughput", "Ctx Switches"})
	for _, res := range results {
		m := res.Metrics
		table.Append([]string{
			Title(res),
			fmt.Sprintf("%.2f", m.AvgTurnaround),
			fmt.Sprintf("%.2f", m.StdDevTurnaround),
			fmt.Sprintf("%.2f", m.AvgReadyWait),
			fmt.Sprintf("%.2f", m.AvgIOWait),
			fmt.Sprintf("%.2f", m.AvgResponse),
			itoa(m.Makespan),
			fmt.Sprintf("%.1f%%", m.CPUUtilization*100),
			fmt.Sprintf("%.3f/t", m.Throughput),
			strconv.Itoa(m.ContextSwitches),
		})
	}
	table.Render()
}

// WriteJSON encodes results as an indented JSON array.
func WriteJSON(w io.Writer, results []*sim.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encoding results as JSON: %w", err)
	}
	return nil
}

// WriteYAML encodes results as a YAML sequence.
func WriteYAML(w io.Writer, results []*sim.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encoding results as YAML: %w", err)
	}
	return enc.Close()
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
