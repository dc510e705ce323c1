package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/inference-sim/schedsim/sim"
)

// LoadCSV reads process descriptors from CSV rows of the form
//
//	id,burst,arrival[,priority[,io_offset,io_duration]]
//
// Lines starting with '#' are comments. A first row whose burst column is not an
// integer is treated as a header. Rows without I/O columns never issue I/O.
func LoadCSV(r io.Reader) ([]sim.ProcessDescriptor, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var descs []sim.ProcessDescriptor
	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}
		if row == 1 && isHeader(record) {
			continue
		}
		d, err := parseRecord(record)
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("CSV line %d: %w", line, err)
		}
		descs = append(descs, d)
	}
	if err := sim.ValidateDescriptors(descs); err != nil {
		return nil, err
	}
	return descs, nil
}

func isHeader(record []string) bool {
	if len(record) < 2 {
		return false
	}
	_, err := strconv.ParseInt(strings.TrimSpace(record[1]), 10, 64)
	return err != nil
}

func parseRecord(record []string) (sim.ProcessDescriptor, error) {
	switch len(record) {
	case 3, 4, 6:
	default:
		return sim.ProcessDescriptor{}, fmt.Errorf("expected 3, 4 or 6 fields, got %d", len(record))
	}
	d := sim.ProcessDescriptor{ID: strings.TrimSpace(record[0]), IOOffset: sim.NoIO}
	fields := []struct {
		name string
		dst  *int64
	}{
		{"burst", &d.BurstTime},
		{"arrival", &d.ArrivalTime},
		{"priority", &d.Priority},
		{"io_offset", &d.IOOffset},
		{"io_duration", &d.IODuration},
	}
	for i, raw := range record[1:] {
		v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return sim.ProcessDescriptor{}, fmt.Errorf("%s: %w", fields[i].name, err)
		}
		*fields[i].dst = v
	}
	return d, nil
}

// WriteCSV writes descriptors in the six-column form read by LoadCSV, with a header.
func WriteCSV(w io.Writer, descs []sim.ProcessDescriptor) error {
	cw := csv.NewWriter(w)
	rows := [][]string{{"id", "burst", "arrival", "priority", "io_offset", "io_duration"}}
	for _, d := range descs {
		rows = append(rows, []string{
			d.ID,
			strconv.FormatInt(d.BurstTime, 10),
			strconv.FormatInt(d.ArrivalTime, 10),
			strconv.FormatInt(d.Priority, 10),
			strconv.FormatInt(d.IOOffset, 10),
			strconv.FormatInt(d.IODuration, 10),
		})
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	return nil
}
