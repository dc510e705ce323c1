package workload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/schedsim/sim"
)

// CurrentVersion is the workload spec format written by WriteSpec.
const CurrentVersion = "1"

// WorkloadSpec is the top-level workload configuration.
// Loaded from YAML via LoadWorkloadSpec(path).
//
// A spec either lists its processes explicitly or describes how to generate
// NumProcesses of them; the two are mutually exclusive.
type WorkloadSpec struct {
	Version      string        `yaml:"version"`
	Seed         int64         `yaml:"seed"`
	NumProcesses int           `yaml:"num_processes,omitempty"`
	Arrival      *DistSpec     `yaml:"arrival,omitempty"`  // default uniform [0, 10)
	Burst        *DistSpec     `yaml:"burst,omitempty"`    // default uniform [3, 11)
	Priority     *DistSpec     `yaml:"priority,omitempty"` // default uniform [1, 6)
	IO           *IOSpec       `yaml:"io,omitempty"`
	Processes    []ProcessSpec `yaml:"processes,omitempty"`
}

// IOSpec configures the single I/O request of generated processes.
type IOSpec struct {
	// Probability that a generated process issues I/O at all. Nil means 0.5.
	Probability *float64 `yaml:"probability,omitempty"`
	// Duration of the I/O request in ticks. Default uniform [1, 4).
	Duration *DistSpec `yaml:"duration,omitempty"`
}

// DistSpec parameterizes an integer tick distribution.
type DistSpec struct {
	Type   string             `yaml:"type"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

// ProcessSpec is one explicitly listed process. A nil IO block means the
// process never issues I/O.
type ProcessSpec struct {
	ID       string   `yaml:"id"`
	Arrival  int64    `yaml:"arrival"`
	Burst    int64    `yaml:"burst"`
	Priority int64    `yaml:"priority"`
	IO       *IOPoint `yaml:"io,omitempty"`
}

// IOPoint places an I/O request at Offset executed CPU ticks for Duration ticks.
type IOPoint struct {
	Offset   int64 `yaml:"offset"`
	Duration int64 `yaml:"duration"`
}

// Descriptor converts the listed process into the engine's input type.
func (p ProcessSpec) Descriptor() sim.ProcessDescriptor {
	d := sim.ProcessDescriptor{
		ID:          p.ID,
		ArrivalTime: p.Arrival,
		BurstTime:   p.Burst,
		Priority:    p.Priority,
		IOOffset:    sim.NoIO,
	}
	if p.IO != nil {
		d.IOOffset = p.IO.Offset
		d.IODuration = p.IO.Duration
	}
	return d
}

// FromDescriptor is the inverse of ProcessSpec.Descriptor.
func FromDescriptor(d sim.ProcessDescriptor) ProcessSpec {
	p := ProcessSpec{ID: d.ID, Arrival: d.ArrivalTime, Burst: d.BurstTime, Priority: d.Priority}
	if d.HasIO() {
		p.IO = &IOPoint{Offset: d.IOOffset, Duration: d.IODuration}
	}
	return p
}

var validDistTypes = map[string]bool{
	"uniform": true, "constant": true, "gaussian": true,
}

// LoadWorkloadSpec reads and parses a YAML workload specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadWorkloadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	return ParseWorkloadSpec(data)
}

// ParseWorkloadSpec strictly decodes a YAML workload specification.
func ParseWorkloadSpec(data []byte) (*WorkloadSpec, error) {
	var spec WorkloadSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing workload spec: %w", err)
	}
	if spec.Version == "" {
		spec.Version = CurrentVersion
	} else if spec.Version != CurrentVersion {
		logrus.Warnf("workload spec version %q is newer than supported version %q; unknown semantics are ignored",
			spec.Version, CurrentVersion)
	}
	return &spec, nil
}

// WriteSpec encodes spec as YAML.
func WriteSpec(w io.Writer, spec *WorkloadSpec) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(spec); err != nil {
		return fmt.Errorf("encoding workload spec: %w", err)
	}
	return enc.Close()
}

// Validate checks that all fields in the spec are valid.
func (s *WorkloadSpec) Validate() error {
	if s.NumProcesses < 0 {
		return fmt.Errorf("num_processes must be non-negative, got %d", s.NumProcesses)
	}
	if len(s.Processes) > 0 {
		if s.NumProcesses > 0 {
			return fmt.Errorf("num_processes and processes are mutually exclusive")
		}
		descs := make([]sim.ProcessDescriptor, len(s.Processes))
		for i, p := range s.Processes {
			descs[i] = p.Descriptor()
		}
		return sim.ValidateDescriptors(descs)
	}
	dists := []struct {
		name string
		spec *DistSpec
	}{{"arrival", s.Arrival}, {"burst", s.Burst}, {"priority", s.Priority}}
	for _, d := range dists {
		if d.spec == nil {
			continue
		}
		if err := validateDistSpec(d.name, d.spec); err != nil {
			return err
		}
	}
	if s.IO != nil {
		if p := s.IO.Probability; p != nil && (math.IsNaN(*p) || *p < 0 || *p > 1) {
			return fmt.Errorf("io.probability must be in [0, 1], got %f", *p)
		}
		if s.IO.Duration != nil {
			if err := validateDistSpec("io.duration", s.IO.Duration); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateDistSpec(prefix string, d *DistSpec) error {
	if !validDistTypes[d.Type] {
		return fmt.Errorf("%s: unknown distribution type %q; valid: uniform, constant, gaussian", prefix, d.Type)
	}
	for name, val := range d.Params {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return fmt.Errorf("%s.params.%s must be a finite number, got %f", prefix, name, val)
		}
	}
	if _, err := NewTickSampler(*d); err != nil {
		return fmt.Errorf("%s: %w", prefix, err)
	}
	return nil
}
