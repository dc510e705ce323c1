package sim

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/schedsim/sim/trace"
)

// RunBundle holds the run configuration of one `schedsim run` invocation,
// loadable from a YAML file.
// Nil pointer fields mean "not set in YAML" and do not override CLI defaults.
// String and slice fields use their zero value for "not set".
type RunBundle struct {
	Schedulers []string `yaml:"schedulers"`
	Quantum    *int64   `yaml:"quantum"`
	Trace      string   `yaml:"trace"`
}

// LoadRunBundle reads and strictly parses a YAML run configuration file.
// Unknown keys are rejected so typos surface instead of silently using defaults.
func LoadRunBundle(path string) (*RunBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	var bundle RunBundle
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&bundle); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing run config: %w", err)
	}
	return &bundle, nil
}

// Validate checks that all scheduler names and parameter ranges in the bundle are valid.
func (b *RunBundle) Validate() error {
	for _, name := range b.Schedulers {
		if !IsValidScheduler(name) {
			return fmt.Errorf("%w %q; valid: %v", ErrUnknownScheduler, name, ValidSchedulerNames())
		}
	}
	if b.Quantum != nil && *b.Quantum <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidQuantum, *b.Quantum)
	}
	if !trace.IsValidTraceLevel(b.Trace) {
		return fmt.Errorf("unknown trace level %q", b.Trace)
	}
	return nil
}

// Configs expands the bundle into one SimConfig per scheduler, in listed order.
// defaultQuantum applies when the bundle leaves quantum unset.
func (b *RunBundle) Configs(defaultQuantum int64) []SimConfig {
	quantum := defaultQuantum
	if b.Quantum != nil {
		quantum = *b.Quantum
	}
	cfgs := make([]SimConfig, len(b.Schedulers))
	for i, name := range b.Schedulers {
		cfgs[i] = SimConfig{
			Scheduler:  CanonicalSchedulerName(name),
			Quantum:    quantum,
			TraceLevel: trace.TraceLevel(b.Trace),
		}
	}
	return cfgs
}
