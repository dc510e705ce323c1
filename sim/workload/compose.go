package workload

import (
	"fmt"

	"github.com/inference-sim/schedsim/sim"
)

// ComposeSpecs materializes every spec and concatenates the resulting processes
// into one explicit spec, in spec order. A process whose ID is already taken is
// renamed to "<id>.<n>", where n is the 1-based position of its spec.
func ComposeSpecs(specs []*WorkloadSpec) (*WorkloadSpec, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("at least one spec file required")
	}

	merged := &WorkloadSpec{Version: CurrentVersion, Seed: specs[0].Seed}
	seen := make(map[string]bool)
	for i, s := range specs {
		descs, err := GenerateProcesses(s)
		if err != nil {
			return nil, fmt.Errorf("spec[%d]: %w", i, err)
		}
		for _, d := range descs {
			if seen[d.ID] {
				d.ID = fmt.Sprintf("%s.%d", d.ID, i+1)
			}
			seen[d.ID] = true
			merged.Processes = append(merged.Processes, FromDescriptor(d))
		}
	}

	descs := make([]sim.ProcessDescriptor, len(merged.Processes))
	for i, p := range merged.Processes {
		descs[i] = p.Descriptor()
	}
	if err := sim.ValidateDescriptors(descs); err != nil {
		return nil, fmt.Errorf("composed spec: %w", err)
	}
	return merged, nil
}
