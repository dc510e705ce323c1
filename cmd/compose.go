package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/schedsim/sim/workload"
)

var (
	composeFrom   []string
	composeFormat string
)

// composeCmd merges several workload files, generated or explicit, into a
// single explicit process list that later runs can replay verbatim.
var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Merge workload specs into one explicit process list",
	Long:  "Materialize the processes of every --from workload spec, rename colliding IDs and write the merged process list to stdout.",
	Run: func(cmd *cobra.Command, args []string) {
		if err := compose(cmd); err != nil {
			logrus.Fatalf("Compose failed: %v", err)
		}
	},
}

func compose(cmd *cobra.Command) error {
	if len(composeFrom) == 0 {
		return fmt.Errorf("at least one --from workload is required")
	}
	specs := make([]*workload.WorkloadSpec, 0, len(composeFrom))
	for _, path := range composeFrom {
		spec, err := workload.LoadWorkloadSpec(path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
		specs = append(specs, spec)
	}
	merged, err := workload.ComposeSpecs(specs)
	if err != nil {
		return err
	}
	logrus.Infof("Composed %d processes from %d specs", len(merged.Processes), len(specs))

	switch composeFormat {
	case "yaml":
		return workload.WriteSpec(cmd.OutOrStdout(), merged)
	case "csv":
		descs, err := workload.GenerateProcesses(merged)
		if err != nil {
			return err
		}
		return workload.WriteCSV(cmd.OutOrStdout(), descs)
	default:
		return fmt.Errorf("unknown format %q; valid: yaml, csv", composeFormat)
	}
}

func init() {
	composeCmd.Flags().StringArrayVar(&composeFrom, "from", nil, "Workload spec YAML to merge (repeatable)")
	composeCmd.Flags().StringVar(&composeFormat, "format", "yaml", "Output format (yaml, csv)")
	_ = composeCmd.MarkFlagRequired("from")

	rootCmd.AddCommand(composeCmd)
}
