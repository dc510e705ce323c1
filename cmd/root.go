package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/schedsim/sim"
	"github.com/inference-sim/schedsim/sim/report"
	"github.com/inference-sim/schedsim/sim/trace"
	"github.com/inference-sim/schedsim/sim/workload"
)

var (
	// CLI flags for workload input
	seed         int64  // Seed for random process generation
	logLevel     string // Log verbosity level
	workloadPath string // YAML workload spec
	csvPath      string // CSV process list
	scenarioName string // Built-in generator preset
	numProcesses int    // Number of processes to generate when no file is given

	// CLI flags for the simulation runs
	configPath   string   // YAML run config (schedulers, quantum, trace)
	algorithms   []string // Disciplines to run, in order
	quantum      int64    // Round-robin quantum
	traceLevel   string   // Timeline trace level
	outputFormat string   // table, json or yaml
	showGantt    bool     // Print a Gantt chart per discipline
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "Tick-by-tick CPU scheduling simulator",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run every selected scheduling discipline over one process set",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		results, err := simulate(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if err := report.Write(cmd.OutOrStdout(), outputFormat, results, showGantt); err != nil {
			logrus.Fatalf("Writing results failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// compareCmd prints only the cross-discipline comparison table
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare scheduling disciplines on one process set",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		results, err := simulate(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		report.WriteComparison(cmd.OutOrStdout(), results)
	},
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// simulate resolves the process set and run configurations from flags and runs
// each discipline on its own simulator.
func simulate(cmd *cobra.Command) ([]*sim.Result, error) {
	descs, err := loadDescriptors(cmd.Flags().Changed("seed"))
	if err != nil {
		return nil, err
	}
	cfgs, err := buildConfigs(cmd.Flags().Changed("algorithms"), cmd.Flags().Changed("quantum"), cmd.Flags().Changed("trace"))
	if err != nil {
		return nil, err
	}
	if showGantt {
		for i := range cfgs {
			cfgs[i].TraceLevel = trace.TraceLevelTimeline
		}
	}
	logrus.Infof("Simulating %d processes under %d disciplines", len(descs), len(cfgs))

	results := make([]*sim.Result, 0, len(cfgs))
	for _, cfg := range cfgs {
		res, err := sim.Simulate(cfg, descs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.Scheduler, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// loadDescriptors picks the process set: --csv, then --workload, then --scenario,
// then --num-processes, and finally the built-in sample.
func loadDescriptors(seedChanged bool) ([]sim.ProcessDescriptor, error) {
	if csvPath != "" && workloadPath != "" {
		return nil, errors.New("--csv and --workload are mutually exclusive")
	}
	switch {
	case csvPath != "":
		f, err := os.Open(csvPath)
		if err != nil {
			return nil, fmt.Errorf("opening CSV: %w", err)
		}
		defer func() { _ = f.Close() }()
		descs, err := workload.LoadCSV(f)
		if err != nil {
			return nil, fmt.Errorf("loading CSV %s: %w", csvPath, err)
		}
		return descs, nil

	case workloadPath != "":
		spec, err := workload.LoadWorkloadSpec(workloadPath)
		if err != nil {
			return nil, err
		}
		if seedChanged {
			logrus.Infof("CLI --seed %d overrides workload-spec seed %d", seed, spec.Seed)
			spec.Seed = seed
		}
		if len(spec.Processes) > 0 && seedChanged {
			logrus.Warnf("--seed has no effect on an explicit process list")
		}
		return workload.GenerateProcesses(spec)

	case scenarioName != "":
		spec, ok := workload.ScenarioByName(scenarioName, seed, max(numProcesses, 1))
		if !ok {
			return nil, fmt.Errorf("unknown scenario %q; valid: %v", scenarioName, workload.ScenarioNames())
		}
		return workload.GenerateProcesses(spec)

	case numProcesses > 0:
		return workload.GenerateProcesses(&workload.WorkloadSpec{Seed: seed, NumProcesses: numProcesses})

	default:
		return workload.SampleProcesses(), nil
	}
}

// buildConfigs merges the optional --config bundle with CLI flags.
// Flags explicitly set on the command line win over the bundle.
func buildConfigs(algorithmsChanged, quantumChanged, traceChanged bool) ([]sim.SimConfig, error) {
	if !report.IsValidFormat(outputFormat) {
		return nil, fmt.Errorf("unknown output format %q", outputFormat)
	}
	bundle := &sim.RunBundle{}
	if configPath != "" {
		var err error
		if bundle, err = sim.LoadRunBundle(configPath); err != nil {
			return nil, err
		}
	}
	if algorithmsChanged || len(bundle.Schedulers) == 0 {
		bundle.Schedulers = algorithms
	}
	if quantumChanged || bundle.Quantum == nil {
		q := quantum
		bundle.Quantum = &q
	}
	if traceChanged || bundle.Trace == "" {
		bundle.Trace = traceLevel
	}
	if err := bundle.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run configuration: %w", err)
	}
	return bundle.Configs(sim.DefaultQuantum), nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addSimulationFlags registers the flags shared by run and compare.
func addSimulationFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random process generation")
	cmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	cmd.Flags().StringVar(&workloadPath, "workload", "", "Path to YAML workload spec")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Path to CSV process list (id,burst,arrival[,priority[,io_offset,io_duration]])")
	cmd.Flags().StringVar(&scenarioName, "scenario", "", fmt.Sprintf("Built-in generator preset %v", workload.ScenarioNames()))
	cmd.Flags().IntVar(&numProcesses, "num-processes", 0, "Generate this many random processes (0 = built-in sample)")

	cmd.Flags().StringVar(&configPath, "config", "", "Path to YAML run config (schedulers, quantum, trace)")
	cmd.Flags().StringSliceVar(&algorithms, "algorithms", sim.ValidSchedulerNames(), "Scheduling disciplines to run")
	cmd.Flags().Int64Var(&quantum, "quantum", sim.DefaultQuantum, "Round-robin time quantum in ticks")
	cmd.Flags().StringVar(&traceLevel, "trace", string(trace.TraceLevelNone), "Trace level (none, timeline)")
}

// init sets up CLI flags and subcommands
func init() {
	addSimulationFlags(runCmd)
	runCmd.Flags().StringVar(&outputFormat, "output", report.FormatTable, "Output format (table, json, yaml)")
	runCmd.Flags().BoolVar(&showGantt, "gantt", false, "Print a Gantt chart for each discipline")

	addSimulationFlags(compareCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}
