package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/airport-sim/airport-sim/sim"
	"github.com/airport-sim/airport-sim/sim/export"
	"github.com/airport-sim/airport-sim/sim/stats"
)

var (
	// CLI flags
	configPath    string // optional YAML overriding the default configuration
	demandPath    string // YAML demand schedule (required)
	seed          int64  // random seed override
	horizonBuffer float64
	logLevel      string
	outDir        string // where CSV/JSON exports land; empty disables export
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "airport-sim",
	Short: "Discrete-event simulator for airport departure-hall congestion",
}

// runCmd executes a simulation from a demand schedule
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the departure-hall simulation",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := LoadConfig(configPath)
		if err != nil {
			logrus.Fatalf("Unable to load configuration: %v", err)
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = seed
		}
		if cmd.Flags().Changed("horizon-buffer") {
			cfg.HorizonBufferSec = horizonBuffer
		}

		slots, err := LoadDemandSchedule(demandPath)
		if err != nil {
			logrus.Fatalf("Unable to load demand schedule: %v", err)
		}

		engine, err := sim.NewSimulator(cfg, nil)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		result, err := engine.Run(slots)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		printSummary(stats.Summarize(result))

		if outDir != "" {
			if err := export.WriteAll(outDir, result); err != nil {
				logrus.Fatalf("Export failed: %v", err)
			}
			logrus.Infof("Exported results to %s", outDir)
		}
	},
}

func printSummary(s *stats.Summary) {
	fmt.Println("=== Simulation Summary ===")
	fmt.Printf("Completed groups     : %d (%d pax)\n", s.CompletedGroups, s.CompletedPax)
	fmt.Printf("Throughput           : %.1f pax/hour\n", s.ThroughputPaxPerHour)
	fmt.Printf("Time in system       : mean %.1fs, p50 %.1fs, p90 %.1fs, max %.1fs\n",
		s.TotalTime.Mean, s.TotalTime.P50, s.TotalTime.P90, s.TotalTime.Max)
	for _, w := range s.StationWaits {
		if w.Count == 0 {
			continue
		}
		fmt.Printf("%-21s: %d visits, wait mean %.1fs, p50 %.1fs, p90 %.1fs, max %.1fs (peak queue %d pax)\n",
			w.Station, w.Count, w.Mean, w.P50, w.P90, w.Max, s.PeakQueuePax[w.Station])
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file (defaults used when omitted)")
	runCmd.Flags().StringVar(&demandPath, "demand", "", "YAML demand schedule file")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Random seed")
	runCmd.Flags().Float64Var(&horizonBuffer, "horizon-buffer", 3600, "Seconds added after the last departure before the run stops")
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&outDir, "out", "", "Directory for CSV/JSON export (disabled when empty)")
	runCmd.MarkFlagRequired("demand")

	rootCmd.AddCommand(runCmd)
}
