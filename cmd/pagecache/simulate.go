package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/djdv/go-pagecache/internal/workload"
)

var (
	simPattern  string
	simCapacity int
	simLength   int
	simRuns     int
	simSeed     int64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Measure hit ratios over generated workloads",
	Long: `Generate seeded access sequences and replay each through every engine.
Reports the mean and standard deviation of the hit ratio per engine.

Patterns: sequential, looping, zipf, uniform.`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVarP(&simPattern, "pattern", "p", string(workload.Zipf), "access pattern to generate")
	simulateCmd.Flags().IntVarP(&simCapacity, "capacity", "c", 256, "cache capacity")
	simulateCmd.Flags().IntVarP(&simLength, "length", "n", 1<<14, "keys per generated sequence")
	simulateCmd.Flags().IntVarP(&simRuns, "runs", "r", 5, "number of sequences, seeded consecutively")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 1, "seed of the first sequence")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, _ []string) (err error) {
	if simCapacity < 0 || simLength <= 0 || simRuns <= 0 {
		return errors.New("capacity must be >=0, length and runs must be >0")
	}
	s, err := newSession()
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, s.close(cmd.ErrOrStderr())) }()

	ratios := make(map[string][]float64, len(allFactories))
	for run := range simRuns {
		keys, err := workload.Generate(workload.Pattern(simPattern), simCapacity, simLength, simSeed+int64(run))
		if err != nil {
			return err
		}
		for _, factory := range allFactories {
			hits, err := s.replay(factory, simCapacity, keys)
			if err != nil {
				return fmt.Errorf("%s: %w", factory.name, err)
			}
			ratios[factory.name] = append(ratios[factory.name], float64(hits)/float64(len(keys)))
		}
	}

	table := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(table, "ENGINE\tMEAN HIT RATIO\tSTDDEV\n")
	for _, factory := range allFactories {
		mean, std := stat.MeanStdDev(ratios[factory.name], nil)
		if simRuns == 1 {
			std = 0 // Undefined for a single sample.
		}
		fmt.Fprintf(table, "%s\t%.2f%%\t%.2f\n", factory.name, mean*100, std*100)
	}
	return table.Flush()
}
