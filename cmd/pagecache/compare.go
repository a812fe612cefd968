package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/djdv/go-pagecache/internal/trace"
)

var compareCmd = &cobra.Command{
	Use:   "compare [trace]",
	Short: "Compare hits of every engine over the same trace",
	Long: `Replay one trace through the LFU, optimal, LRU and ARC engines.
The optimal engine is an upper bound for the hit count of any policy.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) (err error) {
	tr, err := trace.Load(tracePath(args))
	if err != nil {
		return err
	}
	s, err := newSession()
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, s.close(cmd.ErrOrStderr())) }()

	table := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(table, "ENGINE\tHITS\tHIT RATIO\n")
	for _, factory := range allFactories {
		hits, err := s.replay(factory, tr.Capacity, tr.Keys)
		if err != nil {
			return fmt.Errorf("%s: %w", factory.name, err)
		}
		fmt.Fprintf(table, "%s\t%d\t%s\n", factory.name, hits, formatRatio(hits, len(tr.Keys)))
	}
	return table.Flush()
}

func formatRatio(hits, total int) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", float64(hits)/float64(total)*100)
}
